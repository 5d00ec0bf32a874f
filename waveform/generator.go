package waveform

import (
	"errors"
	"fmt"
	"sort"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/mat"
)

// Generator evaluates a SourceModel on a frequency grid and stores the
// parameter values last assigned through SetValues.
//
// A Generator is not safe for concurrent mutation.
type Generator struct {
	source            SourceModel
	duration          float64
	samplingFrequency float64
	keys              []string
	keySet            map[string]struct{}
	values            Parameters
	// Lazily computed, reset by SetDuration and SetSamplingFrequency
	grid   *grid
	logger *zap.Logger
}

// Option configures a Generator.
type Option func(*Generator)

// WithDuration sets the grid duration in seconds.
func WithDuration(duration float64) Option {
	return func(g *Generator) { g.duration = duration }
}

// WithSamplingFrequency sets the grid sampling frequency in Hz.
func WithSamplingFrequency(samplingFrequency float64) Option {
	return func(g *Generator) { g.samplingFrequency = samplingFrequency }
}

// WithLogger sets the logger. A nil logger is ignored.
func WithLogger(logger *zap.Logger) Option {
	return func(g *Generator) {
		if logger != nil {
			g.logger = logger
		}
	}
}

// NewGenerator returns a Generator for source with a duration of 1 s and a
// sampling frequency of 4096 Hz unless overridden by opts.
func NewGenerator(source SourceModel, opts ...Option) (*Generator, error) {
	if err := source.validate(); err != nil {
		return nil, err
	}
	g := &Generator{
		source:            source,
		duration:          DefaultDuration,
		samplingFrequency: DefaultSamplingFrequency,
		keys:              append([]string(nil), source.ParameterKeys...),
		keySet:            make(map[string]struct{}, len(source.ParameterKeys)),
		values:            make(Parameters, len(source.ParameterKeys)),
		logger:            zap.NewNop(),
	}
	for _, opt := range opts {
		opt(g)
	}
	if _, err := numberOfSamples(g.duration, g.samplingFrequency); err != nil {
		return nil, err
	}
	for _, key := range g.keys {
		g.keySet[key] = struct{}{}
	}
	return g, nil
}

// SourceModel returns the model the generator was created with.
func (g *Generator) SourceModel() SourceModel {
	return g.source
}

// TimeDuration returns the grid duration in seconds.
func (g *Generator) TimeDuration() float64 {
	return g.duration
}

// SamplingFrequency returns the grid sampling frequency in Hz.
func (g *Generator) SamplingFrequency() float64 {
	return g.samplingFrequency
}

// SetDuration changes the duration and drops the cached grid.
func (g *Generator) SetDuration(duration float64) error {
	if _, err := numberOfSamples(duration, g.samplingFrequency); err != nil {
		return err
	}
	g.duration = duration
	g.grid = nil
	return nil
}

// SetSamplingFrequency changes the sampling frequency and drops the cached grid.
func (g *Generator) SetSamplingFrequency(samplingFrequency float64) error {
	if _, err := numberOfSamples(g.duration, samplingFrequency); err != nil {
		return err
	}
	g.samplingFrequency = samplingFrequency
	g.grid = nil
	return nil
}

// getGrid computes the grid on first use.
func (g *Generator) getGrid() *grid {
	if g.grid == nil {
		gr, err := newGrid(g.duration, g.samplingFrequency)
		if err != nil {
			// duration and sampling frequency are validated on every assignment
			panic(err)
		}
		g.logger.Debug("computed grid",
			zap.String("model", g.source.Name),
			zap.Float64("duration", g.duration),
			zap.Float64("sampling_frequency", g.samplingFrequency),
			zap.Int("samples", gr.n))
		g.grid = gr
	}
	return g.grid
}

// FrequencyArray returns the frequency bins from 0 Hz up to the Nyquist frequency.
// The returned vector is shared with the generator and must not be modified.
func (g *Generator) FrequencyArray() *mat.VecDense {
	return g.getGrid().frequencies
}

// TimeArray returns the sample times. The returned vector is shared with the
// generator and must not be modified.
func (g *Generator) TimeArray() *mat.VecDense {
	return g.getGrid().times
}

// NumberOfSamples returns round(duration * sampling frequency).
func (g *Generator) NumberOfSamples() int {
	return g.getGrid().n
}

// ParameterKeys returns the declared parameter names in declaration order.
func (g *Generator) ParameterKeys() []string {
	return append([]string(nil), g.keys...)
}

// HasParameter reports whether key is declared by the source model.
func (g *Generator) HasParameter(key string) bool {
	_, ok := g.keySet[key]
	return ok
}

// SetValues assigns every entry of p. If any key is not declared by the source
// model an *UnknownParameterError is returned and no value is changed.
func (g *Generator) SetValues(p Parameters) error {
	var unknown []string
	for key := range p {
		if !g.HasParameter(key) {
			unknown = append(unknown, key)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		g.logger.Debug("rejected parameters",
			zap.String("model", g.source.Name),
			zap.Strings("unknown", unknown))
		return &UnknownParameterError{Key: unknown[0], Model: g.source.Name}
	}
	for key, value := range p {
		g.values[key] = value
	}
	return nil
}

// Value returns the value assigned to key and whether it has been set.
func (g *Generator) Value(key string) (float64, bool) {
	value, ok := g.values[key]
	return value, ok
}

// MustValue is like Value but panics if key is unknown or unset.
func (g *Generator) MustValue(key string) float64 {
	value, ok := g.values[key]
	if !ok {
		if !g.HasParameter(key) {
			panic(&UnknownParameterError{Key: key, Model: g.source.Name})
		}
		panic(fmt.Errorf("%w: %q", ErrParametersUnset, key))
	}
	return value
}

// Values returns a copy of the assigned values.
func (g *Generator) Values() Parameters {
	return g.values.Clone()
}

// IsSet reports whether every parameter key has a value.
func (g *Generator) IsSet() bool {
	return g.missing() == ""
}

// ResetValues forgets every assigned value.
func (g *Generator) ResetValues() {
	g.values = make(Parameters, len(g.keys))
}

// missing returns the first key without a value, or "".
func (g *Generator) missing() string {
	for _, key := range g.keys {
		if _, ok := g.values[key]; !ok {
			return key
		}
	}
	return ""
}

// Evaluate calls the source model with the frequency array and p. The result
// and any error of the model are returned unchanged.
func (g *Generator) Evaluate(p Parameters) (Strain, error) {
	return g.source.Func(g.FrequencyArray(), p)
}

// Strain evaluates the source model with the assigned values.
func (g *Generator) Strain() (Strain, error) {
	if key := g.missing(); key != "" {
		return nil, fmt.Errorf("%w: %q has no value", ErrParametersUnset, key)
	}
	return g.Evaluate(g.values.Clone())
}

// IsUnknownParameter reports whether err was caused by an unknown parameter
// and returns the offending key.
func IsUnknownParameter(err error) (string, bool) {
	var upe *UnknownParameterError
	if errors.As(err, &upe) {
		return upe.Key, true
	}
	return "", false
}
