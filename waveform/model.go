package waveform

import (
	"fmt"

	"github.com/Eric-lyu-2019/bilby/gonumExtensions"
	"gonum.org/v1/gonum/mat"
)

// Polarization names one output channel of a strain signal.
type Polarization string

const (
	Plus  Polarization = "plus"
	Cross Polarization = "cross"
)

// Parameters maps parameter names to values.
type Parameters map[string]float64

// Clone returns a copy of p.
func (p Parameters) Clone() Parameters {
	res := make(Parameters, len(p))
	for key, value := range p {
		res[key] = value
	}
	return res
}

// Strain holds the complex frequency series of every polarization.
type Strain map[Polarization][]complex128

// Validate checks that both the plus and cross polarizations are present,
// have length n and are finite.
func (s Strain) Validate(n int) error {
	for _, pol := range []Polarization{Plus, Cross} {
		data, ok := s[pol]
		if !ok {
			return fmt.Errorf("%w: missing %s polarization", ErrBadModelOutput, pol)
		}
		if len(data) != n {
			return fmt.Errorf("%w: %s has length %d, want %d", ErrBadModelOutput, pol, len(data), n)
		}
		if gonumExtensions.CNANORINF(data) {
			return fmt.Errorf("%w: %s contains NaN or Inf", ErrBadModelOutput, pol)
		}
	}
	return nil
}

// ModelFunc evaluates a source model on a frequency array. The returned
// polarizations must have the same length as frequencies.
type ModelFunc func(frequencies *mat.VecDense, p Parameters) (Strain, error)

// SourceModel describes a source model together with the parameter names it
// accepts. The keys are declared rather than inferred from the function.
type SourceModel struct {
	Name          string
	ParameterKeys []string
	Func          ModelFunc
}

func (sm SourceModel) validate() error {
	if sm.Func == nil {
		return ErrNilModel
	}
	seen := make(map[string]struct{}, len(sm.ParameterKeys))
	for _, key := range sm.ParameterKeys {
		if key == "" {
			return fmt.Errorf("%w: empty key in %q", ErrDuplicateParameter, sm.Name)
		}
		if _, ok := seen[key]; ok {
			return fmt.Errorf("%w: %q repeated in %q", ErrDuplicateParameter, key, sm.Name)
		}
		seen[key] = struct{}{}
	}
	return nil
}
