// Package signal holds frequency domain source models for the waveform
// generator and a registry to look them up by name.
package signal

import (
	"errors"
	"fmt"
	"sort"

	"github.com/Eric-lyu-2019/bilby/waveform"
)

var (
	// ErrUnknownModel is returned by Lookup for an unregistered name.
	ErrUnknownModel = errors.New("signal: unknown source model")

	// ErrMissingParameter is returned by a model when a required value is absent.
	ErrMissingParameter = errors.New("signal: missing parameter")

	// ErrInvalidParameter is returned by a model for a value outside its domain.
	ErrInvalidParameter = errors.New("signal: invalid parameter")
)

var registry = map[string]waveform.SourceModel{
	Gaussian.Name:     Gaussian,
	SineGaussian.Name: SineGaussian,
}

// Lookup returns the source model registered under name.
func Lookup(name string) (waveform.SourceModel, error) {
	sm, ok := registry[name]
	if !ok {
		return waveform.SourceModel{}, fmt.Errorf("%w: %q (available: %v)", ErrUnknownModel, name, Names())
	}
	return sm, nil
}

// Names returns the registered model names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// get returns p[key] or ErrMissingParameter.
func get(p waveform.Parameters, key string) (float64, error) {
	value, ok := p[key]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrMissingParameter, key)
	}
	return value, nil
}

// getAll reads keys from p in order.
func getAll(p waveform.Parameters, keys ...string) ([]float64, error) {
	res := make([]float64, len(keys))
	for index, key := range keys {
		value, err := get(p, key)
		if err != nil {
			return nil, err
		}
		res[index] = value
	}
	return res, nil
}
