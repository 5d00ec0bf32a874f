package waveform

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownParameter is returned when a parameter name is not declared by the source model.
	ErrUnknownParameter = errors.New("waveform: unknown parameter")

	// ErrParametersUnset is returned when the stored values do not cover every parameter key.
	ErrParametersUnset = errors.New("waveform: parameters not set")

	// ErrInvalidGrid is returned for a non-positive or non-finite duration or
	// sampling frequency, or one that yields no samples.
	ErrInvalidGrid = errors.New("waveform: invalid duration or sampling frequency")

	// ErrNilModel is returned when a SourceModel has no function.
	ErrNilModel = errors.New("waveform: source model function is nil")

	// ErrDuplicateParameter is returned when a SourceModel declares an empty or repeated key.
	ErrDuplicateParameter = errors.New("waveform: empty or duplicate parameter key")

	// ErrBadModelOutput is returned when a source model returns a strain that
	// misses a polarization, has the wrong length or holds NaN/Inf.
	ErrBadModelOutput = errors.New("waveform: bad model output")
)

// UnknownParameterError identifies the offending key of a rejected assignment.
type UnknownParameterError struct {
	Key   string
	Model string
}

func (e *UnknownParameterError) Error() string {
	return fmt.Sprintf("%v: %q is not a parameter of %q", ErrUnknownParameter, e.Key, e.Model)
}

func (e *UnknownParameterError) Unwrap() error {
	return ErrUnknownParameter
}
