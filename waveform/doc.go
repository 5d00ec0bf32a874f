// Package waveform evaluates parameterised gravitational-wave source models
// on a frequency grid.
//
// A Generator owns a SourceModel, a frequency and time grid derived from a
// duration and a sampling frequency, and the most recently assigned parameter
// values. The grid is
//
//	f_k = k / T,           k = 0 .. N/2
//	t_k = k / f_s,         k = 0 .. N-1
//
// where T is the duration, f_s the sampling frequency and N = round(T f_s).
//
// Source models declare their parameter names explicitly. Assigning a name
// that the model does not declare fails with ErrUnknownParameter and leaves
// the stored values untouched.
package waveform
