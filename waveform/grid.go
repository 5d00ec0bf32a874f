package waveform

import (
	"fmt"
	"math"

	"github.com/Eric-lyu-2019/bilby/gonumExtensions"
	"gonum.org/v1/gonum/dsp/fourier"
	"gonum.org/v1/gonum/mat"
)

const (
	// DefaultDuration is the grid length in seconds.
	DefaultDuration = 1.
	// DefaultSamplingFrequency is the grid sampling frequency in Hz.
	DefaultSamplingFrequency = 4096.
)

// grid holds the time and frequency arrays of a sampling frequency and sample count.
type grid struct {
	// Sampling frequency in Hz
	samplingFrequency float64
	// Number of time samples
	n int
	// Frequency bins 0 .. Nyquist
	frequencies *mat.VecDense
	// Time stamps 0 .. (n-1)/samplingFrequency
	times *mat.VecDense
}

// numberOfSamples returns round(duration * samplingFrequency) or an error if
// the pair does not describe a usable grid.
func numberOfSamples(duration, samplingFrequency float64) (int, error) {
	if !(duration > 0) || math.IsInf(duration, 0) {
		return 0, fmt.Errorf("%w: duration %v", ErrInvalidGrid, duration)
	}
	if !(samplingFrequency > 0) || math.IsInf(samplingFrequency, 0) {
		return 0, fmt.Errorf("%w: sampling frequency %v", ErrInvalidGrid, samplingFrequency)
	}
	n := math.Round(duration * samplingFrequency)
	if n < 1 || n > math.MaxInt32 {
		return 0, fmt.Errorf("%w: %v samples", ErrInvalidGrid, n)
	}
	return int(n), nil
}

// newGrid computes both arrays.
func newGrid(duration, samplingFrequency float64) (*grid, error) {
	n, err := numberOfSamples(duration, samplingFrequency)
	if err != nil {
		return nil, err
	}
	fft := fourier.NewFFT(n)
	bins := n/2 + 1
	f := make([]float64, bins)
	for index := range f {
		// Freq is relative to the sampling frequency
		f[index] = fft.Freq(index) * samplingFrequency
	}
	return &grid{
		samplingFrequency: samplingFrequency,
		n:                 n,
		frequencies:       mat.NewVecDense(bins, f),
		times:             gonumExtensions.Arange(n, 1./samplingFrequency),
	}, nil
}
