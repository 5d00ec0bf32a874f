package waveform

import (
	"fmt"

	"github.com/Eric-lyu-2019/bilby/gonumExtensions"
	"gonum.org/v1/gonum/dsp/fourier"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// TimeDomainStrain evaluates the source model with p and transforms every
// polarization into a real time series of NumberOfSamples samples:
//
//	h(t_k) = f_s / N * sum_j h(f_j) e^(2 pi i j k / N)
//
// which is the inverse real FFT of the one sided spectrum.
func (g *Generator) TimeDomainStrain(p Parameters) (map[Polarization][]float64, error) {
	strain, err := g.Evaluate(p)
	if err != nil {
		return nil, err
	}
	gr := g.getGrid()
	if err := strain.Validate(gr.frequencies.Len()); err != nil {
		return nil, err
	}

	fft := fourier.NewFFT(gr.n)
	scale := gr.samplingFrequency / float64(gr.n)
	res := make(map[Polarization][]float64, len(strain))
	for pol, coefficients := range strain {
		if len(coefficients) != gr.frequencies.Len() {
			return nil, fmt.Errorf("%w: %s has length %d, want %d", ErrBadModelOutput, pol, len(coefficients), gr.frequencies.Len())
		}
		series := fft.Sequence(nil, coefficients)
		floats.Scale(scale, series)
		if gonumExtensions.NANORINF(mat.NewVecDense(len(series), series)) {
			return nil, fmt.Errorf("%w: %s time series contains NaN or Inf", ErrBadModelOutput, pol)
		}
		res[pol] = series
	}
	return res, nil
}
