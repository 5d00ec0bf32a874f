package signal

import (
	"fmt"
	"math"

	"github.com/Eric-lyu-2019/bilby/waveform"
	"gonum.org/v1/gonum/mat"
)

// Gaussian is a frequency domain gaussian bump with identical plus and cross
// polarizations
//
// h(f) = amplitude exp(-(mu - f)^2 / (2 sigma^2))
//
// The sky position, polarization angle and geocentre time are accepted but do
// not enter the strain; they describe the source for a detector projection.
var Gaussian = waveform.SourceModel{
	Name:          "gaussian",
	ParameterKeys: []string{"amplitude", "mu", "sigma", "ra", "dec", "geocent_time", "psi"},
	Func:          GaussianFrequencyDomainStrain,
}

// GaussianFrequencyDomainStrain implements the Gaussian model.
func GaussianFrequencyDomainStrain(frequencies *mat.VecDense, p waveform.Parameters) (waveform.Strain, error) {
	values, err := getAll(p, "amplitude", "mu", "sigma")
	if err != nil {
		return nil, err
	}
	amplitude, mu, sigma := values[0], values[1], values[2]
	if sigma == 0 {
		return nil, fmt.Errorf("%w: sigma must be non-zero", ErrInvalidParameter)
	}

	n := frequencies.Len()
	plus := make([]complex128, n)
	cross := make([]complex128, n)
	for index := 0; index < n; index++ {
		d := mu - frequencies.AtVec(index)
		h := complex(amplitude*math.Exp(-d*d/sigma/sigma/2), 0)
		plus[index] = h
		cross[index] = h
	}
	return waveform.Strain{waveform.Plus: plus, waveform.Cross: cross}, nil
}
