package signal

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/Eric-lyu-2019/bilby/waveform"
	"gonum.org/v1/gonum/mat"
)

// SineGaussian is the frequency domain sine-gaussian burst
//
// h+(f) = amplitude sqrt(pi) tau / 2 exp(-(pi tau (f - frequency))^2) e^(i phase)
//
// hx(f) = -i h+(f)
//
// with tau = quality / (sqrt(2) pi frequency).
var SineGaussian = waveform.SourceModel{
	Name:          "sine_gaussian",
	ParameterKeys: []string{"amplitude", "frequency", "quality", "phase"},
	Func:          SineGaussianFrequencyDomainStrain,
}

// SineGaussianFrequencyDomainStrain implements the SineGaussian model.
func SineGaussianFrequencyDomainStrain(frequencies *mat.VecDense, p waveform.Parameters) (waveform.Strain, error) {
	values, err := getAll(p, "amplitude", "frequency", "quality", "phase")
	if err != nil {
		return nil, err
	}
	amplitude, f0, quality, phase := values[0], values[1], values[2], values[3]
	if !(f0 > 0) {
		return nil, fmt.Errorf("%w: frequency %v must be positive", ErrInvalidParameter, f0)
	}
	if !(quality > 0) {
		return nil, fmt.Errorf("%w: quality %v must be positive", ErrInvalidParameter, quality)
	}

	tau := quality / (math.Sqrt2 * math.Pi * f0)
	norm := amplitude * math.SqrtPi * tau / 2
	rotation := cmplx.Rect(1, phase)

	n := frequencies.Len()
	plus := make([]complex128, n)
	cross := make([]complex128, n)
	for index := 0; index < n; index++ {
		x := math.Pi * tau * (frequencies.AtVec(index) - f0)
		h := complex(norm*math.Exp(-x*x), 0) * rotation
		plus[index] = h
		cross[index] = -1i * h
	}
	return waveform.Strain{waveform.Plus: plus, waveform.Cross: cross}, nil
}
