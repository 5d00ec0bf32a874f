package signal

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/Eric-lyu-2019/bilby/gonumExtensions"
	"github.com/Eric-lyu-2019/bilby/waveform"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func simulationParameters() waveform.Parameters {
	return waveform.Parameters{
		"amplitude":    1e-21,
		"mu":           100,
		"sigma":        1,
		"ra":           1.375,
		"dec":          -1.2108,
		"geocent_time": 1126259642.413,
		"psi":          2.659,
	}
}

func TestLookup(t *testing.T) {
	sm, err := Lookup("gaussian")
	require.NoError(t, err)
	assert.Equal(t, "gaussian", sm.Name)

	_, err = Lookup("bbh")
	assert.ErrorIs(t, err, ErrUnknownModel)

	assert.Equal(t, []string{"gaussian", "sine_gaussian"}, Names())
}

func TestGaussianFrequencyDomainStrain(t *testing.T) {
	frequencies := gonumExtensions.Arange(201, 1)
	strain, err := GaussianFrequencyDomainStrain(frequencies, simulationParameters())
	require.NoError(t, err)
	require.NoError(t, strain.Validate(201))

	// Peak at mu
	assert.InDelta(t, 1e-21, real(strain[waveform.Plus][100]), 1e-35)
	// One sigma away
	assert.InDelta(t, 1e-21*math.Exp(-0.5), real(strain[waveform.Plus][101]), 1e-35)
	assert.Equal(t, strain[waveform.Plus], strain[waveform.Cross])
}

func TestGaussianMissingAndInvalid(t *testing.T) {
	p := simulationParameters()
	delete(p, "mu")
	_, err := GaussianFrequencyDomainStrain(gonumExtensions.Arange(4, 1), p)
	assert.ErrorIs(t, err, ErrMissingParameter)

	p = simulationParameters()
	p["sigma"] = 0
	_, err = GaussianFrequencyDomainStrain(gonumExtensions.Arange(4, 1), p)
	assert.ErrorIs(t, err, ErrInvalidParameter)
}

func TestSineGaussianFrequencyDomainStrain(t *testing.T) {
	p := waveform.Parameters{"amplitude": 1, "frequency": 50, "quality": 10, "phase": 0}
	frequencies := gonumExtensions.Arange(101, 1)
	strain, err := SineGaussianFrequencyDomainStrain(frequencies, p)
	require.NoError(t, err)
	require.NoError(t, strain.Validate(101))

	tau := 10 / (math.Sqrt2 * math.Pi * 50)
	assert.InDelta(t, math.SqrtPi*tau/2, cmplx.Abs(strain[waveform.Plus][50]), 1e-12)
	// Cross lags plus by a quarter cycle
	assert.InDelta(t, 0, cmplx.Abs(strain[waveform.Cross][50]+1i*strain[waveform.Plus][50]), 1e-12)
	assert.Greater(t, cmplx.Abs(strain[waveform.Plus][50]), cmplx.Abs(strain[waveform.Plus][40]))
}

func TestSineGaussianInvalid(t *testing.T) {
	frequencies := gonumExtensions.Arange(4, 1)
	_, err := SineGaussianFrequencyDomainStrain(frequencies, waveform.Parameters{"amplitude": 1, "frequency": 0, "quality": 1, "phase": 0})
	assert.ErrorIs(t, err, ErrInvalidParameter)
	_, err = SineGaussianFrequencyDomainStrain(frequencies, waveform.Parameters{"amplitude": 1, "frequency": 10, "quality": -1, "phase": 0})
	assert.ErrorIs(t, err, ErrInvalidParameter)
	_, err = SineGaussianFrequencyDomainStrain(frequencies, waveform.Parameters{"amplitude": 1})
	assert.ErrorIs(t, err, ErrMissingParameter)
}
