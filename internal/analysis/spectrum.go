// Package analysis provides frequency-domain diagnostics for a completed
// run's scalar time series (mean kinetic energy, a single particle's
// height, and so on), used to characterize sloshing and oscillation
// frequencies a dam-break or rotating-tank run settles into.
package analysis

import (
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
)

// PowerSpectrum zero-pads data to the next power of two, runs an FFT, and
// returns the one-sided power spectrum magnitude.
func PowerSpectrum(data []float64) []float64 {
	padded := padToPowerOfTwo(data)
	spectrum := fft.FFTReal(padded)

	ps := make([]float64, len(spectrum)/2)
	for i := range ps {
		ps[i] = cmplx.Abs(spectrum[i])
	}
	return ps
}

// DominantFrequency returns the frequency (in Hz, given the series'
// sampling interval dt) carrying the most power, excluding the DC term.
func DominantFrequency(data []float64, dt float64) float64 {
	ps := PowerSpectrum(data)
	if len(ps) < 2 {
		return 0
	}
	maxPower := 0.0
	maxIdx := 1
	for i := 1; i < len(ps); i++ {
		if ps[i] > maxPower {
			maxPower = ps[i]
			maxIdx = i
		}
	}
	n := 2 * len(ps)
	return float64(maxIdx) / (float64(n) * dt)
}

func padToPowerOfTwo(data []float64) []float64 {
	n := 1
	for n < len(data) {
		n *= 2
	}
	if n == 0 {
		n = 1
	}
	padded := make([]float64, n)
	copy(padded, data)
	return padded
}
