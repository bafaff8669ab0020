package analysis

import (
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
)

type SpectrumBin struct {
	Frequency float64
	Power     float64
}

// PowerSpectrum returns the one-sided power spectrum of samples taken every
// dt seconds, from 0 Hz up to the Nyquist frequency. Power is |X_k|^2 / n.
func PowerSpectrum(samples []float64, dt float64) []SpectrumBin {
	n := len(samples)
	if n < 2 || dt <= 0 {
		return nil
	}

	coeffs := fft.FFTReal(samples)
	bins := make([]SpectrumBin, n/2+1)
	for k := range bins {
		a := cmplx.Abs(coeffs[k])
		bins[k] = SpectrumBin{
			Frequency: float64(k) / (float64(n) * dt),
			Power:     a * a / float64(n),
		}
	}
	return bins
}

// DominantFrequency is the frequency of the strongest non-DC bin.
func DominantFrequency(bins []SpectrumBin) float64 {
	best := -1
	for k := 1; k < len(bins); k++ {
		if best < 0 || bins[k].Power > bins[best].Power {
			best = k
		}
	}
	if best < 0 {
		return 0
	}
	return bins[best].Frequency
}

// Series extracts one state component from a recorded run.
func Series[S ~[]float64](states []S, index int) []float64 {
	out := make([]float64, 0, len(states))
	for _, s := range states {
		if index < len(s) {
			out = append(out, s[index])
		}
	}
	return out
}
