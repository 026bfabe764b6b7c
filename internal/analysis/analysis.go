// Package analysis measures level and pitch of rendered channels.
package analysis

import (
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/dsp/fourier"
	"gonum.org/v1/gonum/floats"
)

const (
	// maxFFTSize bounds the analysis window to keep long files cheap to inspect.
	maxFFTSize = 1 << 17

	minFFTSize = 2

	// hannScale is the coefficient of the Hann window: 0.5 - 0.5cos(2πn/(N-1)).
	hannScale = 0.5
)

// Stats summarizes one channel.
type Stats struct {
	Peak              float64
	RMS               float64
	DominantFrequency float64
}

// Analyze returns level and pitch statistics for samples recorded at sampleRate.
func Analyze(samples []float64, sampleRate int) Stats {
	return Stats{
		Peak:              Peak(samples),
		RMS:               RMS(samples),
		DominantFrequency: DominantFrequency(samples, sampleRate),
	}
}

// Peak returns the largest absolute sample value.
func Peak(samples []float64) float64 {
	if len(samples) == 0 {
		return 0
	}
	return math.Max(floats.Max(samples), -floats.Min(samples))
}

// RMS returns the root-mean-square level of samples.
func RMS(samples []float64) float64 {
	if len(samples) == 0 {
		return 0
	}
	return floats.Norm(samples, 2) / math.Sqrt(float64(len(samples)))
}

// DominantFrequency returns the frequency in Hz of the strongest non-DC
// spectral bin. It analyzes at most the first maxFFTSize samples through a
// Hann window and refines the peak by parabolic interpolation.
// Silent or too-short input yields 0.
func DominantFrequency(samples []float64, sampleRate int) float64 {
	n := min(len(samples), maxFFTSize)
	if n < minFFTSize || sampleRate <= 0 {
		return 0
	}

	windowed := make([]float64, n)
	for i := range n {
		w := hannScale - hannScale*math.Cos(2*math.Pi*float64(i)/float64(n-1))
		windowed[i] = samples[i] * w
	}

	fft := fourier.NewFFT(n)
	coeffs := fft.Coefficients(nil, windowed)

	mags := make([]float64, len(coeffs))
	for i, c := range coeffs {
		mags[i] = cmplx.Abs(c)
	}
	mags[0] = 0 // ignore DC

	peak := floats.MaxIdx(mags)
	if mags[peak] == 0 {
		return 0
	}

	offset := 0.0
	if peak > 0 && peak < len(mags)-1 {
		alpha, beta, gamma := mags[peak-1], mags[peak], mags[peak+1]
		if denom := alpha - 2*beta + gamma; denom != 0 {
			offset = hannScale * (alpha - gamma) / denom
		}
	}

	return (fft.Freq(peak) + offset/float64(n)) * float64(sampleRate)
}
