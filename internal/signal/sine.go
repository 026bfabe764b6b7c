// Package signal generates real-valued test signals at a fixed sample rate.
package signal

import (
	"iter"
	"math"
)

const twoPi = 2 * math.Pi

// SampleCount returns the number of samples in seconds of audio at sampleRate,
// i.e. floor(sampleRate * seconds). Negative durations yield zero.
func SampleCount(sampleRate int, seconds float64) int {
	n := int(float64(sampleRate) * seconds)
	return max(n, 0)
}

// Sine returns a lazy sequence of amplitude * sin(2π * freq * i / sampleRate)
// for i in [0, SampleCount(sampleRate, seconds)).
//
// The sequence is restartable: every range over it starts again at sample 0.
func Sine(sampleRate int, freq, amplitude, seconds float64) iter.Seq[float64] {
	n := SampleCount(sampleRate, seconds)
	rate := float64(sampleRate)
	return func(yield func(float64) bool) {
		for i := range n {
			if !yield(amplitude * math.Sin(twoPi*freq*float64(i)/rate)) {
				return
			}
		}
	}
}

// Render collects a sine tone into a newly allocated slice.
func Render(sampleRate int, freq, amplitude, seconds float64) []float64 {
	out := make([]float64, 0, SampleCount(sampleRate, seconds))
	for s := range Sine(sampleRate, freq, amplitude, seconds) {
		out = append(out, s)
	}
	return out
}
