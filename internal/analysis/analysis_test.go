package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tphakala/go-tone-synth/internal/testutil"
)

const testRate = 44100

func TestPeak(t *testing.T) {
	assert.InDelta(t, 0.0, Peak(nil), 0)
	assert.InDelta(t, 0.7, Peak([]float64{0.1, -0.7, 0.5}), 0)
	assert.InDelta(t, 0.9, Peak([]float64{0.9, -0.7}), 0)
}

func TestRMS(t *testing.T) {
	assert.InDelta(t, 0.0, RMS(nil), 0)
	assert.InDelta(t, 0.5, RMS([]float64{0.5, -0.5, 0.5, -0.5}), testutil.DefaultTolerance)

	sine := testutil.SineSamples(testRate, testRate, 1000, 0.4)
	assert.InDelta(t, 0.4/1.4142135623730951, RMS(sine), 1e-4)
}

func TestDominantFrequency(t *testing.T) {
	for _, freq := range []float64{220, 330, 440, 997, 5000} {
		samples := testutil.SineSamples(testRate, testRate, freq, 0.3)
		got := DominantFrequency(samples, testRate)
		testutil.AssertInRange(t, got, freq-testutil.FrequencyTolerance, freq+testutil.FrequencyTolerance)
	}
}

func TestDominantFrequency_Degenerate(t *testing.T) {
	assert.InDelta(t, 0.0, DominantFrequency(nil, testRate), 0)
	assert.InDelta(t, 0.0, DominantFrequency([]float64{0.5}, testRate), 0)
	assert.InDelta(t, 0.0, DominantFrequency(make([]float64, 1024), testRate), 0)
	assert.InDelta(t, 0.0, DominantFrequency([]float64{0.1, 0.2}, 0), 0)
}

func TestAnalyze(t *testing.T) {
	samples := testutil.SineSamples(testRate/2, testRate, 330, 0.3)

	stats := Analyze(samples, testRate)

	assert.InDelta(t, 0.3, stats.Peak, 1e-3)
	assert.InDelta(t, 0.3/1.4142135623730951, stats.RMS, 1e-3)
	testutil.AssertInRange(t, stats.DominantFrequency, 328, 332)
}
