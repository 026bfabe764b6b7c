package synth

import (
	"iter"

	"github.com/tphakala/go-tone-synth/internal/signal"
)

// Tone describes a pure sine tone.
type Tone struct {
	// Frequency in Hz. Must be positive.
	Frequency float64

	// Amplitude is the peak sample value. Keep it at or below 1.0; louder
	// tones fail quantization with a RangeError.
	Amplitude float64

	// Duration in seconds. The tone has floor(SampleRate * Duration) samples.
	Duration float64
}

// Sine returns the tone as a lazy, restartable sample sequence.
func (c Config) Sine(t Tone) iter.Seq[float64] {
	return signal.Sine(c.SampleRate, t.Frequency, t.Amplitude, t.Duration)
}

// Render returns the tone's samples.
func (c Config) Render(t Tone) []float64 {
	return signal.Render(c.SampleRate, t.Frequency, t.Amplitude, t.Duration)
}

// PerfectFifth returns a just-intonation fifth above root: root and
// root * 3/2, each lasting seconds, at the given amplitudes.
func PerfectFifth(root, seconds, rootAmplitude, fifthAmplitude float64) (Tone, Tone) {
	return Tone{Frequency: root, Amplitude: rootAmplitude, Duration: seconds},
		Tone{Frequency: root * fifthRatio, Amplitude: fifthAmplitude, Duration: seconds}
}
