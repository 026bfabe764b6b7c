package synth

import (
	"errors"
	"fmt"

	"github.com/tphakala/go-tone-synth/internal/pcm"
	"github.com/tphakala/go-tone-synth/internal/signal"
	"github.com/tphakala/go-tone-synth/internal/wavfile"
)

// Common errors returned by the synthesizer.
var (
	// ErrInvalidConfig indicates invalid configuration parameters.
	ErrInvalidConfig = errors.New("invalid synthesizer configuration")

	// ErrNoTones indicates a render request without any tone.
	ErrNoTones = errors.New("at least one tone is required")
)

// RangeError reports a sample outside [-1, 1] reaching the quantizer.
// Use errors.As to retrieve the offending index and value.
type RangeError = pcm.RangeError

// FormatError reports a PCM byte stream whose length is not a whole number
// of samples.
type FormatError = pcm.FormatError

// Config holds the fixed sampling parameters shared by every pipeline stage.
// A Config is a plain value; copies are independent.
type Config struct {
	// SampleRate is the sampling rate in Hz.
	SampleRate int

	// BitDepth is the width of quantized samples in bits (16, 24 or 32).
	BitDepth int
}

// DefaultConfig returns CD-quality settings: 44.1 kHz, 16-bit.
func DefaultConfig() Config {
	return Config{
		SampleRate: RateCD,
		BitDepth:   defaultBitDepth,
	}
}

// Validate checks if the configuration is valid.
func (c Config) Validate() error {
	if c.SampleRate <= 0 {
		return fmt.Errorf("%w: sample rate must be positive", ErrInvalidConfig)
	}

	switch c.BitDepth {
	case bitDepth16, bitDepth24, bitDepth32:
	default:
		return fmt.Errorf("%w: bit depth must be 16, 24 or 32, got %d", ErrInvalidConfig, c.BitDepth)
	}

	return nil
}

// MaxSampleValue returns the integer magnitude a sample of 1.0 maps to,
// 2^(BitDepth-1) - 1.
func (c Config) MaxSampleValue() int {
	return int(pcm.MaxValue(c.BitDepth))
}

// BytesPerSample returns the size of one quantized sample.
func (c Config) BytesPerSample() int {
	return c.BitDepth / bitsPerByte
}

// Frames returns the number of frames in seconds of audio, floor(rate * seconds).
func (c Config) Frames(seconds float64) int {
	return signal.SampleCount(c.SampleRate, seconds)
}

func (c Config) codec() (pcm.Codec, error) {
	if err := c.Validate(); err != nil {
		return pcm.Codec{}, err
	}
	return pcm.NewCodec(c.BitDepth)
}

func (c Config) wavFormat(channels int) wavfile.Format {
	return wavfile.Format{
		SampleRate: c.SampleRate,
		BitDepth:   c.BitDepth,
		Channels:   channels,
	}
}
