package synth

import (
	"fmt"

	"github.com/tphakala/go-tone-synth/internal/interleave"
	"github.com/tphakala/go-tone-synth/internal/wavfile"
)

// Synthesize renders each tone into its own channel, interleaves the
// channels and quantizes the result to PCM bytes. Channels of different
// lengths are truncated to the shortest tone.
func (c Config) Synthesize(tones ...Tone) ([]byte, error) {
	if len(tones) == 0 {
		return nil, ErrNoTones
	}

	codec, err := c.codec()
	if err != nil {
		return nil, err
	}

	channels := make([][]float64, len(tones))
	for i, t := range tones {
		channels[i] = c.Render(t)
	}

	data, err := codec.Encode(interleave.Merge(channels))
	if err != nil {
		return nil, fmt.Errorf("failed to quantize samples: %w", err)
	}
	return data, nil
}

// WriteWAV synthesizes tones (one channel each) and writes them to a WAV
// file at path. frames declares the container length; a shorter render is
// padded with silence. Pass 0 to use the rendered length.
//
// The parent directory of path must exist.
func (c Config) WriteWAV(path string, frames int, tones ...Tone) error {
	data, err := c.Synthesize(tones...)
	if err != nil {
		return err
	}

	return wavfile.WriteFile(path, c.wavFormat(len(tones)), data, wavfile.WithFrameCount(frames))
}
