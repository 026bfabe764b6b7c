package wavfile

import (
	"fmt"
	"os"
	"time"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/tphakala/go-tone-synth/internal/interleave"
	"github.com/tphakala/go-tone-synth/internal/pcm"
)

// Clip is a fully decoded WAV file with samples normalized to [-1, 1].
type Clip struct {
	Format   Format
	Frames   int
	Channels [][]float64
}

// Duration returns the playing time of the clip.
func (c *Clip) Duration() time.Duration {
	if c.Format.SampleRate == 0 {
		return 0
	}
	return time.Duration(c.Frames) * time.Second / time.Duration(c.Format.SampleRate)
}

// Open reads and decodes the WAV file at path.
func Open(path string) (*Clip, error) {
	inputFile, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input file: %w", err)
	}
	defer func() { _ = inputFile.Close() }()

	decoder := wav.NewDecoder(inputFile)
	if !decoder.IsValidFile() {
		return nil, fmt.Errorf("invalid WAV file: %s", path)
	}

	format := Format{
		SampleRate: int(decoder.SampleRate),
		BitDepth:   int(decoder.BitDepth),
		Channels:   int(decoder.NumChans),
	}
	if err := format.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	buf, err := decoder.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to read audio data: %w", err)
	}

	channels, err := deinterleaveBuffer(buf, format)
	if err != nil {
		return nil, err
	}

	return &Clip{
		Format:   format,
		Frames:   len(buf.Data) / format.Channels,
		Channels: channels,
	}, nil
}

// deinterleaveBuffer converts interleaved int samples to per-channel float
// slices, dropping a trailing partial frame.
func deinterleaveBuffer(buf *audio.IntBuffer, format Format) ([][]float64, error) {
	frames := len(buf.Data) / format.Channels
	maxVal := pcm.MaxValue(format.BitDepth)

	samples := make([]float64, frames*format.Channels)
	for i := range samples {
		samples[i] = float64(buf.Data[i]) / maxVal
	}

	return interleave.Separate(samples, format.Channels)
}
