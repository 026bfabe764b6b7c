package synth

import (
	"encoding/binary"
	"errors"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tphakala/go-tone-synth/internal/analysis"
	"github.com/tphakala/go-tone-synth/internal/testutil"
	"github.com/tphakala/go-tone-synth/internal/wavfile"
)

func TestConfig_Sine(t *testing.T) {
	cfg := DefaultConfig()
	tone := Tone{Frequency: 220, Amplitude: 0.4, Duration: 3}

	samples := slices.Collect(cfg.Sine(tone))

	assert.Len(t, samples, 132300)
	testutil.AssertAllInRange(t, samples, -0.4-1e-12, 0.4+1e-12)
	assert.Equal(t, samples, cfg.Render(tone))
}

func TestPerfectFifth(t *testing.T) {
	root, fifth := PerfectFifth(220, 3, 0.4, 0.3)

	assert.Equal(t, Tone{Frequency: 220, Amplitude: 0.4, Duration: 3}, root)
	assert.Equal(t, Tone{Frequency: 330, Amplitude: 0.3, Duration: 3}, fifth)
}

func TestSynthesize(t *testing.T) {
	cfg := DefaultConfig()
	root, fifth := PerfectFifth(220, 0.5, 0.4, 0.3)

	data, err := cfg.Synthesize(root, fifth)
	require.NoError(t, err)
	require.Len(t, data, cfg.Frames(0.5)*2*2)

	seq, err := cfg.ConvertToSamples(data)
	require.NoError(t, err)
	channels, err := SeparateChannels(slices.Collect(seq), 2)
	require.NoError(t, err)

	testutil.AssertSlicesInDelta(t, cfg.Render(root), channels[0], testutil.LSB16)
	testutil.AssertSlicesInDelta(t, cfg.Render(fifth), channels[1], testutil.LSB16)
}

func TestSynthesize_NoTones(t *testing.T) {
	_, err := DefaultConfig().Synthesize()
	require.ErrorIs(t, err, ErrNoTones)
}

func TestSynthesize_TooLoud(t *testing.T) {
	data, err := DefaultConfig().Synthesize(Tone{Frequency: 440, Amplitude: 1.5, Duration: 0.01})

	assert.Nil(t, data)
	var rangeErr *RangeError
	require.True(t, errors.As(err, &rangeErr))
	assert.Greater(t, rangeErr.Value, 1.0)
}

func TestSynthesize_TruncatesToShortestTone(t *testing.T) {
	cfg := DefaultConfig()

	data, err := cfg.Synthesize(
		Tone{Frequency: 220, Amplitude: 0.4, Duration: 0.2},
		Tone{Frequency: 330, Amplitude: 0.3, Duration: 0.1},
	)
	require.NoError(t, err)
	assert.Len(t, data, cfg.Frames(0.1)*2*2)
}

func TestWriteWAV_InvalidDirectory(t *testing.T) {
	root, fifth := PerfectFifth(220, 0.01, 0.4, 0.3)
	err := DefaultConfig().WriteWAV(filepath.Join(t.TempDir(), "missing", "out.wav"), 0, root, fifth)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create output file")
}

func TestWriteWAV_RangeErrorCreatesNoFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "loud.wav")

	err := DefaultConfig().WriteWAV(path, 0, Tone{Frequency: 440, Amplitude: 2, Duration: 0.01})
	var rangeErr *RangeError
	require.ErrorAs(t, err, &rangeErr)

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}

func TestWriteWAV_PerfectFifth(t *testing.T) {
	cfg := DefaultConfig()
	path := filepath.Join(t.TempDir(), "perfect_fifth.wav")
	root, fifth := PerfectFifth(220, 3, 0.4, 0.3)

	require.NoError(t, cfg.WriteWAV(path, cfg.Frames(5), root, fifth))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Len(t, raw, 44+220500*4)
	assert.Equal(t, uint32(220500*4), binary.LittleEndian.Uint32(raw[40:44]))

	clip, err := wavfile.Open(path)
	require.NoError(t, err)
	assert.Equal(t, wavfile.Format{SampleRate: 44100, BitDepth: 16, Channels: 2}, clip.Format)
	assert.Equal(t, 220500, clip.Frames)

	tone := cfg.Frames(3)
	left := analysis.Analyze(clip.Channels[0][:tone], cfg.SampleRate)
	right := analysis.Analyze(clip.Channels[1][:tone], cfg.SampleRate)

	testutil.AssertInRange(t, left.DominantFrequency, 220-testutil.FrequencyTolerance, 220+testutil.FrequencyTolerance)
	testutil.AssertInRange(t, right.DominantFrequency, 330-testutil.FrequencyTolerance, 330+testutil.FrequencyTolerance)
	assert.InDelta(t, 0.4, left.Peak, 1e-3)
	assert.InDelta(t, 0.3, right.Peak, 1e-3)

	// The declared five seconds end in silence after the three-second tones.
	assert.InDelta(t, 0.0, analysis.Peak(clip.Channels[0][tone:]), 0)
	assert.InDelta(t, 0.0, analysis.Peak(clip.Channels[1][tone:]), 0)
}
