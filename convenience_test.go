package synth

import (
	"errors"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tphakala/go-tone-synth/internal/testutil"
)

func TestMergeSeparateChannels(t *testing.T) {
	channels := [][]float64{{11, 12}, {21, 22}, {31, 32}}

	merged := MergeChannels(channels)
	assert.Equal(t, []float64{11, 21, 31, 12, 22, 32}, merged)

	separated, err := SeparateChannels(merged, 3)
	require.NoError(t, err)
	assert.Equal(t, channels, separated)
}

func TestSeparateChannels_InvalidCount(t *testing.T) {
	_, err := SeparateChannels([]float64{1}, 0)
	require.Error(t, err)
}

func TestInterleaveToStereo(t *testing.T) {
	got := InterleaveToStereo([]float64{1, 2, 3}, []float64{-1, -2})
	assert.Equal(t, []float64{1, -1, 2, -2}, got)
}

func TestDeinterleaveFromStereo(t *testing.T) {
	left, right := DeinterleaveFromStereo([]float64{1, -1, 2, -2, 3})
	assert.Equal(t, []float64{1, 2}, left)
	assert.Equal(t, []float64{-1, -2}, right)
}

func TestStereoRoundTrip(t *testing.T) {
	cfg := DefaultConfig()
	root, fifth := PerfectFifth(220, 0.1, 0.4, 0.3)
	left, right := cfg.Render(root), cfg.Render(fifth)

	gotLeft, gotRight := DeinterleaveFromStereo(InterleaveToStereo(left, right))

	assert.Equal(t, left, gotLeft)
	assert.Equal(t, right, gotRight)
}

func TestConvertRoundTrip(t *testing.T) {
	cfg := DefaultConfig()
	samples := testutil.SineSamples(4410, 44100, 440, 1.0)

	data, err := cfg.ConvertToBytes(samples)
	require.NoError(t, err)
	assert.Len(t, data, len(samples)*cfg.BytesPerSample())

	seq, err := cfg.ConvertToSamples(data)
	require.NoError(t, err)
	decoded := slices.Collect(seq)
	testutil.AssertSlicesInDelta(t, samples, decoded, testutil.LSB16)

	again, err := cfg.ConvertToBytes(decoded)
	require.NoError(t, err)
	assert.Equal(t, data, again)
}

func TestConvertToBytes_RangeError(t *testing.T) {
	cfg := DefaultConfig()

	data, err := cfg.ConvertToBytes([]float64{0.2, 1.5, 0.1})
	assert.Nil(t, data)

	var rangeErr *RangeError
	require.True(t, errors.As(err, &rangeErr))
	assert.Equal(t, 1, rangeErr.Index)
	assert.InDelta(t, 1.5, rangeErr.Value, 0)
}

func TestConvertToSamples_FormatError(t *testing.T) {
	cfg := DefaultConfig()

	_, err := cfg.ConvertToSamples([]byte{1, 2, 3})

	var formatErr *FormatError
	require.True(t, errors.As(err, &formatErr))
	assert.Equal(t, 2, formatErr.Offset)
	assert.Equal(t, 1, formatErr.Length)
	assert.Equal(t, 2, formatErr.Width)
}

func TestConvert_InvalidConfig(t *testing.T) {
	cfg := Config{SampleRate: RateCD, BitDepth: 12}

	_, err := cfg.ConvertToBytes([]float64{0})
	require.ErrorIs(t, err, ErrInvalidConfig)

	_, err = cfg.ConvertToSamples([]byte{0, 0})
	require.ErrorIs(t, err, ErrInvalidConfig)
}
