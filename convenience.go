package synth

import (
	"iter"

	"github.com/tphakala/go-tone-synth/internal/interleave"
)

// MergeChannels interleaves channels in frame-major order:
// [c0[0], c1[0], ..., c0[1], c1[1], ...].
// Channels of unequal length are truncated to the shortest.
func MergeChannels(channels [][]float64) []float64 {
	return interleave.Merge(channels)
}

// SeparateChannels is the inverse of MergeChannels: channel k receives every
// numChannels-th sample starting at offset k.
func SeparateChannels(samples []float64, numChannels int) ([][]float64, error) {
	return interleave.Separate(samples, numChannels)
}

// InterleaveToStereo converts two mono channels to interleaved stereo.
// Output format: [L0, R0, L1, R1, L2, R2, ...]
func InterleaveToStereo(left, right []float64) []float64 {
	return interleave.Merge([][]float64{left, right})
}

// DeinterleaveFromStereo converts interleaved stereo to two mono channels.
// Input format: [L0, R0, L1, R1, L2, R2, ...]. A trailing unpaired sample
// is dropped.
func DeinterleaveFromStereo(interleaved []float64) (left, right []float64) {
	frames := len(interleaved) / stereoChannels
	channels, _ := interleave.Separate(interleaved[:frames*stereoChannels], stereoChannels)
	return channels[0], channels[1]
}

// ConvertToBytes quantizes samples in [-1, 1] to little-endian PCM at the
// configured bit depth. Out-of-range samples fail with a *RangeError.
func (c Config) ConvertToBytes(samples []float64) ([]byte, error) {
	codec, err := c.codec()
	if err != nil {
		return nil, err
	}
	return codec.Encode(samples)
}

// ConvertToSamples decodes little-endian PCM at the configured bit depth
// into a lazy sequence of samples in [-1, 1]. A length that is not a whole
// number of samples fails with a *FormatError.
func (c Config) ConvertToSamples(data []byte) (iter.Seq[float64], error) {
	codec, err := c.codec()
	if err != nil {
		return nil, err
	}
	return codec.Decode(data)
}
