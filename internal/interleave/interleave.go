// Package interleave converts between planar (per-channel) and interleaved
// (frame-major) sample layouts.
package interleave

import (
	"errors"
	"fmt"

	"github.com/tphakala/go-tone-synth/internal/simdops"
)

const (
	monoChannels   = 1
	stereoChannels = 2
)

// ErrInvalidChannelCount is returned when a channel count below one is requested.
var ErrInvalidChannelCount = errors.New("channel count must be at least 1")

// Merge interleaves channels in frame-major order:
// [c0[0], c1[0], ..., cN[0], c0[1], c1[1], ...].
//
// Channels of unequal length are truncated to the shortest one.
func Merge[F simdops.Float](channels [][]F) []F {
	if len(channels) == 0 {
		return []F{}
	}

	frames := len(channels[0])
	for _, ch := range channels[1:] {
		frames = min(frames, len(ch))
	}

	numChannels := len(channels)
	out := make([]F, frames*numChannels)

	switch numChannels {
	case monoChannels:
		copy(out, channels[0][:frames])
	case stereoChannels:
		if frames > 0 {
			simdops.For[F]().Interleave2(out, channels[0][:frames], channels[1][:frames])
		}
	default:
		for i := range frames {
			base := i * numChannels
			for ch := range numChannels {
				out[base+ch] = channels[ch][i]
			}
		}
	}

	return out
}

// Separate splits an interleaved stream into numChannels channels. Channel k
// receives samples k, k+numChannels, k+2*numChannels, ...
//
// When len(samples) is not a multiple of numChannels the leading channels
// hold one more sample than the trailing ones.
func Separate[F simdops.Float](samples []F, numChannels int) ([][]F, error) {
	if numChannels < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidChannelCount, numChannels)
	}

	out := make([][]F, numChannels)
	for ch := range numChannels {
		n := 0
		if ch < len(samples) {
			n = (len(samples) - ch + numChannels - 1) / numChannels
		}
		out[ch] = make([]F, n)
	}

	for i, s := range samples {
		out[i%numChannels][i/numChannels] = s
	}

	return out, nil
}
