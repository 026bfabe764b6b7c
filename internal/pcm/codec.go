// Package pcm quantizes real-valued samples in [-1, 1] to fixed-width signed
// little-endian integers and back.
package pcm

import (
	"encoding/binary"
	"fmt"
	"iter"
	"math"
	"slices"

	"github.com/go-audio/audio"
	"github.com/tphakala/go-tone-synth/internal/simdops"
)

// Sample format constants
const (
	bitsPerSample16 = 16
	bitsPerSample24 = 24
	bitsPerSample32 = 32
	bitsPerByte     = 8

	bytesPerSample16 = 2
	bytesPerSample24 = 3
	bytesPerSample32 = 4

	bitShift8  = 8
	bitShift16 = 16

	// snapTolerance is the distance, in quantization steps, below which a
	// scaled sample is treated as lying exactly on an integer level.
	snapTolerance = 1e-4
)

// Codec converts between float samples and PCM bytes of one fixed width.
type Codec struct {
	bitDepth int
	width    int
	maxVal   float64
}

// NewCodec returns a codec for 16, 24 or 32-bit signed little-endian samples.
func NewCodec(bitDepth int) (Codec, error) {
	switch bitDepth {
	case bitsPerSample16, bitsPerSample24, bitsPerSample32:
	default:
		return Codec{}, fmt.Errorf("%w: %d (supported: 16, 24, 32)", ErrUnsupportedBitDepth, bitDepth)
	}
	return Codec{
		bitDepth: bitDepth,
		width:    bitDepth / bitsPerByte,
		maxVal:   MaxValue(bitDepth),
	}, nil
}

// MaxValue returns 2^(bitDepth-1) - 1, the largest magnitude a signed
// sample of the given width can represent symmetrically.
func MaxValue(bitDepth int) float64 {
	return float64(int64(1)<<(bitDepth-1) - 1)
}

// BitDepth returns the sample width in bits.
func (c Codec) BitDepth() int { return c.bitDepth }

// Width returns the sample width in bytes.
func (c Codec) Width() int { return c.width }

// MaxValue returns the scale factor between float and integer samples.
func (c Codec) MaxValue() float64 { return c.maxVal }

// Encode quantizes samples to PCM bytes. Every sample must lie in [-1, 1];
// otherwise a *RangeError for the first offending sample is returned along
// with nil output. Scaled values are truncated toward zero.
func (c Codec) Encode(samples []float64) ([]byte, error) {
	for i, s := range samples {
		if !(s >= -1 && s <= 1) {
			return nil, &RangeError{Index: i, Value: s}
		}
	}

	scaled := make([]float64, len(samples))
	simdops.Float64Ops().Scale(scaled, samples, c.maxVal)

	out := make([]byte, len(samples)*c.width)
	switch c.bitDepth {
	case bitsPerSample16:
		for i, v := range scaled {
			binary.LittleEndian.PutUint16(out[i*bytesPerSample16:], uint16(int16(truncate(v))))
		}
	case bitsPerSample24:
		for i, v := range scaled {
			q := truncate(v)
			out[i*bytesPerSample24] = byte(q)
			out[i*bytesPerSample24+1] = byte(q >> bitShift8)
			out[i*bytesPerSample24+2] = byte(q >> bitShift16)
		}
	case bitsPerSample32:
		for i, v := range scaled {
			binary.LittleEndian.PutUint32(out[i*bytesPerSample32:], uint32(int32(truncate(v))))
		}
	}

	return out, nil
}

// EncodeSeq is Encode over a lazy sequence. The sequence is fully consumed
// before any output is produced.
func (c Codec) EncodeSeq(samples iter.Seq[float64]) ([]byte, error) {
	return c.Encode(slices.Collect(samples))
}

// Decode returns a lazy sequence of samples in [-1, 1] decoded from data.
// A data length that is not a multiple of the sample width is reported as a
// *FormatError for the trailing short chunk.
func (c Codec) Decode(data []byte) (iter.Seq[float64], error) {
	if rem := len(data) % c.width; rem != 0 {
		return nil, &FormatError{Offset: len(data) - rem, Length: rem, Width: c.width}
	}

	return func(yield func(float64) bool) {
		for off := 0; off < len(data); off += c.width {
			// Divide rather than multiply by 1/maxVal: ±maxVal must decode to exactly ±1.
			if !yield(float64(c.readInt(data[off:off+c.width])) / c.maxVal) {
				return
			}
		}
	}, nil
}

// DecodeAll decodes data into a newly allocated slice.
func (c Codec) DecodeAll(data []byte) ([]float64, error) {
	seq, err := c.Decode(data)
	if err != nil {
		return nil, err
	}
	out := make([]float64, 0, len(data)/c.width)
	for s := range seq {
		out = append(out, s)
	}
	return out, nil
}

func (c Codec) readInt(b []byte) int64 {
	switch c.bitDepth {
	case bitsPerSample16:
		return int64(int16(binary.LittleEndian.Uint16(b)))
	case bitsPerSample24:
		return int64(audio.Int24LETo32(b))
	default:
		return int64(int32(binary.LittleEndian.Uint32(b)))
	}
}

// truncate rounds v toward zero, except that values within snapTolerance of
// an integer land on that integer. Decoded samples (q / maxVal) therefore
// re-encode to exactly q despite floating-point error in the rescale.
func truncate(v float64) int64 {
	if r := math.Round(v); math.Abs(v-r) < snapTolerance {
		return int64(r)
	}
	return int64(math.Trunc(v))
}
