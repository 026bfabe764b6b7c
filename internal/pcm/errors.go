package pcm

import (
	"errors"
	"fmt"
)

// ErrUnsupportedBitDepth is returned by NewCodec for widths other than 16, 24 or 32 bits.
var ErrUnsupportedBitDepth = errors.New("unsupported bit depth")

// RangeError reports a sample outside [-1, 1] reaching the encoder.
// Encoding stops at the first offending sample and produces no output.
type RangeError struct {
	Index int
	Value float64
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("sample %d is not between -1 and 1: %v", e.Index, e.Value)
}

// FormatError reports a byte chunk whose length does not match the codec width.
type FormatError struct {
	Offset int // byte offset of the short chunk
	Length int // length of the short chunk in bytes
	Width  int // expected chunk length in bytes
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("chunk at byte %d is %d bytes long, want %d", e.Offset, e.Length, e.Width)
}
