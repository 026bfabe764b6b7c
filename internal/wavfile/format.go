// Package wavfile reads and writes canonical uncompressed PCM WAV files.
package wavfile

import (
	"errors"
	"fmt"
)

// WAV format constants
const (
	headerSize      = 44 // Total WAV header size in bytes
	riffHeaderSize  = 36 // RIFF header size (file size - 8 = riffHeaderSize + dataSize)
	pcmSubchunkSize = 16 // fmt subchunk size for PCM format
	pcmAudioFormat  = 1  // WAVE_FORMAT_PCM
	fileSizeOffset  = 4  // Byte offset for file size field in header
	dataSizeOffset  = 40 // Byte offset for data size field in header
	uint32Size      = 4  // Size of uint32 in bytes
	bitsPerByte     = 8

	bitsPerSample16 = 16
	bitsPerSample24 = 24
	bitsPerSample32 = 32

	maxChannels = 65535 // NumChannels is a uint16 header field

	writerBufferSize = 256 * 1024 // 256KB write buffer
)

// ErrInvalidFormat indicates format parameters that cannot be written to a WAV header.
var ErrInvalidFormat = errors.New("invalid WAV format")

// Format describes the PCM layout of a WAV file.
type Format struct {
	SampleRate int
	BitDepth   int
	Channels   int
}

// Validate checks that the format can be represented in a PCM WAV header.
func (f Format) Validate() error {
	if f.SampleRate <= 0 {
		return fmt.Errorf("%w: sample rate must be positive, got %d", ErrInvalidFormat, f.SampleRate)
	}
	if f.Channels < 1 || f.Channels > maxChannels {
		return fmt.Errorf("%w: channels must be 1-%d, got %d", ErrInvalidFormat, maxChannels, f.Channels)
	}
	switch f.BitDepth {
	case bitsPerSample16, bitsPerSample24, bitsPerSample32:
	default:
		return fmt.Errorf("%w: unsupported bit depth %d", ErrInvalidFormat, f.BitDepth)
	}
	return nil
}

// BlockAlign returns the size of one frame in bytes.
func (f Format) BlockAlign() int {
	return f.Channels * (f.BitDepth / bitsPerByte)
}

// ByteRate returns the number of payload bytes per second.
func (f Format) ByteRate() int {
	return f.SampleRate * f.BlockAlign()
}
