package wavfile

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"os"
)

// Option configures a Writer.
type Option func(*Writer)

// WithFrameCount declares the number of frames the file should hold.
// A payload shorter than the declared count is padded with silence on Close;
// a longer payload is kept as written.
func WithFrameCount(frames int) Option {
	return func(w *Writer) {
		w.declaredFrames = int64(max(frames, 0))
	}
}

// Writer streams PCM payload bytes into a WAV file. The header is written
// with placeholder sizes on Create and fixed up on Close.
type Writer struct {
	w      *bufio.Writer
	f      *os.File
	format Format

	dataSize       int64
	declaredFrames int64
	closed         bool
}

// Create creates path and writes a WAV header for format. The parent
// directory must already exist.
func Create(path string, format Format, opts ...Option) (*Writer, error) {
	if err := format.Validate(); err != nil {
		return nil, err
	}

	outputFile, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create output file: %w", err)
	}

	w := &Writer{
		w:      bufio.NewWriterSize(outputFile, writerBufferSize),
		f:      outputFile,
		format: format,
	}
	for _, opt := range opts {
		opt(w)
	}

	if err := w.writeHeader(); err != nil {
		_ = outputFile.Close()
		return nil, fmt.Errorf("failed to write WAV header: %w", err)
	}

	return w, nil
}

func (w *Writer) writeHeader() error {
	header := make([]byte, headerSize)

	// RIFF header
	copy(header[0:4], "RIFF")
	binary.LittleEndian.PutUint32(header[4:8], 0) // Placeholder for file size - 8
	copy(header[8:12], "WAVE")

	// fmt subchunk
	copy(header[12:16], "fmt ")
	binary.LittleEndian.PutUint32(header[16:20], pcmSubchunkSize)
	binary.LittleEndian.PutUint16(header[20:22], pcmAudioFormat)
	binary.LittleEndian.PutUint16(header[22:24], uint16(w.format.Channels))
	binary.LittleEndian.PutUint32(header[24:28], uint32(w.format.SampleRate))
	binary.LittleEndian.PutUint32(header[28:32], uint32(w.format.ByteRate()))
	binary.LittleEndian.PutUint16(header[32:34], uint16(w.format.BlockAlign()))
	binary.LittleEndian.PutUint16(header[34:36], uint16(w.format.BitDepth))

	// data subchunk
	copy(header[36:40], "data")
	binary.LittleEndian.PutUint32(header[40:44], 0) // Placeholder for data size

	_, err := w.w.Write(header)
	return err
}

// Write appends raw little-endian PCM bytes to the data chunk.
func (w *Writer) Write(p []byte) (int, error) {
	if w.closed {
		return 0, os.ErrClosed
	}
	n, err := w.w.Write(p)
	w.dataSize += int64(n)
	return n, err
}

// Frames returns the number of complete frames written so far.
func (w *Writer) Frames() int64 {
	return w.dataSize / int64(w.format.BlockAlign())
}

// Close pads the payload to the declared frame count, flushes, updates the
// header with the final sizes and closes the file. Calling Close more than
// once is a no-op.
func (w *Writer) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true

	err := w.finalize()
	if closeErr := w.f.Close(); err == nil {
		err = closeErr
	}
	return err
}

func (w *Writer) finalize() error {
	if err := w.pad(); err != nil {
		return fmt.Errorf("failed to pad audio data: %w", err)
	}

	if err := w.w.Flush(); err != nil {
		return fmt.Errorf("failed to flush audio data: %w", err)
	}

	// File size at offset 4: total file size - 8
	// Data size at offset 40: actual data size
	sizeBytes := make([]byte, uint32Size)

	binary.LittleEndian.PutUint32(sizeBytes, uint32(riffHeaderSize+w.dataSize))
	if _, err := w.f.WriteAt(sizeBytes, fileSizeOffset); err != nil {
		return fmt.Errorf("failed to update WAV header: %w", err)
	}

	binary.LittleEndian.PutUint32(sizeBytes, uint32(w.dataSize))
	if _, err := w.f.WriteAt(sizeBytes, dataSizeOffset); err != nil {
		return fmt.Errorf("failed to update WAV header: %w", err)
	}

	return nil
}

// pad completes a trailing partial frame and appends silent frames up to
// the declared frame count.
func (w *Writer) pad() error {
	blockAlign := int64(w.format.BlockAlign())
	target := w.declaredFrames * blockAlign
	if rem := w.dataSize % blockAlign; rem != 0 {
		target = max(target, w.dataSize+blockAlign-rem)
	}
	if target <= w.dataSize {
		return nil
	}

	n, err := io.CopyN(w.w, zeroReader{}, target-w.dataSize)
	w.dataSize += n
	return err
}

type zeroReader struct{}

func (zeroReader) Read(p []byte) (int, error) {
	clear(p)
	return len(p), nil
}

// WriteFile writes payload to a new WAV file at path. The file is closed and
// its header finalized on every return path; a close error is reported when
// no earlier error occurred.
func WriteFile(path string, format Format, payload []byte, opts ...Option) (err error) {
	w, err := Create(path, format, opts...)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := w.Close(); err == nil {
			err = closeErr
		}
	}()

	if _, err := w.Write(payload); err != nil {
		return fmt.Errorf("failed to write audio data: %w", err)
	}

	return nil
}
