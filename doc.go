// Package synth renders pure sine tones to uncompressed PCM WAV files.
//
// The package is a small linear pipeline:
//
//	Tone -> [Generate] -> channel -> [Interleave] -> stream -> [Quantize] -> bytes -> [WAV]
//
// Each stage takes its parameters from an explicit [Config] rather than
// package-level state.
//
// # Quick Start
//
// Render a two-tone stereo interval and write it to disk:
//
//	cfg := synth.DefaultConfig() // 44.1 kHz, 16-bit
//	root, fifth := synth.PerfectFifth(220, 3.0, 0.4, 0.3)
//	if err := cfg.WriteWAV("fifth.wav", 0, root, fifth); err != nil {
//	    log.Fatal(err)
//	}
//
// # Generation
//
// [Config.Sine] returns a lazy, restartable iter.Seq of
// amplitude * sin(2π * f * i / rate) with floor(rate * duration) samples.
// [Config.Render] collects it into a slice.
//
// # Interleaving
//
// [MergeChannels] arranges N channels in frame-major order and
// [SeparateChannels] reverses it. For equal-length channels
// SeparateChannels(MergeChannels(c), len(c)) returns c unchanged. Unequal
// channels are truncated to the shortest, so callers should render tones of
// equal duration.
//
// # Quantization
//
// [Config.ConvertToBytes] scales samples by 2^(BitDepth-1) - 1 and truncates
// toward zero. Samples outside [-1, 1] are an error ([RangeError]), never
// clamped, and a failed conversion produces no output.
// [Config.ConvertToSamples] reverses the mapping; a byte stream that is not
// a whole number of samples fails with [FormatError]. Decoding and
// re-encoding is bit-exact.
//
// # Container
//
// [Config.WriteWAV] writes a canonical 44-byte RIFF/WAVE header followed by
// the PCM payload. The file handle is always closed and the header sizes
// are fixed up on every return path. A declared frame count longer than the
// rendered tones is filled with silence.
//
// # Thread Safety
//
// Config is an immutable value and all functions are safe for concurrent
// use. Writing two files to the same path concurrently is not coordinated.
package synth
