// Command synth-wav renders a two-tone stereo interval to a WAV file.
//
// Usage:
//
//	synth-wav                       # writes output/perfect_fifth.wav
//	synth-wav -o fifth.wav -v       # custom path, verbose logging
//
// The left channel holds A3 (220 Hz) and the right channel the just
// perfect fifth above it, E4 (330 Hz). Both tones last three seconds; the
// file declares five seconds and the remainder is silence.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	synth "github.com/tphakala/go-tone-synth"
)

const (
	defaultOutputPath = "output/perfect_fifth.wav"

	rootFrequency  = 220.0 // A3
	rootAmplitude  = 0.4
	fifthAmplitude = 0.3
	toneSeconds    = 3.0
	fileSeconds    = 5.0

	outputDirPerm = 0o755
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	outputPath := flag.String("o", defaultOutputPath, "Output WAV file path")
	verbose := flag.Bool("v", false, "Verbose output")
	flag.Parse()

	cfg := synth.DefaultConfig()
	root, fifth := synth.PerfectFifth(rootFrequency, toneSeconds, rootAmplitude, fifthAmplitude)
	frames := cfg.Frames(fileSeconds)

	if *verbose {
		log.Printf("Output: %s", *outputPath)
		log.Printf("Format: %d Hz, 2 channels, %d-bit", cfg.SampleRate, cfg.BitDepth)
		log.Printf("Left: %.1f Hz @ %.2f, Right: %.1f Hz @ %.2f, %.1fs each",
			root.Frequency, root.Amplitude, fifth.Frequency, fifth.Amplitude, toneSeconds)
		log.Printf("Declared length: %d frames (%.1fs)", frames, fileSeconds)
	}

	if err := os.MkdirAll(filepath.Dir(*outputPath), outputDirPerm); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	start := time.Now()
	if err := cfg.WriteWAV(*outputPath, frames, root, fifth); err != nil {
		return err
	}
	elapsed := time.Since(start)

	fmt.Printf("Wrote %s\n", *outputPath)
	fmt.Printf("  %d Hz, 2 channels, %d-bit, %d frames\n", cfg.SampleRate, cfg.BitDepth, frames)
	fmt.Printf("  Duration: %.2fs\n", elapsed.Seconds())

	return nil
}
