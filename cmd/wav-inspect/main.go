// Command wav-inspect prints the format and per-channel analysis of WAV files.
//
// Usage:
//
//	wav-inspect output/perfect_fifth.wav
//	wav-inspect -v a.wav b.wav
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/tphakala/go-tone-synth/internal/analysis"
	"github.com/tphakala/go-tone-synth/internal/wavfile"
)

const minRequiredArgs = 1

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	verbose := flag.Bool("v", false, "Verbose output")
	flag.Parse()

	args := flag.Args()
	if len(args) < minRequiredArgs {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] file.wav [file.wav ...]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		return fmt.Errorf("insufficient arguments")
	}

	for _, path := range args {
		if *verbose {
			log.Printf("Inspecting %s", path)
		}
		if err := inspect(os.Stdout, path); err != nil {
			return err
		}
	}
	return nil
}

// inspect decodes path and writes a report to w.
func inspect(w io.Writer, path string) error {
	clip, err := wavfile.Open(path)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "%s\n", path)
	fmt.Fprintf(w, "  %d Hz, %d channels, %d-bit\n",
		clip.Format.SampleRate, clip.Format.Channels, clip.Format.BitDepth)
	fmt.Fprintf(w, "  %d frames, %.3fs\n", clip.Frames, clip.Duration().Seconds())

	for ch, samples := range clip.Channels {
		stats := analysis.Analyze(samples, clip.Format.SampleRate)
		fmt.Fprintf(w, "  ch%d: peak %.4f, rms %.4f, dominant %.1f Hz\n",
			ch, stats.Peak, stats.RMS, stats.DominantFrequency)
	}

	return nil
}
