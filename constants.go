package synth

// Common sample rates.
const (
	// RateCD is the CD quality sample rate (Red Book standard).
	RateCD = 44100

	// RateDAT is the DAT/DVD sample rate.
	RateDAT = 48000
)

// Sample format constants
const (
	bitDepth16      = 16
	bitDepth24      = 24
	bitDepth32      = 32
	defaultBitDepth = bitDepth16
	bitsPerByte     = 8
)

// stereoChannels is the channel count of an interleaved stereo stream.
const stereoChannels = 2

// fifthRatio is the just-intonation frequency ratio of a perfect fifth.
const fifthRatio = 3.0 / 2.0
