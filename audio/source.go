// SPDX-License-Identifier: EPL-2.0

package audio

import "time"

// Sample is the closed set of sample representations a Source can carry.
// float32 is the canonical form: a normalized amplitude in [-1, 1].
// The integer forms are fixed-point encodings of the same range.
type Sample interface {
	float32 | int8 | int16 | Int24 | int32
}

// Int24 is a 24-bit signed fixed-point sample widened to 32 bits.
// Values outside [-8388608, 8388607] are not produced by any Source.
type Int24 int32

// Source is a pull-based stream of interleaved samples with fixed metadata.
//
// Metadata never changes for the lifetime of a Source: once constructed,
// Channels, SampleRate and SampleFormat report the same values on every
// call. Next blocks on whatever I/O the underlying stream performs; there
// is no internal buffering thread and no locking required as long as a
// Source is used from a single goroutine.
type Source[S Sample] interface {
	// Next produces the next interleaved sample. ok is false once the
	// stream is exhausted; after that every call keeps returning false.
	Next() (s S, ok bool)

	// Remaining reports the exact number of samples left before
	// exhaustion. ok is false when the stream cannot know its length.
	// When ok is true the count is exact, not an estimate.
	Remaining() (n int, ok bool)

	// Channels count (e.g., 1=mono, 2=stereo).
	Channels() int

	// SampleRate of the stream in Hz.
	SampleRate() int

	// CurrentFrameLen reports how many samples can still be pulled
	// before channel count or sample rate could change. ok is false
	// when the stream is one indivisible frame.
	CurrentFrameLen() (n int, ok bool)

	// TotalDuration of the whole stream. ok is false when the total
	// length is not computable.
	TotalDuration() (d time.Duration, ok bool)

	// SampleFormat returns a label describing the encoding the samples
	// were decoded from, e.g. "PCM16" or "FLOAT32".
	SampleFormat() string

	// Close releases any resources.
	Close() error
}
