// SPDX-License-Identifier: EPL-2.0

// Package wav decodes WAV containers into normalized float32 samples.
//
// It uses the github.com/go-audio library for container parsing and exposes
// the result as a pull-based audio.Source.
//
// # Supported Formats
//
//   - PCM 8, 16, 24 and 32-bit
//   - IEEE float 32-bit
//   - Mono, stereo and any higher channel count
//   - Any sample rate
//
// # Sniffing
//
// IsWave probes a stream without consuming it:
//
//	if wav.IsWave(rs) {
//	    // rs is positioned exactly where it was before the call
//	}
//
// The sniff is non-destructive on both success and failure, so the same
// stream can be probed by several candidate decoders in sequence and only
// the one that claims it consumes anything.
//
// # Decoding
//
//	stream, err := wav.New(rs)
//	if err != nil {
//	    // rs is untouched; try another decoder
//	}
//
//	for {
//	    sample, ok := stream.Next()
//	    if !ok {
//	        break
//	    }
//	    // sample is a float32 in [-1.0, 1.0]
//	}
//
// Samples are produced one per pull, interleaved by channel, normalized
// from the container's encoding: fixed-point values are divided by 2^(N-1)
// and clamped to [-1, 1]; float values pass through unchanged.
//
// # Error Handling
//
// Failure to recognize the container is an expected control path, not an
// exceptional one: New returns ErrNotWavFile and the caller keeps an
// untouched stream. A corrupt sample word mid-stream is replaced with
// silence and decoding continues. Only a structurally valid WAV with a
// sample spec outside the supported set is fatal: New panics, naming the
// encoding and bit depth, since no conversion is defined for it.
//
// # Metadata
//
// A Stream reports its channel count, sample rate, an exact count of
// remaining samples, a total duration derived from the data chunk length,
// and a format label such as "PCM16" or "FLOAT32".
package wav
