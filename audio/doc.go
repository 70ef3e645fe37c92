// SPDX-License-Identifier: EPL-2.0

// Package audio provides low-level audio streaming primitives.
//
// This package contains the core building blocks of the decoding pipeline:
//   - Source interface for pull-based sample streams
//   - SamplesConverter for changing the sample representation of a stream
//   - Sample conversion routines between fixed-point and float encodings
//   - Registry for decoder registration and stream probing
//
// # Source Interface
//
// The Source interface is the foundation of the pipeline:
//
//	type Source[S Sample] interface {
//	    Next() (S, bool)
//	    Remaining() (int, bool)
//	    Channels() int
//	    SampleRate() int
//	    CurrentFrameLen() (int, bool)
//	    TotalDuration() (time.Duration, bool)
//	    SampleFormat() string
//	    Close() error
//	}
//
// All decoders and adapters implement this interface, allowing them to be
// chained without knowing each other's concrete types. Control flow is
// pull-based: each Next call propagates one pull down the chain to the raw
// byte reader.
//
// # Sample Representations
//
// The canonical sample form is float32, a normalized amplitude in the range
// [-1.0, 1.0]:
//   - 0.0 represents silence
//   - 1.0 represents maximum positive amplitude
//   - -1.0 represents maximum negative amplitude
//
// The fixed-point forms int8, int16, Int24 and int32 encode the same range
// as signed integers scaled by 2^(N-1). Conversion in either direction is
// total; out-of-range values are clamped, never rejected.
//
// # Converting a Stream
//
// SamplesConverter wraps any Source and re-exposes it with a different
// sample type, forwarding all metadata unchanged:
//
//	conv := audio.NewSamplesConverter[int16](src)
//	for {
//	    s, ok := conv.Next()
//	    if !ok {
//	        break
//	    }
//	    // s is an int16 quantized from the source's samples
//	}
//
// # Decoder Registry
//
// The registry allows dynamic decoder registration and probing:
//
//	registry := audio.NewRegistry()
//	registry.Register("wav", wav.Decoder{})
//	src, format, err := registry.Probe(rs)
//
// Probing relies on every decoder's Sniff being non-destructive: a decoder
// that rejects a stream leaves its position untouched so the next candidate
// sees the same bytes.
//
// # Error Handling
//
// Exhaustion is not an error: Next returns ok=false and keeps doing so.
// Probe returns ErrNoDecoder when no registered decoder claims a stream,
// with the stream still intact for the caller.
package audio
