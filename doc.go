// SPDX-License-Identifier: EPL-2.0

// Package audiosrc turns container-level byte streams into pull-based,
// normalized sample streams.
//
// The library is a decoding pipeline stage: a seekable byte stream goes in,
// a lazily-produced sequence of float32 samples in [-1.0, 1.0] comes out,
// together with the stream's metadata (channels, sample rate, duration,
// encoding label). A generic converter re-exposes any such stream under a
// different sample representation without materializing it.
//
// # Quick Start
//
//	f, _ := os.Open("audio.wav")
//	defer f.Close()
//
//	src, format, err := audiosrc.Probe(f)
//	if err != nil {
//	    // not a recognized container; f is untouched
//	}
//
//	pcm16 := audiosrc.CollectPCM16(src)
//	_ = format // "wav"
//
// # Probing
//
// Probe walks the default decoder registry. Every decoder's sniff is
// non-destructive, so a stream rejected by one candidate reaches the next
// one unchanged, and a stream no decoder claims is returned to the caller
// intact.
//
// # Building Pipelines
//
// For more control, use the subpackages directly:
//
//	stream, err := wav.New(rs)          // formats/wav
//	conv := audio.NewSamplesConverter[int16](stream)
//
// All pipeline stages implement audio.Source and can be chained freely.
// Control flow is pull-based and single-threaded: each Next call performs
// at most one synchronous read on the underlying byte stream.
package audiosrc
