// SPDX-License-Identifier: EPL-2.0

package audio

import "time"

// SamplesConverter republishes an inner Source under a different sample
// representation. Every metadata property is forwarded verbatim; only the
// numeric encoding of each sample changes. The converter holds no state of
// its own, so wrapping costs nothing until samples are pulled.
type SamplesConverter[S, D Sample] struct {
	inner Source[S]
}

// NewSamplesConverter wraps inner so its samples are produced as D.
// The destination type is given explicitly, the source type is inferred:
//
//	conv := audio.NewSamplesConverter[int16](stream)
func NewSamplesConverter[D, S Sample](inner Source[S]) *SamplesConverter[S, D] {
	return &SamplesConverter[S, D]{inner: inner}
}

// Inner returns the wrapped source.
func (c *SamplesConverter[S, D]) Inner() Source[S] { return c.inner }

// Next pulls one sample from the inner source and converts it.
func (c *SamplesConverter[S, D]) Next() (D, bool) {
	v, ok := c.inner.Next()
	if !ok {
		var zero D
		return zero, false
	}
	return ConvertSample[S, D](v), true
}

// Remaining forwards the inner source's exact count, when it has one.
func (c *SamplesConverter[S, D]) Remaining() (int, bool) { return c.inner.Remaining() }

func (c *SamplesConverter[S, D]) Channels() int   { return c.inner.Channels() }
func (c *SamplesConverter[S, D]) SampleRate() int { return c.inner.SampleRate() }

func (c *SamplesConverter[S, D]) CurrentFrameLen() (int, bool) {
	return c.inner.CurrentFrameLen()
}

func (c *SamplesConverter[S, D]) TotalDuration() (time.Duration, bool) {
	return c.inner.TotalDuration()
}

func (c *SamplesConverter[S, D]) SampleFormat() string { return c.inner.SampleFormat() }

func (c *SamplesConverter[S, D]) Close() error { return c.inner.Close() }
