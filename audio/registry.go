// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"io"
	"sync"
)

// Decoder constructs a float32 Source from a seekable stream.
//
// Sniff must be non-destructive: whatever it reads, it seeks the stream
// back to where it was before returning. That contract is what lets a
// Registry probe one stream with several candidate decoders in sequence.
type Decoder interface {
	// Sniff reports whether the stream holds this decoder's format,
	// leaving the stream position untouched.
	Sniff(rs io.ReadSeeker) bool
	// Decode claims the stream and returns a Source over it.
	Decode(rs io.ReadSeeker) (Source[float32], error)
}

// Registry holds decoders by format key (e.g., "wav") and probes streams
// against them in registration order.
type Registry struct {
	codecs map[string]Decoder
	order  []string

	mtx *sync.Mutex
}

func NewRegistry() *Registry {
	return &Registry{
		codecs: make(map[string]Decoder),
		mtx:    &sync.Mutex{},
	}
}

func (r *Registry) Register(format string, d Decoder) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	if _, ok := r.codecs[format]; !ok {
		r.order = append(r.order, format)
	}
	r.codecs[format] = d
}

func (r *Registry) Get(format string) (Decoder, bool) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	d, ok := r.codecs[format]
	return d, ok
}

// Probe tries each registered decoder in registration order. The first one
// whose Sniff accepts the stream decodes it. When no decoder claims the
// stream, Probe returns ErrNoDecoder with the stream position unchanged,
// so the caller still owns an untouched stream.
func (r *Registry) Probe(rs io.ReadSeeker) (Source[float32], string, error) {
	r.mtx.Lock()
	order := make([]string, len(r.order))
	copy(order, r.order)
	codecs := make(map[string]Decoder, len(r.codecs))
	for k, v := range r.codecs {
		codecs[k] = v
	}
	r.mtx.Unlock()

	for _, format := range order {
		d := codecs[format]
		if !d.Sniff(rs) {
			continue
		}

		src, err := d.Decode(rs)
		if err != nil {
			return nil, "", err
		}
		return src, format, nil
	}

	return nil, "", ErrNoDecoder
}
