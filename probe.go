package audiosrc

import (
	"io"

	"github.com/ik5/audiosrc/audio"
	"github.com/ik5/audiosrc/formats/wav"
)

// defaultRegistry holds the decoders Probe tries, in order. WAV is the
// only format this library addresses.
var defaultRegistry = func() *audio.Registry {
	r := audio.NewRegistry()
	r.Register("wav", wav.Decoder{})
	return r
}()

// Probe tries each known decoder against rs and returns a sample stream
// from the first one that claims it, along with the format key (e.g.,
// "wav"). When no decoder claims the stream, Probe returns
// audio.ErrNoDecoder and rs is left exactly where it was, so the caller
// can hand it elsewhere.
func Probe(rs io.ReadSeeker) (audio.Source[float32], string, error) {
	return defaultRegistry.Probe(rs)
}

// CollectPCM16 drains src, quantizing every sample to 16-bit PCM.
//
// When src reports an exact remaining count, the result is allocated in
// one shot. This is a convenience for callers that want the whole stream
// materialized; for streaming use, wrap src in an
// audio.SamplesConverter[float32, int16] and pull.
func CollectPCM16(src audio.Source[float32]) []int16 {
	conv := audio.NewSamplesConverter[int16](src)

	var pcm16 []int16
	if n, ok := conv.Remaining(); ok {
		pcm16 = make([]int16, 0, n)
	}

	for {
		s, ok := conv.Next()
		if !ok {
			break
		}
		pcm16 = append(pcm16, s)
	}

	return pcm16
}
