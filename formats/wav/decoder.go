package wav

import (
	"fmt"
	"io"
	"math"
	"time"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"

	"github.com/ik5/audiosrc/audio"
)

// WAV format tags from the fmt chunk.
const (
	formatPCM       = 1
	formatIEEEFloat = 3
)

// How many raw sample words to request from the container parser per fill.
const readChunk = 2048

// pcmReader is the part of gowav.Decoder the sample loop needs, split out
// to allow testing.
type pcmReader interface {
	PCMBuffer(*goaudio.IntBuffer) (int, error)
}

// convFunc converts one raw sample word to a normalized float32.
type convFunc func(int) float32

// IsWave reports whether rs holds a WAV container, then seeks it back to
// where it was. The stream position is unchanged whether the sniff
// succeeds or fails, so several candidate decoders can probe the same
// stream in sequence.
func IsWave(rs io.ReadSeeker) bool {
	pos, err := rs.Seek(0, io.SeekCurrent)
	if err != nil {
		return false
	}

	ok := gowav.NewDecoder(rs).IsValidFile()

	if _, err := rs.Seek(pos, io.SeekStart); err != nil {
		return false
	}

	return ok
}

// Stream is a pull-based WAV sample stream. It owns the underlying byte
// stream for its lifetime and produces normalized float32 samples, one per
// Next call, in interleaved-by-channel order.
type Stream struct {
	rs  io.ReadSeeker
	dec pcmReader

	channels   int
	sampleRate int
	bitDepth   int
	floating   bool
	formatStr  string
	conv       convFunc

	total int // samples in the data chunk
	read  int // samples produced so far

	buf *goaudio.IntBuffer
	pos int // next unread index in buf.Data
}

// New attempts to decode rs as WAV.
//
// When rs does not hold a WAV container, New returns ErrNotWavFile with
// the stream position restored, so the caller still owns an untouched
// stream and can hand it to a different decoder. A structurally valid WAV
// whose spec declares zero channels or a zero sample rate is rejected the
// same way, with ErrNoChannels or ErrZeroSampleRate.
//
// A structurally valid WAV using a sample spec outside the supported set
// (FLOAT32, PCM8/16/24/32) panics with the encoding and bit depth named:
// there is no defined conversion for it, and probing cannot recover from
// claiming such a stream.
func New(rs io.ReadSeeker) (*Stream, error) {
	start, err := rs.Seek(0, io.SeekCurrent)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	if !IsWave(rs) {
		return nil, ErrNotWavFile
	}

	dec := gowav.NewDecoder(rs)
	dec.ReadInfo()
	if err := dec.FwdToPCM(); err != nil {
		// Valid headers but no reachable data chunk; the stream goes
		// back to the caller untouched, like any other mismatch.
		restore(rs, start)
		return nil, fmt.Errorf("%w", err)
	}

	channels := int(dec.NumChans)
	sampleRate := int(dec.SampleRate)
	bitDepth := int(dec.BitDepth)
	floating := dec.WavAudioFormat == formatIEEEFloat

	if channels == 0 {
		restore(rs, start)
		return nil, ErrNoChannels
	}

	if sampleRate == 0 {
		restore(rs, start)
		return nil, ErrZeroSampleRate
	}

	conv := sampleConvFunc(floating, bitDepth)
	if conv == nil {
		panic(fmt.Sprintf("wav: unsupported sample spec: %s, %d bits per sample",
			encodingName(floating), bitDepth))
	}

	return &Stream{
		rs:         rs,
		dec:        dec,
		channels:   channels,
		sampleRate: sampleRate,
		bitDepth:   bitDepth,
		floating:   floating,
		formatStr:  makeSampleFormatStr(floating, bitDepth),
		conv:       conv,
		total:      int(dec.PCMLen()) / (bitDepth / 8),
	}, nil
}

// IntoInner returns the underlying byte stream, handing ownership back to
// the caller. The Stream must not be pulled afterwards.
func (s *Stream) IntoInner() io.ReadSeeker { return s.rs }

// Next produces the next normalized sample. ok is false once the data
// chunk is exhausted. A raw sample word that fails to read is replaced
// with silence (0.0) and decoding continues; corruption is masked, not
// surfaced.
func (s *Stream) Next() (float32, bool) {
	if s.read >= s.total {
		return 0, false
	}

	if s.buf == nil || s.pos >= len(s.buf.Data) {
		n, err := s.fill()
		if n == 0 {
			if err == nil || err == io.EOF {
				// Raw source gave out; terminal.
				return 0, false
			}

			// One corrupt sample word: substitute silence and
			// keep decoding.
			s.read++
			return 0, true
		}
	}

	raw := s.buf.Data[s.pos]
	s.pos++
	s.read++

	return s.conv(raw), true
}

// fill requests the next chunk of raw sample words from the container
// parser, capped at what the data chunk still holds.
func (s *Stream) fill() (int, error) {
	want := readChunk
	if left := s.total - s.read; left < want {
		want = left
	}

	if s.buf == nil || cap(s.buf.Data) < want {
		s.buf = &goaudio.IntBuffer{Data: make([]int, want)}
	}
	s.buf.Data = s.buf.Data[:want]
	s.pos = 0

	n, err := s.dec.PCMBuffer(s.buf)
	s.buf.Data = s.buf.Data[:n]

	return n, err
}

// Remaining reports the exact number of samples left in the stream.
func (s *Stream) Remaining() (int, bool) { return s.total - s.read, true }

func (s *Stream) Channels() int   { return s.channels }
func (s *Stream) SampleRate() int { return s.sampleRate }

// CurrentFrameLen is unknown: the whole stream is one indivisible frame,
// the decoder never changes channel count or rate mid-stream.
func (s *Stream) CurrentFrameLen() (int, bool) { return 0, false }

// TotalDuration of the stream. Channels and sample rate are non-zero by
// construction, so the computation is always defined.
func (s *Stream) TotalDuration() (time.Duration, bool) {
	ms := uint64(s.total) * 1000 / (uint64(s.channels) * uint64(s.sampleRate))
	return time.Duration(ms) * time.Millisecond, true
}

// SampleFormat returns "FLOAT{bits}" or "PCM{bits}".
func (s *Stream) SampleFormat() string { return s.formatStr }

// Close releases the underlying byte stream when it is closeable.
func (s *Stream) Close() error {
	if c, ok := s.rs.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

var _ audio.Source[float32] = (*Stream)(nil)

// Decoder implements audio.Decoder for the WAV format.
type Decoder struct{}

func (Decoder) Sniff(rs io.ReadSeeker) bool { return IsWave(rs) }

func (Decoder) Decode(rs io.ReadSeeker) (audio.Source[float32], error) {
	return New(rs)
}

// sampleConvFunc returns the conversion for the given spec, or nil when
// the (encoding, bit depth) combination is outside the supported set.
func sampleConvFunc(floating bool, bitDepth int) convFunc {
	switch {
	case floating && bitDepth == 32:
		// Stored as a raw little-endian word; already normalized.
		return func(v int) float32 { return math.Float32frombits(uint32(int32(v))) }
	case !floating && bitDepth == 32:
		return func(v int) float32 { return audio.I32ToF32(int32(v)) }
	case !floating && bitDepth == 24:
		return func(v int) float32 {
			// Sign-extend from bit 23; idempotent when the parser
			// already did.
			return audio.I24ToF32(audio.Int24(int32(v<<8) >> 8))
		}
	case !floating && bitDepth == 16:
		return func(v int) float32 { return audio.I16ToF32(int16(v)) }
	case !floating && bitDepth == 8:
		// 8-bit WAV is unsigned on the wire; recenter before scaling.
		return func(v int) float32 { return audio.I8ToF32(int8(v - 128)) }
	}

	return nil
}

func makeSampleFormatStr(floating bool, bitDepth int) string {
	if floating {
		return fmt.Sprintf("FLOAT%d", bitDepth)
	}
	return fmt.Sprintf("PCM%d", bitDepth)
}

func encodingName(floating bool) string {
	if floating {
		return "float"
	}
	return "fixed-point"
}

func restore(rs io.Seeker, pos int64) {
	_, _ = rs.Seek(pos, io.SeekStart)
}
