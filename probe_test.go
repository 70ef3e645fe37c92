// SPDX-License-Identifier: EPL-2.0

package audiosrc_test

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/ik5/audiosrc"
	"github.com/ik5/audiosrc/audio"
	"github.com/ik5/audiosrc/formats/wav"
)

func wavFixture(t *testing.T, sampleRate int, samples []int16) *bytes.Reader {
	t.Helper()

	buf := new(bytes.Buffer)
	if err := wav.WriteWAV16(buf, sampleRate, samples); err != nil {
		t.Fatalf("WriteWAV16() error = %v", err)
	}

	return bytes.NewReader(buf.Bytes())
}

func TestProbe_WAV(t *testing.T) {
	t.Parallel()

	rs := wavFixture(t, 8000, []int16{1, 2, 3, 4})

	src, format, err := audiosrc.Probe(rs)
	if err != nil {
		t.Fatalf("Probe() error = %v, want nil", err)
	}

	if format != "wav" {
		t.Errorf("Probe() format = %q, want %q", format, "wav")
	}

	if src.SampleRate() != 8000 {
		t.Errorf("SampleRate() = %d, want 8000", src.SampleRate())
	}

	if n, ok := src.Remaining(); !ok || n != 4 {
		t.Errorf("Remaining() = (%d, %v), want (4, true)", n, ok)
	}
}

func TestProbe_Unrecognized(t *testing.T) {
	t.Parallel()

	raw := []byte("metadata: definitely not a RIFF container")
	rs := bytes.NewReader(raw)

	_, _, err := audiosrc.Probe(rs)
	if !errors.Is(err, audio.ErrNoDecoder) {
		t.Fatalf("Probe() error = %v, want ErrNoDecoder", err)
	}

	// The stream is handed back untouched.
	pos, _ := rs.Seek(0, io.SeekCurrent)
	if pos != 0 {
		t.Errorf("stream position after failed probe = %d, want 0", pos)
	}

	head := make([]byte, 8)
	if _, err := io.ReadFull(rs, head); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(head, raw[:8]) {
		t.Errorf("stream reads %q after failed probe, want %q", head, raw[:8])
	}
}

func TestCollectPCM16_RoundTrip(t *testing.T) {
	t.Parallel()

	original := []int16{0, 100, -100, 32767, -32768, 12345, -6789, 1}
	rs := wavFixture(t, 16000, original)

	src, _, err := audiosrc.Probe(rs)
	if err != nil {
		t.Fatalf("Probe() error = %v, want nil", err)
	}

	got := audiosrc.CollectPCM16(src)

	if len(got) != len(original) {
		t.Fatalf("CollectPCM16() returned %d samples, want %d", len(got), len(original))
	}

	for i := range got {
		if got[i] != original[i] {
			t.Errorf("sample[%d] = %d, want %d", i, got[i], original[i])
		}
	}
}

func TestCollectPCM16_Empty(t *testing.T) {
	t.Parallel()

	rs := wavFixture(t, 8000, []int16{})

	// A WAV with an empty data chunk may or may not be claimed by the
	// container parser; when it is, collecting must yield no samples.
	src, _, err := audiosrc.Probe(rs)
	if err != nil {
		t.Skipf("empty WAV not claimed: %v", err)
	}

	if got := audiosrc.CollectPCM16(src); len(got) != 0 {
		t.Errorf("CollectPCM16() returned %d samples, want 0", len(got))
	}
}
