package audio

import (
	"errors"
	"testing"
)

func TestErrNoDecoder(t *testing.T) {
	t.Parallel()

	if ErrNoDecoder == nil {
		t.Fatal("ErrNoDecoder is nil")
	}

	expectedMsg := "no registered decoder claimed the stream"
	if ErrNoDecoder.Error() != expectedMsg {
		t.Errorf("ErrNoDecoder.Error() = %q, want %q", ErrNoDecoder.Error(), expectedMsg)
	}
}

func TestErrNoDecoder_Comparison(t *testing.T) {
	t.Parallel()

	// Test errors.Is compatibility
	err := ErrNoDecoder
	if !errors.Is(err, ErrNoDecoder) {
		t.Error("errors.Is() failed for ErrNoDecoder")
	}

	otherErr := errors.New("some other error")
	if errors.Is(otherErr, ErrNoDecoder) {
		t.Error("errors.Is() should return false for different error")
	}
}

func TestErrNoDecoder_Wrapping(t *testing.T) {
	t.Parallel()

	// Test that wrapped error can be unwrapped
	wrappedErr := errors.Join(ErrNoDecoder, errors.New("additional context"))
	if !errors.Is(wrappedErr, ErrNoDecoder) {
		t.Error("errors.Is() failed for wrapped ErrNoDecoder")
	}
}
