package wav

import (
	"errors"
	"testing"
)

func TestErrNotWavFile(t *testing.T) {
	t.Parallel()

	if ErrNotWavFile == nil {
		t.Fatal("ErrNotWavFile is nil")
	}

	expectedMsg := "not a WAV file"
	if ErrNotWavFile.Error() != expectedMsg {
		t.Errorf("ErrNotWavFile.Error() = %q, want %q", ErrNotWavFile.Error(), expectedMsg)
	}
}

func TestErrNoChannels(t *testing.T) {
	t.Parallel()

	if ErrNoChannels == nil {
		t.Fatal("ErrNoChannels is nil")
	}

	expectedMsg := "WAV spec declares zero channels"
	if ErrNoChannels.Error() != expectedMsg {
		t.Errorf("ErrNoChannels.Error() = %q, want %q", ErrNoChannels.Error(), expectedMsg)
	}
}

func TestErrZeroSampleRate(t *testing.T) {
	t.Parallel()

	if ErrZeroSampleRate == nil {
		t.Fatal("ErrZeroSampleRate is nil")
	}

	expectedMsg := "WAV spec declares zero sample rate"
	if ErrZeroSampleRate.Error() != expectedMsg {
		t.Errorf("ErrZeroSampleRate.Error() = %q, want %q", ErrZeroSampleRate.Error(), expectedMsg)
	}
}

func TestErrors_Distinct(t *testing.T) {
	t.Parallel()

	errs := []error{ErrNotWavFile, ErrNoChannels, ErrZeroSampleRate}

	for i, a := range errs {
		for j, b := range errs {
			if i != j && errors.Is(a, b) {
				t.Errorf("errors %v and %v are not distinct", a, b)
			}
		}
	}
}
