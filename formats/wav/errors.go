package wav

import "errors"

var (
	// ErrNotWavFile indicates the stream does not hold a WAV container.
	// The stream position is restored before this error is returned.
	ErrNotWavFile = errors.New("not a WAV file")

	// ErrNoChannels indicates a WAV spec declaring zero channels.
	ErrNoChannels = errors.New("WAV spec declares zero channels")

	// ErrZeroSampleRate indicates a WAV spec declaring a zero sample rate.
	ErrZeroSampleRate = errors.New("WAV spec declares zero sample rate")
)
