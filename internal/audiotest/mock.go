// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"math"
	"time"
)

// MockSource is a test helper that generates a pull-based sample stream.
// It implements the audio.Source[float32] interface (without importing it
// to avoid cycles).
type MockSource struct {
	sampleRate   int
	channels     int
	totalSamples int // total interleaved samples to generate
	generated    int // samples generated so far
	formatStr    string
	waveform     func(frame int, channel int) float32
}

// NewMockSource creates a new mock audio source. totalSamples is the total
// number of interleaved samples to generate. waveform generates sample
// values given the frame index and channel.
func NewMockSource(sampleRate, channels, totalSamples int, waveform func(frame int, channel int) float32) *MockSource {
	return &MockSource{
		sampleRate:   sampleRate,
		channels:     channels,
		totalSamples: totalSamples,
		generated:    0,
		formatStr:    "PCM16",
		waveform:     waveform,
	}
}

// NewSilentSource creates a mock source that generates silence (all zeros).
func NewSilentSource(sampleRate, channels, totalSamples int) *MockSource {
	return NewMockSource(sampleRate, channels, totalSamples, func(frame int, channel int) float32 {
		return 0.0
	})
}

// NewSineSource creates a mock source that generates a sine wave.
func NewSineSource(sampleRate, channels, totalSamples int, frequency float64) *MockSource {
	return NewMockSource(sampleRate, channels, totalSamples, func(frame int, channel int) float32 {
		t := float64(frame) / float64(sampleRate)
		return float32(math.Sin(2 * math.Pi * frequency * t))
	})
}

// NewConstantSource creates a mock source with constant value.
func NewConstantSource(sampleRate, channels, totalSamples int, value float32) *MockSource {
	return NewMockSource(sampleRate, channels, totalSamples, func(frame int, channel int) float32 {
		return value
	})
}

// SetFormat overrides the encoding label the mock reports.
func (m *MockSource) SetFormat(s string) { m.formatStr = s }

// Reset resets the generated sample counter to allow re-reading.
func (m *MockSource) Reset() { m.generated = 0 }

func (m *MockSource) Next() (float32, bool) {
	if m.generated >= m.totalSamples {
		return 0, false
	}

	frame := m.generated / m.channels
	channel := m.generated % m.channels
	m.generated++

	return m.waveform(frame, channel), true
}

func (m *MockSource) Remaining() (int, bool) {
	return m.totalSamples - m.generated, true
}

func (m *MockSource) Channels() int   { return m.channels }
func (m *MockSource) SampleRate() int { return m.sampleRate }

func (m *MockSource) CurrentFrameLen() (int, bool) { return 0, false }

func (m *MockSource) TotalDuration() (time.Duration, bool) {
	ms := uint64(m.totalSamples) * 1000 / (uint64(m.channels) * uint64(m.sampleRate))
	return time.Duration(ms) * time.Millisecond, true
}

func (m *MockSource) SampleFormat() string { return m.formatStr }

func (m *MockSource) Close() error { return nil }
