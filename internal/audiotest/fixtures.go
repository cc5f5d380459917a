// SPDX-License-Identifier: EPL-2.0

// Package audiotest provides shared fixtures for pipeline tests: signal
// generators and in-memory encoded files.
package audiotest

import (
	"bytes"
	"math"

	"github.com/Markl1n1/qc-audio/formats/wav"
)

// Sine returns seconds of a sine tone at the given frequency and amplitude.
func Sine(sampleRate int, seconds, freq, amp float64) []float32 {
	frames := int(seconds * float64(sampleRate))
	buf := make([]float32, frames)
	for i := range buf {
		t := float64(i) / float64(sampleRate)
		buf[i] = float32(amp * math.Sin(2*math.Pi*freq*t))
	}
	return buf
}

// Silence returns seconds of zero samples.
func Silence(sampleRate int, seconds float64) []float32 {
	return make([]float32, int(seconds*float64(sampleRate)))
}

// WAVFile encodes mono samples as a complete in-memory WAV file.
func WAVFile(sampleRate int, samples []float32) []byte {
	var buf bytes.Buffer
	if err := wav.EncodePCM16(&buf, sampleRate, samples); err != nil {
		panic(err) // fixture construction cannot fail with valid args
	}
	return buf.Bytes()
}

// SineWAV encodes a sine tone as an in-memory WAV file.
func SineWAV(sampleRate int, seconds, freq, amp float64) []byte {
	return WAVFile(sampleRate, Sine(sampleRate, seconds, freq, amp))
}
