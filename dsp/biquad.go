// SPDX-License-Identifier: EPL-2.0

package dsp

import "math"

// Biquad is a second-order IIR filter section (RBJ audio EQ cookbook
// coefficients, transposed direct form II). State is float64 to keep long
// runs numerically quiet.
type Biquad struct {
	b0, b1, b2 float64
	a1, a2     float64

	z1, z2 float64
}

// NewHighPass returns a high-pass biquad with corner frequency freq (Hz) and
// the given Q at the given sample rate.
func NewHighPass(sampleRate int, freq, q float64) *Biquad {
	w0 := 2 * math.Pi * freq / float64(sampleRate)
	cosw0 := math.Cos(w0)
	alpha := math.Sin(w0) / (2 * q)

	a0 := 1 + alpha
	return &Biquad{
		b0: (1 + cosw0) / 2 / a0,
		b1: -(1 + cosw0) / a0,
		b2: (1 + cosw0) / 2 / a0,
		a1: -2 * cosw0 / a0,
		a2: (1 - alpha) / a0,
	}
}

// NewLowPass returns a low-pass biquad with corner frequency freq (Hz) and
// the given Q at the given sample rate.
func NewLowPass(sampleRate int, freq, q float64) *Biquad {
	w0 := 2 * math.Pi * freq / float64(sampleRate)
	cosw0 := math.Cos(w0)
	alpha := math.Sin(w0) / (2 * q)

	a0 := 1 + alpha
	return &Biquad{
		b0: (1 - cosw0) / 2 / a0,
		b1: (1 - cosw0) / a0,
		b2: (1 - cosw0) / 2 / a0,
		a1: -2 * cosw0 / a0,
		a2: (1 - alpha) / a0,
	}
}

// Process filters samples in place and returns the same slice.
func (f *Biquad) Process(samples []float32) []float32 {
	z1, z2 := f.z1, f.z2

	for i, s := range samples {
		x := float64(s)
		y := f.b0*x + z1
		z1 = f.b1*x - f.a1*y + z2
		z2 = f.b2*x - f.a2*y
		samples[i] = float32(y)
	}

	f.z1, f.z2 = z1, z2
	return samples
}

// Reset clears the filter state.
func (f *Biquad) Reset() {
	f.z1, f.z2 = 0, 0
}
