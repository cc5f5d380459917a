package dsp

import (
	"math"
	"testing"
)

func sineBuffer(rate, frames int, freq, amp float64) []float32 {
	buf := make([]float32, frames)
	for i := range buf {
		t := float64(i) / float64(rate)
		buf[i] = float32(amp * math.Sin(2*math.Pi*freq*t))
	}
	return buf
}

// steadyRMS measures RMS over the second half of the buffer, past the filter
// warm-up transient.
func steadyRMS(samples []float32) float64 {
	tail := samples[len(samples)/2:]
	var sum float64
	for _, s := range tail {
		sum += float64(s) * float64(s)
	}
	return math.Sqrt(sum / float64(len(tail)))
}

func TestHighPass_AttenuatesRumble(t *testing.T) {
	t.Parallel()

	const rate = 8000

	in := sineBuffer(rate, rate, 20, 1.0)
	ref := steadyRMS(in)

	out := NewHighPass(rate, 80, 0.7).Process(in)

	if ratio := steadyRMS(out) / ref; ratio > 0.15 {
		t.Errorf("20 Hz tone through 80 Hz high-pass: RMS ratio = %v, want < 0.15", ratio)
	}
}

func TestHighPass_PassesSpeechBand(t *testing.T) {
	t.Parallel()

	const rate = 8000

	in := sineBuffer(rate, rate, 1000, 1.0)
	ref := steadyRMS(in)

	out := NewHighPass(rate, 80, 0.7).Process(in)

	if ratio := steadyRMS(out) / ref; ratio < 0.9 {
		t.Errorf("1 kHz tone through 80 Hz high-pass: RMS ratio = %v, want > 0.9", ratio)
	}
}

func TestHighPass_BlocksDC(t *testing.T) {
	t.Parallel()

	const rate = 8000

	in := make([]float32, rate)
	for i := range in {
		in[i] = 0.5
	}

	out := NewHighPass(rate, 80, 0.7).Process(in)

	if got := steadyRMS(out); got > 1e-3 {
		t.Errorf("DC through high-pass: steady RMS = %v, want ≈0", got)
	}
}

func TestLowPass_AttenuatesHiss(t *testing.T) {
	t.Parallel()

	const rate = 44100

	in := sineBuffer(rate, rate, 18000, 1.0)
	ref := steadyRMS(in)

	out := NewLowPass(rate, 7500, 0.7).Process(in)

	if ratio := steadyRMS(out) / ref; ratio > 0.3 {
		t.Errorf("18 kHz tone through 7.5 kHz low-pass: RMS ratio = %v, want < 0.3", ratio)
	}
}

func TestLowPass_PassesSpeechBand(t *testing.T) {
	t.Parallel()

	const rate = 44100

	in := sineBuffer(rate, rate, 440, 1.0)
	ref := steadyRMS(in)

	out := NewLowPass(rate, 7500, 0.7).Process(in)

	if ratio := steadyRMS(out) / ref; ratio < 0.9 {
		t.Errorf("440 Hz tone through 7.5 kHz low-pass: RMS ratio = %v, want > 0.9", ratio)
	}
}

func TestBiquad_SilenceStaysSilent(t *testing.T) {
	t.Parallel()

	in := make([]float32, 8000)

	for _, f := range []*Biquad{
		NewHighPass(8000, 80, 0.7),
		NewLowPass(44100, 7500, 0.7),
	} {
		out := f.Process(in)
		for i, s := range out {
			if s != 0 {
				t.Fatalf("out[%d] = %v, want 0", i, s)
			}
		}
	}
}

func TestBiquad_Reset(t *testing.T) {
	t.Parallel()

	f := NewHighPass(8000, 80, 0.7)

	first := f.Process(sineBuffer(8000, 800, 440, 1.0))
	firstCopy := make([]float32, len(first))
	copy(firstCopy, first)

	f.Reset()
	second := f.Process(sineBuffer(8000, 800, 440, 1.0))

	for i := range firstCopy {
		if firstCopy[i] != second[i] {
			t.Fatalf("output differs at %d after Reset: %v vs %v", i, firstCopy[i], second[i])
		}
	}
}
