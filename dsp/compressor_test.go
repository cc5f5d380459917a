package dsp

import (
	"math"
	"testing"
)

func peak(samples []float32) float64 {
	p := 0.0
	for _, s := range samples {
		if a := math.Abs(float64(s)); a > p {
			p = a
		}
	}
	return p
}

func TestCompressor_ReducesLoudSignal(t *testing.T) {
	t.Parallel()

	const rate = 16000

	comp := NewCompressor(rate, -24, 12, 4, 3, 250)

	// Full-scale tone sits 24 dB over the threshold; with 4:1 that is
	// 18 dB of reduction, so the steady-state peak lands around 0.13.
	in := sineBuffer(rate, rate, 440, 1.0)
	out := comp.Process(in)

	// Skip the attack transient at the start.
	if got := peak(out[rate/2:]); got > 0.3 {
		t.Errorf("steady-state peak of compressed full-scale tone = %v, want < 0.3", got)
	}
}

func TestCompressor_LeavesQuietSignalAlone(t *testing.T) {
	t.Parallel()

	const rate = 16000

	comp := NewCompressor(rate, -24, 12, 4, 3, 250)

	// -40 dB tone is below the bottom of the knee (-30 dB): no reduction.
	in := sineBuffer(rate, rate, 440, 0.01)
	want := make([]float32, len(in))
	copy(want, in)

	out := comp.Process(in)

	for i := range want {
		if out[i] != want[i] {
			t.Fatalf("out[%d] = %v, want untouched %v", i, out[i], want[i])
		}
	}
}

func TestCompressor_SilenceStaysSilent(t *testing.T) {
	t.Parallel()

	comp := NewCompressor(16000, -24, 12, 4, 3, 250)

	out := comp.Process(make([]float32, 16000))
	for i, s := range out {
		if s != 0 {
			t.Fatalf("out[%d] = %v, want 0", i, s)
		}
	}
}

// TestCompressor_StateIsolation checks that a fresh compressor behaves the
// same regardless of what another instance processed before.
func TestCompressor_StateIsolation(t *testing.T) {
	t.Parallel()

	const rate = 16000

	loud := NewCompressor(rate, -24, 12, 4, 3, 250)
	loud.Process(sineBuffer(rate, rate, 440, 1.0))

	fresh := NewCompressor(rate, -24, 12, 4, 3, 250)
	a := fresh.Process(sineBuffer(rate, rate/4, 440, 0.01))

	reused := NewCompressor(rate, -24, 12, 4, 3, 250)
	reused.Process(sineBuffer(rate, rate, 440, 1.0))
	reused.Reset()
	b := reused.Process(sineBuffer(rate, rate/4, 440, 0.01))

	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("fresh and Reset compressor outputs differ at %d: %v vs %v", i, a[i], b[i])
		}
	}
}

func TestCompressor_GainCurve(t *testing.T) {
	t.Parallel()

	comp := NewCompressor(16000, -24, 12, 4, 3, 250)

	tests := []struct {
		name    string
		levelDB float64
		wantDB  float64
		tol     float64
	}{
		{name: "well below knee", levelDB: -60, wantDB: 0, tol: 0},
		{name: "bottom of knee", levelDB: -30, wantDB: 0, tol: 1e-9},
		{name: "at threshold", levelDB: -24, wantDB: -1.125, tol: 1e-9}, // 0.75*6^2/24
		{name: "top of knee", levelDB: -18, wantDB: -4.5, tol: 1e-9},
		{name: "full scale", levelDB: 0, wantDB: -18, tol: 1e-9},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := comp.gainReductionDB(tt.levelDB)
			if math.Abs(got-tt.wantDB) > tt.tol {
				t.Errorf("gainReductionDB(%v) = %v, want %v", tt.levelDB, got, tt.wantDB)
			}
		})
	}
}
