package qcaudio

// Peak normalization constants. The 0.95 target leaves headroom against
// clipping after 16-bit quantization; the epsilon keeps silence from being
// scaled by a huge factor.
const (
	targetPeak  = 0.95
	silencePeak = 1e-6
)

// Normalize scales samples in place so the absolute peak reaches targetPeak.
// Effectively silent input (peak at or below silencePeak) is left untouched.
// It reports whether scaling was applied.
func Normalize(samples []float32) bool {
	var peak float32
	for _, s := range samples {
		if s < 0 {
			s = -s
		}
		if s > peak {
			peak = s
		}
	}

	if peak <= silencePeak {
		return false
	}

	scale := float32(targetPeak) / peak
	for i := range samples {
		samples[i] *= scale
	}

	return true
}
