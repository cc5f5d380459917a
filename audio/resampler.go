// SPDX-License-Identifier: EPL-2.0

package audio

import "math"

// Quality selects the resampling algorithm.
type Quality int

const (
	// QualitySinc is a band-limited windowed-sinc resampler. When
	// downsampling, the kernel cutoff sits at the output Nyquist frequency
	// so energy above it is suppressed before decimation. This is the
	// default and the right choice for speech that will be transcribed.
	QualitySinc Quality = iota

	// QualityNearest picks the nearest input sample for each output frame.
	// It is much cheaper but introduces audible aliasing; use it only when
	// throughput matters more than fidelity.
	QualityNearest
)

// sincHalfTaps is the number of sinc zero crossings kept on each side of the
// interpolation point, before kernel stretching.
const sincHalfTaps = 32

// OutputLength returns the number of output frames produced by resampling
// n input frames from srcRate to dstRate: ceil(n*dstRate/srcRate).
func OutputLength(n, srcRate, dstRate int) int {
	if srcRate == dstRate {
		return n
	}
	return (n*dstRate + srcRate - 1) / srcRate
}

// Resample converts a mono buffer from srcRate to dstRate using the given
// quality mode. The output length is OutputLength(len(in), srcRate, dstRate).
//
// When srcRate == dstRate the input is copied unchanged, with no
// interpolation math applied.
func Resample(in []float32, srcRate, dstRate int, q Quality) []float32 {
	if srcRate == dstRate {
		out := make([]float32, len(in))
		copy(out, in)
		return out
	}

	outLen := OutputLength(len(in), srcRate, dstRate)
	if outLen == 0 {
		return []float32{}
	}

	if q == QualityNearest {
		return resampleNearest(in, srcRate, dstRate, outLen)
	}

	return resampleSinc(in, srcRate, dstRate, outLen)
}

// resampleSinc renders each output frame as a windowed-sinc weighted sum of
// nearby input frames. The kernel is stretched by the decimation factor when
// downsampling, which moves its cutoff to the output Nyquist frequency.
// Weights are renormalized per output frame so DC gain stays exactly 1 even
// where the kernel is truncated at the buffer edges.
func resampleSinc(in []float32, srcRate, dstRate, outLen int) []float32 {
	step := float64(srcRate) / float64(dstRate) // input frames per output frame

	// Cutoff in cycles per input sample: input Nyquist when upsampling,
	// output Nyquist when downsampling.
	fc := 0.5
	halfWidth := float64(sincHalfTaps)
	if step > 1 {
		fc = 0.5 / step
		halfWidth *= step
	}

	out := make([]float32, outLen)
	last := len(in) - 1

	for i := range out {
		center := float64(i) * step

		lo := int(math.Ceil(center - halfWidth))
		hi := int(math.Floor(center + halfWidth))
		if lo < 0 {
			lo = 0
		}
		if hi > last {
			hi = last
		}

		var acc, norm float64
		for j := lo; j <= hi; j++ {
			w := sincKernel(float64(j)-center, fc, halfWidth)
			acc += float64(in[j]) * w
			norm += w
		}

		if norm != 0 {
			out[i] = float32(acc / norm)
		}
	}

	return out
}

// sincKernel evaluates 2fc·sinc(2fc·x) shaped by a Hann window spanning
// [-halfWidth, halfWidth].
func sincKernel(x, fc, halfWidth float64) float64 {
	win := 0.5 + 0.5*math.Cos(math.Pi*x/halfWidth)
	if x == 0 {
		return 2 * fc * win
	}

	return math.Sin(2*fc*math.Pi*x) / (math.Pi * x) * win
}

// resampleNearest maps each output frame to the closest-from-below input
// frame: in[floor(i*srcRate/dstRate)], clamped to the last valid index.
func resampleNearest(in []float32, srcRate, dstRate, outLen int) []float32 {
	ratio := float64(srcRate) / float64(dstRate)
	out := make([]float32, outLen)
	last := len(in) - 1

	for i := range out {
		idx := int(float64(i) * ratio)
		if idx > last {
			idx = last
		}
		out[i] = in[idx]
	}

	return out
}
