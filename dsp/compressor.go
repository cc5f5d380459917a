// SPDX-License-Identifier: EPL-2.0

package dsp

import (
	"math"

	"github.com/Markl1n1/qc-audio/utils"
)

// Compressor is a downward dynamic range compressor with a soft knee and a
// peak envelope follower. It evens out level differences between quiet and
// loud passages, which keeps varying speaker volumes inside a usable range
// for transcription.
type Compressor struct {
	thresholdDB float64
	kneeDB      float64
	ratio       float64

	attackCoeff  float64
	releaseCoeff float64

	envelope float64
}

// NewCompressor builds a compressor for the given sample rate.
//
//   - thresholdDB: level above which gain reduction starts (e.g. -24)
//   - kneeDB: width of the soft knee centered on the threshold (e.g. 12)
//   - ratio: compression ratio above the knee (e.g. 4 for 4:1)
//   - attackMs/releaseMs: envelope follower time constants
func NewCompressor(sampleRate int, thresholdDB, kneeDB, ratio, attackMs, releaseMs float64) *Compressor {
	rate := float64(sampleRate)

	return &Compressor{
		thresholdDB:  thresholdDB,
		kneeDB:       kneeDB,
		ratio:        ratio,
		attackCoeff:  math.Exp(-1000 / (attackMs * rate)),
		releaseCoeff: math.Exp(-1000 / (releaseMs * rate)),
	}
}

// Process compresses samples in place and returns the same slice.
func (c *Compressor) Process(samples []float32) []float32 {
	for i, s := range samples {
		x := math.Abs(float64(s))

		// Peak follower: fast attack, slow release.
		if x > c.envelope {
			c.envelope = c.attackCoeff*c.envelope + (1-c.attackCoeff)*x
		} else {
			c.envelope = c.releaseCoeff*c.envelope + (1-c.releaseCoeff)*x
		}

		gainDB := c.gainReductionDB(utils.GainToDb(c.envelope))
		if gainDB != 0 {
			samples[i] = s * float32(utils.DbToGain(gainDB))
		}
	}

	return samples
}

// gainReductionDB computes the static curve: 0 below the knee, a quadratic
// blend inside it, and straight ratio-based reduction above it.
func (c *Compressor) gainReductionDB(levelDB float64) float64 {
	over := levelDB - c.thresholdDB
	half := c.kneeDB / 2

	switch {
	case over <= -half:
		return 0
	case over >= half:
		return -over * (1 - 1/c.ratio)
	default:
		t := over + half
		return -(1 - 1/c.ratio) * t * t / (2 * c.kneeDB)
	}
}

// Reset clears the envelope follower state.
func (c *Compressor) Reset() {
	c.envelope = 0
}
