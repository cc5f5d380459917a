// SPDX-License-Identifier: EPL-2.0

package utils

import "math"

// DbToGain converts a decibel value to a linear amplitude factor.
func DbToGain(db float64) float64 {
	return math.Pow(10, db/20)
}

// GainToDb converts a linear amplitude factor to decibels.
// Values at or below zero map to a -200 dB floor instead of -Inf so that
// silence stays well-behaved in gain computations.
func GainToDb(gain float64) float64 {
	if gain <= 1e-10 {
		return -200
	}
	return 20 * math.Log10(gain)
}
