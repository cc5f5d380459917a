package utils

// Float32ToInt16 converts a float32 sample in [-1, 1] to 16-bit PCM.
// The mapping is asymmetric: negative samples scale by 32768 and positive
// samples by 32767, so both full-scale extremes are reachable without
// overflow. Out-of-range input is clamped first.
func Float32ToInt16(x float32) int16 {
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}

	if x < 0 {
		return int16(x * 32768.0)
	}

	return int16(x * 32767.0)
}
