package audio

// Concat appends the given mono segments into one continuous buffer, in
// order, with no padding between them. The result length is exactly the sum
// of the segment lengths.
func Concat(segments [][]float32) []float32 {
	total := 0
	for _, s := range segments {
		total += len(s)
	}

	out := make([]float32, 0, total)
	for _, s := range segments {
		out = append(out, s...)
	}

	return out
}
