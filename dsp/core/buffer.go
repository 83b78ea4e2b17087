package core

// EnsureLen returns a slice with the requested length, reusing buf capacity if possible.
func EnsureLen(buf []float64, n int) []float64 {
	if n <= 0 {
		return buf[:0]
	}
	if cap(buf) >= n {
		return buf[:n]
	}
	return make([]float64, n)
}

// RoundBlock rounds every value of buf in place to the given decimal digits.
func RoundBlock(buf []float64, digits int) {
	for i, v := range buf {
		buf[i] = Round(v, digits)
	}
}

// Peak returns the largest absolute value in buf, or 0 for an empty slice.
func Peak(buf []float64) float64 {
	peak := 0.0
	for _, v := range buf {
		if v < 0 {
			v = -v
		}
		if v > peak {
			peak = v
		}
	}
	return peak
}
