package testutil

import "math"

// CycleSine returns harmonic full periods of a sine spread over length samples,
// starting at phase 0.
func CycleSine(harmonic int, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	step := 2 * math.Pi * float64(harmonic) / float64(length)
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out
}

// SquareSeries returns the negated odd-harmonic 1/h Fourier series of a
// square wave over one cycle, summing harmonics up to and including
// maxHarmonic. Each sample is evaluated independently as a reference for
// table synthesis.
func SquareSeries(length, maxHarmonic int) []float64 {
	out := make([]float64, length)
	for i := range out {
		phase := float64(i) / float64(length)
		sum := 0.0
		for h := 1; h <= maxHarmonic; h += 2 {
			sum += math.Sin(float64(h)*phase*2*math.Pi) / float64(h)
		}
		out[i] = -sum
	}
	return out
}

// DC generates a constant-valued signal.
func DC(value float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = value
	}
	return out
}
