package wavetable

import "github.com/cwbudde/algo-wavetable/dsp/core"

// OutputDigits is the number of decimal digits generated samples are rounded to.
const OutputDigits = 6

// Wavetable is one cycle of a band-limited waveform for a base frequency.
type Wavetable struct {
	BaseFrequency float64
	Samples       []float64
}

// Len returns the number of samples in the cycle.
func (w Wavetable) Len() int {
	return len(w.Samples)
}

// Peak returns the largest absolute sample value.
func (w Wavetable) Peak() float64 {
	return core.Peak(w.Samples)
}
