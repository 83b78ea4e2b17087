package spectrum

import (
	"fmt"
	"math"
)

// Goertzel evaluates a single DFT bin of a block of known length.
//
// After exactly length samples have been processed, Power equals |X[bin]|^2
// of the DFT of that block. For a single-cycle table the bin is the
// harmonic number.
type Goertzel struct {
	bin    int
	length int
	coeff  float64
	s0, s1 float64
}

// NewGoertzel creates an analyzer for bin of a length-sample block.
// bin must be in [0, length/2].
func NewGoertzel(bin, length int) (*Goertzel, error) {
	if length <= 0 {
		return nil, fmt.Errorf("%w: length %d", ErrEmptyCycle, length)
	}
	if bin < 0 || bin > length/2 {
		return nil, fmt.Errorf("%w: %d of %d", ErrInvalidBin, bin, length)
	}

	return &Goertzel{
		bin:    bin,
		length: length,
		coeff:  2 * math.Cos(2*math.Pi*float64(bin)/float64(length)),
	}, nil
}

// Reset clears the internal state.
func (g *Goertzel) Reset() {
	g.s0 = 0
	g.s1 = 0
}

// ProcessBlock updates the internal state with a block of samples.
func (g *Goertzel) ProcessBlock(input []float64) {
	s0, s1 := g.s0, g.s1

	coeff := g.coeff
	for _, x := range input {
		s := x + coeff*s0 - s1
		s1 = s0
		s0 = s
	}

	g.s0, g.s1 = s0, s1
}

// Power returns the squared magnitude of the bin.
func (g *Goertzel) Power() float64 {
	return g.s0*g.s0 + g.s1*g.s1 - g.coeff*g.s0*g.s1
}

// Magnitude returns the magnitude of the bin.
func (g *Goertzel) Magnitude() float64 {
	p := g.Power()
	if p <= 0 {
		return 0
	}

	return math.Sqrt(p)
}

// Amplitude returns the peak amplitude of the sinusoid at the bin, assuming
// one block of length samples was processed.
func (g *Goertzel) Amplitude() float64 {
	a := 2 * g.Magnitude() / float64(g.length)
	if g.bin == 0 || 2*g.bin == g.length {
		a *= 0.5
	}
	return a
}

// Bin returns the analyzed bin.
func (g *Goertzel) Bin() int { return g.bin }

// Length returns the expected block length.
func (g *Goertzel) Length() int { return g.length }
