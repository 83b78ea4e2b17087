package wavetable

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-wavetable/dsp/core"
)

// Bank is an ordered set of octave tables of equal length, as produced by
// [Engine.Collect].
type Bank struct {
	tables []Wavetable
	size   int
}

// NewBank validates tables and wraps them. The slice is not copied.
func NewBank(tables []Wavetable) (*Bank, error) {
	if len(tables) == 0 {
		return nil, ErrEmptyBank
	}

	if !(tables[0].BaseFrequency > 0) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBaseFrequency, tables[0].BaseFrequency)
	}

	size := tables[0].Len()
	if size == 0 {
		return nil, fmt.Errorf("%w: table 0 is empty", ErrLengthMismatch)
	}

	for i, t := range tables {
		if t.Len() != size {
			return nil, fmt.Errorf("%w: table %d has %d samples, expected %d", ErrLengthMismatch, i, t.Len(), size)
		}
		if i > 0 && !(t.BaseFrequency > tables[i-1].BaseFrequency) {
			return nil, fmt.Errorf("%w: table %d base %v after %v", ErrUnordered, i, t.BaseFrequency, tables[i-1].BaseFrequency)
		}
	}

	return &Bank{tables: tables, size: size}, nil
}

// Len returns the number of tables.
func (b *Bank) Len() int { return len(b.tables) }

// Size returns the samples per table.
func (b *Bank) Size() int { return b.size }

// Base returns the base frequency of the lowest table.
func (b *Bank) Base() float64 { return b.tables[0].BaseFrequency }

// Table returns the table at octave index i.
func (b *Bank) Table(i int) Wavetable { return b.tables[i] }

// Select maps a playback frequency to an octave index and a crossfade weight.
// The oscillator output is table[oct+1] + (table[oct]-table[oct+1])*mix, so
// mix is 1 at the octave's own base frequency and 0 one octave above it.
// Frequencies beyond the top octave play the top table alone; NaN selects
// the lowest table.
func (b *Bank) Select(freqHz float64) (oct int, mix float64) {
	w := math.Abs(freqHz) / b.Base()
	if math.IsNaN(w) {
		return 0, 1
	}
	if w <= 2 {
		return 0, core.Clamp(2-w, 0, 1)
	}

	last := len(b.tables) - 1
	if math.IsInf(w, 1) || w > math.Ldexp(2, last) {
		return last, 1
	}

	// Smallest oct with w/2^oct <= 2.
	oct = int(math.Ceil(math.Log2(w / 2)))
	for oct > 0 && math.Ldexp(w, -(oct-1)) <= 2 {
		oct--
	}
	for math.Ldexp(w, -oct) > 2 {
		oct++
	}

	return oct, core.Clamp(2-math.Ldexp(w, -oct), 0, 1)
}

// At returns the linearly interpolated value of table oct at phase, which
// wraps into [0, 1). A non-finite phase reads position 0.
func (b *Bank) At(oct int, phase float64) float64 {
	frame := b.tables[oct].Samples

	pos := wrapPhase(phase) * float64(b.size)
	i0 := int(pos)
	if i0 >= b.size {
		i0 = b.size - 1
	}
	frac := pos - float64(i0)
	i1 := (i0 + 1) % b.size

	return frame[i0]*(1-frac) + frame[i1]*frac
}

// wrapPhase maps phase into [0, 1]. NaN and infinities map to 0.
func wrapPhase(phase float64) float64 {
	p := phase - math.Floor(phase)
	if math.IsNaN(p) {
		return 0
	}
	return p
}
