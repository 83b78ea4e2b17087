package spectrum

import (
	"errors"
	"fmt"
	"sync"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-wavetable/dsp/core"
)

// Errors returned by spectrum functions.
var (
	ErrEmptyCycle      = errors.New("spectrum: empty cycle")
	ErrNotPowerOfTwo   = errors.New("spectrum: cycle length is not a power of two")
	ErrInvalidBin      = errors.New("spectrum: bin out of range")
	ErrInvalidHarmonic = errors.New("spectrum: max harmonic must be >= 0")
)

// scratchBuf holds pooled scratch memory for complex-to-real unpacking.
type scratchBuf struct {
	data []float64
}

var scratchPool = sync.Pool{
	New: func() any { return &scratchBuf{} },
}

func getScratch(n int) (re, im []float64, buf *scratchBuf) {
	buf = scratchPool.Get().(*scratchBuf)
	need := 2 * n
	if cap(buf.data) < need {
		buf.data = make([]float64, need)
	} else {
		buf.data = buf.data[:need]
	}
	return buf.data[:n], buf.data[n:need], buf
}

func putScratch(buf *scratchBuf) {
	scratchPool.Put(buf)
}

// Magnitude returns |X[k]| for each complex spectrum bin.
func Magnitude(in []complex128) []float64 {
	if len(in) == 0 {
		return nil
	}

	out := make([]float64, len(in))
	re, im, buf := getScratch(len(in))

	for i, c := range in {
		re[i] = real(c)
		im[i] = imag(c)
	}

	vecmath.Magnitude(out, re, im)
	putScratch(buf)
	return out
}

// CycleSpectrum returns the DFT of one cycle. The cycle length must be a
// power of two.
func CycleSpectrum(cycle []float64) ([]complex128, error) {
	n := len(cycle)
	if n == 0 {
		return nil, ErrEmptyCycle
	}
	if !core.IsPowerOfTwo(n) {
		return nil, fmt.Errorf("%w: %d", ErrNotPowerOfTwo, n)
	}

	plan, err := algofft.NewPlan64(n)
	if err != nil {
		return nil, fmt.Errorf("spectrum: failed to create FFT plan: %w", err)
	}

	in := make([]complex128, n)
	for i, v := range cycle {
		in[i] = complex(v, 0)
	}

	out := make([]complex128, n)
	if err := plan.Forward(out, in); err != nil {
		return nil, fmt.Errorf("spectrum: forward FFT failed: %w", err)
	}

	return out, nil
}

// HarmonicAmplitudes returns the peak amplitude of harmonics 0..maxHarmonic
// of one cycle: |X[0]|/N for DC and 2|X[h]|/N above it. maxHarmonic is
// limited to N/2, the highest harmonic a cycle of N samples can hold.
func HarmonicAmplitudes(cycle []float64, maxHarmonic int) ([]float64, error) {
	n := len(cycle)
	if n == 0 {
		return nil, ErrEmptyCycle
	}
	if maxHarmonic < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidHarmonic, maxHarmonic)
	}
	if maxHarmonic > n/2 {
		maxHarmonic = n / 2
	}

	var mags []float64
	if core.IsPowerOfTwo(n) {
		bins, err := CycleSpectrum(cycle)
		if err != nil {
			return nil, err
		}
		mags = Magnitude(bins[:maxHarmonic+1])
	} else {
		mags = make([]float64, maxHarmonic+1)
		for h := range mags {
			g, err := NewGoertzel(h, n)
			if err != nil {
				return nil, err
			}
			g.ProcessBlock(cycle)
			mags[h] = g.Magnitude()
		}
	}

	scale := 2 / float64(n)
	amps := make([]float64, len(mags))
	vecmath.ScaleBlock(amps, mags, scale)
	amps[0] *= 0.5
	if n%2 == 0 && maxHarmonic == n/2 {
		// Nyquist bin has no mirrored counterpart.
		amps[maxHarmonic] *= 0.5
	}

	return amps, nil
}
