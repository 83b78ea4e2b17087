package wavetable

import (
	"math"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-wavetable/dsp/core"
)

// harmonicStep returns the effective step, never less than one so the
// harmonic loop always advances.
func (c Config) harmonicStep() int {
	if c.HarmonicStep < 1 {
		return 1
	}
	return c.HarmonicStep
}

func (c Config) tableLength() int {
	if c.TableLength < 0 {
		return 0
	}
	return c.TableLength
}

func (c Config) weight() HarmonicWeight {
	if c.Weight == nil {
		return inverseWeight
	}
	return c.Weight
}

// harmonics returns 1, 1+step, ... while h*base stays below nyquist.
func harmonics(cfg Config, base float64) []int {
	nyquist := cfg.Nyquist()
	step := cfg.harmonicStep()

	var out []int
	for h := 1; float64(h)*base < nyquist; h += step {
		out = append(out, h)
	}
	return out
}

// synthesize builds one table for base. All state is local to the call.
func synthesize(cfg Config, base float64) Wavetable {
	n := cfg.tableLength()
	acc := make([]float64, n)
	if n == 0 {
		return Wavetable{BaseFrequency: base, Samples: acc}
	}

	weight := cfg.weight()
	sines := make([]float64, n)
	partial := make([]float64, n)
	length := float64(n)

	for _, h := range harmonics(cfg, base) {
		hf := float64(h)
		for k := range sines {
			phase := float64(k) / length
			sines[k] = math.Sin(hf * phase * 2 * math.Pi)
		}

		// partial = amp * sin(h*phase*2pi); acc += partial
		vecmath.ScaleBlock(partial, sines, weight(h))
		vecmath.AddBlockInPlace(acc, partial)
	}

	samples := make([]float64, n)
	vecmath.ScaleBlock(samples, acc, -1)
	core.RoundBlock(samples, OutputDigits)

	return Wavetable{BaseFrequency: base, Samples: samples}
}
