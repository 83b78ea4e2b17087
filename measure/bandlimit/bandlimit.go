// Package bandlimit verifies the harmonic content of generated wavetables.
package bandlimit

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-wavetable/dsp/core"
	"github.com/cwbudde/algo-wavetable/dsp/spectrum"
	"github.com/cwbudde/algo-wavetable/dsp/wavetable"
)

// Report holds the analysis of one table.
type Report struct {
	BaseFrequency float64
	// Summed lists the harmonics the engine added for this base frequency.
	Summed []int
	// HighestSummed is the last entry of Summed, 0 if none.
	HighestSummed int
	// Harmonics holds measured peak amplitudes indexed by harmonic number,
	// up to the first excluded harmonic or half the table length.
	Harmonics []float64
	// HarmonicsDB holds Harmonics in dB, -Inf for empty bins.
	HarmonicsDB []float64
	// OddEnergy and EvenEnergy are sums of squared amplitudes of harmonics >= 1.
	OddEnergy  float64
	EvenEnergy float64
	// EvenToOddDB is 10*log10(EvenEnergy/OddEnergy).
	EvenToOddDB float64
	// Peak is the largest absolute sample value.
	Peak float64
	// AliasFree reports HighestSummed*BaseFrequency < nyquist.
	AliasFree bool
	// Folded reports that the table length cannot hold HighestSummed, so
	// the upper harmonics wrap onto lower bins of the stored cycle.
	Folded bool
}

// Analyzer checks tables against the configuration that produced them.
type Analyzer struct {
	cfg    wavetable.Config
	engine *wavetable.Engine
}

// NewAnalyzer creates an analyzer for tables generated from cfg.
func NewAnalyzer(cfg wavetable.Config) *Analyzer {
	return &Analyzer{cfg: cfg, engine: wavetable.NewEngine(cfg)}
}

// Analyze is a one-shot analysis of a single table.
func Analyze(table wavetable.Wavetable, cfg wavetable.Config) (Report, error) {
	return NewAnalyzer(cfg).Analyze(table)
}

// AnalyzeAll is a one-shot analysis of a table sequence.
func AnalyzeAll(tables []wavetable.Wavetable, cfg wavetable.Config) ([]Report, error) {
	return NewAnalyzer(cfg).AnalyzeAll(tables)
}

// Analyze measures the harmonic content of table.
func (a *Analyzer) Analyze(table wavetable.Wavetable) (Report, error) {
	base := table.BaseFrequency
	summed := a.engine.Harmonics(base)

	r := Report{
		BaseFrequency: base,
		Summed:        summed,
		Peak:          table.Peak(),
		AliasFree:     true,
	}

	if len(summed) > 0 {
		r.HighestSummed = summed[len(summed)-1]
		r.AliasFree = float64(r.HighestSummed)*base < a.cfg.Nyquist()
		r.Folded = 2*r.HighestSummed > table.Len()
	}

	step := a.cfg.HarmonicStep
	if step < 1 {
		step = 1
	}

	amps, err := spectrum.HarmonicAmplitudes(table.Samples, r.HighestSummed+step)
	if err != nil {
		return Report{}, fmt.Errorf("bandlimit: table %v Hz: %w", base, err)
	}
	r.Harmonics = amps
	r.HarmonicsDB = make([]float64, len(amps))
	for h, amp := range amps {
		r.HarmonicsDB[h] = core.LinearToDB(amp)
	}

	for h := 1; h < len(amps); h++ {
		e := amps[h] * amps[h]
		if h%2 == 1 {
			r.OddEnergy += e
		} else {
			r.EvenEnergy += e
		}
	}

	if r.OddEnergy > 0 {
		r.EvenToOddDB = core.LinearPowerToDB(r.EvenEnergy / r.OddEnergy)
	} else {
		r.EvenToOddDB = math.NaN()
	}

	return r, nil
}

// AnalyzeAll analyzes every table in order.
func (a *Analyzer) AnalyzeAll(tables []wavetable.Wavetable) ([]Report, error) {
	out := make([]Report, 0, len(tables))
	for _, t := range tables {
		r, err := a.Analyze(t)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, nil
}
