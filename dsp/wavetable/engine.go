package wavetable

import (
	"context"
	"iter"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Engine generates the octave tables of a [Config]. It holds no state other
// than the config and is safe for concurrent use.
type Engine struct {
	cfg Config
}

// NewEngine creates an engine for cfg. The config is not validated.
func NewEngine(cfg Config) *Engine {
	return &Engine{cfg: cfg}
}

// Generate returns the lazy table sequence for cfg.
func Generate(cfg Config) iter.Seq[Wavetable] {
	return NewEngine(cfg).Tables()
}

// Config returns the engine configuration.
func (e *Engine) Config() Config {
	return e.cfg
}

// Octaves returns the base frequencies of the generated tables in ascending
// order: base, 2*base, 4*base, ... while below nyquist. It is empty when the
// base frequency is not positive or reaches nyquist.
func (e *Engine) Octaves() []float64 {
	var out []float64
	for base := range e.bases() {
		out = append(out, base)
	}
	return out
}

func (e *Engine) bases() iter.Seq[float64] {
	nyquist := e.cfg.Nyquist()
	start := e.cfg.BaseFrequency
	return func(yield func(float64) bool) {
		if !(start > 0) {
			return
		}
		for base := start; base < nyquist; base *= 2 {
			if !yield(base) {
				return
			}
		}
	}
}

// Harmonics returns the harmonic indices summed into the table for base.
func (e *Engine) Harmonics(base float64) []int {
	return harmonics(e.cfg, base)
}

// Synthesize builds the table for a single base frequency.
func (e *Engine) Synthesize(base float64) Wavetable {
	return synthesize(e.cfg, base)
}

// Tables returns a lazy sequence with one table per octave. Each table is
// fully computed before it is yielded. The sequence can be ranged over more
// than once and produces identical tables every time.
func (e *Engine) Tables() iter.Seq[Wavetable] {
	return func(yield func(Wavetable) bool) {
		for base := range e.bases() {
			if !yield(synthesize(e.cfg, base)) {
				return
			}
		}
	}
}

// Collect synthesizes all octave tables sequentially.
func (e *Engine) Collect() []Wavetable {
	var out []Wavetable
	for t := range e.Tables() {
		out = append(out, t)
	}
	return out
}

// CollectParallel synthesizes all octave tables concurrently with at most
// workers goroutines; workers <= 0 uses GOMAXPROCS. The result is in
// ascending base-frequency order and identical to [Engine.Collect].
func (e *Engine) CollectParallel(ctx context.Context, workers int) ([]Wavetable, error) {
	bases := e.Octaves()
	if len(bases) == 0 {
		return nil, ctx.Err()
	}

	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	out := make([]Wavetable, len(bases))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, base := range bases {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			out[i] = synthesize(e.cfg, base)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}
