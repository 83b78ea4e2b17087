package wavetable

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-wavetable/dsp/spectrum"
)

func TestSquareTableHasOnlyOddHarmonics(t *testing.T) {
	e := NewEngine(DefaultConfig())
	table := e.Synthesize(1000)

	amps, err := spectrum.HarmonicAmplitudes(table.Samples, 40)
	require.NoError(t, err)

	summed := map[int]bool{}
	for _, h := range e.Harmonics(1000) {
		summed[h] = true
	}
	require.Len(t, summed, 11)

	for h, a := range amps {
		switch {
		case summed[h]:
			require.InDelta(t, 1/float64(h), a, 1e-5, "harmonic %d", h)
		default:
			require.InDelta(t, 0, a, 1e-5, "harmonic %d", h)
		}
	}
}

func TestSawtoothTableHasAllHarmonics(t *testing.T) {
	e := NewEngine(NewConfig(WithShape(ShapeSawtooth), WithTableLength(1024)))
	table := e.Synthesize(4000)

	require.Equal(t, []int{1, 2, 3, 4, 5}, e.Harmonics(4000))

	amps, err := spectrum.HarmonicAmplitudes(table.Samples, 8)
	require.NoError(t, err)
	for h := 1; h <= 5; h++ {
		require.InDelta(t, 1/float64(h), amps[h], 1e-5, "harmonic %d", h)
	}
	for h := 6; h <= 8; h++ {
		require.InDelta(t, 0, amps[h], 1e-5, "harmonic %d", h)
	}
}
