package wavetable_test

import (
	"fmt"

	"github.com/cwbudde/algo-wavetable/dsp/wavetable"
)

func ExampleGenerate() {
	cfg := wavetable.NewConfig(
		wavetable.WithTableLength(64),
		wavetable.WithSampleRate(8000),
		wavetable.WithBaseFrequency(500),
	)

	for table := range wavetable.Generate(cfg) {
		fmt.Printf("base=%.0f samples=%d\n", table.BaseFrequency, table.Len())
	}

	// Output:
	// base=500 samples=64
	// base=1000 samples=64
	// base=2000 samples=64
}

func ExampleEngine_Harmonics() {
	e := wavetable.NewEngine(wavetable.DefaultConfig())
	hs := e.Harmonics(5120)

	fmt.Println(hs)

	// Output:
	// [1 3]
}
