package export

import (
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/cwbudde/algo-vecmath"
	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/cwbudde/algo-wavetable/dsp/core"
	"github.com/cwbudde/algo-wavetable/dsp/wavetable"
)

// ErrBitDepth is returned for unsupported PCM bit depths.
var ErrBitDepth = errors.New("export: bit depth must be 16, 24 or 32")

const wavFormatPCM = 1

// WAVOptions configures [WriteWAV].
type WAVOptions struct {
	// SampleRate is written to the header. Zero uses 44100.
	SampleRate int
	// BitDepth is 16, 24 or 32. Zero uses 16.
	BitDepth int
	// Normalize scales all tables by a common factor so the loudest sample
	// reaches full scale. Without it samples beyond ±1 are clipped.
	Normalize bool
}

// WriteWAV writes tables back to back as one mono PCM file, one cycle per
// frame block, in table order.
func WriteWAV(w io.WriteSeeker, tables []wavetable.Wavetable, opts WAVOptions) error {
	sampleRate := opts.SampleRate
	if sampleRate <= 0 {
		sampleRate = 44100
	}
	bitDepth := opts.BitDepth
	if bitDepth == 0 {
		bitDepth = 16
	}
	switch bitDepth {
	case 16, 24, 32:
	default:
		return fmt.Errorf("%w: %d", ErrBitDepth, bitDepth)
	}

	total := 0
	peak := 0.0
	for _, t := range tables {
		total += t.Len()
		peak = math.Max(peak, t.Peak())
	}

	gain := 1.0
	if opts.Normalize && peak > 0 {
		gain = 1 / peak
	}
	full := float64(int64(1)<<(bitDepth-1) - 1)

	data := make([]int, 0, total)
	scaled := make([]float64, 0)
	for _, t := range tables {
		scaled = core.EnsureLen(scaled, t.Len())
		vecmath.ScaleBlock(scaled, t.Samples, gain)
		for _, v := range scaled {
			data = append(data, int(math.Round(core.Clamp(v, -1, 1)*full)))
		}
	}

	enc := wav.NewEncoder(w, sampleRate, bitDepth, 1, wavFormatPCM)
	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: 1, SampleRate: sampleRate},
		Data:           data,
		SourceBitDepth: bitDepth,
	}
	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("export: write wav frames: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("export: close wav encoder: %w", err)
	}
	return nil
}
