package wavetable

import "github.com/cwbudde/algo-wavetable/dsp/core"

const defaultOscillatorFreq = 220

// Oscillator renders a [Bank] at an arbitrary frequency. It blends the
// octave table selected for the frequency with the next higher one, so
// content stays band-limited as the frequency rises through an octave.
type Oscillator struct {
	bank *Bank
	cfg  core.ProcessorConfig

	freq  float64
	inc   float64
	phase float64
	oct   int
	mix   float64
}

// NewOscillator creates an oscillator over bank at 220 Hz.
func NewOscillator(bank *Bank, opts ...core.ProcessorOption) *Oscillator {
	o := &Oscillator{
		bank: bank,
		cfg:  core.ApplyProcessorOptions(opts...),
	}
	o.SetFrequency(defaultOscillatorFreq)
	return o
}

// SampleRate returns the rendering sample rate.
func (o *Oscillator) SampleRate() float64 { return o.cfg.SampleRate }

// Frequency returns the current frequency in Hz.
func (o *Oscillator) Frequency() float64 { return o.freq }

// SetFrequency sets the oscillator frequency and reselects the octave tables.
// Negative and NaN frequencies are treated as 0 and frequencies above
// nyquist as nyquist.
func (o *Oscillator) SetFrequency(freqHz float64) {
	if !(freqHz > 0) {
		freqHz = 0
	}
	if nyquist := o.cfg.SampleRate / 2; freqHz > nyquist {
		freqHz = nyquist
	}

	o.freq = freqHz
	o.inc = freqHz / o.cfg.SampleRate
	o.oct, o.mix = o.bank.Select(freqHz)
}

// Phase returns the current phase in [0, 1).
func (o *Oscillator) Phase() float64 { return o.phase }

// SetPhase sets the phase, wrapped into [0, 1).
func (o *Oscillator) SetPhase(phase float64) {
	o.phase = wrapPhase(phase)
	if o.phase >= 1 {
		o.phase = 0
	}
}

// Reset rewinds the phase to zero.
func (o *Oscillator) Reset() {
	o.phase = 0
}

// ProcessSample advances the phase and returns the next output sample.
func (o *Oscillator) ProcessSample() float64 {
	o.phase = wrapPhase(o.phase + o.inc)
	if o.phase >= 1 {
		o.phase = 0
	}

	upper := o.oct + 1
	if upper >= o.bank.Len() {
		upper = o.bank.Len() - 1
	}

	hi := o.bank.At(upper, o.phase)
	lo := o.bank.At(o.oct, o.phase)

	return hi + (lo-hi)*o.mix
}

// ProcessBlock fills dst with consecutive output samples.
func (o *Oscillator) ProcessBlock(dst []float64) {
	for i := range dst {
		dst[i] = o.ProcessSample()
	}
}
