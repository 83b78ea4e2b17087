package wavetable

import (
	"errors"
	"fmt"
	"math"
)

// Errors reported by [Config.Validate] and [NewBank].
var (
	ErrInvalidTableLength   = errors.New("wavetable: table length must be > 0")
	ErrInvalidSampleRate    = errors.New("wavetable: sample rate must be > 0")
	ErrInvalidBaseFrequency = errors.New("wavetable: base frequency must be > 0 and below nyquist")
	ErrInvalidHarmonicStep  = errors.New("wavetable: harmonic step must be > 0")
	ErrNilWeight            = errors.New("wavetable: harmonic weight must not be nil")
	ErrEmptyBank            = errors.New("wavetable: bank needs at least one table")
	ErrLengthMismatch       = errors.New("wavetable: table length mismatch")
	ErrUnordered            = errors.New("wavetable: tables must have ascending base frequencies")
)

// HarmonicWeight returns the amplitude of a harmonic given its 1-based index.
type HarmonicWeight func(harmonic int) float64

// Config holds the generation parameters. It is passed by value and never
// modified by the engine.
type Config struct {
	// TableLength is the number of samples per generated table.
	TableLength int
	// SampleRate is the target playback rate in Hz.
	SampleRate float64
	// BaseFrequency is the fundamental of the first table in Hz.
	BaseFrequency float64
	// HarmonicStep is the distance between summed harmonics. 2 sums odd
	// harmonics only.
	HarmonicStep int
	// Weight gives the amplitude of each summed harmonic.
	Weight HarmonicWeight
}

// Option configures a Config.
type Option func(*Config)

// DefaultConfig returns the reference square wave setup: 2048 samples per
// table at 44.1 kHz starting at 20 Hz.
func DefaultConfig() Config {
	return Config{
		TableLength:   2048,
		SampleRate:    44100,
		BaseFrequency: 20,
		HarmonicStep:  ShapeSquare.Step(),
		Weight:        ShapeSquare.Weight(),
	}
}

// NewConfig applies zero or more options to [DefaultConfig].
func NewConfig(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// WithTableLength sets the samples per table. Non-positive values are ignored.
func WithTableLength(n int) Option {
	return func(cfg *Config) {
		if n > 0 {
			cfg.TableLength = n
		}
	}
}

// WithSampleRate sets the target sample rate. Non-positive values are ignored.
func WithSampleRate(sampleRate float64) Option {
	return func(cfg *Config) {
		if sampleRate > 0 {
			cfg.SampleRate = sampleRate
		}
	}
}

// WithBaseFrequency sets the first table's fundamental. Non-positive values
// are ignored.
func WithBaseFrequency(freqHz float64) Option {
	return func(cfg *Config) {
		if freqHz > 0 {
			cfg.BaseFrequency = freqHz
		}
	}
}

// WithHarmonicStep sets the harmonic series step. Non-positive values are ignored.
func WithHarmonicStep(step int) Option {
	return func(cfg *Config) {
		if step > 0 {
			cfg.HarmonicStep = step
		}
	}
}

// WithWeight sets the per-harmonic amplitude function.
func WithWeight(w HarmonicWeight) Option {
	return func(cfg *Config) {
		if w != nil {
			cfg.Weight = w
		}
	}
}

// WithShape sets step and weight from a waveform preset.
func WithShape(s Shape) Option {
	return func(cfg *Config) {
		cfg.HarmonicStep = s.Step()
		cfg.Weight = s.Weight()
	}
}

// Nyquist returns half the sample rate.
func (c Config) Nyquist() float64 {
	return c.SampleRate / 2
}

// Validate checks the numeric constraints a configuration source must
// enforce before handing the config to the engine. The engine itself does
// not call it.
func (c Config) Validate() error {
	if c.TableLength <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidTableLength, c.TableLength)
	}
	if !(c.SampleRate > 0) || math.IsInf(c.SampleRate, 0) {
		return fmt.Errorf("%w: %v", ErrInvalidSampleRate, c.SampleRate)
	}
	if !(c.BaseFrequency > 0) || c.BaseFrequency >= c.Nyquist() {
		return fmt.Errorf("%w: %v (nyquist %v)", ErrInvalidBaseFrequency, c.BaseFrequency, c.Nyquist())
	}
	if c.HarmonicStep <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidHarmonicStep, c.HarmonicStep)
	}
	if c.Weight == nil {
		return ErrNilWeight
	}
	return nil
}
