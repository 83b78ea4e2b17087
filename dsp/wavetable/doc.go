// Package wavetable generates band-limited single-cycle wavetables by additive
// synthesis, one table per octave of a base frequency up to the Nyquist
// frequency of a target sample rate.
//
// Each table sums the harmonics of a [Shape] (odd harmonics weighted 1/h for
// the default square wave) and stops at the first harmonic that would reach
// Nyquist, so no table carries content the target sample rate cannot
// represent. Sample k of every harmonic is evaluated at phase k/N directly
// from its index, which keeps all harmonics phase aligned over long tables.
//
// The engine is stateless. [Generate] returns a lazy, restartable sequence
// and [Engine.CollectParallel] synthesizes all octaves concurrently while
// keeping ascending base-frequency order.
//
// Generated tables are negated relative to the raw harmonic sum and rounded
// to six decimal digits. Amplitudes are not normalized.
//
// [Bank] and [Oscillator] read a generated set back: the oscillator picks
// the octave table for its frequency and crossfades towards the next one.
package wavetable
