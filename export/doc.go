// Package export renders generated wavetables for consumers outside Go:
// C float array text, single-cycle WAV files and PNG plots.
//
// Writers never modify tables. Sample values are written as produced by
// the engine, already rounded to six decimal digits.
package export
