// Package spectrum analyzes the harmonic content of single-cycle tables.
//
// A table holds exactly one period, so DFT bin k of the table is harmonic k
// of its fundamental. Power-of-two lengths use an FFT plan, other lengths
// evaluate the requested bins with the Goertzel recurrence.
package spectrum
