// Package hillclimb finetunes a radio frequency by steepest-ascent hill
// climbing over integer frequencies.
//
// From the current frequency f the climber compares clarity(f-1) and
// clarity(f+1) and moves to the better neighbour while it is strictly better
// than clarity(f). When both neighbours are equally good it moves right.
// The result is a local maximum; which one depends on the start.
//
// Spectra:
//
//   - Triangle:  one station, 50..150, peak at 100.
//   - DoubleSin: two stations, 50..150.
//   - TripleSin: three stations, 1000..1600.
//
// Clarity is 0 outside a spectrum's edges.
package hillclimb
