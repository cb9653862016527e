// Package scope implements the livescope animation pipeline.
//
// Each tick the Loop polls the keyboard, folds a metrics.Sample into the
// rolling histories, advances the particle system, composes a Frame and
// draws it, then sleeps off whatever is left of the frame interval.
//
// Screen layout, top to bottom:
//
//	rows [0, h/3)        per-core CPU history, one column per sample
//	rows [h/3, 2h/3)     memory wave, one marker per column
//	anywhere             particles falling from the top edge
//	row  h-5             two-line info panel
//
// All state lives in a single Model owned by the loop; nothing here is
// safe for concurrent use and nothing needs to be.
package scope
