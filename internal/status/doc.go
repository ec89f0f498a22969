// Package status aggregates per-account status lines into one board.
//
// Sessions push lines concurrently with Board.Update. Important lines redraw
// the board at once, ephemeral lines redraw it at most once per minimum
// interval. Every redraw happens under the board's single lock so lines from
// different accounts never interleave.
package status
