// Package minimax scores tic-tac-toe moves with exhaustive minimax search.
//
// Board is a small comparable value: playing a move returns a new Board and
// leaves the receiver untouched, and a Board can be used directly as a map
// key, which is how Scores memoises positions it has already evaluated.
//
// Scores reports, for every legal move of the player to move, the value the
// game would end with under perfect play from both sides: +1 win, 0 draw,
// -1 loss, always from the point of view of the player making the move.
package minimax
