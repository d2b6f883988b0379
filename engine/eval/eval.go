// Package eval implements a deliberately crude material-plus-mobility
// static evaluation. Grounded on the material-sum loop in Blunder's
// core/evaluate.go evaluateMaterial (reusing its five piece values
// unchanged) but dropping its piece-square tables and king-safety term
// in favor of one centipawn per attacked square, with no positional
// heuristics.
package eval

import (
	"github.com/jsigrist/meneldor/engine/board"
	"github.com/jsigrist/meneldor/engine/movegen"
)

// ContemptScore is a zero draw score. engine/search does not use it: it
// scores draws with its own contempt value (DefaultContemptScore, or the
// contempt set in engine.toml).
const ContemptScore = 0

var materialPieces = [5]board.Piece{board.Pawn, board.Knight, board.Bishop, board.Rook, board.Queen}

// Material returns the material balance for color c: the sum of c's
// piece values minus the opponent's.
func Material(b *board.Board, c board.Color) int {
	them := c.Other()
	var score int
	for _, p := range materialPieces {
		ours := (b.PieceBB[p] & b.ColorBB[c]).Count()
		theirs := (b.PieceBB[p] & b.ColorBB[them]).Count()
		score += p.Value() * (ours - theirs)
	}
	return score
}

// Mobility returns the popcount of every square attacked by color c.
func Mobility(b *board.Board, c board.Color) int {
	return movegen.GetAllAttackedSquares(b, c).Count()
}

// Evaluate scores the position from the perspective of the side to
// move: positive means the side to move is better off. It does not
// check for checkmate or stalemate; callers (engine/search) handle
// those terminal cases before falling back to Evaluate.
func Evaluate(b *board.Board) int {
	side := b.Side
	return Material(b, side) + Mobility(b, side)
}
