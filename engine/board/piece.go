package board

import "github.com/jsigrist/meneldor/engine/piece"

// Color and Piece are aliased from engine/piece rather than redefined
// here, so that engine/move can also depend on engine/piece without
// creating an import cycle through engine/board.
type (
	Color = piece.Color
	Piece = piece.Piece
)

const (
	Black = piece.Black
	White = piece.White
)

const (
	Pawn   = piece.Pawn
	Knight = piece.Knight
	Bishop = piece.Bishop
	Rook   = piece.Rook
	Queen  = piece.Queen
	King   = piece.King
	Empty  = piece.Empty
)

// PieceFromFENByte parses a FEN piece letter into its type and color.
func PieceFromFENByte(ch byte) (Piece, Color, bool) {
	return piece.FromFENByte(ch)
}
