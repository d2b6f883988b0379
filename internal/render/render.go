// Package render renders a board.Board as a human-readable Unicode
// board, for the CLI's interactive mode.
//
// Generalized from Blunder's PrintBoard ASCII renderer in core/board.go
// (same rank-major top-to-bottom loop, same rank/file label gutters) to
// print Unicode chess glyphs instead of ASCII letters.
package render

import (
	"fmt"
	"io"

	"github.com/jsigrist/meneldor/engine/board"
	"github.com/jsigrist/meneldor/engine/square"
)

var glyphs = map[board.Piece][2]rune{
	board.Pawn:   {'♙', '♟'},
	board.Knight: {'♘', '♞'},
	board.Bishop: {'♗', '♝'},
	board.Rook:   {'♖', '♜'},
	board.Queen:  {'♕', '♛'},
	board.King:   {'♔', '♚'},
}

// Board writes a Unicode rendering of b to w, ranks 8 down to 1.
func Board(w io.Writer, b *board.Board) {
	fmt.Fprintln(w)
	for rank := 7; rank >= 0; rank-- {
		fmt.Fprintf(w, "%d | ", rank+1)
		for file := 0; file < 8; file++ {
			sq := square.Make(file, rank)
			p, c, ok := b.PieceOn(sq)
			if !ok {
				fmt.Fprint(w, ". ")
				continue
			}
			pair := glyphs[p]
			idx := 0
			if c == board.Black {
				idx = 1
			}
			fmt.Fprintf(w, "%c ", pair[idx])
		}
		fmt.Fprintln(w)
	}
	fmt.Fprint(w, "  +")
	for i := 0; i < 16; i++ {
		fmt.Fprint(w, "-")
	}
	fmt.Fprintln(w)
	fmt.Fprint(w, "    ")
	for file := 0; file < 8; file++ {
		fmt.Fprintf(w, "%c ", 'a'+file)
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "FEN: %s\n", b.FEN())
}
