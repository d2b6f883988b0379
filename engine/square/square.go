// Package square implements the 0..63 board coordinate used throughout the
// engine, little-endian rank-file mapped: a1=0, h1=7, a8=56, h8=63.
package square

import (
	"fmt"
	"strings"
)

// Square is a board coordinate in 0..63.
type Square int8

// None represents the absence of a square, used for the en-passant
// target and similar optional-square fields.
const None Square = -1

const N = 64

// File returns the 0..7 file (a..h) of the square.
func (s Square) File() int { return int(s) % 8 }

// Rank returns the 0..7 rank (1..8) of the square.
func (s Square) Rank() int { return int(s) / 8 }

// Valid reports whether s is a real board square.
func (s Square) Valid() bool { return s >= 0 && s < N }

// String renders the square in algebraic notation, e.g. "e4".
func (s Square) String() string {
	if !s.Valid() {
		return "-"
	}
	return fmt.Sprintf("%c%c", 'a'+byte(s.File()), '1'+byte(s.Rank()))
}

// FromCoord parses algebraic notation such as "e4" or "E4" into a Square.
func FromCoord(coord string) (Square, error) {
	coord = strings.ToLower(strings.TrimSpace(coord))
	if len(coord) != 2 {
		return None, fmt.Errorf("square: malformed coordinate %q", coord)
	}
	file := coord[0]
	rank := coord[1]
	if file < 'a' || file > 'h' || rank < '1' || rank > '8' {
		return None, fmt.Errorf("square: coordinate out of range %q", coord)
	}
	return Square(int(rank-'1')*8 + int(file-'a')), nil
}

// Make builds a square from a 0..7 file and 0..7 rank.
func Make(file, rank int) Square {
	return Square(rank*8 + file)
}
