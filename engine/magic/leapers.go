package magic

import "github.com/jsigrist/meneldor/engine/bitboard"

// KnightAttacks and KingAttacks are 64-entry tables of precomputed
// direct attack masks.
var (
	KnightAttacks [64]bitboard.Board
	KingAttacks   [64]bitboard.Board

	// WhitePawnAttacks and BlackPawnAttacks are precomputed per-square
	// pawn capture masks, built from shift-and-mask formulas rather than
	// a ray walk.
	WhitePawnAttacks [64]bitboard.Board
	BlackPawnAttacks [64]bitboard.Board
)

var knightDeltas = []delta{{1, 2}, {2, 1}, {2, -1}, {1, -2}, {-1, -2}, {-2, -1}, {-2, 1}, {-1, 2}}
var kingDeltas = []delta{{1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}, {0, -1}, {1, -1}}

func init() {
	for sq := 0; sq < 64; sq++ {
		file, rank := sq%8, sq/8
		var knight, king bitboard.Board
		for _, d := range knightDeltas {
			f, r := file+d.df, rank+d.dr
			if f >= 0 && f <= 7 && r >= 0 && r <= 7 {
				knight.Set(r*8 + f)
			}
		}
		for _, d := range kingDeltas {
			f, r := file+d.df, rank+d.dr
			if f >= 0 && f <= 7 && r >= 0 && r <= 7 {
				king.Set(r*8 + f)
			}
		}
		KnightAttacks[sq] = knight
		KingAttacks[sq] = king

		single := bitboard.FromSquare(sq)
		WhitePawnAttacks[sq] = (single.Shift(9) &^ bitboard.FileA) | (single.Shift(7) &^ bitboard.FileH)
		BlackPawnAttacks[sq] = (single.Shift(-7) &^ bitboard.FileA) | (single.Shift(-9) &^ bitboard.FileH)
	}
}

// QueenAttacks returns the union of rook and bishop attacks for sq given
// occupied.
func QueenAttacks(sq int, occupied bitboard.Board) bitboard.Board {
	return Rooks.Attacks(sq, occupied) | Bishops.Attacks(sq, occupied)
}
