// Package movegen generates pseudo-legal and legal moves from a
// board.Board using the engine/magic attack tables.
//
// Grounded on Blunder's core/movegen.go GenLegalMoves decomposition
// (one gen* function per piece type, castling handled separately from
// king steps) but trades its pin-aware "notPinnedMask" optimization for
// the simpler generate-pseudo-legal-then-filter-by-check scheme also
// shown in dragontoothmg's movegen.go GenerateLegalMoves: every
// pseudo-legal move is tried on a cloned board and kept only if it does
// not leave the mover's own king in check. This costs extra clones per
// node but removes an entire class of pin bookkeeping, keeping
// GenerateLegalMoves's contract (it returns only legal moves) simple
// without needing Blunder's internal invariants.
package movegen

import (
	"github.com/jsigrist/meneldor/engine/bitboard"
	"github.com/jsigrist/meneldor/engine/board"
	"github.com/jsigrist/meneldor/engine/magic"
	"github.com/jsigrist/meneldor/engine/move"
	"github.com/jsigrist/meneldor/engine/square"
)

func init() {
	board.InCheckFunc = inCheck
}

// IsSquareAttacked reports whether sq is attacked by any piece of color
// attacker, given the board's current occupancy.
func IsSquareAttacked(b *board.Board, sq square.Square, attacker board.Color) bool {
	occ := b.Occupied()
	attackerBB := b.ColorBB[attacker]

	if magic.KnightAttacks[sq]&b.PieceBB[board.Knight]&attackerBB != 0 {
		return true
	}
	if magic.KingAttacks[sq]&b.PieceBB[board.King]&attackerBB != 0 {
		return true
	}
	rooksQueens := (b.PieceBB[board.Rook] | b.PieceBB[board.Queen]) & attackerBB
	if magic.Rooks.Attacks(int(sq), occ)&rooksQueens != 0 {
		return true
	}
	bishopsQueens := (b.PieceBB[board.Bishop] | b.PieceBB[board.Queen]) & attackerBB
	if magic.Bishops.Attacks(int(sq), occ)&bishopsQueens != 0 {
		return true
	}

	pawns := b.PieceBB[board.Pawn] & attackerBB
	var pawnAttackers bitboard.Board
	if attacker == board.White {
		pawnAttackers = magic.BlackPawnAttacks[sq]
	} else {
		pawnAttackers = magic.WhitePawnAttacks[sq]
	}
	return pawnAttackers&pawns != 0
}

func inCheck(b *board.Board, c board.Color) bool {
	return IsSquareAttacked(b, b.KingSquare(c), c.Other())
}

// GetAllAttackedSquares returns the union of every square attacked by
// color c, used by engine/eval's mobility term.
func GetAllAttackedSquares(b *board.Board, c board.Color) bitboard.Board {
	var attacked bitboard.Board
	occ := b.Occupied()
	own := b.ColorBB[c]

	for bb := b.PieceBB[board.Pawn] & own; bb != 0; {
		sq := bb.PopLSB()
		if c == board.White {
			attacked |= magic.WhitePawnAttacks[sq]
		} else {
			attacked |= magic.BlackPawnAttacks[sq]
		}
	}
	for bb := b.PieceBB[board.Knight] & own; bb != 0; {
		attacked |= magic.KnightAttacks[bb.PopLSB()]
	}
	for bb := b.PieceBB[board.King] & own; bb != 0; {
		attacked |= magic.KingAttacks[bb.PopLSB()]
	}
	for bb := (b.PieceBB[board.Rook] | b.PieceBB[board.Queen]) & own; bb != 0; {
		attacked |= magic.Rooks.Attacks(bb.PopLSB(), occ)
	}
	for bb := (b.PieceBB[board.Bishop] | b.PieceBB[board.Queen]) & own; bb != 0; {
		attacked |= magic.Bishops.Attacks(bb.PopLSB(), occ)
	}
	return attacked
}

// GeneratePseudoLegalMoves returns every move that is legal ignoring
// whether it leaves the mover's own king in check.
func GeneratePseudoLegalMoves(b *board.Board) []move.Move {
	moves := make([]move.Move, 0, 48)
	us, them := b.Side, b.Side.Other()
	usBB, themBB := b.ColorBB[us], b.ColorBB[them]
	occ := usBB | themBB

	genPawnMoves(b, us, usBB, themBB, &moves)

	for bb := b.PieceBB[board.Knight] & usBB; bb != 0; {
		from := bb.PopLSB()
		addSteppers(b, move.Normal, square.Square(from), board.Knight, magic.KnightAttacks[from]&^usBB, themBB, &moves)
	}
	for bb := b.PieceBB[board.King] & usBB; bb != 0; {
		from := bb.PopLSB()
		addSteppers(b, move.Normal, square.Square(from), board.King, magic.KingAttacks[from]&^usBB, themBB, &moves)
	}
	for bb := b.PieceBB[board.Bishop] & usBB; bb != 0; {
		from := bb.PopLSB()
		addSteppers(b, move.Normal, square.Square(from), board.Bishop, magic.Bishops.Attacks(from, occ)&^usBB, themBB, &moves)
	}
	for bb := b.PieceBB[board.Rook] & usBB; bb != 0; {
		from := bb.PopLSB()
		addSteppers(b, move.Normal, square.Square(from), board.Rook, magic.Rooks.Attacks(from, occ)&^usBB, themBB, &moves)
	}
	for bb := b.PieceBB[board.Queen] & usBB; bb != 0; {
		from := bb.PopLSB()
		addSteppers(b, move.Normal, square.Square(from), board.Queen, magic.QueenAttacks(from, occ)&^usBB, themBB, &moves)
	}

	genCastlingMoves(b, us, occ, &moves)

	return moves
}

func addSteppers(b *board.Board, kind move.Kind, from square.Square, mover board.Piece, targets, enemy bitboard.Board, moves *[]move.Move) {
	for targets != 0 {
		to := targets.PopLSB()
		victim := board.Empty
		if enemy.Has(to) {
			victim, _, _ = b.PieceOn(square.Square(to))
		}
		*moves = append(*moves, move.Make(from, square.Square(to), mover, victim, board.Empty, kind))
	}
}

var promotionPieces = [4]board.Piece{board.Queen, board.Rook, board.Bishop, board.Knight}

func addPawnQuiet(from, to square.Square, moves *[]move.Move) {
	if to.Rank() == 0 || to.Rank() == 7 {
		for _, promo := range promotionPieces {
			*moves = append(*moves, move.Make(from, to, board.Pawn, board.Empty, promo, move.Normal))
		}
		return
	}
	*moves = append(*moves, move.Make(from, to, board.Pawn, board.Empty, board.Empty, move.Normal))
}

func addPawnCapture(from, to square.Square, victim board.Piece, moves *[]move.Move) {
	if to.Rank() == 0 || to.Rank() == 7 {
		for _, promo := range promotionPieces {
			*moves = append(*moves, move.Make(from, to, board.Pawn, victim, promo, move.Normal))
		}
		return
	}
	*moves = append(*moves, move.Make(from, to, board.Pawn, victim, board.Empty, move.Normal))
}

func genPawnMoves(b *board.Board, us board.Color, usBB, themBB bitboard.Board, moves *[]move.Move) {
	occ := usBB | themBB
	forward := 8
	startRank := 1
	attacks := magic.WhitePawnAttacks
	if us == board.Black {
		forward = -8
		startRank = 6
		attacks = magic.BlackPawnAttacks
	}

	for bb := b.PieceBB[board.Pawn] & usBB; bb != 0; {
		from := bb.PopLSB()
		fromSq := square.Square(from)
		one := square.Square(from + forward)
		if one.Valid() && !occ.Has(int(one)) {
			addPawnQuiet(fromSq, one, moves)
			if fromSq.Rank() == startRank {
				two := square.Square(from + 2*forward)
				if !occ.Has(int(two)) {
					*moves = append(*moves, move.Make(fromSq, two, board.Pawn, board.Empty, board.Empty, move.Normal))
				}
			}
		}

		for atk := attacks[from] &^ usBB; atk != 0; {
			to := atk.PopLSB()
			toSq := square.Square(to)
			if themBB.Has(to) {
				victim, _, _ := b.PieceOn(toSq)
				addPawnCapture(fromSq, toSq, victim, moves)
			} else if toSq == b.EPSquare {
				*moves = append(*moves, move.Make(fromSq, toSq, board.Pawn, board.Pawn, board.Empty, move.EnPassant))
			}
		}
	}
}

var (
	whiteShortEmpty = bitboard.FromSquare(5) | bitboard.FromSquare(6)
	whiteLongEmpty  = bitboard.FromSquare(1) | bitboard.FromSquare(2) | bitboard.FromSquare(3)
	blackShortEmpty = bitboard.FromSquare(61) | bitboard.FromSquare(62)
	blackLongEmpty  = bitboard.FromSquare(57) | bitboard.FromSquare(58) | bitboard.FromSquare(59)
)

// genCastlingMoves appends castling moves for which the right is held,
// every square between king and rook is empty, and the king's origin,
// crossing and landing squares are all unattacked (the same gating as
// Blunder's genCastlingMoves).
func genCastlingMoves(b *board.Board, us board.Color, occ bitboard.Board, moves *[]move.Move) {
	enemy := us.Other()
	if us == board.White {
		if b.Castling&board.WhiteShort != 0 && occ&whiteShortEmpty == 0 &&
			!IsSquareAttacked(b, 4, enemy) && !IsSquareAttacked(b, 5, enemy) && !IsSquareAttacked(b, 6, enemy) {
			*moves = append(*moves, move.Make(4, 6, board.King, board.Empty, board.Empty, move.Normal))
		}
		if b.Castling&board.WhiteLong != 0 && occ&whiteLongEmpty == 0 &&
			!IsSquareAttacked(b, 4, enemy) && !IsSquareAttacked(b, 3, enemy) && !IsSquareAttacked(b, 2, enemy) {
			*moves = append(*moves, move.Make(4, 2, board.King, board.Empty, board.Empty, move.Normal))
		}
		return
	}
	if b.Castling&board.BlackShort != 0 && occ&blackShortEmpty == 0 &&
		!IsSquareAttacked(b, 60, enemy) && !IsSquareAttacked(b, 61, enemy) && !IsSquareAttacked(b, 62, enemy) {
		*moves = append(*moves, move.Make(60, 62, board.King, board.Empty, board.Empty, move.Normal))
	}
	if b.Castling&board.BlackLong != 0 && occ&blackLongEmpty == 0 &&
		!IsSquareAttacked(b, 60, enemy) && !IsSquareAttacked(b, 59, enemy) && !IsSquareAttacked(b, 58, enemy) {
		*moves = append(*moves, move.Make(60, 58, board.King, board.Empty, board.Empty, move.Normal))
	}
}

// GenerateLegalMoves filters GeneratePseudoLegalMoves down to moves that
// do not leave the mover's own king in check.
func GenerateLegalMoves(b *board.Board) []move.Move {
	us := b.Side
	pseudo := GeneratePseudoLegalMoves(b)
	legal := make([]move.Move, 0, len(pseudo))
	for _, m := range pseudo {
		child := b.Clone()
		child.DoMove(m)
		if !inCheck(&child, us) {
			legal = append(legal, m)
		}
	}
	return legal
}

// GeneratePseudoLegalAttackMoves returns only the capturing subset of
// the pseudo-legal moves (including capture-promotions), used by
// quiescence search. Quiet promotions are excluded: they don't resolve
// a tactical threat the way a capture does, so letting them into
// quiesce would over-generate without fixing the horizon effect they
// exist to address.
func GeneratePseudoLegalAttackMoves(b *board.Board) []move.Move {
	all := GeneratePseudoLegalMoves(b)
	out := make([]move.Move, 0, len(all))
	for _, m := range all {
		if m.IsCapture() {
			out = append(out, m)
		}
	}
	return out
}

// HasAnyLegalMoves reports whether the side to move has at least one
// legal move, used to distinguish checkmate/stalemate from a normal
// position without paying for the full legal move list.
func HasAnyLegalMoves(b *board.Board) bool {
	us := b.Side
	for _, m := range GeneratePseudoLegalMoves(b) {
		child := b.Clone()
		child.DoMove(m)
		if !inCheck(&child, us) {
			return true
		}
	}
	return false
}

// Perft counts the leaf nodes reachable in exactly depth plies. It
// walks GenerateLegalMoves recursively rather than Blunder's
// pseudo-legal-plus-check-filter loop with a perft-local TT, trading
// some speed for a much smaller implementation; nothing here requires
// perft to hit any particular nodes-per-second figure.
func Perft(b *board.Board, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	moves := GenerateLegalMoves(b)
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		child := b.Clone()
		child.DoMove(m)
		nodes += Perft(&child, depth-1)
	}
	return nodes
}
