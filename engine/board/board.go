// Package board implements chess position state: per-piece and
// per-color bitboards, side to move, castling rights, en-passant
// square, halfmove clock, fullmove number and a cached Zobrist hash.
//
// Grounded on Blunder's core/board.go (DoMove/UndoMove/LoadFEN
// structure, the mailbox+bitboard hybrid representation) but
// re-expressed for little-endian square indexing and value-type boards
// (a Board is copied freely for search the way dragontoothmg's Board is
// copied in its apply.go, rather than mutated-then-undone on a single
// shared instance).
package board

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jsigrist/meneldor/engine/bitboard"
	"github.com/jsigrist/meneldor/engine/move"
	"github.com/jsigrist/meneldor/engine/square"
	"github.com/jsigrist/meneldor/engine/zobrist"
)

// CastlingRights is a 4-bit mask of the four castling rights.
type CastlingRights uint8

const (
	WhiteShort CastlingRights = 1 << iota
	WhiteLong
	BlackShort
	BlackLong
)

// castleKeyIndex maps a single CastlingRights bit to its zobrist.CastleKey
// index (WhiteShort=0, WhiteLong=1, BlackShort=2, BlackLong=3).
func castleKeyIndex(right CastlingRights) int {
	switch right {
	case WhiteShort:
		return 0
	case WhiteLong:
		return 1
	case BlackShort:
		return 2
	default:
		return 3
	}
}

// Board is the primary internal representation of a chess position.
type Board struct {
	PieceBB [6]bitboard.Board // indexed by board.Piece (Pawn..King), ignores color
	ColorBB [2]bitboard.Board // indexed by board.Color, union of that side's pieces

	// Mailbox view for O(1) piece-at-square lookup, mirroring Blunder's
	// hybrid bitboard+mailbox Board.
	pieceAt [64]Piece
	colorAt [64]Color

	Side           Color
	Castling       CastlingRights
	EPSquare       square.Square
	HalfmoveClock  int
	FullmoveNumber int
	Hash           uint64
}

// StartFEN is the standard chess starting position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// Occupied returns the union of all pieces on the board.
func (b *Board) Occupied() bitboard.Board {
	return b.ColorBB[White] | b.ColorBB[Black]
}

// PieceOn returns the piece type and color on sq, or (Empty, White, false)
// if the square is vacant.
func (b *Board) PieceOn(sq square.Square) (Piece, Color, bool) {
	p := b.pieceAt[sq]
	if p == Empty {
		return Empty, White, false
	}
	return p, b.colorAt[sq], true
}

// KingSquare returns the square of c's king.
func (b *Board) KingSquare(c Color) square.Square {
	return square.Square((b.PieceBB[King] & b.ColorBB[c]).LSB())
}

func (b *Board) place(p Piece, c Color, sq square.Square) {
	b.PieceBB[p].Set(int(sq))
	b.ColorBB[c].Set(int(sq))
	b.pieceAt[sq] = p
	b.colorAt[sq] = c
	b.Hash ^= zobrist.PieceKey(int(c), int(p), int(sq))
}

func (b *Board) remove(sq square.Square) {
	p := b.pieceAt[sq]
	if p == Empty {
		return
	}
	c := b.colorAt[sq]
	b.PieceBB[p].Clear(int(sq))
	b.ColorBB[c].Clear(int(sq))
	b.pieceAt[sq] = Empty
	b.colorAt[sq] = 0
	b.Hash ^= zobrist.PieceKey(int(c), int(p), int(sq))
}

func (b *Board) relocate(from, to square.Square) {
	p, c, ok := b.PieceOn(from)
	if !ok {
		return
	}
	b.remove(from)
	b.remove(to)
	b.place(p, c, to)
}

// epCaptureSquare returns the square of the pawn actually captured by an
// en-passant move landing on `to`: one rank behind the destination.
func epCaptureSquare(to square.Square, mover Color) square.Square {
	if mover == White {
		return to - 8
	}
	return to + 8
}

var castleRookMove = map[square.Square][2]square.Square{
	6:  {7, 5},   // e1g1 (White short): h1->f1
	2:  {0, 3},   // e1c1 (White long): a1->d1
	62: {63, 61}, // e8g8 (Black short): h8->f8
	58: {56, 59}, // e8c8 (Black long): a8->d8
}

func (b *Board) toggleCastleBit(right CastlingRights) {
	if b.Castling&right != 0 {
		b.Hash ^= zobrist.CastleKey(castleKeyIndex(right))
		b.Castling &^= right
	}
}

func (b *Board) setEPSquare(sq square.Square) {
	if b.EPSquare != square.None {
		b.Hash ^= zobrist.EPFileKey(b.EPSquare.File())
	}
	b.EPSquare = sq
	if sq != square.None {
		b.Hash ^= zobrist.EPFileKey(sq.File())
	}
}

// DoMove applies m to the board in place, without checking whether the
// move is legal (callers implement that via Clone + InCheck before
// committing a generated move — see engine/movegen). Null moves
// (move.NullMove) only flip the side to move.
func (b *Board) DoMove(m move.Move) {
	if m.IsNull() {
		b.Side = b.Side.Other()
		b.Hash ^= zobrist.SideKey()
		b.setEPSquare(square.None)
		return
	}

	from, to := m.From(), m.To()
	mover, _, _ := b.PieceOn(from)
	wasPawnMove := mover == Pawn
	wasCapture := m.IsCapture()

	if m.MoveKind() == move.EnPassant {
		b.remove(epCaptureSquare(to, b.Side))
		b.relocate(from, to)
	} else {
		b.relocate(from, to)
	}

	if m.IsCastle() {
		if rook, ok := castleRookMove[to]; ok {
			b.relocate(rook[0], rook[1])
		}
	}

	if promo := m.Promotion(); promo != Empty {
		b.remove(to)
		b.place(promo, b.Side, to)
	}

	// Castling-rights bookkeeping: any king move clears both of that
	// side's rights; any move to/from a corner clears the corresponding
	// right.
	switch {
	case mover == King && b.Side == White:
		b.toggleCastleBit(WhiteShort)
		b.toggleCastleBit(WhiteLong)
	case mover == King && b.Side == Black:
		b.toggleCastleBit(BlackShort)
		b.toggleCastleBit(BlackLong)
	}
	clearCornerRight := func(sq square.Square) {
		switch sq {
		case 0:
			b.toggleCastleBit(WhiteLong)
		case 7:
			b.toggleCastleBit(WhiteShort)
		case 56:
			b.toggleCastleBit(BlackLong)
		case 63:
			b.toggleCastleBit(BlackShort)
		}
	}
	clearCornerRight(from)
	clearCornerRight(to)

	// En-passant target: set iff this was a two-square pawn push.
	if wasPawnMove && abs(int(to)-int(from)) == 16 {
		b.setEPSquare((from + to) / 2)
	} else {
		b.setEPSquare(square.None)
	}

	if wasPawnMove || wasCapture {
		b.HalfmoveClock = 0
	} else {
		b.HalfmoveClock++
	}
	if b.Side == Black {
		b.FullmoveNumber++
	}

	b.Side = b.Side.Other()
	b.Hash ^= zobrist.SideKey()
}

// UndoMove reverses a previously applied move. The caller must supply
// the three pieces of state a bare move cannot derive on its own: the
// en-passant square, castling rights and halfmove clock as they were
// *before* the move was made. The fullmove
// counter is reversible from side-to-move parity, and the move itself
// (including its victim field) carries enough information to reverse the
// bitboards and mailbox.
func (b *Board) UndoMove(m move.Move, savedEP square.Square, savedRights CastlingRights, savedHalfmove int) {
	if m.IsNull() {
		b.Side = b.Side.Other()
		b.Hash ^= zobrist.SideKey()
		b.setEPSquare(savedEP)
		return
	}

	b.Side = b.Side.Other()
	b.Hash ^= zobrist.SideKey()
	if b.Side == Black {
		b.FullmoveNumber--
	}

	from, to := m.From(), m.To()

	if promo := m.Promotion(); promo != Empty {
		b.remove(to)
		b.place(Pawn, b.Side, from)
	} else {
		b.relocate(to, from)
	}

	if m.IsCastle() {
		if rook, ok := castleRookMove[to]; ok {
			b.relocate(rook[1], rook[0])
		}
	}

	if victim := m.Victim(); victim != Empty {
		victimSq := to
		if m.MoveKind() == move.EnPassant {
			victimSq = epCaptureSquare(to, b.Side)
		}
		b.place(victim, b.Side.Other(), victimSq)
	}

	b.setRights(savedRights)
	b.setEPSquare(savedEP)
	b.HalfmoveClock = savedHalfmove
}

func (b *Board) setRights(rights CastlingRights) {
	for _, right := range []CastlingRights{WhiteShort, WhiteLong, BlackShort, BlackLong} {
		want := rights&right != 0
		have := b.Castling&right != 0
		if want != have {
			b.Hash ^= zobrist.CastleKey(castleKeyIndex(right))
			b.Castling ^= right
		}
	}
}

// InCheckFunc reports whether color c's king is attacked. It is
// implemented by engine/movegen (which owns attack-detection) and
// assigned by that package's init function, so board does not import
// movegen and no import cycle arises.
var InCheckFunc func(b *Board, c Color) bool

// InCheck reports whether color c's king is attacked.
func (b *Board) InCheck(c Color) bool {
	return InCheckFunc(b, c)
}

// Clone returns an independent copy of the board (all fields are plain
// value types, so this is a cheap struct copy used pervasively by
// engine/search and engine/movegen instead of make/unmake on shared
// state).
func (b *Board) Clone() Board {
	return *b
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// FromFEN parses a FEN string into a Board.
func FromFEN(fen string) (Board, error) {
	var b Board
	fields := strings.Fields(fen)
	if len(fields) < 4 {
		return b, fmt.Errorf("board: malformed FEN %q: need at least 4 fields", fen)
	}
	for len(fields) < 6 {
		fields = append(fields, "0")
	}
	if fields[4] == "-" {
		fields[4] = "0"
	}

	ranks := strings.Split(fields[0], "/")
	if len(ranks) != 8 {
		return b, fmt.Errorf("board: malformed FEN %q: expected 8 ranks, got %d", fen, len(ranks))
	}
	for i, rankStr := range ranks {
		rank := 7 - i
		file := 0
		for _, ch := range []byte(rankStr) {
			if ch >= '1' && ch <= '8' {
				file += int(ch - '0')
				continue
			}
			p, c, ok := PieceFromFENByte(ch)
			if !ok {
				return b, fmt.Errorf("board: malformed FEN %q: bad piece byte %q", fen, ch)
			}
			if file > 7 {
				return b, fmt.Errorf("board: malformed FEN %q: rank %d overflows", fen, i)
			}
			b.place(p, c, square.Make(file, rank))
			file++
		}
	}

	switch fields[1] {
	case "w":
		b.Side = White
	case "b":
		b.Side = Black
	default:
		return b, fmt.Errorf("board: malformed FEN %q: bad side-to-move %q", fen, fields[1])
	}
	if b.Side == Black {
		b.Hash ^= zobrist.SideKey()
	}

	if fields[2] != "-" {
		for _, ch := range []byte(fields[2]) {
			switch ch {
			case 'K':
				b.toggleCastleOn(WhiteShort)
			case 'Q':
				b.toggleCastleOn(WhiteLong)
			case 'k':
				b.toggleCastleOn(BlackShort)
			case 'q':
				b.toggleCastleOn(BlackLong)
			default:
				return b, fmt.Errorf("board: malformed FEN %q: bad castling byte %q", fen, ch)
			}
		}
	}

	b.EPSquare = square.None
	if fields[3] != "-" {
		sq, err := square.FromCoord(fields[3])
		if err != nil {
			return b, fmt.Errorf("board: malformed FEN %q: %w", fen, err)
		}
		b.EPSquare = sq
		b.Hash ^= zobrist.EPFileKey(sq.File())
	}

	clock, err := strconv.Atoi(fields[4])
	if err != nil || clock < 0 {
		return b, fmt.Errorf("board: malformed FEN %q: bad halfmove clock %q", fen, fields[4])
	}
	b.HalfmoveClock = clock

	full, err := strconv.Atoi(fields[5])
	if err != nil || full < 1 {
		return b, fmt.Errorf("board: malformed FEN %q: bad fullmove number %q", fen, fields[5])
	}
	b.FullmoveNumber = full

	return b, nil
}

func (b *Board) toggleCastleOn(right CastlingRights) {
	b.Castling |= right
	b.Hash ^= zobrist.CastleKey(castleKeyIndex(right))
}

// FEN serializes the board back into Forsyth-Edwards Notation.
func (b *Board) FEN() string {
	var sb strings.Builder
	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			sq := square.Make(file, rank)
			p, c, ok := b.PieceOn(sq)
			if !ok {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			sb.WriteByte(p.FENByte(c))
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}

	sb.WriteByte(' ')
	sb.WriteString(b.Side.String())

	sb.WriteByte(' ')
	rights := ""
	if b.Castling&WhiteShort != 0 {
		rights += "K"
	}
	if b.Castling&WhiteLong != 0 {
		rights += "Q"
	}
	if b.Castling&BlackShort != 0 {
		rights += "k"
	}
	if b.Castling&BlackLong != 0 {
		rights += "q"
	}
	if rights == "" {
		rights = "-"
	}
	sb.WriteString(rights)

	sb.WriteByte(' ')
	if b.EPSquare == square.None {
		sb.WriteByte('-')
	} else {
		sb.WriteString(b.EPSquare.String())
	}

	fmt.Fprintf(&sb, " %d %d", b.HalfmoveClock, b.FullmoveNumber)
	return sb.String()
}

// RecomputeHash recomputes the Zobrist hash from scratch, used by
// invariant checks and tests to verify incremental updates never drift.
func (b *Board) RecomputeHash() uint64 {
	var h uint64
	for sq := 0; sq < 64; sq++ {
		if p, c, ok := b.PieceOn(square.Square(sq)); ok {
			h ^= zobrist.PieceKey(int(c), int(p), sq)
		}
	}
	if b.Side == Black {
		h ^= zobrist.SideKey()
	}
	for _, right := range []CastlingRights{WhiteShort, WhiteLong, BlackShort, BlackLong} {
		if b.Castling&right != 0 {
			h ^= zobrist.CastleKey(castleKeyIndex(right))
		}
	}
	if b.EPSquare != square.None {
		h ^= zobrist.EPFileKey(b.EPSquare.File())
	}
	return h
}
