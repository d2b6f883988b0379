// Package move implements a packed 32-bit move encoding, generalizing
// Blunder's 16-bit core/movegen.go MakeMove/GetMoveInfo scheme to carry
// piece, victim and promotion inline instead of relying on a
// side-channel mailbox lookup.
package move

import (
	"fmt"

	"github.com/jsigrist/meneldor/engine/piece"
	"github.com/jsigrist/meneldor/engine/square"
)

// Kind distinguishes the handful of move shapes that need special
// treatment during apply/undo. Castling is not a Kind: it is detected
// structurally, as a king move spanning two files.
type Kind uint32

const (
	Null Kind = iota
	Normal
	EnPassant
)

// Move is a packed move: bits 0-5 from, 6-11 to, 12-15 piece, 16-19
// victim, 20-23 promotion, 24-27 kind, 28-31 score hint.
type Move uint32

const (
	fromShift  = 0
	toShift    = 6
	pieceShift = 12
	victimShift = 16
	promoShift = 20
	kindShift  = 24
	hintShift  = 28

	sixBits  = 0x3F
	fourBits = 0xF
)

// Make builds a Move with a zero score hint.
func Make(from, to square.Square, mover, victim, promo piece.Piece, kind Kind) Move {
	return Move(uint32(from)&sixBits) |
		Move(uint32(to)&sixBits)<<toShift |
		Move(uint32(mover)&fourBits)<<pieceShift |
		Move(uint32(victim)&fourBits)<<victimShift |
		Move(uint32(promo)&fourBits)<<promoShift |
		Move(uint32(kind)&fourBits)<<kindShift
}

// NullMove is used only by null-move pruning: it flips the side to move
// without touching any piece.
var NullMove = Move(uint32(Null) << kindShift)

// From returns the origin square.
func (m Move) From() square.Square { return square.Square((m >> fromShift) & sixBits) }

// To returns the destination square.
func (m Move) To() square.Square { return square.Square((m >> toShift) & sixBits) }

// Piece returns the moving piece's type.
func (m Move) Piece() piece.Piece { return piece.Piece((m >> pieceShift) & fourBits) }

// Victim returns the captured piece's type, or piece.Empty if the move
// is not a capture.
func (m Move) Victim() piece.Piece { return piece.Piece((m >> victimShift) & fourBits) }

// Promotion returns the promotion target, or piece.Empty if this move is
// not a promotion.
func (m Move) Promotion() piece.Piece { return piece.Piece((m >> promoShift) & fourBits) }

// MoveKind returns the move's Kind tag.
func (m Move) MoveKind() Kind { return Kind((m >> kindShift) & fourBits) }

// IsNull reports whether m is the null move used by null-move pruning.
func (m Move) IsNull() bool { return m.MoveKind() == Null }

// IsCapture reports whether m captures a piece (including en passant).
func (m Move) IsCapture() bool { return m.Victim() != piece.Empty }

// IsPromotion reports whether m promotes a pawn.
func (m Move) IsPromotion() bool { return m.Promotion() != piece.Empty }

// IsCastle reports whether m is a castling move: a king move spanning
// exactly two files.
func (m Move) IsCastle() bool {
	if m.Piece() != piece.King {
		return false
	}
	df := m.From().File() - m.To().File()
	return df == 2 || df == -2
}

// ScoreHint returns the compressed 4-bit move-ordering score hint:
// clamp((score/200)+7, 0, 15).
func (m Move) ScoreHint() int { return int((m >> hintShift) & fourBits) }

// WithScoreHint returns a copy of m with its score hint field replaced.
func (m Move) WithScoreHint(hint int) Move {
	if hint < 0 {
		hint = 0
	}
	if hint > 15 {
		hint = 15
	}
	return (m &^ (Move(fourBits) << hintShift)) | Move(uint32(hint)&fourBits)<<hintShift
}

var promoLetters = map[piece.Piece]byte{
	piece.Knight: 'n',
	piece.Bishop: 'b',
	piece.Rook:   'r',
	piece.Queen:  'q',
}

// String renders m in UCI long algebraic notation, e.g. "e2e4" or
// "e7e8q".
func (m Move) String() string {
	if m.IsNull() {
		return "0000"
	}
	s := fmt.Sprintf("%s%s", m.From(), m.To())
	if promo := m.Promotion(); promo != piece.Empty {
		s += string(promoLetters[promo])
	}
	return s
}
