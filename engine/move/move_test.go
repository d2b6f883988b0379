package move

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jsigrist/meneldor/engine/piece"
)

func TestMakeAndAccessors(t *testing.T) {
	m := Make(12, 28, piece.Pawn, piece.Knight, piece.Queen, Normal)
	require.Equal(t, uint8(12), uint8(m.From()))
	require.Equal(t, uint8(28), uint8(m.To()))
	require.Equal(t, piece.Pawn, m.Piece())
	require.Equal(t, piece.Knight, m.Victim())
	require.Equal(t, piece.Queen, m.Promotion())
	require.Equal(t, Normal, m.MoveKind())
	require.True(t, m.IsCapture())
	require.True(t, m.IsPromotion())
}

func TestNullMove(t *testing.T) {
	require.True(t, NullMove.IsNull())
	require.Equal(t, "0000", NullMove.String())
}

func TestIsCastle(t *testing.T) {
	kingside := Make(4, 6, piece.King, piece.Empty, piece.Empty, Normal)
	require.True(t, kingside.IsCastle())

	queenside := Make(4, 2, piece.King, piece.Empty, piece.Empty, Normal)
	require.True(t, queenside.IsCastle())

	kingStep := Make(4, 12, piece.King, piece.Empty, piece.Empty, Normal)
	require.False(t, kingStep.IsCastle())

	rookMove := Make(0, 2, piece.Rook, piece.Empty, piece.Empty, Normal)
	require.False(t, rookMove.IsCastle())
}

func TestScoreHintClamp(t *testing.T) {
	m := Make(0, 1, piece.Pawn, piece.Empty, piece.Empty, Normal)
	require.Equal(t, 0, m.ScoreHint())

	m = m.WithScoreHint(20)
	require.Equal(t, 15, m.ScoreHint())

	m = m.WithScoreHint(-5)
	require.Equal(t, 0, m.ScoreHint())

	m = m.WithScoreHint(9)
	require.Equal(t, 9, m.ScoreHint())
	// Score hint is independent of the other fields.
	require.Equal(t, piece.Pawn, m.Piece())
}

func TestStringUCI(t *testing.T) {
	m := Make(12, 28, piece.Pawn, piece.Empty, piece.Empty, Normal) // e2e4
	require.Equal(t, "e2e4", m.String())

	promo := Make(52, 60, piece.Pawn, piece.Empty, piece.Queen, Normal) // e7e8q
	require.Equal(t, "e7e8q", promo.String())
}

func TestIsNullFalseForNormalMove(t *testing.T) {
	m := Make(0, 1, piece.Pawn, piece.Empty, piece.Empty, Normal)
	require.False(t, m.IsNull())
}
