package bitboard

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSetClearHas(t *testing.T) {
	var b Board
	b.Set(10)
	require.True(t, b.Has(10))
	require.False(t, b.Has(11))
	b.Clear(10)
	require.False(t, b.Has(10))
}

func TestFromSquare(t *testing.T) {
	require.Equal(t, Board(1), FromSquare(0))
	require.Equal(t, Board(1)<<63, FromSquare(63))
}

func TestCount(t *testing.T) {
	var b Board
	b.Set(0)
	b.Set(5)
	b.Set(63)
	require.Equal(t, 3, b.Count())
	require.Equal(t, 0, Empty.Count())
	require.Equal(t, 64, Full.Count())
}

func TestLSBMSB(t *testing.T) {
	var b Board
	b.Set(3)
	b.Set(40)
	require.Equal(t, 3, b.LSB())
	require.Equal(t, 40, b.MSB())
	require.Equal(t, 64, Empty.LSB())
	require.Equal(t, -1, Empty.MSB())
}

func TestPopLSB(t *testing.T) {
	var b Board
	b.Set(4)
	b.Set(9)
	first := b.PopLSB()
	require.Equal(t, 4, first)
	require.False(t, b.Has(4))
	require.True(t, b.Has(9))
}

func TestShift(t *testing.T) {
	b := FromSquare(0)
	require.Equal(t, FromSquare(8), b.Shift(8))
	require.Equal(t, b, b.Shift(8).Shift(-8))
}

func TestSquares(t *testing.T) {
	var b Board
	b.Set(2)
	b.Set(1)
	b.Set(60)
	require.Equal(t, []int{1, 2, 60}, b.Squares())
}

func TestFileAndRankMasks(t *testing.T) {
	// a1, a2, ... a8 are all in file A.
	for rank := 0; rank < 8; rank++ {
		require.True(t, FileA.Has(rank*8))
	}
	require.False(t, FileA.Has(1))

	// Rank 1 is squares 0..7.
	for file := 0; file < 8; file++ {
		require.True(t, Rank1.Has(file))
	}
	require.False(t, Rank1.Has(8))
}
