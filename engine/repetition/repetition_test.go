package repetition

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jsigrist/meneldor/engine/board"
)

func TestDetectorReportsThreefoldOnly(t *testing.T) {
	b, err := board.FromFEN(board.StartFEN)
	require.NoError(t, err)

	d := NewDetector()
	require.False(t, d.Push(&b))
	require.False(t, d.Push(&b))
	require.True(t, d.Push(&b))
}

func TestDetectorIgnoresHalfmoveAndFullmoveFields(t *testing.T) {
	a, err := board.FromFEN("4k3/8/8/8/8/8/8/4K3 w - - 0 1")
	require.NoError(t, err)
	c, err := board.FromFEN("4k3/8/8/8/8/8/8/4K3 w - - 7 12")
	require.NoError(t, err)

	d := NewDetector()
	require.False(t, d.Push(&a))
	require.False(t, d.Push(&c))
	require.True(t, d.Push(&a))
}

func TestDetectorDistinguishesCastlingRights(t *testing.T) {
	withRights, err := board.FromFEN("4k3/8/8/8/8/8/8/4K2R w K - 0 1")
	require.NoError(t, err)
	withoutRights, err := board.FromFEN("4k3/8/8/8/8/8/8/4K2R w - - 0 1")
	require.NoError(t, err)

	d := NewDetector()
	require.False(t, d.Push(&withRights))
	require.False(t, d.Push(&withoutRights))
	require.False(t, d.Push(&withRights))
	require.False(t, d.Push(&withoutRights))
	require.True(t, d.Push(&withRights))
}

func TestDetectorResetClearsHistory(t *testing.T) {
	b, err := board.FromFEN(board.StartFEN)
	require.NoError(t, err)

	d := NewDetector()
	d.Push(&b)
	d.Push(&b)
	d.Reset()
	require.False(t, d.Push(&b))
}

func TestPathHashesContainsAndPop(t *testing.T) {
	p := NewPathHashes()
	p.Push(1, false)
	p.Push(2, false)
	require.True(t, p.Contains(1))
	require.True(t, p.Contains(2))
	require.False(t, p.Contains(3))

	p.Pop()
	require.False(t, p.Contains(2))
	require.True(t, p.Contains(1))
}

func TestPathHashesClearsOnHalfmoveClockReset(t *testing.T) {
	p := NewPathHashes()
	p.Push(1, false)
	p.Push(2, false)
	p.Push(3, true) // a capture or pawn move resets the clock
	require.False(t, p.Contains(1))
	require.False(t, p.Contains(2))
	require.True(t, p.Contains(3))
}
