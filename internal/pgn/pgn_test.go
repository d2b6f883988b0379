package pgn

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewGameUsesUnknownPlaceholders(t *testing.T) {
	g := NewGame()
	require.Equal(t, "?", g.Event)
	require.Equal(t, "????.??.??", g.Date)
	require.Equal(t, "*", g.Result)
}

func TestWriteEmitsSevenTagsAndMovetext(t *testing.T) {
	g := NewGame()
	g.White, g.Black, g.Result = "Engine A", "Engine B", "1-0"
	g.Moves = []string{"e2e4", "e7e5", "g1f3"}

	var sb strings.Builder
	require.NoError(t, g.Write(&sb))
	out := sb.String()

	require.Contains(t, out, `[White "Engine A"]`)
	require.Contains(t, out, `[Black "Engine B"]`)
	require.Contains(t, out, `[Result "1-0"]`)
	require.Contains(t, out, "1. e2e4 e7e5 2. g1f3 1-0")
}

func TestWriteReadRoundTrip(t *testing.T) {
	g := NewGame()
	g.Event, g.White, g.Black, g.Result = "Friendly", "Alice", "Bob", "1/2-1/2"
	g.Moves = []string{"e2e4", "e7e5", "g1f3", "b8c6", "e7e8q"}

	var sb strings.Builder
	require.NoError(t, g.Write(&sb))

	back, err := Read(strings.NewReader(sb.String()))
	require.NoError(t, err)
	require.Equal(t, g.Event, back.Event)
	require.Equal(t, g.White, back.White)
	require.Equal(t, g.Black, back.Black)
	require.Equal(t, g.Result, back.Result)
	require.Equal(t, g.Moves, back.Moves)
}

func TestReadSkipsMoveNumbersAndResult(t *testing.T) {
	text := "[Event \"?\"]\n[Site \"?\"]\n[Date \"????.??.??\"]\n[Round \"?\"]\n[White \"?\"]\n[Black \"?\"]\n[Result \"*\"]\n\n1. e2e4 e7e5 2. g1f3 *\n"
	g, err := Read(strings.NewReader(text))
	require.NoError(t, err)
	require.Equal(t, []string{"e2e4", "e7e5", "g1f3"}, g.Moves)
}

func TestReadRejectsMalformedMoveToken(t *testing.T) {
	text := "[Event \"?\"]\n\n1. xyz123 *\n"
	_, err := Read(strings.NewReader(text))
	require.Error(t, err)
}

func TestLooksLikeUCIMoveAcceptsPromotion(t *testing.T) {
	require.True(t, looksLikeUCIMove("e7e8q"))
	require.False(t, looksLikeUCIMove("e7e8z"))
	require.False(t, looksLikeUCIMove("i1i2"))
	require.False(t, looksLikeUCIMove("e2"))
}

func TestIsMoveNumberAndIsResult(t *testing.T) {
	require.True(t, isMoveNumber("12."))
	require.False(t, isMoveNumber("e2e4"))
	require.True(t, isResult("1-0"))
	require.True(t, isResult("1/2-1/2"))
	require.False(t, isResult("e2e4"))
}
