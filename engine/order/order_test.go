package order

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jsigrist/meneldor/engine/board"
	"github.com/jsigrist/meneldor/engine/move"
)

func TestSortPutsHashMoveFirst(t *testing.T) {
	hash := move.Make(12, 28, board.Pawn, board.Empty, board.Empty, move.Normal)
	other := move.Make(1, 18, board.Knight, board.Empty, board.Empty, move.Normal)
	moves := []move.Move{other, hash}

	Sort(moves, hash, 0, NewTables())
	require.Equal(t, hash, moves[0])
}

func TestSortRanksCapturesByMVVLVA(t *testing.T) {
	pawnTakesQueen := move.Make(12, 28, board.Pawn, board.Queen, board.Empty, move.Normal)
	queenTakesPawn := move.Make(3, 28, board.Queen, board.Pawn, board.Empty, move.Normal)
	quiet := move.Make(8, 16, board.Pawn, board.Empty, board.Empty, move.Normal)
	moves := []move.Move{quiet, queenTakesPawn, pawnTakesQueen}

	Sort(moves, move.NullMove, 0, NewTables())
	require.Equal(t, pawnTakesQueen, moves[0], "low-value attacker capturing a queen should rank first")
	require.Equal(t, quiet, moves[2], "the uncaptured quiet move should rank last")
}

func TestSortRanksKillersAboveQuietMoves(t *testing.T) {
	killer := move.Make(8, 16, board.Pawn, board.Empty, board.Empty, move.Normal)
	quiet := move.Make(1, 18, board.Knight, board.Empty, board.Empty, move.Normal)
	moves := []move.Move{quiet, killer}

	tables := NewTables()
	tables.RecordKiller(3, killer)
	Sort(moves, move.NullMove, 3, tables)
	require.Equal(t, killer, moves[0])
}

func TestSortRanksHistoryOverUnscoredQuietMove(t *testing.T) {
	warm := move.Make(8, 16, board.Pawn, board.Empty, board.Empty, move.Normal)
	cold := move.Make(1, 18, board.Knight, board.Empty, board.Empty, move.Normal)
	moves := []move.Move{cold, warm}

	tables := NewTables()
	tables.RecordHistory(warm, 4)
	Sort(moves, move.NullMove, 0, tables)
	require.Equal(t, warm, moves[0])
}

func TestRecordKillerKeepsTwoMostRecentDistinct(t *testing.T) {
	a := move.Make(0, 1, board.Pawn, board.Empty, board.Empty, move.Normal)
	b := move.Make(0, 2, board.Pawn, board.Empty, board.Empty, move.Normal)
	c := move.Make(0, 3, board.Pawn, board.Empty, board.Empty, move.Normal)

	tables := NewTables()
	tables.RecordKiller(0, a)
	tables.RecordKiller(0, b)
	require.Equal(t, b, tables.killers[0][0])
	require.Equal(t, a, tables.killers[0][1])

	tables.RecordKiller(0, c)
	require.Equal(t, c, tables.killers[0][0])
	require.Equal(t, b, tables.killers[0][1])
}

func TestRecordKillerIgnoresDuplicateAndCaptures(t *testing.T) {
	quiet := move.Make(0, 1, board.Pawn, board.Empty, board.Empty, move.Normal)
	capture := move.Make(0, 2, board.Pawn, board.Knight, board.Empty, move.Normal)

	tables := NewTables()
	tables.RecordKiller(0, quiet)
	tables.RecordKiller(0, quiet)
	require.Equal(t, quiet, tables.killers[0][0])
	require.Equal(t, move.NullMove, tables.killers[0][1])

	tables.RecordKiller(0, capture)
	require.NotEqual(t, capture, tables.killers[0][0])
	require.NotEqual(t, capture, tables.killers[0][1])
}

func TestClearResetsTables(t *testing.T) {
	m := move.Make(0, 1, board.Pawn, board.Empty, board.Empty, move.Normal)
	tables := NewTables()
	tables.RecordKiller(0, m)
	tables.RecordHistory(m, 3)

	tables.Clear()
	require.Equal(t, move.NullMove, tables.killers[0][0])
	require.Equal(t, 0, tables.history[m.From()][m.To()])
}

func TestSortByScoreHintDescendingStable(t *testing.T) {
	low := move.Make(0, 1, board.Pawn, board.Empty, board.Empty, move.Normal).WithScoreHint(2)
	high := move.Make(0, 2, board.Pawn, board.Empty, board.Empty, move.Normal).WithScoreHint(9)
	moves := []move.Move{low, high}

	SortByScoreHint(moves)
	require.Equal(t, high, moves[0])
	require.Equal(t, low, moves[1])
}
