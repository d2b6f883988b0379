// Package order ranks a move list for alpha-beta search: hash move
// first, then captures by MVV-LVA, then quiet promotions, then killer
// moves, then the remaining quiet moves by history score. History scores
// are not capped, so a quiet move with a large enough history score
// ranks above the killers, promotions or captures.
//
// Grounded on Blunder's core/search.go orderMoves/sortMoves pair:
// the same score-then-stable-sort shape, generalized from Blunder's
// from/to-indexed killer and history tables (searchHistory[64][64],
// killerMoves[depth][2]) to the same layout keyed by ply instead of
// remaining depth, since this engine's negamax counts ply from the
// root rather than depth remaining at the leaf.
package order

import (
	"sort"

	"github.com/jsigrist/meneldor/engine/board"
	"github.com/jsigrist/meneldor/engine/move"
)

const (
	captureBonus       = 1000
	firstKillerBonus   = 150
	secondKillerBonus  = 100
	maxPly             = 128
)

// Tables holds the killer-move and history heuristics accumulated
// during one search, indexed by ply and by from/to square respectively.
type Tables struct {
	killers [maxPly][2]move.Move
	history [64][64]int
}

// NewTables returns a zeroed heuristic table set, allocated once per
// search.
func NewTables() *Tables {
	return &Tables{}
}

// RecordKiller records m as causing a beta cutoff at ply, keeping the
// two most recent distinct killers per ply.
func (t *Tables) RecordKiller(ply int, m move.Move) {
	if ply < 0 || ply >= maxPly || m.IsCapture() {
		return
	}
	if t.killers[ply][0] == m {
		return
	}
	t.killers[ply][1] = t.killers[ply][0]
	t.killers[ply][0] = m
}

// RecordHistory bumps the from/to history score for a quiet move that
// raised alpha, weighted by the subtree depth searched.
func (t *Tables) RecordHistory(m move.Move, depth int) {
	t.history[m.From()][m.To()] += depth * depth
}

// Clear resets both heuristic tables, used on ucinewgame.
func (t *Tables) Clear() {
	*t = Tables{}
}

// SortByScoreHint stably orders moves by their compressed 4-bit
// score_hint field, descending.
func SortByScoreHint(moves []move.Move) {
	sort.SliceStable(moves, func(i, j int) bool {
		return moves[i].ScoreHint() > moves[j].ScoreHint()
	})
}

// Sort orders moves in place: hash move first (if present among moves),
// then by descending MVV-LVA/killer/history score.
func Sort(moves []move.Move, hashMove move.Move, ply int, t *Tables) {
	type scored struct {
		m move.Move
		s int
	}
	pairs := make([]scored, len(moves))
	for i, m := range moves {
		pairs[i] = scored{m: m, s: score(m, hashMove, ply, t)}
	}
	sort.SliceStable(pairs, func(i, j int) bool {
		return pairs[i].s > pairs[j].s
	})
	for i, p := range pairs {
		moves[i] = p.m
	}
}

func score(m, hashMove move.Move, ply int, t *Tables) int {
	if hashMove != move.NullMove && m == hashMove {
		return 1 << 30
	}
	if m.IsCapture() {
		// Most valuable victim first; among equal victims, least valuable
		// attacker first. Every capture scores above captureBonus.
		return captureBonus + 10*m.Victim().Value() - m.Piece().Value()/100
	}
	if promo := m.Promotion(); promo != board.Empty {
		return promo.Value()
	}
	if ply >= 0 && ply < maxPly {
		if t.killers[ply][0] == m {
			return firstKillerBonus
		}
		if t.killers[ply][1] == m {
			return secondKillerBonus
		}
	}
	return t.history[m.From()][m.To()]
}
