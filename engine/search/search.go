// Package search implements iterative-deepening negamax with
// alpha-beta pruning, principal variation search, null-move pruning, a
// transposition table and quiescence search.
//
// Grounded on Blunder's core/search.go Searcher (iterative deepening
// loop shape, StopSearch/NodesExplored bookkeeping, the negamax/quiesce
// split) generalized to add PVS and null-move pruning, which Blunder
// does not implement, and to use engine/tt's two-slot table instead of
// Searcher's single fixed-size array.
package search

import (
	"context"
	"time"

	"github.com/jsigrist/meneldor/engine/board"
	"github.com/jsigrist/meneldor/engine/eval"
	"github.com/jsigrist/meneldor/engine/move"
	"github.com/jsigrist/meneldor/engine/movegen"
	"github.com/jsigrist/meneldor/engine/order"
	"github.com/jsigrist/meneldor/engine/repetition"
	"github.com/jsigrist/meneldor/engine/tt"
)

// DefaultContemptScore biases the engine slightly against repeating or
// stalemating a position, used when no engine.toml overrides it.
const DefaultContemptScore = -10

// Infinity is the search's notion of +/- infinity, scaled so that
// Infinity - maxPly never overflows an int and still dwarfs any real
// material score.
const Infinity = 1_000_000_000

// DefaultMaxDepth bounds iterative deepening when no explicit depth is
// given and no engine.toml overrides it.
const DefaultMaxDepth = 64

// DefaultQuiescenceDepth caps how many plies quiesce will extend past
// the main search horizon when no engine.toml overrides it.
const DefaultQuiescenceDepth = 32

const nullMoveReduction = 2

// Params mirrors the UCI "go" parameters relevant to time budget
// computation.
type Params struct {
	Depth      int
	MoveTime   time.Duration
	WTime      time.Duration
	BTime      time.Duration
	WInc       time.Duration
	BInc       time.Duration
	MovesToGo  int
	Infinite   bool
}

// InfoLine is one emitted search-progress record, corresponding to the
// UCI "info" command.
type InfoLine struct {
	Depth    int
	SelDepth int
	Score    int
	Nodes    uint64
	Elapsed  time.Duration
	PV       []move.Move
}

// MateDistance returns the number of full moves to mate implied by
// score, and true if score actually represents a forced mate rather
// than a material evaluation. A negative distance means the side to
// move is being mated.
func MateDistance(score int) (int, bool) {
	if score > Infinity-1000 {
		plies := Infinity - score
		return (plies + 1) / 2, true
	}
	if score < -Infinity+1000 {
		plies := Infinity + score
		return -(plies + 1) / 2, true
	}
	return 0, false
}

// Result is returned from a completed (or cooperatively stopped) Search
// call.
type Result struct {
	BestMove move.Move
	Score    int
	Depth    int
}

// Searcher holds all per-engine-instance state that must survive across
// moves within one game: the transposition table, move-ordering
// heuristics and repetition path hashes. One Searcher serves one UCI
// session; a single search executes on one thread.
type Searcher struct {
	TT      *tt.Table
	orderer *order.Tables
	path    *repetition.PathHashes

	contemptScore   int
	maxDepth        int
	quiesceMaxDepth int

	nodes        uint64
	selDepth     int
	startTime    time.Time
	stopRequested func() bool
	deadline     time.Time
	timeMode     bool
	timedOut     bool

	onInfo func(InfoLine)
}

// NewSearcher allocates a Searcher with a default-sized (128 MiB)
// transposition table and default tuning.
func NewSearcher() *Searcher {
	return NewSearcherWithTTSize(tt.DefaultSizeBytes)
}

// NewSearcherWithTTSize allocates a Searcher whose transposition table
// is sized to ttSizeBytes, with default tuning otherwise. Used by
// callers that only care about overriding the TT size.
func NewSearcherWithTTSize(ttSizeBytes int) *Searcher {
	return NewSearcherWithTuning(ttSizeBytes, DefaultContemptScore, DefaultMaxDepth, DefaultQuiescenceDepth)
}

// NewSearcherWithTuning allocates a Searcher whose TT size, contempt
// score, iterative-deepening depth cap and quiescence extension depth
// all come from an engine.toml-sourced configuration rather than the
// package defaults.
func NewSearcherWithTuning(ttSizeBytes, contemptScore, maxDepth, quiesceMaxDepth int) *Searcher {
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	if quiesceMaxDepth <= 0 {
		quiesceMaxDepth = DefaultQuiescenceDepth
	}
	return &Searcher{
		TT:              tt.New(ttSizeBytes),
		orderer:         order.NewTables(),
		path:            repetition.NewPathHashes(),
		contemptScore:   contemptScore,
		maxDepth:        maxDepth,
		quiesceMaxDepth: quiesceMaxDepth,
	}
}

// ClearSearchData zeroes the transposition table and move-ordering
// heuristics, used on the UCI "ucinewgame" command.
func (s *Searcher) ClearSearchData() {
	s.TT.Clear()
	s.orderer.Clear()
}

// OnInfo registers a callback invoked after each completed
// iterative-deepening iteration, used by the UCI adapter to emit "info"
// lines without the search package depending on any I/O sink directly,
// so the search never stalls on logging.
func (s *Searcher) OnInfo(fn func(InfoLine)) {
	s.onInfo = fn
}

func computeBudget(p Params) (time.Duration, bool) {
	switch {
	case p.Infinite:
		return 0, false
	case p.MoveTime > 0:
		return time.Duration(float64(p.MoveTime) * 0.95), true
	case p.WTime > 0 || p.BTime > 0:
		// The caller is expected to have already picked the side-to-move's
		// clock into WTime/our and the opponent's into BTime/their via the
		// Params it constructs; see internal/uci for the side selection.
		ourTime, theirTime := p.WTime, p.BTime
		movesToGo := p.MovesToGo
		if movesToGo <= 0 {
			ratio := 1.0
			if ourTime > 0 {
				ratio = float64(theirTime) / float64(ourTime)
			}
			if ratio < 1 {
				ratio = 1
			}
			if ratio > 2 {
				ratio = 2
			}
			movesToGo = int(20 * ratio)
			if movesToGo < 1 {
				movesToGo = 1
			}
		}
		budget := time.Duration(float64(ourTime)*0.95/float64(movesToGo)) + p.WInc
		return budget, true
	default:
		return 0, false
	}
}

func (s *Searcher) hasMoreTime() bool {
	if s.stopRequested != nil && s.stopRequested() {
		return false
	}
	if !s.timeMode {
		return true
	}
	return time.Now().Before(s.deadline)
}

// Search runs iterative deepening from b's current position up to
// params.Depth (or the Searcher's configured max depth) plies,
// honoring the time budget and the stop callback.
func (s *Searcher) Search(ctx context.Context, b *board.Board, params Params) Result {
	s.nodes = 0
	s.timedOut = false
	s.startTime = time.Now()
	budget, timeMode := computeBudget(params)
	s.timeMode = timeMode
	if timeMode {
		s.deadline = time.Now().Add(budget)
	}
	s.stopRequested = func() bool {
		select {
		case <-ctx.Done():
			return true
		default:
			return false
		}
	}

	legalMoves := movegen.GenerateLegalMoves(b)
	if len(legalMoves) == 0 {
		return Result{BestMove: move.NullMove}
	}

	maxDepth := params.Depth
	if maxDepth <= 0 || maxDepth > s.maxDepth {
		maxDepth = s.maxDepth
	}

	best := Result{BestMove: legalMoves[0], Score: -Infinity, Depth: 1}

	for depth := 1; depth <= maxDepth; depth++ {
		if !s.hasMoreTime() {
			break
		}
		s.timedOut = false
		s.selDepth = depth
		candidate, candidateMoves := s.searchRoot(b, depth, legalMoves)
		if s.timedOut {
			break
		}
		best = candidate
		legalMoves = candidateMoves
		if s.onInfo != nil {
			s.onInfo(InfoLine{
				Depth:    depth,
				SelDepth: s.selDepth,
				Score:    best.Score,
				Nodes:    s.nodes,
				Elapsed:  time.Since(s.startTime),
				PV:       s.reconstructPV(b, best.BestMove, depth),
			})
		}
	}
	return best
}

func scoreHint(score int) int {
	hint := score/200 + 7
	if hint < 0 {
		hint = 0
	}
	if hint > 15 {
		hint = 15
	}
	return hint
}

// searchRoot is the full-window driver for one iterative-deepening
// iteration. It returns the best result found and the move list
// re-annotated with fresh score hints for the next iteration's
// ordering.
func (s *Searcher) searchRoot(b *board.Board, depth int, moves []move.Move) (Result, []move.Move) {
	if depth >= 3 {
		order.SortByScoreHint(moves)
	} else {
		order.Sort(moves, move.NullMove, 0, s.orderer)
	}

	s.path.Push(b.Hash, b.HalfmoveClock == 0)
	defer s.path.Pop()

	best := Result{BestMove: moves[0], Score: -Infinity, Depth: depth}
	fullWindow := true

	for i, m := range moves {
		child := b.Clone()
		child.DoMove(m)

		var score int
		if fullWindow {
			score = -s.negamax(&child, -Infinity, Infinity, depth-1, depth, false)
		} else {
			score = -s.negamax(&child, -best.Score-1, -best.Score, depth-1, depth, false)
			if score > best.Score && score < Infinity {
				score = -s.negamax(&child, -Infinity, Infinity, depth-1, depth, false)
			}
		}
		fullWindow = false

		if s.timedOut {
			return best, moves
		}

		moves[i] = m.WithScoreHint(scoreHint(score))
		if score > best.Score {
			best.Score = score
			best.BestMove = m
		}
	}
	return best, moves
}

// negamax is the core alpha-beta recursion. ply counts plies from the
// root (used for killer-move indexing and mate-distance scoring);
// rootDepth is the iterative-deepening depth this call tree was
// launched with, used to bias mate scores toward the fastest mate.
func (s *Searcher) negamax(b *board.Board, alpha, beta, depthRemaining, rootDepth int, previousWasNull bool) int {
	s.nodes++
	if !s.hasMoreTime() {
		s.timedOut = true
		return 0
	}
	if depthRemaining <= 0 {
		return s.quiesce(b, alpha, beta, rootDepth, 0)
	}

	ply := rootDepth - depthRemaining
	if b.HalfmoveClock >= 100 {
		return s.contemptScore
	}
	if s.path.Contains(b.Hash) {
		return s.contemptScore
	}
	s.path.Push(b.Hash, b.HalfmoveClock == 0 && !previousWasNull)
	defer s.path.Pop()

	var hashMove move.Move = move.NullMove
	if entry, ok := s.TT.Get(b.Hash); ok {
		hashMove = entry.BestMove
		if entry.Depth >= depthRemaining {
			switch entry.Kind {
			case tt.Exact:
				return entry.Evaluation
			case tt.Alpha:
				if entry.Evaluation < beta {
					beta = entry.Evaluation
				}
			case tt.Beta:
				if entry.Evaluation > alpha {
					alpha = entry.Evaluation
				}
			}
			if alpha >= beta {
				return entry.Evaluation
			}
		}
	}

	isPV := beta-alpha > 1
	if depthRemaining >= 4 && !isPV && !previousWasNull && !b.InCheck(b.Side) && eval.Evaluate(b) >= beta {
		child := b.Clone()
		child.DoMove(move.NullMove)
		score := -s.negamax(&child, -beta, -beta+1, depthRemaining-1-nullMoveReduction, rootDepth, true)
		if !s.timedOut && score >= beta {
			return beta
		}
	}

	pseudo := movegen.GeneratePseudoLegalMoves(b)
	order.Sort(pseudo, hashMove, ply, s.orderer)

	hasAny := false
	evalKind := tt.Alpha
	bestMove := move.NullMove
	fullWindow := true
	mover := b.Side

	for _, m := range pseudo {
		child := b.Clone()
		child.DoMove(m)
		if movegen.IsSquareAttacked(&child, child.KingSquare(mover), mover.Other()) {
			continue
		}
		hasAny = true

		var score int
		if fullWindow {
			score = -s.negamax(&child, -beta, -alpha, depthRemaining-1, rootDepth, false)
		} else {
			score = -s.negamax(&child, -alpha-1, -alpha, depthRemaining-1, rootDepth, false)
			if alpha < score && score < beta {
				score = -s.negamax(&child, -beta, -alpha, depthRemaining-1, rootDepth, false)
			}
		}
		fullWindow = false

		if s.timedOut {
			return 0
		}

		if score >= beta {
			s.TT.Insert(b.Hash, depthRemaining, score, m, tt.Beta)
			s.orderer.RecordKiller(ply, m)
			s.orderer.RecordHistory(m, depthRemaining)
			return beta
		}
		if score > alpha {
			alpha = score
			bestMove = m
			evalKind = tt.Exact
		}
	}

	if !hasAny {
		if b.InCheck(mover) {
			return -Infinity + ply
		}
		return s.contemptScore
	}

	s.TT.Insert(b.Hash, depthRemaining, alpha, bestMove, evalKind)
	return alpha
}

// quiesce extends the search along capture sequences until the
// position is quiet or quiesceDepth reaches the configured cap,
// avoiding the horizon effect without letting a long forcing line run
// away unbounded.
func (s *Searcher) quiesce(b *board.Board, alpha, beta, rootDepth, quiesceDepth int) int {
	s.nodes++
	if !s.hasMoreTime() {
		s.timedOut = true
		return 0
	}
	if ply := rootDepth + quiesceDepth; ply > s.selDepth {
		s.selDepth = ply
	}

	standPat := eval.Evaluate(b)
	if standPat >= beta {
		return beta
	}
	if standPat > alpha {
		alpha = standPat
	}
	if quiesceDepth >= s.quiesceMaxDepth {
		return alpha
	}

	captures := movegen.GeneratePseudoLegalAttackMoves(b)
	order.Sort(captures, move.NullMove, -1, s.orderer)
	mover := b.Side

	for _, m := range captures {
		child := b.Clone()
		child.DoMove(m)
		if movegen.IsSquareAttacked(&child, child.KingSquare(mover), mover.Other()) {
			continue
		}
		score := -s.quiesce(&child, -beta, -alpha, rootDepth, quiesceDepth+1)
		if s.timedOut {
			return 0
		}
		if score >= beta {
			return beta
		}
		if score > alpha {
			alpha = score
		}
	}
	return alpha
}

// reconstructPV walks the transposition table forward from b following
// bestMove.
func (s *Searcher) reconstructPV(b *board.Board, bestMove move.Move, depth int) []move.Move {
	pv := make([]move.Move, 0, depth)
	cur := b.Clone()
	m := bestMove
	for i := 0; i < depth && m != move.NullMove; i++ {
		pv = append(pv, m)
		cur.DoMove(m)
		entry, ok := s.TT.Get(cur.Hash)
		if !ok || entry.Kind != tt.Exact {
			break
		}
		m = entry.BestMove
	}
	return pv
}
