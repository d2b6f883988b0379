// Package uci implements a subset of the Universal Chess Interface
// protocol on top of engine/search, engine/board and engine/movegen.
//
// Grounded on Blunder's interface/uci.go RunUCIProtocol command loop
// (the same uci/isready/position/go/stop/quit dispatch), but the "go"
// handler is launched on an errgroup.Group instead of a bare `go`
// statement (golang.org/x/sync/errgroup, the same package
// frankkopp-FrankyGo depends on) so a panic in the search goroutine
// surfaces instead of silently killing the process, and "stop" can be
// observed to have actually taken effect by joining the group before
// replying to the next command that needs the engine idle.
package uci

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jsigrist/meneldor/engine/board"
	"github.com/jsigrist/meneldor/engine/move"
	"github.com/jsigrist/meneldor/engine/movegen"
	"github.com/jsigrist/meneldor/engine/search"
	"github.com/jsigrist/meneldor/internal/config"
	"github.com/jsigrist/meneldor/internal/logging"
)

const (
	EngineName   = "meneldor 0.1"
	EngineAuthor = "meneldor contributors"
)

// Engine holds one UCI session's state: the board under play, the
// searcher (and its transposition table, which persists across moves
// within a game) and the in-flight search goroutine, if any.
type Engine struct {
	board    board.Board
	searcher *search.Searcher
	tuning   config.Tuning

	mu     sync.Mutex
	cancel context.CancelFunc
	group  *errgroup.Group
}

// New returns an idle Engine seeded with the starting position.
func New(tuning config.Tuning) *Engine {
	b, _ := board.FromFEN(board.StartFEN)
	return &Engine{
		board: b,
		searcher: search.NewSearcherWithTuning(
			tuning.TTSizeMiB*1024*1024,
			tuning.ContemptCP,
			tuning.MaxSearchDepth,
			tuning.QuiescenceDepth,
		),
		tuning: tuning,
	}
}

// Run reads UCI commands from r, one per line, and writes protocol
// responses to w until "quit" or EOF.
func (e *Engine) Run(r io.Reader, w io.Writer) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if quit := e.dispatch(strings.ToLower(line), line, w); quit {
			return nil
		}
	}
	return scanner.Err()
}

func (e *Engine) dispatch(lower, raw string, w io.Writer) (quit bool) {
	switch {
	case lower == "uci":
		fmt.Fprintf(w, "id name %s\n", EngineName)
		fmt.Fprintf(w, "id author %s\n", EngineAuthor)
		fmt.Fprintln(w, "uciok")
	case lower == "isready":
		e.awaitSearch()
		fmt.Fprintln(w, "readyok")
	case strings.HasPrefix(lower, "setoption"):
		// No UCI-settable options beyond engine.toml tunables are defined.
	case strings.HasPrefix(lower, "ucinewgame"):
		e.awaitSearch()
		e.searcher.ClearSearchData()
		b, _ := board.FromFEN(board.StartFEN)
		e.board = b
	case strings.HasPrefix(lower, "position"):
		e.awaitSearch()
		e.handlePosition(raw)
	case strings.HasPrefix(lower, "go"):
		e.handleGo(raw, w)
	case lower == "stop":
		e.stopSearch()
	case lower == "quit":
		e.stopSearch()
		quit = true
	default:
		fmt.Fprintf(w, "info string unknown command %q\n", raw)
	}
	return quit
}

func (e *Engine) handlePosition(raw string) {
	args := strings.TrimPrefix(raw, "position ")
	args = strings.TrimPrefix(args, "Position ")

	var fen string
	var rest string
	switch {
	case strings.HasPrefix(args, "startpos"):
		fen = board.StartFEN
		rest = strings.TrimSpace(strings.TrimPrefix(args, "startpos"))
	case strings.HasPrefix(args, "fen"):
		fields := strings.Fields(strings.TrimPrefix(args, "fen"))
		if len(fields) < 6 {
			return
		}
		fen = strings.Join(fields[:6], " ")
		rest = strings.Join(fields[6:], " ")
	default:
		return
	}

	b, err := board.FromFEN(fen)
	if err != nil {
		return
	}
	e.board = b

	rest = strings.TrimSpace(strings.TrimPrefix(rest, "moves"))
	for _, tok := range strings.Fields(rest) {
		m, ok := parseUCIMove(&e.board, tok)
		if !ok {
			break
		}
		e.board.DoMove(m)
	}
}

// parseUCIMove resolves a 4-or-5 character UCI move string against the
// board's legal moves (rather than reconstructing the packed Move
// fields by hand), guaranteeing the returned move carries the correct
// Kind/victim/promotion tags for DoMove.
func parseUCIMove(b *board.Board, tok string) (move.Move, bool) {
	for _, m := range movegen.GenerateLegalMoves(b) {
		if m.String() == tok {
			return m, true
		}
	}
	return move.NullMove, false
}

func (e *Engine) handleGo(raw string, w io.Writer) {
	params := parseGoParams(raw, e.board.Side)

	legalMoves := movegen.GenerateLegalMoves(&e.board)
	if len(legalMoves) == 0 {
		fmt.Fprintln(w, "info string no legal moves")
		fmt.Fprintln(w, "bestmove 0000")
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	group, ctx := errgroup.WithContext(ctx)

	e.mu.Lock()
	e.cancel = cancel
	e.group = group
	e.mu.Unlock()

	boardSnapshot := e.board.Clone()
	e.searcher.OnInfo(func(info search.InfoLine) {
		emitInfo(w, info)
	})

	group.Go(func() (err error) {
		defer cancel()
		defer func() {
			if r := recover(); r != nil {
				err = fmt.Errorf("search panicked: %v", r)
			}
		}()
		result := e.searcher.Search(ctx, &boardSnapshot, params)
		fmt.Fprintf(w, "bestmove %s\n", result.BestMove)
		return nil
	})
}

func emitInfo(w io.Writer, info search.InfoLine) {
	ms := info.Elapsed.Milliseconds()
	nps := uint64(0)
	if ms > 0 {
		nps = info.Nodes * 1000 / uint64(ms)
	}

	fmt.Fprintf(w, "info depth %d seldepth %d", info.Depth, info.SelDepth)
	if mateIn, ok := search.MateDistance(info.Score); ok {
		fmt.Fprintf(w, " score mate %d", mateIn)
	} else {
		fmt.Fprintf(w, " score cp %d", info.Score)
	}
	fmt.Fprintf(w, " nodes %d nps %d time %d pv", info.Nodes, nps, ms)
	for _, m := range info.PV {
		fmt.Fprintf(w, " %s", m)
	}
	fmt.Fprintln(w)
}

func (e *Engine) stopSearch() {
	e.mu.Lock()
	cancel := e.cancel
	e.mu.Unlock()
	if cancel != nil {
		cancel()
	}
	e.awaitSearch()
}

func (e *Engine) awaitSearch() {
	e.mu.Lock()
	group := e.group
	e.group = nil
	e.mu.Unlock()
	if group == nil {
		return
	}
	if err := group.Wait(); err != nil {
		logging.Log().Errorf("search goroutine returned error: %v", err)
	}
}

func parseGoParams(raw string, side board.Color) search.Params {
	fields := strings.Fields(strings.TrimPrefix(raw, "go"))
	var p search.Params
	for i := 0; i < len(fields); i++ {
		switch fields[i] {
		case "depth":
			i++
			p.Depth = atoiOr(fields, i, 0)
		case "movetime":
			i++
			p.MoveTime = time.Duration(atoiOr(fields, i, 0)) * time.Millisecond
		case "wtime":
			i++
			wtime := time.Duration(atoiOr(fields, i, 0)) * time.Millisecond
			if side == board.White {
				p.WTime = wtime
			} else {
				p.BTime = wtime
			}
		case "btime":
			i++
			btime := time.Duration(atoiOr(fields, i, 0)) * time.Millisecond
			if side == board.Black {
				p.WTime = btime
			} else {
				p.BTime = btime
			}
		case "winc":
			i++
			winc := time.Duration(atoiOr(fields, i, 0)) * time.Millisecond
			if side == board.White {
				p.WInc = winc
			} else {
				p.BInc = winc
			}
		case "binc":
			i++
			binc := time.Duration(atoiOr(fields, i, 0)) * time.Millisecond
			if side == board.Black {
				p.WInc = binc
			} else {
				p.BInc = binc
			}
		case "movestogo":
			i++
			p.MovesToGo = atoiOr(fields, i, 0)
		case "infinite":
			p.Infinite = true
		}
	}
	// Params.WTime/WInc always mean "side to move's clock/increment" and
	// BTime means "opponent's clock" here, independent of actual color;
	// the branches above fold UCI's absolute wtime/btime into that frame.
	return p
}

func atoiOr(fields []string, i, fallback int) int {
	if i < 0 || i >= len(fields) {
		return fallback
	}
	n, err := strconv.Atoi(fields[i])
	if err != nil {
		return fallback
	}
	return n
}
