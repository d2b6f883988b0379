package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/jsigrist/meneldor/engine/board"
	"github.com/jsigrist/meneldor/engine/move"
	"github.com/jsigrist/meneldor/engine/movegen"
	"github.com/jsigrist/meneldor/engine/search"
	"github.com/jsigrist/meneldor/internal/subprocess"
)

// Player is one side of a game: an engine, an interactive human, or a
// subprocess engine speaking UCI over pipes. GetNextMove returns empty
// to signal resignation.
type Player interface {
	Name() string
	Notify(uciMove string)
	SetPosition(fen string) bool
	Reset()
	GetNextMove(in *bufio.Reader, out io.Writer) (string, bool)
}

// EnginePlayer is a Player backed by this engine's own search.
type EnginePlayer struct {
	name     string
	board    board.Board
	searcher *search.Searcher
	depth    int
}

// NewEnginePlayer returns an engine-backed Player searching to depth
// plies per move.
func NewEnginePlayer(name string, depth int) *EnginePlayer {
	b, _ := board.FromFEN(board.StartFEN)
	return &EnginePlayer{name: name, board: b, searcher: search.NewSearcher(), depth: depth}
}

func (p *EnginePlayer) Name() string { return p.name }

func (p *EnginePlayer) Notify(uciMove string) {
	for _, m := range movegen.GenerateLegalMoves(&p.board) {
		if m.String() == uciMove {
			p.board.DoMove(m)
			return
		}
	}
}

func (p *EnginePlayer) SetPosition(fen string) bool {
	b, err := board.FromFEN(fen)
	if err != nil {
		return false
	}
	p.board = b
	return true
}

func (p *EnginePlayer) Reset() {
	p.searcher.ClearSearchData()
	b, _ := board.FromFEN(board.StartFEN)
	p.board = b
}

func (p *EnginePlayer) GetNextMove(_ *bufio.Reader, _ io.Writer) (string, bool) {
	result := p.searcher.Search(context.Background(), &p.board, search.Params{Depth: p.depth})
	if result.BestMove == move.NullMove {
		return "", false
	}
	p.board.DoMove(result.BestMove)
	return result.BestMove.String(), true
}

// InteractivePlayer is a Player backed by a human typing moves at a
// terminal.
type InteractivePlayer struct {
	name  string
	board board.Board
}

// NewInteractivePlayer returns a human-backed Player.
func NewInteractivePlayer(name string) *InteractivePlayer {
	b, _ := board.FromFEN(board.StartFEN)
	return &InteractivePlayer{name: name, board: b}
}

func (p *InteractivePlayer) Name() string { return p.name }

func (p *InteractivePlayer) Notify(uciMove string) {
	for _, m := range movegen.GenerateLegalMoves(&p.board) {
		if m.String() == uciMove {
			p.board.DoMove(m)
			return
		}
	}
}

func (p *InteractivePlayer) SetPosition(fen string) bool {
	b, err := board.FromFEN(fen)
	if err != nil {
		return false
	}
	p.board = b
	return true
}

func (p *InteractivePlayer) Reset() {
	b, _ := board.FromFEN(board.StartFEN)
	p.board = b
}

func (p *InteractivePlayer) GetNextMove(in *bufio.Reader, out io.Writer) (string, bool) {
	for {
		fmt.Fprintf(out, "%s to move (uci notation, or \"resign\")> ", p.name)
		line, err := in.ReadString('\n')
		if err != nil {
			return "", false
		}
		line = strings.TrimSpace(line)
		if line == "resign" {
			return "", false
		}
		for _, m := range movegen.GenerateLegalMoves(&p.board) {
			if m.String() == line {
				p.board.DoMove(m)
				return line, true
			}
		}
		fmt.Fprintf(out, "illegal move %q, try again\n", line)
	}
}

// SubprocessPlayer adapts a subprocess.Engine into a Player.
type SubprocessPlayer struct {
	name   string
	engine *subprocess.Engine
	depth  int
	fen    string
}

// NewSubprocessPlayer launches binaryPath as a child UCI engine.
func NewSubprocessPlayer(name, binaryPath string, depth int) (*SubprocessPlayer, error) {
	engine, err := subprocess.Launch(binaryPath)
	if err != nil {
		return nil, err
	}
	return &SubprocessPlayer{name: name, engine: engine, depth: depth, fen: board.StartFEN}, nil
}

func (p *SubprocessPlayer) Name() string { return p.name }

func (p *SubprocessPlayer) Notify(uciMove string) {
	_ = p.engine.Send("position fen " + p.fen + " moves " + uciMove)
}

func (p *SubprocessPlayer) SetPosition(fen string) bool {
	p.fen = fen
	return p.engine.SetPosition(fen) == nil
}

func (p *SubprocessPlayer) Reset() {
	_ = p.engine.Send("ucinewgame")
}

func (p *SubprocessPlayer) GetNextMove(_ *bufio.Reader, _ io.Writer) (string, bool) {
	m, err := p.engine.BestMove(p.depth)
	if err != nil {
		return "", false
	}
	return m, true
}
