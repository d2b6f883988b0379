// Package pgn parses and emits a minimal single-game PGN: the seven
// required tag pairs plus movetext, in UCI long-algebraic form rather
// than short algebraic notation (so a round trip through engine/move
// needs no disambiguation logic).
//
// A chess game naturally wants a move-list record across
// player-vs-player, player-vs-computer and computer-vs-computer modes.
// This package gives the CLI (internal/cli) a concrete, self-contained
// way to save and replay a game.
package pgn

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/jsigrist/meneldor/engine/board"
)

// Game holds the seven-tag roster plus a flat move list.
type Game struct {
	Event, Site, Date, Round, White, Black, Result string
	Moves                                          []string // UCI long-algebraic
}

// NewGame returns a Game with the "unknown" placeholders PGN convention
// uses for missing tag values.
func NewGame() *Game {
	return &Game{
		Event: "?", Site: "?", Date: "????.??.??", Round: "?",
		White: "?", Black: "?", Result: "*",
	}
}

// Write emits g as PGN text.
func (g *Game) Write(w io.Writer) error {
	tags := []struct{ name, value string }{
		{"Event", g.Event}, {"Site", g.Site}, {"Date", g.Date},
		{"Round", g.Round}, {"White", g.White}, {"Black", g.Black},
		{"Result", g.Result},
	}
	for _, t := range tags {
		if _, err := fmt.Fprintf(w, "[%s \"%s\"]\n", t.name, t.value); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(w); err != nil {
		return err
	}

	var sb strings.Builder
	for i, m := range g.Moves {
		if i%2 == 0 {
			fmt.Fprintf(&sb, "%d. ", i/2+1)
		}
		sb.WriteString(m)
		sb.WriteByte(' ')
	}
	sb.WriteString(g.Result)
	_, err := fmt.Fprintln(w, sb.String())
	return err
}

// Read parses PGN text into a Game. Movetext move numbers and the
// trailing result token are stripped; every remaining token must be a
// syntactically valid UCI move: two squares plus an optional fifth
// character that board.PieceFromFENByte accepts. This is a structural
// parse, not a legality check — callers replay the moves through
// engine/movegen to validate them.
func Read(r io.Reader) (*Game, error) {
	g := NewGame()
	scanner := bufio.NewScanner(r)
	var movetext strings.Builder

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "[") {
			if err := parseTag(g, line); err != nil {
				return nil, err
			}
			continue
		}
		movetext.WriteString(line)
		movetext.WriteByte(' ')
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("pgn: reading input: %w", err)
	}

	for _, tok := range strings.Fields(movetext.String()) {
		if isMoveNumber(tok) || isResult(tok) {
			continue
		}
		if !looksLikeUCIMove(tok) {
			return nil, fmt.Errorf("pgn: malformed move token %q", tok)
		}
		g.Moves = append(g.Moves, tok)
	}
	return g, nil
}

func parseTag(g *Game, line string) error {
	line = strings.TrimSuffix(strings.TrimPrefix(line, "["), "]")
	name, rest, ok := strings.Cut(line, " ")
	if !ok {
		return fmt.Errorf("pgn: malformed tag %q", line)
	}
	value := strings.Trim(rest, `"`)
	switch name {
	case "Event":
		g.Event = value
	case "Site":
		g.Site = value
	case "Date":
		g.Date = value
	case "Round":
		g.Round = value
	case "White":
		g.White = value
	case "Black":
		g.Black = value
	case "Result":
		g.Result = value
	}
	return nil
}

func isMoveNumber(tok string) bool {
	return strings.HasSuffix(tok, ".")
}

func isResult(tok string) bool {
	switch tok {
	case "1-0", "0-1", "1/2-1/2", "*":
		return true
	}
	return false
}

func looksLikeUCIMove(tok string) bool {
	if len(tok) < 4 || len(tok) > 5 {
		return false
	}
	from, err1 := squareOf(tok[0], tok[1])
	to, err2 := squareOf(tok[2], tok[3])
	if err1 != nil || err2 != nil {
		return false
	}
	_ = from
	_ = to
	if len(tok) == 5 {
		_, _, ok := board.PieceFromFENByte(tok[4])
		return ok
	}
	return true
}

func squareOf(file, rank byte) (int, error) {
	if file < 'a' || file > 'h' || rank < '1' || rank > '8' {
		return 0, fmt.Errorf("pgn: bad square %c%c", file, rank)
	}
	return int(rank-'1')*8 + int(file-'a'), nil
}
