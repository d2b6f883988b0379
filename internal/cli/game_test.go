package cli

import (
	"bufio"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jsigrist/meneldor/engine/board"
)

// scriptedPlayer replays a fixed move sequence, resigning once exhausted.
type scriptedPlayer struct {
	name     string
	moves    []string
	next     int
	notified []string
}

func newScriptedPlayer(name string, moves ...string) *scriptedPlayer {
	return &scriptedPlayer{name: name, moves: moves}
}

func (p *scriptedPlayer) Name() string                { return p.name }
func (p *scriptedPlayer) Notify(uciMove string)        { p.notified = append(p.notified, uciMove) }
func (p *scriptedPlayer) SetPosition(fen string) bool  { return true }
func (p *scriptedPlayer) Reset()                       { p.next = 0 }

func (p *scriptedPlayer) GetNextMove(_ *bufio.Reader, _ io.Writer) (string, bool) {
	if p.next >= len(p.moves) {
		return "", false
	}
	m := p.moves[p.next]
	p.next++
	return m, true
}

func TestPlayGameDetectsFoolsMate(t *testing.T) {
	white := newScriptedPlayer("white-bot", "f2f3", "g2g4")
	black := newScriptedPlayer("black-bot", "e7e5", "d8h4")

	var out strings.Builder
	in := bufio.NewReader(strings.NewReader(""))
	game := PlayGame(in, &out, white, black)

	require.Equal(t, "0-1", game.Result)
	require.Equal(t, []string{"f2f3", "e7e5", "g2g4", "d8h4"}, game.Moves)
	require.Equal(t, "white-bot", game.White)
	require.Equal(t, "black-bot", game.Black)
}

func TestPlayGameResignationAwardsOpponent(t *testing.T) {
	white := newScriptedPlayer("resigner") // no scripted moves: resigns immediately
	black := newScriptedPlayer("opponent")

	var out strings.Builder
	in := bufio.NewReader(strings.NewReader(""))
	game := PlayGame(in, &out, white, black)

	require.Equal(t, "0-1", game.Result)
	require.Contains(t, out.String(), "resigner resigns")
}

func TestPlayGameRejectsIllegalMove(t *testing.T) {
	white := newScriptedPlayer("cheater", "e2e5") // not a legal pawn move
	black := newScriptedPlayer("honest")

	var out strings.Builder
	in := bufio.NewReader(strings.NewReader(""))
	game := PlayGame(in, &out, white, black)

	require.Equal(t, "0-1", game.Result)
	require.Contains(t, out.String(), "rejecting illegal move")
}

func TestWinnerResult(t *testing.T) {
	require.Equal(t, "1-0", winnerResult(board.White))
	require.Equal(t, "0-1", winnerResult(board.Black))
}
