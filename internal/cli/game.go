package cli

import (
	"bufio"
	"fmt"
	"io"

	"github.com/jsigrist/meneldor/engine/board"
	"github.com/jsigrist/meneldor/engine/movegen"
	"github.com/jsigrist/meneldor/internal/pgn"
	"github.com/jsigrist/meneldor/internal/render"
)

// PlayGame alternates GetNextMove calls between white and black until
// one resigns, one plays an illegal move (which loses), a side has no
// legal moves, or the halfmove clock reaches 100. Human-vs-engine, human-vs-human and engine-vs-engine are all
// just different concrete Player pairs to this same loop.
func PlayGame(in *bufio.Reader, out io.Writer, white, black Player) *pgn.Game {
	b, _ := board.FromFEN(board.StartFEN)
	white.SetPosition(board.StartFEN)
	black.SetPosition(board.StartFEN)

	game := pgn.NewGame()
	game.White, game.Black = white.Name(), black.Name()

	for {
		render.Board(out, &b)

		if len(movegen.GenerateLegalMoves(&b)) == 0 {
			if b.InCheck(b.Side) {
				game.Result = winnerResult(b.Side.Other())
			} else {
				game.Result = "1/2-1/2"
			}
			break
		}
		if b.HalfmoveClock >= 100 {
			game.Result = "1/2-1/2"
			break
		}

		mover, other := white, black
		if b.Side == board.Black {
			mover, other = black, white
		}

		uciMove, ok := mover.GetNextMove(in, out)
		if !ok {
			game.Result = winnerResult(b.Side.Other())
			fmt.Fprintf(out, "%s resigns\n", mover.Name())
			break
		}

		applied := false
		for _, m := range movegen.GenerateLegalMoves(&b) {
			if m.String() == uciMove {
				b.DoMove(m)
				applied = true
				break
			}
		}
		if !applied {
			fmt.Fprintf(out, "rejecting illegal move %q from %s\n", uciMove, mover.Name())
			game.Result = winnerResult(b.Side.Other())
			break
		}

		game.Moves = append(game.Moves, uciMove)
		other.Notify(uciMove)
	}

	render.Board(out, &b)
	fmt.Fprintf(out, "result: %s\n", game.Result)
	return game
}

func winnerResult(winner board.Color) string {
	if winner == board.White {
		return "1-0"
	}
	return "0-1"
}
