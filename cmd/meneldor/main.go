// Command meneldor is the engine's entrypoint, generalizing Blunder's
// main.go DEBUG-flag dispatch into three real modes instead of a
// compile-time debug toggle: the "perft" and "play" subcommands, and UCI
// for any other invocation (bare, or with a command file as the first
// argument).
package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"

	"github.com/jsigrist/meneldor/engine/board"
	"github.com/jsigrist/meneldor/engine/movegen"
	"github.com/jsigrist/meneldor/internal/cli"
	"github.com/jsigrist/meneldor/internal/config"
	"github.com/jsigrist/meneldor/internal/logging"
	"github.com/jsigrist/meneldor/internal/uci"
)

const (
	exitOK       = 0
	exitIOError  = 1
	exitUsageErr = 2
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	if len(args) > 0 && args[0] == "perft" {
		return runPerft(args[1:])
	}
	if len(args) > 0 && args[0] == "play" {
		return runPlay(args[1:])
	}
	return runUCI(args)
}

func runUCI(args []string) int {
	tuning, err := config.LoadTuning("engine.toml")
	if err != nil {
		logging.Log().Errorf("loading engine.toml: %v", err)
		return exitIOError
	}

	var input *os.File
	if len(args) > 0 {
		f, err := os.Open(args[0])
		if err != nil {
			logging.Log().Errorf("opening command file %s: %v", args[0], err)
			return exitIOError
		}
		defer f.Close()
		input = f
	} else {
		input = os.Stdin
	}

	commandLog := cli.NewCommandLog("command_log.uci")
	defer commandLog.Close()
	reader := cli.NewLoggingReader(input, commandLog)

	engine := uci.New(tuning)
	if err := engine.Run(reader, os.Stdout); err != nil {
		logging.Log().Errorf("uci session ended with error: %v", err)
		return exitIOError
	}
	return exitOK
}

func runPerft(args []string) int {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "usage: meneldor perft <depth> [fen]")
		return exitUsageErr
	}
	depth, err := strconv.Atoi(args[0])
	if err != nil || depth < 0 {
		fmt.Fprintf(os.Stderr, "invalid depth %q\n", args[0])
		return exitUsageErr
	}

	fen := board.StartFEN
	if len(args) > 1 {
		fen = args[1]
	}
	b, err := board.FromFEN(fen)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid fen %q: %v\n", fen, err)
		return exitUsageErr
	}

	nodes := movegen.Perft(&b, depth)
	fmt.Printf("%d\n", nodes)
	return exitOK
}

func runPlay(args []string) int {
	depth := 4
	if len(args) > 0 {
		if d, err := strconv.Atoi(args[0]); err == nil {
			depth = d
		}
	}
	in := bufio.NewReader(os.Stdin)
	human := cli.NewInteractivePlayer("you")
	engine := cli.NewEnginePlayer("meneldor", depth)
	cli.PlayGame(in, os.Stdout, human, engine)
	return exitOK
}
