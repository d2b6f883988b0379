// Package subprocess launches another UCI-speaking engine binary and
// exchanges UCI protocol lines with it over its stdin/stdout pipes,
// using os/exec.Cmd's StdinPipe/StdoutPipe rather than manual
// fork/dup2/pipe plumbing. Used only by the CLI's engine-vs-engine
// mode, never by the core engine.
package subprocess

import (
	"bufio"
	"fmt"
	"io"
	"os/exec"
	"strings"
	"time"
)

// Engine is a running child UCI engine process.
type Engine struct {
	cmd    *exec.Cmd
	stdin  io.WriteCloser
	stdout *bufio.Scanner
}

// Launch starts the engine binary at path and performs the uci/isready
// handshake, mirroring Uci_engine_player::init_engine_.
func Launch(path string) (*Engine, error) {
	cmd := exec.Command(path)
	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, fmt.Errorf("subprocess: stdin pipe for %s: %w", path, err)
	}
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("subprocess: stdout pipe for %s: %w", path, err)
	}
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("subprocess: launching %s: %w", path, err)
	}

	e := &Engine{cmd: cmd, stdin: stdin, stdout: bufio.NewScanner(stdout)}
	if err := e.Send("uci"); err != nil {
		return nil, err
	}
	if err := e.waitFor("uciok", 5*time.Second); err != nil {
		return nil, err
	}
	if err := e.Send("isready"); err != nil {
		return nil, err
	}
	if err := e.waitFor("readyok", 5*time.Second); err != nil {
		return nil, err
	}
	return e, nil
}

// Send writes one UCI command line to the child's stdin.
func (e *Engine) Send(line string) error {
	_, err := fmt.Fprintf(e.stdin, "%s\n", line)
	return err
}

// SetPosition sends a "position fen ..." command.
func (e *Engine) SetPosition(fen string) error {
	return e.Send("position fen " + fen)
}

// BestMove sends "go depth N" and scans stdout for the engine's
// "bestmove" reply, returning the move in UCI long-algebraic form.
func (e *Engine) BestMove(depth int) (string, error) {
	if err := e.Send(fmt.Sprintf("go depth %d", depth)); err != nil {
		return "", err
	}
	for e.stdout.Scan() {
		line := e.stdout.Text()
		if strings.HasPrefix(line, "bestmove") {
			fields := strings.Fields(line)
			if len(fields) < 2 {
				return "", fmt.Errorf("subprocess: malformed bestmove line %q", line)
			}
			return fields[1], nil
		}
	}
	return "", fmt.Errorf("subprocess: engine closed stdout before returning bestmove")
}

func (e *Engine) waitFor(token string, timeout time.Duration) error {
	done := make(chan error, 1)
	go func() {
		for e.stdout.Scan() {
			if strings.Contains(e.stdout.Text(), token) {
				done <- nil
				return
			}
		}
		done <- fmt.Errorf("subprocess: engine closed stdout waiting for %q", token)
	}()
	select {
	case err := <-done:
		return err
	case <-time.After(timeout):
		return fmt.Errorf("subprocess: timed out waiting for %q", token)
	}
}

// Close terminates the child engine process cleanly.
func (e *Engine) Close() error {
	_ = e.Send("quit")
	_ = e.stdin.Close()
	return e.cmd.Wait()
}
