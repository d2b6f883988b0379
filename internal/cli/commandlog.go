// Package cli wires the UCI command source (stdin or a command file)
// to the protocol engine, and implements the interactive
// human-vs-engine and engine-vs-engine game loops behind a small Player
// interface.
//
// Grounded on Blunder's interface/command-line.go RunCommandLineProtocol
// (read a FEN or "startpos", ask which side the human plays, alternate
// moves), extended here with a command-file/command-log contract Blunder
// does not implement at all.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"time"
)

// CommandLog appends every UCI command line read from the input source
// to a file, with a timestamp header written once per process.
type CommandLog struct {
	path        string
	file        *os.File
	wroteHeader bool
}

// NewCommandLog returns a CommandLog that will lazily create path on
// its first write.
func NewCommandLog(path string) *CommandLog {
	return &CommandLog{path: path}
}

// Append writes line to the log, opening the file and writing the
// timestamp header on the first call.
func (c *CommandLog) Append(line string) error {
	if c.file == nil {
		f, err := os.OpenFile(c.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			return fmt.Errorf("cli: opening command log %s: %w", c.path, err)
		}
		c.file = f
	}
	if !c.wroteHeader {
		fmt.Fprintf(c.file, "# session started %s\n", time.Now().Format(time.RFC3339))
		c.wroteHeader = true
	}
	_, err := fmt.Fprintln(c.file, line)
	return err
}

// Close closes the underlying file, if one was opened.
func (c *CommandLog) Close() error {
	if c.file == nil {
		return nil
	}
	return c.file.Close()
}

// LoggingReader wraps an input source so that every non-comment line it
// yields is also appended to a CommandLog, and comment lines (any line
// beginning with #) are filtered out before the caller ever sees them.
type LoggingReader struct {
	scanner *bufio.Scanner
	log     *CommandLog
}

// NewLoggingReader wraps r, logging every command line to log (which
// may be nil to disable logging).
func NewLoggingReader(r io.Reader, log *CommandLog) *LoggingReader {
	return &LoggingReader{scanner: bufio.NewScanner(r), log: log}
}

// ReadLine returns the next non-comment, non-blank command line, or
// io.EOF when the source is exhausted.
func (lr *LoggingReader) ReadLine() (string, error) {
	for lr.scanner.Scan() {
		line := strings.TrimSpace(lr.scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if lr.log != nil {
			if err := lr.log.Append(line); err != nil {
				return "", err
			}
		}
		return line, nil
	}
	if err := lr.scanner.Err(); err != nil {
		return "", err
	}
	return "", io.EOF
}

// Read implements io.Reader by draining ReadLine into p, letting
// internal/uci.Engine.Run consume this as an ordinary line source while
// every line still passes through the comment filter and command log.
func (lr *LoggingReader) Read(p []byte) (int, error) {
	line, err := lr.ReadLine()
	if err != nil {
		return 0, err
	}
	line += "\n"
	if len(p) < len(line) {
		return 0, fmt.Errorf("cli: command line longer than read buffer")
	}
	return copy(p, line), nil
}
