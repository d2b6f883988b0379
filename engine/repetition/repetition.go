// Package repetition implements threefold-repetition detection: a
// position-signature counter maintained on the public game board, plus
// a cheaper in-search Zobrist-hash check.
//
// Blunder has no repetition detector at all (it relies on the GUI or
// arbiter to adjudicate draws), so this package has no direct
// counterpart to adapt and is built fresh in the surrounding packages'
// idiom.
package repetition

import (
	"strings"

	"github.com/jsigrist/meneldor/engine/board"
)

// Detector tracks how many times each position signature has occurred
// in the game so far.
type Detector struct {
	counts map[string]int
}

// NewDetector returns an empty repetition detector.
func NewDetector() *Detector {
	return &Detector{counts: make(map[string]int)}
}

// signature strips the halfmove-clock and fullmove-number fields from a
// FEN string, leaving only the fields that determine position identity
// for repetition purposes (board, side to move, castling rights,
// en-passant square).
func signature(b *board.Board) string {
	fen := b.FEN()
	fields := strings.Fields(fen)
	if len(fields) < 4 {
		return fen
	}
	return strings.Join(fields[:4], " ")
}

// Push records the board's current position (called after a move is
// applied on the public game board) and reports whether this position
// has now occurred three or more times.
func (d *Detector) Push(b *board.Board) bool {
	sig := signature(b)
	d.counts[sig]++
	return d.counts[sig] >= 3
}

// Reset clears all recorded positions, used on ucinewgame or when
// starting a new game from a fresh position.
func (d *Detector) Reset() {
	d.counts = make(map[string]int)
}

// PathHashes is the cheaper in-search repetition check: a stack of
// Zobrist hashes accumulated along the current search path, cleared
// whenever the halfmove clock resets.
type PathHashes struct {
	hashes []uint64
}

// NewPathHashes returns an empty search-path hash stack.
func NewPathHashes() *PathHashes {
	return &PathHashes{hashes: make([]uint64, 0, 64)}
}

// Push appends hash to the path, or clears the path first if
// halfmoveClockReset is true.
func (p *PathHashes) Push(hash uint64, halfmoveClockReset bool) {
	if halfmoveClockReset {
		p.hashes = p.hashes[:0]
	}
	p.hashes = append(p.hashes, hash)
}

// Pop removes the most recently pushed hash, used when unwinding the
// search after trying a move.
func (p *PathHashes) Pop() {
	if len(p.hashes) > 0 {
		p.hashes = p.hashes[:len(p.hashes)-1]
	}
}

// Contains reports whether hash already appears earlier on the path,
// meaning playing a move that reaches it would repeat a position.
func (p *PathHashes) Contains(hash uint64) bool {
	for _, h := range p.hashes {
		if h == hash {
			return true
		}
	}
	return false
}
