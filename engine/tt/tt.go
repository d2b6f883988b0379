// Package tt implements a two-slot-per-bucket "TwoDeep" transposition
// table. Grounded on Blunder's core/search.go TTEntry struct and
// single-slot replace-always table, generalized to a two-slot
// depth-preferred/always-replace bucket scheme and moved out of
// Searcher into its own package so engine/search can allocate one table
// per engine instance instead of a fixed-size array field.
package tt

import "github.com/jsigrist/meneldor/engine/move"

// Kind is the bound type recorded alongside a stored evaluation.
type Kind uint8

const (
	Alpha Kind = iota
	Beta
	Exact
)

// Entry is one transposition-table record, 24 logical bytes.
type Entry struct {
	Key        uint64
	Depth      int
	Evaluation int
	BestMove   move.Move
	Kind       Kind
	valid      bool
}

// mateScore bounds evaluations that should be treated as mate scores and
// therefore clamped before being written to the table, rather than
// shifting mate distance on load.
const mateScore = 1_000_000

// clampNonMate pulls any evaluation outside (-mateScore, mateScore) back
// to its boundary before it is stored.
func clampNonMate(score int) int {
	if score > mateScore {
		return mateScore
	}
	if score < -mateScore {
		return -mateScore
	}
	return score
}

// Table is a contiguous array of buckets of two entries, sized to the
// byte budget passed to New.
type Table struct {
	buckets []bucket
}

type bucket struct {
	slots [2]Entry
}

const entrySize = 24 // bytes per Entry; drives capacity from a byte budget.

// New allocates a table sized to hold capacityBytes worth of entries,
// rounded down to a whole number of two-entry buckets, with a minimum of
// one bucket. The default budget is 128 MiB.
func New(capacityBytes int) *Table {
	numEntries := capacityBytes / entrySize
	numBuckets := numEntries / 2
	if numBuckets < 1 {
		numBuckets = 1
	}
	return &Table{buckets: make([]bucket, numBuckets)}
}

// DefaultSizeBytes is the default table size.
const DefaultSizeBytes = 128 * 1024 * 1024

func (t *Table) bucketFor(key uint64) *bucket {
	return &t.buckets[key%uint64(len(t.buckets))]
}

// stronger reports whether kind a is a strictly better bound type than
// kind b: an exact bound beats a non-exact one.
func stronger(a, b Kind) bool {
	return a == Exact && b != Exact
}

func shouldReplace(existing Entry, depth int, kind Kind) bool {
	if !existing.valid {
		return true
	}
	if stronger(kind, existing.Kind) {
		return true
	}
	if existing.Kind != Exact && depth >= existing.Depth {
		return true
	}
	if kind == Exact && depth >= existing.Depth {
		return true
	}
	return false
}

// Insert stores a search result under key, applying the TwoDeep
// replacement policy.
func (t *Table) Insert(key uint64, depth, evaluation int, best move.Move, kind Kind) {
	entry := Entry{
		Key:        key,
		Depth:      depth,
		Evaluation: clampNonMate(evaluation),
		BestMove:   best,
		Kind:       kind,
		valid:      true,
	}

	b := t.bucketFor(key)
	if shouldReplace(b.slots[0], depth, kind) {
		b.slots[0] = entry
		return
	}
	if b.slots[0].Key != key && shouldReplace(b.slots[1], depth, kind) {
		b.slots[1] = entry
	}
}

// Get returns the entry stored under key, if either slot in its bucket
// holds a matching key.
func (t *Table) Get(key uint64) (Entry, bool) {
	b := t.bucketFor(key)
	if b.slots[0].valid && b.slots[0].Key == key {
		return b.slots[0], true
	}
	if b.slots[1].valid && b.slots[1].Key == key {
		return b.slots[1], true
	}
	return Entry{}, false
}

// Clear zeroes every slot, used on the UCI ucinewgame command.
func (t *Table) Clear() {
	for i := range t.buckets {
		t.buckets[i] = bucket{}
	}
}
