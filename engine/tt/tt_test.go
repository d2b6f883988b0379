package tt

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jsigrist/meneldor/engine/move"
)

func TestShouldReplaceEmptySlotAlwaysReplaced(t *testing.T) {
	var empty Entry
	require.True(t, shouldReplace(empty, 0, Alpha))
	require.True(t, shouldReplace(empty, 99, Exact))
}

// An exact-kind entry must survive an alpha/beta-kind candidate of equal
// or greater depth: bound strength outranks depth for non-exact writers.
func TestShouldReplaceExactNotOverwrittenByWeakerBound(t *testing.T) {
	existing := Entry{valid: true, Kind: Exact, Depth: 5}
	require.False(t, shouldReplace(existing, 10, Alpha))
	require.False(t, shouldReplace(existing, 20, Beta))
}

// An exact-kind entry is only overwritten by another exact-kind entry of
// equal or greater depth.
func TestShouldReplaceExactOverwrittenByExactEqualOrGreaterDepth(t *testing.T) {
	existing := Entry{valid: true, Kind: Exact, Depth: 5}
	require.True(t, shouldReplace(existing, 5, Exact))
	require.True(t, shouldReplace(existing, 7, Exact))
	require.False(t, shouldReplace(existing, 4, Exact))
}

func TestShouldReplaceNonExactReplacedByEqualOrGreaterDepth(t *testing.T) {
	existing := Entry{valid: true, Kind: Alpha, Depth: 5}
	require.True(t, shouldReplace(existing, 5, Alpha))
	require.True(t, shouldReplace(existing, 6, Beta))
	require.False(t, shouldReplace(existing, 4, Alpha))
}

func TestClampNonMate(t *testing.T) {
	require.Equal(t, mateScore, clampNonMate(2_000_000))
	require.Equal(t, -mateScore, clampNonMate(-2_000_000))
	require.Equal(t, 42, clampNonMate(42))
}

func TestInsertAndGetRoundTrip(t *testing.T) {
	table := New(DefaultSizeBytes)
	best := move.Make(12, 28, 1, 0, 0, move.Normal)
	table.Insert(0xABCD, 7, 150, best, Exact)

	entry, ok := table.Get(0xABCD)
	require.True(t, ok)
	require.Equal(t, uint64(0xABCD), entry.Key)
	require.Equal(t, 7, entry.Depth)
	require.Equal(t, 150, entry.Evaluation)
	require.Equal(t, best, entry.BestMove)
	require.Equal(t, Exact, entry.Kind)

	_, ok = table.Get(0x1234)
	require.False(t, ok)
}

func TestInsertClampsStoredEvaluation(t *testing.T) {
	table := New(DefaultSizeBytes)
	table.Insert(0x1, 3, 5_000_000, move.NullMove, Exact)
	entry, ok := table.Get(0x1)
	require.True(t, ok)
	require.Equal(t, mateScore, entry.Evaluation)
}

func TestInsertKeepsExactEntryAgainstWeakerBoundSameBucket(t *testing.T) {
	// A single-bucket table forces both keys into the same bucket's two
	// slots so the replacement policy is actually exercised.
	table := New(2 * entrySize)
	table.Insert(1, 5, 100, move.NullMove, Exact)
	table.Insert(2, 10, -100, move.NullMove, Alpha)

	entry, ok := table.Get(1)
	require.True(t, ok)
	require.Equal(t, Exact, entry.Kind)
	require.Equal(t, 100, entry.Evaluation)
}

func TestInsertDoesNotDuplicateKeyAcrossBothSlots(t *testing.T) {
	// A single-bucket table: a weaker rewrite of the key already holding
	// slot 0 must not spill into slot 1 and occupy the bucket twice.
	table := New(2 * entrySize)
	table.Insert(1, 10, 100, move.NullMove, Exact)
	table.Insert(1, 3, 50, move.NullMove, Alpha)

	b := table.bucketFor(1)
	require.Equal(t, uint64(1), b.slots[0].Key)
	require.False(t, b.slots[1].valid)
}

func TestClearWipesEntries(t *testing.T) {
	table := New(DefaultSizeBytes)
	table.Insert(0x1, 1, 1, move.NullMove, Exact)
	table.Clear()
	_, ok := table.Get(0x1)
	require.False(t, ok)
}

func TestNewAllocatesAtLeastOneBucket(t *testing.T) {
	table := New(1)
	require.Len(t, table.buckets, 1)
}
