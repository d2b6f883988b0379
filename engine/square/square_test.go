package square

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFromCoordAndString(t *testing.T) {
	cases := map[string]Square{
		"a1": 0,
		"h1": 7,
		"a8": 56,
		"h8": 63,
		"e4": 28,
	}
	for coord, want := range cases {
		got, err := FromCoord(coord)
		require.NoError(t, err)
		require.Equal(t, want, got)
		require.Equal(t, coord, got.String())
	}
}

func TestFromCoordCaseInsensitive(t *testing.T) {
	got, err := FromCoord("E4")
	require.NoError(t, err)
	require.Equal(t, Square(28), got)
}

func TestFromCoordMalformed(t *testing.T) {
	for _, bad := range []string{"", "a", "a9", "i1", "abc"} {
		_, err := FromCoord(bad)
		require.Error(t, err, bad)
	}
}

func TestFileRank(t *testing.T) {
	sq := Make(4, 3) // e4
	require.Equal(t, 4, sq.File())
	require.Equal(t, 3, sq.Rank())
}

func TestNoneString(t *testing.T) {
	require.Equal(t, "-", None.String())
	require.False(t, None.Valid())
}

func TestValid(t *testing.T) {
	require.True(t, Square(0).Valid())
	require.True(t, Square(63).Valid())
	require.False(t, Square(64).Valid())
	require.False(t, Square(-1).Valid())
}
