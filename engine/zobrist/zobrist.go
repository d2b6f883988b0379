// Package zobrist holds the fixed table of random 64-bit constants used
// to fingerprint a position, and the XOR helpers that let engine/board
// update the fingerprint incrementally. Grounded on Blunder's
// Random64/getPieceHash/getEPFileHash scheme referenced throughout
// core/board.go, reconstructed here since that file was not part of
// the copied subset.
package zobrist

import "math/rand"

// seed is fixed so the engine is fully deterministic given identical
// input.
const seed = 0x5EED5EEDC0FFEE

var (
	pieceKey  [2][6][64]uint64 // [color][pieceType][square]
	sideKey   uint64
	castleKey [4]uint64 // WhiteShort, WhiteLong, BlackShort, BlackLong
	epFileKey [8]uint64
)

func init() {
	r := rand.New(rand.NewSource(seed))
	for c := 0; c < 2; c++ {
		for p := 0; p < 6; p++ {
			for sq := 0; sq < 64; sq++ {
				pieceKey[c][p][sq] = r.Uint64()
			}
		}
	}
	sideKey = r.Uint64()
	for i := range castleKey {
		castleKey[i] = r.Uint64()
	}
	for i := range epFileKey {
		epFileKey[i] = r.Uint64()
	}
}

// PieceKey returns the XOR key for a piece of the given color and type
// (0=Pawn..5=King) sitting on sq (0..63).
func PieceKey(color, pieceType, sq int) uint64 {
	return pieceKey[color][pieceType][sq]
}

// SideKey is toggled whenever the side to move changes.
func SideKey() uint64 { return sideKey }

// CastleKey returns the XOR key for one of the four castling rights,
// indexed WhiteShort=0, WhiteLong=1, BlackShort=2, BlackLong=3.
func CastleKey(right int) uint64 { return castleKey[right] }

// EPFileKey returns the XOR key folded in when file (0..7) holds a live
// en-passant target square.
func EPFileKey(file int) uint64 { return epFileKey[file] }
