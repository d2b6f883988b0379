package bitboard

// File and rank masks, indexed 0..7 (file a..h, rank 1..8). Grounded on
// the MaskFile/MaskRank tables referenced by Blunder's
// genCardianlMovesBB, recomputed for the LSB-first square convention.
var (
	FileMask [8]Board
	RankMask [8]Board
)

// FileA and FileH are used pervasively to stop pawn-attack shifts from
// wrapping around the board edge.
var (
	FileA Board
	FileB Board
	FileG Board
	FileH Board
	Rank1 Board
	Rank2 Board
	Rank3 Board
	Rank4 Board
	Rank5 Board
	Rank6 Board
	Rank7 Board
	Rank8 Board
)

func init() {
	for f := 0; f < 8; f++ {
		var m Board
		for r := 0; r < 8; r++ {
			m.Set(r*8 + f)
		}
		FileMask[f] = m
	}
	for r := 0; r < 8; r++ {
		var m Board
		for f := 0; f < 8; f++ {
			m.Set(r*8 + f)
		}
		RankMask[r] = m
	}
	FileA, FileB, FileG, FileH = FileMask[0], FileMask[1], FileMask[6], FileMask[7]
	Rank1, Rank2, Rank3, Rank4 = RankMask[0], RankMask[1], RankMask[2], RankMask[3]
	Rank5, Rank6, Rank7, Rank8 = RankMask[4], RankMask[5], RankMask[6], RankMask[7]
}
