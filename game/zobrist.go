package game

import "golang.org/x/exp/rand"

// Zobrist key tables for position fingerprinting. The tables are generated
// once from a fixed seed so fingerprints are stable across processes.
var (
	zPieces [2][MaxBoardSize * MaxBoardSize]uint64
	zTurn   uint64
	zPhases [4]uint64
)

func init() {
	rng := rand.New(rand.NewSource(0x9E3779B97F4A7C15))
	next := func() uint64 {
		// A zero key would make a stone invisible to the XOR.
		for {
			if v := rng.Uint64(); v != 0 {
				return v
			}
		}
	}
	for color := range zPieces {
		for i := range zPieces[color] {
			zPieces[color][i] = next()
		}
	}
	zTurn = next()
	for i := range zPhases {
		zPhases[i] = next()
	}
}

// Fingerprint returns a canonical 64-bit encoding of the state: stone
// placement by color, player to move and phase. Equal states always share
// a fingerprint; it is the transposition-table key.
func (gs *GameState) Fingerprint() uint64 {
	var h uint64
	size := gs.Board.Size()
	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			switch gs.Board.At(Position{row, col}) {
			case Black:
				h ^= zPieces[0][row*MaxBoardSize+col]
			case White:
				h ^= zPieces[1][row*MaxBoardSize+col]
			}
		}
	}
	if gs.Turn == White {
		h ^= zTurn
	}
	h ^= zPhases[gs.Phase]
	return h
}
