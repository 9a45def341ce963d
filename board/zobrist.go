package board

import (
	"math/rand"
	"strings"
)

// Zobrist hashing keys, one per (color, piece, square), plus keys for
// castling rights, en-passant file, and side to move. XORing the relevant
// keys together gives a 64-bit fingerprint of a position. This is the
// teacher's own zobrist.go design (fixed-seed keys computed once at
// startup); it is recomputed here from the external library's FEN output
// rather than from hand-rolled board fields, since move generation itself
// has moved to the library.
var (
	zobristPiece    [2][6][64]uint64
	zobristCastling [16]uint64
	zobristEnPassant [8]uint64
	zobristSide     uint64
)

func init() {
	// Fixed seed: the hash only needs to be stable within one process run
	// (repetition/fifty-move detection compares hashes produced by this
	// same process), not across engine versions.
	rng := rand.New(rand.NewSource(0x12345678DEADBEEF))

	for color := 0; color < 2; color++ {
		for piece := 0; piece < 6; piece++ {
			for sq := 0; sq < 64; sq++ {
				zobristPiece[color][piece][sq] = rng.Uint64()
			}
		}
	}
	for i := range zobristCastling {
		zobristCastling[i] = rng.Uint64()
	}
	for i := range zobristEnPassant {
		zobristEnPassant[i] = rng.Uint64()
	}
	zobristSide = rng.Uint64()
}

// castleMask turns the FEN castling-rights field (e.g. "KQkq", "-") into a
// 4-bit mask, bit order: white king side, white queen side, black king
// side, black queen side.
func castleMask(field string) uint8 {
	var mask uint8
	if strings.ContainsRune(field, 'K') {
		mask |= 1
	}
	if strings.ContainsRune(field, 'Q') {
		mask |= 2
	}
	if strings.ContainsRune(field, 'k') {
		mask |= 4
	}
	if strings.ContainsRune(field, 'q') {
		mask |= 8
	}
	return mask
}

// Hash returns the 64-bit Zobrist hash of the position.
func (p Position) Hash() uint64 {
	var hash uint64

	fields := p.fenFields()

	for i := 0; i < 64; i++ {
		pc, side, ok := p.PieceAt(i)
		if !ok {
			continue
		}
		colorIdx := 0
		if side == Black {
			colorIdx = 1
		}
		hash ^= zobristPiece[colorIdx][int(pc)-1][i]
	}

	if len(fields) >= 4 {
		hash ^= zobristCastling[castleMask(fields[2])]
		if fields[3] != "-" && len(fields[3]) == 2 {
			file := int(fields[3][0] - 'a')
			if file >= 0 && file < 8 {
				hash ^= zobristEnPassant[file]
			}
		}
	}

	if p.SideToMove() == Black {
		hash ^= zobristSide
	}

	return hash
}
