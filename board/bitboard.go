// Package board adapts github.com/notnil/chess into the small, value-typed
// surface the search subsystem needs: occupancy and per-piece bitboards,
// side-to-move, legal move generation filterable to captures, move
// application, and a 64-bit Zobrist hash. Everything above this package
// works only with these types and never imports notnil/chess directly.
package board

import (
	"fmt"
	"math/bits"
	"strings"
)

// Bitboard is a 64-bit set of squares, bit i set meaning square i is a
// member. Square numbering matches the external library: a1=0 .. h8=63,
// file-minor (index = rank*8 + file).
type Bitboard uint64

// SetBit sets the bit for square index i (0..63).
func (b *Bitboard) SetBit(i int) {
	*b |= 1 << uint(i)
}

// IsBitSet reports whether square index i is a member.
func (b Bitboard) IsBitSet(i int) bool {
	return b&(1<<uint(i)) != 0
}

// PopCount returns the number of member squares.
func (b Bitboard) PopCount() int {
	return bits.OnesCount64(uint64(b))
}

// Squares returns the member squares in ascending order.
func (b Bitboard) Squares() []int {
	squares := make([]int, 0, b.PopCount())
	for bb := b; bb != 0; bb &= bb - 1 {
		squares = append(squares, bits.TrailingZeros64(uint64(bb)))
	}
	return squares
}

// Pretty renders the bitboard as an 8x8 ASCII grid, rank 8 first.
func (b Bitboard) Pretty() string {
	var sb strings.Builder
	sb.WriteString("+---+---+---+---+---+---+---+---+\n")
	for rank := 7; rank >= 0; rank-- {
		for file := 0; file < 8; file++ {
			sq := rank*8 + file
			if b.IsBitSet(sq) {
				sb.WriteString("| X ")
			} else {
				sb.WriteString("|   ")
			}
		}
		fmt.Fprintf(&sb, "| %d\n+---+---+---+---+---+---+---+---+\n", rank+1)
	}
	sb.WriteString("  a   b   c   d   e   f   g   h\n")
	return sb.String()
}

// IndexToAlgebraic converts a square index (0..63) to algebraic notation.
func IndexToAlgebraic(idx int) string {
	if idx < 0 || idx > 63 {
		return "??"
	}
	file := idx & 7
	rank := idx >> 3
	return fmt.Sprintf("%c%d", 'a'+file, rank+1)
}
