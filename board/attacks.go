package board

import "github.com/notnil/chess"

// attackersOf returns the bitboard of byColor's pieces that attack sq on
// board b. It exists because the external library's public surface does
// not expose a checkers bitboard directly; this is a small, self-contained
// scan over the library's own board state; it does not duplicate move
// generation (captures, pins, legality) which stays the library's job.
func attackersOf(b *chess.Board, sq chess.Square, byColor chess.Color) Bitboard {
	if sq == chess.NoSquare {
		return 0
	}
	var attackers Bitboard
	target := int(sq)
	tf, tr := target&7, target>>3

	addIfMatch := func(from int, wantType chess.PieceType) {
		if from < 0 || from > 63 {
			return
		}
		cp := b.Piece(chess.Square(from))
		if cp == chess.NoPiece || cp.Color() != byColor {
			return
		}
		if cp.Type() == wantType {
			attackers.SetBit(from)
		}
	}

	// Knight attacks.
	for _, d := range knightOffsets {
		f, r := tf+d[0], tr+d[1]
		if inBoard(f, r) {
			addIfMatch(r*8+f, chess.Knight)
		}
	}

	// King attacks (adjacency).
	for df := -1; df <= 1; df++ {
		for dr := -1; dr <= 1; dr++ {
			if df == 0 && dr == 0 {
				continue
			}
			f, r := tf+df, tr+dr
			if inBoard(f, r) {
				addIfMatch(r*8+f, chess.King)
			}
		}
	}

	// Pawn attacks: a byColor pawn attacks sq if sq is diagonally in front
	// of it from byColor's perspective, i.e. the pawn sits diagonally
	// *behind* sq relative to its own advance direction.
	pawnRankStep := -1 // white pawns advance toward higher ranks, so they attack from a lower rank
	if byColor == chess.Black {
		pawnRankStep = 1
	}
	for _, df := range [2]int{-1, 1} {
		f, r := tf+df, tr+pawnRankStep
		if inBoard(f, r) {
			addIfMatch(r*8+f, chess.Pawn)
		}
	}

	// Sliding attacks: bishops/queens on diagonals, rooks/queens on files/ranks.
	attackers |= slideAttackers(b, tf, tr, diagonalDirs, byColor, chess.Bishop)
	attackers |= slideAttackers(b, tf, tr, straightDirs, byColor, chess.Rook)

	return attackers
}

var knightOffsets = [8][2]int{
	{1, 2}, {2, 1}, {2, -1}, {1, -2},
	{-1, -2}, {-2, -1}, {-2, 1}, {-1, 2},
}

var diagonalDirs = [4][2]int{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
var straightDirs = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

func inBoard(f, r int) bool {
	return f >= 0 && f < 8 && r >= 0 && r < 8
}

// slideAttackers walks each direction in dirs away from (tf, tr) until it
// hits a piece. A byColor bishop/rook stops the ray and counts as an
// attacker; a byColor queen also counts (queens attack along both ray
// families); any other piece blocks the ray without attacking.
func slideAttackers(b *chess.Board, tf, tr int, dirs [4][2]int, byColor chess.Color, rayPiece chess.PieceType) Bitboard {
	var attackers Bitboard
	for _, d := range dirs {
		f, r := tf+d[0], tr+d[1]
		for inBoard(f, r) {
			sq := r*8 + f
			cp := b.Piece(chess.Square(sq))
			if cp != chess.NoPiece {
				if cp.Color() == byColor && (cp.Type() == rayPiece || cp.Type() == chess.Queen) {
					attackers.SetBit(sq)
				}
				break
			}
			f, r = f+d[0], r+d[1]
		}
	}
	return attackers
}
