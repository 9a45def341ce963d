package search

import "corvid/board"

// Material values in centipawns.
const (
	valuePawn   = 100
	valueKnight = 320
	valueBishop = 330
	valueRook   = 500
	valueQueen  = 900
	valueKing   = 20000
)

func pieceValue(p board.Piece) int {
	switch p {
	case board.Pawn:
		return valuePawn
	case board.Knight:
		return valueKnight
	case board.Bishop:
		return valueBishop
	case board.Rook:
		return valueRook
	case board.Queen:
		return valueQueen
	case board.King:
		return valueKing
	default:
		return 0
	}
}

func pstValue(p board.Piece, sq int, white bool) int {
	idx := pstIndex(sq, white)
	switch p {
	case board.Pawn:
		return pstPawn[idx]
	case board.Knight:
		return pstKnight[idx]
	case board.Bishop:
		return pstBishop[idx]
	case board.Rook:
		return pstRook[idx]
	case board.Queen:
		return pstQueen[idx]
	default:
		return 0
	}
}

// endgameDetected reports whether pos should use the endgame king table:
// no queens are on the board at all, or both sides have at most one minor
// piece and no rooks.
func endgameDetected(pos board.Position) bool {
	var queens int
	var whiteMinors, blackMinors, rooks int
	for sq := 0; sq < 64; sq++ {
		piece, side, ok := pos.PieceAt(sq)
		if !ok {
			continue
		}
		switch piece {
		case board.Queen:
			queens++
		case board.Rook:
			rooks++
		case board.Knight, board.Bishop:
			if side == board.White {
				whiteMinors++
			} else {
				blackMinors++
			}
		}
	}
	if queens == 0 {
		return true
	}
	return rooks == 0 && whiteMinors <= 1 && blackMinors <= 1
}

// Evaluate returns a static score in centipawns from the perspective of
// the side to move: material plus piece-square bonuses, with the king
// table chosen by endgameDetected.
func Evaluate(pos board.Position) int {
	endgame := endgameDetected(pos)

	var white, black int
	for sq := 0; sq < 64; sq++ {
		piece, side, ok := pos.PieceAt(sq)
		if !ok {
			continue
		}

		isWhite := side == board.White
		score := pieceValue(piece)
		if piece == board.King {
			if endgame {
				score += pstKingEndgame[pstIndex(sq, isWhite)]
			} else {
				score += pstKingMiddlegame[pstIndex(sq, isWhite)]
			}
		} else {
			score += pstValue(piece, sq, isWhite)
		}

		if isWhite {
			white += score
		} else {
			black += score
		}
	}

	if pos.SideToMove() == board.White {
		return white - black
	}
	return black - white
}
