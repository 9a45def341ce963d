package board

import "github.com/notnil/chess"

// Move is a single legal move, as produced by Position.LegalMoves or
// Position.CapturesOnly.
type Move struct {
	raw       *chess.Move
	From, To  int
	Piece     Piece
	Captured  Piece // NoPiece if not a capture
	Promotion Piece // NoPiece if not a promotion
}

func newMove(from Position, m *chess.Move) Move {
	piece, _, _ := from.PieceAt(int(m.S1()))
	captured := NoPiece
	if m.HasTag(chess.EnPassant) {
		captured = Pawn
	} else if m.HasTag(chess.Capture) {
		if cp, _, ok := from.PieceAt(int(m.S2())); ok {
			captured = cp
		}
	}
	return Move{
		raw:       m,
		From:      int(m.S1()),
		To:        int(m.S2()),
		Piece:     piece,
		Captured:  captured,
		Promotion: fromLibPieceType(m.Promo()),
	}
}

// IsCapture reports whether the move captures a piece.
func (m Move) IsCapture() bool {
	return m.Captured != NoPiece
}

// Equal reports whether two moves have the same from/to/promotion, the
// identity used for deduplicating a PV-hint move against freshly generated
// legal moves (see search/moveorder.go).
func (m Move) Equal(o Move) bool {
	return m.From == o.From && m.To == o.To && m.Promotion == o.Promotion
}

// IsZero reports whether m is the zero value (no move).
func (m Move) IsZero() bool {
	return m.raw == nil
}

// UCI returns the move in UCI long algebraic notation (e.g. "e2e4",
// "e7e8q").
func (m Move) UCI() string {
	s := IndexToAlgebraic(m.From) + IndexToAlgebraic(m.To)
	switch m.Promotion {
	case Queen:
		s += "q"
	case Rook:
		s += "r"
	case Bishop:
		s += "b"
	case Knight:
		s += "n"
	}
	return s
}

func (m Move) String() string {
	return m.UCI()
}
