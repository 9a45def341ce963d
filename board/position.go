package board

import (
	"strings"

	"github.com/notnil/chess"
)

// Piece identifies a piece type, independent of color.
type Piece uint8

const (
	NoPiece Piece = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// Side identifies a color.
type Side uint8

const (
	White Side = iota
	Black
)

// Other returns the opposing side.
func (s Side) Other() Side {
	if s == White {
		return Black
	}
	return White
}

// StartFEN is the FEN of the standard starting position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// Position is a value-typed view over a github.com/notnil/chess position.
// It is cheap to copy: the only heap data it carries is the pointer handed
// back by the library's own immutable Update, plus a cached in-check flag
// so repeated InCheck() calls in one node don't re-scan the board.
type Position struct {
	inner   *chess.Position
	inCheck bool
}

// FromFEN parses a FEN string into a Position.
func FromFEN(fen string) (Position, error) {
	fn, err := chess.FEN(fen)
	if err != nil {
		return Position{}, err
	}
	game := chess.NewGame(fn)
	return newPosition(game.Position()), nil
}

// Start returns the standard starting position.
func Start() Position {
	pos, err := FromFEN(StartFEN)
	if err != nil {
		panic("board: start FEN must parse: " + err.Error())
	}
	return pos
}

func newPosition(inner *chess.Position) Position {
	return Position{inner: inner, inCheck: detectCheck(inner)}
}

// SideToMove returns the side to move.
func (p Position) SideToMove() Side {
	if p.inner.Turn() == chess.White {
		return White
	}
	return Black
}

// InCheck reports whether the side to move is in check.
func (p Position) InCheck() bool {
	return p.inCheck
}

// CheckersBitboard returns the squares of enemy pieces giving check to the
// side to move's king. Empty when not in check.
func (p Position) CheckersBitboard() Bitboard {
	if !p.inCheck {
		return 0
	}
	return attackersOf(p.inner.Board(), kingSquare(p.inner.Board(), p.inner.Turn()), p.inner.Turn().Other())
}

// PieceAt returns the piece and side occupying square sq (0..63), or
// ok=false if the square is empty.
func (p Position) PieceAt(sq int) (piece Piece, side Side, ok bool) {
	cp := p.inner.Board().Piece(chess.Square(sq))
	if cp == chess.NoPiece {
		return NoPiece, White, false
	}
	return fromLibPieceType(cp.Type()), fromLibColor(cp.Color()), true
}

// Occupied returns the bitboard of all occupied squares.
func (p Position) Occupied() Bitboard {
	var bb Bitboard
	for sq, piece := range p.inner.Board().SquareMap() {
		if piece != chess.NoPiece {
			bb.SetBit(int(sq))
		}
	}
	return bb
}

// ColorBitboard returns the bitboard of all squares occupied by side.
func (p Position) ColorBitboard(side Side) Bitboard {
	var bb Bitboard
	for sq, piece := range p.inner.Board().SquareMap() {
		if piece != chess.NoPiece && fromLibColor(piece.Color()) == side {
			bb.SetBit(int(sq))
		}
	}
	return bb
}

// PieceBitboard returns the bitboard of squares occupied by side's piece.
func (p Position) PieceBitboard(piece Piece, side Side) Bitboard {
	var bb Bitboard
	for sq, cp := range p.inner.Board().SquareMap() {
		if cp == chess.NoPiece {
			continue
		}
		if fromLibPieceType(cp.Type()) == piece && fromLibColor(cp.Color()) == side {
			bb.SetBit(int(sq))
		}
	}
	return bb
}

// InsufficientMaterial reports whether neither side has enough material to
// deliver checkmate: no queens, no rooks, no pawns anywhere, and it is not
// the case that both sides have a bishop or both sides have a knight.
func (p Position) InsufficientMaterial() bool {
	board := p.inner.Board()
	var queens, rooks, pawns, whiteBishops, blackBishops, whiteKnights, blackKnights int
	for sq, cp := range board.SquareMap() {
		_ = sq
		if cp == chess.NoPiece {
			continue
		}
		side := fromLibColor(cp.Color())
		switch fromLibPieceType(cp.Type()) {
		case Queen:
			queens++
		case Rook:
			rooks++
		case Pawn:
			pawns++
		case Bishop:
			if side == White {
				whiteBishops++
			} else {
				blackBishops++
			}
		case Knight:
			if side == White {
				whiteKnights++
			} else {
				blackKnights++
			}
		}
	}
	if queens > 0 || rooks > 0 || pawns > 0 {
		return false
	}
	bothBishops := whiteBishops > 0 && blackBishops > 0
	bothKnights := whiteKnights > 0 && blackKnights > 0
	return !bothBishops && !bothKnights
}

// LegalMoves returns every legal move from this position, in the
// generator's natural order.
func (p Position) LegalMoves() []Move {
	valid := p.inner.ValidMoves()
	moves := make([]Move, 0, len(valid))
	for _, m := range valid {
		moves = append(moves, newMove(p, m))
	}
	return moves
}

// CapturesOnly returns the legal moves whose destination square is
// occupied by the opponent (i.e. legal moves filtered to the
// opponent-occupied target-square mask, per the board library's
// move-generation contract), plus en passant captures, whose destination
// square is empty.
func (p Position) CapturesOnly() []Move {
	valid := p.inner.ValidMoves()
	moves := make([]Move, 0, len(valid)/3+1)
	for _, m := range valid {
		if m.HasTag(chess.Capture) || m.HasTag(chess.EnPassant) {
			moves = append(moves, newMove(p, m))
		}
	}
	return moves
}

// MoveFromUCI finds the legal move matching UCI long algebraic notation
// (e.g. "e2e4", "e7e8q"), as sent by the controller in a `position ...
// moves ...` command.
func (p Position) MoveFromUCI(uci string) (Move, bool) {
	for _, m := range p.LegalMoves() {
		if m.UCI() == uci {
			return m, true
		}
	}
	return Move{}, false
}

// Make applies m and returns the resulting position. The receiver is left
// untouched: "unmake" is simply discarding the returned value and
// continuing to use the position you already had.
func (p Position) Make(m Move) Position {
	return newPosition(p.inner.Update(m.raw))
}

// FEN returns the FEN representation of the position.
func (p Position) FEN() string {
	return p.inner.String()
}

// fenFields splits the FEN representation into its six whitespace-separated
// fields, used by the adapter's own Zobrist hashing (see zobrist.go) so it
// never has to guess the library's unexported castling/en-passant
// accessors.
func (p Position) fenFields() []string {
	return strings.Fields(p.inner.String())
}

func fromLibPieceType(t chess.PieceType) Piece {
	switch t {
	case chess.Pawn:
		return Pawn
	case chess.Knight:
		return Knight
	case chess.Bishop:
		return Bishop
	case chess.Rook:
		return Rook
	case chess.Queen:
		return Queen
	case chess.King:
		return King
	default:
		return NoPiece
	}
}

func fromLibColor(c chess.Color) Side {
	if c == chess.White {
		return White
	}
	return Black
}

func kingSquare(b *chess.Board, side chess.Color) chess.Square {
	for sq, cp := range b.SquareMap() {
		if cp.Type() == chess.King && cp.Color() == side {
			return sq
		}
	}
	return chess.NoSquare
}

func detectCheck(pos *chess.Position) bool {
	b := pos.Board()
	king := kingSquare(b, pos.Turn())
	if king == chess.NoSquare {
		return false
	}
	return attackersOf(b, king, pos.Turn().Other()) != 0
}
