package search

import "corvid/board"

// Line is a principal variation: the sequence of moves negamax believes is
// best from a given node onward. Node functions receive a *Line to fill in
// (the "triangular array" approach, grounded in the teacher's pv_out
// parameter), and build a parent line by prepending their chosen move to
// the child's line.
type Line struct {
	moves []board.Move
}

// Set replaces the line's contents with m followed by child's moves.
func (l *Line) Set(m board.Move, child Line) {
	l.moves = append(l.moves[:0], m)
	l.moves = append(l.moves, child.moves...)
}

// Clear empties the line.
func (l *Line) Clear() {
	l.moves = l.moves[:0]
}

// Moves returns the line's moves, oldest (root) first.
func (l Line) Moves() []board.Move {
	return l.moves
}

// HintMove returns the line's first move, or the zero Move if empty. At the
// root, negamax uses it as the PV-hint for move ordering, carrying the
// previous iterative-deepening iteration's best move (see Seed); nodes
// below the root take no hint.
func (l Line) HintMove() board.Move {
	if len(l.moves) == 0 {
		return board.Move{}
	}
	return l.moves[0]
}

// Seed returns a new Line whose hint move is m's. It is used at the root
// of each iterative-deepening iteration to carry the previous iteration's
// best move into the new search without aliasing its backing storage.
func Seed(m board.Move) Line {
	if m.IsZero() {
		return Line{}
	}
	return Line{moves: []board.Move{m}}
}
