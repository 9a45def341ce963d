package search

import "corvid/board"

// negamax searches the tree rooted at s.pos to depth plies (relative to
// the root of this iterative-deepening iteration) using fail-hard
// alpha-beta with a principal-variation search move loop. It returns the
// score from the side-to-move's perspective and fills pv with the best
// line found. The caller is responsible for pushing/popping s around the
// call; negamax itself pushes/pops for each child it visits.
func negamax(s *State, depth int, alpha, beta int, pv *Line) int {
	var hint board.Move
	if s.ply == 0 {
		hint = pv.HintMove()
	}
	pv.Clear()

	if pollNode(s) {
		return 0
	}

	if s.ply > MaxPly {
		return Evaluate(s.pos)
	}

	if s.ply > 0 && IsDraw(s.pos, s.hist) {
		return 0
	}

	if s.pos.InCheck() {
		depth++
	}

	if depth <= 0 {
		return quiescence(s, alpha, beta)
	}

	moves := s.pos.LegalMoves()
	if len(moves) == 0 {
		if s.pos.InCheck() {
			return -(Infinity - s.ply)
		}
		return 0
	}

	orderMoves(moves, hint)

	var childPV Line
	parent := s.pos

	for i, m := range moves {
		s.push(m)

		var score int
		if i == 0 {
			score = -negamax(s, depth-1, -beta, -alpha, &childPV)
		} else {
			score = -negamax(s, depth-1, -alpha-1, -alpha, &childPV)
			if score > alpha && score < beta {
				score = -negamax(s, depth-1, -beta, -alpha, &childPV)
			}
		}

		s.pop(parent)

		if s.terminate != None {
			return 0
		}

		if score >= beta {
			return beta
		}
		if score > alpha {
			alpha = score
			pv.Set(m, childPV)
		}
	}

	return alpha
}
