package search

// quiescence extends the search past the nominal horizon along capture
// lines only, to avoid misjudging positions mid-exchange. It does not
// check for draws: a capture-only line can't repeat a position or extend
// the fifty-move run in a way that matters within the handful of plies
// quiescence explores.
func quiescence(s *State, alpha, beta int) int {
	if pollNode(s) {
		return 0
	}

	if s.ply > MaxPly {
		return Evaluate(s.pos)
	}

	standPat := Evaluate(s.pos)
	if standPat >= beta {
		return beta
	}
	if standPat > alpha {
		alpha = standPat
	}

	captures := s.pos.CapturesOnly()
	parent := s.pos

	for _, m := range captures {
		s.push(m)
		score := -quiescence(s, -beta, -alpha)
		s.pop(parent)

		if s.terminate != None {
			return 0
		}

		if score >= beta {
			return beta
		}
		if score > alpha {
			alpha = score
		}
	}

	return alpha
}
