package search

import (
	"corvid/board"
	"corvid/history"
)

// Result is the outcome of a full Run call: the move the driver committed
// to, and why it stopped.
type Result struct {
	Move  board.Move
	Cause Cause
}

// Run performs iterative-deepening search from pos, reporting one Summary
// per completed depth via report, until depth reaches MaxPly, control
// delivers Stop or Quit, or the allocated time budget (GameTime/MoveTime)
// elapses. The depth-1 iteration is always published, even when a
// cancellation is observed while it runs: the search then unwinds early and
// the Summary carries the PV found among the root moves searched so far. If
// that PV is empty, the first legal move is returned.
func Run(pos board.Position, hist history.History, limits Limits, control <-chan Command, report func(Summary)) Result {
	s := newState(pos, hist, limits, control)

	legal := pos.LegalMoves()
	if len(legal) == 0 {
		return Result{Cause: Stop}
	}

	best := legal[0]
	var pv Line
	var lastCause Cause

	for depth := 1; depth <= MaxPly; depth++ {
		iterationPV := Seed(pv.HintMove())

		score := negamax(s, depth, -Infinity, Infinity, &iterationPV)

		completed := s.terminate == None || depth == 1
		if !completed {
			lastCause = s.terminate
			break
		}

		pv = iterationPV
		if len(pv.Moves()) > 0 {
			best = pv.Moves()[0]
		}

		elapsed := s.elapsed()
		nps := uint64(0)
		if elapsed > 0 {
			nps = uint64(float64(s.nodes) / elapsed.Seconds())
		}
		report(Summary{
			Depth:    depth,
			SelDepth: s.seldepth,
			Elapsed:  elapsed,
			CP:       score,
			Nodes:    s.nodes,
			NPS:      nps,
			PV:       pv.Moves(),
		})

		if s.terminate != None {
			lastCause = s.terminate
			break
		}
	}

	if lastCause == None {
		lastCause = Stop
	}
	return Result{Move: best, Cause: lastCause}
}
