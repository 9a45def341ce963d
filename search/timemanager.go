package search

import "time"

// emergencyBuffer is subtracted from every GameTime allocation to leave
// headroom for controller/network overhead.
const emergencyBuffer = 100 * time.Millisecond

// AllocateTime computes the wall-clock budget for a GameTime search, per
// spec.md §4.1: let clock/inc be the side to move's remaining time and
// increment. If MovesToGo is present and > 0, the slice is clock/movestogo;
// if it is present and == 0, the slice is the entire clock; if absent, the
// slice is clock/30. The allocated budget is slice + inc - 100ms, clamped
// to zero if negative.
func AllocateTime(l Limits) time.Duration {
	clock, inc := l.WhiteTime, l.WhiteInc
	// Limits always describes the side to move's own clock in
	// WhiteTime/WhiteInc (the engine coordinator selects which controller
	// clock feeds WhiteTime/WhiteInc when it builds Limits; see
	// engine/coordinator.go).
	var slice time.Duration
	switch {
	case l.HasMovesToGo && l.MovesToGo > 0:
		slice = clock / time.Duration(l.MovesToGo)
	case l.HasMovesToGo && l.MovesToGo == 0:
		slice = clock
	default:
		slice = clock / 30
	}

	allocated := slice + inc - emergencyBuffer
	if allocated < 0 {
		allocated = 0
	}
	return allocated
}

// checkTerminate polls for cancellation and time-up. It never blocks. Once
// s.terminate is non-None it stays that way for the remainder of the
// search.
func checkTerminate(s *State) Cause {
	if s.terminate != None {
		return s.terminate
	}

	select {
	case cmd := <-s.control:
		switch cmd.(type) {
		case StopCommand:
			s.terminate = Stop
		case QuitCommand:
			s.terminate = Quit
		}
		// Any other command arriving mid-search is not meaningful and is
		// discarded.
	default:
	}

	if s.terminate == None {
		switch s.limits.Mode {
		case MoveTime:
			if s.elapsed() >= s.limits.FixedTime {
				s.terminate = Stop
			}
		case GameTime:
			if s.elapsed() >= s.allocated {
				s.terminate = Stop
			}
		case Infinite:
			// never times out
		}
	}

	return s.terminate
}

// pollNode is called from every node in negamax and quiescence. It
// increments the node counter and, every pollInterval nodes, checks for
// termination.
func pollNode(s *State) bool {
	s.nodes++
	if s.nodes%pollInterval == 0 {
		checkTerminate(s)
	}
	return s.terminate != None
}
