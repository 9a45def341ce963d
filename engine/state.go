package engine

import (
	"fmt"
	"sync"

	"corvid/board"
	"corvid/history"
)

// SharedState is the engine's current game position. The coordinator
// updates it between searches, from `position` commands, and at the start
// of each search takes a snapshot of it that it hands to the search worker
// in a search.StartCommand. The lock is held only for the duration of a
// read or write, never across a search: once a worker has its snapshot it
// owns a private copy and recurses through it without touching the lock
// again (see SPEC_FULL.md's concurrency redesign).
type SharedState struct {
	mu   sync.RWMutex
	pos  board.Position
	hist history.History
}

// NewSharedState returns state set to the standard starting position.
func NewSharedState() *SharedState {
	return &SharedState{pos: board.Start()}
}

// Snapshot returns a copy of the current position and history, safe for
// the caller to search against independently of concurrent writers.
func (s *SharedState) Snapshot() (board.Position, history.History) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	hist := make(history.History, len(s.hist))
	copy(hist, s.hist)
	return s.pos, hist
}

// SetStart resets state to the standard starting position with empty
// history, as `ucinewgame` followed by `position startpos` requires.
func (s *SharedState) SetStart() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pos = board.Start()
	s.hist = nil
}

// SetFEN resets state to the position described by fen with empty
// history.
func (s *SharedState) SetFEN(fen string) error {
	pos, err := board.FromFEN(fen)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pos = pos
	s.hist = nil
	return nil
}

// ApplyMoves applies a sequence of moves in UCI long algebraic notation on
// top of the current position, extending history exactly as search.State
// does so threefold/fifty-move detection sees the whole game.
func (s *SharedState) ApplyMoves(moves []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, uci := range moves {
		m, ok := s.pos.MoveFromUCI(uci)
		if !ok {
			return fmt.Errorf("engine: illegal or unknown move %q in current position", uci)
		}
		reversible := !m.IsCapture() && m.Piece != board.Pawn
		next := s.pos.Make(m)
		s.hist = append(s.hist, history.Entry{Hash: next.Hash(), Reversible: reversible})
		s.pos = next
	}
	return nil
}
