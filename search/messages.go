package search

import (
	"time"

	"corvid/board"
	"corvid/history"
)

// Mode selects how a search is time-bounded.
type Mode uint8

const (
	// Infinite never times out; it runs until Stop or Quit.
	Infinite Mode = iota
	// MoveTime allocates a fixed wall-clock budget for this move only.
	MoveTime
	// GameTime allocates a budget computed from the remaining clocks.
	GameTime
)

// Limits describes the time budget for one search, as parsed from a `go`
// command.
type Limits struct {
	Mode Mode

	// MoveTime's budget, valid when Mode == MoveTime.
	FixedTime time.Duration

	// GameTime's inputs, valid when Mode == GameTime.
	WhiteTime, BlackTime time.Duration
	WhiteInc, BlackInc   time.Duration
	MovesToGo            int
	HasMovesToGo         bool
}

// Cause identifies why a search stopped.
type Cause uint8

const (
	// None means the search has not been asked to stop.
	None Cause = iota
	// Stop means the controller sent `stop`.
	Stop
	// Quit means the controller sent `quit`.
	Quit
)

// Command is sent from the coordinator to the worker.
type Command interface{ isCommand() }

// StartCommand asks the worker to begin a new search from pos/hist under
// limits, for the side to move recorded in pos.
type StartCommand struct {
	Pos    board.Position
	Hist   history.History
	Limits Limits
}

func (StartCommand) isCommand() {}

// StopCommand cooperatively cancels the running search.
type StopCommand struct{}

func (StopCommand) isCommand() {}

// QuitCommand cancels the running search (if any) and asks the worker to
// terminate after reporting its final BestMove.
type QuitCommand struct{}

func (QuitCommand) isCommand() {}

// Event is sent from the worker to the coordinator.
type Event interface{ isEvent() }

// Summary reports one completed iterative-deepening iteration.
type Summary struct {
	Depth    int
	SelDepth int
	Elapsed  time.Duration
	CP       int
	Nodes    uint64
	NPS      uint64
	PV       []board.Move
}

func (Summary) isEvent() {}

// BestMove terminates a search.
type BestMove struct {
	Move  board.Move
	Cause Cause
}

func (BestMove) isEvent() {}
