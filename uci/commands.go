// Package uci implements the text line protocol a chess GUI uses to drive
// an engine: parsing commands from the controller and formatting events
// back to it.
package uci

import (
	"strconv"
	"time"
)

// Command is one parsed line from the controller.
type Command interface{ isCommand() }

// UCICommand is the initial handshake request.
type UCICommand struct{}

func (UCICommand) isCommand() {}

// IsReadyCommand asks the engine to confirm it is ready to receive `go`.
type IsReadyCommand struct{}

func (IsReadyCommand) isCommand() {}

// NewGameCommand tells the engine the next position starts a new game,
// clearing any game-specific state.
type NewGameCommand struct{}

func (NewGameCommand) isCommand() {}

// PositionCommand sets up a position: either the standard start position
// or an explicit FEN, followed by a list of moves in UCI long algebraic
// notation to apply on top of it.
type PositionCommand struct {
	StartPos bool
	FEN      string
	Moves    []string
}

func (PositionCommand) isCommand() {}

// GoCommand starts a search under the given limits.
type GoCommand struct {
	Infinite     bool
	MoveTime     time.Duration
	HasMoveTime  bool
	WhiteTime    time.Duration
	BlackTime    time.Duration
	WhiteInc     time.Duration
	BlackInc     time.Duration
	MovesToGo    int
	HasMovesToGo bool
}

func (GoCommand) isCommand() {}

// StopCommand cancels the running search and asks for an immediate
// bestmove.
type StopCommand struct{}

func (StopCommand) isCommand() {}

// QuitCommand asks the engine to exit.
type QuitCommand struct{}

func (QuitCommand) isCommand() {}

// DebugCommand is the controller's `debug on|off` request. The engine
// accepts it without changing its logging or search.
type DebugCommand struct{ On bool }

func (DebugCommand) isCommand() {}

// UnknownCommand is an input line that didn't match any known command. It
// is not an error: the protocol says unrecognized commands should be
// ignored.
type UnknownCommand struct{ Line string }

func (UnknownCommand) isCommand() {}

// parseMillis parses a decimal milliseconds field, returning 0 on a
// malformed value rather than failing the whole command: a single bad
// token from a controller shouldn't take down the search.
func parseMillis(s string) time.Duration {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return time.Duration(n) * time.Millisecond
}

func parseInt(s string) (int, bool) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}
