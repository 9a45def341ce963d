// Package engine wires the UCI protocol to the search package: it owns
// the shared game state, translates controller commands into search
// commands, and serializes search progress back out as UCI responses.
package engine

import (
	"github.com/go-logr/logr"

	"corvid/board"
	"corvid/search"
	"corvid/uci"
)

// Coordinator is the engine's middle actor. It owns SharedState and the
// channel pair connecting it to the search worker goroutine; Run is meant
// to be the body of the "Engine Coordinator" goroutine, consuming parsed
// uci.Command values from the protocol reader.
type Coordinator struct {
	Name   string
	Author string

	state *SharedState
	out   *uci.Writer
	log   logr.Logger

	searchCmds   chan search.Command
	searchEvents chan search.Event

	searching bool
}

// NewCoordinator constructs a Coordinator and starts its search worker
// goroutine. out receives formatted UCI responses.
func NewCoordinator(name, author string, out *uci.Writer, log logr.Logger) *Coordinator {
	c := &Coordinator{
		Name:         name,
		Author:       author,
		state:        NewSharedState(),
		out:          out,
		log:          log,
		searchCmds:   make(chan search.Command, 4),
		searchEvents: make(chan search.Event, 64),
	}

	go search.Worker(c.searchCmds, func(e search.Event) {
		c.searchEvents <- e
	})

	return c
}

// Run consumes commands until a QuitCommand is processed or commands is
// closed. It also drains searchEvents throughout, so progress is reported
// as it arrives rather than only between commands.
func (c *Coordinator) Run(commands <-chan uci.Command) {
	for {
		select {
		case cmd, ok := <-commands:
			if !ok {
				return
			}
			if !c.handle(cmd) {
				return
			}
		case ev := <-c.searchEvents:
			c.handleEvent(ev)
		}
	}
}

func (c *Coordinator) handle(cmd uci.Command) bool {
	switch v := cmd.(type) {
	case uci.UCICommand:
		c.out.Identify(c.Name, c.Author)

	case uci.IsReadyCommand:
		c.out.ReadyOK()

	case uci.NewGameCommand:
		c.state.SetStart()

	case uci.PositionCommand:
		c.applyPosition(v)

	case uci.GoCommand:
		c.startSearch(v)

	case uci.StopCommand:
		if c.searching {
			c.searchCmds <- search.StopCommand{}
		}

	case uci.QuitCommand:
		c.searchCmds <- search.QuitCommand{}
		return false

	case uci.DebugCommand:
		// Verbosity is fixed at process startup by --verbose; `debug` is
		// accepted for protocol compliance but doesn't change it.

	case uci.UnknownCommand:
		c.log.Info("ignoring unrecognized command", "line", v.Line)
	}
	return true
}

func (c *Coordinator) applyPosition(v uci.PositionCommand) {
	if c.searching {
		c.log.Info("position received while searching; ignoring")
		return
	}

	switch {
	case v.StartPos:
		c.state.SetStart()
	case v.FEN != "":
		if err := c.state.SetFEN(v.FEN); err != nil {
			c.log.Error(err, "invalid FEN in position command", "fen", v.FEN)
			return
		}
	default:
		return
	}

	if err := c.state.ApplyMoves(v.Moves); err != nil {
		c.log.Error(err, "failed to apply moves from position command")
	}
}

func (c *Coordinator) startSearch(v uci.GoCommand) {
	pos, hist := c.state.Snapshot()

	limits := search.Limits{Mode: search.Infinite}
	switch {
	case v.HasMoveTime:
		limits.Mode = search.MoveTime
		limits.FixedTime = v.MoveTime
	case !v.Infinite:
		limits.Mode = search.GameTime
		if pos.SideToMove() == board.White {
			limits.WhiteTime, limits.WhiteInc = v.WhiteTime, v.WhiteInc
		} else {
			limits.WhiteTime, limits.WhiteInc = v.BlackTime, v.BlackInc
		}
		limits.MovesToGo = v.MovesToGo
		limits.HasMovesToGo = v.HasMovesToGo
	}

	c.searching = true
	c.searchCmds <- search.StartCommand{Pos: pos, Hist: hist, Limits: limits}
}

func (c *Coordinator) handleEvent(ev search.Event) {
	switch v := ev.(type) {
	case search.Summary:
		c.out.Info(v)
	case search.BestMove:
		c.searching = false
		c.out.BestMove(v.Move)
	}
}
