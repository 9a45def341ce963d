package search

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"corvid/board"
)

func TestWorkerRunsSearchAndReportsBestMove(t *testing.T) {
	commands := make(chan Command, 1)
	events := make(chan Event, 64)

	go Worker(commands, func(e Event) { events <- e })

	commands <- StartCommand{
		Pos:    board.Start(),
		Limits: Limits{Mode: MoveTime, FixedTime: 10 * time.Millisecond},
	}

	var best *BestMove
	deadline := time.After(2 * time.Second)
	for best == nil {
		select {
		case ev := <-events:
			if bm, ok := ev.(BestMove); ok {
				best = &bm
			}
		case <-deadline:
			t.Fatal("timed out waiting for BestMove")
		}
	}

	assert.False(t, best.Move.IsZero())
	close(commands)
}

func TestWorkerQuitStopsLoop(t *testing.T) {
	commands := make(chan Command)
	done := make(chan struct{})

	go func() {
		Worker(commands, func(Event) {})
		close(done)
	}()

	commands <- QuitCommand{}

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Worker did not return after QuitCommand")
	}
}

func TestWorkerStopWithNoSearchRunningIsNoop(t *testing.T) {
	commands := make(chan Command)
	done := make(chan struct{})

	go func() {
		Worker(commands, func(Event) {})
		close(done)
	}()

	commands <- StopCommand{}
	commands <- QuitCommand{}

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Worker did not return after QuitCommand following a stray StopCommand")
	}
}

func TestRunOneRelaysStopIntoSearch(t *testing.T) {
	commands := make(chan Command, 1)
	events := make(chan Event, 64)

	go runOne(StartCommand{
		Pos:    board.Start(),
		Limits: Limits{Mode: Infinite},
	}, commands, func(e Event) { events <- e })

	commands <- StopCommand{}

	var best *BestMove
	deadline := time.After(2 * time.Second)
	for best == nil {
		select {
		case ev := <-events:
			if bm, ok := ev.(BestMove); ok {
				best = &bm
			}
		case <-deadline:
			t.Fatal("timed out waiting for BestMove after Stop")
		}
	}

	require.NotNil(t, best)
}
