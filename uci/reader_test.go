package uci

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseHandshakeCommands(t *testing.T) {
	assert.Equal(t, UCICommand{}, Parse("uci"))
	assert.Equal(t, IsReadyCommand{}, Parse("isready"))
	assert.Equal(t, NewGameCommand{}, Parse("ucinewgame"))
	assert.Equal(t, StopCommand{}, Parse("stop"))
	assert.Equal(t, QuitCommand{}, Parse("quit"))
}

func TestParseDebugOnOff(t *testing.T) {
	assert.Equal(t, DebugCommand{On: true}, Parse("debug on"))
	assert.Equal(t, DebugCommand{On: false}, Parse("debug off"))
}

func TestParseUnknownLine(t *testing.T) {
	assert.Equal(t, UnknownCommand{Line: "frobnicate"}, Parse("frobnicate"))
}

func TestParseEmptyLineIsUnknown(t *testing.T) {
	assert.Equal(t, UnknownCommand{Line: ""}, Parse(""))
}

func TestParsePositionStartpos(t *testing.T) {
	got := Parse("position startpos")
	assert.Equal(t, PositionCommand{StartPos: true}, got)
}

func TestParsePositionStartposWithMoves(t *testing.T) {
	got := Parse("position startpos moves e2e4 e7e5")
	assert.Equal(t, PositionCommand{StartPos: true, Moves: []string{"e2e4", "e7e5"}}, got)
}

func TestParsePositionFEN(t *testing.T) {
	fen := "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"
	got := Parse("position fen " + fen)
	assert.Equal(t, PositionCommand{FEN: fen}, got)
}

func TestParsePositionFENWithMoves(t *testing.T) {
	fen := "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"
	got := Parse("position fen " + fen + " moves e2e4")
	want := PositionCommand{FEN: fen, Moves: []string{"e2e4"}}
	assert.Equal(t, want, got)
}

func TestParseGoInfinite(t *testing.T) {
	got := Parse("go infinite")
	assert.Equal(t, GoCommand{Infinite: true}, got)
}

func TestParseGoMoveTime(t *testing.T) {
	got := Parse("go movetime 1500")
	want := GoCommand{MoveTime: 1500 * time.Millisecond, HasMoveTime: true}
	assert.Equal(t, want, got)
}

func TestParseGoClocks(t *testing.T) {
	got := Parse("go wtime 60000 btime 59000 winc 1000 binc 2000 movestogo 30")
	want := GoCommand{
		WhiteTime:    60 * time.Second,
		BlackTime:    59 * time.Second,
		WhiteInc:     time.Second,
		BlackInc:     2 * time.Second,
		MovesToGo:    30,
		HasMovesToGo: true,
	}
	assert.Equal(t, want, got)
}

func TestParseGoMalformedValueFallsBackToZero(t *testing.T) {
	got := Parse("go movetime notanumber")
	assert.Equal(t, GoCommand{HasMoveTime: true}, got)
}

func TestReadLoopDispatchesEachLine(t *testing.T) {
	input := "uci\nisready\nquit\n"
	var got []Command

	err := ReadLoop(strings.NewReader(input), func(c Command) {
		got = append(got, c)
	})

	assert.NoError(t, err)
	assert.Equal(t, []Command{UCICommand{}, IsReadyCommand{}, QuitCommand{}}, got)
}

func TestReadLoopSkipsBlankLines(t *testing.T) {
	input := "\n\nuci\n\n"
	var got []Command
	err := ReadLoop(strings.NewReader(input), func(c Command) { got = append(got, c) })
	assert.NoError(t, err)
	assert.Equal(t, []Command{UCICommand{}}, got)
}
