package uci

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"corvid/board"
	"corvid/search"
)

func TestIdentifySendsHandshake(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	w.Identify("corvid", "someone")
	assert.Equal(t, "id name corvid\nid author someone\nuciok\n", buf.String())
}

func TestReadyOK(t *testing.T) {
	var buf bytes.Buffer
	NewWriter(&buf).ReadyOK()
	assert.Equal(t, "readyok\n", buf.String())
}

func TestBestMoveFormatsUCI(t *testing.T) {
	pos := board.Start()
	m, _ := pos.MoveFromUCI("e2e4")

	var buf bytes.Buffer
	NewWriter(&buf).BestMove(m)
	assert.Equal(t, "bestmove e2e4\n", buf.String())
}

func TestBestMoveZeroMoveIsNullMove(t *testing.T) {
	var buf bytes.Buffer
	NewWriter(&buf).BestMove(board.Move{})
	assert.Equal(t, "bestmove 0000\n", buf.String())
}

func TestFormatScoreCentipawns(t *testing.T) {
	assert.Equal(t, "cp 34", formatScore(34))
	assert.Equal(t, "cp -34", formatScore(-34))
}

func TestFormatScoreMateForSideToMove(t *testing.T) {
	// Mate in 1 ply from the side to move's perspective: score is
	// Infinity-1, a single full move away.
	assert.Equal(t, "mate 1", formatScore(search.Infinity-1))
}

func TestFormatScoreMateAgainstSideToMove(t *testing.T) {
	assert.Equal(t, "mate -1", formatScore(-(search.Infinity - 1)))
}

func TestFormatScoreBoundary(t *testing.T) {
	assert.Equal(t, "cp 5000", formatScore(search.Infinity/2))
	// 3 plies from mate (Infinity-3) is mate in 2 full moves.
	assert.Equal(t, "mate 2", formatScore(search.Infinity-3))
}

func TestInfoIncludesPV(t *testing.T) {
	pos := board.Start()
	m, _ := pos.MoveFromUCI("e2e4")

	var buf bytes.Buffer
	NewWriter(&buf).Info(search.Summary{
		Depth:    3,
		SelDepth: 5,
		Elapsed:  250 * time.Millisecond,
		CP:       12,
		Nodes:    1000,
		NPS:      4000,
		PV:       []board.Move{m},
	})

	got := buf.String()
	assert.Contains(t, got, "depth 3")
	assert.Contains(t, got, "seldepth 5")
	assert.Contains(t, got, "score cp 12")
	assert.Contains(t, got, "pv e2e4")
}

func TestInfoWithoutPVOmitsPVField(t *testing.T) {
	var buf bytes.Buffer
	NewWriter(&buf).Info(search.Summary{Depth: 1})
	assert.NotContains(t, buf.String(), "pv")
}
