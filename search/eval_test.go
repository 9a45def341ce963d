package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"corvid/board"
)

func TestEvaluateStartPositionIsBalanced(t *testing.T) {
	pos := board.Start()
	assert.Equal(t, 0, Evaluate(pos))
}

func TestEvaluateFavorsSideUpMaterial(t *testing.T) {
	// White missing the e2 pawn.
	pos, err := board.FromFEN("rnbqkbnr/pppppppp/8/8/8/8/PPPP1PPP/RNBQKBNR w KQkq - 0 1")
	require.NoError(t, err)
	assert.Less(t, Evaluate(pos), 0)
}

func TestEvaluateIsFromSideToMovePerspective(t *testing.T) {
	// Same material deficit, but it's Black's material missing and
	// White to move: should be positive for White.
	pos, err := board.FromFEN("rnbqkbnr/pppp1ppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")
	require.NoError(t, err)
	assert.Greater(t, Evaluate(pos), 0)
}

func TestEndgameDetectedNoQueens(t *testing.T) {
	pos, err := board.FromFEN("4k3/8/8/8/8/8/8/4K3 w - - 0 1")
	require.NoError(t, err)
	assert.True(t, endgameDetected(pos))
}

func TestEndgameDetectedNotEndgameWithQueensAndRooks(t *testing.T) {
	pos := board.Start()
	assert.False(t, endgameDetected(pos))
}

func TestEndgameDetectedQueensButMinimalForce(t *testing.T) {
	pos, err := board.FromFEN("4k3/8/8/8/8/8/8/4KQ2 w - - 0 1")
	require.NoError(t, err)
	assert.True(t, endgameDetected(pos))
}
