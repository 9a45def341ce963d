package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoveUCIFormatting(t *testing.T) {
	pos := Start()
	m, ok := pos.MoveFromUCI("e2e4")
	require.True(t, ok)
	assert.Equal(t, "e2e4", m.UCI())
	assert.False(t, m.IsCapture())
}

func TestMoveUCIPromotion(t *testing.T) {
	pos, err := FromFEN("8/P6k/8/8/8/8/7K/8 w - - 0 1")
	require.NoError(t, err)
	m, ok := pos.MoveFromUCI("a7a8q")
	require.True(t, ok)
	assert.Equal(t, "a7a8q", m.UCI())
	assert.Equal(t, Queen, m.Promotion)
}

func TestMoveEqualIgnoresCapturedField(t *testing.T) {
	a := Move{From: 8, To: 16, Piece: Pawn}
	b := Move{From: 8, To: 16, Piece: Pawn, Captured: Knight}
	assert.True(t, a.Equal(b))
}

func TestZeroMoveIsZero(t *testing.T) {
	var m Move
	assert.True(t, m.IsZero())

	pos := Start()
	real, _ := pos.MoveFromUCI("e2e4")
	assert.False(t, real.IsZero())
}
