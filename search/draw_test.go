package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"corvid/board"
	"corvid/history"
)

func TestIsDrawInsufficientMaterial(t *testing.T) {
	pos, err := board.FromFEN("4k3/8/8/8/8/8/8/4K3 w - - 0 1")
	require.NoError(t, err)
	assert.True(t, IsDraw(pos, nil))
}

func TestIsDrawThreefold(t *testing.T) {
	pos := board.Start()
	hist := history.History{
		{Hash: pos.Hash()},
		{Hash: 999},
		{Hash: pos.Hash()},
		{Hash: pos.Hash()},
	}
	assert.True(t, IsDraw(pos, hist))
}

func TestIsDrawFiftyMove(t *testing.T) {
	pos := board.Start()
	hist := make(history.History, 100)
	for i := range hist {
		hist[i] = history.Entry{Hash: uint64(i), Reversible: true}
	}
	assert.True(t, IsDraw(pos, hist))
}

func TestNotDrawFreshGame(t *testing.T) {
	pos := board.Start()
	assert.False(t, IsDraw(pos, nil))
}
