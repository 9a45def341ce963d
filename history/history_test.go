package history

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPushPop(t *testing.T) {
	var h History
	h = h.Push(Entry{Hash: 1})
	h = h.Push(Entry{Hash: 2})
	assert.Len(t, h, 2)

	h = h.Pop()
	assert.Len(t, h, 1)
	assert.Equal(t, uint64(1), h[0].Hash)
}

func TestIsThreefoldRequiresThreeOccurrences(t *testing.T) {
	h := History{
		{Hash: 42},
		{Hash: 7},
		{Hash: 42},
	}
	assert.False(t, h.IsThreefold(42))

	h = append(h, Entry{Hash: 42})
	assert.True(t, h.IsThreefold(42))
}

func TestIsThreefoldIgnoresOtherHashes(t *testing.T) {
	h := History{{Hash: 1}, {Hash: 2}, {Hash: 3}}
	assert.False(t, h.IsThreefold(1))
}

func TestIsFiftyMoveDrawNeedsContiguousRun(t *testing.T) {
	h := make(History, 0, 150)
	for i := 0; i < 99; i++ {
		h = append(h, Entry{Reversible: true})
	}
	assert.False(t, h.IsFiftyMoveDraw())

	h = append(h, Entry{Reversible: true})
	assert.True(t, h.IsFiftyMoveDraw())
}

func TestIsFiftyMoveDrawResetsOnIrreversibleMove(t *testing.T) {
	h := make(History, 0, 150)
	for i := 0; i < 80; i++ {
		h = append(h, Entry{Reversible: true})
	}
	h = append(h, Entry{Reversible: false})
	for i := 0; i < 80; i++ {
		h = append(h, Entry{Reversible: true})
	}
	assert.False(t, h.IsFiftyMoveDraw())

	h = append(h, Entry{Reversible: true})
	for i := 0; i < 19; i++ {
		h = append(h, Entry{Reversible: true})
	}
	assert.True(t, h.IsFiftyMoveDraw())
}
