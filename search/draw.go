package search

import (
	"corvid/board"
	"corvid/history"
)

// IsDraw reports whether pos is a draw by insufficient material, threefold
// repetition, or the fifty-move rule. hist must already include the entry
// for pos itself (pushed by the caller before the recursive call that
// reached pos).
func IsDraw(pos board.Position, hist history.History) bool {
	if pos.InsufficientMaterial() {
		return true
	}
	if hist.IsFiftyMoveDraw() {
		return true
	}
	return hist.IsThreefold(pos.Hash())
}
