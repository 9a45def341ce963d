package search

import "corvid/board"

// orderMoves reorders moves in place: the PV hint move first (if present
// among moves), then captures, then the remainder in generator order. It
// is a stable partition, not a full sort: within the capture group and the
// quiet group, generator order is preserved.
func orderMoves(moves []board.Move, pvHint board.Move) {
	ordered := make([]board.Move, 0, len(moves))

	hasHint := !pvHint.IsZero()
	if hasHint {
		for _, m := range moves {
			if m.Equal(pvHint) {
				ordered = append(ordered, m)
				break
			}
		}
	}

	for _, m := range moves {
		if hasHint && m.Equal(pvHint) {
			continue
		}
		if m.IsCapture() {
			ordered = append(ordered, m)
		}
	}

	for _, m := range moves {
		if hasHint && m.Equal(pvHint) {
			continue
		}
		if !m.IsCapture() {
			ordered = append(ordered, m)
		}
	}

	copy(moves, ordered)
}
