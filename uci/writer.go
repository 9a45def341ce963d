package uci

import (
	"fmt"
	"io"
	"strings"

	"corvid/board"
	"corvid/search"
)

// Writer formats engine output as UCI protocol lines.
type Writer struct {
	out io.Writer
}

// NewWriter wraps out (typically os.Stdout) as a Writer.
func NewWriter(out io.Writer) *Writer {
	return &Writer{out: out}
}

// Identify sends the id/uciok handshake response.
func (w *Writer) Identify(name, author string) {
	fmt.Fprintf(w.out, "id name %s\n", name)
	fmt.Fprintf(w.out, "id author %s\n", author)
	fmt.Fprintln(w.out, "uciok")
}

// ReadyOK responds to isready.
func (w *Writer) ReadyOK() {
	fmt.Fprintln(w.out, "readyok")
}

// Info reports one completed iterative-deepening iteration.
func (w *Writer) Info(s search.Summary) {
	pv := make([]string, len(s.PV))
	for i, m := range s.PV {
		pv[i] = m.UCI()
	}

	fmt.Fprintf(w.out, "info depth %d seldepth %d time %d nodes %d nps %d score %s",
		s.Depth, s.SelDepth, s.Elapsed.Milliseconds(), s.Nodes, s.NPS, formatScore(s.CP))
	if len(pv) > 0 {
		fmt.Fprintf(w.out, " pv %s", strings.Join(pv, " "))
	}
	fmt.Fprintln(w.out)
}

// BestMove reports the search's final choice.
func (w *Writer) BestMove(m board.Move) {
	if m.IsZero() {
		fmt.Fprintln(w.out, "bestmove 0000")
		return
	}
	fmt.Fprintf(w.out, "bestmove %s\n", m.UCI())
}

// formatScore renders a centipawn score as either "cp N" or, near the
// mate bound, "mate N" with N plies converted to full moves and signed
// toward the side that delivers mate.
func formatScore(cp int) string {
	abs := cp
	if abs < 0 {
		abs = -abs
	}
	if abs <= search.Infinity/2 {
		return fmt.Sprintf("cp %d", cp)
	}

	plies := search.Infinity - abs
	moves := plies/2 + plies%2
	if cp < 0 {
		moves = -moves
	}
	return fmt.Sprintf("mate %d", moves)
}
