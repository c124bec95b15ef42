package board

import (
	"fmt"
	"io"
	"time"
)

// Perft counts the leaf nodes of the game tree to the given depth.
// It is the correctness oracle for the move generator and the
// make/unmake machinery.
func (p *Position) Perft(depth int) uint64 {
	if depth == 0 {
		return 1
	}

	var ml MoveList
	p.GenerateMoves(&ml)

	var nodes uint64
	for i := 0; i < ml.Len(); i++ {
		m := ml.Get(i)
		if !p.MakeMove(m, AllMoves) {
			continue
		}
		nodes += p.Perft(depth - 1)
		p.UnmakeMove(m)
	}
	return nodes
}

// DividePerft prints the node count under each root move, then the
// totals. It is the debugging entry point: a mismatch against a known
// perft table narrows to the offending root move in one run.
func (p *Position) DividePerft(depth int, w io.Writer) uint64 {
	var ml MoveList
	p.GenerateMoves(&ml)

	start := time.Now()
	var nodes uint64
	for i := 0; i < ml.Len(); i++ {
		m := ml.Get(i)
		if !p.MakeMove(m, AllMoves) {
			continue
		}
		sub := p.Perft(depth - 1)
		p.UnmakeMove(m)
		nodes += sub
		fmt.Fprintf(w, "%s: %d\n", m, sub)
	}
	ns := time.Since(start).Nanoseconds()
	if ns == 0 {
		ns = 1
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "    Depth: %d\n", depth)
	fmt.Fprintf(w, "    Nodes: %d\n", nodes)
	fmt.Fprintf(w, "    Time:  %.3fms\n", float64(ns)/1000000.0)
	fmt.Fprintf(w, "   Speed:  %d Knps\n", nodes*1000000/uint64(ns))
	return nodes
}
