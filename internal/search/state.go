// Package search holds the scaffolding the search driver mutates while
// walking the tree: killer and history tables, the triangular
// principal-variation table, and the PV-following flags. The tables
// are bundled into one State value owned by the search goroutine and
// threaded explicitly; nothing here is safe for concurrent use.
package search

import "github.com/jmarlow/rookery/internal/board"

// MaxPly is the deepest ply the scaffolding can address.
const MaxPly = 256

// State is the per-search mutable scaffolding.
type State struct {
	// Killers holds, per ply, the two most recent quiet moves that
	// produced a beta cutoff.
	Killers [2][MaxPly]board.Move

	// History accumulates score boosts per (piece, target square) for
	// quiet moves that raised alpha.
	History [12][64]int

	// PV is the triangular principal-variation table; PVLength[ply]
	// is the number of valid moves in row ply.
	PV       [MaxPly][MaxPly]board.Move
	PVLength [MaxPly]int

	// FollowPV marks that the search is still on the principal
	// variation; ScorePV arms the one-shot PV bonus in move scoring.
	FollowPV bool
	ScorePV  bool

	// AllowNull gates null-move pruning in the search driver.
	AllowNull bool

	// Nodes counts nodes visited in the current search.
	Nodes uint64
}

// NewState returns a cleared State ready for a fresh search.
func NewState() *State {
	return &State{AllowNull: true}
}

// Clear resets every table and counter between searches.
func (s *State) Clear() {
	*s = State{AllowNull: true}
}

// StoreKiller records a quiet move that caused a beta cutoff at the
// given ply, shifting the previous first killer down.
func (s *State) StoreKiller(m board.Move, ply int) {
	if ply >= MaxPly || s.Killers[0][ply] == m {
		return
	}
	s.Killers[1][ply] = s.Killers[0][ply]
	s.Killers[0][ply] = m
}

// AddHistory boosts the history score of a quiet move that raised
// alpha.
func (s *State) AddHistory(m board.Move, depth int) {
	s.History[m.Piece()][m.To()] += depth
}

// EnablePVScoring re-arms PV scoring when the generated move list for
// this ply still contains the PV move; otherwise the search has left
// the principal variation.
func (s *State) EnablePVScoring(ml *board.MoveList, ply int) {
	s.FollowPV = false
	for i := 0; i < ml.Len(); i++ {
		if ml.Get(i) == s.PV[0][ply] {
			s.ScorePV = true
			s.FollowPV = true
		}
	}
}

// SetPV writes a move at the head of the PV row for ply and pulls up
// the tail from the next ply, the usual triangular-table update.
func (s *State) SetPV(m board.Move, ply int) {
	if ply+1 >= MaxPly {
		return
	}
	s.PV[ply][ply] = m
	for next := ply + 1; next < s.PVLength[ply+1]; next++ {
		s.PV[ply][next] = s.PV[ply+1][next]
	}
	s.PVLength[ply] = s.PVLength[ply+1]
}
