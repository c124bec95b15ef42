package search

import (
	"slices"

	"github.com/jmarlow/rookery/internal/board"
)

// Move ordering scores. Buckets, highest first: the PV move, captures
// by MVV/LVA, quiet promotions, the two killers, then history.
const (
	pvScore       = 20000
	captureOffset = 10000
	promoScore    = 10000
	killer1Score  = 9000
	killer2Score  = 8000
)

// mvvLva is indexed [attacker][victim] over the twelve piece kinds.
// Rows favor cheap attackers, columns expensive victims, so
// pawn-takes-queen outranks queen-takes-pawn.
var mvvLva = [12][12]int{
	{105, 205, 305, 405, 505, 605, 105, 205, 305, 405, 505, 605},
	{104, 204, 304, 404, 504, 604, 104, 204, 304, 404, 504, 604},
	{103, 203, 303, 403, 503, 603, 103, 203, 303, 403, 503, 603},
	{102, 202, 302, 402, 502, 602, 102, 202, 302, 402, 502, 602},
	{101, 201, 301, 401, 501, 601, 101, 201, 301, 401, 501, 601},
	{100, 200, 300, 400, 500, 600, 100, 200, 300, 400, 500, 600},

	{105, 205, 305, 405, 505, 605, 105, 205, 305, 405, 505, 605},
	{104, 204, 304, 404, 504, 604, 104, 204, 304, 404, 504, 604},
	{103, 203, 303, 403, 503, 603, 103, 203, 303, 403, 503, 603},
	{102, 202, 302, 402, 502, 602, 102, 202, 302, 402, 502, 602},
	{101, 201, 301, 401, 501, 601, 101, 201, 301, 401, 501, 601},
	{100, 200, 300, 400, 500, 600, 100, 200, 300, 400, 500, 600},
}

// ScoreMove assigns the ordering score for a single move at the given
// ply. The PV bonus is one-shot: scoring the PV move consumes the
// ScorePV flag so later moves in the same list fall through to the
// normal buckets.
func (s *State) ScoreMove(p *board.Position, m board.Move, ply int) int {
	if s.ScorePV && s.PV[0][ply] == m {
		s.ScorePV = false
		return pvScore
	}

	if m.IsCapture() {
		victim := board.NewPiece(board.WhitePawn, p.SideToMove.Other())
		if !m.IsEnPassant() {
			if captured := p.PieceAt(m.To()); captured != board.NoPiece {
				victim = captured
			}
		}
		return captureOffset + mvvLva[m.Piece()][victim]
	}

	if m.IsPromotion() {
		return promoScore
	}

	if s.Killers[0][ply] == m {
		return killer1Score
	}
	if s.Killers[1][ply] == m {
		return killer2Score
	}
	return s.History[m.Piece()][m.To()]
}

// SortMoves orders a generated move list in place, best score first.
// The sort is stable so generation order breaks ties.
func (s *State) SortMoves(p *board.Position, ml *board.MoveList, ply int) {
	type scored struct {
		move  board.Move
		score int
	}

	list := make([]scored, ml.Len())
	for i := range list {
		m := ml.Get(i)
		list[i] = scored{m, s.ScoreMove(p, m, ply)}
	}

	slices.SortStableFunc(list, func(a, b scored) int {
		return b.score - a.score
	})

	for i, sm := range list {
		ml.Set(i, sm.move)
	}
}
