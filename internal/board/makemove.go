package board

// MoveType filters what MakeMove will accept.
type MoveType int

const (
	// AllMoves accepts any pseudo-legal move.
	AllMoves MoveType = iota
	// CapturesOnly rejects non-captures without touching the position.
	CapturesOnly
)

// castlingRightsUpdate maps a square to the rights that survive a move
// touching it. Moving from or to a square ANDs its mask into the
// rights, so the four bits are only ever cleared by MakeMove. Only the
// king and rook home squares carry anything other than all-ones.
var castlingRightsUpdate = [64]CastlingRights{
	7, 15, 15, 15, 3, 15, 15, 11,
	15, 15, 15, 15, 15, 15, 15, 15,
	15, 15, 15, 15, 15, 15, 15, 15,
	15, 15, 15, 15, 15, 15, 15, 15,
	15, 15, 15, 15, 15, 15, 15, 15,
	15, 15, 15, 15, 15, 15, 15, 15,
	15, 15, 15, 15, 15, 15, 15, 15,
	13, 15, 15, 15, 12, 15, 15, 14,
}

// MakeMove applies a pseudo-legal move to the position. It returns
// false and leaves the position unchanged when the move would leave
// the mover's own king in check, or when the filter rejects it. On
// success a state-history entry has been pushed; the caller unwinds
// with UnmakeMove.
func (p *Position) MakeMove(m Move, filter MoveType) bool {
	if filter == CapturesOnly && !m.IsCapture() {
		return false
	}

	us := p.SideToMove
	them := us.Other()
	from, to, piece := m.From(), m.To(), m.Piece()

	p.history = append(p.history, StateInfo{
		Captured:      NoPiece,
		EnPassant:     p.EnPassant,
		Castling:      p.Castling,
		Hash:          p.Hash,
		HalfMoveClock: p.HalfMoveClock,
	})
	st := &p.history[len(p.history)-1]

	// Move the piece.
	p.Bitboards[piece] = p.Bitboards[piece].Clear(from).Set(to)
	p.Occupancies[us] = p.Occupancies[us].Clear(from).Set(to)
	p.Hash ^= zobristPiece[piece][from] ^ zobristPiece[piece][to]

	// Remove the captured piece, if any. En passant captures a pawn
	// behind the target square rather than on it.
	if m.IsCapture() {
		capSq := to
		if m.IsEnPassant() {
			if us == White {
				capSq = to + 8
			} else {
				capSq = to - 8
			}
		}
		first, last := BlackPawn, BlackKing
		if us == Black {
			first, last = WhitePawn, WhiteKing
		}
		for captured := first; captured <= last; captured++ {
			if p.Bitboards[captured].IsSet(capSq) {
				p.Bitboards[captured] = p.Bitboards[captured].Clear(capSq)
				p.Occupancies[them] = p.Occupancies[them].Clear(capSq)
				p.Hash ^= zobristPiece[captured][capSq]
				st.Captured = captured
				break
			}
		}
	}

	// Swap the pawn for the promoted piece.
	if promo := m.Promotion(); promo != NoPiece {
		p.Bitboards[piece] = p.Bitboards[piece].Clear(to)
		p.Bitboards[promo] = p.Bitboards[promo].Set(to)
		p.Hash ^= zobristPiece[piece][to] ^ zobristPiece[promo][to]
	}

	// The en passant square lives for exactly one ply.
	if p.EnPassant != NoSquare {
		p.Hash ^= zobristEnPassant[p.EnPassant.File()]
	}
	p.EnPassant = NoSquare

	if m.IsDoublePush() {
		var ep Square
		if us == White {
			ep = to + 8
		} else {
			ep = to - 8
		}
		p.EnPassant = ep
		p.Hash ^= zobristEnPassant[ep.File()]
	}

	// The king move was handled above; castling also moves the rook.
	if m.IsCastling() {
		var rookFrom, rookTo Square
		switch to {
		case G1:
			rookFrom, rookTo = H1, F1
		case C1:
			rookFrom, rookTo = A1, D1
		case G8:
			rookFrom, rookTo = H8, F8
		case C8:
			rookFrom, rookTo = A8, D8
		}
		rook := NewPiece(WhiteRook, us)
		p.Bitboards[rook] = p.Bitboards[rook].Clear(rookFrom).Set(rookTo)
		p.Occupancies[us] = p.Occupancies[us].Clear(rookFrom).Set(rookTo)
		p.Hash ^= zobristPiece[rook][rookFrom] ^ zobristPiece[rook][rookTo]
	}

	p.Hash ^= zobristCastling[p.Castling]
	p.Castling &= castlingRightsUpdate[from] & castlingRightsUpdate[to]
	p.Hash ^= zobristCastling[p.Castling]

	p.Occupancies[Both] = p.Occupancies[White] | p.Occupancies[Black]

	if piece.IsPawn() || st.Captured != NoPiece {
		p.HalfMoveClock = 0
	} else {
		p.HalfMoveClock++
	}
	if us == Black {
		p.FullMoveNumber++
	}

	p.SideToMove = them
	p.Hash ^= zobristSide

	// Reject the move if it left the mover's king in check.
	if p.IsSquareAttacked(p.KingSquare(us), them) {
		p.UnmakeMove(m)
		return false
	}
	return true
}

// UnmakeMove reverses the most recent successful MakeMove using the
// top of the state-history stack. Calling it without a matching make
// is a programmer error.
func (p *Position) UnmakeMove(m Move) {
	st := p.history[len(p.history)-1]
	p.history = p.history[:len(p.history)-1]

	p.SideToMove = p.SideToMove.Other()
	us := p.SideToMove
	them := us.Other()

	from, to, piece := m.From(), m.To(), m.Piece()

	if promo := m.Promotion(); promo != NoPiece {
		// The promoted piece disappears; the pawn returns home.
		p.Bitboards[promo] = p.Bitboards[promo].Clear(to)
		p.Bitboards[piece] = p.Bitboards[piece].Set(from)
		p.Occupancies[us] = p.Occupancies[us].Clear(to).Set(from)
	} else {
		p.Bitboards[piece] = p.Bitboards[piece].Clear(to).Set(from)
		p.Occupancies[us] = p.Occupancies[us].Clear(to).Set(from)

		if m.IsCastling() {
			var rookHome, rookCastled Square
			switch to {
			case G1:
				rookHome, rookCastled = H1, F1
			case C1:
				rookHome, rookCastled = A1, D1
			case G8:
				rookHome, rookCastled = H8, F8
			case C8:
				rookHome, rookCastled = A8, D8
			}
			rook := NewPiece(WhiteRook, us)
			p.Bitboards[rook] = p.Bitboards[rook].Clear(rookCastled).Set(rookHome)
			p.Occupancies[us] = p.Occupancies[us].Clear(rookCastled).Set(rookHome)
		}
	}

	if st.Captured != NoPiece {
		capSq := to
		if m.IsEnPassant() {
			if us == White {
				capSq = to + 8
			} else {
				capSq = to - 8
			}
		}
		p.Bitboards[st.Captured] = p.Bitboards[st.Captured].Set(capSq)
		p.Occupancies[them] = p.Occupancies[them].Set(capSq)
	}

	p.Occupancies[Both] = p.Occupancies[White] | p.Occupancies[Black]

	p.EnPassant = st.EnPassant
	p.Castling = st.Castling
	p.Hash = st.Hash
	p.HalfMoveClock = st.HalfMoveClock
	if us == Black {
		p.FullMoveNumber--
	}
}
