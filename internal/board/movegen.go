package board

// GenerateMoves appends every pseudo-legal move for the side to move.
// Pseudo-legal means a move may still leave the mover's king in check;
// MakeMove rejects those atomically. Pieces are visited pawns first,
// then knights, bishops, rooks, queens and king, each bitboard
// iterated lsb-first.
func (p *Position) GenerateMoves(ml *MoveList) {
	us := p.SideToMove
	them := us.Other()

	p.generatePawnMoves(ml, us, them)
	for kind := WhiteKnight; kind <= WhiteKing; kind++ {
		p.generatePieceMoves(ml, NewPiece(kind, us), us, them)
	}
	p.generateCastlingMoves(ml, us, them)
}

// generatePawnMoves emits pushes, double pushes, captures, promotions
// and en passant captures for the given side.
func (p *Position) generatePawnMoves(ml *MoveList, us, them Color) {
	pawn := NewPiece(WhitePawn, us)

	// White moves toward lower square indices.
	var up int
	var promoFrom, doubleFrom Bitboard
	if us == White {
		up, promoFrom, doubleFrom = -8, Rank7, Rank2
	} else {
		up, promoFrom, doubleFrom = 8, Rank2, Rank7
	}

	bb := p.Bitboards[pawn]
	for bb != 0 {
		from := bb.PopLSB()
		fromBB := SquareBB(from)

		// Pushes.
		to := Square(int(from) + up)
		if !p.Occupancies[Both].IsSet(to) {
			if fromBB&promoFrom != 0 {
				addPromotions(ml, from, to, pawn, us, NoMove)
			} else {
				ml.Add(NewMove(from, to, pawn, NoMove))
				if fromBB&doubleFrom != 0 {
					to2 := Square(int(from) + 2*up)
					if !p.Occupancies[Both].IsSet(to2) {
						ml.Add(NewMove(from, to2, pawn, FlagDoublePush))
					}
				}
			}
		}

		// Captures.
		attacks := pawnAttacks[us][from] & p.Occupancies[them]
		for attacks != 0 {
			to := attacks.PopLSB()
			if fromBB&promoFrom != 0 {
				addPromotions(ml, from, to, pawn, us, FlagCapture)
			} else {
				ml.Add(NewMove(from, to, pawn, FlagCapture))
			}
		}

		// En passant.
		if p.EnPassant != NoSquare && pawnAttacks[us][from].IsSet(p.EnPassant) {
			ml.Add(NewMove(from, p.EnPassant, pawn, FlagEnPassant|FlagCapture))
		}
	}
}

// addPromotions emits the four promotion moves for one pawn advance.
func addPromotions(ml *MoveList, from, to Square, pawn Piece, us Color, flags Move) {
	for kind := WhiteKnight; kind <= WhiteQueen; kind++ {
		ml.Add(NewPromotion(from, to, pawn, NewPiece(kind, us), flags))
	}
}

// generatePieceMoves emits moves for every piece of the given kind,
// masking the attack set against own occupancy and flagging captures
// against the opponent's.
func (p *Position) generatePieceMoves(ml *MoveList, piece Piece, us, them Color) {
	occ := p.Occupancies[Both]

	bb := p.Bitboards[piece]
	for bb != 0 {
		from := bb.PopLSB()

		var attacks Bitboard
		switch piece {
		case WhiteKnight, BlackKnight:
			attacks = knightAttacks[from]
		case WhiteBishop, BlackBishop:
			attacks = BishopAttacks(from, occ)
		case WhiteRook, BlackRook:
			attacks = RookAttacks(from, occ)
		case WhiteQueen, BlackQueen:
			attacks = QueenAttacks(from, occ)
		case WhiteKing, BlackKing:
			attacks = kingAttacks[from]
		}
		attacks &^= p.Occupancies[us]

		for attacks != 0 {
			to := attacks.PopLSB()
			flags := NoMove
			if p.Occupancies[them].IsSet(to) {
				flags = FlagCapture
			}
			ml.Add(NewMove(from, to, piece, flags))
		}
	}
}

// generateCastlingMoves emits castling when the rights are intact, the
// path is empty, and neither the king's square nor the squares it
// crosses are attacked. The final legality re-check in MakeMove is
// redundant for castling but harmless.
func (p *Position) generateCastlingMoves(ml *MoveList, us, them Color) {
	occ := p.Occupancies[Both]

	if us == White {
		king := WhiteKing
		if p.Castling&WhiteKingSide != 0 &&
			occ&(SquareBB(F1)|SquareBB(G1)) == 0 &&
			!p.IsSquareAttacked(E1, them) && !p.IsSquareAttacked(F1, them) && !p.IsSquareAttacked(G1, them) {
			ml.Add(NewMove(E1, G1, king, FlagCastling))
		}
		if p.Castling&WhiteQueenSide != 0 &&
			occ&(SquareBB(B1)|SquareBB(C1)|SquareBB(D1)) == 0 &&
			!p.IsSquareAttacked(E1, them) && !p.IsSquareAttacked(D1, them) && !p.IsSquareAttacked(C1, them) {
			ml.Add(NewMove(E1, C1, king, FlagCastling))
		}
		return
	}

	king := BlackKing
	if p.Castling&BlackKingSide != 0 &&
		occ&(SquareBB(F8)|SquareBB(G8)) == 0 &&
		!p.IsSquareAttacked(E8, them) && !p.IsSquareAttacked(F8, them) && !p.IsSquareAttacked(G8, them) {
		ml.Add(NewMove(E8, G8, king, FlagCastling))
	}
	if p.Castling&BlackQueenSide != 0 &&
		occ&(SquareBB(B8)|SquareBB(C8)|SquareBB(D8)) == 0 &&
		!p.IsSquareAttacked(E8, them) && !p.IsSquareAttacked(D8, them) && !p.IsSquareAttacked(C8, them) {
		ml.Add(NewMove(E8, C8, king, FlagCastling))
	}
}
