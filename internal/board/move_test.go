package board

import "testing"

func TestMoveEncoding(t *testing.T) {
	m := NewMove(E2, E4, WhitePawn, FlagDoublePush)

	if m.From() != E2 || m.To() != E4 {
		t.Errorf("from/to: %v %v", m.From(), m.To())
	}
	if m.Piece() != WhitePawn {
		t.Errorf("piece: %v", m.Piece())
	}
	if !m.IsDoublePush() || m.IsCapture() || m.IsEnPassant() || m.IsCastling() || m.IsPromotion() {
		t.Error("flags wrong for a double push")
	}

	// The packed layout is observable: source in bits 0-5, target in
	// 6-11, piece in 12-15, promotion in 16-19, flags in 20-23.
	if uint32(m)&0x3F != uint32(E2) {
		t.Error("source square bits misplaced")
	}
	if uint32(m)>>6&0x3F != uint32(E4) {
		t.Error("target square bits misplaced")
	}
	if uint32(m)>>12&0xF != uint32(WhitePawn) {
		t.Error("piece bits misplaced")
	}
	if uint32(m)>>21&1 != 1 {
		t.Error("double-push bit misplaced")
	}

	promo := NewPromotion(E7, E8, WhitePawn, WhiteQueen, FlagCapture)
	if promo.Promotion() != WhiteQueen {
		t.Errorf("promotion piece: %v", promo.Promotion())
	}
	if uint32(promo)>>16&0xF != uint32(WhiteQueen) {
		t.Error("promotion bits misplaced")
	}
	if !promo.IsCapture() || !promo.IsPromotion() {
		t.Error("capture promotion flags wrong")
	}

	if m.Promotion() != NoPiece {
		t.Error("non-promotion reports a promotion piece")
	}
}

func TestMoveString(t *testing.T) {
	tests := []struct {
		move Move
		want string
	}{
		{NewMove(E2, E4, WhitePawn, FlagDoublePush), "e2e4"},
		{NewMove(G8, F6, BlackKnight, NoMove), "g8f6"},
		{NewPromotion(E7, E8, WhitePawn, WhiteQueen, NoMove), "e7e8q"},
		{NewPromotion(A2, A1, BlackPawn, BlackKnight, NoMove), "a2a1n"},
		{NewPromotion(B7, A8, WhitePawn, WhiteRook, FlagCapture), "b7a8r"},
		{NewMove(E1, G1, WhiteKing, FlagCastling), "e1g1"},
		{NoMove, "0000"},
	}

	for _, tc := range tests {
		if got := tc.move.String(); got != tc.want {
			t.Errorf("String() = %q, want %q", got, tc.want)
		}
	}
}

func TestMoveList(t *testing.T) {
	var ml MoveList

	m1 := NewMove(E2, E4, WhitePawn, FlagDoublePush)
	m2 := NewMove(G1, F3, WhiteKnight, NoMove)
	ml.Add(m1)
	ml.Add(m2)

	if ml.Len() != 2 || ml.Get(0) != m1 || ml.Get(1) != m2 {
		t.Fatal("Add/Get wrong")
	}
	if !ml.Contains(m1) || ml.Contains(NewMove(A2, A3, WhitePawn, NoMove)) {
		t.Error("Contains wrong")
	}

	ml.Swap(0, 1)
	if ml.Get(0) != m2 {
		t.Error("Swap wrong")
	}

	if len(ml.Slice()) != 2 {
		t.Error("Slice length wrong")
	}

	ml.Clear()
	if ml.Len() != 0 {
		t.Error("Clear wrong")
	}
}
