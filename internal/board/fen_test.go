package board

import "testing"

func TestFENRoundTrip(t *testing.T) {
	fens := []string{
		StartFEN,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		"rnbqkbnr/ppp1p1pp/8/3pPp2/8/8/PPPP1PPP/RNBQKBNR w KQkq f6 0 3",
		"rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8",
		"4k3/8/8/8/8/8/8/4K3 b - - 12 34",
	}

	for _, fen := range fens {
		p, err := ParseFEN(fen)
		if err != nil {
			t.Errorf("ParseFEN(%q): %v", fen, err)
			continue
		}
		if got := p.ToFEN(); got != fen {
			t.Errorf("round trip changed FEN:\n in: %s\nout: %s", fen, got)
		}
	}
}

func TestParseFENFields(t *testing.T) {
	p, err := ParseFEN("rnbqkbnr/ppp1p1pp/8/3pPp2/8/8/PPPP1PPP/RNBQKBNR w KQkq f6 0 3")
	if err != nil {
		t.Fatal(err)
	}

	if p.SideToMove != White {
		t.Error("side to move")
	}
	if p.EnPassant != F6 {
		t.Errorf("en passant square %v, want f6", p.EnPassant)
	}
	if p.Castling != AllCastling {
		t.Errorf("castling rights %s", p.Castling)
	}
	if p.PieceAt(E5) != WhitePawn {
		t.Errorf("e5 holds %v", p.PieceAt(E5))
	}
	if p.PieceAt(F5) != BlackPawn {
		t.Errorf("f5 holds %v", p.PieceAt(F5))
	}
	if p.FullMoveNumber != 3 {
		t.Errorf("full move number %d", p.FullMoveNumber)
	}
	if p.Hash != p.ComputeHash() {
		t.Error("setup hash not computed")
	}
	if p.Ply() != 0 {
		t.Error("fresh position has a non-empty history stack")
	}
}

func TestParseFENErrors(t *testing.T) {
	bad := []string{
		"",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR",       // missing fields
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP w KQkq - 0 1",   // seven ranks
		"rnbqkbnr/pppppppp/9/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1", // bad digit
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR x KQkq - 0 1", // bad side
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KKkq - 0 1", // fine: duplicate K is accepted
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w Xkq - 0 1",  // bad castling
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq e9 0 1", // bad ep square
	}

	for i, fen := range bad {
		_, err := ParseFEN(fen)
		if i == 5 {
			if err != nil {
				t.Errorf("duplicate castling char should parse: %v", err)
			}
			continue
		}
		if err == nil {
			t.Errorf("ParseFEN accepted %q", fen)
		}
	}
}
