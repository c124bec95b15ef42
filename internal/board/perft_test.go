package board

import (
	"bytes"
	"strings"
	"testing"

	"github.com/dylhunn/dragontoothmg"
)

// The canonical perft battery. Node counts are the standard published
// values; a single wrong count anywhere in movegen or make/unmake
// shows up here.
var perftSuite = []struct {
	name string
	fen  string
	deep bool // skipped with -short
	counts []struct {
		depth int
		nodes uint64
	}
}{
	{
		name: "startpos",
		fen:  StartFEN,
		counts: []struct {
			depth int
			nodes uint64
		}{
			{1, 20}, {2, 400}, {3, 8902}, {4, 197281}, {5, 4865609},
		},
	},
	{
		name: "startpos deep",
		fen:  StartFEN,
		deep: true,
		counts: []struct {
			depth int
			nodes uint64
		}{
			{6, 119060324},
		},
	},
	{
		name: "kiwipete",
		fen:  "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		counts: []struct {
			depth int
			nodes uint64
		}{
			{1, 48}, {2, 2039}, {3, 97862}, {4, 4085603},
		},
	},
	{
		name: "kiwipete deep",
		fen:  "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		deep: true,
		counts: []struct {
			depth int
			nodes uint64
		}{
			{5, 193690690},
		},
	},
	{
		name: "position 3",
		fen:  "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		counts: []struct {
			depth int
			nodes uint64
		}{
			{1, 14}, {2, 191}, {3, 2812}, {4, 43238}, {5, 674624},
		},
	},
	{
		name: "position 3 deep",
		fen:  "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		deep: true,
		counts: []struct {
			depth int
			nodes uint64
		}{
			{6, 11030083},
		},
	},
	{
		name: "position 4",
		fen:  "r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1",
		counts: []struct {
			depth int
			nodes uint64
		}{
			{1, 6}, {2, 264}, {3, 9467}, {4, 422333},
		},
	},
	{
		name: "position 4 deep",
		fen:  "r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1",
		deep: true,
		counts: []struct {
			depth int
			nodes uint64
		}{
			{5, 15833292},
		},
	},
	{
		name: "position 5",
		fen:  "rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8",
		counts: []struct {
			depth int
			nodes uint64
		}{
			{1, 44}, {2, 1486}, {3, 62379}, {4, 2103487},
		},
	},
	{
		name: "position 5 deep",
		fen:  "rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8",
		deep: true,
		counts: []struct {
			depth int
			nodes uint64
		}{
			{5, 89941194},
		},
	},
}

func TestPerft(t *testing.T) {
	for _, tc := range perftSuite {
		t.Run(tc.name, func(t *testing.T) {
			if tc.deep && testing.Short() {
				t.Skip("skipping deep perft in short mode")
			}
			p, err := ParseFEN(tc.fen)
			if err != nil {
				t.Fatalf("ParseFEN: %v", err)
			}
			for _, c := range tc.counts {
				if got := p.Perft(c.depth); got != c.nodes {
					t.Errorf("perft(%d) = %d, want %d", c.depth, got, c.nodes)
				}
			}
		})
	}
}

// dtPerft walks the same tree with dragontoothmg, an independent move
// generator, so a shared misreading of the published tables cannot
// mask a bug.
func dtPerft(b *dragontoothmg.Board, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	var nodes uint64
	for _, m := range b.GenerateLegalMoves() {
		unapply := b.Apply(m)
		nodes += dtPerft(b, depth-1)
		unapply()
	}
	return nodes
}

func TestPerftCrossCheck(t *testing.T) {
	fens := []string{
		StartFEN,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		"rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8",
		"rnbqkbnr/ppp1p1pp/8/3pPp2/8/8/PPPP1PPP/RNBQKBNR w KQkq f6 0 3",
		"r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1",
	}

	for _, fen := range fens {
		p, err := ParseFEN(fen)
		if err != nil {
			t.Fatalf("ParseFEN(%q): %v", fen, err)
		}
		ref := dragontoothmg.ParseFen(fen)

		for depth := 1; depth <= 3; depth++ {
			got := p.Perft(depth)
			want := dtPerft(&ref, depth)
			if got != want {
				t.Errorf("%q perft(%d) = %d, dragontoothmg says %d", fen, depth, got, want)
			}
		}
	}
}

func TestDividePerft(t *testing.T) {
	p, err := ParseFEN(StartFEN)
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	total := p.DividePerft(3, &buf)
	if total != 8902 {
		t.Fatalf("divide total = %d, want 8902", total)
	}

	out := buf.String()
	if !strings.Contains(out, "e2e4: 600") {
		t.Errorf("divide output missing e2e4 subtotal:\n%s", out)
	}
	if !strings.Contains(out, "    Nodes: 8902") {
		t.Errorf("divide output missing node total:\n%s", out)
	}
	if !strings.Contains(out, "    Depth: 3") {
		t.Errorf("divide output missing depth:\n%s", out)
	}
	if !strings.Contains(out, "Knps") {
		t.Errorf("divide output missing speed line:\n%s", out)
	}

	// Twenty root moves, one line each.
	roots := 0
	for _, line := range strings.Split(out, "\n") {
		if strings.Contains(line, ": ") && !strings.Contains(line, "Depth") &&
			!strings.Contains(line, "Nodes") && !strings.Contains(line, "Time") &&
			!strings.Contains(line, "Speed") {
			roots++
		}
	}
	if roots != 20 {
		t.Errorf("divide printed %d root moves, want 20", roots)
	}
}
