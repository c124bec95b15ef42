package board

// Color represents the color of a piece or player.
type Color uint8

const (
	White Color = iota
	Black
	// Both indexes the combined occupancy in Position.Occupancies.
	Both Color = 2
)

// Other returns the opposite color.
func (c Color) Other() Color {
	return c ^ 1
}

// String returns the color name.
func (c Color) String() string {
	switch c {
	case White:
		return "White"
	case Black:
		return "Black"
	default:
		return "Both"
	}
}

// Piece identifies one of the twelve piece kinds. The numbering is
// fixed: white pawn through white king are 0-5, black pawn through
// black king are 6-11. It doubles as the index into
// Position.Bitboards.
type Piece uint8

const (
	WhitePawn Piece = iota
	WhiteKnight
	WhiteBishop
	WhiteRook
	WhiteQueen
	WhiteKing
	BlackPawn
	BlackKnight
	BlackBishop
	BlackRook
	BlackQueen
	BlackKing
	NoPiece Piece = 12
)

// NewPiece builds the piece id for a color and a white-piece kind
// (WhitePawn..WhiteKing).
func NewPiece(kind Piece, c Color) Piece {
	return kind + Piece(c)*6
}

// Color returns the color of the piece.
func (p Piece) Color() Color {
	if p >= NoPiece {
		return Both
	}
	return Color(p / 6)
}

// IsPawn returns true for either side's pawn.
func (p Piece) IsPawn() bool {
	return p == WhitePawn || p == BlackPawn
}

// IsKing returns true for either side's king.
func (p Piece) IsKing() bool {
	return p == WhiteKing || p == BlackKing
}

// String returns the FEN character for the piece.
// Uppercase for white, lowercase for black.
func (p Piece) String() string {
	if p >= NoPiece {
		return "."
	}
	return string("PNBRQKpnbrqk"[p])
}

// PromotionChar returns the UCI promotion letter for the piece
// ("n", "b", "r" or "q" for both sides), or "" for anything else.
func (p Piece) PromotionChar() string {
	switch p {
	case WhiteKnight, BlackKnight:
		return "n"
	case WhiteBishop, BlackBishop:
		return "b"
	case WhiteRook, BlackRook:
		return "r"
	case WhiteQueen, BlackQueen:
		return "q"
	}
	return ""
}

// PieceFromChar converts a FEN character to a Piece.
func PieceFromChar(c byte) Piece {
	switch c {
	case 'P':
		return WhitePawn
	case 'N':
		return WhiteKnight
	case 'B':
		return WhiteBishop
	case 'R':
		return WhiteRook
	case 'Q':
		return WhiteQueen
	case 'K':
		return WhiteKing
	case 'p':
		return BlackPawn
	case 'n':
		return BlackKnight
	case 'b':
		return BlackBishop
	case 'r':
		return BlackRook
	case 'q':
		return BlackQueen
	case 'k':
		return BlackKing
	default:
		return NoPiece
	}
}
