package board

// Move encodes a chess move in the low 24 bits of a uint32:
//
//	bits 0-5:   source square
//	bits 6-11:  target square
//	bits 12-15: moving piece (0-11)
//	bits 16-19: promotion piece (0 = none)
//	bit 20:     capture
//	bit 21:     double pawn push
//	bit 22:     en passant (implies capture)
//	bit 23:     castling
//
// Piece id 0 is the white pawn, which can never be a promotion target,
// so 0 is a safe "no promotion" sentinel.
type Move uint32

// Move flags, OR-ed into the encoding.
const (
	FlagCapture    Move = 1 << 20
	FlagDoublePush Move = 1 << 21
	FlagEnPassant  Move = 1 << 22
	FlagCastling   Move = 1 << 23
)

// NoMove is the zero value; no legal move encodes to it.
const NoMove Move = 0

// NewMove packs a non-promotion move.
func NewMove(from, to Square, piece Piece, flags Move) Move {
	return Move(from) | Move(to)<<6 | Move(piece)<<12 | flags
}

// NewPromotion packs a promotion move. promo is the full piece id of
// the promoted piece (e.g. WhiteQueen, BlackKnight).
func NewPromotion(from, to Square, piece, promo Piece, flags Move) Move {
	return NewMove(from, to, piece, flags) | Move(promo)<<16
}

// From returns the source square.
func (m Move) From() Square {
	return Square(m & 0x3F)
}

// To returns the target square.
func (m Move) To() Square {
	return Square(m >> 6 & 0x3F)
}

// Piece returns the moving piece.
func (m Move) Piece() Piece {
	return Piece(m >> 12 & 0xF)
}

// Promotion returns the promoted piece id, or NoPiece when the move is
// not a promotion.
func (m Move) Promotion() Piece {
	p := Piece(m >> 16 & 0xF)
	if p == 0 {
		return NoPiece
	}
	return p
}

// IsPromotion returns true if the move carries a promotion piece.
func (m Move) IsPromotion() bool {
	return m&0xF0000 != 0
}

// IsCapture returns true if the capture flag is set.
func (m Move) IsCapture() bool {
	return m&FlagCapture != 0
}

// IsDoublePush returns true for a two-square pawn advance.
func (m Move) IsDoublePush() bool {
	return m&FlagDoublePush != 0
}

// IsEnPassant returns true for an en passant capture.
func (m Move) IsEnPassant() bool {
	return m&FlagEnPassant != 0
}

// IsCastling returns true for a castling move.
func (m Move) IsCastling() bool {
	return m&FlagCastling != 0
}

// String returns the UCI coordinate form of the move, e.g. "e2e4" or
// "e7e8q".
func (m Move) String() string {
	if m == NoMove {
		return "0000"
	}
	s := m.From().String() + m.To().String()
	if m.IsPromotion() {
		s += m.Promotion().PromotionChar()
	}
	return s
}

// MoveList is a fixed-capacity list of moves. 256 slots is sufficient
// for every legal chess position; overflow is a programmer error.
type MoveList struct {
	moves [256]Move
	count int
}

// Add appends a move to the list.
func (ml *MoveList) Add(m Move) {
	ml.moves[ml.count] = m
	ml.count++
}

// Len returns the number of moves in the list.
func (ml *MoveList) Len() int {
	return ml.count
}

// Get returns the move at index i.
func (ml *MoveList) Get(i int) Move {
	return ml.moves[i]
}

// Set replaces the move at index i.
func (ml *MoveList) Set(i int, m Move) {
	ml.moves[i] = m
}

// Swap exchanges two entries.
func (ml *MoveList) Swap(i, j int) {
	ml.moves[i], ml.moves[j] = ml.moves[j], ml.moves[i]
}

// Clear empties the list.
func (ml *MoveList) Clear() {
	ml.count = 0
}

// Contains reports whether the list holds the move.
func (ml *MoveList) Contains(m Move) bool {
	for i := 0; i < ml.count; i++ {
		if ml.moves[i] == m {
			return true
		}
	}
	return false
}

// Slice returns the populated portion of the list. The backing array
// is shared with the list.
func (ml *MoveList) Slice() []Move {
	return ml.moves[:ml.count]
}
