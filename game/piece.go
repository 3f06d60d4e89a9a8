package game

// Piece is the content of a square.
type Piece uint8

const (
	Empty Piece = iota
	Spear
	White
	Black
)

func (p Piece) String() string {
	switch p {
	case Spear:
		return "S"
	case White:
		return "W"
	case Black:
		return "B"
	default:
		return "-"
	}
}

// Name is the long form used in logs and records.
func (p Piece) Name() string {
	switch p {
	case Spear:
		return "spear"
	case White:
		return "white"
	case Black:
		return "black"
	default:
		return "empty"
	}
}

// Opponent returns the other side for White and Black, and p otherwise.
func (p Piece) Opponent() Piece {
	switch p {
	case White:
		return Black
	case Black:
		return White
	default:
		return p
	}
}

// IsQueen reports whether p is one of the players' pieces.
func (p Piece) IsQueen() bool {
	return p == White || p == Black
}
