package game

import "regexp"

// Move is a queen relocation followed by a spear throw: from-to(spear).
type Move struct {
	from  Square
	to    Square
	spear Square
}

// NoMove is returned when no move is available.
var NoMove = Move{from: NoSquare, to: NoSquare, spear: NoSquare}

var moveRegexp = regexp.MustCompile(`^(` + SquarePattern + `)-(` + SquarePattern + `)\((` + SquarePattern + `)\)$`)

func NewMove(from, to, spear Square) Move {
	return Move{from: from, to: to, spear: spear}
}

func (m Move) From() Square {
	return m.from
}

func (m Move) To() Square {
	return m.to
}

func (m Move) Spear() Square {
	return m.spear
}

func (m Move) IsNone() bool {
	return m == NoMove
}

// IsGrammaticalMove reports whether text has the form "a1-b2(c3)".
func IsGrammaticalMove(text string) bool {
	return moveRegexp.MatchString(text)
}

// ParseMove parses text of the form "a1-b2(c3)". It reports false on any
// syntactic mismatch, so callers can tell moves from other commands.
func ParseMove(text string) (Move, bool) {
	parts := moveRegexp.FindStringSubmatch(text)
	if parts == nil {
		return NoMove, false
	}
	from, _ := ParseSquare(parts[1])
	to, _ := ParseSquare(parts[2])
	spear, _ := ParseSquare(parts[3])
	return NewMove(from, to, spear), true
}

func (m Move) String() string {
	if m.IsNone() {
		return "none"
	}
	return m.from.String() + "-" + m.to.String() + "(" + m.spear.String() + ")"
}
