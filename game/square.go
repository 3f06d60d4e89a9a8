package game

import (
	"fmt"
	"regexp"
	"strconv"
)

const (
	Size       = 10
	NumSquares = Size * Size
)

// Square identifies one cell of the board by its index 0 (a1, lower-left)
// to 99 (j10, upper-right). Squares are plain values: compare them with ==.
type Square int8

// NoSquare is returned where a square would fall off the board.
const NoSquare Square = -1

// SquarePattern matches a square designation such as "a3" or "j10".
const SquarePattern = `[a-j](?:[1-9]|10)`

var squareRegexp = regexp.MustCompile(`^` + SquarePattern + `$`)

// Direction of a queen move, clockwise from north.
type Direction int

const (
	N Direction = iota
	NE
	E
	SE
	S
	SW
	W
	NW
	NumDirections = 8
)

var directionNames = [NumDirections]string{"N", "NE", "E", "SE", "S", "SW", "W", "NW"}

func (d Direction) String() string {
	if d < 0 || d >= NumDirections {
		return fmt.Sprintf("Direction(%d)", int(d))
	}
	return directionNames[d]
}

// deltas[d] = (dcol, drow) for one step in direction d
var deltas = [NumDirections][2]int{
	{0, 1}, {1, 1}, {1, 0}, {1, -1},
	{0, -1}, {-1, -1}, {-1, 0}, {-1, 1},
}

// directionBySign[drow+1][dcol+1]; -1 marks the null step
var directionBySign = [3][3]Direction{
	{SW, S, SE},
	{W, -1, E},
	{NW, N, NE},
}

// Exists reports whether (col, row) lies on the board.
func Exists(col, row int) bool {
	return col >= 0 && row >= 0 && col < Size && row < Size
}

// Sq returns the square at (col, row). It panics if the coordinates are off
// the board.
func Sq(col, row int) Square {
	if !Exists(col, row) {
		panic(fmt.Sprintf("square (%d, %d) out of bounds", col, row))
	}
	return Square(row*Size + col)
}

// SqIndex returns the square with the given index.
func SqIndex(index int) Square {
	if index < 0 || index >= NumSquares {
		panic(fmt.Sprintf("square index %d out of bounds", index))
	}
	return Square(index)
}

// ParseSquare parses a designation like "e7".
func ParseSquare(text string) (Square, bool) {
	if !squareRegexp.MatchString(text) {
		return NoSquare, false
	}
	row, err := strconv.Atoi(text[1:])
	if err != nil {
		return NoSquare, false
	}
	return Sq(int(text[0]-'a'), row-1), true
}

// MustParseSquare is ParseSquare for literals known to be valid.
func MustParseSquare(text string) Square {
	sq, ok := ParseSquare(text)
	if !ok {
		panic(fmt.Sprintf("invalid square %q", text))
	}
	return sq
}

func (s Square) Index() int {
	return int(s)
}

// Col returns the column, 0 being the leftmost.
func (s Square) Col() int {
	return int(s) % Size
}

// Row returns the row, 0 being the bottom.
func (s Square) Row() int {
	return int(s) / Size
}

func (s Square) String() string {
	if s < 0 || int(s) >= NumSquares {
		return "-"
	}
	return string(rune('a'+s.Col())) + strconv.Itoa(s.Row()+1)
}

// IsQueenMove reports whether to lies on a rank, file or diagonal of s.
func (s Square) IsQueenMove(to Square) bool {
	if s == to || to < 0 || int(to) >= NumSquares {
		return false
	}
	dcol := abs(to.Col() - s.Col())
	drow := abs(to.Row() - s.Row())
	return dcol == 0 || drow == 0 || dcol == drow
}

// Direction returns the direction of the queen move s-to. It panics unless
// s.IsQueenMove(to).
func (s Square) Direction(to Square) Direction {
	if !s.IsQueenMove(to) {
		panic(fmt.Sprintf("%v-%v is not a queen move", s, to))
	}
	return directionBySign[sign(to.Row()-s.Row())+1][sign(to.Col()-s.Col())+1]
}

// Distance is the number of steps of the queen move s-to.
func (s Square) Distance(to Square) int {
	return max(abs(to.Col()-s.Col()), abs(to.Row()-s.Row()))
}

// QueenMove returns the square steps squares away from s in direction dir,
// or NoSquare if that leaves the board. steps must be at least 1.
func (s Square) QueenMove(dir Direction, steps int) Square {
	if dir < 0 || dir >= NumDirections || steps < 1 {
		return NoSquare
	}
	col := s.Col() + steps*deltas[dir][0]
	row := s.Row() + steps*deltas[dir][1]
	if !Exists(col, row) {
		return NoSquare
	}
	return Square(row*Size + col)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}
