package game

import "strings"

// Board is the mutable state of an Amazons game. The zero value is not
// ready for use; call NewBoard.
type Board struct {
	squares  [NumSquares]Piece
	turn     Piece
	numMoves int
	history  []Move // applied moves that can still be undone

	winner      Piece // cached result of Winner, valid iff winnerKnown
	winnerKnown bool
}

var (
	whiteStart = [4]Square{3, 6, 30, 39}  // d1 g1 a4 j4
	blackStart = [4]Square{60, 69, 93, 96} // a7 j7 d10 g10
)

// NewBoard returns a board in the initial position with White to move.
func NewBoard() *Board {
	b := &Board{}
	b.Init()
	return b
}

// Init resets b to the initial position.
func (b *Board) Init() {
	b.squares = [NumSquares]Piece{}
	for _, sq := range whiteStart {
		b.squares[sq] = White
	}
	for _, sq := range blackStart {
		b.squares[sq] = Black
	}
	b.turn = White
	b.numMoves = 0
	b.history = b.history[:0]
	b.winnerKnown = false
}

// Copy returns an independent copy of b. The copy shares no storage with b
// and starts with an empty history, so it cannot undo moves made before it
// was taken.
func (b *Board) Copy() *Board {
	c := &Board{}
	c.CopyFrom(b)
	return c
}

// CopyFrom overwrites b with the position of model, reusing b's storage.
func (b *Board) CopyFrom(model *Board) {
	b.squares = model.squares
	b.turn = model.turn
	b.numMoves = model.numMoves
	b.winner = model.winner
	b.winnerKnown = model.winnerKnown
	b.history = b.history[:0]
}

// Turn returns the side to move.
func (b *Board) Turn() Piece {
	return b.turn
}

// SetTurn makes side the side to move.
func (b *Board) SetTurn(side Piece) {
	b.turn = side
	b.winnerKnown = false
}

// NumMoves returns the number of moves played and not undone.
func (b *Board) NumMoves() int {
	return b.numMoves
}

// History returns the moves that Undo can take back, oldest first.
func (b *Board) History() []Move {
	out := make([]Move, len(b.history))
	copy(out, b.history)
	return out
}

func (b *Board) Get(sq Square) Piece {
	return b.squares[sq]
}

// Put sets the content of sq.
func (b *Board) Put(p Piece, sq Square) {
	b.squares[sq] = p
	b.winnerKnown = false
}

// Count returns the number of squares holding p.
func (b *Board) Count(p Piece) int {
	n := 0
	for _, q := range b.squares {
		if q == p {
			n++
		}
	}
	return n
}

// Winner returns the winning side, or Empty while the game is still on.
// The side to move loses when it has no legal move.
func (b *Board) Winner() Piece {
	if !b.winnerKnown {
		b.winner = Empty
		it := b.LegalMoves(b.turn)
		if _, ok := it.Next(); !ok {
			b.winner = b.turn.Opponent()
		}
		b.winnerKnown = true
	}
	return b.winner
}

// IsUnblockedMove reports whether from-to is a queen move whose path,
// excluding from and including to, is empty. asEmpty (possibly NoSquare) is
// treated as empty whatever it holds.
func (b *Board) IsUnblockedMove(from, to, asEmpty Square) bool {
	if from < 0 || int(from) >= NumSquares || !from.IsQueenMove(to) {
		return false
	}
	dir := from.Direction(to)
	for steps := 1; ; steps++ {
		sq := from.QueenMove(dir, steps)
		if b.squares[sq] != Empty && sq != asEmpty {
			return false
		}
		if sq == to {
			return true
		}
	}
}

// IsLegalStart reports whether from holds a piece of the side to move.
func (b *Board) IsLegalStart(from Square) bool {
	if from < 0 || int(from) >= NumSquares {
		return false
	}
	return b.turn.IsQueen() && b.squares[from] == b.turn
}

// IsLegalMove reports whether from-to(spear) is legal for the side to move.
func (b *Board) IsLegalMove(from, to, spear Square) bool {
	return b.IsLegalStart(from) &&
		b.IsUnblockedMove(from, to, NoSquare) &&
		b.IsUnblockedMove(to, spear, from)
}

func (b *Board) IsLegal(m Move) bool {
	return b.IsLegalMove(m.from, m.to, m.spear)
}

// ApplyMove plays m, which must be legal; it is not checked.
func (b *Board) ApplyMove(m Move) {
	p := b.squares[m.from]
	b.squares[m.from] = Empty
	b.squares[m.to] = p
	b.squares[m.spear] = Spear
	b.numMoves++
	b.turn = b.turn.Opponent()
	b.history = append(b.history, m)
	b.winnerKnown = false
}

// Undo takes back the last applied move. It has no effect when there is
// nothing to undo.
func (b *Board) Undo() {
	if len(b.history) == 0 {
		return
	}
	m := b.history[len(b.history)-1]
	b.history = b.history[:len(b.history)-1]

	p := b.squares[m.to]
	b.squares[m.spear] = Empty
	b.squares[m.to] = Empty
	b.squares[m.from] = p
	b.numMoves--
	b.turn = b.turn.Opponent()
	b.winnerKnown = false
}

// String renders the board top row first, e.g. "   - - - W - - W - - -\n".
func (b *Board) String() string {
	var sb strings.Builder
	for row := Size - 1; row >= 0; row-- {
		sb.WriteString("  ")
		for col := 0; col < Size; col++ {
			sb.WriteByte(' ')
			sb.WriteString(b.squares[row*Size+col].String())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
