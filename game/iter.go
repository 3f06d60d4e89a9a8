package game

// ReachableIter yields the squares reachable from a square by an unblocked
// queen move: direction N first, then clockwise, nearest square first within
// a direction.
type ReachableIter struct {
	board   *Board
	from    Square
	asEmpty Square
	dir     Direction
	steps   int
}

// ReachableFrom returns an iterator over the squares reachable from from,
// treating asEmpty (possibly NoSquare) as empty. The piece on from, if any,
// is ignored.
func (b *Board) ReachableFrom(from, asEmpty Square) *ReachableIter {
	it := &ReachableIter{}
	it.reset(b, from, asEmpty)
	return it
}

func (it *ReachableIter) reset(b *Board, from, asEmpty Square) {
	it.board = b
	it.from = from
	it.asEmpty = asEmpty
	it.dir = N
	it.steps = 0
}

// Next returns the next reachable square, or false once exhausted.
func (it *ReachableIter) Next() (Square, bool) {
	for it.dir < NumDirections {
		it.steps++
		sq := it.from.QueenMove(it.dir, it.steps)
		if sq == NoSquare || (it.board.squares[sq] != Empty && sq != it.asEmpty) {
			// blocked: the rest of this direction is unreachable
			it.dir++
			it.steps = 0
			continue
		}
		return sq, true
	}
	return NoSquare, false
}

// MoveIter yields legal moves lazily, keeping one cursor per level:
// origin square, queen destination, spear target.
type MoveIter struct {
	board   *Board
	side    Piece
	origin  Square
	dest    Square
	dests   ReachableIter
	spears  ReachableIter
	hasDest bool
}

// LegalMoves returns an iterator over all legal moves of side, whether or
// not it is side's turn. Origins come in increasing square order, then
// destinations and spear targets in ReachableFrom order.
func (b *Board) LegalMoves(side Piece) *MoveIter {
	return &MoveIter{
		board:  b,
		side:   side,
		origin: NoSquare,
	}
}

// Next returns the next legal move, or false once exhausted.
func (it *MoveIter) Next() (Move, bool) {
	for {
		if it.hasDest {
			if spear, ok := it.spears.Next(); ok {
				return NewMove(it.origin, it.dest, spear), true
			}
			if it.nextDest() {
				continue
			}
			it.hasDest = false
		}
		if !it.nextOrigin() {
			return NoMove, false
		}
	}
}

func (it *MoveIter) nextDest() bool {
	dest, ok := it.dests.Next()
	if !ok {
		return false
	}
	it.dest = dest
	// the queen has left origin, so a spear may pass through or land on it
	it.spears.reset(it.board, dest, it.origin)
	return true
}

func (it *MoveIter) nextOrigin() bool {
	for int(it.origin) < NumSquares {
		it.origin++
		if int(it.origin) >= NumSquares {
			break
		}
		if it.board.squares[it.origin] != it.side {
			continue
		}
		it.dests.reset(it.board, it.origin, NoSquare)
		if it.nextDest() {
			it.hasDest = true
			return true
		}
	}
	return false
}

// Count drains the iterator and returns how many moves it yielded.
func (it *MoveIter) Count() int {
	n := 0
	for _, ok := it.Next(); ok; _, ok = it.Next() {
		n++
	}
	return n
}
