package game

import (
	"fmt"
	"sort"
)

// Evaluators maps evaluator names, as used in configuration, to evaluators.
var Evaluators = map[string]Evaluate{
	"mobility":      EvaluateMobility,
	"mobility-diff": EvaluateMobilityDifference,
	"territory":     EvaluateTerritory,
}

// EvaluatorByName looks up an evaluator in Evaluators.
func EvaluatorByName(name string) (Evaluate, error) {
	fn, ok := Evaluators[name]
	if !ok {
		names := make([]string, 0, len(Evaluators))
		for n := range Evaluators {
			names = append(names, n)
		}
		sort.Strings(names)
		return nil, fmt.Errorf("unknown evaluator %q (want one of %v)", name, names)
	}
	return fn, nil
}

// terminalScore returns the win value of a finished game, and false while
// the game is on.
func terminalScore(b *Board) (int, bool) {
	switch b.Winner() {
	case White:
		return WinningValue, true
	case Black:
		return -WinningValue, true
	}
	return 0, false
}

// EvaluateMobility counts White's legal moves.
func EvaluateMobility(b *Board) int {
	if score, ok := terminalScore(b); ok {
		return score
	}
	return b.LegalMoves(White).Count()
}

// EvaluateMobilityDifference subtracts Black's legal move count from White's.
func EvaluateMobilityDifference(b *Board) int {
	if score, ok := terminalScore(b); ok {
		return score
	}
	return b.LegalMoves(White).Count() - b.LegalMoves(Black).Count()
}

// EvaluateTerritory awards each empty square to the side whose queens reach
// it in fewer queen moves, and returns White's squares minus Black's.
// Squares reached equally fast, or by neither side, count for nobody.
func EvaluateTerritory(b *Board) int {
	if score, ok := terminalScore(b); ok {
		return score
	}
	white := b.queenDistances(White)
	black := b.queenDistances(Black)
	score := 0
	for sq := range b.squares {
		if b.squares[sq] != Empty {
			continue
		}
		w, k := white[sq], black[sq]
		switch {
		case w < k:
			score++
		case k < w:
			score--
		}
	}
	return score
}

const unreached = NumSquares

// queenDistances runs a breadth-first search from all of side's queens and
// returns, per square, the fewest queen moves needed to reach it.
func (b *Board) queenDistances(side Piece) [NumSquares]int {
	var dist [NumSquares]int
	queue := make([]Square, 0, NumSquares)
	for sq := range b.squares {
		dist[sq] = unreached
		if b.squares[sq] == side {
			dist[sq] = 0
			queue = append(queue, Square(sq))
		}
	}
	var it ReachableIter
	for len(queue) > 0 {
		from := queue[0]
		queue = queue[1:]
		it.reset(b, from, NoSquare)
		for to, ok := it.Next(); ok; to, ok = it.Next() {
			if dist[to] == unreached {
				dist[to] = dist[from] + 1
				queue = append(queue, to)
			}
		}
	}
	return dist
}
