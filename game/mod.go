package game

import "math"

// A position magnitude indicating a win: for White if positive, for Black
// if negative. Heuristic scores always stay strictly inside this range.
const WinningValue = math.MaxInt32 - 1

// Infinity is a magnitude greater than any score.
const Infinity = math.MaxInt32

// Evaluate scores a position from White's point of view: positive favours
// White, negative favours Black.
type Evaluate func(*Board) int
