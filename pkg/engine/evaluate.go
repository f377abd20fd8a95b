package engine

import "gonum.org/v1/gonum/floats"

// Terminal evaluation magnitudes, from the active player's perspective.
const (
	evalWin        = 1000.0
	evalGammon     = 2000.0
	evalBackgammon = 3000.0
)

// Eval scores a board from its active player's perspective: positive means
// the active player is favored, negative means the opponent is. A finished
// game returns one of the terminal magnitudes (win/gammon/backgammon);
// an ongoing game returns a pip-count-derived heuristic.
func Eval(board Board) float64 {
	switch outcome := board.GameOutcome(); outcome.Kind {
	case Win:
		if outcome.Winner == board.activePlayer {
			return evalWin
		}
		return -evalWin
	case Gammon:
		if outcome.Winner == board.activePlayer {
			return evalGammon
		}
		return -evalGammon
	case Backgammon:
		if outcome.Winner == board.activePlayer {
			return evalBackgammon
		}
		return -evalBackgammon
	}

	var score float64
	for i := 0; i < 24; i++ {
		checker := board.points[i]
		switch {
		case checker > 0:
			mult := i + 1
			if mult > 19 {
				mult = 19
			}
			score += float64(checker) * float64(mult)
		case checker < 0:
			mult := 24 - i
			if mult > 19 {
				mult = 19
			}
			score += float64(checker) * float64(mult)
		}
		if i >= 18 && checker >= 2 {
			score++
		} else if i < 6 && checker <= -2 {
			score--
		}
	}

	score += float64(int(board.activeHome)-int(board.opponentHome)) * 21
	score -= float64(int(board.activeBar)-int(board.opponentBar)) * 5

	return score
}

// EvalAbsolute scores board from PlayerA's perspective regardless of whose
// turn it is, negating Eval's result when the active player is PlayerB.
func EvalAbsolute(board Board) float64 {
	if board.activePlayer == PlayerB {
		return -Eval(board)
	}
	return Eval(board)
}

// capturedValue sums the pip-distance-weighted value of every opponent blot
// a move would capture. It is not folded into Eval by default — captures
// already show up in the pip-count term once applied — but the search can
// opt into using it as a move-ordering tiebreaker.
func capturedValue(board Board, m Move) int {
	sum := 0
	for _, hm := range m.HalfMoves() {
		to, ok := hm.To.IsPoint()
		if !ok {
			continue
		}
		if board.points[to] == -1 {
			sum += to + 1
		}
	}
	return sum
}

// Evaluator refines Eval with a positional weighting: a per-point
// weight vector dotted against the board's signed checker counts. The zero
// Evaluator behaves as Eval alone (all weights zero).
type Evaluator struct {
	// Weights holds one coefficient per point (0..23), applied to the
	// active-player-relative signed checker count at that point.
	Weights [24]float64
}

// NewEvaluator returns an Evaluator whose weights mildly favor occupying the
// six home-board points (18..23) and penalize leaving checkers deep in the
// opponent's home board, as a starting point for tuning.
func NewEvaluator() Evaluator {
	var e Evaluator
	for i := 18; i < 24; i++ {
		e.Weights[i] = 0.5
	}
	for i := 0; i < 6; i++ {
		e.Weights[i] = -0.25
	}
	return e
}

// Score combines Eval's pip-count heuristic with the Evaluator's positional
// term, computed as a dot product over the board's 24 points.
func (e Evaluator) Score(board Board) float64 {
	var counts [24]float64
	for i, v := range board.points {
		counts[i] = float64(v)
	}
	return Eval(board) + floats.Dot(e.Weights[:], counts[:])
}
