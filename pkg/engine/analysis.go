package engine

import "sort"

// MoveWithEval pairs a legal move with its one-ply static evaluation, from
// the mover's perspective.
type MoveWithEval struct {
	Move Move
	Eval float64
}

// AnalysisResult ranks every legal move in a position by one-ply static
// evaluation, best first.
type AnalysisResult struct {
	Moves    []MoveWithEval
	BestMove Move
	BestEval float64
	NumMoves int
}

// AnalyzePosition generates every legal move for board with dice, scores
// each by negating Eval of the position it leaves behind (a child board is
// expressed from the opponent's perspective, so the mover's value is the
// negation of theirs), and ranks them best first. It does not search beyond
// one ply; use Engine.BestMoveAlphaBeta or Engine.BestMoveMCTS for a deeper
// search.
func AnalyzePosition(board Board, dice Dice) AnalysisResult {
	moves := LegalMoves(board, dice)
	if len(moves) == 0 {
		return AnalysisResult{}
	}

	result := AnalysisResult{
		Moves:    make([]MoveWithEval, len(moves)),
		NumMoves: len(moves),
	}

	for i, m := range moves {
		child := board
		child.ApplyMoveUnchecked(m)
		result.Moves[i] = MoveWithEval{Move: m, Eval: -Eval(child)}
	}

	sort.Slice(result.Moves, func(i, j int) bool {
		return result.Moves[i].Eval > result.Moves[j].Eval
	})

	result.BestMove = result.Moves[0].Move
	result.BestEval = result.Moves[0].Eval
	return result
}

// RankMoves returns the top n moves by AnalyzePosition's ranking. n <= 0
// returns every legal move.
func RankMoves(board Board, dice Dice, n int) []MoveWithEval {
	result := AnalyzePosition(board, dice)
	if n <= 0 || n > len(result.Moves) {
		return result.Moves
	}
	return result.Moves[:n]
}
