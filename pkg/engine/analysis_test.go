package engine

import "testing"

func TestAnalyzePositionRanksBestFirst(t *testing.T) {
	result := AnalyzePosition(New(), FromNumbers(3, 1))
	if result.NumMoves == 0 {
		t.Fatal("expected legal moves from the starting position")
	}
	for i := 1; i < len(result.Moves); i++ {
		if result.Moves[i].Eval > result.Moves[i-1].Eval {
			t.Fatalf("moves not sorted descending at index %d", i)
		}
	}
	if result.BestMove.Len() != result.Moves[0].Move.Len() {
		t.Error("BestMove should match the top-ranked entry")
	}
}

func TestAnalyzePositionNoLegalMoves(t *testing.T) {
	board := Empty()
	board.SetActiveBar(1)
	board.SetOpponentPoint(0, 2)
	board.SetOpponentPoint(1, 2)
	board.SetOpponentPoint(2, 2)
	board.SetOpponentPoint(3, 2)
	board.SetOpponentPoint(4, 2)
	board.SetOpponentPoint(5, 2)

	result := AnalyzePosition(board, FromNumbers(1, 2))
	if result.NumMoves != 1 {
		t.Fatalf("NumMoves = %d, want 1 (single empty move)", result.NumMoves)
	}
}

func TestRankMovesLimitsCount(t *testing.T) {
	moves := RankMoves(New(), FromNumbers(6, 5), 2)
	if len(moves) > 2 {
		t.Errorf("len(moves) = %d, want at most 2", len(moves))
	}
}
