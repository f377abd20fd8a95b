package engine

import (
	"math"
	"testing"
)

func TestBestMoveMCTSReturnsLegalMove(t *testing.T) {
	e := NewEngine()
	board := New()
	dice := FromNumbers(3, 1)

	move, err := e.BestMoveMCTS(board, dice, 40, 4)
	if err != nil {
		t.Fatalf("BestMoveMCTS returned error: %v", err)
	}

	legal := LegalMoves(board, dice)
	found := false
	for _, m := range legal {
		if m.UnorderedEqual(move) {
			found = true
			break
		}
	}
	if !found {
		t.Errorf("BestMoveMCTS returned a move not in LegalMoves: %v", move)
	}
}

func TestBestMoveMCTSNoLegalMoves(t *testing.T) {
	e := NewEngine()
	board := Empty()
	board.SetActiveBar(1)
	for i := 0; i < 6; i++ {
		board.SetOpponentPoint(i, 2)
	}

	move, err := e.BestMoveMCTS(board, FromNumbers(1, 2), 10, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if move.Len() != 0 {
		t.Errorf("expected the forced pass move, got %v", move)
	}
}

func TestUCB1PrefersUnvisitedChild(t *testing.T) {
	if score := ucb1(0, 0, 5); !math.IsInf(score, 1) {
		t.Errorf("ucb1 for an unvisited child = %f, want +Inf", score)
	}
}

func TestBiasedMoveReturnsLegalMove(t *testing.T) {
	board := New()
	dice := FromNumbers(4, 2)
	m := biasedMove(board, dice)

	legal := LegalMoves(board, dice)
	found := false
	for _, lm := range legal {
		if lm.UnorderedEqual(m) {
			found = true
			break
		}
	}
	if !found {
		t.Errorf("biasedMove returned a move not in LegalMoves: %v", m)
	}
}
