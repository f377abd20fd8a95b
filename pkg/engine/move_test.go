package engine

import "testing"

func hasHalfMove(moves []HalfMove, from, to Position) bool {
	for _, hm := range moves {
		if hm.From == from && hm.To == to {
			return true
		}
	}
	return false
}

func TestStartingPosition31MakesFivePoint(t *testing.T) {
	board := New()
	dice := FromNumbers(3, 1)

	found := false
	for _, m := range LegalMoves(board, dice) {
		if m.Len() != 2 {
			continue
		}
		b := board
		b.ApplyMoveUnchecked(m)
		b.SwitchPlayer() // back to the mover's own perspective
		if b.CountAt(19) == 2 {
			found = true
			break
		}
	}
	if !found {
		t.Error("expected a 3-1 move that makes the 5-point (point 19) from the starting position")
	}
}

func TestBarCheckerMustReenterBeforeOtherMoves(t *testing.T) {
	board := Empty()
	board.SetActiveBar(1)
	board.SetActivePoint(10, 1)
	board.SetOpponentPoint(2, 2) // blocks entry for die 3 (entry point index 2)

	dice := FromNumbers(3, 5)
	half := toHalfMoveSlice(LegalHalfMoves(board, dice))
	if hasHalfMove(half, Bar, Point(2)) {
		t.Error("die 3 should not allow entry onto a point the opponent owns with 2+ checkers")
	}
	if !hasHalfMove(half, Bar, Point(4)) {
		t.Error("die 5 should allow entry onto the open point 4")
	}

	for _, m := range LegalMoves(board, dice) {
		first := m.HalfMoveAt(0)
		if !first.From.IsBar() {
			t.Errorf("move %v does not reenter the bar checker first", m)
		}
	}
}

func TestMustUseMaximumDice(t *testing.T) {
	board := Empty()
	board.SetActivePoint(0, 1)
	board.SetOpponentPoint(1, 1) // die 1 from point 0 would hit; still legal, single opponent checker

	dice := FromNumbers(1, 2)
	moves := LegalMoves(board, dice)
	if len(moves) == 0 {
		t.Fatal("expected at least one legal move")
	}
	maxLen := 0
	for _, m := range moves {
		if m.Len() > maxLen {
			maxLen = m.Len()
		}
	}
	for _, m := range moves {
		if m.Len() != maxLen {
			t.Errorf("LegalMoves returned a move of length %d while max achievable is %d", m.Len(), maxLen)
		}
	}
}

func TestDoublesCappedAtAchievableLength(t *testing.T) {
	board := Empty()
	board.SetActivePoint(16, 1)
	board.SetActivePoint(17, 1)

	dice := FromNumbers(6, 6)
	moves := LegalMoves(board, dice)
	for _, m := range moves {
		if m.Len() > 2 {
			t.Errorf("only two checkers available to move with die 6, got move of length %d", m.Len())
		}
		if m.Len() < 2 {
			t.Errorf("both checkers should be able to use a 6, got move of length %d", m.Len())
		}
	}
}

func TestBearOffOvershootFromHighestOccupiedPoint(t *testing.T) {
	board := Empty()
	board.SetActiveHome(14)
	board.SetActivePoint(20, 1) // point 20: needs a 4 to bear off exactly

	dice := FromNumbers(6, 6)
	half := LegalHalfMoves(board, dice)
	if !hasHalfMove(toHalfMoveSlice(half), Point(20), Home) {
		t.Error("expected overshoot bear-off of the only occupied point with a 6")
	}
}

func toHalfMoveSlice(uses []DiceUse) []HalfMove {
	out := make([]HalfMove, len(uses))
	for i, u := range uses {
		out[i] = u.HalfMove
	}
	return out
}

func TestBlotCapture(t *testing.T) {
	board := Empty()
	board.SetActivePoint(0, 1)
	board.SetOpponentPoint(3, 1)

	dice := FromNumbers(3, 4)
	half := LegalHalfMoves(board, dice)
	if !hasHalfMove(toHalfMoveSlice(half), Point(0), Point(3)) {
		t.Fatal("expected a legal half-move landing on the opponent's blot")
	}

	b := board
	b.ApplyHalfMoveUnchecked(HalfMove{From: Point(0), To: Point(3)})
	if b.CountAt(3) != 1 {
		t.Errorf("CountAt(3) after capture = %d, want 1", b.CountAt(3))
	}
	if b.opponentBar != 1 {
		t.Errorf("opponentBar after capture = %d, want 1", b.opponentBar)
	}
}

func TestUnorderedEqualDedup(t *testing.T) {
	board := Empty()
	board.SetActivePoint(0, 2)

	dice := FromNumbers(2, 3)
	moves := LegalMoves(board, dice)

	for i := 0; i < len(moves); i++ {
		for j := i + 1; j < len(moves); j++ {
			if moves[i].UnorderedEqual(moves[j]) {
				t.Errorf("LegalMoves returned unordered-equal duplicates: %v and %v", moves[i], moves[j])
			}
		}
	}
}

func TestLegalMovesEmptyWhenNoHalfMovePossible(t *testing.T) {
	board := Empty()
	board.SetActiveBar(1)
	board.SetOpponentPoint(0, 2)
	board.SetOpponentPoint(1, 2)

	dice := FromNumbers(1, 2)
	moves := LegalMoves(board, dice)
	if len(moves) != 1 || moves[0].Len() != 0 {
		t.Errorf("LegalMoves = %v, want a single empty move", moves)
	}
}
