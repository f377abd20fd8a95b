package engine

import "testing"

func TestBoardStringParseRoundTrip(t *testing.T) {
	board := New()
	board.SetActiveBar(1)
	board.SetOpponentBar(2)

	s := board.String()
	parsed, err := ParseBoard(s)
	if err != nil {
		t.Fatalf("ParseBoard returned error: %v", err)
	}
	if !parsed.Equal(board) {
		t.Errorf("ParseBoard(board.String()) = %v, want %v", parsed, board)
	}
}

func TestParseBoardRejectsMalformedInput(t *testing.T) {
	if _, err := ParseBoard("not a board"); err == nil {
		t.Error("expected an error for malformed input")
	}
}
