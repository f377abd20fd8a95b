package tinyvec

import "testing"

func TestHalfMovesPushAndSlice(t *testing.T) {
	var v HalfMoves[int]
	for i := 1; i <= 4; i++ {
		v.Push(i * 10)
	}
	if v.Len() != 4 {
		t.Fatalf("Len() = %d, want 4", v.Len())
	}
	got := v.Slice()
	want := []int{10, 20, 30, 40}
	for i, g := range got {
		if g != want[i] {
			t.Errorf("Slice()[%d] = %d, want %d", i, g, want[i])
		}
	}
	if v.At(2) != 30 {
		t.Errorf("At(2) = %d, want 30", v.At(2))
	}
}

func TestCandidatesPushAndSlice(t *testing.T) {
	var v Candidates[string]
	v.Push("a")
	v.Push("b")
	if v.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", v.Len())
	}
	if v.Slice()[1] != "b" {
		t.Errorf("Slice()[1] = %q, want %q", v.Slice()[1], "b")
	}
}
