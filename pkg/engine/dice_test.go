package engine

import (
	"math"
	"testing"
)

func TestAllHas21Entries(t *testing.T) {
	all := All()
	if len(all) != 21 {
		t.Fatalf("len(All()) = %d, want 21", len(all))
	}
}

func TestAllWithProbabilitySumsToOne(t *testing.T) {
	sum := 0.0
	for _, wp := range AllWithProbability() {
		sum += wp.Probability
	}
	if math.Abs(sum-1.0) > 0.001 {
		t.Errorf("probabilities sum to %f, want ~1.0", sum)
	}
}

func TestDoubleHasFourUses(t *testing.T) {
	d := FromNumbers(4, 4)
	count := 0
	for !d.AllUsed() {
		avail := d.Available()
		if len(avail) != 1 || avail[0] != 4 {
			t.Fatalf("Available() = %v, want [4]", avail)
		}
		d = d.UseDie(4)
		count++
		if count > 10 {
			t.Fatal("double did not become all-used after many uses")
		}
	}
	if count != 4 {
		t.Errorf("double consumed %d uses, want 4", count)
	}
}

func TestNonDoubleUsesIndependently(t *testing.T) {
	d := FromNumbers(3, 5)
	if len(d.Available()) != 2 {
		t.Fatalf("Available() = %v, want 2 entries", d.Available())
	}
	d = d.UseDie(3)
	avail := d.Available()
	if len(avail) != 1 || avail[0] != 5 {
		t.Fatalf("Available() after using 3 = %v, want [5]", avail)
	}
	d = d.UseDie(5)
	if !d.AllUsed() {
		t.Error("expected AllUsed() after consuming both dice")
	}
}

func TestRollProducesValuesInRange(t *testing.T) {
	for i := 0; i < 200; i++ {
		d := Roll()
		if d.Die1() < 1 || d.Die1() > 6 || d.Die2() < 1 || d.Die2() > 6 {
			t.Fatalf("Roll() produced out-of-range dice: %v", d)
		}
	}
}
