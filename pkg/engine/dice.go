package engine

import (
	"fmt"
	"math/rand"
)

// Dice holds the two rolled die values together with how many uses remain.
// A double's four uses are tracked with a single counter; a non-double
// tracks one "used" flag per die value. Dice is an immutable value: every
// mutating operation (UseDie) returns a new Dice rather than modifying the
// receiver. The compact bit-packed encoding spec.md §4.2 mentions as an
// internal optimisation is not needed here — a plain struct is cheap enough
// and keeps UseDie's branching obvious.
type Dice struct {
	d1, d2     uint8
	used1      bool
	used2      bool
	doubleUses uint8 // 0..4, meaningful only when d1 == d2
}

// FromNumbers builds a Dice from two freshly rolled (unused) die values.
func FromNumbers(d1, d2 uint8) Dice {
	return Dice{d1: d1, d2: d2}
}

// Roll returns two i.i.d. uniform rolls from {1..6}.
func Roll() Dice {
	return FromNumbers(uint8(rand.Intn(6)+1), uint8(rand.Intn(6)+1))
}

// IsDouble reports whether both dice show the same value.
func (d Dice) IsDouble() bool {
	return d.d1 == d.d2
}

// Die1 returns the first die's value.
func (d Dice) Die1() uint8 { return d.d1 }

// Die2 returns the second die's value.
func (d Dice) Die2() uint8 { return d.d2 }

// Available returns the currently usable die values: 0, 1, or 2 distinct
// values, with a fresh double represented as a single value (its four
// uses are consumed one at a time via UseDie).
func (d Dice) Available() []uint8 {
	if d.IsDouble() {
		if d.doubleUses >= 4 {
			return nil
		}
		return []uint8{d.d1}
	}
	var out []uint8
	if !d.used1 {
		out = append(out, d.d1)
	}
	if !d.used2 {
		out = append(out, d.d2)
	}
	return out
}

// AllUsed reports whether no more die values can be used.
func (d Dice) AllUsed() bool {
	return len(d.Available()) == 0
}

// UseDie returns a new Dice with one use of value v consumed. If d is a
// double whose value equals v, the shared double-use counter is
// incremented; otherwise the matching die's "used" flag is set.
func (d Dice) UseDie(v uint8) Dice {
	if d.IsDouble() {
		d.doubleUses++
		return d
	}
	if v == d.d1 && !d.used1 {
		d.used1 = true
	} else {
		d.used2 = true
	}
	return d
}

func (d Dice) String() string {
	if d.IsDouble() {
		return fmt.Sprintf("Double(%d) used=%d/4", d.d1, d.doubleUses)
	}
	return fmt.Sprintf("Dice(%d,%d) used=(%v,%v)", d.d1, d.d2, d.used1, d.used2)
}

// All enumerates the 21 unordered dice combinations.
func All() []Dice {
	out := make([]Dice, 0, 21)
	for i := uint8(1); i <= 6; i++ {
		for j := i; j <= 6; j++ {
			out = append(out, FromNumbers(i, j))
		}
	}
	return out
}

// WithProbability pairs a dice combination with its occurrence probability:
// doubles occur with probability 1/36, non-doubles with 2/36.
type WithProbability struct {
	Dice        Dice
	Probability float64
}

// AllWithProbability enumerates the 21 unordered dice combinations together
// with their probability of occurring on a fresh roll. The probabilities
// sum to 1.
func AllWithProbability() []WithProbability {
	all := All()
	out := make([]WithProbability, len(all))
	for i, d := range all {
		p := 2.0 / 36.0
		if d.IsDouble() {
			p = 1.0 / 36.0
		}
		out[i] = WithProbability{Dice: d, Probability: p}
	}
	return out
}
