package engine

import (
	"fmt"

	"github.com/yourusername/bgcore/internal/tinyvec"
)

// HalfMove is a single die's worth of movement: from one position to
// another. Legal shapes are Point(i)->Point(i+die), Bar->Point(die-1), and
// Point(i)->Home (bear-off).
type HalfMove struct {
	From, To Position
}

func (hm HalfMove) String() string {
	return fmt.Sprintf("%s->%s", hm.From, hm.To)
}

// Equal reports whether two half-moves describe the same movement.
func (hm HalfMove) Equal(other HalfMove) bool {
	return hm.From == other.From && hm.To == other.To
}

// Move is an ordered sequence of 0..4 half-moves constituting one ply (zero
// only for the forced pass LegalMoves returns when nothing can move). Two
// moves are unordered-equal if they share the same multiset of half-moves;
// the generator prunes duplicates across permutations using that relation.
type Move struct {
	halfMoves tinyvec.HalfMoves[HalfMove]
}

// AddHalfMove appends a half-move to the sequence.
func (m *Move) AddHalfMove(hm HalfMove) {
	m.halfMoves.Push(hm)
}

// Len returns the number of half-moves in the sequence.
func (m Move) Len() int {
	return m.halfMoves.Len()
}

// HalfMoveAt returns the half-move at index i.
func (m Move) HalfMoveAt(i int) HalfMove {
	return m.halfMoves.At(i)
}

// HalfMoves returns the half-moves as a slice.
func (m Move) HalfMoves() []HalfMove {
	return m.halfMoves.Slice()
}

// UnorderedEqual reports whether two moves contain the same multiset of
// half-moves, regardless of order.
func (m Move) UnorderedEqual(other Move) bool {
	if m.Len() != other.Len() {
		return false
	}
	var used uint8
	for _, hm := range m.HalfMoves() {
		found := false
		for j, ohm := range other.HalfMoves() {
			if used&(1<<uint(j)) != 0 {
				continue
			}
			if hm.Equal(ohm) {
				used |= 1 << uint(j)
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

func (m Move) String() string {
	s := "Move:"
	for i, hm := range m.HalfMoves() {
		if i > 0 {
			s += ","
		}
		s += " " + hm.String()
	}
	return s
}

// DiceUse pairs a half-move with the Dice state remaining after using it.
type DiceUse struct {
	HalfMove HalfMove
	Dice     Dice
}

// LegalHalfMoves enumerates every (half-move, dice-after-use) pair that is
// legal in one ply from board with dice. See spec.md §4.3.
func LegalHalfMoves(board Board, dice Dice) []DiceUse {
	var out tinyvec.Candidates[DiceUse]
	available := dice.Available()

	if board.ActiveBar() > 0 {
		for _, d := range available {
			entry := int(d) - 1
			if board.CountAt(entry) >= -1 {
				out.Push(DiceUse{
					HalfMove: HalfMove{From: Bar, To: Point(entry)},
					Dice:     dice.UseDie(d),
				})
			}
		}
		return out.Slice()
	}

	for _, d := range available {
		die := int(d)
		for i := 0; i <= 23-die; i++ {
			if board.CountAt(i) > 0 && board.CountAt(i+die) >= -1 {
				out.Push(DiceUse{
					HalfMove: HalfMove{From: Point(i), To: Point(i + die)},
					Dice:     dice.UseDie(d),
				})
			}
		}
	}

	if board.CanBearOff() {
		any := false
		for _, d := range available {
			die := int(d)
			from := 24 - die
			if board.CountAt(from) > 0 {
				out.Push(DiceUse{
					HalfMove: HalfMove{From: Point(from), To: Home},
					Dice:     dice.UseDie(d),
				})
				any = true
			}
		}
		if !any {
			for _, d := range available {
				die := int(d)
				k := 6 - die
				for p := 18 + k; p < 24; p++ {
					if board.CountAt(p) > 0 {
						out.Push(DiceUse{
							HalfMove: HalfMove{From: Point(p), To: Home},
							Dice:     dice.UseDie(d),
						})
					}
				}
			}
		}
	}

	return out.Slice()
}

// ApplyHalfMoveUnchecked applies a half-move that is assumed legal. Moving
// from HOME or to BAR is a programmer error and panics; landing on a point
// held by two or more opponent checkers is unreachable because the
// generator never produces such a half-move.
func (b *Board) ApplyHalfMoveUnchecked(hm HalfMove) {
	switch {
	case hm.From.IsBar():
		b.activeBar--
	case hm.From.IsHome():
		panic("engine: cannot move from HOME")
	default:
		i, _ := hm.From.IsPoint()
		b.points[i]--
	}

	switch {
	case hm.To.IsHome():
		b.activeHome++
	case hm.To.IsBar():
		panic("engine: cannot move to BAR")
	default:
		j, _ := hm.To.IsPoint()
		count := b.points[j]
		if count >= -1 {
			if count == -1 {
				b.opponentBar++
				count = 0
			}
			b.points[j] = count + 1
		}
	}
}

// ApplyMoveUnchecked applies every half-move in m in sequence, then
// switches perspective to the other player.
func (b *Board) ApplyMoveUnchecked(m Move) {
	for _, hm := range m.HalfMoves() {
		b.ApplyHalfMoveUnchecked(hm)
	}
	b.SwitchPlayer()
}

// frontierEntry is one in-flight partial move during the breadth-wise
// expansion used by LegalMoves (spec.md §4.4).
type frontierEntry struct {
	dice  Dice
	board Board
	move  Move
}

// LegalMoves enumerates every maximum-length full move available from board
// with dice, deduplicated by unordered-move equality. Per the
// must-use-maximum-dice rule, every returned Move has the same length: the
// maximum number of half-moves legally achievable from the position. If no
// half-move at all is possible, the result is a single empty Move.
func LegalMoves(board Board, dice Dice) []Move {
	frontier := []frontierEntry{{dice: dice, board: board}}
	var results []Move
	bestLen := -1

	for len(frontier) > 0 {
		var next []frontierEntry

		for _, entry := range frontier {
			n := entry.move.Len()
			switch {
			case n > bestLen:
				bestLen = n
				results = append(results[:0], entry.move)
			case n == bestLen:
				results = append(results, entry.move)
			}

			if entry.dice.AllUsed() {
				continue
			}

			for _, use := range LegalHalfMoves(entry.board, entry.dice) {
				childBoard := entry.board
				childBoard.ApplyHalfMoveUnchecked(use.HalfMove)

				var childMove Move
				childMove.halfMoves = entry.move.halfMoves
				childMove.AddHalfMove(use.HalfMove)

				next = append(next, frontierEntry{
					dice:  use.Dice,
					board: childBoard,
					move:  childMove,
				})
			}
		}

		frontier = dedupFrontier(next)
	}

	return results
}

// dedupFrontier drops any entry whose partial move is unordered-equal to an
// already-kept entry's partial move, per spec.md §4.4 step 2b. Dedup
// happens at every frontier layer, not just at the leaves, so that
// equivalent partials don't each spawn their own duplicate subtrees.
func dedupFrontier(entries []frontierEntry) []frontierEntry {
	kept := entries[:0]
	for _, e := range entries {
		dup := false
		for _, k := range kept {
			if e.move.UnorderedEqual(k.move) {
				dup = true
				break
			}
		}
		if !dup {
			kept = append(kept, e)
		}
	}
	return kept
}
