// Package engine implements the Backgammon board representation, legal-move
// generator, evaluator, and the alpha-beta and MCTS searches built on top of
// it.
package engine

import (
	"fmt"

	"github.com/yourusername/bgcore/internal/boardkey"
)

// Player is one of the two sides of a game.
type Player uint8

const (
	PlayerA Player = iota
	PlayerB
)

// Opposite returns the other player.
func (p Player) Opposite() Player {
	if p == PlayerA {
		return PlayerB
	}
	return PlayerA
}

func (p Player) String() string {
	if p == PlayerA {
		return "A"
	}
	return "B"
}

// posKind tags the three shapes a Position can take.
type posKind uint8

const (
	posBar posKind = iota
	posHome
	posPoint
)

// Position is a location a checker can occupy: the bar, home (borne off),
// or one of the 24 numbered points.
type Position struct {
	kind  posKind
	point int8 // valid only when kind == posPoint
}

// Bar is the position representing the bar.
var Bar = Position{kind: posBar}

// Home is the position representing the borne-off pile.
var Home = Position{kind: posHome}

// Point returns the position for board point i (0..23).
func Point(i int) Position {
	return Position{kind: posPoint, point: int8(i)}
}

// IsBar reports whether the position is the bar.
func (p Position) IsBar() bool { return p.kind == posBar }

// IsHome reports whether the position is home (borne off).
func (p Position) IsHome() bool { return p.kind == posHome }

// IsPoint reports whether the position is one of the 24 numbered points,
// and if so, which one.
func (p Position) IsPoint() (int, bool) {
	if p.kind == posPoint {
		return int(p.point), true
	}
	return 0, false
}

func (p Position) String() string {
	switch p.kind {
	case posBar:
		return "BAR"
	case posHome:
		return "HOME"
	default:
		return fmt.Sprintf("%d", p.point)
	}
}

// Board represents a Backgammon position from the active player's
// perspective: positive counts on points[i] belong to the active player,
// negative counts belong to the opponent. The active player's direction of
// travel is from point 0 toward point 23; bear-off happens from points
// 18..23.
type Board struct {
	points       [24]int8
	activeBar    uint8
	opponentBar  uint8
	activeHome   uint8
	opponentHome uint8
	activePlayer Player
}

// New returns the standard Backgammon starting position, active = PlayerA.
func New() Board {
	var b Board
	b.points[0] = 2
	b.points[11] = 5
	b.points[16] = 3
	b.points[18] = 5
	b.points[23] = -2
	b.points[12] = -5
	b.points[7] = -3
	b.points[5] = -5
	b.activePlayer = PlayerA
	return b
}

// Empty returns a board with no checkers on it; used only for tests.
func Empty() Board {
	return Board{}
}

// CountAt returns the signed checker count at point i.
func (b Board) CountAt(i int) int8 {
	return b.points[i]
}

// SetPoint sets the signed checker count at point i directly.
func (b *Board) SetPoint(i int, v int8) {
	b.points[i] = v
}

// SetActivePoint sets the number of active-player checkers at point i.
func (b *Board) SetActivePoint(i int, n uint8) {
	b.points[i] = int8(n)
}

// SetOpponentPoint sets the number of opponent checkers at point i.
func (b *Board) SetOpponentPoint(i int, n uint8) {
	b.points[i] = -int8(n)
}

// ActiveBar returns the active player's checker count on the bar.
func (b Board) ActiveBar() uint8 { return b.activeBar }

// OpponentBar returns the opponent's checker count on the bar.
func (b Board) OpponentBar() uint8 { return b.opponentBar }

// ActiveHome returns the active player's borne-off count.
func (b Board) ActiveHome() uint8 { return b.activeHome }

// OpponentHome returns the opponent's borne-off count.
func (b Board) OpponentHome() uint8 { return b.opponentHome }

// SetActiveBar sets the active player's bar count.
func (b *Board) SetActiveBar(v uint8) { b.activeBar = v }

// SetOpponentBar sets the opponent's bar count.
func (b *Board) SetOpponentBar(v uint8) { b.opponentBar = v }

// SetActiveHome sets the active player's borne-off count.
func (b *Board) SetActiveHome(v uint8) { b.activeHome = v }

// SetOpponentHome sets the opponent's borne-off count.
func (b *Board) SetOpponentHome(v uint8) { b.opponentHome = v }

// ActivePlayer returns the identity of the player to move.
func (b Board) ActivePlayer() Player { return b.activePlayer }

// SetActivePlayer overrides the active player without touching the board
// layout. Used only to construct test fixtures.
func (b *Board) SetActivePlayer(p Player) { b.activePlayer = p }

// SwitchPlayer inverts the board to the other player's perspective:
// the 24 points are reversed and negated, the bar and home counts swap,
// and the active player flips. Applying it twice is the identity.
func (b *Board) SwitchPlayer() {
	var reversed [24]int8
	for i := 0; i < 24; i++ {
		reversed[i] = -b.points[23-i]
	}
	b.points = reversed
	b.activeBar, b.opponentBar = b.opponentBar, b.activeBar
	b.activeHome, b.opponentHome = b.opponentHome, b.activeHome
	b.activePlayer = b.activePlayer.Opposite()
}

// CanBearOff reports whether the active player's bar is empty and all of
// its checkers are in the home board (points 18..23) or already borne off.
func (b Board) CanBearOff() bool {
	if b.activeBar > 0 {
		return false
	}
	var sum int
	for i := 18; i < 24; i++ {
		if v := b.points[i]; v > 0 {
			sum += int(v)
		}
	}
	return sum+int(b.activeHome) == 15
}

// outcomeKind distinguishes the terminal categories a Board can classify
// to.
type outcomeKind uint8

const (
	Ongoing outcomeKind = iota
	Win
	Gammon
	Backgammon
)

// Outcome classifies a Board's terminal status.
type Outcome struct {
	Kind   outcomeKind
	Winner Player // meaningful only when Kind != Ongoing
}

func (o Outcome) String() string {
	switch o.Kind {
	case Ongoing:
		return "Ongoing"
	case Win:
		return fmt.Sprintf("Win(%s)", o.Winner)
	case Gammon:
		return fmt.Sprintf("Gammon(%s)", o.Winner)
	default:
		return fmt.Sprintf("Backgammon(%s)", o.Winner)
	}
}

// hasCheckerInRange reports whether any point in [lo, hi) holds a checker
// belonging to the side indicated by active (true = active player, false =
// opponent).
func (b Board) hasCheckerInRange(lo, hi int, active bool) bool {
	for i := lo; i < hi; i++ {
		v := b.points[i]
		if active && v > 0 {
			return true
		}
		if !active && v < 0 {
			return true
		}
	}
	return false
}

// GameOutcome classifies the board per spec §3: a win is a gammon if the
// loser has not borne off a single checker and has no exposure on the bar
// or in the winner's home board; it escalates to a backgammon if the loser
// additionally has a checker on the bar or in the winner's home board.
func (b Board) GameOutcome() Outcome {
	switch {
	case b.activeHome == 15 && b.opponentHome == 0:
		if b.opponentBar > 0 || b.hasCheckerInRange(18, 24, false) {
			return Outcome{Kind: Backgammon, Winner: b.activePlayer}
		}
		return Outcome{Kind: Gammon, Winner: b.activePlayer}
	case b.activeHome == 15:
		return Outcome{Kind: Win, Winner: b.activePlayer}
	case b.opponentHome == 15 && b.activeHome == 0:
		if b.activeBar > 0 || b.hasCheckerInRange(0, 6, true) {
			return Outcome{Kind: Backgammon, Winner: b.activePlayer.Opposite()}
		}
		return Outcome{Kind: Gammon, Winner: b.activePlayer.Opposite()}
	case b.opponentHome == 15:
		return Outcome{Kind: Win, Winner: b.activePlayer.Opposite()}
	default:
		return Outcome{Kind: Ongoing}
	}
}

// Equal reports whether two boards are structurally identical.
func (b Board) Equal(other Board) bool {
	return b.points == other.points &&
		b.activeBar == other.activeBar &&
		b.opponentBar == other.opponentBar &&
		b.activeHome == other.activeHome &&
		b.opponentHome == other.opponentHome &&
		b.activePlayer == other.activePlayer
}

// key encodes the board for use as a transposition-cache key.
func (b Board) key() boardkey.Key {
	return boardkey.Encode(b.points, b.activeBar, b.opponentBar, b.activeHome, b.opponentHome)
}
