package engine

import (
	"fmt"
	"strconv"
	"strings"
)

// String renders the board as a single-line, whitespace-separated textual
// form: the active player, the 24 signed point counts, and the bar/home
// counts. It round-trips through ParseBoard and is meant for logs, test
// fixtures, and the command-line tool — not for interoperability with any
// external position-ID format.
func (b Board) String() string {
	var sb strings.Builder
	sb.WriteString(b.activePlayer.String())
	for _, v := range b.points {
		sb.WriteByte(' ')
		sb.WriteString(strconv.Itoa(int(v)))
	}
	fmt.Fprintf(&sb, " bar=%d,%d home=%d,%d",
		b.activeBar, b.opponentBar, b.activeHome, b.opponentHome)
	return sb.String()
}

// ParseBoard parses the textual form produced by Board.String.
func ParseBoard(s string) (Board, error) {
	fields := strings.Fields(s)
	if len(fields) != 27 {
		return Board{}, fmt.Errorf("engine: malformed board string: want 27 fields, got %d", len(fields))
	}

	var b Board
	switch fields[0] {
	case "A":
		b.activePlayer = PlayerA
	case "B":
		b.activePlayer = PlayerB
	default:
		return Board{}, fmt.Errorf("engine: malformed board string: unknown player %q", fields[0])
	}

	for i := 0; i < 24; i++ {
		v, err := strconv.Atoi(fields[i+1])
		if err != nil {
			return Board{}, fmt.Errorf("engine: malformed board string: point %d: %w", i, err)
		}
		b.points[i] = int8(v)
	}

	var bar1, bar2 uint8
	var home1, home2 uint8
	if _, err := fmt.Sscanf(fields[25], "bar=%d,%d", &bar1, &bar2); err != nil {
		return Board{}, fmt.Errorf("engine: malformed board string: %w", err)
	}
	if _, err := fmt.Sscanf(fields[26], "home=%d,%d", &home1, &home2); err != nil {
		return Board{}, fmt.Errorf("engine: malformed board string: %w", err)
	}
	b.activeBar, b.opponentBar = bar1, bar2
	b.activeHome, b.opponentHome = home1, home2

	return b, nil
}
