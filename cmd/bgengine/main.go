// bgengine is a command-line driver for the Backgammon move generator,
// evaluator, and the alpha-beta and MCTS searches built on top of them.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/yourusername/bgcore/pkg/engine"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "eval":
		cmdEval(args)
	case "move":
		cmdMove(args)
	case "mcts":
		cmdMCTS(args)
	case "selfplay":
		cmdSelfplay(args)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`bgengine - Backgammon move generation and search

Usage: bgengine <command> [options]

Commands:
  eval      Evaluate a position
  move      Find the best move for a dice roll via alpha-beta search
  mcts      Find the best move for a dice roll via Monte Carlo tree search
  selfplay  Play a full game against itself and print the result

Use "bgengine <command> -h" for command-specific help.

Position format:
  A board is specified as printed by Board.String: the active player
  ("A" or "B"), 24 signed point counts, then "bar=a,b" and "home=a,b".
  Pass "start" to use the standard starting position instead.`)
}

func parseBoard(s string) (engine.Board, error) {
	if s == "start" {
		return engine.New(), nil
	}
	return engine.ParseBoard(s)
}

func parseDice(s string) (engine.Dice, error) {
	parts := strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == '-' })
	if len(parts) != 2 {
		return engine.Dice{}, fmt.Errorf("dice should be in the form '3,1' or '3-1'")
	}

	d1, err1 := strconv.Atoi(strings.TrimSpace(parts[0]))
	d2, err2 := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err1 != nil || err2 != nil || d1 < 1 || d1 > 6 || d2 < 1 || d2 > 6 {
		return engine.Dice{}, fmt.Errorf("dice values must be 1-6")
	}

	return engine.FromNumbers(uint8(d1), uint8(d2)), nil
}

func cmdEval(args []string) {
	fs := flag.NewFlagSet("eval", flag.ExitOnError)
	position := fs.String("position", "start", "board position (see 'bgengine help')")
	fs.Parse(args)

	board, err := parseBoard(*position)
	if err != nil {
		log.Fatalf("eval: %v", err)
	}

	fmt.Printf("eval: %.2f\n", engine.Eval(board))
	fmt.Printf("evaluator score: %.2f\n", engine.NewEvaluator().Score(board))
}

func cmdMove(args []string) {
	fs := flag.NewFlagSet("move", flag.ExitOnError)
	position := fs.String("position", "start", "board position (see 'bgengine help')")
	dice := fs.String("dice", "", "dice roll, e.g. '3,1' (required)")
	depth := fs.Int("depth", 2, "search depth in plies")
	fs.Parse(args)

	board, err := parseBoard(*position)
	if err != nil {
		log.Fatalf("move: %v", err)
	}
	d, err := parseDice(*dice)
	if err != nil {
		log.Fatalf("move: %v", err)
	}

	e := engine.NewEngine()
	e.MaxDepth = *depth

	best, value, err := e.BestMoveAlphaBeta(board, d)
	if err != nil {
		log.Fatalf("move: %v", err)
	}
	fmt.Printf("%s (value %.2f)\n", best, value)
}

func cmdMCTS(args []string) {
	fs := flag.NewFlagSet("mcts", flag.ExitOnError)
	position := fs.String("position", "start", "board position (see 'bgengine help')")
	dice := fs.String("dice", "", "dice roll, e.g. '3,1' (required)")
	iterations := fs.Int("iterations", 500, "number of MCTS iterations")
	rolloutDepth := fs.Int("rollout-depth", 8, "plies simulated per rollout")
	fs.Parse(args)

	board, err := parseBoard(*position)
	if err != nil {
		log.Fatalf("mcts: %v", err)
	}
	d, err := parseDice(*dice)
	if err != nil {
		log.Fatalf("mcts: %v", err)
	}

	e := engine.NewEngine()
	best, err := e.BestMoveMCTS(board, d, *iterations, *rolloutDepth)
	if err != nil {
		log.Fatalf("mcts: %v", err)
	}
	fmt.Println(best)
}

func cmdSelfplay(args []string) {
	fs := flag.NewFlagSet("selfplay", flag.ExitOnError)
	depth := fs.Int("depth", 2, "search depth in plies")
	maxTurns := fs.Int("max-turns", 400, "safety cap on turns before aborting")
	fs.Parse(args)

	e := engine.NewEngine()
	e.MaxDepth = *depth

	board := engine.New()
	turns := 0
	for board.GameOutcome().Kind == engine.Ongoing && turns < *maxTurns {
		roll := engine.Roll()
		move, _, err := e.BestMoveAlphaBeta(board, roll)
		if err != nil {
			log.Fatalf("selfplay: %v", err)
		}
		board.ApplyMoveUnchecked(move)
		turns++
	}

	fmt.Printf("finished after %d turns: %s\n", turns, board.GameOutcome())
}
