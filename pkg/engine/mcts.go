package engine

import (
	"fmt"
	"math"
	"math/rand"
)

// ucbExploration is UCB1's exploration coefficient, sqrt(2).
const ucbExploration = math.Sqrt2

// decisionNode is a point in the search tree where a player selects a move
// for a known dice roll. Its value/visits are tracked from the perspective
// of the player to move at this node (board.ActivePlayer()).
type decisionNode struct {
	board    Board
	dice     Dice
	visits   int
	valueSum float64
	moves    []Move
	children []*chanceNode // children[i] corresponds to moves[i]; nil until expanded
}

// chanceNode sits between a chosen move and the dice roll the opponent
// faces next. Its board is already expressed from the next player's
// perspective (ApplyMoveUnchecked flips perspective on every move), so no
// further perspective change happens when descending into it.
type chanceNode struct {
	board    Board
	visits   int
	valueSum float64
	children map[Dice]*decisionNode
}

func newDecisionNode(board Board, dice Dice) *decisionNode {
	moves := LegalMoves(board, dice)
	return &decisionNode{
		board:    board,
		dice:     dice,
		moves:    moves,
		children: make([]*chanceNode, len(moves)),
	}
}

// ucb1 scores a child decision edge for selection from its parent.
func ucb1(childValueSum float64, childVisits, parentVisits int) float64 {
	if childVisits == 0 {
		return math.Inf(1)
	}
	exploit := childValueSum / float64(childVisits)
	explore := ucbExploration * math.Sqrt(math.Log(float64(parentVisits))/float64(childVisits))
	return exploit + explore
}

// BestMoveMCTS runs iterations of Monte Carlo tree search from board with
// dice and returns the move whose edge was visited most often, the
// standard "robust child" choice once search time runs out.
func (e Engine) BestMoveMCTS(board Board, dice Dice, iterations, rolloutDepth int) (Move, error) {
	if iterations <= 0 {
		return Move{}, fmt.Errorf("engine: BestMoveMCTS: iterations must be positive, got %d", iterations)
	}

	// newDecisionNode's moves always include at least the zero-length pass
	// move, even when no half-move is possible, so root.moves is never empty.
	root := newDecisionNode(board, dice)

	for i := 0; i < iterations; i++ {
		runMCTSIteration(root, rolloutDepth)
	}

	bestIdx := 0
	bestVisits := -1
	for i, child := range root.children {
		if child != nil && child.visits > bestVisits {
			bestVisits = child.visits
			bestIdx = i
		}
	}
	return root.moves[bestIdx], nil
}

// runMCTSIteration performs one selection/expansion/simulation/backprop
// pass starting at root, mutating the tree in place.
func runMCTSIteration(root *decisionNode, rolloutDepth int) {
	path := []interface{}{root}

	node := root
	for {
		// Decision traversal: a terminal board has no moves to select or
		// expand among, so stop here and feed its evaluation (from this
		// node's own perspective) straight into backprop.
		if node.board.GameOutcome().Kind != Ongoing {
			backpropagate(path, Eval(node.board))
			return
		}

		idx, expand := selectChild(node)
		if expand {
			child := expandMove(node, idx)
			path = append(path, child)

			d := sampleDice()
			leaf, created := expandDice(child, d)
			path = append(path, leaf)

			value := rolloutValue(leaf, rolloutDepth)
			backpropagate(path, value)
			_ = created
			return
		}

		chanceChild := node.children[idx]
		path = append(path, chanceChild)

		d := sampleDice()
		next, created := expandDice(chanceChild, d)
		path = append(path, next)

		// Chance traversal: same short-circuit as above, once the sampled
		// dice roll lands on an already-terminal board.
		if next.board.GameOutcome().Kind != Ongoing {
			backpropagate(path, Eval(next.board))
			return
		}

		if created {
			value := rolloutValue(next, rolloutDepth)
			backpropagate(path, value)
			return
		}
		node = next
	}
}

// selectChild picks the move index to descend into from a decision node:
// the first never-visited move if any remains, otherwise the UCB1-maximal
// child. expand reports whether idx refers to an unexpanded move.
func selectChild(node *decisionNode) (idx int, expand bool) {
	for i, c := range node.children {
		if c == nil {
			return i, true
		}
	}

	best := -1
	bestScore := math.Inf(-1)
	for i, c := range node.children {
		// c accumulates value from its own perspective, which is flipped
		// relative to node (node's move created c), so negate before
		// comparing candidates from node's point of view.
		score := ucb1(-c.valueSum, c.visits, node.visits)
		if score > bestScore {
			bestScore = score
			best = i
		}
	}
	return best, false
}

// expandMove materializes the chance node reached by playing node.moves[idx].
func expandMove(node *decisionNode, idx int) *chanceNode {
	child := node.board
	child.ApplyMoveUnchecked(node.moves[idx])
	cn := &chanceNode{board: child, children: make(map[Dice]*decisionNode)}
	node.children[idx] = cn
	return cn
}

// expandDice returns the decision node for chanceNode's board with the
// given dice roll, creating it if this is the first time that roll was
// sampled from this chance node.
func expandDice(cn *chanceNode, dice Dice) (*decisionNode, bool) {
	if existing, ok := cn.children[dice]; ok {
		return existing, false
	}
	dn := newDecisionNode(cn.board, dice)
	cn.children[dice] = dn
	return dn, true
}

// sampleDice draws one dice roll according to its natural probability.
func sampleDice() Dice {
	return Roll()
}

// rolloutValue plays out a position with the biased highest-eval policy
// for up to rolloutDepth plies (or until the game ends), then returns the
// resulting evaluation from leaf's own perspective, undoing the perspective
// flip each simulated move introduces.
func rolloutValue(leaf *decisionNode, rolloutDepth int) float64 {
	board := leaf.board
	dice := leaf.dice
	sign := 1.0

	for ply := 0; ply < rolloutDepth; ply++ {
		if board.GameOutcome().Kind != Ongoing {
			break
		}
		m := biasedMove(board, dice)
		board.ApplyMoveUnchecked(m)
		sign = -sign
		dice = Roll()
	}

	return sign * Eval(board)
}

// biasedMove mirrors a random-restart heuristic policy: legal moves are
// sorted ascending by the raw evaluation of the position they leave the
// opponent in (so the first entry is best for the mover), and the move is
// drawn from index floor(u^16 * (len-1)) for u uniform in [0,1) — strongly
// biased toward the best move while still leaving the tail reachable.
func biasedMove(board Board, dice Dice) Move {
	moves := LegalMoves(board, dice)
	type scored struct {
		move Move
		eval float64
	}
	scoredMoves := make([]scored, len(moves))
	for i, m := range moves {
		child := board
		child.ApplyMoveUnchecked(m)
		scoredMoves[i] = scored{move: m, eval: Eval(child)}
	}
	for i := 1; i < len(scoredMoves); i++ {
		v := scoredMoves[i]
		j := i - 1
		for j >= 0 && scoredMoves[j].eval > v.eval {
			scoredMoves[j+1] = scoredMoves[j]
			j--
		}
		scoredMoves[j+1] = v
	}

	u := rand.Float64()
	idx := int(math.Pow(u, 16) * float64(len(scoredMoves)-1))
	return scoredMoves[idx].move
}

// backpropagate updates visit counts and value sums along path. A move
// application (decision node -> its chance-node child) flips perspective,
// so walking back up through a chance node to the decision node above it
// requires negating the running value; a chance node and the decision node
// below it share perspective, so no negation happens there.
func backpropagate(path []interface{}, leafValue float64) {
	value := leafValue
	for i := len(path) - 1; i >= 0; i-- {
		switch n := path[i].(type) {
		case *decisionNode:
			n.visits++
			n.valueSum += value
		case *chanceNode:
			n.visits++
			n.valueSum += value
			value = -value
		}
	}
}
