package engine

import (
	"fmt"
	"math"
	"runtime"
	"sync"
)

// Engine bundles the evaluator and search parameters used by the
// alpha-beta and MCTS searches; it holds no position state of its own and
// is safe to share across concurrent searches.
type Engine struct {
	Eval     Evaluator
	MaxDepth int // ply depth searched before falling back to static eval
	Workers  int // root-move parallelism; 0 means runtime.GOMAXPROCS(0)

	// UseCapturedValue enables capturedValue as a move-ordering tiebreaker
	// ahead of the evaluation itself. Off by default: in practice the pip
	// count already prices in a capture once the resulting position is
	// evaluated, so ordering by it first rarely pays for the extra work.
	UseCapturedValue bool
}

// NewEngine returns an Engine configured with sensible defaults: depth 2
// and one evaluation per core.
func NewEngine() Engine {
	return Engine{
		Eval:     NewEvaluator(),
		MaxDepth: 2,
	}
}

func (e Engine) workers() int {
	if e.Workers > 0 {
		return e.Workers
	}
	return runtime.GOMAXPROCS(0)
}

// rootResult pairs a candidate root move with its searched value.
type rootResult struct {
	index int
	move  Move
	value float64
}

// BestMoveAlphaBeta searches every legal move in board with dice to depth
// e.MaxDepth using expectimax over the dice roll interleaved with
// alpha-beta pruning on the decision plies, and returns the move with the
// highest value together with that value. Root moves are evaluated
// concurrently across e.workers() goroutines, each owning its own
// transposition cache for the duration of that one root move's search.
func (e Engine) BestMoveAlphaBeta(board Board, dice Dice) (Move, float64, error) {
	if e.MaxDepth <= 0 {
		return Move{}, 0, fmt.Errorf("engine: BestMoveAlphaBeta: MaxDepth must be positive, got %d", e.MaxDepth)
	}

	// LegalMoves always yields at least the zero-length pass move, even
	// when no half-move is possible, so moves is never empty here.
	moves := LegalMoves(board, dice)

	jobs := make(chan int)
	results := make(chan rootResult, len(moves))
	var wg sync.WaitGroup

	workers := e.workers()
	if workers > len(moves) {
		workers = len(moves)
	}
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				// Each root move owns its transposition cache exclusively:
				// sharing one cache across concurrently-searched root moves
				// would let a fail-high bound cached under one move's
				// alpha/beta window answer a lookup made under another
				// move's window.
				cache := newSearchCache(1 << 16)
				child := board
				child.ApplyMoveUnchecked(moves[i])
				value := -e.expected(child, e.MaxDepth-1, -math.Inf(1), math.Inf(1), cache)
				results <- rootResult{index: i, move: moves[i], value: value}
			}
		}()
	}

	go func() {
		for i := range moves {
			jobs <- i
		}
		close(jobs)
	}()

	go func() {
		wg.Wait()
		close(results)
	}()

	collected := make([]rootResult, len(moves))
	for r := range results {
		collected[r.index] = r
	}

	// Reduce in move-generation order with a strict >, so that when two
	// root moves tie for the best value, the first-encountered (lowest
	// index) one wins regardless of goroutine scheduling.
	best := collected[0]
	for _, r := range collected[1:] {
		if r.value > best.value {
			best = r
		}
	}

	return best.move, best.value, nil
}

// expected averages alphaBeta's value for board over every possible dice
// roll, weighted by the roll's probability. Per-roll searches reuse the
// same incoming alpha/beta window rather than tightening it as branches
// are resolved: the window is not threaded across the 21 outcomes, so this
// step is not a sound expectimax bound, only a practical approximation.
func (e Engine) expected(board Board, depth int, alpha, beta float64, cache *searchCache) float64 {
	if board.GameOutcome().Kind != Ongoing || depth <= 0 {
		return e.leafValue(board, depth)
	}

	var sum float64
	for _, wp := range AllWithProbability() {
		sum += wp.Probability * e.alphaBeta(board, wp.Dice, depth, alpha, beta, cache)
	}
	return sum
}

// alphaBeta returns the minimax value of board to move with dice, searched
// to the given remaining depth, pruning with the classic alpha-beta window.
func (e Engine) alphaBeta(board Board, dice Dice, depth int, alpha, beta float64, cache *searchCache) float64 {
	if board.GameOutcome().Kind != Ongoing || depth <= 0 {
		return e.leafValue(board, depth)
	}

	key := board.key()
	ctx := searchContext(dice, depth)
	value, slot, hit := cache.lookup(key, ctx)
	if hit {
		return value
	}

	moves := LegalMoves(board, dice)
	if e.UseCapturedValue {
		orderByCapturedValue(board, moves)
	}

	best := math.Inf(-1)
	for _, m := range moves {
		child := board
		child.ApplyMoveUnchecked(m)
		value := -e.expected(child, depth-1, -beta, -alpha, cache)
		if value > best {
			best = value
		}
		if best > alpha {
			alpha = best
		}
		if alpha >= beta {
			break
		}
	}

	cache.store(slot, key, ctx, best)
	return best
}

// leafValue returns the static evaluation of board, used when the search
// has bottomed out at depth 0 or reached a terminal position.
func (e Engine) leafValue(board Board, depth int) float64 {
	if depth <= 0 {
		return e.Eval.Score(board)
	}
	return Eval(board)
}

// orderByCapturedValue sorts moves in place, highest capturedValue first,
// as a move-ordering heuristic to tighten alpha-beta pruning sooner.
func orderByCapturedValue(board Board, moves []Move) {
	for i := 1; i < len(moves); i++ {
		m := moves[i]
		v := capturedValue(board, m)
		j := i - 1
		for j >= 0 && capturedValue(board, moves[j]) < v {
			moves[j+1] = moves[j]
			j--
		}
		moves[j+1] = m
	}
}
