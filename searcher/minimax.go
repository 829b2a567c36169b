package searcher

import (
	"fmt"
	"sync"

	"github.com/andjf/quoridor/game"

	"github.com/rs/zerolog/log"
)

type Option func(m *Minimax)

// Minimax is a depth-bounded minimax searcher with alpha-beta pruning. The
// zero configuration is a plain fixed-depth search; iterative deepening, a
// transposition table, root parallelism and metrics collection are opt-in.
type Minimax struct {
	depth      int
	goroutines int
	deepening  bool
	table      *table
	evaluate   game.EvalFunc
	metrics    Collector
}

// WithParallelism searches distinct first moves on up to the given number of
// worker goroutines. Each worker explores its own immutable board chain with
// a full alpha-beta window; bounds are not shared across workers, which only
// costs pruning efficiency, never correctness.
func WithParallelism(goroutines int) Option {
	return func(m *Minimax) {
		if goroutines > 1 {
			m.goroutines = goroutines
		}
	}
}

// WithTranspositionTable caches searched positions keyed by board hash. The
// table is cleared on every FindMove call.
func WithTranspositionTable() Option {
	return func(m *Minimax) {
		m.table = newTable()
	}
}

// WithIterativeDeepening walks depth 1..N, feeding each iteration's best
// move to the front of the root ordering for the next.
func WithIterativeDeepening() Option {
	return func(m *Minimax) {
		m.deepening = true
	}
}

func WithEvaluationFn(evaluate game.EvalFunc) Option {
	return func(m *Minimax) {
		if evaluate != nil {
			m.evaluate = evaluate
		}
	}
}

func WithMetrics() Option {
	return func(m *Minimax) {
		m.metrics = NewCollector()
	}
}

func NewMinimax(depth int, options ...Option) *Minimax {
	if depth < 1 {
		panic("searcher: depth must be at least 1")
	}
	m := &Minimax{
		depth:    depth,
		evaluate: game.Evaluate,
		metrics:  NewNoCollector(),
	}
	for _, option := range options {
		option(m)
	}
	return m
}

// BestMove is the minimal library entry point: the best move for player on
// the given board, searched to the given depth with the default
// configuration. The player must be the side to move, since the turn is part
// of the board state.
func BestMove(b game.Board, player game.Player, depth int) (game.Move, error) {
	if player != b.Turn() {
		return game.Move{}, fmt.Errorf("best move: %s is not the player to act", player)
	}
	move, _, err := NewMinimax(depth).FindMove(b)
	return move, err
}

type rootResult struct {
	move  game.Move
	score int
	index int
}

// FindMove returns the best move for the player to act, the score it
// achieved from that player's perspective, and search metrics. Ties between
// equally scored moves go to the first in ordering, so results are
// reproducible. A board with no legal moves yields a TerminalStateError.
func (m *Minimax) FindMove(b game.Board) (game.Move, SearchMetrics, error) {
	if winner, over := b.Winner(); over {
		return game.Move{}, SearchMetrics{}, &game.TerminalStateError{Winner: winner, Won: true}
	}
	moves := b.LegalMoves()
	if len(moves) == 0 {
		return game.Move{}, SearchMetrics{}, &game.TerminalStateError{}
	}

	m.metrics.Start()
	if m.table != nil {
		m.table.reset()
	}
	moves = orderMoves(b, moves)

	startDepth := m.depth
	if m.deepening {
		startDepth = 1
	}

	var best rootResult
	for depth := startDepth; depth <= m.depth; depth++ {
		best = m.searchRoot(b, moves, depth)
		moves = promote(moves, best.index)
		best.index = 0
	}

	metrics := m.metrics.Complete(best.score, m.depth)
	log.Debug().
		Stringer("player", b.Turn()).
		Stringer("move", best.move).
		Int("score", best.score).
		Int64("nodes", metrics.Nodes).
		Int64("cutoffs", metrics.Cutoffs).
		Dur("duration", metrics.Duration).
		Msg("search complete")
	return best.move, metrics, nil
}

func (m *Minimax) searchRoot(b game.Board, moves []game.Move, depth int) rootResult {
	if m.goroutines > 1 {
		return m.searchRootParallel(b, moves, depth)
	}

	perspective := b.Turn()
	alpha := -scoreInf
	best := rootResult{index: -1, score: -scoreInf}
	for i, mv := range moves {
		score := m.alphabeta(b.Play(mv), depth-1, alpha, scoreInf, perspective)
		if best.index < 0 || score > best.score {
			best = rootResult{move: mv, score: score, index: i}
		}
		if best.score > alpha {
			alpha = best.score
		}
	}
	return best
}

// searchRootParallel fans the first moves out to workers. Every worker
// searches with the full window; the merge picks the best score and breaks
// ties by generation index, matching the sequential tie-break.
func (m *Minimax) searchRootParallel(b game.Board, moves []game.Move, depth int) rootResult {
	perspective := b.Turn()
	scores := make([]int, len(moves))

	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < m.goroutines; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				scores[i] = m.alphabeta(b.Play(moves[i]), depth-1, -scoreInf, scoreInf, perspective)
			}
		}()
	}
	for i := range moves {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	best := rootResult{move: moves[0], score: scores[0], index: 0}
	for i := 1; i < len(scores); i++ {
		if scores[i] > best.score {
			best = rootResult{move: moves[i], score: scores[i], index: i}
		}
	}
	return best
}

func (m *Minimax) alphabeta(b game.Board, depth, alpha, beta int, perspective game.Player) int {
	m.metrics.AddNode()

	if winner, over := b.Winner(); over {
		return winScore(winner, perspective, depth)
	}
	if depth <= 0 {
		m.metrics.AddLeaf()
		return m.evaluate(b, perspective)
	}

	var key uint64
	var ttMove game.Move
	hasTTMove := false
	origAlpha, origBeta := alpha, beta
	if m.table != nil {
		key = b.Hash()
		if entry, ok := m.table.lookup(key); ok {
			ttMove, hasTTMove = entry.move, true
			if entry.depth >= depth {
				m.metrics.AddTableHit()
				switch entry.kind {
				case exactBound:
					return entry.score
				case lowerBound:
					if entry.score > alpha {
						alpha = entry.score
					}
				case upperBound:
					if entry.score < beta {
						beta = entry.score
					}
				}
				if alpha >= beta {
					return entry.score
				}
			}
		}
	}

	moves := b.LegalMoves()
	if len(moves) == 0 {
		// A boxed-in pawn with no walls in hand has nowhere to go; score the
		// position as a leaf rather than invent a move for it.
		m.metrics.AddLeaf()
		return m.evaluate(b, perspective)
	}
	moves = orderMoves(b, moves)
	if hasTTMove {
		moves = promoteMove(moves, ttMove)
	}

	var bestMove game.Move
	var bestScore int
	if b.Turn() == perspective {
		bestScore = -scoreInf
		for _, mv := range moves {
			score := m.alphabeta(b.Play(mv), depth-1, alpha, beta, perspective)
			if score > bestScore {
				bestScore, bestMove = score, mv
			}
			if bestScore > alpha {
				alpha = bestScore
			}
			if alpha >= beta {
				m.metrics.AddCutoff()
				break
			}
		}
	} else {
		bestScore = scoreInf
		for _, mv := range moves {
			score := m.alphabeta(b.Play(mv), depth-1, alpha, beta, perspective)
			if score < bestScore {
				bestScore, bestMove = score, mv
			}
			if bestScore < beta {
				beta = bestScore
			}
			if alpha >= beta {
				m.metrics.AddCutoff()
				break
			}
		}
	}

	if m.table != nil {
		kind := exactBound
		if bestScore <= origAlpha {
			kind = upperBound
		} else if bestScore >= origBeta {
			kind = lowerBound
		}
		m.table.store(key, tableEntry{score: bestScore, depth: depth, kind: kind, move: bestMove})
	}
	return bestScore
}

// promote moves the element at index to the front, keeping the relative
// order of everything else.
func promote(moves []game.Move, index int) []game.Move {
	if index <= 0 {
		return moves
	}
	mv := moves[index]
	copy(moves[1:index+1], moves[:index])
	moves[0] = mv
	return moves
}

func promoteMove(moves []game.Move, mv game.Move) []game.Move {
	for i, candidate := range moves {
		if candidate == mv {
			return promote(moves, i)
		}
	}
	return moves
}
