package searcher

import (
	"github.com/andjf/quoridor/game"

	"golang.org/x/exp/rand"
)

// Random picks uniformly among the legal moves. It is the baseline opponent
// for experiments and a cheap smoke-test agent.
type Random struct {
	rng *rand.Rand
}

func NewRandom(seed uint64) *Random {
	return &Random{rng: rand.New(rand.NewSource(seed))}
}

func (r *Random) FindMove(b game.Board) (game.Move, SearchMetrics, error) {
	if winner, over := b.Winner(); over {
		return game.Move{}, SearchMetrics{}, &game.TerminalStateError{Winner: winner, Won: true}
	}
	moves := b.LegalMoves()
	if len(moves) == 0 {
		return game.Move{}, SearchMetrics{}, &game.TerminalStateError{}
	}
	return moves[r.rng.Intn(len(moves))], SearchMetrics{}, nil
}
