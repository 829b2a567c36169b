package searcher

import "github.com/andjf/quoridor/game"

// PlainSearch is minimax without pruning. It visits the same tree in the
// same order as FindMove, so the chosen move and score must agree with the
// alpha-beta search at equal depth; it exists to cross-check that pruning
// never changes the decision. Far too slow for real play beyond shallow
// depths.
func (m *Minimax) PlainSearch(b game.Board) (game.Move, int, error) {
	if winner, over := b.Winner(); over {
		return game.Move{}, 0, &game.TerminalStateError{Winner: winner, Won: true}
	}
	moves := b.LegalMoves()
	if len(moves) == 0 {
		return game.Move{}, 0, &game.TerminalStateError{}
	}
	moves = orderMoves(b, moves)

	perspective := b.Turn()
	var best game.Move
	bestScore := -scoreInf
	for i, mv := range moves {
		score := m.plain(b.Play(mv), m.depth-1, perspective)
		if i == 0 || score > bestScore {
			bestScore, best = score, mv
		}
	}
	return best, bestScore, nil
}

func (m *Minimax) plain(b game.Board, depth int, perspective game.Player) int {
	if winner, over := b.Winner(); over {
		return winScore(winner, perspective, depth)
	}
	if depth <= 0 {
		return m.evaluate(b, perspective)
	}

	moves := b.LegalMoves()
	if len(moves) == 0 {
		return m.evaluate(b, perspective)
	}
	moves = orderMoves(b, moves)

	if b.Turn() == perspective {
		bestScore := -scoreInf
		for _, mv := range moves {
			if score := m.plain(b.Play(mv), depth-1, perspective); score > bestScore {
				bestScore = score
			}
		}
		return bestScore
	}
	bestScore := scoreInf
	for _, mv := range moves {
		if score := m.plain(b.Play(mv), depth-1, perspective); score < bestScore {
			bestScore = score
		}
	}
	return bestScore
}
