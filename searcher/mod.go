package searcher

import "github.com/andjf/quoridor/game"

// scoreInf bounds the alpha-beta window; it sits well above any score the
// evaluator or the win bonus can produce.
const scoreInf = 1 << 30

// winBonusCap bounds the remaining-depth bonus added to decided positions so
// the engine prefers the fastest win (and the slowest loss) among equals.
const winBonusCap = 1 << 10

// Agent is anything that can pick a move for the player to act on a board.
type Agent interface {
	FindMove(b game.Board) (game.Move, SearchMetrics, error)
}

// winScore is the terminal score seen from the perspective player, biased
// toward shallow wins: more remaining depth means the win was found closer
// to the root.
func winScore(winner, perspective game.Player, remainingDepth int) int {
	if remainingDepth > winBonusCap {
		remainingDepth = winBonusCap
	}
	if winner == perspective {
		return game.WinScore + remainingDepth
	}
	return -(game.WinScore + remainingDepth)
}
