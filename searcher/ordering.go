package searcher

import (
	"github.com/andjf/quoridor/game"

	"golang.org/x/exp/slices"
)

// Move ordering is a correctness-neutral speedup: trying stronger moves
// first makes alpha-beta cutoffs fire earlier. The ordering bands are jumps,
// then pawn steps that strictly shorten the mover's own path, then the
// remaining pawn steps, then wall placements by a cheap proximity proxy for
// how much they lengthen the opponent's path. The sort is stable, so
// generation order survives inside every band and tie-breaks stay
// deterministic.

const (
	orderJump       = 3000
	orderAdvance    = 2000
	orderStep       = 1000
	orderWallBase   = 500
	orderWallWeight = 10
)

// orderMoves returns the same move set sorted best-first. The input slice is
// not modified.
func orderMoves(b game.Board, moves []game.Move) []game.Move {
	if len(moves) <= 1 {
		return moves
	}

	myDist, _ := b.Distance(b.Turn())
	opp := b.Pawn(b.Turn().Opponent())

	scores := make(map[game.Move]int, len(moves))
	for _, m := range moves {
		scores[m] = moveScore(b, m, myDist, opp)
	}

	ordered := make([]game.Move, len(moves))
	copy(ordered, moves)
	slices.SortStableFunc(ordered, func(a, b game.Move) int {
		return scores[b] - scores[a]
	})
	return ordered
}

func moveScore(b game.Board, m game.Move, myDist int, opp game.Cell) int {
	switch m.Kind {
	case game.PawnJump:
		return orderJump
	case game.PawnStep:
		if dist, ok := b.Play(m).Distance(b.Turn()); ok && dist < myDist {
			return orderAdvance
		}
		return orderStep
	default:
		// Walls hugging the opponent's pawn are likeliest to lengthen its
		// path; a full oracle call per candidate would double the legality
		// filter's cost for no search-correctness gain.
		return orderWallBase - orderWallWeight*manhattan(m.Wall.Anchor, opp)
	}
}

func manhattan(a, b game.Cell) int {
	return abs(a.Row-b.Row) + abs(a.Col-b.Col)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
