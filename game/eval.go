package game

import "fmt"

// WinScore is the saturating score for a decided position. Search layers
// may add a small remaining-depth bonus on top to prefer faster wins; the
// bonus stays far below the gap to any undecided score.
const WinScore = 1_000_000

// distanceWeight keeps the path-distance differential dominant: the wall
// differential is at most InitialWalls, so one step of path advantage always
// outweighs any wall advantage.
const distanceWeight = 2*InitialWalls - 4

// Evaluate scores the board from perspective's point of view as the
// path-distance differential, walls-in-hand differential as a low-weight
// tie-break. A decided position saturates to +/-WinScore.
//
// Evaluate panics if either player has no path to its goal: boards reachable
// through the legality filter always keep both paths alive, so an
// unreachable report here means move application broke the invariant.
func Evaluate(b Board, perspective Player) int {
	myDist, ok := b.Distance(perspective)
	if !ok {
		panic(fmt.Sprintf("game: %s has no path to goal on a vetted board", perspective))
	}
	oppDist, ok := b.Distance(perspective.Opponent())
	if !ok {
		panic(fmt.Sprintf("game: %s has no path to goal on a vetted board", perspective.Opponent()))
	}

	if myDist == 0 {
		return WinScore
	}
	if oppDist == 0 {
		return -WinScore
	}

	score := (oppDist - myDist) * distanceWeight
	score += b.wallsLeft[perspective] - b.wallsLeft[perspective.Opponent()]
	return score
}
