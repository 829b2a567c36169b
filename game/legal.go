package game

// LegalMoves returns every move the player to act may make, in a fixed
// generation order: pawn moves by direction (up, down, left, right), then
// wall placements by anchor row, column, horizontal before vertical. Every
// returned wall placement has already passed the path-existence check, so
// each returned move is safe to hand to Play.
func (b Board) LegalMoves() []Move {
	moves := b.pawnMoves(nil)

	if b.wallsLeft[b.turn] > 0 {
		for r := 0; r < WallSlots; r++ {
			for c := 0; c < WallSlots; c++ {
				for _, o := range [2]Orientation{Horizontal, Vertical} {
					w := Wall{Anchor: Cell{r, c}, Orientation: o}
					if b.wallFits(w) && b.pathsSurvive(w) {
						moves = append(moves, WallMove(w))
					}
				}
			}
		}
	}
	return moves
}

// pawnMoves appends the mover's step and jump moves. A neighbor occupied by
// the opponent yields a straight jump when the far cell is open; when the
// straight jump is blocked by a wall or the board edge, the two diagonal
// cells beside the opponent are offered instead.
func (b Board) pawnMoves(moves []Move) []Move {
	cur := b.pawns[b.turn]
	opp := b.pawns[b.turn.Opponent()]

	for _, d := range directions {
		next := Cell{cur.Row + d.Row, cur.Col + d.Col}
		if !b.CanStep(cur, next) {
			continue
		}
		if next != opp {
			moves = append(moves, StepTo(next))
			continue
		}

		far := Cell{next.Row + d.Row, next.Col + d.Col}
		if b.CanStep(next, far) {
			moves = append(moves, JumpTo(far))
			continue
		}

		for _, diag := range diagonalTargets(d, next) {
			if b.CanStep(next, diag) {
				moves = append(moves, JumpTo(diag))
			}
		}
	}
	return moves
}

// diagonalTargets returns the two cells beside the opponent, perpendicular
// to the approach direction.
func diagonalTargets(d, opp Cell) [2]Cell {
	if d.Row != 0 { // vertical approach: sidestep left or right
		return [2]Cell{{opp.Row, opp.Col - 1}, {opp.Row, opp.Col + 1}}
	}
	return [2]Cell{{opp.Row - 1, opp.Col}, {opp.Row + 1, opp.Col}}
}

// pathsSurvive enforces the golden rule: placing w must leave both players a
// path to their goal rows.
func (b Board) pathsSurvive(w Wall) bool {
	next := b.withWall(w)
	if _, ok := next.Distance(Light); !ok {
		return false
	}
	_, ok := next.Distance(Dark)
	return ok
}
