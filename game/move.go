package game

import "fmt"

// MoveKind tags the Move variant.
type MoveKind uint8

const (
	PawnStep MoveKind = iota
	PawnJump
	WallPlacement
)

// Move is one action by the player to act: a single-square pawn step, a jump
// over the adjacent opponent pawn (straight or diagonal), or a wall
// placement. Moves are plain comparable values; two moves are the same move
// exactly when == says so.
type Move struct {
	Kind MoveKind
	To   Cell // pawn destination; zero for wall placements
	Wall Wall // placed segment; zero for pawn moves
}

func StepTo(to Cell) Move {
	return Move{Kind: PawnStep, To: to}
}

func JumpTo(to Cell) Move {
	return Move{Kind: PawnJump, To: to}
}

func WallMove(w Wall) Move {
	return Move{Kind: WallPlacement, Wall: w}
}

func (m Move) String() string {
	switch m.Kind {
	case PawnStep:
		return fmt.Sprintf("step %s", FormatCell(m.To))
	case PawnJump:
		return fmt.Sprintf("jump %s", FormatCell(m.To))
	case WallPlacement:
		return fmt.Sprintf("wall %s%s", FormatCell(m.Wall.Anchor), m.Wall.Orientation)
	default:
		return fmt.Sprintf("unknown move kind %d", m.Kind)
	}
}
