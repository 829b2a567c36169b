package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func wallMoves(moves []Move) []Move {
	var walls []Move
	for _, m := range moves {
		if m.Kind == WallPlacement {
			walls = append(walls, m)
		}
	}
	return walls
}

func pawnOnly(moves []Move) []Move {
	var pawns []Move
	for _, m := range moves {
		if m.Kind != WallPlacement {
			pawns = append(pawns, m)
		}
	}
	return pawns
}

func TestLegalMovesOpening(t *testing.T) {
	moves := New().LegalMoves()

	require.ElementsMatch(t,
		[]Move{StepTo(Cell{1, 4}), StepTo(Cell{0, 3}), StepTo(Cell{0, 5})},
		pawnOnly(moves),
		"Light can step forward or sideways, not off the board")

	// On an empty board no single wall can sever a path, so every slot of
	// the 8x8 lattice is placeable in both orientations.
	require.Len(t, wallMoves(moves), 2*WallSlots*WallSlots)
}

func TestLegalMovesStraightJump(t *testing.T) {
	b := New()
	b.pawns[Light] = Cell{4, 4}
	b.pawns[Dark] = Cell{5, 4}

	moves := pawnOnly(b.LegalMoves())

	require.Contains(t, moves, JumpTo(Cell{6, 4}), "straight jump over the adjacent opponent")
	require.NotContains(t, moves, StepTo(Cell{5, 4}), "the occupied cell is not a step target")
	require.Contains(t, moves, StepTo(Cell{3, 4}))
	require.Contains(t, moves, StepTo(Cell{4, 3}))
	require.Contains(t, moves, StepTo(Cell{4, 5}))
}

func TestLegalMovesDiagonalJump(t *testing.T) {
	t.Run("straight jump blocked by a wall", func(t *testing.T) {
		b := New()
		b.pawns[Light] = Cell{4, 4}
		b.pawns[Dark] = Cell{5, 4}
		b = b.withWall(Wall{Anchor: Cell{5, 4}, Orientation: Horizontal})

		moves := pawnOnly(b.LegalMoves())
		require.NotContains(t, moves, JumpTo(Cell{6, 4}))
		require.Contains(t, moves, JumpTo(Cell{5, 3}), "left diagonal replaces the blocked straight jump")
		require.Contains(t, moves, JumpTo(Cell{5, 5}), "right diagonal replaces the blocked straight jump")
	})

	t.Run("straight jump blocked by the board edge", func(t *testing.T) {
		b := New()
		b.pawns[Light] = Cell{7, 4}
		b.pawns[Dark] = Cell{8, 4}

		moves := pawnOnly(b.LegalMoves())
		require.NotContains(t, moves, JumpTo(Cell{9, 4}))
		require.Contains(t, moves, JumpTo(Cell{8, 3}))
		require.Contains(t, moves, JumpTo(Cell{8, 5}))
	})

	t.Run("blocked diagonal is excluded", func(t *testing.T) {
		b := New()
		b.pawns[Light] = Cell{7, 4}
		b.pawns[Dark] = Cell{8, 4}
		b = b.withWall(Wall{Anchor: Cell{7, 3}, Orientation: Vertical})

		moves := pawnOnly(b.LegalMoves())
		require.NotContains(t, moves, JumpTo(Cell{8, 3}), "wall beside the opponent blocks the left diagonal")
		require.Contains(t, moves, JumpTo(Cell{8, 5}))
	})
}

func TestLegalMovesWallGeometry(t *testing.T) {
	b := New()
	placed := Wall{Anchor: Cell{4, 4}, Orientation: Horizontal}
	b = b.withWall(placed)

	walls := wallMoves(b.LegalMoves())

	require.NotContains(t, walls, WallMove(placed), "duplicate slot")
	require.NotContains(t, walls, WallMove(Wall{Anchor: Cell{4, 4}, Orientation: Vertical}), "crossing slot")
	require.NotContains(t, walls, WallMove(Wall{Anchor: Cell{4, 3}, Orientation: Horizontal}), "overlapping tail")
	require.NotContains(t, walls, WallMove(Wall{Anchor: Cell{4, 5}, Orientation: Horizontal}), "overlapping tail")
	require.Contains(t, walls, WallMove(Wall{Anchor: Cell{4, 6}, Orientation: Horizontal}), "adjacent non-overlapping slot stays placeable")
	require.Contains(t, walls, WallMove(Wall{Anchor: Cell{3, 4}, Orientation: Vertical}))
}

func TestLegalMovesNoWallsLeft(t *testing.T) {
	b := New()
	b.wallsLeft[Light] = 0

	require.Empty(t, wallMoves(b.LegalMoves()), "no allowance means no wall placements")
	require.NotEmpty(t, pawnOnly(b.LegalMoves()))
}

func TestLegalMovesGoldenRule(t *testing.T) {
	// Dark sits in the corner behind a wall, with the sideways corridor
	// through (8,1)->(8,2) as its only way out. The vertical wall capping
	// that corridor must be withheld; placements elsewhere stay legal, and
	// a merely path-lengthening wall is legal no matter the cost.
	b := New()
	b.pawns[Dark] = Cell{8, 0}
	b = b.withWall(Wall{Anchor: Cell{7, 0}, Orientation: Horizontal})

	sealing := Wall{Anchor: Cell{7, 1}, Orientation: Vertical}
	require.True(t, b.wallFits(sealing), "the sealing wall is geometrically fine")
	_, ok := b.withWall(sealing).Distance(Dark)
	require.False(t, ok, "sealing wall would strand Dark")

	walls := wallMoves(b.LegalMoves())
	require.NotContains(t, walls, WallMove(sealing), "golden rule withholds the sealing wall")
	require.Contains(t, walls, WallMove(Wall{Anchor: Cell{0, 0}, Orientation: Vertical}))
	require.Contains(t, walls, WallMove(Wall{Anchor: Cell{6, 2}, Orientation: Vertical}),
		"a wall that merely lengthens Dark's detour stays legal")
}

func TestLegalMovesAlwaysSafeToApply(t *testing.T) {
	// Every generated move must survive Apply's own vetting.
	b := New()
	b.pawns[Light] = Cell{4, 4}
	b.pawns[Dark] = Cell{5, 4}
	b = b.withWall(Wall{Anchor: Cell{4, 2}, Orientation: Horizontal})

	for _, m := range b.LegalMoves() {
		_, err := b.Apply(m)
		require.NoError(t, err, "move %s", m)
	}
}
