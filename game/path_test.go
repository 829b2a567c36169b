package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDistanceOpenBoard(t *testing.T) {
	b := New()

	dist, ok := b.Distance(Light)
	require.True(t, ok)
	require.Equal(t, 8, dist, "straight run to the far row")

	dist, ok = b.Distance(Dark)
	require.True(t, ok)
	require.Equal(t, 8, dist)
}

func TestDistanceZeroOnGoalRow(t *testing.T) {
	b := New()
	b.pawns[Light] = Cell{8, 0}

	dist, ok := b.Distance(Light)
	require.True(t, ok)
	require.Zero(t, dist, "distance is 0 exactly when the pawn stands on its goal row")

	b.pawns[Light] = Cell{7, 0}
	dist, ok = b.Distance(Light)
	require.True(t, ok)
	require.Equal(t, 1, dist)
}

func TestDistanceIgnoresOpponentPawn(t *testing.T) {
	b := New()
	b.pawns[Dark] = Cell{1, 4} // directly in Light's lane

	dist, ok := b.Distance(Light)
	require.True(t, ok)
	require.Equal(t, 8, dist, "opponent pawns are not obstacles for the distance metric")
}

func TestDistanceDetours(t *testing.T) {
	b := New()
	wall := Wall{Anchor: Cell{0, 3}, Orientation: Horizontal}
	b = b.withWall(wall)

	dist, ok := b.Distance(Light)
	require.True(t, ok)
	require.Equal(t, 9, dist, "a wall directly ahead forces a one-step detour")
}

func TestDistanceMonotonicInWalls(t *testing.T) {
	// Walls only ever lengthen a path. Build up a zig-zag in front of Light
	// and check the distance never decreases.
	b := New()
	walls := []Wall{
		{Anchor: Cell{1, 3}, Orientation: Horizontal},
		{Anchor: Cell{1, 5}, Orientation: Horizontal},
		{Anchor: Cell{2, 1}, Orientation: Horizontal},
		{Anchor: Cell{3, 6}, Orientation: Horizontal},
		{Anchor: Cell{2, 4}, Orientation: Vertical},
	}

	prev, ok := b.Distance(Light)
	require.True(t, ok)
	for _, w := range walls {
		require.True(t, b.wallFits(w), "test walls must not overlap")
		b = b.withWall(w)
		dist, ok := b.Distance(Light)
		require.True(t, ok)
		require.GreaterOrEqual(t, dist, prev, "adding wall %v must not shorten the path", w)
		prev = dist
	}
}

func TestDistanceUnreachable(t *testing.T) {
	// Seal the boundary between rows 4 and 5 across all nine columns. The
	// final two segments overlap, so this cannot arise through legal play;
	// the oracle still has to answer.
	b := New()
	for _, c := range []int{0, 2, 4, 6, 7} {
		b = b.withWall(Wall{Anchor: Cell{4, c}, Orientation: Horizontal})
	}

	_, ok := b.Distance(Light)
	require.False(t, ok, "Light cannot cross the sealed boundary")
	_, ok = b.Distance(Dark)
	require.False(t, ok, "Dark cannot cross the sealed boundary")
}

func TestDistanceThroughCorridor(t *testing.T) {
	// Leave a single crossing into row 0 at column 8 and make sure the
	// oracle threads it.
	b := New()
	for _, c := range []int{0, 2, 4, 6} {
		b = b.withWall(Wall{Anchor: Cell{0, c}, Orientation: Horizontal})
	}

	dist, ok := b.Distance(Dark)
	require.True(t, ok)
	require.Equal(t, 12, dist, "7 rows up, 4 columns over, then the crossing at column 8")

	b.pawns[Dark] = Cell{1, 0}
	dist, ok = b.Distance(Dark)
	require.True(t, ok)
	require.Equal(t, 9, dist, "8 sideways steps plus the crossing")
}
