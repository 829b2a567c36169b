package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFormatCell(t *testing.T) {
	require.Equal(t, "e9", FormatCell(Cell{0, 4}), "Light's starting square")
	require.Equal(t, "e1", FormatCell(Cell{8, 4}), "Dark's starting square")
	require.Equal(t, "a1", FormatCell(Cell{8, 0}))
	require.Equal(t, "i9", FormatCell(Cell{0, 8}))
}

func TestParseCell(t *testing.T) {
	for _, s := range []string{"", "e", "e0", "e10", "j5", "5e"} {
		_, err := ParseCell(s)
		require.Error(t, err, "input %q", s)
	}

	c, err := ParseCell("a9")
	require.NoError(t, err)
	require.Equal(t, Cell{0, 0}, c)
}

func TestMoveNotationRoundTrip(t *testing.T) {
	// Every legal move on each board must survive encode/decode unchanged,
	// including the step-versus-jump distinction that the bare destination
	// notation leaves to board context.
	jumpBoard := New()
	jumpBoard.pawns[Light] = Cell{4, 4}
	jumpBoard.pawns[Dark] = Cell{5, 4}

	diagBoard := New()
	diagBoard.pawns[Light] = Cell{7, 4}
	diagBoard.pawns[Dark] = Cell{8, 4}

	boards := map[string]Board{
		"opening":       New(),
		"straight jump": jumpBoard,
		"diagonal jump": diagBoard,
	}

	for name, b := range boards {
		t.Run(name, func(t *testing.T) {
			kinds := map[MoveKind]bool{}
			for _, m := range b.LegalMoves() {
				kinds[m.Kind] = true
				got, err := ParseMove(b, FormatMove(m))
				require.NoError(t, err, "move %s", m)
				require.Equal(t, m, got, "notation %q", FormatMove(m))
			}
			require.True(t, kinds[PawnStep], "board should exercise pawn steps")
			require.True(t, kinds[WallPlacement], "board should exercise wall placements")
		})
	}
	require.True(t, func() bool {
		for _, m := range jumpBoard.LegalMoves() {
			if m.Kind == PawnJump {
				return true
			}
		}
		return false
	}(), "jump board should exercise the jump variant")
}

func TestParseMoveWalls(t *testing.T) {
	b := New()

	m, err := ParseMove(b, "e2h")
	require.NoError(t, err)
	require.Equal(t, WallMove(Wall{Anchor: Cell{7, 4}, Orientation: Horizontal}), m)

	m, err = ParseMove(b, "A9V")
	require.NoError(t, err)
	require.Equal(t, WallMove(Wall{Anchor: Cell{0, 0}, Orientation: Vertical}), m, "case is insignificant")

	_, err = ParseMove(b, "i1h")
	require.Error(t, err, "wall anchors do not reach the last row or column")

	_, err = ParseMove(b, "")
	require.Error(t, err)
}
