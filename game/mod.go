package game

// Board geometry of the standard variant. Cells are indexed (row, col) with
// row 0 at Light's starting edge. Wall anchors live on the interior lattice,
// so they range over [0, WallSlots) in both directions.
const (
	BoardSize    = 9
	WallSlots    = BoardSize - 1
	InitialWalls = 10
)

// Player identifies a side. Light starts on row 0 and races toward row 8;
// Dark starts on row 8 and races toward row 0.
type Player uint8

const (
	Light Player = iota
	Dark
)

func (p Player) Opponent() Player {
	if p == Light {
		return Dark
	}
	return Light
}

// GoalRow is the row p must reach to win.
func (p Player) GoalRow() int {
	if p == Light {
		return BoardSize - 1
	}
	return 0
}

func (p Player) String() string {
	if p == Light {
		return "Light"
	}
	return "Dark"
}

// Cell is a square on the 9x9 grid.
type Cell struct {
	Row int
	Col int
}

func (c Cell) inBounds() bool {
	return c.Row >= 0 && c.Row < BoardSize && c.Col >= 0 && c.Col < BoardSize
}

func (c Cell) index() int {
	return c.Row*BoardSize + c.Col
}

// The four orthogonal step directions, in generation order.
var directions = [4]Cell{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// EvalFunc scores a board from one player's perspective; higher is better
// for that player.
type EvalFunc func(Board, Player) int
