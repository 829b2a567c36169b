package game

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"
)

// Board is the complete game state: both pawn positions, remaining wall
// counts, the placed wall segments, and whose turn it is. It is a plain
// value; Play and Apply derive a new Board and never mutate the receiver, so
// boards can be shared freely across concurrent search branches.
//
// Wall segments are kept in two 64-bit sets, one bit per anchor slot of the
// 8x8 interior lattice per orientation.
type Board struct {
	pawns      [2]Cell
	wallsLeft  [2]int
	horizontal uint64
	vertical   uint64
	turn       Player
}

// New returns the initial position: pawns on the opposing mid-edges, full
// wall allowances, no walls placed, Light to move.
func New() Board {
	return Board{
		pawns:     [2]Cell{{0, BoardSize / 2}, {BoardSize - 1, BoardSize / 2}},
		wallsLeft: [2]int{InitialWalls, InitialWalls},
		turn:      Light,
	}
}

// Pawn returns p's pawn position.
func (b Board) Pawn(p Player) Cell {
	return b.pawns[p]
}

// WallsLeft returns how many wall segments p may still place.
func (b Board) WallsLeft(p Player) int {
	return b.wallsLeft[p]
}

// Turn returns the player to act.
func (b Board) Turn() Player {
	return b.turn
}

// Walls returns the placed segments in anchor order, horizontal first.
func (b Board) Walls() []Wall {
	var walls []Wall
	for r := 0; r < WallSlots; r++ {
		for c := 0; c < WallSlots; c++ {
			if b.hasHorizontalAt(r, c) {
				walls = append(walls, Wall{Anchor: Cell{r, c}, Orientation: Horizontal})
			}
		}
	}
	for r := 0; r < WallSlots; r++ {
		for c := 0; c < WallSlots; c++ {
			if b.hasVerticalAt(r, c) {
				walls = append(walls, Wall{Anchor: Cell{r, c}, Orientation: Vertical})
			}
		}
	}
	return walls
}

// Blocked reports whether a wall segment separates the two orthogonally
// adjacent cells. Cells that are not orthogonal neighbors are never blocked
// by a wall (the question does not apply to them).
func (b Board) Blocked(from, to Cell) bool {
	dr, dc := to.Row-from.Row, to.Col-from.Col
	switch {
	case dc == 0 && (dr == 1 || dr == -1):
		r := min(from.Row, to.Row)
		return b.hasHorizontalAt(r, from.Col) || b.hasHorizontalAt(r, from.Col-1)
	case dr == 0 && (dc == 1 || dc == -1):
		c := min(from.Col, to.Col)
		return b.hasVerticalAt(from.Row, c) || b.hasVerticalAt(from.Row-1, c)
	}
	return false
}

// CanStep reports whether a pawn could move between the two cells as far as
// bounds and walls are concerned. It does not consider pawn occupancy.
func (b Board) CanStep(from, to Cell) bool {
	return to.inBounds() && !b.Blocked(from, to)
}

// Winner returns the winning player, if either pawn stands on its goal row.
func (b Board) Winner() (Player, bool) {
	if b.pawns[Light].Row == Light.GoalRow() {
		return Light, true
	}
	if b.pawns[Dark].Row == Dark.GoalRow() {
		return Dark, true
	}
	return 0, false
}

// IsTerminal reports whether the game is over.
func (b Board) IsTerminal() bool {
	_, over := b.Winner()
	return over
}

// Play applies a move and returns the successor board with the turn passed
// to the opponent. The move must come from LegalMoves on this board; Play
// trusts the caller and only panics on states that the legality filter can
// never produce. Callers holding unvetted moves must use Apply instead.
func (b Board) Play(m Move) Board {
	next := b
	switch m.Kind {
	case PawnStep, PawnJump:
		next.pawns[b.turn] = m.To
	case WallPlacement:
		next = next.withWall(m.Wall)
		next.wallsLeft[b.turn]--
		if next.wallsLeft[b.turn] < 0 {
			panic(fmt.Sprintf("game: %s placed a wall with no walls left", b.turn))
		}
	default:
		panic(fmt.Sprintf("game: unknown move kind %d", m.Kind))
	}
	next.turn = b.turn.Opponent()
	return next
}

// Apply vets the move against the full legal set before applying it. It
// returns an InvalidMoveError if the move is not a member of LegalMoves.
func (b Board) Apply(m Move) (Board, error) {
	for _, legal := range b.LegalMoves() {
		if legal == m {
			return b.Play(m), nil
		}
	}
	return Board{}, &InvalidMoveError{Move: m}
}

// Hash returns a 64-bit digest of the full state, suitable as a
// transposition table key.
func (b Board) Hash() uint64 {
	hasher := fnv.New64a()

	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], b.horizontal)
	hasher.Write(buf[:])
	binary.LittleEndian.PutUint64(buf[:], b.vertical)
	hasher.Write(buf[:])

	hasher.Write([]byte{
		byte(b.pawns[Light].Row), byte(b.pawns[Light].Col),
		byte(b.pawns[Dark].Row), byte(b.pawns[Dark].Col),
		byte(b.wallsLeft[Light]), byte(b.wallsLeft[Dark]),
		byte(b.turn),
	})

	return hasher.Sum64()
}
