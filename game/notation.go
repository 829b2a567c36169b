package game

import (
	"fmt"
	"strconv"
	"strings"
)

// Coordinate notation for the collaborator boundary: columns are letters
// a..i left to right, rows are digits 9..1 top to bottom, so Light starts on
// e9 and Dark on e1. A pawn move is the bare destination ("e2"); a wall
// placement is its anchor plus an orientation suffix ("e2h", "e2v").

// FormatCell renders a cell in coordinate notation.
func FormatCell(c Cell) string {
	return fmt.Sprintf("%c%d", 'a'+c.Col, BoardSize-c.Row)
}

// ParseCell reads a coordinate like "e2".
func ParseCell(s string) (Cell, error) {
	if len(s) < 2 {
		return Cell{}, fmt.Errorf("parse cell %q: too short", s)
	}
	col := int(s[0] - 'a')
	row, err := strconv.Atoi(s[1:])
	if err != nil {
		return Cell{}, fmt.Errorf("parse cell %q: bad row: %w", s, err)
	}
	c := Cell{Row: BoardSize - row, Col: col}
	if !c.inBounds() {
		return Cell{}, fmt.Errorf("parse cell %q: out of bounds", s)
	}
	return c, nil
}

// FormatMove renders a move in coordinate notation.
func FormatMove(m Move) string {
	switch m.Kind {
	case PawnStep, PawnJump:
		return FormatCell(m.To)
	case WallPlacement:
		return FormatCell(m.Wall.Anchor) + m.Wall.Orientation.String()
	default:
		return "?"
	}
}

// ParseMove reads a move in coordinate notation. Pawn notation carries only
// the destination, so the board decides the variant: an orthogonal neighbor
// of the mover's pawn is a step, anything else is a jump. The result round
// trips through FormatMove for every legal move.
func ParseMove(b Board, s string) (Move, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return Move{}, fmt.Errorf("parse move: empty input")
	}

	var orientation Orientation
	wall := false
	coord := s
	switch s[len(s)-1] {
	case 'h':
		wall, orientation = true, Horizontal
		coord = s[:len(s)-1]
	case 'v':
		wall, orientation = true, Vertical
		coord = s[:len(s)-1]
	}

	c, err := ParseCell(coord)
	if err != nil {
		return Move{}, fmt.Errorf("parse move %q: %w", s, err)
	}

	if wall {
		w := Wall{Anchor: c, Orientation: orientation}
		if !w.anchorInBounds() {
			return Move{}, fmt.Errorf("parse move %q: wall anchor out of bounds", s)
		}
		return WallMove(w), nil
	}

	cur := b.pawns[b.turn]
	dr, dc := c.Row-cur.Row, c.Col-cur.Col
	if dr*dr+dc*dc == 1 {
		return StepTo(c), nil
	}
	return JumpTo(c), nil
}
