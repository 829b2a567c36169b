package game

// Orientation of a wall segment.
type Orientation uint8

const (
	Horizontal Orientation = iota
	Vertical
)

func (o Orientation) String() string {
	if o == Horizontal {
		return "h"
	}
	return "v"
}

// Wall is one placed wall segment. The anchor is the lattice coordinate of
// its lower-left end: a horizontal wall at (r, c) blocks vertical movement
// between rows r and r+1 at columns c and c+1; a vertical wall at (r, c)
// blocks horizontal movement between columns c and c+1 at rows r and r+1.
// Anchors range over [0, WallSlots) in both directions.
type Wall struct {
	Anchor      Cell
	Orientation Orientation
}

func (w Wall) anchorInBounds() bool {
	return w.Anchor.Row >= 0 && w.Anchor.Row < WallSlots &&
		w.Anchor.Col >= 0 && w.Anchor.Col < WallSlots
}

// HasWall reports whether the exact segment w has been placed.
func (b Board) HasWall(w Wall) bool {
	if !w.anchorInBounds() {
		return false
	}
	if w.Orientation == Horizontal {
		return b.horizontal&anchorBit(w.Anchor.Row, w.Anchor.Col) != 0
	}
	return b.vertical&anchorBit(w.Anchor.Row, w.Anchor.Col) != 0
}

// wallFits checks the geometric constraints only: the slot must be free, the
// crossing slot of the other orientation must be free, and the two
// same-orientation slots it would overlap must be free. Path existence is
// checked separately by the legality filter.
func (b Board) wallFits(w Wall) bool {
	if !w.anchorInBounds() {
		return false
	}
	r, c := w.Anchor.Row, w.Anchor.Col
	if b.hasHorizontalAt(r, c) || b.hasVerticalAt(r, c) {
		return false
	}
	if w.Orientation == Horizontal {
		return !b.hasHorizontalAt(r, c-1) && !b.hasHorizontalAt(r, c+1)
	}
	return !b.hasVerticalAt(r-1, c) && !b.hasVerticalAt(r+1, c)
}

// withWall returns a copy of b with the segment added. The caller is
// responsible for having checked wallFits.
func (b Board) withWall(w Wall) Board {
	if w.Orientation == Horizontal {
		b.horizontal |= anchorBit(w.Anchor.Row, w.Anchor.Col)
	} else {
		b.vertical |= anchorBit(w.Anchor.Row, w.Anchor.Col)
	}
	return b
}

func anchorBit(r, c int) uint64 {
	return 1 << uint(r*WallSlots+c)
}

func (b Board) hasHorizontalAt(r, c int) bool {
	if r < 0 || r >= WallSlots || c < 0 || c >= WallSlots {
		return false
	}
	return b.horizontal&anchorBit(r, c) != 0
}

func (b Board) hasVerticalAt(r, c int) bool {
	if r < 0 || r >= WallSlots || c < 0 || c >= WallSlots {
		return false
	}
	return b.vertical&anchorBit(r, c) != 0
}
