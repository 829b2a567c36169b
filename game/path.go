package game

import "sync"

// The path oracle answers shortest-distance queries with A* over the 81-cell
// grid graph. The heuristic is the row distance to the goal row, which is
// the minimum Manhattan distance over all goal cells; with unit step costs
// it is admissible and consistent, so closing cells on pop yields exact
// distances. The opponent pawn is not an obstacle for distance purposes.
//
// The oracle runs for every candidate wall placement and at every search
// leaf, so its scratch state (costs, closed set, open heap) is pooled and
// reused across calls instead of reallocated.

const cells = BoardSize * BoardSize

const unvisited = int16(1) << 14

// Open-list entries pack priority and cell into one uint16 ordered by f
// first: item = f*128 + cell. A cell re-enters the open list only when its
// cost strictly improves, which each of its four neighbors can cause at most
// once, so 4*cells bounds the heap.
type pathScratch struct {
	cost   [cells]int16
	closed [cells]bool
	open   [4 * cells]uint16
	n      int
}

var pathScratchPool = sync.Pool{
	New: func() any { return new(pathScratch) },
}

// Distance returns the length of p's shortest path from its pawn to any cell
// of its goal row, and false if every path is severed. A player standing on
// its goal row has distance 0.
func (b Board) Distance(p Player) (int, bool) {
	s := pathScratchPool.Get().(*pathScratch)
	defer pathScratchPool.Put(s)
	s.reset()

	start := b.pawns[p]
	goalRow := p.GoalRow()

	s.cost[start.index()] = 0
	s.push(rowDelta(start.Row, goalRow), start.index())

	for s.n > 0 {
		idx := s.pop()
		if s.closed[idx] {
			continue // stale entry superseded by a cheaper one
		}
		s.closed[idx] = true

		cur := Cell{idx / BoardSize, idx % BoardSize}
		if cur.Row == goalRow {
			return int(s.cost[idx]), true
		}

		for _, d := range directions {
			next := Cell{cur.Row + d.Row, cur.Col + d.Col}
			if !next.inBounds() || b.Blocked(cur, next) {
				continue
			}
			ni := next.index()
			if s.closed[ni] {
				continue
			}
			nc := s.cost[idx] + 1
			if nc < s.cost[ni] {
				s.cost[ni] = nc
				s.push(int(nc)+rowDelta(next.Row, goalRow), ni)
			}
		}
	}
	return 0, false
}

func rowDelta(row, goalRow int) int {
	if row > goalRow {
		return row - goalRow
	}
	return goalRow - row
}

func (s *pathScratch) reset() {
	for i := range s.cost {
		s.cost[i] = unvisited
		s.closed[i] = false
	}
	s.n = 0
}

func (s *pathScratch) push(f, cell int) {
	item := uint16(f*128 + cell)
	i := s.n
	s.open[i] = item
	s.n++
	for i > 0 {
		parent := (i - 1) / 2
		if s.open[parent] <= s.open[i] {
			break
		}
		s.open[parent], s.open[i] = s.open[i], s.open[parent]
		i = parent
	}
}

func (s *pathScratch) pop() int {
	top := s.open[0]
	s.n--
	s.open[0] = s.open[s.n]
	i := 0
	for {
		left, right := 2*i+1, 2*i+2
		smallest := i
		if left < s.n && s.open[left] < s.open[smallest] {
			smallest = left
		}
		if right < s.n && s.open[right] < s.open[smallest] {
			smallest = right
		}
		if smallest == i {
			break
		}
		s.open[i], s.open[smallest] = s.open[smallest], s.open[i]
		i = smallest
	}
	return int(top % 128)
}
