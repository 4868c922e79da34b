package router

import (
	"container/heap"
	"fmt"

	"github.com/qmn/pershing/pkg/cell"
)

type direction int

const (
	dirEast direction = iota + 1
	dirNorth
	dirWest
	dirSouth
	dirUp
	dirDown
)

type move struct {
	delta     cell.Coord
	backtrace direction
	cost      int
}

var moves = [6]move{
	{delta: cell.Coord{Z: 0, X: 1}, backtrace: dirWest, cost: 1},
	{delta: cell.Coord{Z: 1, X: 0}, backtrace: dirSouth, cost: 1},
	{delta: cell.Coord{Z: 0, X: -1}, backtrace: dirEast, cost: 1},
	{delta: cell.Coord{Z: -1, X: 0}, backtrace: dirNorth, cost: 1},
	{delta: cell.Coord{Y: 3}, backtrace: dirDown, cost: 3},
	{delta: cell.Coord{Y: -3}, backtrace: dirUp, cost: 3},
}

// backtraceDelta maps a recorded inbound direction back to the coordinate
// delta that arrives from the predecessor.
func backtraceDelta(d direction) cell.Coord {
	switch d {
	case dirEast:
		return cell.Coord{X: 1}
	case dirWest:
		return cell.Coord{X: -1}
	case dirNorth:
		return cell.Coord{Z: 1}
	case dirSouth:
		return cell.Coord{Z: -1}
	case dirUp:
		return cell.Coord{Y: 3}
	case dirDown:
		return cell.Coord{Y: -3}
	}
	panic(fmt.Sprintf("router: unknown backtrace direction %d", d))
}

type heapItem struct {
	cost  int
	coord cell.Coord
}

type minHeap []heapItem

func (h minHeap) Len() int            { return len(h) }
func (h minHeap) Less(i, j int) bool   { return h[i].cost < h[j].cost }
func (h minHeap) Swap(i, j int)        { h[i], h[j] = h[j], h[i] }
func (h *minHeap) Push(x interface{})  { *h = append(*h, x.(heapItem)) }
func (h *minHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// MazeRouter runs Lee's weighted maze-routing algorithm over a fixed-size
// voxel grid, reusing its cost/backtrace scratch space across calls.
type MazeRouter struct {
	dims          cell.Shape
	violationCost int
	cost          []int
	backtrace     []direction
	visited       []bool
}

// NewMazeRouter allocates the scratch grids once for the given dimensions.
func NewMazeRouter(dims cell.Shape, violationCost int) *MazeRouter {
	n := dims.Height * dims.Width * dims.Length
	return &MazeRouter{
		dims:          dims,
		violationCost: violationCost,
		cost:          make([]int, n),
		backtrace:     make([]direction, n),
		visited:       make([]bool, n),
	}
}

func (m *MazeRouter) index(c cell.Coord) int {
	return (c.Y*m.dims.Width+c.Z)*m.dims.Length + c.X
}

func (m *MazeRouter) in(c cell.Coord) bool {
	return c.Y >= 0 && c.Y < m.dims.Height &&
		c.Z >= 0 && c.Z < m.dims.Width &&
		c.X >= 0 && c.X < m.dims.Length
}

func (m *MazeRouter) clear() {
	for i := range m.cost {
		m.cost[i] = -1
		m.backtrace[i] = 0
		m.visited[i] = false
	}
}

// violating reports whether stepping into coord would create a proximity
// violation against usage, excluding the segment's own endpoints.
func violating(coord, a, b cell.Coord, usage map[cell.Coord]bool) bool {
	if coord == a || coord == b {
		return false
	}
	for _, dy := range []int{0, -1} {
		for _, off := range lateralOffsets {
			nc := cell.Coord{Y: coord.Y + dy, Z: coord.Z + off.Z, X: coord.X + off.X}
			if nc == a || nc == b {
				continue
			}
			if usage[nc] {
				return true
			}
		}
	}
	return false
}

// Route finds the cheapest path from a to b across the grid, penalizing
// (but not forbidding) steps that violate proximity to usage. It returns
// an error if no path reaches b.
func (m *MazeRouter) Route(a, b cell.Coord, usage map[cell.Coord]bool) ([]cell.Coord, error) {
	m.clear()

	h := &minHeap{}
	heap.Init(h)
	m.cost[m.index(a)] = 0
	heap.Push(h, heapItem{cost: 0, coord: a})

	for h.Len() > 0 {
		item := heap.Pop(h).(heapItem)
		loc := item.coord
		idx := m.index(loc)
		if m.visited[idx] {
			continue
		}
		m.visited[idx] = true

		for _, mv := range moves {
			next := loc.Add(mv.delta)
			if !m.in(next) {
				continue
			}
			ni := m.index(next)
			if m.visited[ni] {
				continue
			}

			stepCost := mv.cost
			if violating(next, a, b, usage) {
				stepCost = m.violationCost
			}
			newCost := m.cost[idx] + stepCost

			if m.cost[ni] == -1 || newCost < m.cost[ni] {
				m.cost[ni] = newCost
				m.backtrace[ni] = mv.backtrace
				heap.Push(h, heapItem{cost: newCost, coord: next})
			}
		}
	}

	if !m.visited[m.index(b)] {
		return nil, fmt.Errorf("router: no path between %+v and %+v", a, b)
	}

	path := []cell.Coord{b}
	for path[len(path)-1] != a {
		last := path[len(path)-1]
		d := m.backtrace[m.index(last)]
		if d == 0 {
			return nil, fmt.Errorf("router: broken backtrace at %+v", last)
		}
		path = append(path, last.Add(backtraceDelta(d)))
	}

	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, nil
}
