package placer

import "github.com/qmn/pershing/pkg/cell"

// Layout is a dense 3D array of block IDs (and their data nibbles), with
// dimensions from Shrink.
type Layout struct {
	Shape  cell.Shape
	Blocks []int
	Data   []int
}

// NewLayout allocates a zeroed Layout of the given shape.
func NewLayout(shape cell.Shape) *Layout {
	n := shape.Height * shape.Width * shape.Length
	return &Layout{Shape: shape, Blocks: make([]int, n), Data: make([]int, n)}
}

func (l *Layout) index(c cell.Coord) int {
	return (c.Y*l.Shape.Width+c.Z)*l.Shape.Length + c.X
}

// In reports whether c lies within the layout.
func (l *Layout) In(c cell.Coord) bool {
	return c.Y >= 0 && c.Y < l.Shape.Height &&
		c.Z >= 0 && c.Z < l.Shape.Width &&
		c.X >= 0 && c.X < l.Shape.Length
}

// Block returns the block ID at c, or -1 if c is out of bounds.
func (l *Layout) Block(c cell.Coord) int {
	if !l.In(c) {
		return -1
	}
	return l.Blocks[l.index(c)]
}

// SetBlock stores a block ID (and optional data nibble) at c. Out-of-bounds
// writes are silently ignored, matching the placer's tolerance for
// in-progress (possibly out-of-bounds) placements during annealing.
func (l *Layout) SetBlock(c cell.Coord, blockID, data int) {
	if !l.In(c) {
		return
	}
	i := l.index(c)
	l.Blocks[i] = blockID
	l.Data[i] = data
}

// ToNested renders the block grid as a [y][z][x] nested slice, the shape
// expected by the persisted extraction.json format.
func (l *Layout) ToNested() [][][]int {
	out := make([][][]int, l.Shape.Height)
	for y := 0; y < l.Shape.Height; y++ {
		out[y] = make([][]int, l.Shape.Width)
		for z := 0; z < l.Shape.Width; z++ {
			out[y][z] = make([]int, l.Shape.Length)
			for x := 0; x < l.Shape.Length; x++ {
				out[y][z][x] = l.Block(cell.Coord{Y: y, Z: z, X: x})
			}
		}
	}
	return out
}
