package cell

import "fmt"

// Grid3 is a dense, row-major (Y, Z, X) grid of small integers, used for the
// block and data-nibble matrices of a template.
type Grid3 struct {
	Shape Shape
	data  []int16
}

// NewGrid3 allocates a zeroed grid of the given shape.
func NewGrid3(shape Shape) *Grid3 {
	return &Grid3{Shape: shape, data: make([]int16, shape.Height*shape.Width*shape.Length)}
}

// Grid3FromNested builds a Grid3 from a [][][]int literal, as decoded from
// library YAML.
func Grid3FromNested(nested [][][]int) *Grid3 {
	h := len(nested)
	w := 0
	l := 0
	if h > 0 {
		w = len(nested[0])
		if w > 0 {
			l = len(nested[0][0])
		}
	}
	g := NewGrid3(Shape{h, w, l})
	for y := 0; y < h; y++ {
		for z := 0; z < w; z++ {
			for x := 0; x < l; x++ {
				g.Set(Coord{y, z, x}, int16(nested[y][z][x]))
			}
		}
	}
	return g
}

func (g *Grid3) index(c Coord) int {
	return (c.Y*g.Shape.Width+c.Z)*g.Shape.Length + c.X
}

// In reports whether c lies within the grid's shape.
func (g *Grid3) In(c Coord) bool {
	return c.Y >= 0 && c.Y < g.Shape.Height &&
		c.Z >= 0 && c.Z < g.Shape.Width &&
		c.X >= 0 && c.X < g.Shape.Length
}

// Get returns the value at c. It panics if c is out of bounds.
func (g *Grid3) Get(c Coord) int16 {
	if !g.In(c) {
		panic(fmt.Sprintf("cell: coord %+v out of bounds for shape %+v", c, g.Shape))
	}
	return g.data[g.index(c)]
}

// Set stores v at c. It panics if c is out of bounds.
func (g *Grid3) Set(c Coord, v int16) {
	if !g.In(c) {
		panic(fmt.Sprintf("cell: coord %+v out of bounds for shape %+v", c, g.Shape))
	}
	g.data[g.index(c)] = v
}

// Clone returns a deep copy.
func (g *Grid3) Clone() *Grid3 {
	out := &Grid3{Shape: g.Shape, data: make([]int16, len(g.data))}
	copy(out.data, g.data)
	return out
}

// Each calls fn for every coordinate in the grid, in Y-major, Z, X order.
func (g *Grid3) Each(fn func(c Coord, v int16)) {
	for y := 0; y < g.Shape.Height; y++ {
		for z := 0; z < g.Shape.Width; z++ {
			for x := 0; x < g.Shape.Length; x++ {
				c := Coord{y, z, x}
				fn(c, g.Get(c))
			}
		}
	}
}
