package cell

// rot90 rotates a Grid3 90 degrees counter-clockwise about Y, following the
// rule from: (y, z, x) -> (y, length-1-x, z). The returned grid
// has width and length swapped relative to the input.
func rot90(g *Grid3) *Grid3 {
	newShape := Shape{g.Shape.Height, g.Shape.Length, g.Shape.Width}
	out := NewGrid3(newShape)
	for y := 0; y < g.Shape.Height; y++ {
		for z := 0; z < g.Shape.Width; z++ {
			for x := 0; x < g.Shape.Length; x++ {
				v := g.Get(Coord{y, z, x})
				nz := g.Shape.Length - 1 - x
				nx := z
				out.Set(Coord{y, nz, nx}, v)
			}
		}
	}
	return out
}

// rotateCoordCCW applies the same (y, z, x) -> (y, length-1-x, z) rule to a
// single coordinate given the *pre-rotation* shape's width/length, so that
// port coordinates rotate in lockstep with the block grid.
func rotateCoordCCW(c Coord, preShape Shape) Coord {
	return Coord{c.Y, preShape.Length - 1 - c.X, c.Z}
}
