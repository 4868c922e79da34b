package placer

import (
	"math"

	"github.com/qmn/pershing/pkg/cell"
)

// Shrink translates every anchor so the placement set's minimum corner
// sits at the origin, and returns the resulting dimensions.
func (pl *Placer) Shrink(placements []Placement) ([]Placement, cell.Shape) {
	if len(placements) == 0 {
		return nil, cell.Shape{}
	}

	minY, minZ, minX := math.MaxInt32, math.MaxInt32, math.MaxInt32
	maxY, maxZ, maxX := math.MinInt32, math.MinInt32, math.MinInt32

	for _, p := range placements {
		tmpl, err := pl.cells.Lookup(p.Name, p.Turns)
		if err != nil {
			continue
		}
		shape := tmpl.Blocks.Shape
		lo := p.Placement
		hi := p.Placement.Add(cell.Coord{Y: shape.Height - 1, Z: shape.Width - 1, X: shape.Length - 1})
		minY, maxY = minInt(minY, lo.Y), maxInt(maxY, hi.Y)
		minZ, maxZ = minInt(minZ, lo.Z), maxInt(maxZ, hi.Z)
		minX, maxX = minInt(minX, lo.X), maxInt(maxX, hi.X)
	}

	offset := cell.Coord{Y: -minY, Z: -minZ, X: -minX}
	out := ClonePlacements(placements)
	for i := range out {
		out[i].Placement = out[i].Placement.Add(offset)
	}

	dims := cell.Shape{
		Height: maxY - minY + 1,
		Width:  maxZ - minZ + 1,
		Length: maxX - minX + 1,
	}
	return out, dims
}
