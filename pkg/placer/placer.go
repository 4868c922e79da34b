package placer

import (
	"math"
	"math/rand"

	"github.com/qmn/pershing/pkg/cell"
	"github.com/qmn/pershing/pkg/config"
	"github.com/qmn/pershing/pkg/netlist"
)

// Placer anneals a netlist's cell instances into a non-overlapping,
// in-bounds 3D placement. GridSnap turns it into the
// GridPlacer variant: displacement snaps to multiples of the grid
// interval (GridSpacing plus the library's largest cell side).
type Placer struct {
	cells       cell.Pregenerated
	cfg         config.PlacerConfig
	rng         *rand.Rand
	GridSnap    bool
	maxCellSide int // largest cell side; GridPlacer displace interval is grid_spacing + max_cell_side
}

// NewPlacer builds a Placer over the given pregenerated cell library.
func NewPlacer(cells cell.Pregenerated, cfg config.PlacerConfig, rng *rand.Rand) *Placer {
	_, maxW, maxL := computeMaxCellDimension(cells)
	side := maxW
	if maxL > side {
		side = maxL
	}
	return &Placer{cells: cells, cfg: cfg, rng: rng, maxCellSide: side}
}

// NewGridPlacer builds the GridPlacer variant: displacement snaps to the
// grid interval.
func NewGridPlacer(cells cell.Pregenerated, cfg config.PlacerConfig, rng *rand.Rand) *Placer {
	p := NewPlacer(cells, cfg, rng)
	p.GridSnap = true
	return p
}

func computeMaxCellDimension(cells cell.Pregenerated) (maxH, maxW, maxL int) {
	for _, rotations := range cells {
		shape := rotations[0].Blocks.Shape
		if shape.Height > maxH {
			maxH = shape.Height
		}
		if shape.Width > maxW {
			maxW = shape.Width
		}
		if shape.Length > maxL {
			maxL = shape.Length
		}
	}
	return
}

func clonePins(in map[string]string) map[string]string {
	out := make(map[string]string, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}

// InitialPlacement arranges every cell instance of nl on a square grid of
// side ceil(sqrt(N)), all at turns=0.
func (pl *Placer) InitialPlacement(nl *netlist.Netlist) ([]Placement, cell.Shape) {
	maxH, maxW, maxL := computeMaxCellDimension(pl.cells)
	n := len(nl.Cells)
	if n == 0 {
		return nil, cell.Shape{Height: maxH, Width: 0, Length: 0}
	}

	const spacing = 1
	side := int(math.Ceil(math.Sqrt(float64(n))))
	rowPitch := maxW + spacing
	colPitch := maxL + spacing

	placements := make([]Placement, n)
	for i, inst := range nl.Cells {
		row := i / side
		col := i % side
		anchor := cell.Coord{Y: 0, Z: row * rowPitch, X: col * colPitch}
		placements[i] = Placement{Name: inst.Name, Placement: anchor, Turns: 0, Pins: clonePins(inst.Pins)}
	}

	dims := cell.Shape{Height: maxH, Width: side * rowPitch, Length: side * colPitch}
	return placements, dims
}

// occupancy builds the voxel occupancy grid used by overlap/OOB scoring,
// ignoring a one-cell Y padding at the top and bottom of each cell's
// bounding box.
func (pl *Placer) occupancy(placements []Placement) map[cell.Coord]int {
	occ := make(map[cell.Coord]int)
	for _, p := range placements {
		tmpl, err := pl.cells.Lookup(p.Name, p.Turns)
		if err != nil {
			continue
		}
		shape := tmpl.Blocks.Shape
		for y := 1; y <= shape.Height-2; y++ {
			for z := 0; z < shape.Width; z++ {
				for x := 0; x < shape.Length; x++ {
					c := p.Placement.Add(cell.Coord{Y: y, Z: z, X: x})
					occ[c]++
				}
			}
		}
	}
	return occ
}

func overlapPenalty(occ map[cell.Coord]int) float64 {
	total := 0.0
	for _, count := range occ {
		if count > 1 {
			total += float64(count - 1)
		}
	}
	return total
}

func oobPenalty(occ map[cell.Coord]int, dims cell.Shape) float64 {
	total := 0.0
	for c, count := range occ {
		if c.Y < 0 || c.Y >= dims.Height || c.Z < 0 || c.Z >= dims.Width || c.X < 0 || c.X >= dims.Length {
			total += float64(count)
		}
	}
	return total
}

// wireLength sums, over every multi-pin net, the bounding-box half-perimeter
// of its pin coordinates in world space.
func (pl *Placer) wireLength(placements []Placement) float64 {
	netPins := make(map[string][]cell.Coord)
	for _, p := range placements {
		tmpl, err := pl.cells.Lookup(p.Name, p.Turns)
		if err != nil {
			continue
		}
		for portName, net := range p.Pins {
			port, ok := tmpl.Ports[portName]
			if !ok {
				continue
			}
			netPins[net] = append(netPins[net], p.Placement.Add(port.Coord))
		}
	}

	total := 0.0
	for _, coords := range netPins {
		if len(coords) < 2 {
			continue
		}
		minY, maxY := coords[0].Y, coords[0].Y
		minZ, maxZ := coords[0].Z, coords[0].Z
		minX, maxX := coords[0].X, coords[0].X
		for _, c := range coords[1:] {
			minY, maxY = minInt(minY, c.Y), maxInt(maxY, c.Y)
			minZ, maxZ = minInt(minZ, c.Z), maxInt(maxZ, c.Z)
			minX, maxX = minInt(minX, c.X), maxInt(maxX, c.X)
		}
		total += float64((maxY - minY) + (maxZ - minZ) + (maxX - minX))
	}
	return total
}

// Score returns wire_length + overlap + oob for a candidate placement.
func (pl *Placer) Score(placements []Placement, dims cell.Shape) float64 {
	occ := pl.occupancy(placements)
	return pl.wireLength(placements) + overlapPenalty(occ) + oobPenalty(occ, dims)
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
