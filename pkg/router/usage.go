package router

import (
	"github.com/qmn/pershing/pkg/cell"
	"github.com/qmn/pershing/pkg/placer"
)

// excludeSet names segments (by net name and index within the net) to
// leave out of a usage matrix, used while rebuilding it minus the
// segments chosen for rip-up.
type excludeSet map[string]map[int]bool

func (e excludeSet) has(net string, i int) bool {
	return e != nil && e[net] != nil && e[net][i]
}

// buildUsageMatrix ORs the placed layout's occupied voxels with every
// routed segment's wire voxels, skipping any segment named in exclude.
func buildUsageMatrix(layout *placer.Layout, routing Routing, exclude excludeSet) map[cell.Coord]bool {
	usage := make(map[cell.Coord]bool)
	for y := 0; y < layout.Shape.Height; y++ {
		for z := 0; z < layout.Shape.Width; z++ {
			for x := 0; x < layout.Shape.Length; x++ {
				c := cell.Coord{Y: y, Z: z, X: x}
				if layout.Block(c) != 0 {
					usage[c] = true
				}
			}
		}
	}

	for netName, nr := range routing {
		for i, seg := range nr.Segments {
			if exclude.has(netName, i) {
				continue
			}
			for c := range seg.Wire {
				usage[c] = true
			}
		}
	}
	return usage
}
