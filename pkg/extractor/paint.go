package extractor

import (
	"github.com/qmn/pershing/pkg/blocks"
	"github.com/qmn/pershing/pkg/cell"
	"github.com/qmn/pershing/pkg/placer"
)

// PlaceBlocks paints one extracted segment's tokens into layout.
func PlaceBlocks(seg ExtractedSegment, layout *placer.Layout) {
	redstoneWire := blocks.ID("redstone_wire")
	stone := blocks.ID("stone")
	planks := blocks.ID("planks")
	stickyPiston := blocks.ID("sticky_piston")
	unpoweredRepeater := blocks.ID("unpowered_repeater")
	redstoneTorch := blocks.ID("redstone_torch")
	unlitRedstoneTorch := blocks.ID("unlit_redstone_torch")
	redstoneBlock := blocks.ID("redstone_block")
	air := blocks.ID("air")

	supportBlock := func(y int) int {
		if y == 1 {
			return stone
		}
		return planks
	}

	for _, tc := range seg {
		y, z, x := tc.Coord.Y, tc.Coord.Z, tc.Coord.X
		switch tc.Token {
		case Wire:
			layout.SetBlock(cell.Coord{Y: y, Z: z, X: x}, redstoneWire, 0)
			layout.SetBlock(cell.Coord{Y: y - 1, Z: z, X: x}, supportBlock(y), 0)
		case Repeater:
			layout.SetBlock(cell.Coord{Y: y, Z: z, X: x}, unpoweredRepeater, 0)
			layout.SetBlock(cell.Coord{Y: y - 1, Z: z, X: x}, supportBlock(y), 0)
		case UpVia:
			layout.SetBlock(cell.Coord{Y: y - 1, Z: z, X: x}, stone, 0)
			layout.SetBlock(cell.Coord{Y: y, Z: z, X: x}, stone, 0)
			layout.SetBlock(cell.Coord{Y: y + 1, Z: z, X: x}, redstoneTorch, 0)
			layout.SetBlock(cell.Coord{Y: y + 2, Z: z, X: x}, planks, 0)
			layout.SetBlock(cell.Coord{Y: y + 3, Z: z, X: x}, unlitRedstoneTorch, 0)
		case DownVia:
			layout.SetBlock(cell.Coord{Y: y, Z: z, X: x}, stickyPiston, 0)
			layout.SetBlock(cell.Coord{Y: y - 1, Z: z, X: x}, redstoneBlock, 0)
			layout.SetBlock(cell.Coord{Y: y - 2, Z: z, X: x}, air, 0)
			layout.SetBlock(cell.Coord{Y: y - 3, Z: z, X: x}, stone, 0)
		}
	}
}
