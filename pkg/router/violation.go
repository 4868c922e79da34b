package router

import (
	"github.com/qmn/pershing/pkg/blocks"
	"github.com/qmn/pershing/pkg/cell"
)

var lateralOffsets = [4]cell.Coord{
	{Y: 0, Z: 1, X: 0},
	{Y: 0, Z: -1, X: 0},
	{Y: 0, Z: 0, X: 1},
	{Y: 0, Z: 0, X: -1},
}

// wireAndViolation paints a routed polyline's conductor voxels (redstone
// wire plus its supporting stone block) and computes the voxels that
// would violate proximity to a foreign conductor. pins holds the
// segment's two endpoint coordinates, which never count as violations
// (a conductor may always approach its own pin).
func wireAndViolation(net []cell.Coord, pins [2]cell.Coord) (map[cell.Coord]int, map[cell.Coord]bool) {
	redstone := blocks.ID("redstone_wire")
	stone := blocks.ID("stone")

	wire := make(map[cell.Coord]int, len(net)*2)
	violation := make(map[cell.Coord]bool)

	for _, c := range net {
		wire[c] = redstone
		wire[c.Add(cell.Coord{Y: -1})] = stone

		if c == pins[0] || c == pins[1] {
			continue
		}
		for _, dy := range []int{0, -1} {
			for _, off := range lateralOffsets {
				v := cell.Coord{Y: c.Y + dy, Z: c.Z + off.Z, X: c.X + off.X}
				violation[v] = true
			}
		}
	}

	for _, c := range net {
		delete(violation, c)
		delete(violation, c.Add(cell.Coord{Y: -1}))
	}

	return wire, violation
}

// countViolations counts how many of a segment's violation voxels are
// actually occupied in the given usage matrix.
func countViolations(violation map[cell.Coord]bool, usage map[cell.Coord]bool) int {
	count := 0
	for c := range violation {
		if usage[c] {
			count++
		}
	}
	return count
}
