package router

import (
	"fmt"

	"github.com/qmn/pershing/pkg/cell"
)

// dumbRoute lays a naive initial polyline from a to b: step toward b in Z
// first, then X, one cell per step, Y unchanged. It ignores collisions;
// those are cleared later by rip-up-and-reroute. It errors if a and b
// differ only in Y, since no step in this routine moves along Y.
func dumbRoute(a, b cell.Coord) ([]cell.Coord, error) {
	net := []cell.Coord{a}
	c := a
	for c != b {
		switch {
		case c.Z > b.Z:
			c.Z--
		case c.Z < b.Z:
			c.Z++
		case c.X > b.X:
			c.X--
		case c.X < b.X:
			c.X++
		default:
			return nil, fmt.Errorf("router: dumb_route cannot route on Y layer: %+v -> %+v", a, b)
		}
		net = append(net, c)
	}
	return net, nil
}
