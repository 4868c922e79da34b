// Package router converts a cell placement into a feasible 3D conductor
// layout: a minimum-spanning-tree net decomposition, an initial dumb
// route, and a rip-up-and-reroute loop that clears proximity violations
// with Lee's weighted maze-routing algorithm.
package router

import "github.com/qmn/pershing/pkg/cell"

// ExtendedPin is a placed pin together with its routing anchor: one cell
// beyond the pin itself, in the pin's facing direction, so a conductor
// never collides with the pin block.
type ExtendedPin struct {
	CellIndex  int
	Port       string
	PinCoord   cell.Coord
	RouteCoord cell.Coord
	IsOutput   bool
}

// Segment is one driver-to-driven conductor run within a net.
type Segment struct {
	Driver    ExtendedPin
	Driven    ExtendedPin
	Net       []cell.Coord       // the realized polyline, driver.RouteCoord..driven.RouteCoord
	Wire      map[cell.Coord]int // block ID painted at each wire voxel (redstone_wire and its supporting stone)
	Violation map[cell.Coord]bool
}

// NetRouting holds every extended pin of a net and the segments that
// connect them.
type NetRouting struct {
	Pins     []ExtendedPin
	Segments []*Segment
}

// Routing maps net name to its NetRouting.
type Routing map[string]*NetRouting
