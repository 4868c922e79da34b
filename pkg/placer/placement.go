// Package placer implements the simulated-annealing cell placer.
package placer

import (
	"github.com/qmn/pershing/pkg/cell"
)

// Placement is a concrete instance of a cell at a 3D anchor with a yaw
// rotation and a pin-to-net map.
type Placement struct {
	Name      string
	Placement cell.Coord // anchor (y, z, x); may be outside Dimensions during SA
	Turns     int
	Pins      map[string]string // port name -> net name
}

// Clone returns a deep copy of p.
func (p Placement) Clone() Placement {
	pins := make(map[string]string, len(p.Pins))
	for k, v := range p.Pins {
		pins[k] = v
	}
	return Placement{Name: p.Name, Placement: p.Placement, Turns: p.Turns, Pins: pins}
}

// ClonePlacements deep-copies a placement slice.
func ClonePlacements(in []Placement) []Placement {
	out := make([]Placement, len(in))
	for i, p := range in {
		out[i] = p.Clone()
	}
	return out
}
