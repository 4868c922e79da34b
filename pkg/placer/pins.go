package placer

import (
	"fmt"

	"github.com/qmn/pershing/pkg/cell"
	"github.com/qmn/pershing/pkg/netlist"
)

// PlacePins appends placements for the netlist's primary I/O pins along the
// two X edges of the layout (it does not check GridSnap, so either placer
// variant can call it): clocks and
// inputs form a column at X=0, outputs a column at X=dims.Length+1, and
// every existing placement shifts by one cell in X to make room. It
// expects the library's input_pin/output_pin templates to each expose
// exactly one port.
func (pl *Placer) PlacePins(placements []Placement, dims cell.Shape, nl *netlist.Netlist) ([]Placement, cell.Shape, error) {
	inputPort, err := solePort(pl.cells, "input_pin")
	if err != nil {
		return nil, cell.Shape{}, err
	}
	outputPort, err := solePort(pl.cells, "output_pin")
	if err != nil {
		return nil, cell.Shape{}, err
	}

	out := make([]Placement, 0, len(placements)+len(nl.Inputs)+len(nl.Clocks)+len(nl.Outputs))
	for _, p := range placements {
		p = p.Clone()
		p.Placement.X++
		out = append(out, p)
	}

	row := 0
	for _, net := range append(append([]string{}, nl.Inputs...), nl.Clocks...) {
		out = append(out, Placement{
			Name:      "input_pin",
			Placement: cell.Coord{Y: 0, Z: row * (pl.cfg.GridSpacing + 1), X: 0},
			Turns:     0,
			Pins:      map[string]string{inputPort: net},
		})
		row++
	}

	row = 0
	for _, net := range nl.Outputs {
		out = append(out, Placement{
			Name:      "output_pin",
			Placement: cell.Coord{Y: 0, Z: row * (pl.cfg.GridSpacing + 1), X: dims.Length + 1},
			Turns:     2,
			Pins:      map[string]string{outputPort: net},
		})
		row++
	}

	newDims := cell.Shape{Height: dims.Height, Width: dims.Width, Length: dims.Length + 2}
	return out, newDims, nil
}

func solePort(cells cell.Pregenerated, name string) (string, error) {
	tmpl, err := cells.Lookup(name, 0)
	if err != nil {
		return "", fmt.Errorf("placer: place_pins requires a %q template: %w", name, err)
	}
	if len(tmpl.Ports) != 1 {
		return "", fmt.Errorf("placer: template %q must expose exactly one port, has %d", name, len(tmpl.Ports))
	}
	for portName := range tmpl.Ports {
		return portName, nil
	}
	panic("unreachable")
}

// PlacementToLayout pastes each placement's rotated template blocks into a
// dense Layout of the given dimensions.
func (pl *Placer) PlacementToLayout(dims cell.Shape, placements []Placement) (*Layout, error) {
	layout := NewLayout(dims)
	for _, p := range placements {
		tmpl, err := pl.cells.Lookup(p.Name, p.Turns)
		if err != nil {
			return nil, err
		}
		tmpl.Blocks.Each(func(c cell.Coord, blockID int16) {
			if blockID == 0 {
				return
			}
			data := tmpl.Data.Get(c)
			layout.SetBlock(p.Placement.Add(c), int(blockID), int(data))
		})
	}
	return layout, nil
}
