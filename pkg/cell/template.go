package cell

import (
	"fmt"

	"github.com/qmn/pershing/pkg/blocks"
)

// Port describes one named pin of a cell template.
type Port struct {
	Coord     Coord
	Facing    Facing
	Direction PinDirection
	Level     int
}

// Delay holds a template's timing characteristics. Combinational is
// optional; a zero value means "no combinational delay modeled".
type Delay struct {
	Combinational    int
	HasCombinational bool
}

// Template is a CellTemplate: a 3D block layout with pin geometry and a
// per-cell delay. blocks, data, and mask always share one shape, an
// invariant NewTemplate enforces.
type Template struct {
	Name   string
	Blocks *Grid3
	Data   *Grid3
	Mask   *Grid3
	Ports  map[string]Port
	Delay  Delay
}

// ShapeMismatchError reports that a template's blocks/data/mask/port
// geometry disagree.
type ShapeMismatchError struct {
	Template string
	Reason   string
}

func (e *ShapeMismatchError) Error() string {
	return fmt.Sprintf("cell library: shape mismatch in template %q: %s", e.Template, e.Reason)
}

// NewTemplate validates and constructs a Template: blocks, data, and mask
// must share identical shape, and every port coordinate must lie within
// that shape.
func NewTemplate(name string, blocks, data, mask *Grid3, ports map[string]Port, delay Delay) (*Template, error) {
	if blocks.Shape != data.Shape {
		return nil, &ShapeMismatchError{name, fmt.Sprintf("blocks shape %+v != data shape %+v", blocks.Shape, data.Shape)}
	}
	if mask != nil && blocks.Shape != mask.Shape {
		return nil, &ShapeMismatchError{name, fmt.Sprintf("blocks shape %+v != mask shape %+v", blocks.Shape, mask.Shape)}
	}
	if mask == nil {
		mask = NewGrid3(blocks.Shape)
		for y := 0; y < blocks.Shape.Height; y++ {
			for z := 0; z < blocks.Shape.Width; z++ {
				for x := 0; x < blocks.Shape.Length; x++ {
					mask.Set(Coord{y, z, x}, 1)
				}
			}
		}
	}
	for pin, p := range ports {
		if !blocks.In(p.Coord) {
			return nil, &ShapeMismatchError{name, fmt.Sprintf("port %q coord %+v outside shape %+v", pin, p.Coord, blocks.Shape)}
		}
	}
	return &Template{Name: name, Blocks: blocks, Data: data, Mask: mask, Ports: ports, Delay: delay}, nil
}

// Rot90 returns a new Template rotated turns*90 degrees counter-clockwise
// about Y: block/data/mask grids are rotated per rotate.go, port
// coordinates rotate in lockstep, and port facings advance through
// [east, north, west, south] by +turns.
func (t *Template) Rot90(turns int) *Template {
	turns = mod4(turns)
	if turns == 0 {
		return t.clone()
	}

	blocks := t.Blocks
	data := t.Data
	mask := t.Mask
	ports := t.Ports

	for i := 0; i < turns; i++ {
		preShape := blocks.Shape
		newBlocks := rot90(blocks)
		newData := rotateDataGrid(blocks, data)
		newMask := rot90(mask)

		newPorts := make(map[string]Port, len(ports))
		for name, p := range ports {
			newPorts[name] = Port{
				Coord:     rotateCoordCCW(p.Coord, preShape),
				Facing:    p.Facing.Rotate(1),
				Direction: p.Direction,
				Level:     p.Level,
			}
		}

		blocks, data, mask, ports = newBlocks, newData, newMask, newPorts
	}

	return &Template{Name: t.Name, Blocks: blocks, Data: data, Mask: mask, Ports: ports, Delay: t.Delay}
}

func (t *Template) clone() *Template {
	ports := make(map[string]Port, len(t.Ports))
	for k, v := range t.Ports {
		ports[k] = v
	}
	return &Template{Name: t.Name, Blocks: t.Blocks.Clone(), Data: t.Data.Clone(), Mask: t.Mask.Clone(), Ports: ports, Delay: t.Delay}
}

// rotateDataGrid rotates the data nibble grid geometrically (like blocks),
// then rewrites each nibble through blocks.RotateData for block IDs whose
// data encodes a facing (torches, repeaters, comparators).
func rotateDataGrid(blockGrid, dataGrid *Grid3) *Grid3 {
	rotatedBlocks := rot90(blockGrid)
	rotatedData := rot90(dataGrid)
	out := NewGrid3(rotatedData.Shape)
	rotatedData.Each(func(c Coord, v int16) {
		blockID := int(rotatedBlocks.Get(c))
		out.Set(c, int16(blocks.RotateData(blockID, int(v), 1)))
	})
	return out
}
