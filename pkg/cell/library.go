package cell

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Library is the in-memory form of a parsed cell-library document: a name plus a mapping from cell name to Template.
type Library struct {
	Name  string
	Cells map[string]*Template
}

// rawLibrary mirrors the on-disk YAML document shape.
type rawLibrary struct {
	LibraryName string             `yaml:"library_name"`
	Cells       map[string]rawCell `yaml:"cells"`
}

type rawCell struct {
	Blocks [][][]int          `yaml:"blocks"`
	Data   [][][]int          `yaml:"data"`
	Mask   [][][]int          `yaml:"mask"`
	Pins   map[string]rawPin  `yaml:"pins"`
	Delay  rawDelay           `yaml:"delay"`
}

type rawPin struct {
	Coordinates [3]int `yaml:"coordinates"`
	Facing      string `yaml:"facing"`
	Direction   string `yaml:"direction"`
	Level       int    `yaml:"level"`
}

type rawDelay struct {
	Combinational    *int `yaml:"combinational"`
}

// LoadLibrary parses the structured cell-library document.
func LoadLibrary(r io.Reader) (*Library, error) {
	var raw rawLibrary
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("cell library: parse error: %w", err)
	}

	lib := &Library{Name: raw.LibraryName, Cells: make(map[string]*Template, len(raw.Cells))}
	for name, rc := range raw.Cells {
		tmpl, err := buildTemplate(name, rc)
		if err != nil {
			return nil, err
		}
		lib.Cells[name] = tmpl
	}
	return lib, nil
}

func buildTemplate(name string, rc rawCell) (*Template, error) {
	blocksGrid := Grid3FromNested(rc.Blocks)
	dataGrid := Grid3FromNested(rc.Data)

	var maskGrid *Grid3
	if rc.Mask != nil {
		maskGrid = Grid3FromNested(rc.Mask)
	}

	ports := make(map[string]Port, len(rc.Pins))
	for pin, rp := range rc.Pins {
		dir := PinDirection(rp.Direction)
		if dir != Input && dir != Output {
			return nil, &ShapeMismatchError{name, fmt.Sprintf("pin %q has invalid direction %q", pin, rp.Direction)}
		}
		ports[pin] = Port{
			Coord:     Coord{rp.Coordinates[0], rp.Coordinates[1], rp.Coordinates[2]},
			Facing:    Facing(rp.Facing),
			Direction: dir,
			Level:     rp.Level,
		}
	}

	delay := Delay{}
	if rc.Delay.Combinational != nil {
		delay.Combinational = *rc.Delay.Combinational
		delay.HasCombinational = true
	}

	return NewTemplate(name, blocksGrid, dataGrid, maskGrid, ports, delay)
}

// Pregenerated maps a cell name to its four yaw rotations, indexed 0..3,
// produced once by Pregenerate and immutable thereafter.
type Pregenerated map[string][4]*Template

// Pregenerate materializes all four 90-degree rotations of every template
// in the library so the placer and router can look up any (name, turns)
// pair in constant time.
func Pregenerate(lib *Library) Pregenerated {
	out := make(Pregenerated, len(lib.Cells))
	for name, tmpl := range lib.Cells {
		var rotations [4]*Template
		cur := tmpl
		for turns := 0; turns < 4; turns++ {
			rotations[turns] = cur
			cur = cur.Rot90(1)
		}
		out[name] = rotations
	}
	return out
}

// Lookup returns the template for name at the given turn count (0..3).
func (p Pregenerated) Lookup(name string, turns int) (*Template, error) {
	rotations, ok := p[name]
	if !ok {
		return nil, fmt.Errorf("cell library: unknown cell %q", name)
	}
	return rotations[mod4(turns)], nil
}
