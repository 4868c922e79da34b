// Package netlist models a parsed gate-level netlist and
// parses the BLIF-style text format it is read from.
package netlist

// CellInstance is one `.subckt` instantiation: a template name plus its
// pin-to-net mapping.
type CellInstance struct {
	Name string
	Pins map[string]string // port name -> net name
}

// Names is a single-output-cover `.names` entry, kept for completeness of
// the BLIF grammar even though the core engines only consume
// `.subckt` cells.
type Names struct {
	Inputs []string
	Output string
	Cover  []string
}

// Netlist is the parsed form of a BLIF file: a model name, the primary
// I/O and clock net lists, and the cell instances that make up the
// circuit.
type Netlist struct {
	Model   string
	Inputs  []string
	Outputs []string
	Clocks  []string
	Cells   []CellInstance
	Names   []Names
}

// Nets returns the set of net names referenced by any cell instance's pin
// map.
func (n *Netlist) Nets() map[string]bool {
	nets := make(map[string]bool)
	for _, c := range n.Cells {
		for _, net := range c.Pins {
			nets[net] = true
		}
	}
	return nets
}
