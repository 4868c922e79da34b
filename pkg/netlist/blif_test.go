package netlist

import (
	"strings"
	"testing"
)

func TestLoadSimpleNetlist(t *testing.T) {
	src := `
.model top
.inputs a b
.outputs y
.subckt and2 a=a b=b y=n1
.subckt inv a=n1 y=y
.end
`
	nl, err := Load(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if nl.Model != "top" {
		t.Errorf("Model = %q, want %q", nl.Model, "top")
	}
	if len(nl.Inputs) != 2 || len(nl.Outputs) != 1 {
		t.Fatalf("Inputs/Outputs = %v/%v", nl.Inputs, nl.Outputs)
	}
	if len(nl.Cells) != 2 {
		t.Fatalf("Cells = %v, want 2 entries", nl.Cells)
	}
	if nl.Cells[0].Pins["y"] != "n1" {
		t.Errorf("and2's y pin = %q, want n1", nl.Cells[0].Pins["y"])
	}
}

func TestLoadLineContinuation(t *testing.T) {
	src := `
.model top
.inputs a \
  b c
.outputs y
.subckt buf a=a y=y
.end
`
	nl, err := Load(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	want := []string{"a", "b", "c"}
	if len(nl.Inputs) != len(want) {
		t.Fatalf("Inputs = %v, want %v", nl.Inputs, want)
	}
	for i, n := range want {
		if nl.Inputs[i] != n {
			t.Errorf("Inputs[%d] = %q, want %q", i, nl.Inputs[i], n)
		}
	}
}

func TestLoadCommentsAndBlankLines(t *testing.T) {
	src := `
# a leading comment
.model top  # trailing comment too

.inputs a
.outputs a
.end
`
	nl, err := Load(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if nl.Model != "top" {
		t.Errorf("Model = %q, want %q", nl.Model, "top")
	}
}

func TestLoadNamesCover(t *testing.T) {
	src := `
.model top
.inputs a b
.outputs y
.names a b y
11 1
.end
`
	nl, err := Load(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if len(nl.Names) != 1 {
		t.Fatalf("Names = %v, want 1 entry", nl.Names)
	}
	n := nl.Names[0]
	if n.Output != "y" || len(n.Inputs) != 2 {
		t.Errorf("Names[0] = %+v, want output y with 2 inputs", n)
	}
	if len(n.Cover) != 1 || n.Cover[0] != "11 1" {
		t.Errorf("Names[0].Cover = %v, want [\"11 1\"]", n.Cover)
	}
}

func TestLoadUnknownDirective(t *testing.T) {
	src := ".model top\n.bogus x\n.end\n"
	_, err := Load(strings.NewReader(src))
	if err == nil {
		t.Fatal("expected a parse error for an unknown directive, got nil")
	}
	pe, ok := err.(*ParseError)
	if !ok {
		t.Fatalf("expected *ParseError, got %T", err)
	}
	if pe.Line != 2 {
		t.Errorf("ParseError.Line = %d, want 2", pe.Line)
	}
}

func TestLoadMalformedSubckt(t *testing.T) {
	src := ".model top\n.subckt inv a\n.end\n"
	_, err := Load(strings.NewReader(src))
	if err == nil {
		t.Fatal("expected a parse error for a malformed .subckt pin connection, got nil")
	}
}

func TestLoadMissingModelName(t *testing.T) {
	_, err := Load(strings.NewReader(".model\n.end\n"))
	if err == nil {
		t.Fatal("expected a parse error for a bare .model directive, got nil")
	}
}

func TestNetlistNets(t *testing.T) {
	nl := &Netlist{
		Cells: []CellInstance{
			{Name: "and2", Pins: map[string]string{"a": "n0", "b": "n1", "y": "n2"}},
			{Name: "inv", Pins: map[string]string{"a": "n2", "y": "n3"}},
		},
	}
	nets := nl.Nets()
	for _, want := range []string{"n0", "n1", "n2", "n3"} {
		if !nets[want] {
			t.Errorf("Nets() is missing %q", want)
		}
	}
	if len(nets) != 4 {
		t.Errorf("Nets() returned %d entries, want 4", len(nets))
	}
}
