package cell

import (
	"strings"
	"testing"
)

const testLibraryYAML = `
library_name: test
cells:
  inv:
    blocks: [[[1, 2]]]
    data: [[[0, 0]]]
    pins:
      in:
        coordinates: [0, 0, 0]
        facing: west
        direction: input
        level: 0
      out:
        coordinates: [0, 0, 1]
        facing: east
        direction: output
        level: 0
    delay:
      combinational: 1
`

func TestLoadLibrary(t *testing.T) {
	lib, err := LoadLibrary(strings.NewReader(testLibraryYAML))
	if err != nil {
		t.Fatalf("LoadLibrary() error: %v", err)
	}
	if lib.Name != "test" {
		t.Errorf("Name = %q, want %q", lib.Name, "test")
	}
	tmpl, ok := lib.Cells["inv"]
	if !ok {
		t.Fatal("library is missing the inv cell")
	}
	if !tmpl.Delay.HasCombinational || tmpl.Delay.Combinational != 1 {
		t.Errorf("Delay = %+v, want combinational=1", tmpl.Delay)
	}
	in, ok := tmpl.Ports["in"]
	if !ok || in.Direction != Input {
		t.Errorf("port %q = %+v, want an input pin", "in", in)
	}
}

func TestLoadLibraryInvalidPinDirection(t *testing.T) {
	bad := strings.Replace(testLibraryYAML, "direction: input", "direction: sideways", 1)
	_, err := LoadLibrary(strings.NewReader(bad))
	if err == nil {
		t.Fatal("expected an error for an invalid pin direction, got nil")
	}
}

func TestLoadLibraryMalformedYAML(t *testing.T) {
	_, err := LoadLibrary(strings.NewReader("cells: [this is not a mapping"))
	if err == nil {
		t.Fatal("expected a parse error for malformed YAML, got nil")
	}
}

func TestPregenerateAndLookup(t *testing.T) {
	lib, err := LoadLibrary(strings.NewReader(testLibraryYAML))
	if err != nil {
		t.Fatalf("LoadLibrary() error: %v", err)
	}
	pregen := Pregenerate(lib)

	for turns := 0; turns < 4; turns++ {
		tmpl, err := pregen.Lookup("inv", turns)
		if err != nil {
			t.Fatalf("Lookup(inv, %d) error: %v", turns, err)
		}
		if tmpl.Name != "inv" {
			t.Errorf("Lookup(inv, %d).Name = %q, want %q", turns, tmpl.Name, "inv")
		}
	}

	if _, err := pregen.Lookup("missing", 0); err == nil {
		t.Error("Lookup(missing, 0) should have errored")
	}

	// mod4 wraps turns, so 4 full turns land back on rotation 0.
	r0, _ := pregen.Lookup("inv", 0)
	r4, _ := pregen.Lookup("inv", 4)
	if r0 != r4 {
		t.Error("Lookup(inv, 0) and Lookup(inv, 4) should return the same cached rotation")
	}
}
