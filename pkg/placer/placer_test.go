package placer

import (
	"math/rand"
	"testing"

	"github.com/qmn/pershing/pkg/cell"
	"github.com/qmn/pershing/pkg/config"
	"github.com/qmn/pershing/pkg/netlist"
)

func oneByOneTemplate(t *testing.T, name string, blockID int16) *cell.Template {
	t.Helper()
	blocks := cell.NewGrid3(cell.Shape{Height: 1, Width: 1, Length: 1})
	blocks.Set(cell.Coord{}, blockID)
	data := cell.NewGrid3(cell.Shape{Height: 1, Width: 1, Length: 1})
	ports := map[string]cell.Port{
		"Y": {Coord: cell.Coord{}, Facing: cell.East, Direction: cell.Output},
	}
	tmpl, err := cell.NewTemplate(name, blocks, data, nil, ports, cell.Delay{})
	if err != nil {
		t.Fatalf("build template %q: %v", name, err)
	}
	return tmpl
}

func pregenOf(t *testing.T, tmpls ...*cell.Template) cell.Pregenerated {
	t.Helper()
	out := make(cell.Pregenerated, len(tmpls))
	for _, tmpl := range tmpls {
		var rotations [4]*cell.Template
		cur := tmpl
		for i := 0; i < 4; i++ {
			rotations[i] = cur
			cur = cur.Rot90(1)
		}
		out[tmpl.Name] = rotations
	}
	return out
}

func TestInitialPlacementEmptyNetlist(t *testing.T) {
	pregen := pregenOf(t, oneByOneTemplate(t, "buf", 1))
	pl := NewPlacer(pregen, config.DefaultPlacerConfig(), rand.New(rand.NewSource(1)))

	placements, dims := pl.InitialPlacement(&netlist.Netlist{})
	if len(placements) != 0 {
		t.Fatalf("expected no placements, got %d", len(placements))
	}
	if dims.Height != 1 {
		t.Fatalf("expected height 1 from the library's max cell height, got %d", dims.Height)
	}
}

func TestInitialPlacementNonOverlapping(t *testing.T) {
	pregen := pregenOf(t, oneByOneTemplate(t, "buf", 1))
	pl := NewPlacer(pregen, config.DefaultPlacerConfig(), rand.New(rand.NewSource(1)))

	nl := &netlist.Netlist{Cells: []netlist.CellInstance{
		{Name: "buf", Pins: map[string]string{"Y": "n1"}},
		{Name: "buf", Pins: map[string]string{"Y": "n2"}},
		{Name: "buf", Pins: map[string]string{"Y": "n3"}},
		{Name: "buf", Pins: map[string]string{"Y": "n4"}},
	}}

	placements, dims := pl.InitialPlacement(nl)
	if len(placements) != 4 {
		t.Fatalf("expected 4 placements, got %d", len(placements))
	}
	occ := pl.occupancy(placements)
	// A 1x1x1 body with Y padding of 1 top/bottom occupies nothing, so
	// overlap can't be detected this way; instead assert distinct anchors.
	seen := map[cell.Coord]bool{}
	for _, p := range placements {
		if seen[p.Placement] {
			t.Fatalf("duplicate anchor %+v", p.Placement)
		}
		seen[p.Placement] = true
	}
	_ = occ
	_ = dims
}

func TestScoreWireLengthOfTwoConnectedCells(t *testing.T) {
	tmpl := oneByOneTemplate(t, "buf", 1)
	pregen := pregenOf(t, tmpl)
	pl := NewPlacer(pregen, config.DefaultPlacerConfig(), rand.New(rand.NewSource(1)))

	placements := []Placement{
		{Name: "buf", Placement: cell.Coord{Y: 0, Z: 0, X: 0}, Pins: map[string]string{"Y": "n1"}},
		{Name: "buf", Placement: cell.Coord{Y: 0, Z: 3, X: 4}, Pins: map[string]string{"Y": "n1"}},
	}
	dims := cell.Shape{Height: 10, Width: 10, Length: 10}

	got := pl.Score(placements, dims)
	want := 7.0 // half-perimeter: dz=3, dx=4, dy=0
	if got != want {
		t.Fatalf("score = %v, want %v", got, want)
	}
}

func TestShrinkTranslatesToOrigin(t *testing.T) {
	pregen := pregenOf(t, oneByOneTemplate(t, "buf", 1))
	pl := NewPlacer(pregen, config.DefaultPlacerConfig(), rand.New(rand.NewSource(1)))

	placements := []Placement{
		{Name: "buf", Placement: cell.Coord{Y: 2, Z: 3, X: 4}},
		{Name: "buf", Placement: cell.Coord{Y: 2, Z: 5, X: 6}},
	}
	shrunk, dims := pl.Shrink(placements)

	for _, p := range shrunk {
		if p.Placement.Y < 0 || p.Placement.Z < 0 || p.Placement.X < 0 {
			t.Fatalf("placement %+v has a negative coordinate after shrink", p)
		}
	}
	if dims.Width != 3 || dims.Length != 3 {
		t.Fatalf("dims = %+v, want width/length 3", dims)
	}
}

func TestAnnealNeverWorsensTheBestScore(t *testing.T) {
	tmpl := oneByOneTemplate(t, "buf", 1)
	pregen := pregenOf(t, tmpl)
	cfg := config.DefaultPlacerConfig()
	cfg.Iterations = 5
	cfg.Generations = 5
	pl := NewPlacer(pregen, cfg, rand.New(rand.NewSource(7)))

	nl := &netlist.Netlist{Cells: []netlist.CellInstance{
		{Name: "buf", Pins: map[string]string{"Y": "n1"}},
		{Name: "buf", Pins: map[string]string{"Y": "n1"}},
		{Name: "buf", Pins: map[string]string{"Y": "n1"}},
	}}
	initial, dims := pl.InitialPlacement(nl)
	initialScore := pl.Score(initial, dims)

	best := pl.Anneal(initial, dims, nil)
	bestScore := pl.Score(best, dims)

	if bestScore > initialScore {
		t.Fatalf("annealed score %v worse than initial %v", bestScore, initialScore)
	}
}

func TestAnnealRespectsCancellation(t *testing.T) {
	tmpl := oneByOneTemplate(t, "buf", 1)
	pregen := pregenOf(t, tmpl)
	cfg := config.DefaultPlacerConfig()
	cfg.Iterations = 1_000_000
	pl := NewPlacer(pregen, cfg, rand.New(rand.NewSource(3)))

	nl := &netlist.Netlist{Cells: []netlist.CellInstance{
		{Name: "buf", Pins: map[string]string{"Y": "n1"}},
	}}
	initial, dims := pl.InitialPlacement(nl)

	cancel := make(chan struct{})
	close(cancel)
	best := pl.Anneal(initial, dims, cancel)
	if len(best) != 1 {
		t.Fatalf("expected the initial placement back, got %d placements", len(best))
	}
}
