package router

import (
	"testing"

	"github.com/qmn/pershing/pkg/cell"
)

func TestMinimumSpanningTreeIsATree(t *testing.T) {
	coords := [][3]int{{0, 0, 0}, {0, 0, 5}, {0, 5, 0}, {0, 5, 5}}
	mst := minimumSpanningTree(len(coords), func(i int) [3]int { return coords[i] })
	if len(mst) != len(coords)-1 {
		t.Fatalf("expected %d edges, got %d", len(coords)-1, len(mst))
	}

	uf := newUnionFind(len(coords))
	for _, e := range mst {
		uf.union(e.u, e.v)
	}
	root := uf.find(0)
	for i := 1; i < len(coords); i++ {
		if uf.find(i) != root {
			t.Fatalf("node %d not connected to the rest of the tree", i)
		}
	}
}

func TestDagFromOutputMSTOrientsEveryEdgeFromADriver(t *testing.T) {
	mst := []edge{{u: 0, v: 1}, {u: 1, v: 2}, {u: 2, v: 3}}
	isOutput := func(i int) bool { return i == 0 }

	dag := dagFromOutputMST(mst, isOutput)
	if len(dag) != len(mst) {
		t.Fatalf("expected %d dag edges, got %d", len(mst), len(dag))
	}

	driven := map[int]bool{0: true}
	for _, e := range dag {
		if !driven[e.driver] {
			t.Fatalf("edge %+v driven by a node not yet reached from the output", e)
		}
		driven[e.driven] = true
	}
}

func TestDumbRouteReachesDestination(t *testing.T) {
	a := cell.Coord{Y: 0, Z: 0, X: 0}
	b := cell.Coord{Y: 0, Z: 3, X: 4}
	net, err := dumbRoute(a, b)
	if err != nil {
		t.Fatalf("dumbRoute returned error: %v", err)
	}
	if net[0] != a || net[len(net)-1] != b {
		t.Fatalf("dumb route endpoints = %v, %v; want %v, %v", net[0], net[len(net)-1], a, b)
	}
	if len(net) != 1+3+4 {
		t.Fatalf("dumb route length = %d, want %d", len(net), 1+3+4)
	}
}

func TestDumbRouteErrorsOnYOnlyMismatch(t *testing.T) {
	a := cell.Coord{Y: 0, Z: 2, X: 2}
	b := cell.Coord{Y: 1, Z: 2, X: 2}
	if _, err := dumbRoute(a, b); err == nil {
		t.Fatalf("expected error for a Y-only coordinate mismatch, got nil")
	}
}

func TestNormalizeScoresStaysWithinMargin(t *testing.T) {
	scores := map[string][]float64{"n1": {1, 5, 10}}
	normalized := normalizeScores(scores, 0.1)
	for _, s := range normalized["n1"] {
		if s < 0.1-1e-9 || s > 0.9+1e-9 {
			t.Fatalf("normalized score %v outside [0.1, 0.9]", s)
		}
	}
}

func TestMazeRouterFindsAPathOnAnEmptyGrid(t *testing.T) {
	mr := NewMazeRouter(cell.Shape{Height: 3, Width: 5, Length: 5}, 1000)
	a := cell.Coord{Y: 0, Z: 0, X: 0}
	b := cell.Coord{Y: 0, Z: 0, X: 4}
	path, err := mr.Route(a, b, map[cell.Coord]bool{})
	if err != nil {
		t.Fatalf("Route: %v", err)
	}
	if path[0] != a || path[len(path)-1] != b {
		t.Fatalf("path endpoints = %v, %v; want %v, %v", path[0], path[len(path)-1], a, b)
	}
}
