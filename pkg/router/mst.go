package router

import "sort"

type edge struct {
	u, v   int
	weight int
}

// unionFind is a simple union-by-index disjoint-set structure sized at
// construction.
type unionFind struct {
	parent []int
}

func newUnionFind(n int) *unionFind {
	parent := make([]int, n)
	for i := range parent {
		parent[i] = i
	}
	return &unionFind{parent: parent}
}

func (uf *unionFind) find(u int) int {
	for uf.parent[u] != u {
		uf.parent[u] = uf.parent[uf.parent[u]]
		u = uf.parent[u]
	}
	return u
}

func (uf *unionFind) union(u, v int) {
	ru, rv := uf.find(u), uf.find(v)
	if ru != rv {
		uf.parent[ru] = rv
	}
}

// manhattan returns the Manhattan distance between two route coordinates.
func manhattan(a, b [3]int) int {
	d := 0
	for i := 0; i < 3; i++ {
		delta := a[i] - b[i]
		if delta < 0 {
			delta = -delta
		}
		d += delta
	}
	return d
}

// minimumSpanningTree computes an MST over a complete graph of size n using
// Kruskal's algorithm, returning the accepted edges in the order Kruskal
// processed them.
func minimumSpanningTree(n int, coord func(int) [3]int) []edge {
	edges := make([]edge, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			edges = append(edges, edge{u: i, v: j, weight: manhattan(coord(i), coord(j))})
		}
	}
	sort.SliceStable(edges, func(i, j int) bool { return edges[i].weight < edges[j].weight })

	uf := newUnionFind(n)
	mst := make([]edge, 0, n-1)
	for _, e := range edges {
		if uf.find(e.u) != uf.find(e.v) {
			uf.union(e.u, e.v)
			mst = append(mst, e)
		}
	}
	return mst
}

// dagEdge is one oriented MST edge: driver index first, driven second.
type dagEdge struct {
	driver, driven int
}

// dagFromOutputMST orients an MST into a DAG rooted at the pins marked
// is_output: seed the driver set with every output pin, then repeatedly
// walk the MST edges in insertion order, resolving any edge with one
// endpoint already in the driver set.
func dagFromOutputMST(mst []edge, isOutput func(int) bool) []dagEdge {
	drivers := make(map[int]bool)
	for _, e := range mst {
		if isOutput(e.u) {
			drivers[e.u] = true
		}
		if isOutput(e.v) {
			drivers[e.v] = true
		}
	}

	dag := make([]dagEdge, 0, len(mst))
	seen := make([]bool, len(mst))
	remaining := len(mst)
	for remaining > 0 {
		progressed := false
		for i, e := range mst {
			if seen[i] {
				continue
			}
			switch {
			case drivers[e.u]:
				dag = append(dag, dagEdge{driver: e.u, driven: e.v})
				drivers[e.v] = true
				seen[i] = true
				remaining--
				progressed = true
			case drivers[e.v]:
				dag = append(dag, dagEdge{driver: e.v, driven: e.u})
				drivers[e.u] = true
				seen[i] = true
				remaining--
				progressed = true
			}
		}
		if !progressed {
			// No pin in this net is marked is_output (a malformed net);
			// root arbitrarily at the MST's first unresolved endpoint so
			// routing can still proceed.
			e := mst[firstUnseen(seen)]
			dag = append(dag, dagEdge{driver: e.u, driven: e.v})
			drivers[e.u] = true
			drivers[e.v] = true
			seen[firstUnseen(seen)] = true
			remaining--
		}
	}
	return dag
}

func firstUnseen(seen []bool) int {
	for i, s := range seen {
		if !s {
			return i
		}
	}
	return -1
}
