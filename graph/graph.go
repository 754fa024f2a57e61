package graph

import (
	"errors"
	"fmt"
	"iter"
	"slices"
	"strings"
)

// Sentinel errors for graph construction and queries.
var (
	// ErrVertexRange indicates a vertex id outside [0, NumVertices).
	ErrVertexRange = errors.New("graph: vertex out of range")

	// ErrSelfLoop indicates an edge whose endpoints coincide.
	ErrSelfLoop = errors.New("graph: self-loop not allowed")

	// ErrAsymmetric indicates adjacency lists that violate the
	// undirected invariant (u lists v but v does not list u).
	ErrAsymmetric = errors.New("graph: adjacency is not symmetric")

	// ErrDuplicateNeighbor indicates a neighbor repeated within one
	// vertex's adjacency list passed to FromAdjacency.
	ErrDuplicateNeighbor = errors.New("graph: duplicate neighbor in adjacency list")
)

// Graph is a sparse undirected interaction graph over vertices [0, V).
// It is immutable after construction; all methods are read-only and safe
// for concurrent use.
type Graph struct {
	adj [][]int
}

// New builds a Graph from a vertex count and an edge list.
//
// Contracts:
//   - numVertices ≥ 0; every endpoint must lie in [0, numVertices).
//   - Self-loops are rejected with ErrSelfLoop.
//   - Duplicate edges (in either orientation) are deduplicated.
//   - Each adjacency list is stored in ascending vertex order, making the
//     result canonical: two graphs built by New from the same edge set
//     always compare Equal.
//
// Complexity: O(V + E·log E) time, O(V + E) space.
func New(numVertices int, edges [][2]int) (*Graph, error) {
	if numVertices < 0 {
		return nil, fmt.Errorf("%w: vertex count %d", ErrVertexRange, numVertices)
	}

	adj := make([][]int, numVertices)
	seen := make(map[[2]int]struct{}, len(edges))
	for _, e := range edges {
		u, v := e[0], e[1]
		if u < 0 || u >= numVertices || v < 0 || v >= numVertices {
			return nil, fmt.Errorf("%w: edge <%d,%d>", ErrVertexRange, u, v)
		}
		if u == v {
			return nil, fmt.Errorf("%w: edge <%d,%d>", ErrSelfLoop, u, v)
		}
		if u > v {
			u, v = v, u
		}
		if _, dup := seen[[2]int{u, v}]; dup {
			continue
		}
		seen[[2]int{u, v}] = struct{}{}
		adj[u] = append(adj[u], v)
		adj[v] = append(adj[v], u)
	}
	for v := range adj {
		slices.Sort(adj[v])
	}

	return &Graph{adj: adj}, nil
}

// FromAdjacency builds a Graph from explicit per-vertex neighbor
// sequences, preserving their order.
//
// Contracts:
//   - Every listed neighbor must lie in [0, len(adj)) and differ from its
//     owner (ErrVertexRange, ErrSelfLoop).
//   - No neighbor may repeat within a single list (ErrDuplicateNeighbor).
//   - Lists must be symmetric: u lists v iff v lists u (ErrAsymmetric).
//
// Unlike New, neighbor order is taken verbatim, so graphs holding the same
// edges in different per-vertex orders are distinct under Equal.
//
// Complexity: O(V + E) time and space.
func FromAdjacency(adj [][]int) (*Graph, error) {
	n := len(adj)
	edges := make(map[[2]int]bool, n)
	cp := make([][]int, n)
	for u, nbrs := range adj {
		inList := make(map[int]struct{}, len(nbrs))
		cp[u] = slices.Clone(nbrs)
		for _, v := range nbrs {
			if v < 0 || v >= n {
				return nil, fmt.Errorf("%w: neighbor %d of vertex %d", ErrVertexRange, v, u)
			}
			if v == u {
				return nil, fmt.Errorf("%w: vertex %d", ErrSelfLoop, u)
			}
			if _, dup := inList[v]; dup {
				return nil, fmt.Errorf("%w: neighbor %d of vertex %d", ErrDuplicateNeighbor, v, u)
			}
			inList[v] = struct{}{}
			// Record each orientation; a half-edge left unmatched below
			// means the lists are asymmetric.
			if edges[[2]int{v, u}] {
				delete(edges, [2]int{v, u})
			} else {
				edges[[2]int{u, v}] = true
			}
		}
	}
	if len(edges) != 0 {
		for e := range edges {
			return nil, fmt.Errorf("%w: <%d,%d> has no mirror", ErrAsymmetric, e[0], e[1])
		}
	}

	return &Graph{adj: cp}, nil
}

// NumVertices reports the number of vertices. O(1).
func (g *Graph) NumVertices() int { return len(g.adj) }

// Degree reports the number of neighbors of v, or ErrVertexRange when v
// lies outside [0, NumVertices). O(1).
func (g *Graph) Degree(v int) (int, error) {
	if v < 0 || v >= len(g.adj) {
		return 0, fmt.Errorf("%w: vertex %d", ErrVertexRange, v)
	}

	return len(g.adj[v]), nil
}

// Neighbors returns a lazy, restartable iteration over the neighbors of v
// in stored order. The sequence may be ranged over any number of times.
// Fails with ErrVertexRange when v lies outside [0, NumVertices).
func (g *Graph) Neighbors(v int) (iter.Seq[int], error) {
	if v < 0 || v >= len(g.adj) {
		return nil, fmt.Errorf("%w: vertex %d", ErrVertexRange, v)
	}
	nbrs := g.adj[v]

	return func(yield func(int) bool) {
		for _, u := range nbrs {
			if !yield(u) {
				return
			}
		}
	}, nil
}

// Equal reports whether g and o have the same vertex count and, for every
// vertex, identical neighbor sequences. The comparison is order-sensitive:
// callers that want structural equality must construct both graphs through
// New (which canonicalizes neighbor order). O(V + E).
func (g *Graph) Equal(o *Graph) bool {
	if o == nil || len(g.adj) != len(o.adj) {
		return false
	}
	for v := range g.adj {
		if !slices.Equal(g.adj[v], o.adj[v]) {
			return false
		}
	}

	return true
}

// String renders the graph in its debug form: every undirected edge
// appears twice, once per endpoint, as <from,to> pairs in stored adjacency
// order. Edges of each vertex except the last are followed by ','; edges
// of the last vertex are each followed by ')'. Consumers compare these
// strings literally, so the layout is fixed.
func (g *Graph) String() string {
	var b strings.Builder
	b.WriteString("Graph(")
	last := len(g.adj) - 1
	for v, nbrs := range g.adj {
		for _, u := range nbrs {
			fmt.Fprintf(&b, "<%d,%d>", v, u)
			if v == last {
				b.WriteByte(')')
			} else {
				b.WriteByte(',')
			}
		}
	}

	return b.String()
}
