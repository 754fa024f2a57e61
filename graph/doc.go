// Package graph provides the sparse undirected interaction graph that
// describes which variables of an energy model interact.
//
// The graph is purely structural: it stores vertices and adjacency, never
// weights (weights live in factor tables and coupler lists). It is built
// once from an edge list and is immutable afterwards, so all accessors are
// safe for concurrent use without locking.
//
// Two construction paths exist:
//
//   - New(numVertices, edges) — canonical: endpoints are validated,
//     duplicate edges are deduplicated, and each adjacency list is stored
//     in ascending order.
//   - FromAdjacency(adj) — explicit: adjacency lists are taken in the
//     given order (after a symmetry check), which matters because Equal
//     compares stored neighbor sequences order-sensitively.
//
// Neighbors(v) yields a lazy, restartable iteration over a vertex's
// neighbors in stored order; Degree and NumVertices are O(1).
//
// Complexity: construction O(V + E·log E); all queries O(1) or O(deg).
package graph
