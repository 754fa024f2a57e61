// Package orang is an in-memory kernel for combinatorial energy
// minimization over sparse pairwise-interaction models (Ising / QUBO).
//
// 🚀 What is orang?
//
//	A small, deterministic library that brings together the building
//	blocks of exact and heuristic discrete minimization:
//	  • graph/    — sparse interaction graphs: adjacency, degree, equality
//	  • table/    — factor tables over discrete variables with flat
//	    mixed-radix addressing; combine & eliminate primitives
//	  • solution/ — bounded, deduplicated, value-ordered best-solution sets
//	  • elim/     — a sequential elimination driver with arg-min
//	    back-substitution for the best assignments
//	  • descent/  — steepest single-flip descent that relaxes batches of
//	    spin states to local minima, in parallel
//
// ✨ Why choose orang?
//
//   - Deterministic — fixed seeds and explicit tie-break rules everywhere
//   - Pure Go — no cgo; data structures are immutable after construction
//   - Composable — tables and solution sets are the substrate an external
//     elimination planner (tree decomposition, variable ordering) drives
//
// A typical exact pipeline builds factor tables from a problem's biases
// and couplers, combines and eliminates them along a caller-chosen order,
// and collects the best full assignments in a solution set. A typical
// heuristic pipeline feeds sampled states through descent.Refine to
// polish each one to a single-flip-stable local minimum.
//
//	go get github.com/annealkit/orang
package orang
