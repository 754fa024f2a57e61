// Package table implements factor tables: tabulated functions over small
// ordered sets of discrete variables, the substrate of elimination-based
// exact inference.
//
// 🚀 Representation
//
//	A Table[Y] is a flat buffer of Y values plus one Var triple per
//	variable: (Index, DomSize, StepSize). The value of a joint assignment
//	lives at offset Σ valueᵢ·StepSizeᵢ — flat mixed-radix addressing
//	instead of nested containers, which keeps combine/eliminate loops
//	cache-friendly and allocation-free per cell.
//
// ✨ Primitives
//
//   - Value / Offset / Decode — addressing round-trip for any assignment
//   - Combine(other, op)      — pointwise merge over the union of the two
//     variable sets (the exponential cost driver; bounding union width is
//     the caller's elimination-order problem, not the table's)
//   - Eliminate(idx, reduce)  — reduce a variable out (sum-out, ...)
//   - EliminateMin(idx)       — min-out a variable and return a parallel
//     arg-min trace table, consumed later for back-substitution
//
// Y ranges over the fixed-width integer and floating point types of the
// Value constraint; operators follow the native numeric semantics of Y
// (no overflow handling beyond the type's range).
//
// Tables are immutable after construction and safe for concurrent reads.
package table
