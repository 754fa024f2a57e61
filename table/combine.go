package table

import (
	"fmt"
	"slices"
)

// Combine produces a new table over the union of the two input variable
// sets, whose buffer holds op(a, b) for every joint assignment of the
// union, where a and b are the inputs' values at that assignment's
// projection onto their own variables.
//
// Contracts:
//   - a variable present in both inputs must declare the same domain size
//     (ErrDimensionMismatch);
//   - the output is laid out contiguously with union variables in
//     ascending Index order (first variable fastest), so Combine results
//     are canonical regardless of input variable orders.
//
// This is the exponential cost driver of exact inference: time and space
// are Θ(product of union domain sizes). Bounding union width via a good
// elimination order is the caller's concern.
func (t *Table[Y]) Combine(other *Table[Y], op func(a, b Y) Y) (*Table[Y], error) {
	// Union variables, ascending by index, domain sizes cross-checked.
	byIndex := make(map[int]Var, len(t.vars)+len(other.vars))
	for _, v := range t.vars {
		byIndex[v.Index] = v
	}
	for _, v := range other.vars {
		if u, ok := byIndex[v.Index]; ok && u.DomSize != v.DomSize {
			return nil, fmt.Errorf("%w: variable %d has domain sizes %d and %d",
				ErrDimensionMismatch, v.Index, u.DomSize, v.DomSize)
		}
		byIndex[v.Index] = v
	}
	indices := make([]int, 0, len(byIndex))
	for idx := range byIndex {
		indices = append(indices, idx)
	}
	slices.Sort(indices)

	uvars := make([]Var, len(indices))
	length := 1
	for i, idx := range indices {
		uvars[i] = Var{Index: idx, DomSize: byIndex[idx].DomSize, StepSize: length}
		length *= uvars[i].DomSize
	}

	// Per union variable, its stride into each input (0 when absent).
	strideA := make([]int, len(uvars))
	strideB := make([]int, len(uvars))
	for i, v := range uvars {
		if p := t.findVar(v.Index); p >= 0 {
			strideA[i] = t.vars[p].StepSize
		}
		if p := other.findVar(v.Index); p >= 0 {
			strideB[i] = other.vars[p].StepSize
		}
	}

	// Odometer walk over all joint assignments: the output offset runs
	// 0..length-1 in lockstep, input offsets advance by stride deltas.
	out := make([]Y, length)
	digits := make([]int, len(uvars))
	offA, offB := 0, 0
	for pos := 0; ; pos++ {
		out[pos] = op(t.values[offA], other.values[offB])

		i := 0
		for ; i < len(uvars); i++ {
			digits[i]++
			offA += strideA[i]
			offB += strideB[i]
			if digits[i] < uvars[i].DomSize {
				break
			}
			digits[i] = 0
			offA -= strideA[i] * uvars[i].DomSize
			offB -= strideB[i] * uvars[i].DomSize
		}
		if i == len(uvars) {
			break
		}
	}

	return &Table[Y]{vars: uvars, values: out}, nil
}
