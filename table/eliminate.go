package table

import "fmt"

// Eliminate produces a new table with the given variable removed, where
// each remaining joint assignment's value is the reduction, under reduce,
// over every setting of the eliminated variable (e.g. addition to sum a
// variable out). The reduction is seeded with the setting-0 value and
// folds settings in ascending order.
//
// The remaining variables keep their stored order and are re-laid-out
// contiguously (first variable fastest). Fails with ErrVarNotFound when
// the table has no variable with that index.
//
// Complexity: Θ(Len) time, Θ(Len / domSize) space.
func (t *Table[Y]) Eliminate(index int, reduce func(acc, next Y) Y) (*Table[Y], error) {
	out, _, err := t.eliminate(index, reduce, false)

	return out, err
}

// EliminateMin is Eliminate with minimum-reduction, additionally returning
// an arg-min trace: a Table[int] with identical remaining variables and
// addressing, whose value at each remaining joint assignment is the
// lowest setting of the eliminated variable that achieves the minimum.
// The trace is the input back-substitution needs to reconstruct full
// solutions after all eliminations are done.
func (t *Table[Y]) EliminateMin(index int) (*Table[Y], *Table[int], error) {
	return t.eliminate(index, func(acc, next Y) Y {
		if next < acc {
			return next
		}
		return acc
	}, true)
}

// eliminate removes the variable at the given problem index, reducing its
// settings. When trace is true, reduce must be the minimum and the second
// return value records the arg-min setting per remaining assignment.
func (t *Table[Y]) eliminate(index int, reduce func(acc, next Y) Y, trace bool) (*Table[Y], *Table[int], error) {
	pos := t.findVar(index)
	if pos < 0 {
		return nil, nil, fmt.Errorf("%w: index %d", ErrVarNotFound, index)
	}
	elim := t.vars[pos]

	// Remaining variables keep stored order; output strides are rebuilt
	// contiguously while inStride remembers the input layout.
	rest := make([]Var, 0, len(t.vars)-1)
	inStride := make([]int, 0, len(t.vars)-1)
	length := 1
	for i, v := range t.vars {
		if i == pos {
			continue
		}
		rest = append(rest, Var{Index: v.Index, DomSize: v.DomSize, StepSize: length})
		inStride = append(inStride, v.StepSize)
		length *= v.DomSize
	}

	out := make([]Y, length)
	var argmin []int
	if trace {
		argmin = make([]int, length)
	}

	digits := make([]int, len(rest))
	base := 0 // input offset of the current remaining assignment at setting 0
	for p := 0; ; p++ {
		acc := t.values[base]
		best := 0
		for d := 1; d < elim.DomSize; d++ {
			next := t.values[base+d*elim.StepSize]
			folded := reduce(acc, next)
			if trace && folded != acc {
				best = d
			}
			acc = folded
		}
		out[p] = acc
		if trace {
			argmin[p] = best
		}

		i := 0
		for ; i < len(rest); i++ {
			digits[i]++
			base += inStride[i]
			if digits[i] < rest[i].DomSize {
				break
			}
			digits[i] = 0
			base -= inStride[i] * rest[i].DomSize
		}
		if i == len(rest) {
			break
		}
	}

	reduced := &Table[Y]{vars: rest, values: out}
	if !trace {
		return reduced, nil, nil
	}
	tvars := make([]Var, len(rest))
	copy(tvars, rest)

	return reduced, &Table[int]{vars: tvars, values: argmin}, nil
}
