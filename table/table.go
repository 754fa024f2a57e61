package table

import (
	"fmt"
	"slices"
)

// Table is a function over an ordered set of discrete variables, stored
// as a flat buffer with one Y value per joint assignment. Immutable after
// construction.
type Table[Y Value] struct {
	vars   []Var
	values []Y
}

// New builds a Table from explicit Var triples and a value buffer.
//
// Contracts:
//   - every DomSize ≥ 2 and StepSize ≥ 1 (ErrDimensionMismatch);
//   - no two vars share an Index (ErrDuplicateVar);
//   - len(values) must equal the product of the domain sizes
//     (ErrDimensionMismatch).
//
// StepSize values are trusted as given: callers wanting the standard
// contiguous layout should use FromSpec. Both inputs are copied.
func New[Y Value](vars []Var, values []Y) (*Table[Y], error) {
	want := 1
	seen := make(map[int]struct{}, len(vars))
	for _, v := range vars {
		if v.DomSize < 2 {
			return nil, fmt.Errorf("%w: variable %d has domain size %d", ErrDimensionMismatch, v.Index, v.DomSize)
		}
		if v.StepSize < 1 {
			return nil, fmt.Errorf("%w: variable %d has step size %d", ErrDimensionMismatch, v.Index, v.StepSize)
		}
		if _, dup := seen[v.Index]; dup {
			return nil, fmt.Errorf("%w: index %d", ErrDuplicateVar, v.Index)
		}
		seen[v.Index] = struct{}{}
		want *= v.DomSize
	}
	if len(values) != want {
		return nil, fmt.Errorf("%w: %d values for %d joint assignments", ErrDimensionMismatch, len(values), want)
	}

	return &Table[Y]{vars: slices.Clone(vars), values: slices.Clone(values)}, nil
}

// FromSpec builds a Table in the contiguous mixed-radix layout: the i-th
// variable's StepSize is the product of the domain sizes before it, so the
// first listed variable varies fastest. A nil Values field yields a
// zero-filled buffer. Spec.Vars and Spec.DomSizes must be parallel.
func FromSpec[Y Value](s Spec[Y]) (*Table[Y], error) {
	if len(s.Vars) != len(s.DomSizes) {
		return nil, fmt.Errorf("%w: %d variables, %d domain sizes", ErrDimensionMismatch, len(s.Vars), len(s.DomSizes))
	}

	vars := make([]Var, len(s.Vars))
	step := 1
	for i, idx := range s.Vars {
		if s.DomSizes[i] < 2 {
			return nil, fmt.Errorf("%w: variable %d has domain size %d", ErrDimensionMismatch, idx, s.DomSizes[i])
		}
		vars[i] = Var{Index: idx, DomSize: s.DomSizes[i], StepSize: step}
		step *= s.DomSizes[i]
	}
	values := s.Values
	if values == nil {
		values = make([]Y, step)
	}

	return New(vars, values)
}

// Vars returns a copy of the table's variable triples in stored order.
func (t *Table[Y]) Vars() []Var { return slices.Clone(t.vars) }

// NumVars reports the number of variables. A zero-variable table is a
// scalar with a single value.
func (t *Table[Y]) NumVars() int { return len(t.vars) }

// Len reports the buffer length (product of all domain sizes).
func (t *Table[Y]) Len() int { return len(t.values) }

// At returns the value at flat offset pos, or ErrOffsetRange.
func (t *Table[Y]) At(pos int) (Y, error) {
	var zero Y
	if pos < 0 || pos >= len(t.values) {
		return zero, fmt.Errorf("%w: %d of %d", ErrOffsetRange, pos, len(t.values))
	}

	return t.values[pos], nil
}

// Values returns a copy of the flat value buffer in offset order.
func (t *Table[Y]) Values() []Y { return slices.Clone(t.values) }

// Offset computes the flat offset of an assignment, Σ valueᵢ·StepSizeᵢ.
// assign is indexed by variable Index and must cover at least this table's
// variables; a missing or out-of-domain entry fails with
// ErrDimensionMismatch.
func (t *Table[Y]) Offset(assign []int) (int, error) {
	off := 0
	for _, v := range t.vars {
		if v.Index >= len(assign) {
			return 0, fmt.Errorf("%w: assignment misses variable %d", ErrDimensionMismatch, v.Index)
		}
		val := assign[v.Index]
		if val < 0 || val >= v.DomSize {
			return 0, fmt.Errorf("%w: variable %d value %d outside [0,%d)", ErrDimensionMismatch, v.Index, val, v.DomSize)
		}
		off += val * v.StepSize
	}

	return off, nil
}

// Value returns the stored value for an assignment covering at least this
// table's variables. See Offset for the failure contract.
func (t *Table[Y]) Value(assign []int) (Y, error) {
	var zero Y
	off, err := t.Offset(assign)
	if err != nil {
		return zero, err
	}

	return t.values[off], nil
}

// Decode decomposes a flat offset back into per-variable values, returned
// in stored variable order (parallel to Vars). Valid for tables in the
// contiguous layout produced by FromSpec, Combine, and the eliminators;
// for hand-built stride layouts the decomposition is unspecified.
// Fails with ErrOffsetRange when pos lies outside [0, Len).
func (t *Table[Y]) Decode(pos int) ([]int, error) {
	if pos < 0 || pos >= len(t.values) {
		return nil, fmt.Errorf("%w: %d of %d", ErrOffsetRange, pos, len(t.values))
	}
	out := make([]int, len(t.vars))
	for i, v := range t.vars {
		out[i] = (pos / v.StepSize) % v.DomSize
	}

	return out, nil
}

// findVar returns the position of the variable with the given index in
// t.vars, or -1.
func (t *Table[Y]) findVar(index int) int {
	for i, v := range t.vars {
		if v.Index == index {
			return i
		}
	}

	return -1
}
