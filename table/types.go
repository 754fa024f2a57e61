package table

import "errors"

// Sentinel errors for table construction and access.
var (
	// ErrDimensionMismatch indicates a buffer length inconsistent with
	// the declared domain sizes, an invalid Var triple, or an assignment
	// that misses a required variable or falls outside its domain.
	ErrDimensionMismatch = errors.New("table: dimension mismatch")

	// ErrVarNotFound indicates elimination or lookup of a variable that
	// is absent from the table.
	ErrVarNotFound = errors.New("table: variable not found")

	// ErrOffsetRange indicates a flat offset outside [0, Len).
	ErrOffsetRange = errors.New("table: offset out of range")

	// ErrDuplicateVar indicates two Var entries sharing the same Index.
	ErrDuplicateVar = errors.New("table: duplicate variable index")
)

// Value is the set of numeric types a Table may hold. Combination and
// reduction operators use the native arithmetic of the chosen type;
// implementations needing headroom should pick int64 or float64.
type Value interface {
	~int | ~int32 | ~int64 | ~float32 | ~float64
}

// Var describes one table variable: its problem-wide Index, the size of
// its domain (values 0..DomSize-1), and the stride by which incrementing
// its value advances the flat buffer offset.
type Var struct {
	Index    int
	DomSize  int
	StepSize int
}

// Spec is a table-construction request with named fields, for the common
// contiguous layout where StepSize of the i-th variable is the product of
// the domain sizes before it.
//
// Vars and DomSizes are parallel; a nil Values means a zero-filled buffer
// (the explicit "absent" marker), otherwise len(Values) must equal the
// product of DomSizes.
type Spec[Y Value] struct {
	Vars     []int
	DomSizes []int
	Values   []Y
}
