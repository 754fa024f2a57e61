package table_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/annealkit/orang/table"
)

// mustSpec builds a contiguous table or fails the test.
func mustSpec[Y table.Value](t *testing.T, vars, doms []int, values []Y) *table.Table[Y] {
	t.Helper()
	tb, err := table.FromSpec(table.Spec[Y]{Vars: vars, DomSizes: doms, Values: values})
	require.NoError(t, err)

	return tb
}

// TestTable_NewValidation verifies the construction contracts: domain and
// step bounds, duplicate indices, and buffer-length checks.
func TestTable_NewValidation(t *testing.T) {
	_, err := table.New([]table.Var{{Index: 0, DomSize: 1, StepSize: 1}}, []int{0})
	assert.ErrorIs(t, err, table.ErrDimensionMismatch, "domain size < 2 must error")

	_, err = table.New([]table.Var{{Index: 0, DomSize: 2, StepSize: 0}}, []int{0, 0})
	assert.ErrorIs(t, err, table.ErrDimensionMismatch, "step size < 1 must error")

	_, err = table.New([]table.Var{
		{Index: 3, DomSize: 2, StepSize: 1},
		{Index: 3, DomSize: 2, StepSize: 2},
	}, make([]int, 4))
	assert.ErrorIs(t, err, table.ErrDuplicateVar)

	_, err = table.New([]table.Var{{Index: 0, DomSize: 2, StepSize: 1}}, []int{1, 2, 3})
	assert.ErrorIs(t, err, table.ErrDimensionMismatch, "buffer length must match domain product")

	// Zero-variable scalar table is legal with exactly one value.
	sc, err := table.New[int](nil, []int{7})
	require.NoError(t, err)
	assert.Equal(t, 1, sc.Len())
	assert.Equal(t, 0, sc.NumVars())
}

// TestTable_FromSpec verifies the contiguous layout: the i-th variable's
// step equals the product of the preceding domain sizes, and a nil Values
// yields a zero-filled buffer.
func TestTable_FromSpec(t *testing.T) {
	tb := mustSpec[int](t, []int{4, 7, 9}, []int{2, 3, 2}, nil)

	assert.Equal(t, []table.Var{
		{Index: 4, DomSize: 2, StepSize: 1},
		{Index: 7, DomSize: 3, StepSize: 2},
		{Index: 9, DomSize: 2, StepSize: 6},
	}, tb.Vars())
	assert.Equal(t, 12, tb.Len())
	assert.Equal(t, make([]int, 12), tb.Values(), "nil Values must zero-fill")

	_, err := table.FromSpec(table.Spec[int]{Vars: []int{0, 1}, DomSizes: []int{2}})
	assert.ErrorIs(t, err, table.ErrDimensionMismatch, "Vars/DomSizes must be parallel")

	_, err = table.FromSpec(table.Spec[int]{Vars: []int{0}, DomSizes: []int{0}})
	assert.ErrorIs(t, err, table.ErrDimensionMismatch)
}

// TestTable_AddressingRoundTrip checks, over every assignment of a mixed
// 2×3×4 table, that Offset places it at a distinct cell, Value reads the
// stored entry back, and Decode recovers the original assignment from the
// offset via the stored step sizes.
func TestTable_AddressingRoundTrip(t *testing.T) {
	vals := make([]int, 24)
	for i := range vals {
		vals[i] = 100 + i
	}
	tb := mustSpec(t, []int{0, 1, 2}, []int{2, 3, 4}, vals)

	seen := make(map[int]bool, 24)
	assign := make([]int, 3)
	for a := 0; a < 2; a++ {
		for b := 0; b < 3; b++ {
			for c := 0; c < 4; c++ {
				assign[0], assign[1], assign[2] = a, b, c

				off, err := tb.Offset(assign)
				require.NoError(t, err)
				assert.False(t, seen[off], "offsets must be distinct")
				seen[off] = true

				v, err := tb.Value(assign)
				require.NoError(t, err)
				assert.Equal(t, 100+off, v, "Value must read the cell at Offset")

				dec, err := tb.Decode(off)
				require.NoError(t, err)
				assert.Equal(t, []int{a, b, c}, dec, "Decode must invert Offset")
			}
		}
	}
	assert.Len(t, seen, 24, "every cell must be reachable")
}

// TestTable_ValueErrors verifies the DimensionMismatch contract for
// missing and out-of-domain assignment entries, plus At/Decode ranges.
func TestTable_ValueErrors(t *testing.T) {
	tb := mustSpec(t, []int{0, 5}, []int{2, 2}, []int{1, 2, 3, 4})

	_, err := tb.Value([]int{0, 1}) // too short: variable 5 missing
	assert.ErrorIs(t, err, table.ErrDimensionMismatch, "missing required variable must error")

	_, err = tb.Value([]int{0, 0, 0, 0, 0, 2})
	assert.ErrorIs(t, err, table.ErrDimensionMismatch, "value ≥ domain size must error")

	_, err = tb.Value([]int{-1, 0, 0, 0, 0, 0})
	assert.ErrorIs(t, err, table.ErrDimensionMismatch, "negative value must error")

	_, err = tb.At(4)
	assert.ErrorIs(t, err, table.ErrOffsetRange)
	_, err = tb.Decode(-1)
	assert.ErrorIs(t, err, table.ErrOffsetRange)

	// A longer assignment covering unrelated variables is fine.
	v, err := tb.Value([]int{1, 9, 9, 9, 9, 1, 7})
	require.NoError(t, err)
	assert.Equal(t, 4, v)
}

// TestTable_String locks the literal debug rendering, trailing commas
// included.
func TestTable_String(t *testing.T) {
	tb := mustSpec(t, []int{0, 1}, []int{2, 2}, []int{4, 8, 15, 16})
	assert.Equal(t, "Table(vars:<0,2,1><1,2,2> values=[4,8,15,16,])", tb.String())

	sc, err := table.New[int](nil, []int{3})
	require.NoError(t, err)
	assert.Equal(t, "Table(vars: values=[3,])", sc.String())
}
