package table_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/annealkit/orang/table"
)

func add(a, b int) int { return a + b }

// TestTable_CombineUnion verifies the union variable set, the canonical
// ascending layout, and the pointwise values on overlapping inputs.
func TestTable_CombineUnion(t *testing.T) {
	// f(x0, x1) and g(x1, x2), sharing x1.
	f := mustSpec(t, []int{0, 1}, []int{2, 2}, []int{1, 2, 3, 4})
	g := mustSpec(t, []int{1, 2}, []int{2, 2}, []int{10, 20, 30, 40})

	h, err := f.Combine(g, add)
	require.NoError(t, err)

	assert.Equal(t, []table.Var{
		{Index: 0, DomSize: 2, StepSize: 1},
		{Index: 1, DomSize: 2, StepSize: 2},
		{Index: 2, DomSize: 2, StepSize: 4},
	}, h.Vars(), "union must be ascending and contiguous")

	assign := make([]int, 3)
	for x0 := 0; x0 < 2; x0++ {
		for x1 := 0; x1 < 2; x1++ {
			for x2 := 0; x2 < 2; x2++ {
				assign[0], assign[1], assign[2] = x0, x1, x2
				fv, fErr := f.Value(assign)
				require.NoError(t, fErr)
				gv, gErr := g.Value(assign)
				require.NoError(t, gErr)
				hv, hErr := h.Value(assign)
				require.NoError(t, hErr)
				assert.Equal(t, fv+gv, hv, "h(%v) must equal f+g", assign)
			}
		}
	}
}

// TestTable_CombineDisjointAndScalar verifies combination of disjoint
// variable sets and the scalar (zero-variable) identity case.
func TestTable_CombineDisjointAndScalar(t *testing.T) {
	f := mustSpec(t, []int{3}, []int{2}, []int{1, 2})
	g := mustSpec(t, []int{1}, []int{3}, []int{10, 20, 30})

	h, err := f.Combine(g, add)
	require.NoError(t, err)
	assert.Equal(t, 6, h.Len())
	// Ascending union: x1 first (step 1), x3 second (step 3).
	v, err := h.Value([]int{0, 2, 0, 1})
	require.NoError(t, err)
	assert.Equal(t, 2+30, v)

	sc, err := table.New[int](nil, []int{5})
	require.NoError(t, err)
	hs, err := f.Combine(sc, add)
	require.NoError(t, err)
	assert.Equal(t, []int{6, 7}, hs.Values(), "scalar combine must shift every cell")
}

// TestTable_CombineAssociativeCommutative checks that for addition the
// grouping and the operand order leave the value buffer identical, since
// Combine always lays the union out canonically.
func TestTable_CombineAssociativeCommutative(t *testing.T) {
	a := mustSpec(t, []int{0, 1}, []int{2, 3}, []int{1, 2, 3, 4, 5, 6})
	b := mustSpec(t, []int{1, 2}, []int{3, 2}, []int{7, 8, 9, 10, 11, 12})
	c := mustSpec(t, []int{0, 2}, []int{2, 2}, []int{13, 14, 15, 16})

	ab, err := a.Combine(b, add)
	require.NoError(t, err)
	left, err := ab.Combine(c, add)
	require.NoError(t, err)

	bc, err := b.Combine(c, add)
	require.NoError(t, err)
	right, err := a.Combine(bc, add)
	require.NoError(t, err)

	assert.Equal(t, left.Vars(), right.Vars())
	assert.Equal(t, left.Values(), right.Values(), "(a∘b)∘c must equal a∘(b∘c)")

	ba, err := b.Combine(a, add)
	require.NoError(t, err)
	assert.Equal(t, ab.Values(), ba.Values(), "a∘b must equal b∘a")
}

// TestTable_CombineDomainMismatch verifies that a shared variable with
// conflicting domain sizes is rejected.
func TestTable_CombineDomainMismatch(t *testing.T) {
	f := mustSpec(t, []int{0}, []int{2}, []int{1, 2})
	g := mustSpec(t, []int{0}, []int{3}, []int{1, 2, 3})

	_, err := f.Combine(g, add)
	assert.ErrorIs(t, err, table.ErrDimensionMismatch)
}
