package elim

import (
	"errors"
	"fmt"

	"github.com/annealkit/orang/solution"
	"github.com/annealkit/orang/table"
)

// Sentinel errors for the elimination driver.
var (
	// ErrNoTables indicates an empty input table list.
	ErrNoTables = errors.New("elim: no tables to minimize")

	// ErrBadOrder indicates an elimination order that does not cover the
	// combined table's variables exactly once each.
	ErrBadOrder = errors.New("elim: order must cover every variable exactly once")
)

// MaxExhaustive is the largest combined-table size (in cells) for which
// Minimize enumerates all assignments to fill a multi-solution set.
const MaxExhaustive = 1 << 20

// Minimize combines the input tables by addition, eliminates the
// variables in the given order with minimum-reduction, and returns a
// MinSolutionSet of capacity maxSolutions holding the best distinct full
// assignments found. Assignments are indexed by variable; positions for
// indices no table mentions are left at 0.
//
// Contracts:
//   - tables must be non-empty (ErrNoTables);
//   - order must list each combined variable exactly once (ErrBadOrder;
//     a variable absent from the tables surfaces table.ErrVarNotFound);
//   - maxSolutions ≥ 1 (solution.ErrBadCapacity).
//
// With maxSolutions == 1 the result is the exact optimum reconstructed
// by back-substitution through the arg-min traces. With maxSolutions > 1
// the combined table is scored exhaustively when it has at most
// MaxExhaustive cells; larger models fall back to the single optimum.
func Minimize[Y table.Value](tables []*table.Table[Y], order []int, maxSolutions int) (*solution.MinSolutionSet[Y], error) {
	if len(tables) == 0 {
		return nil, ErrNoTables
	}
	set, err := solution.NewMinSolutionSet[Y](maxSolutions)
	if err != nil {
		return nil, err
	}

	combined := tables[0]
	for _, t := range tables[1:] {
		if combined, err = combined.Combine(t, func(a, b Y) Y { return a + b }); err != nil {
			return nil, err
		}
	}
	if len(order) != combined.NumVars() {
		return nil, fmt.Errorf("%w: %d order entries for %d variables", ErrBadOrder, len(order), combined.NumVars())
	}

	assignLen := 0
	for _, v := range combined.Vars() {
		if v.Index >= assignLen {
			assignLen = v.Index + 1
		}
	}

	if maxSolutions > 1 && combined.Len() <= MaxExhaustive {
		return set, offerAll(set, combined, assignLen)
	}

	best, value, err := eliminate(combined, order, assignLen)
	if err != nil {
		return nil, err
	}
	set.Offer(value, best)

	return set, nil
}

// eliminate min-reduces the variables of t in order, then walks the
// arg-min traces backwards to rebuild the optimal full assignment.
func eliminate[Y table.Value](t *table.Table[Y], order []int, assignLen int) ([]int, Y, error) {
	var zero Y
	traces := make([]*table.Table[int], len(order))
	cur := t
	for i, idx := range order {
		var err error
		if cur, traces[i], err = cur.EliminateMin(idx); err != nil {
			return nil, zero, err
		}
	}

	// cur is now a scalar holding the global minimum.
	value, err := cur.At(0)
	if err != nil {
		return nil, zero, err
	}

	// Each trace is addressed by the variables eliminated after it, so
	// the reverse walk always has the values a lookup needs.
	assign := make([]int, assignLen)
	for i := len(order) - 1; i >= 0; i-- {
		setting, tErr := traces[i].Value(assign)
		if tErr != nil {
			return nil, zero, tErr
		}
		assign[order[i]] = setting
	}

	return assign, value, nil
}

// offerAll scores every cell of the combined table and offers each full
// assignment to the set; the set's ordering and capacity rules keep the
// k best.
func offerAll[Y table.Value](set *solution.MinSolutionSet[Y], t *table.Table[Y], assignLen int) error {
	vars := t.Vars()
	assign := make([]int, assignLen)
	for pos := 0; pos < t.Len(); pos++ {
		digits, err := t.Decode(pos)
		if err != nil {
			return err
		}
		for i, v := range vars {
			assign[v.Index] = digits[i]
		}
		value, err := t.At(pos)
		if err != nil {
			return err
		}
		set.Offer(value, assign)
	}

	return nil
}
