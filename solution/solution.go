package solution

import (
	"errors"
	"fmt"
	"slices"
	"sort"
	"strconv"
	"strings"
)

// ErrBadCapacity indicates a solution-set capacity below 1.
var ErrBadCapacity = errors.New("solution: capacity must be at least 1")

// Value is the set of numeric types a solution set may order by. It
// mirrors the factor-table value types so elimination results feed
// straight in.
type Value interface {
	~int | ~int32 | ~int64 | ~float32 | ~float64
}

// MinSolution is one fully-specified candidate: its energy and an
// assignment covering every variable of the problem, indexed by variable.
type MinSolution[Y Value] struct {
	Value    Y
	Solution []int
}

// String renders the solution in its debug form (trailing comma after
// every assignment entry; the layout is compared literally downstream).
func (s MinSolution[Y]) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "MinSolution(value=%v solution=[", s.Value)
	for _, v := range s.Solution {
		b.WriteString(strconv.Itoa(v))
		b.WriteByte(',')
	}
	b.WriteString("])")

	return b.String()
}

// MinSolutionSet is a bounded, deduplicated collection of MinSolution
// entries kept in non-decreasing value order. Not safe for concurrent
// Offer calls; read accessors copy.
type MinSolutionSet[Y Value] struct {
	maxSolutions int
	entries      []MinSolution[Y]
	seen         map[string]struct{}
}

// NewMinSolutionSet creates an empty set with a fixed capacity ≥ 1.
func NewMinSolutionSet[Y Value](maxSolutions int) (*MinSolutionSet[Y], error) {
	if maxSolutions < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrBadCapacity, maxSolutions)
	}

	return &MinSolutionSet[Y]{
		maxSolutions: maxSolutions,
		entries:      make([]MinSolution[Y], 0, maxSolutions),
		seen:         make(map[string]struct{}, maxSolutions),
	}, nil
}

// Offer inserts the candidate if it improves the set and reports whether
// it was admitted, along with the entry evicted to make room (nil when
// none was).
//
// Admission rule:
//   - an assignment already retained is rejected regardless of value;
//   - below capacity every distinct candidate is admitted;
//   - at capacity the candidate must be strictly below the worst retained
//     value; equal values lose to the earlier offer (first-offered wins).
//
// The assignment is copied on admission; callers may reuse the slice.
func (s *MinSolutionSet[Y]) Offer(value Y, assignment []int) (admitted bool, evicted *MinSolution[Y]) {
	key := assignKey(assignment)
	if _, dup := s.seen[key]; dup {
		return false, nil
	}

	if len(s.entries) == s.maxSolutions {
		worst := s.entries[len(s.entries)-1]
		if !(value < worst.Value) {
			return false, nil
		}
		s.entries = s.entries[:len(s.entries)-1]
		delete(s.seen, assignKey(worst.Solution))
		evicted = &worst
	}

	// Upper-bound position: after all equal values, keeping insertion
	// order stable among ties.
	at := sort.Search(len(s.entries), func(i int) bool { return s.entries[i].Value > value })
	s.entries = slices.Insert(s.entries, at, MinSolution[Y]{Value: value, Solution: slices.Clone(assignment)})
	s.seen[key] = struct{}{}

	return true, evicted
}

// Solutions returns a copy of the retained entries in non-decreasing
// value order.
func (s *MinSolutionSet[Y]) Solutions() []MinSolution[Y] {
	out := make([]MinSolution[Y], len(s.entries))
	copy(out, s.entries)

	return out
}

// MaxSolutions reports the fixed capacity.
func (s *MinSolutionSet[Y]) MaxSolutions() int { return s.maxSolutions }

// Len reports the current number of retained entries.
func (s *MinSolutionSet[Y]) Len() int { return len(s.entries) }

// String renders the set in its debug form: the capacity followed by each
// retained solution in output order, each trailed by ';'.
func (s *MinSolutionSet[Y]) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "MinSolutionSet(maxSolutions=%d solutions=[", s.maxSolutions)
	for _, e := range s.entries {
		b.WriteString(e.String())
		b.WriteByte(';')
	}
	b.WriteString("])")

	return b.String()
}

// assignKey encodes an assignment as the membership-map key.
func assignKey(assignment []int) string {
	var b strings.Builder
	b.Grow(2 * len(assignment))
	for _, v := range assignment {
		b.WriteString(strconv.Itoa(v))
		b.WriteByte(',')
	}

	return b.String()
}
