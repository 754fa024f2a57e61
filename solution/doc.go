// Package solution provides the bounded, deduplicated, value-ordered
// collection of best assignments that exact inference reports its results
// through.
//
// A MinSolutionSet holds at most MaxSolutions distinct (value, assignment)
// pairs, retrievable in non-decreasing value order. Offer admits a
// candidate when the set is below capacity, or when the candidate's value
// is strictly below the worst retained value, evicting that worst entry.
// Duplicate assignments are always rejected.
//
// Tie-break rule (fixed, tested): a candidate whose value merely equals
// the current worst retained value is rejected at capacity — first offered
// wins — and among retained equal values insertion order is preserved.
// Offering the same candidate sequence to same-capacity sets therefore
// yields identical retained sets and eviction histories.
//
// Offer costs O(log k) for the ordered insertion plus O(n) for the
// duplicate lookup key, with k = MaxSolutions and n the assignment length.
package solution
