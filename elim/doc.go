// Package elim drives factor-table elimination along a caller-supplied
// variable order and reports the best full assignments.
//
// The package deliberately makes no ordering decisions: choosing a good
// elimination order (treewidth heuristics, tree decompositions) is the
// planner's problem. Minimize only performs the mechanical fold — combine
// every input table by addition, min-out the variables in the given
// order while keeping the arg-min traces, then back-substitute through
// the traces in reverse to reconstruct the optimal assignment — and
// offers results to a bounded MinSolutionSet.
//
// When more than one solution is requested, the k-best entries are found
// by exhaustively scoring the combined table, which is only feasible
// while it stays small (MaxExhaustive cells); past that bound Minimize
// degrades to reporting the single optimum found by elimination. The
// full k-best machinery over large models (bucket trees) belongs to the
// external planner.
package elim
