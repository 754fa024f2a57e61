// Package descent relaxes candidate spin states of an Ising model to
// single-flip-stable local minima by steepest descent.
//
// 🚀 Model
//
//	A Model holds N linear biases and a sparse coupler list given as three
//	parallel arrays (endpoint A, endpoint B, weight). Spin states are int8
//	buffers with values −1/+1, and the energy of a state s is the raw sum
//
//	  E(s) = Σᵢ hᵢ·sᵢ + Σ₍a,b₎ J_ab·s_a·s_b
//
//	with no ½ factor and no offset.
//
// ✨ Descent
//
//	Each candidate repeatedly flips the single spin whose flip lowers the
//	energy the most (steepest descent, not first-improvement), with the
//	lowest spin index winning delta ties, until no flip has a strictly
//	negative delta. Flip deltas are maintained incrementally: applying a
//	flip only touches the deltas of spins sharing a coupler with it.
//	Given a fixed initial state the flip sequence and the final state are
//	fully deterministic.
//
// Refine processes a batch of candidates; each descent touches only its
// own state slice plus the shared read-only model, so candidates run
// concurrently without locking (workers bounded by Options.Workers).
// Options.MaxSteps optionally bounds the flips per candidate; the
// reference behavior is to run every descent to convergence, so the
// bound is a safety valve for pathological couplings, off by default.
//
// ExpandStates mirrors the sampler front-end convention for growing a
// partial batch of initial states to a requested number of reads (error /
// tile / seeded random).
package descent
