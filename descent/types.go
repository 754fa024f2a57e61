package descent

import "errors"

// Sentinel errors for model construction and refinement.
var (
	// ErrDimensionMismatch indicates coupler parallel arrays of unequal
	// length, or a states buffer whose length is not a multiple of the
	// model's spin count.
	ErrDimensionMismatch = errors.New("descent: dimension mismatch")

	// ErrInvalidCoupler indicates a coupler endpoint equal to its peer or
	// outside [0, N).
	ErrInvalidCoupler = errors.New("descent: invalid coupler")

	// ErrBadState indicates a spin value other than -1 or +1.
	ErrBadState = errors.New("descent: spin state must be -1 or +1")

	// ErrTooFewStates indicates fewer initial states than requested reads
	// under the GenNone expansion policy (or none at all under GenTile).
	ErrTooFewStates = errors.New("descent: too few initial states")

	// ErrBadGenerator indicates an unknown initial-state generator.
	ErrBadGenerator = errors.New("descent: unknown state generator")
)

// Generator selects how ExpandStates grows a partial batch of initial
// states to the requested number of reads.
type Generator int

const (
	// GenNone forbids expansion: fewer given states than reads is an
	// error; extra states are truncated.
	GenNone Generator = iota

	// GenTile repeats the given states cyclically, or truncates.
	GenTile

	// GenRandom appends seeded uniform ±1 states, or truncates.
	GenRandom
)

// Options configures a refinement batch.
//
//   - MaxSteps bounds the number of flips per candidate; 0 means run to
//     convergence (the default and the reference behavior — the bound
//     exists only as a safety valve and is a documented deviation).
//   - Workers bounds batch concurrency; 0 means GOMAXPROCS.
type Options struct {
	MaxSteps int
	Workers  int
}

// DefaultOptions returns the reference configuration: unbounded descent,
// one worker per available CPU.
func DefaultOptions() Options {
	return Options{MaxSteps: 0, Workers: 0}
}

// Result reports one refinement batch: per-candidate final energies and
// the number of flips each descent took to converge.
type Result struct {
	Energies []float64
	Steps    []int
}
