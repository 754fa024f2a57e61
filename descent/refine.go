package descent

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Refine relaxes every candidate in a batch of initial states to its
// local minimum, mutating states in place.
//
// states holds numSamples×N spin values (sample-major); its length must
// be an exact multiple of N (ErrDimensionMismatch) and every value must
// be ±1 (ErrBadState), both checked before any descent starts. A nil opts
// means DefaultOptions.
//
// Candidates are independent: each worker goroutine owns a disjoint state
// slice and writes only its own result slots, while the model's bias and
// coupler data are shared read-only, so no locking is involved. Every
// descent runs to convergence (or Options.MaxSteps when set); there is no
// mid-descent cancellation.
func (m *Model) Refine(states []int8, opts *Options) (Result, error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}

	numSamples, err := m.batchSize(states)
	if err != nil {
		return Result{}, err
	}
	if err = m.checkStates(states, numSamples); err != nil {
		return Result{}, err
	}

	res := Result{
		Energies: make([]float64, numSamples),
		Steps:    make([]int, numSamples),
	}

	workers := o.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	n := len(m.biases)
	var g errgroup.Group
	g.SetLimit(workers)
	for i := 0; i < numSamples; i++ {
		g.Go(func() error {
			res.Energies[i], res.Steps[i] = m.descend(states[i*n:(i+1)*n], o.MaxSteps)
			return nil
		})
	}
	// Descents cannot fail after validation; Wait only joins the workers.
	_ = g.Wait()

	return res, nil
}
