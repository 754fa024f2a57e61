package descent

import (
	"fmt"
	"slices"
)

// neighbor is one coupler endpoint as seen from the other: the peer spin
// and the coupler weight.
type neighbor struct {
	spin   int
	weight float64
}

// Model is an Ising energy model: linear biases plus sparse pairwise
// couplers. Immutable after construction; a Model may be shared by any
// number of concurrent descents.
type Model struct {
	biases    []float64
	couplerA  []int
	couplerB  []int
	weights   []float64
	neighbors [][]neighbor
}

// NewModel builds a Model from N biases and three parallel coupler
// arrays.
//
// Contracts:
//   - len(couplerA) == len(couplerB) == len(weights)
//     (ErrDimensionMismatch);
//   - every endpoint lies in [0, N) and differs from its peer
//     (ErrInvalidCoupler).
//
// Repeated couplers over the same pair are kept as distinct energy terms
// and accumulate. All inputs are copied; adjacency is precomputed once so
// descents pay O(deg) per flip.
func NewModel(biases []float64, couplerA, couplerB []int, weights []float64) (*Model, error) {
	n := len(biases)
	if len(couplerA) != len(couplerB) || len(couplerA) != len(weights) {
		return nil, fmt.Errorf("%w: coupler arrays of lengths %d/%d/%d",
			ErrDimensionMismatch, len(couplerA), len(couplerB), len(weights))
	}

	m := &Model{
		biases:    slices.Clone(biases),
		couplerA:  slices.Clone(couplerA),
		couplerB:  slices.Clone(couplerB),
		weights:   slices.Clone(weights),
		neighbors: make([][]neighbor, n),
	}
	for i := range couplerA {
		a, b := couplerA[i], couplerB[i]
		if a < 0 || a >= n || b < 0 || b >= n {
			return nil, fmt.Errorf("%w: endpoint of <%d,%d> outside [0,%d)", ErrInvalidCoupler, a, b, n)
		}
		if a == b {
			return nil, fmt.Errorf("%w: self-coupling on spin %d", ErrInvalidCoupler, a)
		}
		m.neighbors[a] = append(m.neighbors[a], neighbor{spin: b, weight: weights[i]})
		m.neighbors[b] = append(m.neighbors[b], neighbor{spin: a, weight: weights[i]})
	}

	return m, nil
}

// NumSpins reports N.
func (m *Model) NumSpins() int { return len(m.biases) }

// NumCouplers reports the number of coupler terms.
func (m *Model) NumCouplers() int { return len(m.weights) }

// Energy evaluates Σ hᵢ·sᵢ + Σ J_ab·s_a·s_b for one state of length N.
// Fails with ErrDimensionMismatch on a wrong length and ErrBadState on a
// spin value other than ±1.
func (m *Model) Energy(state []int8) (float64, error) {
	if err := m.checkStates(state, 1); err != nil {
		return 0, err
	}

	return m.energy(state), nil
}

// Energies scores a batch of states (length numSamples×N) without
// descending, one energy per sample.
func (m *Model) Energies(states []int8) ([]float64, error) {
	numSamples, err := m.batchSize(states)
	if err != nil {
		return nil, err
	}
	if err = m.checkStates(states, numSamples); err != nil {
		return nil, err
	}

	n := len(m.biases)
	out := make([]float64, numSamples)
	for i := 0; i < numSamples; i++ {
		out[i] = m.energy(states[i*n : (i+1)*n])
	}

	return out, nil
}

// energy is Energy without validation; state must hold N ±1 values.
func (m *Model) energy(state []int8) float64 {
	e := 0.0
	for i, h := range m.biases {
		e += h * float64(state[i])
	}
	for i, w := range m.weights {
		e += w * float64(state[m.couplerA[i]]) * float64(state[m.couplerB[i]])
	}

	return e
}

// batchSize derives the number of samples in a states buffer, requiring
// an exact multiple of N.
func (m *Model) batchSize(states []int8) (int, error) {
	n := len(m.biases)
	if n == 0 {
		if len(states) != 0 {
			return 0, fmt.Errorf("%w: %d state values for an empty model", ErrDimensionMismatch, len(states))
		}
		return 0, nil
	}
	if len(states)%n != 0 {
		return 0, fmt.Errorf("%w: %d state values, spin count %d", ErrDimensionMismatch, len(states), n)
	}

	return len(states) / n, nil
}

// checkStates validates that every spin value in the buffer is ±1.
func (m *Model) checkStates(states []int8, numSamples int) error {
	if len(states) != numSamples*len(m.biases) {
		return fmt.Errorf("%w: %d state values for %d samples of %d spins",
			ErrDimensionMismatch, len(states), numSamples, len(m.biases))
	}
	for i, s := range states {
		if s != -1 && s != 1 {
			return fmt.Errorf("%w: value %d at position %d", ErrBadState, s, i)
		}
	}

	return nil
}
