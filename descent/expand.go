package descent

import "fmt"

// ExpandStates grows (or truncates) a partial batch of initial states to
// exactly numReads samples of N spins each, returning a fresh buffer.
//
// Policies:
//   - GenNone: the given batch must already hold at least numReads
//     samples (ErrTooFewStates); extras are truncated.
//   - GenTile: the given samples repeat cyclically; at least one sample
//     is required (ErrTooFewStates).
//   - GenRandom: missing samples are drawn as uniform ±1 spins from a
//     deterministic PRNG (seed==0 selects the fixed default seed); the
//     given samples are kept verbatim in front.
//
// The input buffer length must be a multiple of N (ErrDimensionMismatch)
// with every value ±1 (ErrBadState); it is never mutated.
func (m *Model) ExpandStates(states []int8, numReads int, gen Generator, seed int64) ([]int8, error) {
	if numReads < 0 {
		return nil, fmt.Errorf("%w: %d reads requested", ErrDimensionMismatch, numReads)
	}
	numGiven, err := m.batchSize(states)
	if err != nil {
		return nil, err
	}
	if err = m.checkStates(states, numGiven); err != nil {
		return nil, err
	}

	n := len(m.biases)
	out := make([]int8, numReads*n)

	switch gen {
	case GenNone:
		if numGiven < numReads {
			return nil, fmt.Errorf("%w: %d given, %d reads requested", ErrTooFewStates, numGiven, numReads)
		}
		copy(out, states[:numReads*n])

	case GenTile:
		if numGiven == 0 && numReads > 0 {
			return nil, fmt.Errorf("%w: nothing to tile", ErrTooFewStates)
		}
		for i := 0; i < numReads; i++ {
			src := (i % numGiven) * n
			copy(out[i*n:(i+1)*n], states[src:src+n])
		}

	case GenRandom:
		kept := min(numGiven, numReads)
		copy(out, states[:kept*n])
		rng := rngFromSeed(seed)
		for i := kept * n; i < len(out); i++ {
			out[i] = int8(2*rng.Intn(2) - 1)
		}

	default:
		return nil, fmt.Errorf("%w: %d", ErrBadGenerator, gen)
	}

	return out, nil
}
