package descent

// descend relaxes one state in place to a single-flip-stable local
// minimum and returns its final energy and the number of flips applied.
//
// Flip delta of spin i: Δᵢ = −2·sᵢ·(hᵢ + Σⱼ J_ij·sⱼ), the doubled local
// field because flipping negates both the linear and every pairwise term
// touching i. Each step applies the most negative delta, with the lowest
// spin index winning ties, then updates only the deltas of spins coupled
// to the flipped one. maxSteps ≤ 0 means no bound.
//
// Complexity: O(N + couplers) initialization, O(N + deg) per flip.
func (m *Model) descend(state []int8, maxSteps int) (energy float64, steps int) {
	n := len(m.biases)

	delta := make([]float64, n)
	for i, h := range m.biases {
		field := h
		for _, nb := range m.neighbors[i] {
			field += nb.weight * float64(state[nb.spin])
		}
		delta[i] = -2 * float64(state[i]) * field
	}

	for maxSteps <= 0 || steps < maxSteps {
		best := -1
		bestDelta := 0.0
		for i, d := range delta {
			if d < bestDelta {
				best, bestDelta = i, d
			}
		}
		if best < 0 {
			break // single-flip stable
		}

		state[best] = -state[best]
		delta[best] = -delta[best]
		for _, nb := range m.neighbors[best] {
			delta[nb.spin] -= 4 * nb.weight * float64(state[nb.spin]) * float64(state[best])
		}
		steps++
	}

	return m.energy(state), steps
}
