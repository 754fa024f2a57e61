package descent_test

import (
	"math/rand"
	"testing"

	"github.com/annealkit/orang/descent"
)

// benchmarkRefine builds a random n-spin model with the given coupler
// density and descends numSamples random candidates per iteration.
func benchmarkRefine(b *testing.B, n, numSamples int, density float64, workers int) {
	rng := rand.New(rand.NewSource(1))
	biases := make([]float64, n)
	for i := range biases {
		biases[i] = rng.NormFloat64()
	}
	var ca, cb []int
	var w []float64
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if rng.Float64() < density {
				ca, cb = append(ca, i), append(cb, j)
				w = append(w, rng.NormFloat64())
			}
		}
	}
	m, err := descent.NewModel(biases, ca, cb, w)
	if err != nil {
		b.Fatalf("NewModel failed: %v", err)
	}

	base := make([]int8, numSamples*n)
	for i := range base {
		base[i] = int8(2*rng.Intn(2) - 1)
	}
	opts := descent.DefaultOptions()
	opts.Workers = workers
	states := make([]int8, len(base))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		copy(states, base)
		if _, err = m.Refine(states, &opts); err != nil {
			b.Fatalf("Refine failed: %v", err)
		}
	}
}

// BenchmarkRefine_SparseSerial measures a sparse 256-spin batch on one
// worker.
func BenchmarkRefine_SparseSerial(b *testing.B) {
	benchmarkRefine(b, 256, 32, 0.02, 1)
}

// BenchmarkRefine_SparseParallel measures the same batch with the default
// worker pool.
func BenchmarkRefine_SparseParallel(b *testing.B) {
	benchmarkRefine(b, 256, 32, 0.02, 0)
}

// BenchmarkRefine_Dense measures a dense 64-spin batch.
func BenchmarkRefine_Dense(b *testing.B) {
	benchmarkRefine(b, 64, 32, 0.5, 0)
}
