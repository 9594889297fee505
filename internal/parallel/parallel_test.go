package parallel

import (
	"sync/atomic"
	"testing"

	"github.com/born-ml/scalar/internal/autodiff"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFor(t *testing.T) {
	cfg := Config{Enabled: true, NumWorkers: 4, MinChunkSize: 8}

	var counter int64
	seen := make([]int32, 1000)
	For(len(seen), func(i int) {
		atomic.AddInt64(&counter, 1)
		atomic.AddInt32(&seen[i], 1)
	}, cfg)

	assert.Equal(t, int64(1000), counter)
	for i, n := range seen {
		require.Equal(t, int32(1), n, "index %d", i)
	}
}

func TestFor_Sequential(t *testing.T) {
	var order []int
	For(5, func(i int) {
		order = append(order, i)
	}, Sequential())

	assert.Equal(t, []int{0, 1, 2, 3, 4}, order)
}

func TestFor_SmallInput(t *testing.T) {
	cfg := DefaultConfig()

	var counter int64
	n := cfg.MinChunkSize - 1
	For(n, func(_ int) {
		atomic.AddInt64(&counter, 1)
	}, cfg)

	assert.Equal(t, int64(n), counter)
}

// TestMap_SharedLeaves evaluates independent graphs over shared parameters.
func TestMap_SharedLeaves(t *testing.T) {
	w := autodiff.New(2)
	b := autodiff.New(1)
	cfg := Config{Enabled: true, NumWorkers: 8, MinChunkSize: 4}

	out := Map(200, func(i int) float64 {
		x := autodiff.New(float64(i))
		return w.Mul(x).Add(b).Data()
	}, cfg)

	require.Len(t, out, 200)
	for i, v := range out {
		assert.Equal(t, 2*float64(i)+1, v)
	}
	assert.Equal(t, 0.0, w.Grad())
}

func BenchmarkMap(b *testing.B) {
	w := autodiff.New(0.5)
	run := func(b *testing.B, cfg Config) {
		for i := 0; i < b.N; i++ {
			Map(1024, func(j int) float64 {
				x := autodiff.New(float64(j))
				return w.Mul(x).Pow(2).ReLU().Data()
			}, cfg)
		}
	}

	b.Run("parallel", func(b *testing.B) { run(b, DefaultConfig()) })
	b.Run("sequential", func(b *testing.B) { run(b, Sequential()) })
}
