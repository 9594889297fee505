package nn

import (
	"math/rand"

	"github.com/born-ml/scalar/internal/autodiff"
)

// Uniform creates a leaf with a value drawn from U[lo, hi).
//
// Parameters:
//   - rng: Random source (callers seed it for reproducible runs)
//   - lo, hi: Bounds of the distribution
func Uniform(rng *rand.Rand, lo, hi float64) *autodiff.Value {
	return autodiff.New(lo + rng.Float64()*(hi-lo))
}

// Zero creates a leaf with value 0.
//
// This is used for bias initialization.
func Zero() *autodiff.Value {
	return autodiff.New(0)
}
