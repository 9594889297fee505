package train

import (
	"fmt"
	"math/rand"
)

// Sample is one regression example.
type Sample struct {
	X []float64
	Y float64
}

// SumDataset returns eight samples of y = x1 + x2.
func SumDataset() []Sample {
	return []Sample{
		{X: []float64{0, 0}, Y: 0},
		{X: []float64{0, 1}, Y: 1},
		{X: []float64{1, 0}, Y: 1},
		{X: []float64{1, 1}, Y: 2},
		{X: []float64{0.5, 0.5}, Y: 1},
		{X: []float64{0.2, 0.3}, Y: 0.5},
		{X: []float64{0.7, 0.8}, Y: 1.5},
		{X: []float64{0.1, 0.9}, Y: 1},
	}
}

// RandomSumDataset draws n samples of y = x1 + x2 with x uniform in [0, 1).
func RandomSumDataset(rng *rand.Rand, n int) []Sample {
	samples := make([]Sample, n)
	for i := range samples {
		x1, x2 := rng.Float64(), rng.Float64()
		samples[i] = Sample{X: []float64{x1, x2}, Y: x1 + x2}
	}
	return samples
}

// Split returns the first n samples as the training set and the rest as the
// test set, preserving order.
func Split(samples []Sample, n int) (trainSet, testSet []Sample, err error) {
	if n <= 0 || n > len(samples) {
		return nil, nil, fmt.Errorf("split: train size %d out of range [1, %d]", n, len(samples))
	}
	return samples[:n], samples[n:], nil
}
