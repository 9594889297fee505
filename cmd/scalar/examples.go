package main

import "github.com/born-ml/scalar/internal/autodiff"

// example is a small expression used by the graph and check commands.
type example struct {
	name  string
	names []string
	at    []float64
	build func(xs []*autodiff.Value) *autodiff.Value
}

var examples = []example{
	{
		name:  "a*b + a**3",
		names: []string{"a", "b"},
		at:    []float64{2, 3},
		build: func(xs []*autodiff.Value) *autodiff.Value {
			a, b := xs[0], xs[1]
			return a.Mul(b).Add(a.Pow(3))
		},
	},
	{
		name:  "relu(2*x - 1)**2",
		names: []string{"x"},
		at:    []float64{1.5},
		build: func(xs []*autodiff.Value) *autodiff.Value {
			return autodiff.SubScalar(autodiff.MulScalar(xs[0], 2), 1).ReLU().Pow(2)
		},
	},
	{
		name:  "x**2 + x + 1",
		names: []string{"x"},
		at:    []float64{3},
		build: func(xs []*autodiff.Value) *autodiff.Value {
			x := xs[0]
			return autodiff.AddScalar(x.Pow(2).Add(x), 1)
		},
	},
}

func findExample(name string) (example, bool) {
	for _, ex := range examples {
		if ex.name == name {
			return ex, true
		}
	}
	return example{}, false
}
