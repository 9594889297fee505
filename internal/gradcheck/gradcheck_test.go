package gradcheck_test

import (
	"testing"

	"github.com/born-ml/scalar/internal/autodiff"
	"github.com/born-ml/scalar/internal/gradcheck"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCheck_Operations tests every operation against finite differences.
func TestCheck_Operations(t *testing.T) {
	tests := []struct {
		name string
		f    gradcheck.Func
		at   []float64
	}{
		{"add", func(xs []*autodiff.Value) *autodiff.Value { return autodiff.Add(xs[0], xs[1]) }, []float64{1.5, -2}},
		{"mul", func(xs []*autodiff.Value) *autodiff.Value { return autodiff.Mul(xs[0], xs[1]) }, []float64{1.5, -2}},
		{"sub", func(xs []*autodiff.Value) *autodiff.Value { return autodiff.Sub(xs[0], xs[1]) }, []float64{0.25, 4}},
		{"pow", func(xs []*autodiff.Value) *autodiff.Value { return autodiff.Pow(xs[0], 3) }, []float64{1.2}},
		{"pow fractional", func(xs []*autodiff.Value) *autodiff.Value { return autodiff.Pow(xs[0], 0.5) }, []float64{4}},
		{"relu active", func(xs []*autodiff.Value) *autodiff.Value { return autodiff.ReLU(xs[0]) }, []float64{0.7}},
		{"relu inactive", func(xs []*autodiff.Value) *autodiff.Value { return autodiff.ReLU(xs[0]) }, []float64{-0.7}},
		{
			"composite",
			func(xs []*autodiff.Value) *autodiff.Value {
				// a*b + a³ - relu(b - 1)²
				a, b := xs[0], xs[1]
				return autodiff.Sub(
					autodiff.Add(autodiff.Mul(a, b), autodiff.Pow(a, 3)),
					autodiff.Pow(autodiff.ReLU(autodiff.SubScalar(b, 1)), 2),
				)
			},
			[]float64{0.8, 2.5},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := gradcheck.Check(tt.f, tt.at)
			require.NoError(t, err)
			assert.Len(t, res.Analytic, len(tt.at))
			assert.Len(t, res.Numeric, len(tt.at))
			assert.LessOrEqual(t, res.MaxAbsDiff, 1e-5)
		})
	}
}

// TestCheck_ChainRuleExample tests the analytic values of a*b + a³.
func TestCheck_ChainRuleExample(t *testing.T) {
	res, err := gradcheck.Check(func(xs []*autodiff.Value) *autodiff.Value {
		return autodiff.Add(autodiff.Mul(xs[0], xs[1]), autodiff.Pow(xs[0], 3))
	}, []float64{2, 3})
	require.NoError(t, err)

	assert.InDelta(t, 14.0, res.Value, 1e-12)
	assert.InDelta(t, 15.0, res.Analytic[0], 1e-12)
	assert.InDelta(t, 2.0, res.Analytic[1], 1e-12)
}

// TestCheck_DetectsWrongGradient tests that a graph whose value does not
// depend on its leaves the way Backward sees it is reported.
func TestCheck_DetectsWrongGradient(t *testing.T) {
	// SetData on the input after building the graph makes the forward value
	// ignore the perturbation the finite difference applies.
	broken := func(xs []*autodiff.Value) *autodiff.Value {
		out := autodiff.Pow(xs[0], 2)
		out.SetData(4)
		return out
	}

	res, err := gradcheck.Check(broken, []float64{3})
	require.Error(t, err)
	assert.ErrorIs(t, err, gradcheck.ErrMismatch)
	assert.InDelta(t, 6.0, res.Analytic[0], 1e-12)
	assert.InDelta(t, 0.0, res.Numeric[0], 1e-9)
}

// TestCheck_NoInputs tests argument validation.
func TestCheck_NoInputs(t *testing.T) {
	_, err := gradcheck.Check(func(xs []*autodiff.Value) *autodiff.Value { return autodiff.New(1) }, nil)
	require.Error(t, err)
}

// TestCheck_Tolerance tests that options are applied.
func TestCheck_Tolerance(t *testing.T) {
	f := func(xs []*autodiff.Value) *autodiff.Value { return autodiff.Pow(xs[0], 4) }

	_, err := gradcheck.Check(f, []float64{3}, gradcheck.WithStep(1e-2), gradcheck.WithTolerance(1e-12))
	assert.ErrorIs(t, err, gradcheck.ErrMismatch)

	_, err = gradcheck.Check(f, []float64{3}, gradcheck.WithStep(1e-2), gradcheck.WithTolerance(1e-1))
	assert.NoError(t, err)
}
