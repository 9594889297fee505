// Package gradcheck compares reverse-mode gradients against finite differences.
//
// Example:
//
//	res, err := gradcheck.Check(func(xs []*autodiff.Value) *autodiff.Value {
//	    return autodiff.Mul(xs[0], xs[1])
//	}, []float64{2, 3})
//	// res.Analytic == [3 2], err == nil
package gradcheck

import (
	"errors"
	"fmt"
	"math"

	"github.com/born-ml/scalar/internal/autodiff"
	"gonum.org/v1/gonum/diff/fd"
	"gonum.org/v1/gonum/floats"
)

// ErrMismatch is returned when analytic and numeric gradients disagree.
var ErrMismatch = errors.New("gradient mismatch")

// Func builds a scalar output from input leaves.
//
// It is called once for the analytic pass and once per finite-difference
// evaluation, so it must build a fresh graph every time.
type Func func(xs []*autodiff.Value) *autodiff.Value

// Result holds both gradients at the checked point.
type Result struct {
	Value      float64   // f(at)
	Analytic   []float64 // gradients from Backward
	Numeric    []float64 // central finite differences
	MaxAbsDiff float64   // max |analytic - numeric|
}

type config struct {
	tolerance float64
	step      float64
}

// Option configures Check.
type Option func(*config)

// WithTolerance sets the maximum allowed absolute difference (default 1e-5).
func WithTolerance(tol float64) Option {
	return func(c *config) {
		c.tolerance = tol
	}
}

// WithStep sets the finite-difference step (default 1e-6).
func WithStep(h float64) Option {
	return func(c *config) {
		c.step = h
	}
}

// Check evaluates f at the given point, runs Backward and compares every
// input gradient with a central finite difference.
//
// The Result is returned even when the check fails, so callers can report
// the offending components.
func Check(f Func, at []float64, opts ...Option) (Result, error) {
	if len(at) == 0 {
		return Result{}, errors.New("gradcheck: no inputs")
	}

	cfg := config{tolerance: 1e-5, step: 1e-6}
	for _, opt := range opts {
		opt(&cfg)
	}

	leaves := leavesAt(at)
	out := f(leaves)
	out.Backward()

	res := Result{
		Value:    out.Data(),
		Analytic: make([]float64, len(leaves)),
	}
	for i, leaf := range leaves {
		res.Analytic[i] = leaf.Grad()
	}

	eval := func(x []float64) float64 {
		return f(leavesAt(x)).Data()
	}
	res.Numeric = fd.Gradient(nil, eval, at, &fd.Settings{
		Formula: fd.Central,
		Step:    cfg.step,
	})
	res.MaxAbsDiff = floats.Distance(res.Analytic, res.Numeric, math.Inf(1))

	if math.IsNaN(res.MaxAbsDiff) || res.MaxAbsDiff > cfg.tolerance {
		return res, fmt.Errorf("gradcheck: max abs diff %g exceeds tolerance %g: %w",
			res.MaxAbsDiff, cfg.tolerance, ErrMismatch)
	}

	return res, nil
}

func leavesAt(x []float64) []*autodiff.Value {
	leaves := make([]*autodiff.Value, len(x))
	for i, v := range x {
		leaves[i] = autodiff.New(v)
	}
	return leaves
}
