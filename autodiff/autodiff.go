// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package autodiff provides reverse-mode automatic differentiation over scalars.
//
// Arithmetic on Values builds a computation graph as it goes; Backward walks
// that graph from an output and stores d(output)/d(node) on every node.
//
// Example:
//
//	import "github.com/born-ml/scalar/autodiff"
//
//	func main() {
//	    x := autodiff.New(3)
//	    f := autodiff.AddScalar(autodiff.Add(autodiff.Mul(x, x), x), 1) // x² + x + 1
//
//	    f.Backward()
//	    fmt.Println(f.Data(), x.Grad()) // 13 7
//	}
package autodiff

import (
	"io"

	"github.com/born-ml/scalar/internal/autodiff"
	"github.com/born-ml/scalar/internal/autodiff/ops"
)

// Value is a node in the computation graph.
type Value = autodiff.Value

// Op is the operation tag recorded on derived values.
type Op = ops.Op

// Kind identifies an operation.
type Kind = ops.Kind

// Operation kinds.
const (
	KindAdd  = ops.Add
	KindMul  = ops.Mul
	KindPow  = ops.Pow
	KindReLU = ops.ReLU
)

// New creates a leaf value.
func New(data float64) *Value {
	return autodiff.New(data)
}

// Add returns a + b.
func Add(a, b *Value) *Value { return autodiff.Add(a, b) }

// Sub returns a - b.
func Sub(a, b *Value) *Value { return autodiff.Sub(a, b) }

// Mul returns a * b.
func Mul(a, b *Value) *Value { return autodiff.Mul(a, b) }

// Pow returns a^exponent for a constant exponent.
func Pow(a *Value, exponent float64) *Value { return autodiff.Pow(a, exponent) }

// ReLU returns max(0, a).
func ReLU(a *Value) *Value { return autodiff.ReLU(a) }

// Neg returns -a.
func Neg(a *Value) *Value { return autodiff.Neg(a) }

// AddScalar returns a + c.
func AddScalar(a *Value, c float64) *Value { return autodiff.AddScalar(a, c) }

// SubScalar returns a - c.
func SubScalar(a *Value, c float64) *Value { return autodiff.SubScalar(a, c) }

// MulScalar returns a * c.
func MulScalar(a *Value, c float64) *Value { return autodiff.MulScalar(a, c) }

// Sum folds values with Add.
func Sum(values ...*Value) *Value { return autodiff.Sum(values...) }

// Backward computes gradients of root with respect to every reachable value.
//
// Leaf gradients accumulate across calls; zero them between batches.
func Backward(root *Value) { autodiff.Backward(root) }

// TopologicalOrder returns the values reachable from root, operands first.
func TopologicalOrder(root *Value) []*Value { return autodiff.TopologicalOrder(root) }

// ZeroGrads zeroes every gradient reachable from root.
func ZeroGrads(root *Value) { autodiff.ZeroGrads(root) }

// Trace writes one line per reachable value, root first.
func Trace(w io.Writer, root *Value) error { return autodiff.Trace(w, root) }
