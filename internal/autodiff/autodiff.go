// Package autodiff implements reverse-mode automatic differentiation over scalars.
//
// Architecture:
//   - Value: a node holding a float64, its accumulated gradient and, for
//     derived nodes, the operation and operands that produced it
//   - Graph builder: Add, Mul, Pow, ReLU (and literal forms) compute the
//     forward value eagerly and record provenance, growing the graph as a side
//     effect of ordinary arithmetic
//   - Backward: topological sort from a root followed by one reverse sweep
//     that applies each operation's local gradient rule
//
// Usage:
//
//	a := autodiff.New(2)
//	b := autodiff.New(3)
//	f := autodiff.Add(autodiff.Mul(a, b), autodiff.Pow(a, 3)) // f = a*b + a³
//
//	f.Backward()
//	fmt.Println(a.Grad()) // df/da = b + 3a² = 15
//	fmt.Println(b.Grad()) // df/db = a = 2
//
// Values are not safe for concurrent use. A graph is built and differentiated
// from a single goroutine; gradient accumulation is a plain += on shared
// operand nodes.
package autodiff

import (
	"fmt"

	"github.com/born-ml/scalar/internal/autodiff/ops"
)

// Add returns a + b.
func Add(a, b *Value) *Value {
	return apply(ops.NewAdd(), a, b)
}

// Mul returns a * b.
func Mul(a, b *Value) *Value {
	return apply(ops.NewMul(), a, b)
}

// Pow returns a^exponent. The exponent is a constant, not a graph node.
func Pow(a *Value, exponent float64) *Value {
	return apply(ops.NewPow(exponent), a)
}

// ReLU returns max(0, a).
func ReLU(a *Value) *Value {
	return apply(ops.NewReLU(), a)
}

// Sub returns a - b, recorded as a + (b * -1).
func Sub(a, b *Value) *Value {
	return Add(a, Neg(b))
}

// Neg returns -a, recorded as a * -1.
func Neg(a *Value) *Value {
	return MulScalar(a, -1)
}

// AddScalar returns a + c, promoting c to a fresh leaf.
func AddScalar(a *Value, c float64) *Value {
	return Add(a, New(c))
}

// MulScalar returns a * c, promoting c to a fresh leaf.
func MulScalar(a *Value, c float64) *Value {
	return Mul(a, New(c))
}

// SubScalar returns a - c, promoting c to a fresh leaf.
func SubScalar(a *Value, c float64) *Value {
	return Sub(a, New(c))
}

// Sum folds values left to right with Add.
//
// Panics if values is empty.
func Sum(values ...*Value) *Value {
	if len(values) == 0 {
		panic("sum: no values")
	}
	out := values[0]
	for _, v := range values[1:] {
		out = Add(out, v)
	}
	return out
}

// apply evaluates op on the operands' current values and records the result
// as a new derived node.
func apply(op ops.Op, operands ...*Value) *Value {
	inputs := make([]float64, len(operands))
	for i, operand := range operands {
		if operand == nil {
			panic(fmt.Sprintf("%s: operand %d is nil", op.Kind, i))
		}
		inputs[i] = operand.data
	}

	return &Value{
		data: op.Forward(inputs),
		op:   &op,
		prev: operands,
	}
}
