// Package ops defines the closed set of differentiable scalar operations.
//
// Each operation provides:
//   - Forward: the value of the derived node given its operand values
//   - Backward: the gradient pushed onto each operand given the upstream gradient
//
// Supported operations:
//   - Add: a + b (d/da = 1, d/db = 1)
//   - Mul: a * b (d/da = b, d/db = a)
//   - Pow: a^e for a constant exponent e (d/da = e * a^(e-1))
//   - ReLU: max(0, a) (d/da = 1 if a > 0, else 0)
//
// New operations are added as new Kind values; the switch statements in this
// file must stay exhaustive so the differentiator knows every local rule.
package ops

import (
	"fmt"
	"strconv"
)

// Kind identifies an operation.
type Kind uint8

// Operation kinds.
const (
	Add Kind = iota + 1
	Mul
	Pow
	ReLU
)

// String returns the operation name.
func (k Kind) String() string {
	switch k {
	case Add:
		return "Add"
	case Mul:
		return "Mul"
	case Pow:
		return "Pow"
	case ReLU:
		return "ReLU"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Op is an operation tag recorded on a derived node.
//
// Exponent is only meaningful for Pow and is part of the tag rather than a
// second operand, so no gradient flows into it.
type Op struct {
	Kind     Kind
	Exponent float64
}

// NewAdd creates an addition tag.
func NewAdd() Op { return Op{Kind: Add} }

// NewMul creates a multiplication tag.
func NewMul() Op { return Op{Kind: Mul} }

// NewPow creates a power tag with a constant exponent.
func NewPow(exponent float64) Op { return Op{Kind: Pow, Exponent: exponent} }

// NewReLU creates a rectified-linear tag.
func NewReLU() Op { return Op{Kind: ReLU} }

// Arity returns the number of operands the operation consumes.
func (op Op) Arity() int {
	switch op.Kind {
	case Add, Mul:
		return 2
	case Pow, ReLU:
		return 1
	default:
		panic(fmt.Sprintf("ops: unknown operation %s", op.Kind))
	}
}

// Forward computes the operation's result from operand values.
//
// Panics if len(inputs) does not match the operation's arity.
func (op Op) Forward(inputs []float64) float64 {
	op.checkInputs(inputs)

	switch op.Kind {
	case Add:
		return addForward(inputs[0], inputs[1])
	case Mul:
		return mulForward(inputs[0], inputs[1])
	case Pow:
		return powForward(inputs[0], op.Exponent)
	case ReLU:
		return reluForward(inputs[0])
	default:
		panic(fmt.Sprintf("ops: unknown operation %s", op.Kind))
	}
}

// Backward computes the gradient contribution for each operand.
//
// outputGrad is the gradient already accumulated on the derived node; inputs
// are the operand values in operand order. The returned slice is aligned
// with inputs and must be added (never assigned) to the operand gradients.
func (op Op) Backward(outputGrad float64, inputs []float64) []float64 {
	op.checkInputs(inputs)

	switch op.Kind {
	case Add:
		return addBackward(outputGrad)
	case Mul:
		return mulBackward(outputGrad, inputs[0], inputs[1])
	case Pow:
		return powBackward(outputGrad, inputs[0], op.Exponent)
	case ReLU:
		return reluBackward(outputGrad, inputs[0])
	default:
		panic(fmt.Sprintf("ops: unknown operation %s", op.Kind))
	}
}

// String returns a short symbol for graph traces.
func (op Op) String() string {
	switch op.Kind {
	case Add:
		return "+"
	case Mul:
		return "*"
	case Pow:
		return "**" + strconv.FormatFloat(op.Exponent, 'g', -1, 64)
	case ReLU:
		return "ReLU"
	default:
		return op.Kind.String()
	}
}

func (op Op) checkInputs(inputs []float64) {
	if n := op.Arity(); len(inputs) != n {
		panic(fmt.Sprintf("ops: %s expects %d operands, got %d", op.Kind, n, len(inputs)))
	}
}
