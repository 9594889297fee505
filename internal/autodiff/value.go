package autodiff

import (
	"fmt"

	"github.com/born-ml/scalar/internal/autodiff/ops"
)

// Value is a node in the computation graph.
//
// Leaf values (inputs, parameters, literals) have no operation. Derived
// values carry the operation that produced them and its operands in operand
// order. Operands never change after construction; only data and grad are
// mutable.
type Value struct {
	data float64
	grad float64
	op   *ops.Op  // nil for leaves
	prev []*Value // operands, nil for leaves
}

// New creates a leaf value with a zero gradient.
func New(data float64) *Value {
	return &Value{data: data}
}

// Data returns the forward value.
func (v *Value) Data() float64 {
	return v.data
}

// Grad returns the accumulated gradient.
func (v *Value) Grad() float64 {
	return v.grad
}

// SetData overwrites the forward value in place.
//
// Gradient and provenance are left untouched. Derived values that were
// computed from v are not recomputed; build a new graph to see the change.
func (v *Value) SetData(data float64) {
	v.data = data
}

// ZeroGrad resets the gradient to 0.
func (v *Value) ZeroGrad() {
	v.grad = 0
}

// Update applies one gradient descent step: data -= lr * grad.
func (v *Value) Update(lr float64) {
	v.data -= lr * v.grad
}

// IsLeaf reports whether v was created directly rather than by an operation.
func (v *Value) IsLeaf() bool {
	return v.op == nil
}

// Op returns the operation that produced v, or false for leaves.
func (v *Value) Op() (ops.Op, bool) {
	if v.op == nil {
		return ops.Op{}, false
	}
	return *v.op, true
}

// Operands returns a copy of v's operands in operand order.
func (v *Value) Operands() []*Value {
	if v.prev == nil {
		return nil
	}
	out := make([]*Value, len(v.prev))
	copy(out, v.prev)
	return out
}

// String formats the value and its gradient.
func (v *Value) String() string {
	return fmt.Sprintf("Value(data=%g, grad=%g)", v.data, v.grad)
}

// Add returns v + other.
func (v *Value) Add(other *Value) *Value { return Add(v, other) }

// Sub returns v - other.
func (v *Value) Sub(other *Value) *Value { return Sub(v, other) }

// Mul returns v * other.
func (v *Value) Mul(other *Value) *Value { return Mul(v, other) }

// Pow returns v^exponent.
func (v *Value) Pow(exponent float64) *Value { return Pow(v, exponent) }

// ReLU returns max(0, v).
func (v *Value) ReLU() *Value { return ReLU(v) }

// Neg returns -v.
func (v *Value) Neg() *Value { return Neg(v) }

// Backward computes d(v)/d(node) for every node reachable from v.
// See the package-level Backward.
func (v *Value) Backward() { Backward(v) }
