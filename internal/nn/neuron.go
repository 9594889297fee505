package nn

import (
	"fmt"
	"math/rand"

	"github.com/born-ml/scalar/internal/autodiff"
)

// Neuron computes bias + Σ wᵢ·xᵢ, optionally followed by ReLU.
//
// Weights are initialized from U[-1, 1) and the bias to 0.
type Neuron struct {
	weights []*autodiff.Value
	bias    *autodiff.Value
	nonlin  bool // apply ReLU after the affine sum
}

// NewNeuron creates a neuron with nin weights.
//
// Panics if nin is not positive.
func NewNeuron(nin int, nonlin bool, rng *rand.Rand) *Neuron {
	if nin <= 0 {
		panic(fmt.Sprintf("Neuron: input width must be positive, got %d", nin))
	}

	weights := make([]*autodiff.Value, nin)
	for i := range weights {
		weights[i] = Uniform(rng, -1, 1)
	}

	return &Neuron{
		weights: weights,
		bias:    Zero(),
		nonlin:  nonlin,
	}
}

// Forward builds the neuron's output node for the given inputs.
//
// Panics if len(x) differs from the number of weights; mismatched widths are
// never truncated.
func (n *Neuron) Forward(x []*autodiff.Value) *autodiff.Value {
	if len(x) != len(n.weights) {
		panic(fmt.Sprintf("Neuron: expected %d inputs, got %d", len(n.weights), len(x)))
	}

	act := n.bias
	for i, w := range n.weights {
		act = autodiff.Add(act, autodiff.Mul(w, x[i]))
	}

	if n.nonlin {
		return autodiff.ReLU(act)
	}
	return act
}

// Parameters returns the weights followed by the bias.
func (n *Neuron) Parameters() []*autodiff.Value {
	params := make([]*autodiff.Value, 0, len(n.weights)+1)
	params = append(params, n.weights...)
	return append(params, n.bias)
}

// ZeroGrad resets the gradient of every weight and the bias.
func (n *Neuron) ZeroGrad() {
	zeroGrad(n.weights)
	n.bias.ZeroGrad()
}

// NumInputs returns the input width.
func (n *Neuron) NumInputs() int {
	return len(n.weights)
}

// Weights returns the weight leaves. The slice is shared; do not modify it.
func (n *Neuron) Weights() []*autodiff.Value {
	return n.weights
}

// Bias returns the bias leaf.
func (n *Neuron) Bias() *autodiff.Value {
	return n.bias
}

// Nonlinear reports whether the neuron applies ReLU.
func (n *Neuron) Nonlinear() bool {
	return n.nonlin
}
