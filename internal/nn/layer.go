package nn

import (
	"fmt"
	"math/rand"

	"github.com/born-ml/scalar/internal/autodiff"
)

// Layer is a set of neurons reading the same inputs.
type Layer struct {
	neurons []*Neuron
}

// NewLayer creates a layer of nout neurons, each with nin inputs.
func NewLayer(nin, nout int, nonlin bool, rng *rand.Rand) *Layer {
	if nout <= 0 {
		panic(fmt.Sprintf("Layer: output width must be positive, got %d", nout))
	}

	neurons := make([]*Neuron, nout)
	for i := range neurons {
		neurons[i] = NewNeuron(nin, nonlin, rng)
	}
	return &Layer{neurons: neurons}
}

// Forward returns one output node per neuron.
func (l *Layer) Forward(x []*autodiff.Value) []*autodiff.Value {
	out := make([]*autodiff.Value, len(l.neurons))
	for i, n := range l.neurons {
		out[i] = n.Forward(x)
	}
	return out
}

// Parameters returns every neuron's parameters, neuron by neuron.
func (l *Layer) Parameters() []*autodiff.Value {
	var params []*autodiff.Value
	for _, n := range l.neurons {
		params = append(params, n.Parameters()...)
	}
	return params
}

// ZeroGrad resets the gradients of all neurons.
func (l *Layer) ZeroGrad() {
	for _, n := range l.neurons {
		n.ZeroGrad()
	}
}

// Neurons returns the layer's neurons.
func (l *Layer) Neurons() []*Neuron {
	return l.neurons
}

// NumInputs returns the input width.
func (l *Layer) NumInputs() int {
	return l.neurons[0].NumInputs()
}

// NumOutputs returns the number of neurons.
func (l *Layer) NumOutputs() int {
	return len(l.neurons)
}
