// Package nn implements neural network modules on top of scalar autodiff values.
//
// This package provides building blocks for small feed-forward networks:
//   - Module interface: Base interface for all NN components
//   - Neuron: weighted sum plus bias with optional ReLU
//   - Layer: neurons sharing one input vector
//   - MLP: stacked layers, ReLU on hidden layers, linear output
//   - MSELoss: squared error on graph values
//
// Design inspired by PyTorch's nn.Module, scaled down to scalars.
package nn

import "github.com/born-ml/scalar/internal/autodiff"

// Module is the base interface for all neural network components.
//
// Every NN module must implement:
//   - Parameters: Return all trainable leaf values in a stable order
//   - ZeroGrad: Reset the gradient of every parameter
type Module interface {
	// Parameters returns all trainable parameters of this module.
	//
	// The order is stable across calls so optimizers can keep per-parameter
	// state by index.
	Parameters() []*autodiff.Value

	// ZeroGrad resets every parameter gradient to 0.
	ZeroGrad()
}

// zeroGrad zeroes the gradient of every value.
func zeroGrad(params []*autodiff.Value) {
	for _, p := range params {
		p.ZeroGrad()
	}
}
