// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"math/rand"

	"github.com/born-ml/scalar/internal/autodiff"
	"github.com/born-ml/scalar/internal/nn"
)

// Module interface defines the common interface for all neural network modules.
type Module = nn.Module

// Parameter pairs a trainable value with its structural name.
type Parameter = nn.Parameter

// Neuron computes bias + Σ wᵢ·xᵢ with optional ReLU.
type Neuron = nn.Neuron

// NewNeuron creates a neuron with nin weights drawn from U[-1, 1).
func NewNeuron(nin int, nonlin bool, rng *rand.Rand) *Neuron {
	return nn.NewNeuron(nin, nonlin, rng)
}

// Layer is a set of neurons reading the same inputs.
type Layer = nn.Layer

// NewLayer creates a layer of nout neurons with nin inputs each.
func NewLayer(nin, nout int, nonlin bool, rng *rand.Rand) *Layer {
	return nn.NewLayer(nin, nout, nonlin, rng)
}

// MLP is a multi-layer perceptron with ReLU hidden layers and a linear output.
type MLP = nn.MLP

// Option configures NewMLP.
type Option = nn.Option

// NewMLP creates a network with nin inputs and one layer per width.
//
// Example:
//
//	model := nn.NewMLP(2, []int{16, 16, 1})
func NewMLP(nin int, widths []int, opts ...Option) *MLP {
	return nn.NewMLP(nin, widths, opts...)
}

// WithRand sets the random source for weight initialization.
func WithRand(rng *rand.Rand) Option { return nn.WithRand(rng) }

// WithSeed seeds weight initialization.
func WithSeed(seed int64) Option { return nn.WithSeed(seed) }

// MSELoss computes squared-error losses.
type MSELoss = nn.MSELoss

// NewMSELoss creates a new MSE loss function.
func NewMSELoss() *MSELoss { return nn.NewMSELoss() }

// Uniform creates a leaf drawn from U[lo, hi).
func Uniform(rng *rand.Rand, lo, hi float64) *autodiff.Value { return nn.Uniform(rng, lo, hi) }

// Zero creates a leaf with value 0.
func Zero() *autodiff.Value { return nn.Zero() }
