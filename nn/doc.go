// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides neural network building blocks over scalar values.
//
// # Overview
//
// This package contains:
//   - Neuron, Layer, MLP: feed-forward composition
//   - MSELoss: squared-error loss
//   - Module interface and named Parameters
//   - Initialization: Uniform, Zero
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/scalar/autodiff"
//	    "github.com/born-ml/scalar/nn"
//	)
//
//	func main() {
//	    model := nn.NewMLP(2, []int{16, 16, 1}, nn.WithSeed(1))
//	    mse := nn.NewMSELoss()
//
//	    model.ZeroGrad()
//	    pred := model.ForwardValues([]float64{0.5, 0.5})[0]
//	    loss := mse.Forward(pred, autodiff.New(1))
//	    loss.Backward()
//
//	    for _, p := range model.Parameters() {
//	        p.Update(0.01)
//	    }
//	}
package nn
