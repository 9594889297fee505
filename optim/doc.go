// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package optim provides optimization algorithms for training scalar networks.
//
// # Overview
//
// This package contains:
//   - SGD: Stochastic Gradient Descent with optional momentum
//   - Adam: Adaptive Moment Estimation with bias correction
//   - Optimizer interface for custom optimizers
//
// # Training Loop Pattern
//
//	optimizer := optim.NewSGD(model.Parameters(), optim.SGDConfig{LR: 0.01})
//	mse := nn.NewMSELoss()
//
//	for epoch := range numEpochs {
//	    // 1. Zero gradients
//	    optimizer.ZeroGrad()
//
//	    // 2. Forward and backward per sample; gradients sum over the batch
//	    for _, s := range samples {
//	        pred := model.ForwardValues(s.X)[0]
//	        mse.Forward(pred, autodiff.New(s.Y)).Backward()
//	    }
//
//	    // 3. Update parameters
//	    optimizer.Step()
//	}
package optim
