// Package optim implements optimization algorithms for training scalar networks.
//
// This package provides:
//   - Optimizer interface: Base interface for all optimizers
//   - SGD: Stochastic Gradient Descent with optional momentum
//   - Adam: Adaptive Moment Estimation
//
// Optimizers read gradients straight off the parameter values, so a training
// step is: ZeroGrad, forward, Backward on each loss, Step.
//
// Example usage:
//
//	optimizer := optim.NewSGD(model.Parameters(), optim.SGDConfig{LR: 0.01})
//
//	for epoch := range epochs {
//	    optimizer.ZeroGrad()
//	    for _, s := range samples {
//	        loss := mse.Forward(model.ForwardValues(s.X)[0], autodiff.New(s.Y))
//	        loss.Backward() // gradients accumulate over the batch
//	    }
//	    optimizer.Step()
//	}
package optim

// Optimizer is the base interface for all optimization algorithms.
//
// All optimizers must implement:
//   - Step: Apply gradient updates to parameters
//   - ZeroGrad: Clear gradients before next iteration
//   - GetLR: Get current learning rate (for monitoring/scheduling)
type Optimizer interface {
	// Step applies one update to every parameter from its current gradient.
	Step()

	// ZeroGrad clears all parameter gradients.
	//
	// Gradients accumulate across Backward calls, so this must be called
	// before each new batch.
	ZeroGrad()

	// GetLR returns the current learning rate.
	GetLR() float64
}

// Config is the base configuration for all optimizers.
type Config struct {
	LR float64 // Learning rate
}
