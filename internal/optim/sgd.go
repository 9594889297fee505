package optim

import "github.com/born-ml/scalar/internal/autodiff"

// SGD implements Stochastic Gradient Descent optimizer with optional momentum.
//
// Update rule without momentum:
//
//	param = param - lr * gradient
//
// Update rule with momentum:
//
//	velocity = momentum * velocity + gradient
//	param = param - lr * velocity
//
// Example:
//
//	optimizer := optim.NewSGD(model.Parameters(), optim.SGDConfig{
//	    LR:       0.01,
//	    Momentum: 0.9,
//	})
type SGD struct {
	params     []*autodiff.Value
	lr         float64
	momentum   float64
	velocities []float64 // aligned with params, allocated on first momentum step
}

// SGDConfig holds configuration for SGD optimizer.
type SGDConfig struct {
	LR       float64 // Learning rate (default: 0.01)
	Momentum float64 // Momentum factor (default: 0.0, range: [0, 1))
}

// NewSGD creates a new SGD optimizer over params.
func NewSGD(params []*autodiff.Value, config SGDConfig) *SGD {
	if config.LR == 0 {
		config.LR = 0.01
	}

	return &SGD{
		params:   params,
		lr:       config.LR,
		momentum: config.Momentum,
	}
}

// Step performs a single optimization step.
func (s *SGD) Step() {
	if s.momentum == 0 {
		for _, p := range s.params {
			p.Update(s.lr)
		}
		return
	}

	if s.velocities == nil {
		s.velocities = make([]float64, len(s.params))
	}
	for i, p := range s.params {
		s.velocities[i] = s.momentum*s.velocities[i] + p.Grad()
		p.SetData(p.Data() - s.lr*s.velocities[i])
	}
}

// ZeroGrad clears gradients for all parameters.
func (s *SGD) ZeroGrad() {
	for _, p := range s.params {
		p.ZeroGrad()
	}
}

// GetLR returns the current learning rate.
func (s *SGD) GetLR() float64 {
	return s.lr
}

// SetLR updates the learning rate.
func (s *SGD) SetLR(lr float64) {
	s.lr = lr
}
