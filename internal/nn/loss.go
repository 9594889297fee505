package nn

import (
	"fmt"

	"github.com/born-ml/scalar/internal/autodiff"
)

// MSELoss computes squared-error losses on graph values.
//
// Example:
//
//	mse := nn.NewMSELoss()
//	pred := model.Forward(x)[0]
//	loss := mse.Forward(pred, autodiff.New(y))
//	loss.Backward()
type MSELoss struct{}

// NewMSELoss creates a new MSE loss function.
func NewMSELoss() *MSELoss {
	return &MSELoss{}
}

// Forward returns (prediction - target)² for a single sample.
func (m *MSELoss) Forward(prediction, target *autodiff.Value) *autodiff.Value {
	diff := autodiff.Sub(prediction, target)
	return autodiff.Mul(diff, diff)
}

// ForwardBatch returns mean((predictions - targets)²) as one graph.
//
// Panics if the slices are empty or differ in length.
func (m *MSELoss) ForwardBatch(predictions, targets []*autodiff.Value) *autodiff.Value {
	if len(predictions) != len(targets) {
		panic(fmt.Sprintf("MSELoss: %d predictions but %d targets", len(predictions), len(targets)))
	}
	if len(predictions) == 0 {
		panic("MSELoss: empty batch")
	}

	losses := make([]*autodiff.Value, len(predictions))
	for i := range predictions {
		losses[i] = m.Forward(predictions[i], targets[i])
	}
	return autodiff.MulScalar(autodiff.Sum(losses...), 1/float64(len(losses)))
}
