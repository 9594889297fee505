package nn

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/born-ml/scalar/internal/autodiff"
)

// MLP is a multi-layer perceptron: a chain of layers where each layer's
// output becomes the next layer's input.
//
// Every layer except the last applies ReLU; the last is linear so the
// network can produce regression outputs.
//
// Example:
//
//	model := nn.NewMLP(2, []int{16, 16, 1})
//
//	x := []*autodiff.Value{autodiff.New(0.5), autodiff.New(0.25)}
//	out := model.Forward(x) // len(out) == 1
type MLP struct {
	nin    int
	layers []*Layer
}

type mlpConfig struct {
	rng *rand.Rand
}

// Option configures NewMLP.
type Option func(*mlpConfig)

// WithRand sets the random source used for weight initialization.
func WithRand(rng *rand.Rand) Option {
	return func(c *mlpConfig) {
		c.rng = rng
	}
}

// WithSeed initializes weights from a source seeded with seed.
func WithSeed(seed int64) Option {
	return WithRand(rand.New(rand.NewSource(seed))) //nolint:gosec // weight init is not security-critical
}

// NewMLP creates a network with nin inputs and one layer per entry of widths.
//
// Panics if nin is not positive, widths is empty, or any width is not
// positive.
func NewMLP(nin int, widths []int, opts ...Option) *MLP {
	if nin <= 0 {
		panic(fmt.Sprintf("MLP: input width must be positive, got %d", nin))
	}
	if len(widths) == 0 {
		panic("MLP: at least one layer width is required")
	}

	cfg := mlpConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewSource(time.Now().UnixNano())) //nolint:gosec // weight init is not security-critical
	}

	layers := make([]*Layer, len(widths))
	in := nin
	for i, width := range widths {
		nonlin := i < len(widths)-1
		layers[i] = NewLayer(in, width, nonlin, cfg.rng)
		in = width
	}

	return &MLP{nin: nin, layers: layers}
}

// Forward pipes x through every layer and returns the last layer's outputs.
func (m *MLP) Forward(x []*autodiff.Value) []*autodiff.Value {
	out := x
	for _, layer := range m.layers {
		out = layer.Forward(out)
	}
	return out
}

// ForwardValues wraps plain inputs in fresh leaves and runs Forward.
func (m *MLP) ForwardValues(x []float64) []*autodiff.Value {
	leaves := make([]*autodiff.Value, len(x))
	for i, v := range x {
		leaves[i] = autodiff.New(v)
	}
	return m.Forward(leaves)
}

// Parameters returns every weight and bias, layer by layer, neuron by neuron.
func (m *MLP) Parameters() []*autodiff.Value {
	var params []*autodiff.Value
	for _, layer := range m.layers {
		params = append(params, layer.Parameters()...)
	}
	return params
}

// ZeroGrad resets the gradient of every parameter.
func (m *MLP) ZeroGrad() {
	for _, layer := range m.layers {
		layer.ZeroGrad()
	}
}

// Layers returns the network's layers in order.
func (m *MLP) Layers() []*Layer {
	return m.layers
}

// NumInputs returns the input width.
func (m *MLP) NumInputs() int {
	return m.nin
}

// NumOutputs returns the width of the last layer.
func (m *MLP) NumOutputs() int {
	return m.layers[len(m.layers)-1].NumOutputs()
}

// String describes the architecture, e.g. "MLP(2 -> [16 ReLU, 16 ReLU, 1 linear])".
func (m *MLP) String() string {
	parts := make([]string, len(m.layers))
	for i, layer := range m.layers {
		kind := "linear"
		if layer.neurons[0].nonlin {
			kind = "ReLU"
		}
		parts[i] = fmt.Sprintf("%d %s", layer.NumOutputs(), kind)
	}
	return fmt.Sprintf("MLP(%d -> [%s])", m.nin, strings.Join(parts, ", "))
}
