package nn

import (
	"fmt"

	"github.com/born-ml/scalar/internal/autodiff"
)

// Parameter pairs a trainable value with a descriptive name.
//
// Names follow the module structure, e.g. "layers.1.neurons.3.weight.0".
type Parameter struct {
	Name  string
	Value *autodiff.Value
}

// String formats the parameter for reports.
func (p Parameter) String() string {
	return fmt.Sprintf("%s=%.6f (grad %.6f)", p.Name, p.Value.Data(), p.Value.Grad())
}

// NamedParameters returns the MLP's parameters with structural names, in the
// same order as Parameters.
func (m *MLP) NamedParameters() []Parameter {
	var named []Parameter
	for li, layer := range m.layers {
		for ni, neuron := range layer.neurons {
			prefix := fmt.Sprintf("layers.%d.neurons.%d", li, ni)
			for wi, w := range neuron.weights {
				named = append(named, Parameter{Name: fmt.Sprintf("%s.weight.%d", prefix, wi), Value: w})
			}
			named = append(named, Parameter{Name: prefix + ".bias", Value: neuron.bias})
		}
	}
	return named
}
