package train

import (
	"fmt"

	"go.uber.org/multierr"
)

// Optimizer names accepted by Config.
const (
	OptimizerSGD  = "sgd"
	OptimizerAdam = "adam"
)

// Config holds training hyperparameters.
type Config struct {
	Epochs       int     // Full passes over the training set
	LearningRate float64 // Step size
	Momentum     float64 // SGD momentum, ignored by Adam
	Optimizer    string  // "sgd" or "adam"
	Widths       []int   // Layer widths; the last must be 1
	LogEvery     int     // Log every N epochs (the final epoch is always logged)
	Seed         int64   // Weight initialization seed
}

// DefaultConfig returns the settings of the reference run: a [16, 16, 1]
// network trained with plain gradient descent at rate 0.01 for 100 epochs.
func DefaultConfig() Config {
	return Config{
		Epochs:       100,
		LearningRate: 0.01,
		Optimizer:    OptimizerSGD,
		Widths:       []int{16, 16, 1},
		LogEvery:     10,
		Seed:         1,
	}
}

// Validate reports every invalid field at once.
func (c Config) Validate() error {
	var err error

	if c.Epochs <= 0 {
		err = multierr.Append(err, fmt.Errorf("epochs must be positive, got %d", c.Epochs))
	}
	if c.LearningRate <= 0 {
		err = multierr.Append(err, fmt.Errorf("learning rate must be positive, got %g", c.LearningRate))
	}
	if c.Momentum < 0 || c.Momentum >= 1 {
		err = multierr.Append(err, fmt.Errorf("momentum must be in [0, 1), got %g", c.Momentum))
	}
	if c.Optimizer != OptimizerSGD && c.Optimizer != OptimizerAdam {
		err = multierr.Append(err, fmt.Errorf("unknown optimizer %q", c.Optimizer))
	}
	if c.LogEvery <= 0 {
		err = multierr.Append(err, fmt.Errorf("log interval must be positive, got %d", c.LogEvery))
	}

	switch {
	case len(c.Widths) == 0:
		err = multierr.Append(err, fmt.Errorf("at least one layer width is required"))
	case c.Widths[len(c.Widths)-1] != 1:
		err = multierr.Append(err, fmt.Errorf("last layer width must be 1, got %d", c.Widths[len(c.Widths)-1]))
	}
	for i, w := range c.Widths {
		if w <= 0 {
			err = multierr.Append(err, fmt.Errorf("layer %d width must be positive, got %d", i, w))
		}
	}

	if err != nil {
		return fmt.Errorf("invalid training config: %w", err)
	}
	return nil
}
