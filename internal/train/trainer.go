// Package train runs gradient-descent training of a scalar MLP on regression
// samples.
//
// Each epoch zeroes the gradients, runs Backward on every per-sample loss so
// parameter gradients sum over the whole training set, and then applies a
// single optimizer step.
package train

import (
	"fmt"

	"github.com/born-ml/scalar/internal/autodiff"
	"github.com/born-ml/scalar/internal/nn"
	"github.com/born-ml/scalar/internal/optim"
	"github.com/born-ml/scalar/internal/parallel"
	"github.com/go-logr/logr"
	"gonum.org/v1/gonum/stat"
)

// Option configures a Trainer.
type Option func(*Trainer)

// WithLogger sets the logger for progress lines.
var WithLogger = func(log logr.Logger) Option {
	return func(t *Trainer) {
		t.log = log
	}
}

// WithModel trains an existing model instead of building one from
// Config.Widths and Config.Seed.
var WithModel = func(model *nn.MLP) Option {
	return func(t *Trainer) {
		t.model = model
	}
}

// WithParallel sets how evaluation fans out over samples.
var WithParallel = func(cfg parallel.Config) Option {
	return func(t *Trainer) {
		t.parallel = cfg
	}
}

// Trainer owns a model, its optimizer and the loss function.
type Trainer struct {
	cfg       Config
	model     *nn.MLP
	optimizer optim.Optimizer
	loss      *nn.MSELoss
	parallel  parallel.Config
	log       logr.Logger
}

// New validates cfg and builds a trainer for inputs-wide samples.
func New(cfg Config, inputs int, opts ...Option) (*Trainer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if inputs <= 0 {
		return nil, fmt.Errorf("input width must be positive, got %d", inputs)
	}

	t := &Trainer{
		cfg:  cfg,
		loss:     nn.NewMSELoss(),
		parallel: parallel.DefaultConfig(),
		log:      logr.Discard(),
	}
	for _, opt := range opts {
		opt(t)
	}

	if t.model == nil {
		t.model = nn.NewMLP(inputs, cfg.Widths, nn.WithSeed(cfg.Seed))
	}
	if t.model.NumInputs() != inputs || t.model.NumOutputs() != 1 {
		return nil, fmt.Errorf("model %s does not map %d inputs to 1 output", t.model, inputs)
	}

	switch cfg.Optimizer {
	case OptimizerAdam:
		t.optimizer = optim.NewAdam(t.model.Parameters(), optim.AdamConfig{LR: cfg.LearningRate})
	default:
		t.optimizer = optim.NewSGD(t.model.Parameters(), optim.SGDConfig{
			LR:       cfg.LearningRate,
			Momentum: cfg.Momentum,
		})
	}

	return t, nil
}

// Model returns the model being trained.
func (t *Trainer) Model() *nn.MLP {
	return t.model
}

// Fit trains for cfg.Epochs epochs and returns the loss history.
//
// The reported training loss of an epoch is measured before that epoch's
// update; the test loss is measured after it. testSet may be empty.
func (t *Trainer) Fit(trainSet, testSet []Sample) (*History, error) {
	if len(trainSet) == 0 {
		return nil, fmt.Errorf("fit: empty training set")
	}
	if err := t.checkWidths(trainSet); err != nil {
		return nil, fmt.Errorf("fit: training set: %w", err)
	}
	if err := t.checkWidths(testSet); err != nil {
		return nil, fmt.Errorf("fit: test set: %w", err)
	}

	log := t.log.WithValues("model", t.model.String(), "optimizer", t.cfg.Optimizer)
	log.V(1).Info("training started", "epochs", t.cfg.Epochs, "trainSize", len(trainSet), "testSize", len(testSet))

	history := &History{
		TrainLoss: make([]float64, 0, t.cfg.Epochs),
	}

	for epoch := 0; epoch < t.cfg.Epochs; epoch++ {
		trainLoss := t.step(trainSet)
		history.TrainLoss = append(history.TrainLoss, trainLoss)

		kv := []interface{}{"epoch", epoch, "trainLoss", trainLoss}
		if len(testSet) > 0 {
			testLoss := t.Evaluate(testSet)
			history.TestLoss = append(history.TestLoss, testLoss)
			kv = append(kv, "testLoss", testLoss)
		}

		if epoch%t.cfg.LogEvery == 0 || epoch == t.cfg.Epochs-1 {
			log.Info("epoch finished", kv...)
		}
	}

	log.V(1).Info("training finished", "initialLoss", history.InitialLoss(), "finalLoss", history.FinalLoss())
	return history, nil
}

// step accumulates gradients over the whole set, updates once and returns
// the mean loss seen before the update.
func (t *Trainer) step(samples []Sample) float64 {
	t.optimizer.ZeroGrad()

	losses := make([]float64, len(samples))
	for i, s := range samples {
		loss := t.sampleLoss(s)
		losses[i] = loss.Data()
		loss.Backward()
	}

	t.optimizer.Step()
	return stat.Mean(losses, nil)
}

// Evaluate returns the mean squared error over samples without touching
// parameter gradients. Samples are evaluated concurrently.
func (t *Trainer) Evaluate(samples []Sample) float64 {
	if len(samples) == 0 {
		return 0
	}
	losses := parallel.Map(len(samples), func(i int) float64 {
		return t.sampleLoss(samples[i]).Data()
	}, t.parallel)
	return stat.Mean(losses, nil)
}

// Predict returns the model output for x.
func (t *Trainer) Predict(x []float64) float64 {
	return t.model.ForwardValues(x)[0].Data()
}

func (t *Trainer) sampleLoss(s Sample) *autodiff.Value {
	pred := t.model.ForwardValues(s.X)[0]
	return t.loss.Forward(pred, autodiff.New(s.Y))
}

func (t *Trainer) checkWidths(samples []Sample) error {
	for i, s := range samples {
		if len(s.X) != t.model.NumInputs() {
			return fmt.Errorf("sample %d has %d inputs, model expects %d", i, len(s.X), t.model.NumInputs())
		}
	}
	return nil
}
