package train_test

import (
	"errors"
	"math/rand"
	"strings"
	"testing"

	"github.com/born-ml/scalar/internal/nn"
	"github.com/born-ml/scalar/internal/parallel"
	"github.com/born-ml/scalar/internal/train"
	"github.com/go-logr/logr/funcr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
)

// TestDefaultConfig tests that the reference settings are valid.
func TestDefaultConfig(t *testing.T) {
	cfg := train.DefaultConfig()

	require.NoError(t, cfg.Validate())
	assert.Equal(t, []int{16, 16, 1}, cfg.Widths)
	assert.Equal(t, 0.01, cfg.LearningRate)
	assert.Equal(t, 100, cfg.Epochs)
}

// TestConfig_ValidateCollectsAllErrors tests multi-error reporting.
func TestConfig_ValidateCollectsAllErrors(t *testing.T) {
	cfg := train.Config{
		Epochs:       0,
		LearningRate: -1,
		Momentum:     1,
		Optimizer:    "rmsprop",
		Widths:       []int{0, 2},
		LogEvery:     0,
	}

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid training config")

	errs := multierr.Errors(errors.Unwrap(err))
	// epochs, lr, momentum, optimizer, log interval, last width, layer 0 width
	assert.Len(t, errs, 7)
}

// TestSplit tests order-preserving splitting.
func TestSplit(t *testing.T) {
	samples := train.SumDataset()
	require.Len(t, samples, 8)

	trainSet, testSet, err := train.Split(samples, 6)
	require.NoError(t, err)
	assert.Len(t, trainSet, 6)
	assert.Len(t, testSet, 2)
	assert.Equal(t, samples[6], testSet[0])

	_, _, err = train.Split(samples, 0)
	assert.Error(t, err)
	_, _, err = train.Split(samples, 9)
	assert.Error(t, err)
}

// TestRandomSumDataset tests that targets are x1 + x2.
func TestRandomSumDataset(t *testing.T) {
	samples := train.RandomSumDataset(rand.New(rand.NewSource(1)), 50)
	require.Len(t, samples, 50)
	for _, s := range samples {
		require.Len(t, s.X, 2)
		assert.InDelta(t, s.X[0]+s.X[1], s.Y, 1e-15)
	}
}

// TestNew_Errors tests constructor validation.
func TestNew_Errors(t *testing.T) {
	cfg := train.DefaultConfig()

	_, err := train.New(cfg, 0)
	assert.Error(t, err)

	cfg.Epochs = -1
	_, err = train.New(cfg, 2)
	assert.Error(t, err)

	_, err = train.New(train.DefaultConfig(), 3, train.WithModel(nn.NewMLP(2, []int{1}, nn.WithSeed(1))))
	assert.Error(t, err)
}

// TestFit_WidthMismatch tests that malformed samples are rejected before training.
func TestFit_WidthMismatch(t *testing.T) {
	trainer, err := train.New(train.DefaultConfig(), 2)
	require.NoError(t, err)

	_, err = trainer.Fit([]train.Sample{{X: []float64{1}, Y: 1}}, nil)
	assert.ErrorContains(t, err, "sample 0 has 1 inputs, model expects 2")

	_, err = trainer.Fit(train.SumDataset()[:2], []train.Sample{{X: []float64{1, 2, 3}}})
	assert.ErrorContains(t, err, "test set")

	_, err = trainer.Fit(nil, nil)
	assert.Error(t, err)
}

// TestFit_LossDecreases trains the reference [16, 16, 1] network on y = x1 + x2.
func TestFit_LossDecreases(t *testing.T) {
	trainSet, testSet, err := train.Split(train.SumDataset(), 6)
	require.NoError(t, err)

	trainer, err := train.New(train.DefaultConfig(), 2)
	require.NoError(t, err)

	history, err := trainer.Fit(trainSet, testSet)
	require.NoError(t, err)

	assert.Equal(t, 100, history.Epochs())
	assert.Len(t, history.TestLoss, 100)
	assert.True(t, history.Improved(), "initial %g, final %g", history.InitialLoss(), history.FinalLoss())
	assert.Greater(t, history.DecreasingFraction(), 0.5)
}

// TestFit_Adam tests the alternative optimizer.
func TestFit_Adam(t *testing.T) {
	cfg := train.DefaultConfig()
	cfg.Optimizer = train.OptimizerAdam
	cfg.Seed = 7

	trainer, err := train.New(cfg, 2)
	require.NoError(t, err)

	history, err := trainer.Fit(train.SumDataset(), nil)
	require.NoError(t, err)
	assert.Empty(t, history.TestLoss)
	assert.True(t, history.Improved())
}

// TestFit_Logging tests progress lines.
func TestFit_Logging(t *testing.T) {
	var lines []string
	logger := funcr.New(func(prefix, args string) {
		lines = append(lines, args)
	}, funcr.Options{})

	cfg := train.DefaultConfig()
	cfg.Epochs = 25
	trainer, err := train.New(cfg, 2, train.WithLogger(logger))
	require.NoError(t, err)

	_, err = trainer.Fit(train.SumDataset(), nil)
	require.NoError(t, err)

	// epochs 0, 10, 20 and the final epoch 24
	require.Len(t, lines, 4)
	assert.True(t, strings.Contains(lines[0], `"epoch"=0`), lines[0])
	assert.True(t, strings.Contains(lines[3], `"epoch"=24`), lines[3])
	assert.Contains(t, lines[0], `"trainLoss"=`)
	assert.NotContains(t, lines[0], `"testLoss"`)
}

// TestEvaluate_LeavesGradients tests that evaluation does not run backward.
func TestEvaluate_LeavesGradients(t *testing.T) {
	model := nn.NewMLP(2, []int{4, 1}, nn.WithSeed(2))
	trainer, err := train.New(train.DefaultConfig(), 2, train.WithModel(model))
	require.NoError(t, err)
	assert.Same(t, model, trainer.Model())

	loss := trainer.Evaluate(train.SumDataset())
	assert.GreaterOrEqual(t, loss, 0.0)
	for _, p := range model.Parameters() {
		assert.Equal(t, 0.0, p.Grad())
	}

	assert.Equal(t, 0.0, trainer.Evaluate(nil))
	assert.Equal(t, model.ForwardValues([]float64{1, 1})[0].Data(), trainer.Predict([]float64{1, 1}))
}

// TestHistory tests summary helpers.
func TestHistory(t *testing.T) {
	h := &train.History{TrainLoss: []float64{4, 3, 3.5, 1}}

	assert.Equal(t, 4, h.Epochs())
	assert.Equal(t, 4.0, h.InitialLoss())
	assert.Equal(t, 1.0, h.FinalLoss())
	assert.True(t, h.Improved())
	assert.InDelta(t, 2.0/3.0, h.DecreasingFraction(), 1e-12)

	assert.False(t, (&train.History{}).Improved())
	assert.Equal(t, 0.0, (&train.History{}).DecreasingFraction())
}

// TestEvaluate_Parallel tests that concurrent evaluation matches sequential.
func TestEvaluate_Parallel(t *testing.T) {
	samples := train.RandomSumDataset(rand.New(rand.NewSource(3)), 300)
	model := nn.NewMLP(2, []int{8, 1}, nn.WithSeed(4))

	seq, err := train.New(train.DefaultConfig(), 2, train.WithModel(model), train.WithParallel(parallel.Sequential()))
	require.NoError(t, err)
	par, err := train.New(train.DefaultConfig(), 2, train.WithModel(model),
		train.WithParallel(parallel.Config{Enabled: true, NumWorkers: 4, MinChunkSize: 8}))
	require.NoError(t, err)

	assert.InDelta(t, seq.Evaluate(samples), par.Evaluate(samples), 1e-12)
}
