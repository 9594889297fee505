package main

import (
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/born-ml/scalar/internal/log"
	"github.com/born-ml/scalar/internal/train"
)

func runTrain(args []string, stdout io.Writer) error {
	cfg := train.DefaultConfig()

	fs := flag.NewFlagSet("train", flag.ContinueOnError)
	fs.SetOutput(stdout)
	fs.IntVar(&cfg.Epochs, "epochs", cfg.Epochs, "number of epochs")
	fs.Float64Var(&cfg.LearningRate, "lr", cfg.LearningRate, "learning rate")
	fs.Float64Var(&cfg.Momentum, "momentum", cfg.Momentum, "SGD momentum in [0, 1)")
	fs.StringVar(&cfg.Optimizer, "optimizer", cfg.Optimizer, "optimizer: sgd or adam")
	fs.IntVar(&cfg.LogEvery, "log-every", cfg.LogEvery, "log every N epochs")
	fs.Int64Var(&cfg.Seed, "seed", cfg.Seed, "weight initialization seed")
	widths := fs.String("widths", joinInts(cfg.Widths), "comma-separated layer widths, last must be 1")
	trainSize := fs.Int("train-size", 6, "number of samples used for training, the rest are held out")
	level := fs.String("log-level", "info", "log level: debug, info, warn, error")
	showParams := fs.Bool("params", false, "print the trained parameters")

	if err := fs.Parse(args); err != nil {
		return err
	}

	var err error
	if cfg.Widths, err = parseInts(*widths); err != nil {
		return fmt.Errorf("invalid -widths: %w", err)
	}
	lvl, err := log.ParseLevel(*level)
	if err != nil {
		return fmt.Errorf("invalid -log-level: %w", err)
	}
	logger := log.Logr(log.New(stdout, lvl)).WithName("train")

	trainSet, testSet, err := train.Split(train.SumDataset(), *trainSize)
	if err != nil {
		return err
	}

	trainer, err := train.New(cfg, 2, train.WithLogger(logger))
	if err != nil {
		return err
	}

	fmt.Fprintln(stdout, "Training a neural network to learn: y = x1 + x2")
	fmt.Fprintf(stdout, "Model: %s | Train set size: %d | Test set size: %d\n\n",
		trainer.Model(), len(trainSet), len(testSet))

	history, err := trainer.Fit(trainSet, testSet)
	if err != nil {
		return err
	}

	fmt.Fprintf(stdout, "\nFinal Train Loss: %.6f\n", history.FinalLoss())
	if len(history.TestLoss) > 0 {
		fmt.Fprintf(stdout, "Final Test Loss: %.6f\n", history.TestLoss[len(history.TestLoss)-1])
	}

	printPredictions(stdout, "Training Set Predictions", trainer, trainSet)
	printPredictions(stdout, "Test Set Predictions", trainer, testSet)

	if *showParams {
		fmt.Fprintln(stdout, "\nParameters:")
		for _, p := range trainer.Model().NamedParameters() {
			fmt.Fprintf(stdout, "  %s\n", p)
		}
	}

	return nil
}

func printPredictions(w io.Writer, title string, trainer *train.Trainer, samples []train.Sample) {
	if len(samples) == 0 {
		return
	}
	fmt.Fprintf(w, "\n%s:\n", title)
	for _, s := range samples {
		fmt.Fprintf(w, "Input: [%.1f, %.1f] -> Predicted: %.4f, Expected: %.1f\n",
			s.X[0], s.X[1], trainer.Predict(s.X), s.Y)
	}
}

func parseInts(s string) ([]int, error) {
	fields := strings.Split(s, ",")
	out := make([]int, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, nil
}

func joinInts(xs []int) string {
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = strconv.Itoa(x)
	}
	return strings.Join(parts, ",")
}
