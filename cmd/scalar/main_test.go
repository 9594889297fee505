package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_Version(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run([]string{"version"}, &out))
	assert.Contains(t, out.String(), version)
}

func TestRun_Unknown(t *testing.T) {
	var out bytes.Buffer
	err := run([]string{"serve"}, &out)
	assert.ErrorContains(t, err, `unknown command "serve"`)
	assert.Contains(t, out.String(), "Commands:")
}

func TestRun_Graph(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run([]string{"graph"}, &out))

	s := out.String()
	assert.Contains(t, s, "a*b + a**3 = 14")
	assert.Contains(t, s, "d/da = 15")
	assert.Contains(t, s, "d/db = 2")
	assert.Contains(t, s, "relu(2*x - 1)**2 = 4")
	assert.Contains(t, s, "d/dx = 8")
	assert.Contains(t, s, "x**2 + x + 1 = 13")
	assert.Contains(t, s, "d/dx = 7")
}

func TestRun_GraphTrace(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run([]string{"graph", "-trace", "-expr", "x**2 + x + 1"}, &out))
	assert.Contains(t, out.String(), "Value(data=13, grad=1)")

	err := run([]string{"graph", "-expr", "nope"}, &out)
	assert.Error(t, err)
}

func TestRun_Check(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run([]string{"check"}, &out))
	assert.NotContains(t, out.String(), "FAIL")
}

func TestRun_Train(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run([]string{"train", "-epochs", "5", "-log-every", "2", "-params"}, &out))

	s := out.String()
	assert.Contains(t, s, "Training Set Predictions:")
	assert.Contains(t, s, "Test Set Predictions:")
	assert.Contains(t, s, "epoch=4")
	assert.Contains(t, s, "layers.2.neurons.0.bias")
}

func TestRun_TrainBadFlags(t *testing.T) {
	var out bytes.Buffer
	assert.Error(t, run([]string{"train", "-widths", "16,x"}, &out))
	assert.Error(t, run([]string{"train", "-widths", "16,2"}, &out))
	assert.Error(t, run([]string{"train", "-train-size", "20"}, &out))
	assert.Error(t, run([]string{"train", "-log-level", "loud"}, &out))
}
