package ops

// reluForward computes max(0, x).
func reluForward(x float64) float64 {
	if x > 0 {
		return x
	}
	return 0
}

// reluBackward gates the gradient on the operand value.
//
// The sub-gradient at exactly 0 is 0.
func reluBackward(outputGrad, x float64) []float64 {
	if x > 0 {
		return []float64{outputGrad}
	}
	return []float64{0}
}
