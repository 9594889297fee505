package ops

// addForward computes a + b.
func addForward(a, b float64) float64 {
	return a + b
}

// addBackward computes operand gradients for addition.
// Since d(a+b)/da = d(a+b)/db = 1, the gradient flows equally to both operands.
func addBackward(outputGrad float64) []float64 {
	return []float64{outputGrad, outputGrad}
}
