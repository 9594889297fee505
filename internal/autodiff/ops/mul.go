package ops

// mulForward computes a * b.
func mulForward(a, b float64) float64 {
	return a * b
}

// mulBackward computes operand gradients for multiplication.
//
//   - d(a*b)/da = b, so grad_a = outputGrad * b
//   - d(a*b)/db = a, so grad_b = outputGrad * a
func mulBackward(outputGrad, a, b float64) []float64 {
	return []float64{outputGrad * b, outputGrad * a}
}
