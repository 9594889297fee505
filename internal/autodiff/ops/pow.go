package ops

import "math"

// powForward computes base^exponent.
//
// A negative base with a non-integer exponent yields NaN, as math.Pow does.
func powForward(base, exponent float64) float64 {
	return math.Pow(base, exponent)
}

// powBackward computes the base gradient: outputGrad * e * base^(e-1).
func powBackward(outputGrad, base, exponent float64) []float64 {
	return []float64{outputGrad * exponent * math.Pow(base, exponent-1)}
}
