// Package activations provides the sigmoid activation used by the perceptron.
package activations

import "math"

// Sigmoid activation function.
type Sigmoid struct{}

// sigmoid computes the sigmoid function
func sigmoid(x float64) float64 {
	return 1 / (1 + math.Exp(-x))
}

// Activate computes sigmoid(x)
func (s Sigmoid) Activate(x float64) float64 {
	return sigmoid(x)
}

// Derivative computes sigmoid(x) * (1 - sigmoid(x))
func (s Sigmoid) Derivative(x float64) float64 {
	sigma := sigmoid(x)
	return sigma * (1 - sigma)
}

// DerivativeFromOutput computes y * (1 - y) where y is already sigmoid(x).
// Training uses this form so the pre-activation sum never has to be kept.
func (s Sigmoid) DerivativeFromOutput(y float64) float64 {
	return y * (1 - y)
}

// ApplyActivate matches the mat.Dense.Apply signature.
func (s Sigmoid) ApplyActivate(_, _ int, v float64) float64 {
	return sigmoid(v)
}

// ApplyDerivativeFromOutput matches the mat.Dense.Apply signature.
func (s Sigmoid) ApplyDerivativeFromOutput(_, _ int, v float64) float64 {
	return s.DerivativeFromOutput(v)
}
