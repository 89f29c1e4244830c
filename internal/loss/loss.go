// Package loss provides the training loss reported to callbacks.
package loss

import "gonum.org/v1/gonum/mat"

// Loss scores a prediction against its target.
type Loss interface {
	// Forward computes the loss between predicted and true values.
	Forward(yPred, yTrue mat.Vector) float64
}

// MSE (Mean Squared Error) loss.
type MSE struct{}

// Forward computes mean squared error: (1/n) * sum((y_pred - y_true)^2)
func (m MSE) Forward(yPred, yTrue mat.Vector) float64 {
	n := yPred.Len()
	if n != yTrue.Len() {
		panic("MSE: prediction and target must have same length")
	}
	if n == 0 {
		return 0
	}

	var diff mat.VecDense
	diff.SubVec(yPred, yTrue)
	return mat.Dot(&diff, &diff) / float64(n)
}
