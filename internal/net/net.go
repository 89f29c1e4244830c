// Package net provides the single-layer perceptron.
package net

import (
	"math/rand"

	"gonum.org/v1/gonum/mat"

	"github.com/FlavioCFOliveira/GoPerceptron/internal/activations"
	"github.com/FlavioCFOliveira/GoPerceptron/internal/loss"
)

const (
	// DefaultSeed seeds the weight initialization of NewDefault.
	DefaultSeed int64 = 1
	// DefaultFeatures is the input width of NewDefault.
	DefaultFeatures = 3
)

// Perceptron is a single sigmoid neuron without bias.
// It owns its weight vector; training mutates it in place.
type Perceptron struct {
	// Column vector of length Features(), one weight per input feature
	weights *mat.VecDense
	act     activations.Sigmoid

	// Reported to callbacks; never drives the update
	loss loss.Loss
}

// New creates a perceptron with features weights drawn uniformly from [-1, 1)
// by a random source seeded with seed.
func New(features int, seed int64) *Perceptron {
	return NewWithRand(features, rand.New(rand.NewSource(seed)))
}

// NewWithRand creates a perceptron whose weights are drawn from rng.
func NewWithRand(features int, rng *rand.Rand) *Perceptron {
	weights := make([]float64, features)
	for i := range weights {
		weights[i] = 2*rng.Float64() - 1
	}

	return &Perceptron{
		weights: mat.NewVecDense(features, weights),
		loss:    loss.MSE{},
	}
}

// NewDefault creates the three-input perceptron with DefaultSeed.
func NewDefault() *Perceptron {
	return New(DefaultFeatures, DefaultSeed)
}

// Predict computes sigmoid(inputs · w) for every row of inputs.
// The column count of inputs must equal Features(); gonum panics otherwise.
func (p *Perceptron) Predict(inputs mat.Matrix) *mat.VecDense {
	var z mat.Dense
	z.Mul(inputs, p.weights)
	z.Apply(p.act.ApplyActivate, &z)
	return mat.VecDenseCopyOf(z.ColView(0))
}

// Train runs iterations full-batch updates over the training set.
// Each iteration adds inputsᵀ · ((expected - output) ⊙ output ⊙ (1 - output))
// to the weights, with no learning rate. A non-positive count leaves the weights untouched.
// Callbacks only observe; they cannot stop training.
func (p *Perceptron) Train(inputs mat.Matrix, expected mat.Vector, iterations int, callbacks ...Callback) {
	for _, cb := range callbacks {
		cb.OnTrainBegin(p)
	}

	var (
		errVec, delta, adjustment mat.VecDense
		slope                     mat.Dense
	)
	for it := 0; it < iterations; it++ {
		output := p.Predict(inputs)

		errVec.SubVec(expected, output)

		// Derivative evaluated at the output, not at the pre-activation sum
		slope.Apply(p.act.ApplyDerivativeFromOutput, output)
		delta.MulElemVec(&errVec, slope.ColView(0))

		adjustment.MulVec(inputs.T(), &delta)
		p.weights.AddVec(p.weights, &adjustment)

		if len(callbacks) > 0 {
			l := p.loss.Forward(output, expected)
			for _, cb := range callbacks {
				cb.OnIterationEnd(it, l, p)
			}
		}
	}

	for _, cb := range callbacks {
		cb.OnTrainEnd(p)
	}
}

// Weights returns a copy of the current weight vector.
func (p *Perceptron) Weights() *mat.VecDense {
	return mat.VecDenseCopyOf(p.weights)
}

// Features returns the number of input features.
func (p *Perceptron) Features() int {
	return p.weights.Len()
}
