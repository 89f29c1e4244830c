package perceptron

import (
	"math/rand"

	"github.com/FlavioCFOliveira/GoPerceptron/internal/activations"
	"github.com/FlavioCFOliveira/GoPerceptron/internal/net"
)

// Re-export common types and functions for easier access
type (
	Perceptron   = net.Perceptron
	Callback     = net.Callback
	BaseCallback = net.BaseCallback
	History      = net.History
)

const (
	DefaultSeed     = net.DefaultSeed
	DefaultFeatures = net.DefaultFeatures
)

// Sigmoid is the activation every perceptron uses.
var Sigmoid = activations.Sigmoid{}

// Construction
func New(features int, seed int64) *Perceptron {
	return net.New(features, seed)
}

func NewWithRand(features int, rng *rand.Rand) *Perceptron {
	return net.NewWithRand(features, rng)
}

func NewDefault() *Perceptron {
	return net.NewDefault()
}

// Callbacks
func Logger(interval int) net.Logger {
	return net.Logger{Interval: interval}
}
