package net

import (
	"fmt"
	"io"
	"os"

	"gonum.org/v1/gonum/floats"
)

// Callback defines the interface for training callbacks.
type Callback interface {
	OnTrainBegin(p *Perceptron)
	OnTrainEnd(p *Perceptron)
	OnIterationEnd(iteration int, loss float64, p *Perceptron)
}

// BaseCallback provides default empty implementations for Callback.
type BaseCallback struct{}

func (c BaseCallback) OnTrainBegin(p *Perceptron)                                {}
func (c BaseCallback) OnTrainEnd(p *Perceptron)                                  {}
func (c BaseCallback) OnIterationEnd(iteration int, loss float64, p *Perceptron) {}

// Logger logs training progress. Out defaults to stdout.
type Logger struct {
	BaseCallback
	Interval int
	Out      io.Writer
}

func (c Logger) OnIterationEnd(iteration int, loss float64, p *Perceptron) {
	if c.Interval <= 0 || iteration%c.Interval != 0 {
		return
	}
	out := c.Out
	if out == nil {
		out = os.Stdout
	}
	fmt.Fprintf(out, "Iteration %d: loss = %.6f\n", iteration, loss)
}

// History records the mean squared error of every iteration.
type History struct {
	BaseCallback
	Losses []float64
}

// OnTrainBegin starts a fresh record; slices handed out by earlier runs keep their values.
func (h *History) OnTrainBegin(p *Perceptron) {
	h.Losses = nil
}

func (h *History) OnIterationEnd(iteration int, loss float64, p *Perceptron) {
	h.Losses = append(h.Losses, loss)
}

// Best returns the lowest recorded loss and the iteration it occurred at,
// or -1 when nothing was recorded.
func (h *History) Best() (float64, int) {
	if len(h.Losses) == 0 {
		return 0, -1
	}
	idx := floats.MinIdx(h.Losses)
	return h.Losses[idx], idx
}
