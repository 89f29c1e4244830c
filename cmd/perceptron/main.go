package main

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/FlavioCFOliveira/GoPerceptron/internal/net"
)

func main() {
	// Deterministic initialization (seed=1), three input features
	p := net.NewDefault()

	fmt.Println("Random starting weights:")
	printVector(p.Weights())

	trainX := mat.NewDense(4, 3, []float64{
		0, 0, 1,
		1, 1, 1,
		1, 0, 1,
		0, 0, 1,
	})
	trainY := mat.NewVecDense(4, []float64{0, 1, 1, 0})

	p.Train(trainX, trainY, 1)

	fmt.Println("New weights after training:")
	printVector(p.Weights())

	fmt.Println("Predicting:")
	printVector(p.Predict(mat.NewDense(1, 3, []float64{1, 0, 0})))
}

func printVector(v mat.Vector) {
	fmt.Printf("%v\n", mat.Formatted(v, mat.Squeeze()))
}
