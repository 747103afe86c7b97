package takens_test

import (
	"fmt"

	"github.com/katalvlaran/tda/takens"
)

// ExampleTransform embeds a short ramp with frozen parameters: dimension 3,
// delay 2, stride 1 consumes a span of 5 samples per vector.
func ExampleTransform() {
	series := []float64{0, 1, 2, 3, 4, 5, 6, 7}
	p := takens.Params{Dimension: 3, TimeDelay: 2, Stride: 1}

	cloud, err := takens.Transform(series, p)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("vectors = %d\n", len(cloud))
	fmt.Println("first =", cloud[0])
	fmt.Println("last  =", cloud[len(cloud)-1])
	// Output:
	// vectors = 4
	// first = [0 2 4]
	// last  = [3 5 7]
}

// ExampleResampleLabels keeps a paired label stream aligned with the
// embedding: each vector inherits the label of the last sample it consumes.
func ExampleResampleLabels() {
	labels := []float64{10, 11, 12, 13, 14, 15, 16, 17}
	p := takens.Params{Dimension: 3, TimeDelay: 2, Stride: 1}

	aligned, err := takens.ResampleLabels(labels, p, 4)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("aligned =", aligned)
	// Output:
	// aligned = [14 15 16 17]
}
