package metric_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/tda/diagram"
	"github.com/katalvlaran/tda/metric"
)

// ExampleDistance compares two one-point diagrams with the exact
// 2-Wasserstein matching: the direct match costs 2, cheaper than sending
// both points to the diagonal.
func ExampleDistance() {
	a := diagram.Collection{0: diagram.Diagram{{Birth: 0, Death: 2}}}
	b := diagram.Collection{0: diagram.Diagram{{Birth: 0, Death: 4}}}

	d, err := metric.Distance(a, b, metric.WithKind(metric.Wasserstein))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("W2(H0) = %.2f\n", d[0])
	// Output:
	// W2(H0) = 2.00
}

// ExamplePairwiseDistances builds the full distance tensor of a
// three-sample batch and reads back one entry per side of the diagonal.
func ExamplePairwiseDistances() {
	batch := diagram.Batch{
		{0: diagram.Diagram{{Birth: 0, Death: 1}}},
		{0: diagram.Diagram{{Birth: 0, Death: 3}}},
		{0: diagram.Diagram{{Birth: 1, Death: 2}}},
	}

	tensor, err := metric.PairwiseDistances(context.Background(), batch,
		metric.WithKind(metric.Bottleneck))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("samples = %d\n", tensor.Samples())
	fmt.Printf("d(0,1) = %.4f\n", tensor.At(0, 1, 0))
	fmt.Printf("d(1,0) = %.4f\n", tensor.At(1, 0, 0))
	// Output:
	// samples = 3
	// d(0,1) = 2.0000
	// d(1,0) = 2.0000
}
