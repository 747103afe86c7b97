package rips_test

import (
	"fmt"
	"math"

	"github.com/katalvlaran/tda/rips"
)

// ExampleTransform computes the persistence diagrams of four corners of a
// unit square under a cap that keeps the loop open forever.
func ExampleTransform() {
	pts := [][]float64{{0, 0}, {1, 0}, {1, 1}, {0, 1}}

	col, err := rips.Transform(rips.Points(pts),
		rips.WithMaxEdgeLength(1.2),
		rips.WithHomologyDimensions(0, 1),
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	h1 := col[1]
	fmt.Printf("loops: %d\n", len(h1))
	fmt.Printf("loop born at %.1f, dies at %.1f\n", h1[0].Birth, h1[0].Death)
	// Output:
	// loops: 1
	// loop born at 1.0, dies at 1.2
}

// ExampleTransform_circle shows the dominant loop of a sampled circle.
func ExampleTransform_circle() {
	n := 12
	pts := make([][]float64, n)
	for i := range pts {
		a := 2 * math.Pi * float64(i) / float64(n)
		pts[i] = []float64{math.Cos(a), math.Sin(a)}
	}

	col, err := rips.Transform(rips.Points(pts), rips.WithHomologyDimensions(1))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	best := 0.0
	for _, p := range col[1] {
		if life := p.Persistence(); life > best {
			best = life
		}
	}
	fmt.Printf("dominant loop persists: %v\n", best > 1)
	// Output:
	// dominant loop persists: true
}
