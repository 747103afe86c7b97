package rips

import (
	"math"

	"github.com/katalvlaran/tda/diagram"
)

// persistencePairs extracts birth/death pairs from a sorted filtration by
// sparse boundary-matrix reduction over Z2.
//
// Invariants of the standard reduction, relied on below:
//
//   - Processing columns in filtration order, a column that reduces to zero
//     marks a creator (a class is born at that simplex's value); a column
//     with a surviving lowest one pairs its simplex (the destroyer) with
//     the creator at that row.
//   - Every row is the pivot of at most one column, so pairs never clash.
//   - For dimension 0 this reproduces the union-find merge order: edges
//     kill the younger of the two components they join.
//
// Zero-persistence pairs are dropped. Creators that are never destroyed are
// essential classes: their death is essentialDeath (the finite cap policy,
// see package docs). Every requested dimension is present in the output,
// possibly as an empty diagram.
//
// Complexity: O(m²) column operations worst case over m simplices; sparse
// geometric inputs reduce far faster.
func persistencePairs(fil []simplex, wantDims []int, essentialDeath float64) diagram.Collection {
	m := len(fil)

	// 1) Simplex arena index: vertex key → filtration position.
	pos := make(map[string]int, m)
	for i, s := range fil {
		pos[vertsKey(s.verts)] = i
	}

	want := make(map[int]bool, len(wantDims))
	for _, d := range wantDims {
		want[d] = true
	}

	// 2) Reduce columns in filtration order.
	//    reduced[j] holds the reduced column of simplex j (nil once zero).
	//    pivotOwner[r] is the column whose lowest one sits at row r, or -1.
	reduced := make([][]int, m)
	pivotOwner := make([]int, m)
	for i := range pivotOwner {
		pivotOwner[i] = -1
	}

	out := diagram.Collection{}
	for _, d := range wantDims {
		if out[d] == nil {
			out[d] = diagram.Diagram{}
		}
	}

	facet := make([]int, 0, 8)
	for j := 0; j < m; j++ {
		col := boundaryColumn(fil[j], pos, facet)
		for len(col) > 0 {
			low := col[len(col)-1]
			owner := pivotOwner[low]
			if owner == -1 {
				pivotOwner[low] = j
				break
			}
			col = symDiff(col, reduced[owner])
		}
		reduced[j] = col

		// 3) A surviving pivot pairs creator `low` with destroyer `j`.
		if len(col) > 0 {
			low := col[len(col)-1]
			dim := fil[low].dim()
			if !want[dim] {
				continue
			}
			birth, death := fil[low].value, fil[j].value
			if death > birth {
				out[dim] = append(out[dim], diagram.Pair{Birth: birth, Death: death})
			}
		}
	}

	// 4) Essential classes: creators whose row never became a pivot.
	for i := 0; i < m; i++ {
		if len(reduced[i]) != 0 || pivotOwner[i] != -1 {
			continue
		}
		dim := fil[i].dim()
		if !want[dim] {
			continue
		}
		out[dim] = append(out[dim], diagram.Pair{Birth: fil[i].value, Death: essentialDeath})
	}

	return out
}

// boundaryColumn returns the ascending filtration positions of the facets
// of s (each facet drops one vertex). Vertices have an empty boundary.
// scratch is reused across calls to keep allocation flat.
func boundaryColumn(s simplex, pos map[string]int, scratch []int) []int {
	if s.dim() == 0 {
		return nil
	}

	col := scratch[:0]
	facet := make([]int, 0, len(s.verts)-1)
	for drop := range s.verts {
		facet = facet[:0]
		for i, v := range s.verts {
			if i == drop {
				continue
			}
			facet = append(facet, v)
		}
		col = append(col, pos[vertsKey(facet)])
	}
	// Facet positions are not ordered by construction; the reduction needs
	// ascending rows.
	insertionSort(col)

	return append([]int(nil), col...)
}

// symDiff returns the symmetric difference of two ascending int slices —
// Z2 column addition.
func symDiff(a, b []int) []int {
	out := make([]int, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			out = append(out, a[i])
			i++
		case a[i] > b[j]:
			out = append(out, b[j])
			j++
		default:
			i++
			j++
		}
	}
	out = append(out, a[i:]...)
	out = append(out, b[j:]...)

	return out
}

// insertionSort sorts a tiny int slice in place; boundary columns have at
// most dim+1 entries, far below any sort.Ints cutoff.
func insertionSort(a []int) {
	for i := 1; i < len(a); i++ {
		for j := i; j > 0 && a[j] < a[j-1]; j-- {
			a[j], a[j-1] = a[j-1], a[j]
		}
	}
}

// vertsKey encodes an ascending vertex slice as a compact map key.
func vertsKey(vs []int) string {
	b := make([]byte, 0, len(vs)*4)
	for _, v := range vs {
		b = append(b, byte(v), byte(v>>8), byte(v>>16), byte(v>>24))
	}

	return string(b)
}

// maxFiltrationValue returns the largest entry value present in the
// filtration, the essential-death fallback under an unbounded cap.
func maxFiltrationValue(fil []simplex) float64 {
	var best float64
	for _, s := range fil {
		if s.value > best {
			best = s.value
		}
	}

	return best
}

// essentialDeathValue resolves the death coordinate of never-dying classes:
// the configured cap when finite, otherwise the largest filtration value.
func essentialDeathValue(maxEdge float64, fil []simplex) float64 {
	if !math.IsInf(maxEdge, 1) {
		return maxEdge
	}

	return maxFiltrationValue(fil)
}
