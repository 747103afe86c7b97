package rips

import "sort"

// simplex is one arena entry of the filtration: ascending vertex indices
// plus the filtration value at which the simplex enters the complex (the
// maximum pairwise distance among its vertices).
type simplex struct {
	verts []int
	value float64
}

// dim returns the simplex dimension (#vertices - 1).
func (s simplex) dim() int { return len(s.verts) - 1 }

// buildFiltration enumerates every Vietoris–Rips simplex of dimension at
// most maxSimDim whose entry value is within maxEdge, and returns them in
// the canonical filtration order: ascending value, ties broken by simplex
// dimension, then by lexicographic vertex order.
//
// Enumeration is the incremental lower-neighbor expansion: a simplex is
// grown only by vertices smaller than all its current vertices, so every
// simplex is produced exactly once.
//
// Complexity: output-sensitive; worst case Σ_k C(n, k+1) simplices.
func buildFiltration(d [][]float64, maxEdge float64, maxSimDim int) []simplex {
	n := len(d)

	// 1) Lower neighbor lists: lower[v] = {u < v : d(u,v) <= maxEdge},
	//    ascending.
	lower := make([][]int, n)
	for v := 0; v < n; v++ {
		for u := 0; u < v; u++ {
			if d[u][v] <= maxEdge {
				lower[v] = append(lower[v], u)
			}
		}
	}

	// 2) Depth-first coface expansion from every vertex.
	var fil []simplex
	var expand func(tau []int, cands []int, val float64)
	expand = func(tau []int, cands []int, val float64) {
		// Materialize tau in ascending order (it is built descending).
		verts := make([]int, len(tau))
		for i, v := range tau {
			verts[len(tau)-1-i] = v
		}
		fil = append(fil, simplex{verts: verts, value: val})

		if len(tau)-1 == maxSimDim {
			return
		}
		for _, w := range cands {
			// Entry value of tau ∪ {w}: the new vertex can only raise it.
			nv := val
			for _, s := range tau {
				if dw := d[w][s]; dw > nv {
					nv = dw
				}
			}
			// Shrink the candidate set to the common lower neighbors of the
			// grown simplex; lower[w] keeps only vertices below w.
			expand(append(tau, w), intersect(cands, lower[w]), nv)
		}
	}
	for v := n - 1; v >= 0; v-- {
		expand([]int{v}, lower[v], 0)
	}

	// 3) Canonical filtration order: (value, dimension, lexicographic).
	sort.Slice(fil, func(i, j int) bool {
		a, b := fil[i], fil[j]
		if a.value != b.value {
			return a.value < b.value
		}
		if len(a.verts) != len(b.verts) {
			return len(a.verts) < len(b.verts)
		}
		for k := range a.verts {
			if a.verts[k] != b.verts[k] {
				return a.verts[k] < b.verts[k]
			}
		}

		return false
	})

	return fil
}

// intersect returns the ascending intersection of two ascending int slices.
func intersect(a, b []int) []int {
	var out []int
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			i++
		case a[i] > b[j]:
			j++
		default:
			out = append(out, a[i])
			i++
			j++
		}
	}

	return out
}
