package knngraph

import (
	"container/heap"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Geodesics computes the all-pairs graph-geodesic distance matrix: one
// Dijkstra pass per source vertex over the frozen adjacency. Edge weights
// are Euclidean distances, hence non-negative; the heap uses the lazy
// decrease-key strategy (duplicates pushed, stale entries skipped on pop).
//
// Unreachable pairs follow the configured policy: ErrDisconnectedGraph
// naming the first unreachable pair (default), or a +Inf matrix entry under
// WithInfiniteOnDisconnect.
//
// The result is symmetric with a zero diagonal and is independent storage:
// the graph is not referenced by it.
//
// Complexity: O(n·(V+E)·log V) time, O(n²) space for the output.
func (g *Graph) Geodesics(opts ...Option) (*mat.SymDense, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	out := mat.NewSymDense(g.n, nil)
	dist := make([]float64, g.n)
	visited := make([]bool, g.n)
	for src := 0; src < g.n; src++ {
		g.shortestFrom(src, dist, visited)
		for j := src + 1; j < g.n; j++ {
			if math.IsInf(dist[j], 1) && !cfg.InfOnDisconnect {
				return nil, fmt.Errorf("%w: no path between points %d and %d", ErrDisconnectedGraph, src, j)
			}
			out.SetSym(src, j, dist[j])
		}
	}

	return out, nil
}

// shortestFrom runs single-source Dijkstra from src, writing distances into
// dist (math.Inf(1) for unreachable vertices). dist and visited are scratch
// buffers reused across sources.
func (g *Graph) shortestFrom(src int, dist []float64, visited []bool) {
	// 1) Reset state: all distances infinite, nothing finalized.
	for i := range dist {
		dist[i] = math.Inf(1)
		visited[i] = false
	}
	dist[src] = 0

	// 2) Seed the min-heap with the source at distance 0.
	pq := make(nodePQ, 0, g.n)
	heap.Init(&pq)
	heap.Push(&pq, &nodeItem{id: src, dist: 0})

	// 3) Extract-min / relax loop.
	for pq.Len() > 0 {
		item := heap.Pop(&pq).(*nodeItem)
		u := item.id

		// Stale heap entry for an already-finalized vertex: skip.
		if visited[u] {
			continue
		}
		visited[u] = true

		for _, e := range g.adj[u] {
			nd := dist[u] + e.w
			// Strictly-better paths only, so equal distances never push
			// duplicate heap entries.
			if nd >= dist[e.to] {
				continue
			}
			dist[e.to] = nd
			heap.Push(&pq, &nodeItem{id: e.to, dist: nd})
		}
	}
}

// nodeItem is a vertex plus its tentative distance from the source, stored
// in the priority queue.
type nodeItem struct {
	id   int
	dist float64
}

// nodePQ is a min-heap of *nodeItem ordered by distance ascending, operated
// under the lazy decrease-key discipline: shorter rediscoveries push new
// entries, outdated ones are discarded when popped.
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less defines the comparison: smaller dist → higher priority.
func (pq nodePQ) Less(i, j int) bool { return pq[i].dist < pq[j].dist }

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap; x must be of type *nodeItem.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the smallest element from the heap.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
