package knngraph

import "errors"

// Sentinel errors returned by Build and Geodesics.
var (
	// ErrNoPoints indicates an empty point cloud.
	ErrNoPoints = errors.New("knngraph: point cloud is empty")

	// ErrBadNeighborCount indicates K < 1.
	ErrBadNeighborCount = errors.New("knngraph: neighbor count must be >= 1")

	// ErrDimensionMismatch indicates points of inconsistent dimensionality.
	ErrDimensionMismatch = errors.New("knngraph: points have inconsistent dimensions")

	// ErrDisconnectedGraph indicates that some pair of points has no
	// connecting path in the neighbor graph.
	ErrDisconnectedGraph = errors.New("knngraph: graph is disconnected")
)

// halfEdge is one directed half of an undirected weighted edge.
type halfEdge struct {
	to int
	w  float64
}

// Graph is an undirected weighted neighbor graph over a window's points.
// The adjacency is frozen at Build time and never mutated afterwards; it is
// consumed only by shortest-path computation.
type Graph struct {
	n   int
	adj [][]halfEdge
}

// Order returns the number of points (vertices) in the graph.
func (g *Graph) Order() int { return g.n }

// Degree returns the number of neighbors of point i. Symmetrization can
// push this above the configured K.
func (g *Graph) Degree(i int) int { return len(g.adj[i]) }

// Options configures Build and Geodesics.
//
// K                – neighbors per point for Build (≥1). A K exceeding n-1
//
//	is clamped to n-1: every other point is already a neighbor.
//
// InfOnDisconnect  – Geodesics policy for unreachable pairs: false (default)
//
//	returns ErrDisconnectedGraph; true records +Inf instead.
type Options struct {
	K               int
	InfOnDisconnect bool
}

// Option is a functional option for Build and Geodesics.
type Option func(*Options)

// WithK sets the number of nearest neighbors per point.
func WithK(k int) Option {
	return func(o *Options) { o.K = k }
}

// WithInfiniteOnDisconnect switches Geodesics from the error policy to the
// +Inf-sentinel policy for unreachable pairs.
func WithInfiniteOnDisconnect() Option {
	return func(o *Options) { o.InfOnDisconnect = true }
}

// DefaultOptions returns the Options used when no functional options are
// supplied: K = 4, error on disconnection.
func DefaultOptions() Options {
	return Options{K: 4, InfOnDisconnect: false}
}
