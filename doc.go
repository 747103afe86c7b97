// Package tda is your in-memory toolkit for topological time-series
// analysis — from delay embeddings to persistence diagrams and the
// distances between them.
//
// 🚀 What is tda?
//
//	A modern, deterministic library that brings together:
//		• Delay embeddings: Takens reconstruction with automatic delay/dimension search
//		• Sliding windows: fixed-width point clouds over an embedded series
//		• Neighbor graphs: k-NN graphs + all-pairs geodesic distances
//		• Persistent homology: Vietoris–Rips filtrations with a hard edge-length cap
//		• Diagram transforms: rescaling, lifetime filtering, entropy, Betti curves
//		• Diagram metrics: persistence landscapes, Wasserstein and bottleneck distances
//
// ✨ Why choose tda?
//
//   - Deterministic – every tie in the filtration order is broken the same way, every run
//   - Rock-solid guarantees – sentinel errors, validated inputs, in-code docs
//   - Parallel where it matters – windows are independent samples, batches fan out on a worker pool
//   - Extensible – every stage is a pure function over its inputs plus frozen parameters
//
// The pipeline, left to right:
//
//	series ──takens──▶ embedded ──window──▶ point clouds ──rips──▶ diagrams
//	                                    └──knngraph──▶ geodesics ──┘
//	diagrams ──diagram──▶ rescaled/filtered/summarized ──metric──▶ distance tensors
//
// Everything is organized under seven subpackages:
//
//	takens/   — delay-coordinate (Takens) embedding, delay & dimension search
//	window/   — sliding-window segmentation of an embedded series
//	knngraph/ — k-nearest-neighbor graphs and graph geodesic distances
//	rips/     — Vietoris–Rips filtrations and persistent homology
//	diagram/  — persistence-diagram types, transforms and vector summaries
//	metric/   — landscape, Wasserstein and bottleneck diagram distances
//	batch/    — index-aligned parallel execution over window batches
//
// Dive into each package's doc.go for complexity notes, error contracts
// and runnable examples.
//
//	go get github.com/katalvlaran/tda
package tda
