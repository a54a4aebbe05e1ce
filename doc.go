// Package kdtree (kdtree) is your in-memory toolkit for building and
// querying a left-balanced, implicit-array k-d tree over a fixed set
// of k-dimensional points.
//
// 🚀 What is kdtree?
//
//	A small, zero-allocation-at-query-time library that brings together:
//
//	  • point    — a generic, fixed-dimension point view and Euclidean distance
//	  • tree     — an in-place left-balanced builder + stackless geometry helpers
//	  • candidate — bounded top-K structures (insertion-sorted and max-heap)
//	  • query    — stackless find-closest-point and k-nearest-neighbor traversal
//	  • kdpar    — a blocked parallel-for to fan a query array out across goroutines
//
// ✨ Why choose kdtree?
//
//   - No pointers, no recursion stack at query time — the tree lives in a
//     single slice and traversal state is two integers.
//   - Build once, query millions of times — after Build returns, the point
//     array is immutable and every query is lock-free.
//   - Works for any N — the builder computes exact subtree capacities so the
//     implicit layout stays left-balanced even when N is not 2^L-1.
//
// Under the hood, everything is organized under five subpackages:
//
//	point/     — Scalar constraint, Point[S] view, SqrDistance/Distance
//	tree/      — geometry (Level/LeftChild/RightChild/Parent/SubtreeSize), Build, Check
//	candidate/ — FixedList and HeapList, the two top-K admission strategies
//	query/     — FCP (find closest point) and KNN (k nearest neighbors)
//	kdpar/     — ForBlocked, a bounded-concurrency parallel-for over query arrays
//
// Quick ASCII example, four 2-D points split on x at the root:
//
//	        (3,3)
//	       /     \
//	    (1,4)   (4,1)
//	    /
//	 (2,2)
//
// See cmd/kdbench for a runnable build+query+verify harness, and each
// subpackage's doc.go for complexity and invariant details.
//
//	go get github.com/katalvlaran/kdtree
package kdtree
