// Package query implements the two stackless traversals that read a
// left-balanced k-d tree built by package tree: find-closest-point (FCP)
// and k-nearest-neighbors (kNN).
//
// Both walk the implicit array using only two integers, prev and curr,
// recovering "did I just come from my close child, my far child, or my
// parent" from the relation between prev and curr instead of an explicit
// call stack or a parent-pointer chain. A node with no right sibling (the
// tree is left-balanced, not complete) is handled by bouncing a phantom
// visit straight back to its parent the moment curr runs past N.
//
//   - FCP(q, points, dims, maxRadius)  O(log N) average, O(N) worst case
//   - KNN(list, q, points, dims)       O(log N + K log K) average
//
// Concurrency: both functions only read points and write into the caller's
// candidate.List; P is immutable once tree.Build returns, so concurrent
// FCP/KNN calls over the same array from multiple goroutines, each with
// its own candidate list, need no synchronization. See package kdpar for
// a batched parallel driver.
package query
