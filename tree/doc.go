// Package tree implements the implicit-array binary tree geometry, the
// left-balanced in-place builder, and the recursive correctness check for
// kdtree. There are no node structs and no pointers anywhere in this
// package: a "tree" is just a []point.Point[S] in a particular order, and
// every function here is pure index arithmetic over that slice.
//
// Tree geometry (all O(1), all total except where noted):
//
//	Level(i)        — level of node i (0 for the root)
//	LeftChild(i)    — 2i+1
//	RightChild(i)   — 2i+2
//	Parent(i)       — floor((i-1)/2), undefined for i<=0
//	SubtreeSize(n,N) — O(log N), number of nodes of an N-node implicit tree
//	                   that lie in the subtree rooted at n
//
// Build (§4.3 of the design this package implements):
//
//	Build(points, dims) — O(N log^2 N) time, O(N) extra space; rearranges
//	points in place into left-balanced k-d order. N=0 is a no-op, N=1
//	leaves the single point untouched, N<0 is rejected.
//
// Correctness check:
//
//	Check(points, dims) — O(N log N) recursive verifier of the k-d invariant;
//	exists for tests and for callers who built or deserialized an array
//	some other way and want to confirm it is a valid left-balanced k-d
//	tree before querying it.
package tree
