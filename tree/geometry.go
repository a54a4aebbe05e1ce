// File: geometry.go
// Role: pure index arithmetic on an implicit, level-order binary tree.
// Policy:
//   - No allocation, no recursion, no node structs — every function here
//     is a handful of integer operations, suitable for a hot query loop.
package tree

import "math/bits"

// LeftChild returns the index of i's left child. The result may be >= N,
// meaning "no such child" — callers compare against N themselves.
func LeftChild(i int) int { return 2*i + 1 }

// RightChild returns the index of i's right child. Same "may be >= N"
// convention as LeftChild.
func RightChild(i int) int { return 2*i + 2 }

// Parent returns the index of i's parent. It is undefined for i<=0 (the
// root has no parent); callers must check i>0 (or, on the traversal's
// (curr+1)/2-1 form, check for the -1 sentinel) before using the result.
func Parent(i int) int { return (i - 1) / 2 }

// Level returns the level of node i (the root is level 0), computed as the
// position of the highest set bit of i+1. Level is undefined for i<0.
func Level(i int) int {
	return bits.Len(uint(i+1)) - 1
}

// SubtreeSize returns the number of nodes of an N-node implicit, level-order
// binary tree that lie in the subtree rooted at node n. It walks the
// leftmost spine of that subtree, at each depth counting how many of the
// subtree's potential nodes at that depth actually fall inside [0,N).
//
// This is the key primitive the left-balanced builder uses to decide, for
// any N (not just 2^L-1), exactly how many points belong in a node's left
// subtree versus its right subtree.
//
// Complexity: O(log N).
func SubtreeSize(n, N int) int {
	if n >= N {
		return 0
	}

	size := 0
	width := 1 // number of potential nodes at the current depth below n
	for n < N {
		begin := n
		present := width
		if N-begin < width {
			present = N - begin
		}
		size += present
		n = LeftChild(n)
		width += width
	}

	return size
}
