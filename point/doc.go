// Package point defines the point trait the rest of kdtree builds on:
// a fixed-dimension coordinate view over a generic scalar type, plus the
// Euclidean distance functions every query needs.
//
// The original C/CUDA source this package is modeled on (ingowald/cpuKDTree)
// treats a point as a raw byte buffer and reinterprets its first bytes as
// scalar_t coordinates. Go has no pun-a-struct-as-an-array-of-floats
// equivalent that is both safe and generic, so Point[S] instead carries its
// coordinates explicitly in a slice and an arbitrary Payload that the tree
// never inspects — the same contract, a different mechanism.
//
// Operations:
//
//	Coord(p, d)         — O(1), the d-th coordinate of p
//	SqrDistance(a, b, dims) — O(dims), squared Euclidean distance
//	Distance(a, b, dims)    — O(dims), Euclidean distance (calls Sqrt once)
//
// Only the ordering of distances matters for FCP/kNN correctness. In package
// query, KNN compares squared distances only; FCP calls Distance once per
// visited node.
package point
