// Package candidate implements two bounded top-K admission strategies: a
// sequence of up to K (dist², pointID) entries plus a current admission
// threshold (MaxRadiusSqr), keyed by squared distance and tie-broken by
// point ID.
//
// Both List implementations share the same two-method contract — Push and
// MaxRadiusSqr — so package query's traversal never needs to know which one
// it is driving:
//
//	FixedList — entries held in ascending dist² order; Push does a single
//	            O(K) pairwise min/max sweep that lifts the new entry into
//	            place and evicts the largest. Good for small, fixed K.
//
//	HeapList  — entries held as a max-heap keyed by dist², so the root is
//	            always the current worst admitted neighbor; Push is an
//	            O(log K) sift-down. Good for larger K.
//
// Both start every slot at (initialRadius², -1): an unfilled slot always
// loses every comparison to a real candidate, and is reported back to the
// caller as id == -1 ("no neighbor found").
package candidate
