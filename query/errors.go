// File: errors.go
package query

import "errors"

// ErrNegativeRadius is returned by FCP when maxRadius is negative. Use
// math.Inf(1) for an unbounded search, the original's default behavior.
var ErrNegativeRadius = errors.New("query: maxRadius must be non-negative")
