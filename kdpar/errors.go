// File: errors.go
package kdpar

import "errors"

// ErrInvalidBlockSize is returned by ForBlocked when blockSize is not
// positive.
var ErrInvalidBlockSize = errors.New("kdpar: blockSize must be positive")
