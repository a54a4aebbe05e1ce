// Package kdpar provides the blocked parallel-for this module's query
// functions are dispatched through: partition [0,numQueries) into
// contiguous blocks and run one block per goroutine.
package kdpar
