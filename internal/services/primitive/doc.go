// Package primitive is the boundary between the block-cipher primitive and
// the code that calls it.
//
// Each call derives a schedule for the supplied key, transforms exactly one
// block and erases the schedule before returning. Only the key size and key
// check value are ever logged.
package primitive
