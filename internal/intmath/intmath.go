// Package intmath provides integer division helpers with floor semantics.
// Go's / and % operators truncate towards zero, which is the wrong rounding
// direction for calendar arithmetic on days before the epoch.
package intmath

// FloorDiv returns the quotient of a and b, rounded towards negative infinity.
func FloorDiv(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// FloorMod returns the remainder of a and b with the same sign as b.
// The result is in [0, b) for positive b.
func FloorMod(a, b int64) int64 {
	r := a % b
	if r != 0 && ((r < 0) != (b < 0)) {
		r += b
	}
	return r
}
