// Package ordinal appends English ordinal suffixes to integers.
//
// The teens exception is applied before the last-digit rule, so 11, 12
// and 13 take "th" while 21, 22 and 23 take "st", "nd" and "rd".
// Negative input keeps its sign before the digits: Ordinal(-1) is
// "-1st".
//
// All functions are safe for concurrent use by multiple goroutines.
package ordinal

import "strconv"

// Ordinal renders n with its ordinal suffix: Ordinal(21) is "21st".
func Ordinal(n int) string {
	return strconv.Itoa(n) + Suffix(n)
}

// Suffix returns the bare ordinal suffix for n ("st", "nd", "rd" or
// "th"). The sign of n never affects the suffix.
func Suffix(n int) string {
	if n < 0 {
		n = -n
	}

	// The teens exception is decided on the last two digits first.
	switch n % 100 {
	case 11, 12, 13:
		return "th"
	}
	switch n % 10 {
	case 1:
		return "st"
	case 2:
		return "nd"
	case 3:
		return "rd"
	}
	return "th"
}
