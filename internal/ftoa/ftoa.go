// Package ftoa renders float64 values as trimmed decimal text.
//
// Every formatter in this module that emits a fractional value goes
// through this package, so trailing-zero stripping and special-value
// tokens behave identically everywhere:
//
//   - Ftoa formats at the default precision of 6 fractional digits.
//   - FtoaWithDigits formats at a caller-chosen precision, clamped to 0–9.
//
// Trailing zero digits after the decimal point are stripped, and a
// dangling decimal point is removed, so 2.50 renders as "2.5" and
// 2.00 as "2". The non-finite values are fixed tokens: NaN renders as
// "NaN", positive infinity as "+Inf", negative infinity as "-Inf",
// regardless of the requested precision.
//
// All functions are safe for concurrent use by multiple goroutines.
package ftoa

import (
	"math"
	"strconv"
	"strings"
)

const (
	// DefaultDigits is the fractional precision used by Ftoa.
	DefaultDigits = 6

	// MaxDigits is the largest supported fractional precision.
	// FtoaWithDigits clamps anything above it down to this value.
	MaxDigits = 9
)

// Ftoa formats f with at most DefaultDigits fractional digits,
// stripping trailing zeros and a dangling decimal point.
func Ftoa(f float64) string {
	return FtoaWithDigits(f, DefaultDigits)
}

// FtoaWithDigits formats f with at most digits fractional digits,
// stripping trailing zeros and a dangling decimal point.
// digits is clamped to [0, MaxDigits]; a negative value means 0
// and anything above MaxDigits means MaxDigits.
func FtoaWithDigits(f float64, digits int) string {
	if s, ok := specialToken(f); ok {
		return s
	}
	return stripTrailingZeros(strconv.FormatFloat(f, 'f', clampDigits(digits), 64))
}

// specialToken returns the fixed token for non-finite values.
func specialToken(f float64) (string, bool) {
	switch {
	case math.IsNaN(f):
		return "NaN", true
	case math.IsInf(f, 1):
		return "+Inf", true
	case math.IsInf(f, -1):
		return "-Inf", true
	}
	return "", false
}

// clampDigits clamps a requested precision into [0, MaxDigits].
func clampDigits(digits int) int {
	if digits < 0 {
		return 0
	}
	if digits > MaxDigits {
		return MaxDigits
	}
	return digits
}

// stripTrailingZeros removes trailing '0' runs after a decimal point,
// plus the point itself when nothing fractional remains.
// Input without a decimal point is returned unchanged.
func stripTrailingZeros(s string) string {
	if !strings.ContainsRune(s, '.') {
		return s
	}
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}
