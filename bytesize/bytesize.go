// Package bytesize formats byte counts as human-readable sizes and
// parses them back.
//
// Two unit families are supported:
//
//   - Bytes uses decimal (SI) units stepping by 1000: kB, MB, GB, ...
//   - IBytes uses binary (IEC) units stepping by 1024: KiB, MiB, GiB, ...
//
// Parse accepts either family, so Parse(Bytes(n)) and Parse(IBytes(n))
// both recover n within the formatting precision:
//
//	Bytes(82854982)  = "82.855 MB"
//	IBytes(82854982) = "79.017 MiB"
//	Parse("42 MB")   = 42000000
//
// Parse failures are wrapped sentinels: errors.Is(err, ErrInvalidFormat)
// reports unrecognizable input and errors.Is(err, ErrOverflow) reports a
// result outside the uint64 range (including negative sizes).
//
// All functions are safe for concurrent use by multiple goroutines.
package bytesize

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/humanize-go/humanize/internal/ftoa"
)

// DefaultDigits is the fractional precision used by Bytes and IBytes.
const DefaultDigits = 3

// Parse failure kinds.
var (
	// ErrInvalidFormat reports input with no numeric literal or an
	// unrecognized unit suffix.
	ErrInvalidFormat = errors.New("bytesize: invalid format")

	// ErrOverflow reports a value outside the uint64 byte range.
	ErrOverflow = errors.New("bytesize: value out of range")
)

const (
	siBase  = 1000
	iecBase = 1024
)

// Unit symbols indexed by the number of base divisions applied.
var (
	siSuffixes  = [...]string{"B", "kB", "MB", "GB", "TB", "PB", "EB"}
	iecSuffixes = [...]string{"B", "KiB", "MiB", "GiB", "TiB", "PiB", "EiB"}
)

// siPrefixPowers maps the first letter of an SI unit suffix to its
// power of 1000. IEC parsing reuses the same letters with base 1024.
var siPrefixPowers = map[byte]int{
	'k': 1, 'm': 2, 'g': 3, 't': 4, 'p': 5, 'e': 6,
}

// Bytes renders s using decimal (SI) units: Bytes(82854982) is "82.855 MB".
func Bytes(s uint64) string {
	return BytesWithDigits(s, DefaultDigits)
}

// BytesWithDigits renders s using decimal (SI) units with at most
// digits fractional digits.
func BytesWithDigits(s uint64, digits int) string {
	return format(s, siBase, siSuffixes[:], digits)
}

// IBytes renders s using binary (IEC) units: IBytes(82854982) is "79.017 MiB".
func IBytes(s uint64) string {
	return IBytesWithDigits(s, DefaultDigits)
}

// IBytesWithDigits renders s using binary (IEC) units with at most
// digits fractional digits.
func IBytesWithDigits(s uint64, digits int) string {
	return format(s, iecBase, iecSuffixes[:], digits)
}

// format repeatedly divides s by base until the quotient drops below
// base or the suffix table runs out, then renders quotient + suffix.
// Values below base render as an exact integer count of bytes.
func format(s uint64, base uint64, suffixes []string, digits int) string {
	if s < base {
		return strconv.FormatUint(s, 10) + " B"
	}

	value := float64(s)
	steps := 0
	for value >= float64(base) && steps < len(suffixes)-1 {
		value /= float64(base)
		steps++
	}
	return ftoa.FtoaWithDigits(value, digits) + " " + suffixes[steps]
}

// Parse converts a human-readable byte size to a byte count.
//
// The numeric literal may carry a sign and one decimal point. The unit
// suffix is case-insensitive: empty, "b", "byte" and "bytes" mean plain
// bytes; suffixes ending in "ib" are binary (KiB = 1024); any other
// suffix starting with k, m, g, t, p or e is decimal (kB = 1000).
//
//	Parse("42 MB")    = 42000000
//	Parse("42 mib")   = 44040192
//	Parse("1.5 GiB")  = 1610612736
func Parse(s string) (uint64, error) {
	s = strings.TrimSpace(s)

	numEnd := numericPrefixLen(s)
	if numEnd == 0 || (numEnd == 1 && (s[0] == '+' || s[0] == '-')) {
		return 0, fmt.Errorf("%w: no numeric value in %q", ErrInvalidFormat, s)
	}

	value, err := strconv.ParseFloat(s[:numEnd], 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, fmt.Errorf("%w: %q", ErrOverflow, s)
		}
		return 0, fmt.Errorf("%w: %q", ErrInvalidFormat, s)
	}

	unit := strings.TrimSpace(s[numEnd:])
	mult, err := unitMultiplier(unit)
	if err != nil {
		return 0, err
	}

	value *= mult
	if value < 0 || value >= math.MaxUint64 {
		return 0, fmt.Errorf("%w: %q", ErrOverflow, s)
	}
	// Round to the nearest byte: a decimal mantissa like 1.023 has no
	// exact binary form, so 1.023 kB scales to 1022.999... and a
	// truncating conversion would lose a byte.
	return uint64(math.Round(value)), nil
}

// numericPrefixLen returns the length of the leading numeric literal in
// s: an optional sign, digits, and at most one decimal point.
func numericPrefixLen(s string) int {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	seenDot := false
	for i < len(s) {
		c := s[i]
		if c >= '0' && c <= '9' {
			i++
			continue
		}
		if c == '.' && !seenDot {
			seenDot = true
			i++
			continue
		}
		break
	}
	return i
}

// unitMultiplier resolves a trimmed unit suffix to its byte multiplier.
func unitMultiplier(unit string) (float64, error) {
	lower := strings.ToLower(unit)
	switch lower {
	case "", "b", "byte", "bytes":
		return 1, nil
	}

	if power, ok := siPrefixPowers[lower[0]]; ok {
		if strings.HasSuffix(lower, "ib") {
			return math.Pow(iecBase, float64(power)), nil
		}
		return math.Pow(siBase, float64(power)), nil
	}
	return 0, fmt.Errorf("%w: unrecognized unit %q", ErrInvalidFormat, unit)
}
