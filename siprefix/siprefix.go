// Package siprefix scales values into metric (SI) prefix notation and
// parses prefixed values back.
//
// The full 2022 prefix range is supported, quecto (1e-30) through
// quetta (1e30):
//
//	SI(1000000, "B")     = "1 MB"
//	SI(2.2345e-12, "F")  = "2.2345 pF"
//	ParseSI("1 MB")      = 1000000, "B"
//
// The prefix symbol attaches directly to the unit with no space; a
// single space separates the value from the prefixed unit. Zero, NaN
// and infinities format unprefixed with the value unchanged.
//
// ParseSI failures wrap ErrInvalidFormat and are detectable with
// errors.Is.
//
// All functions are safe for concurrent use by multiple goroutines.
package siprefix

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/humanize-go/humanize/internal/ftoa"
)

// DefaultDigits is the fractional precision used by SI.
const DefaultDigits = 4

// ErrInvalidFormat reports input with no recognizable numeric literal.
var ErrInvalidFormat = errors.New("siprefix: invalid format")

// prefix is one entry of the metric prefix table.
type prefix struct {
	exponent int    // power of ten
	symbol   string // attached to the unit, e.g. "k"
	name     string // spelled-out prefix name
}

// prefixes is ordered by ascending exponent. The exponent-0 entry with
// the empty symbol anchors unprefixed output.
var prefixes = [...]prefix{
	{-30, "q", "quecto"},
	{-27, "r", "ronto"},
	{-24, "y", "yocto"},
	{-21, "z", "zepto"},
	{-18, "a", "atto"},
	{-15, "f", "femto"},
	{-12, "p", "pico"},
	{-9, "n", "nano"},
	{-6, "µ", "micro"},
	{-3, "m", "milli"},
	{0, "", ""},
	{3, "k", "kilo"},
	{6, "M", "mega"},
	{9, "G", "giga"},
	{12, "T", "tera"},
	{15, "P", "peta"},
	{18, "E", "exa"},
	{21, "Z", "zetta"},
	{24, "Y", "yotta"},
	{27, "R", "ronna"},
	{30, "Q", "quetta"},
}

// symbolExponents maps prefix symbols to exponents for parsing.
// "u" is accepted as an ASCII spelling of micro.
var symbolExponents = func() map[string]int {
	m := make(map[string]int, len(prefixes))
	for _, p := range prefixes {
		if p.symbol != "" {
			m[p.symbol] = p.exponent
		}
	}
	m["u"] = -6
	return m
}()

// SI renders v scaled to the best metric prefix for unit:
// SI(1000000, "B") is "1 MB".
func SI(v float64, unit string) string {
	return SIWithDigits(v, DefaultDigits, unit)
}

// SIWithDigits renders v like SI with at most digits fractional digits.
func SIWithDigits(v float64, digits int, unit string) string {
	value, sym := scale(v)
	return ftoa.FtoaWithDigits(value, digits) + " " + sym + unit
}

// scale picks the prefix whose exponent is the largest one not
// exceeding floor(log10(|v|)) and divides v down to it.
// Zero and non-finite values pass through unprefixed.
func scale(v float64) (float64, string) {
	if v == 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return v, ""
	}

	target := int(math.Floor(math.Log10(math.Abs(v))))

	best := prefixes[0]
	for _, p := range prefixes {
		if p.exponent > target {
			break
		}
		best = p
	}
	return v / math.Pow(10, float64(best.exponent)), best.symbol
}

// TableString returns the prefix table as display rows, one
// "name symbol 10^exponent" row per line in ascending exponent order.
// The exponent-0 anchor entry is skipped.
func TableString() string {
	var b strings.Builder
	for _, p := range prefixes {
		if p.exponent == 0 {
			continue
		}
		fmt.Fprintf(&b, "%-7s %-2s 10^%d\n", p.name, p.symbol, p.exponent)
	}
	return b.String()
}

// ParseSI extracts a value and its unit from a prefixed string:
// ParseSI("2.2345 pF") is 2.2345e-12 with unit "F".
//
// The numeric literal may use exponent notation ("2.5e3 kV"). When the
// suffix is a single rune, or its first rune is not a known prefix
// symbol, the whole suffix is taken as the unit with no scaling.
func ParseSI(s string) (float64, string, error) {
	s = strings.TrimSpace(s)

	numEnd := numericPrefixLen(s)
	value, err := strconv.ParseFloat(s[:numEnd], 64)
	if err != nil {
		return 0, "", fmt.Errorf("%w: no numeric value in %q", ErrInvalidFormat, s)
	}

	unit := strings.TrimSpace(s[numEnd:])
	sym, rest, ok := splitPrefix(unit)
	if !ok {
		return value, unit, nil
	}
	return value * math.Pow(10, float64(symbolExponents[sym])), rest, nil
}

// splitPrefix splits a leading prefix symbol off unit. A bare symbol
// with nothing after it is treated as the unit itself, not a prefix.
func splitPrefix(unit string) (sym, rest string, ok bool) {
	r, size := utf8.DecodeRuneInString(unit)
	if r == utf8.RuneError || size == len(unit) {
		return "", "", false
	}
	sym = unit[:size]
	if _, known := symbolExponents[sym]; !known {
		return "", "", false
	}
	return sym, unit[size:], true
}

// numericPrefixLen returns the length of the leading numeric literal in
// s: optional sign, digits, at most one decimal point, and an optional
// exponent part.
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
	// Exponent part: e or E, optional sign, at least one digit.
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		k := j
		for k < len(s) && s[k] >= '0' && s[k] <= '9' {
			k++
		}
		if k > j {
			i = k
		}
	}
	return i
}
