// Package comma groups the digits of numbers with thousand separators.
//
// The package provides grouping in two shapes:
//
//   - Comma, Commaf and CommafWithDigits render with the standard
//     English separators ("," between groups, "." before the fraction).
//   - Format carries a custom separator pair for locale swaps, e.g.
//     the European convention "1.234.567,89".
//
// Separators are single ASCII bytes. A Format whose thousand and
// decimal separators are identical would produce visually ambiguous
// output, so NewFormat rejects that pairing instead of guessing which
// separator wins.
//
// All functions are safe for concurrent use by multiple goroutines.
package comma

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/humanize-go/humanize/internal/ftoa"
)

const groupSize = 3 // digits per thousand group

// Format is a separator pair used to render grouped numbers.
// The zero value is not usable; obtain one from NewFormat or use the
// Standard and European presets.
type Format struct {
	thousand byte
	decimal  byte
}

// Standard groups with "," and uses "." for the fraction: "1,234,567.89".
var Standard = Format{thousand: ',', decimal: '.'}

// European groups with "." and uses "," for the fraction: "1.234.567,89".
var European = Format{thousand: '.', decimal: ','}

// NewFormat returns a Format with the given separator bytes.
// Identical separators are rejected: the output would be ambiguous
// ("1.234.5" could mean 1234.5 or 1.2345e3) and no deterministic
// reading exists.
func NewFormat(thousand, decimal byte) (Format, error) {
	if thousand == decimal {
		return Format{}, fmt.Errorf("comma: thousand and decimal separators are both %q", thousand)
	}
	return Format{thousand: thousand, decimal: decimal}, nil
}

// Comma renders v with "," thousand separators: Comma(834142) is "834,142".
func Comma(v int64) string {
	return Standard.Int(v)
}

// Commaf renders v with "," thousand separators and a "." decimal
// point, at the default fractional precision of the module's float
// renderer: Commaf(834142.32) is "834,142.32".
func Commaf(v float64) string {
	return Standard.Float(v)
}

// CommafWithDigits renders v like Commaf with at most digits
// fractional digits.
func CommafWithDigits(v float64, digits int) string {
	return Standard.FloatWithDigits(v, digits)
}

// Int renders v with f's thousand separator.
// Zero renders as "0". The sign, when present, precedes the first
// digit and is never followed by a separator.
func (f Format) Int(v int64) string {
	if v == 0 {
		return "0"
	}

	// Format digits via strconv so math.MinInt64 needs no special
	// negation handling; the sign is split off before grouping.
	s := strconv.FormatInt(v, 10)
	sign := ""
	if s[0] == '-' {
		sign = "-"
		s = s[1:]
	}
	return sign + f.group(s)
}

// Float renders v at the default precision, grouped.
func (f Format) Float(v float64) string {
	return f.FloatWithDigits(v, ftoa.DefaultDigits)
}

// FloatWithDigits renders v at the given precision, grouped.
// Non-finite values render as the float renderer's fixed tokens with
// no grouping applied.
func (f Format) FloatWithDigits(v float64, digits int) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return ftoa.FtoaWithDigits(v, digits)
	}

	sign := ""
	if math.Signbit(v) {
		sign = "-"
		v = -v
	}

	s := ftoa.FtoaWithDigits(v, digits)
	whole, frac, hasFrac := strings.Cut(s, ".")

	var b strings.Builder
	b.Grow(len(s) + len(s)/groupSize + 1)
	b.WriteString(sign)
	b.WriteString(f.group(whole))
	if hasFrac {
		b.WriteByte(f.decimal)
		b.WriteString(frac)
	}
	return b.String()
}

// group inserts f's thousand separator every groupSize digits from the
// right. The input must be a non-empty run of decimal digits with no
// sign. No separator is placed before the first digit, so a leading
// group may hold fewer than groupSize digits.
func (f Format) group(digits string) string {
	n := len(digits)
	if n <= groupSize {
		return digits
	}

	var b strings.Builder
	b.Grow(n + n/groupSize)

	lead := n % groupSize
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < n; i += groupSize {
		if b.Len() > 0 {
			b.WriteByte(f.thousand)
		}
		b.WriteString(digits[i : i+groupSize])
	}
	return b.String()
}
