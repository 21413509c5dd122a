package comma

import (
	"math"
	"strconv"
	"strings"
	"testing"
)

// FuzzComma verifies grouping never corrupts the digits: stripping the
// separators must reproduce strconv's rendering exactly.
func FuzzComma(f *testing.F) {
	f.Add(int64(0))
	f.Add(int64(1))
	f.Add(int64(-1))
	f.Add(int64(999))
	f.Add(int64(1000))
	f.Add(int64(-100000))
	f.Add(int64(math.MaxInt64))
	f.Add(int64(math.MinInt64))

	f.Fuzz(func(t *testing.T, n int64) {
		got := Comma(n)
		plain := strings.ReplaceAll(got, ",", "")
		if plain != strconv.FormatInt(n, 10) {
			t.Errorf("Comma(%d) = %q, digits do not round-trip", n, got)
		}
		if strings.HasPrefix(got, ",") || strings.HasSuffix(got, ",") ||
			strings.Contains(got, "-,") {
			t.Errorf("Comma(%d) = %q, misplaced separator", n, got)
		}
	})
}

// FuzzCommaf verifies the float path never panics and never emits
// adjacent or misplaced separators.
func FuzzCommaf(f *testing.F) {
	f.Add(0.0)
	f.Add(1.5)
	f.Add(-834142.32)
	f.Add(math.MaxFloat64)
	f.Add(math.SmallestNonzeroFloat64)
	f.Add(math.Inf(1))
	f.Add(math.NaN())

	f.Fuzz(func(t *testing.T, v float64) {
		got := Commaf(v)
		if got == "" {
			t.Errorf("Commaf(%v) returned empty string", v)
		}
		if strings.Contains(got, ",,") || strings.Contains(got, ",.") {
			t.Errorf("Commaf(%v) = %q, malformed separators", v, got)
		}
	})
}
