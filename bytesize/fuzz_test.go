package bytesize

import (
	"errors"
	"math"
	"strings"
	"testing"
)

// FuzzBytes verifies formatting never panics and always carries a unit.
func FuzzBytes(f *testing.F) {
	f.Add(uint64(0))
	f.Add(uint64(1))
	f.Add(uint64(999))
	f.Add(uint64(1000))
	f.Add(uint64(1024))
	f.Add(uint64(82854982))
	f.Add(uint64(math.MaxUint64))

	f.Fuzz(func(t *testing.T, n uint64) {
		for _, got := range []string{Bytes(n), IBytes(n)} {
			got := got
			if !strings.HasSuffix(got, "B") {
				t.Errorf("formatted %d as %q, missing byte unit", n, got)
			}
			if !strings.Contains(got, " ") {
				t.Errorf("formatted %d as %q, missing value/unit separator", n, got)
			}
		}
	})
}

// FuzzParse verifies Parse never panics for any string input.
func FuzzParse(f *testing.F) {
	f.Add("")
	f.Add("42")
	f.Add("42 MB")
	f.Add("1.5 GiB")
	f.Add("-10 kB")
	f.Add("20 EB")
	f.Add("garbage")
	f.Add("9999999999999999999999 B")
	f.Add("\xff\xfe")
	f.Add("..")

	f.Fuzz(func(t *testing.T, s string) {
		// Must not panic.
		_, _ = Parse(s)
	})
}

// FuzzRoundTrip verifies Parse(Bytes(n)) stays within the relative
// error introduced by the default precision.
func FuzzRoundTrip(f *testing.F) {
	f.Add(uint64(0))
	f.Add(uint64(999))
	f.Add(uint64(1000))
	f.Add(uint64(123456789))
	f.Add(uint64(1 << 50))

	f.Fuzz(func(t *testing.T, n uint64) {
		got, err := Parse(Bytes(n))
		if err != nil {
			// Values at the very top of the range can round up past
			// MaxUint64 when formatted, which Parse rejects.
			if errors.Is(err, ErrOverflow) && n > math.MaxUint64-math.MaxUint64/1000 {
				t.Skip("rounded past MaxUint64")
			}
			t.Fatalf("Parse(Bytes(%d)) error: %v", n, err)
		}
		// Three fractional digits on a value below the base keeps the
		// relative error under 0.1% of one base step.
		tolerance := uint64(1)
		for v := n; v >= siBase; v /= siBase {
			tolerance *= siBase
		}
		tolerance = tolerance / 1000 * 2
		diff := got - n
		if n > got {
			diff = n - got
		}
		if diff > tolerance {
			t.Errorf("Parse(Bytes(%d)) = %d, off by %d (tolerance %d)", n, got, diff, tolerance)
		}
	})
}
