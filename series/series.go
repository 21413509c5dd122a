// Package series joins words into natural-language lists.
//
//	WordSeries([]string{"foo", "bar", "baz"}, "and")  = "foo, bar and baz"
//	OxfordWordSeries(same)                            = "foo, bar, and baz"
//
// All functions are safe for concurrent use by multiple goroutines.
package series

import "strings"

// WordSeries joins words with commas and a final conjunction:
// two words become "A and B", three or more "A, B and C".
// Zero words yield "" and one word is returned unchanged.
func WordSeries(words []string, conjunction string) string {
	return join(words, conjunction, false)
}

// OxfordWordSeries joins like WordSeries but keeps the serial comma
// before the conjunction: "A, B, and C".
func OxfordWordSeries(words []string, conjunction string) string {
	return join(words, conjunction, true)
}

func join(words []string, conjunction string, oxford bool) string {
	switch len(words) {
	case 0:
		return ""
	case 1:
		return words[0]
	case 2:
		return words[0] + " " + conjunction + " " + words[1]
	}

	sep := " " + conjunction + " "
	if oxford {
		sep = ", " + conjunction + " "
	}
	return strings.Join(words[:len(words)-1], ", ") + sep + words[len(words)-1]
}
