// Package plural renders English nouns in the number matching a
// quantity.
//
// Three layers are provided:
//
//   - Pluralize applies the rule set to a bare word: irregular-form
//     lookup first, then ordered suffix rules ("bus" -> "buses",
//     "baby" -> "babies", "child" -> "children").
//   - PluralWord picks between a singular and its plural for a
//     quantity, honoring an explicit override.
//   - Plural prepends the grouped quantity: Plural(1000, "page", "")
//     is "1,000 pages".
//
// A quantity of 1 or -1 selects the singular; every other quantity,
// zero included, selects the plural. There is one rule evaluator:
// every entry point resolves plurals through Pluralize, so the same
// word never pluralizes two different ways.
//
// All functions are safe for concurrent use by multiple goroutines.
package plural

import (
	"strings"

	"github.com/humanize-go/humanize/comma"
)

// irregulars maps singular nouns to plural forms that no suffix rule
// produces. Lookup is case-insensitive; the stored casing is returned.
var irregulars = map[string]string{
	"analysis":   "analyses",
	"basis":      "bases",
	"cactus":     "cacti",
	"child":      "children",
	"crisis":     "crises",
	"criterion":  "criteria",
	"datum":      "data",
	"die":        "dice",
	"focus":      "foci",
	"foot":       "feet",
	"fungus":     "fungi",
	"goose":      "geese",
	"index":      "indices",
	"man":        "men",
	"medium":     "media",
	"mouse":      "mice",
	"nucleus":    "nuclei",
	"ox":         "oxen",
	"person":     "people",
	"phenomenon": "phenomena",
	"syllabus":   "syllabi",
	"thesis":     "theses",
	"tooth":      "teeth",
	"woman":      "women",
}

// oExceptions are -o words that take a plain "s" instead of "es".
var oExceptions = map[string]struct{}{
	"auto":  {},
	"halo":  {},
	"memo":  {},
	"photo": {},
	"piano": {},
	"solo":  {},
	"zero":  {},
}

// Plural renders the quantity and the matching noun form, with the
// quantity grouped: Plural(1000, "page", "") is "1,000 pages".
func Plural(quantity int, singular, plural string) string {
	return comma.Comma(int64(quantity)) + " " + PluralWord(quantity, singular, plural)
}

// PluralWord returns singular when quantity is 1 or -1, the explicit
// plural when one is supplied, and Pluralize(singular) otherwise.
func PluralWord(quantity int, singular, plural string) string {
	if quantity == 1 || quantity == -1 {
		return singular
	}
	if plural != "" {
		return plural
	}
	return Pluralize(singular)
}

// Pluralize applies the full English rule set to word: the irregular
// table first, then ordered suffix rules, falling back to appending
// "s". The empty string pluralizes to itself.
func Pluralize(word string) string {
	if word == "" {
		return word
	}

	if p, ok := irregulars[strings.ToLower(word)]; ok {
		return p
	}

	lower := strings.ToLower(word)
	switch {
	case strings.HasSuffix(lower, "s"),
		strings.HasSuffix(lower, "x"),
		strings.HasSuffix(lower, "z"),
		strings.HasSuffix(lower, "sh"),
		strings.HasSuffix(lower, "ch"):
		return word + "es"

	case strings.HasSuffix(lower, "y") && endsConsonantThen(lower, 'y'):
		return word[:len(word)-1] + "ies"

	case strings.HasSuffix(lower, "o") && endsConsonantThen(lower, 'o'):
		if _, ok := oExceptions[lower]; ok {
			return word + "s"
		}
		return word + "es"

	case strings.HasSuffix(lower, "fe"):
		return word[:len(word)-2] + "ves"

	case strings.HasSuffix(lower, "f"):
		return word[:len(word)-1] + "ves"
	}
	return word + "s"
}

// endsConsonantThen reports whether lower ends in final preceded by a
// consonant. A word of just the final letter has no preceding
// consonant.
func endsConsonantThen(lower string, final byte) bool {
	if len(lower) < 2 || lower[len(lower)-1] != final {
		return false
	}
	return !isVowel(lower[len(lower)-2])
}

// isVowel reports whether c is an English vowel. 'y' counts as a vowel
// here so "day" and "boy" keep their plain "s" plural.
func isVowel(c byte) bool {
	switch c {
	case 'a', 'e', 'i', 'o', 'u', 'y':
		return true
	}
	return false
}
