// Package names normalizes country names so that typed guesses, reference
// data keys and image filenames can be compared regardless of case, padding
// and the common Portuguese diacritics.
package names

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

// foldDiacritics replaces the accented letters that appear in the country list.
var foldDiacritics = runes.Map(func(r rune) rune {
	switch r {
	case 'á', 'à', 'â', 'ã':
		return 'a'
	case 'é', 'ê':
		return 'e'
	case 'í':
		return 'i'
	case 'ó', 'ô', 'õ':
		return 'o'
	case 'ú', 'ü':
		return 'u'
	case 'ç':
		return 'c'
	}
	return r
})

// Normalize trims, lower-cases and folds diacritics. Normalize(Normalize(s)) == Normalize(s).
func Normalize(s string) string {
	s = cases.Lower(language.Und).String(strings.TrimSpace(s))
	folded, _, err := transform.String(foldDiacritics, s)
	if err != nil {
		return s
	}
	return folded
}

// Equal reports whether two names are the same after normalization.
func Equal(a, b string) bool {
	return Normalize(a) == Normalize(b)
}

// Match resolves a name against candidates. An exact hit wins, otherwise the
// first candidate equal after normalization is returned.
func Match(name string, candidates []string) (string, bool) {
	for _, c := range candidates {
		if c == name {
			return c, true
		}
	}

	want := Normalize(name)
	if want == "" {
		return "", false
	}
	for _, c := range candidates {
		if Normalize(c) == want {
			return c, true
		}
	}
	return "", false
}

// Title formats a typed guess for display, e.g. "coreia do sul" -> "Coreia Do Sul".
func Title(s string) string {
	return cases.Title(language.Und).String(strings.TrimSpace(s))
}

var fileSeparators = strings.NewReplacer(" ", "_", "-", "_", "'", "")

// FileVariants returns the filename stems to try, most specific first:
// snake_case, joined, kebab-case, the lower-cased original and the first word.
func FileVariants(country string) []string {
	base := fileSeparators.Replace(Normalize(country))

	candidates := []string{
		base,
		strings.ReplaceAll(base, "_", ""),
		strings.ReplaceAll(base, "_", "-"),
		cases.Lower(language.Und).String(country),
		strings.Split(base, "_")[0],
	}

	seen := make(map[string]bool, len(candidates))
	variants := make([]string, 0, len(candidates))
	for _, v := range candidates {
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		variants = append(variants, v)
	}
	return variants
}
