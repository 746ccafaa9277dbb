package condition

import "strings"

// normalize folds Latin diacritics and strips a trailing English plural
// "s" so that string comparisons satisfy spec.md §4.7: "strings are
// compared ignoring Latin diacritics ... and with English-plural
// tolerance". Comparison remains case-sensitive; spec.md never asks for
// case folding.
func normalize(s string) string {
	s = stripDiacritics(s)
	s = strings.TrimSuffix(s, "s")
	return s
}

// normalizeExact is used for exact (==) matches. It applies the same
// folding as normalize (diacritics and a trailing "s"), so exact matches
// still tolerate "Map" == "Maps" per spec.md §4.7's example.
func normalizeExact(s string) string {
	return normalize(s)
}

var diacriticFold = map[rune]rune{
	'à': 'a', 'á': 'a', 'â': 'a', 'ã': 'a', 'ä': 'a', 'å': 'a',
	'À': 'A', 'Á': 'A', 'Â': 'A', 'Ã': 'A', 'Ä': 'A', 'Å': 'A',
	'è': 'e', 'é': 'e', 'ê': 'e', 'ë': 'e',
	'È': 'E', 'É': 'E', 'Ê': 'E', 'Ë': 'E',
	'ì': 'i', 'í': 'i', 'î': 'i', 'ï': 'i',
	'Ì': 'I', 'Í': 'I', 'Î': 'I', 'Ï': 'I',
	'ò': 'o', 'ó': 'o', 'ô': 'o', 'õ': 'o', 'ö': 'o',
	'Ò': 'O', 'Ó': 'O', 'Ô': 'O', 'Õ': 'O', 'Ö': 'O',
	'ù': 'u', 'ú': 'u', 'û': 'u', 'ü': 'u',
	'Ù': 'U', 'Ú': 'U', 'Û': 'U', 'Ü': 'U',
	'ñ': 'n', 'Ñ': 'N',
	'ç': 'c', 'Ç': 'C',
	'ý': 'y', 'ÿ': 'y', 'Ý': 'Y',
}

func stripDiacritics(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if folded, ok := diacriticFold[r]; ok {
			r = folded
		}
		b.WriteRune(r)
	}
	return b.String()
}

// stringMatches reports whether candidate matches pattern under the
// requested exactness: exact requires the whole (normalized) string to
// be equal; substring requires pattern to appear anywhere within
// candidate, both normalized (spec.md §4.7).
func stringMatches(candidate, pattern string, exact bool) bool {
	if exact {
		return normalizeExact(candidate) == normalizeExact(pattern)
	}
	return strings.Contains(normalize(candidate), normalize(pattern))
}
