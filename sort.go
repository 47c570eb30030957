package lexsort

import (
	"io/fs"
	"slices"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// Strings sorts s in place using the given comparison function, for example
// [CompareNaturalLexical]. The sort is not stable. The comparison functions of
// this package never report distinct strings as Equal, so stability only
// matters for other comparison functions.
func Strings(s []string, cmp func(a, b string) int) {
	slices.SortFunc(s, cmp)
}

// StringsStable is like [Strings] but keeps the original order of strings that
// compare Equal.
func StringsStable(s []string, cmp func(a, b string) int) {
	slices.SortStableFunc(s, cmp)
}

// StringsBy sorts s in place, comparing key(x) instead of x. This can be used
// to trim the strings before comparing them:
//
//	lexsort.StringsBy(s, lexsort.CompareNaturalLexical, strings.TrimSpace)
func StringsBy(s []string, cmp func(a, b string) int, key func(string) string) {
	slices.SortFunc(s, func(a, b string) int {
		return cmp(key(a), key(b))
	})
}

// StringsStableBy is like [StringsBy] but keeps the original order of strings
// whose keys compare Equal.
func StringsStableBy(s []string, cmp func(a, b string) int, key func(string) string) {
	slices.SortStableFunc(s, func(a, b string) int {
		return cmp(key(a), key(b))
	})
}

// Sort sorts any slice by the string returned by key for each element.
func Sort[S ~[]E, E any](s S, cmp func(a, b string) int, key func(E) string) {
	slices.SortFunc(s, func(a, b E) int {
		return cmp(key(a), key(b))
	})
}

// SortStable is like [Sort] but keeps the original order of elements whose
// keys compare Equal.
func SortStable[S ~[]E, E any](s S, cmp func(a, b string) int, key func(E) string) {
	slices.SortStableFunc(s, func(a, b E) int {
		return cmp(key(a), key(b))
	})
}

// Lossy returns s with every invalid UTF-8 sequence replaced by the Unicode
// replacement character U+FFFD. Valid strings are returned without
// allocating. File names are not guaranteed to be valid UTF-8; the path
// sorting functions pass them through Lossy before comparing.
func Lossy(s string) string {
	if utf8.ValidString(s) {
		return s
	}
	return strings.ToValidUTF8(s, string(utf8.RuneError))
}

// Paths sorts file paths in place. Invalid UTF-8 in the paths is replaced as
// described for [Lossy] before comparing.
func Paths(paths []string, cmp func(a, b string) int) {
	StringsBy(paths, cmp, Lossy)
}

// PathsStable is like [Paths] but keeps the original order of paths that
// compare Equal.
func PathsStable(paths []string, cmp func(a, b string) int) {
	StringsStableBy(paths, cmp, Lossy)
}

// DirEntries sorts directory entries, as returned by [os.ReadDir], by their
// names.
func DirEntries(entries []fs.DirEntry, cmp func(a, b string) int) {
	Sort(entries, cmp, func(e fs.DirEntry) string {
		return Lossy(e.Name())
	})
}

// Decompose returns the canonical decomposition (NFD) of s. Used as a key
// function, it makes a precomposed character such as U+00E9 and its
// decomposed spelling "e\u0301" compare Equal under every mode, because their
// keys are identical. It allocates only if s is not already decomposed.
func Decompose(s string) string {
	return norm.NFD.String(s)
}
