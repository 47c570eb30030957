/*
Package lexsort compares and sorts strings lexicographically, naturally, or
both, without allocating.

Lexicographic comparison means that non-ASCII characters such as "á" or "ß" are
treated like their closest ASCII equivalents: "á" is treated as "a", "ß" as
"ss", "æ" as "ae", "½" as "1/2". Lexical comparisons are case-insensitive, and
alphanumeric characters sort after all other characters (punctuation,
whitespace, symbols, emojis, ...).

This package does not attempt to be correct for every locale. It works
reasonably well for a wide range of them while being fast: strings are
transliterated lazily, one rune at a time, and comparisons stop at the first
difference.

# Overview

Natural comparison also handles ASCII numbers: "50" sorts before "100". Digit
runs of any length are compared without converting them to integers, so there
is no overflow. Only-alnum comparison skips characters that are not
alphanumeric, so "f-5" sorts next to "f5".

If different strings have the same transliteration (for example "Foo" and
"fóò"), they are ordered by code point, so sorting is deterministic and no two
distinct strings compare Equal.

# Comparison Functions

There are eight comparison functions, all with the signature of
[strings.Compare]:

	Function                        lexical  natural  skips non-alphanumeric
	Compare
	CompareOnlyAlnum                                  yes
	CompareLexical                  yes
	CompareLexicalOnlyAlnum         yes               yes
	CompareNatural                           yes
	CompareNaturalOnlyAlnum                  yes      yes
	CompareNaturalLexical           yes      yes
	CompareNaturalLexicalOnlyAlnum  yes      yes      yes

Only the lexical functions are case-insensitive. They are thin wrappers around
[Comparer], which can also be configured with a custom transliteration
[Table]. [Mode] names the eight configurations for command lines and SQL
collations.

# Sorting

Use [Strings], [StringsBy], [Paths], [DirEntries], or [Sort] (and their stable
variants), or pass a comparison function to [slices.SortFunc] directly:

	s := []string{"ß", "é", "100", "hello", "world", "50", ".", "B!"}
	slices.SortFunc(s, lexsort.CompareNaturalLexical)
	// [. 50 100 B! é hello ß world]

# Transliteration

[Iterator], [NextChar], and [TransliterateRune] expose the transliteration
used by the lexical functions. Combining diacritical marks are stripped, so
"a" followed by U+0300 is transliterated to "a". Characters without an ASCII
representation, such as most emojis, pass through unchanged.
*/
package lexsort
