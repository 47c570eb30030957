package lexsort

import (
	"unicode"
	"unicode/utf8"
)

// Character classes used by the transliteration iterator and the comparison
// engine.
//
// Note: clOther must be 0 so that a failed table search classifies a code
// point as "other".
const (
	clOther = iota // Neither alphanumeric nor a combining mark
	clDigit        // ASCII decimal digit 0-9
	clAlnum        // Any other alphanumeric character (Alphabetic or Numeric)
	clMark         // Combining diacritical mark
)

// propertySearch performs a binary search on a sorted property table.
// Each entry is [startCodePoint, endCodePoint, property].
// Returns the matching entry, or zero-initialized entry if not found.
func propertySearch(dictionary [][3]int, r rune) (result [3]int) {
	// Run a binary search.
	from := 0
	to := len(dictionary)
	for to > from {
		middle := (from + to) / 2
		cpRange := dictionary[middle]
		if int(r) < cpRange[0] {
			to = middle
			continue
		}
		if int(r) > cpRange[1] {
			from = middle + 1
			continue
		}
		return cpRange
	}
	return
}

// property returns the class value (see constants above) of the given code
// point as listed in the given table.
func property(dictionary [][3]int, r rune) int {
	return propertySearch(dictionary, r)[2]
}

// classify returns the character class of the given code point while fast
// tracking ASCII characters.
func classify(r rune) int {
	if r < utf8.RuneSelf {
		switch {
		case r >= '0' && r <= '9':
			return clDigit
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
			return clAlnum
		default:
			return clOther
		}
	}
	// Other_Alphabetic covers dependent vowel signs (Devanagari, Thai, ...)
	// and is checked before the mark blocks, which contain U+0345.
	if unicode.IsLetter(r) || unicode.IsNumber(r) || unicode.Is(unicode.Other_Alphabetic, r) {
		return clAlnum
	}
	return property(markCodePoints, r)
}

// isAlnum reports whether r is alphanumeric.
func isAlnum(r rune) bool {
	c := classify(r)
	return c == clDigit || c == clAlnum
}

// isDigit reports whether r is an ASCII decimal digit. Other Unicode digits
// never start a digit run.
func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// toLowerASCII lowercases ASCII letters and returns all other runes unchanged.
func toLowerASCII(r rune) rune {
	if r >= 'A' && r <= 'Z' {
		return r + ('a' - 'A')
	}
	return r
}
