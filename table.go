package lexsort

import (
	"strings"
	"unicode/utf8"

	"github.com/mozillazg/go-unidecode/table"
)

// Table maps a non-ASCII code point to its closest ASCII approximation.
//
// An empty result means the code point has no ASCII representation. The
// returned string must consist of ASCII bytes only and must not be built on
// each call: the comparison functions rely on Lookup not allocating.
type Table interface {
	Lookup(r rune) string
}

// TableFunc adapts an ordinary function to the [Table] interface.
type TableFunc func(r rune) string

// Lookup calls f(r).
func (f TableFunc) Lookup(r rune) string {
	return f(r)
}

// Unidecode is the default transliteration table. It is backed by the
// unidecode tables, which cover Latin, Greek, Cyrillic, CJK and many other
// scripts. Padding spaces around table entries are removed and placeholder
// entries ("[?]") are reported as unmapped.
var Unidecode Table = unidecodeTable{}

// The highest code point covered by the unidecode tables.
const unidecodeMax = 0xeffff

type unidecodeTable struct{}

// Lookup implements [Table].
func (unidecodeTable) Lookup(r rune) string {
	if r < utf8.RuneSelf || r > unidecodeMax {
		return ""
	}

	section, ok := table.Tables[r>>8] // Chop off the last two hex digits.
	if !ok {
		return ""
	}
	position := int(r & 0xff)
	if position >= len(section) {
		return ""
	}

	s := strings.TrimSpace(section[position])
	if s == "[?]" {
		return ""
	}
	return s
}
