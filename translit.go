package lexsort

import (
	"strings"
	"unicode/utf8"
)

// Policy determines what the transliteration iterator does with characters
// that are not alphanumeric.
type Policy int

const (
	// KeepNonAlnum passes non-alphanumeric characters through unchanged.
	KeepNonAlnum Policy = iota
	// DropNonAlnum suppresses non-alphanumeric characters.
	DropNonAlnum
)

// Char is the transliteration of a single source character: a finite sequence
// of zero, one, or more runes. It is either one pending rune or a cursor into
// a static ASCII string returned by a [Table]. Calling [Char.Next] advances the
// cursor in place. The zero value is an empty sequence.
type Char struct {
	r      rune   // Pending rune if single is set.
	single bool   // Whether r is pending.
	rest   string // Remaining ASCII bytes.
}

// emptyChar yields nothing.
var emptyChar = Char{}

// singleChar yields r once.
func singleChar(r rune) Char {
	return Char{r: r, single: true}
}

// Next returns the next rune of the transliteration. The second return value
// is false once the sequence is exhausted.
func (c *Char) Next() (rune, bool) {
	if c.single {
		c.single = false
		return c.r, true
	}
	if len(c.rest) == 0 {
		return 0, false
	}
	b := c.rest[0]
	c.rest = c.rest[1:]
	return toLowerASCII(rune(b)), true
}

// Len returns the number of runes that remain in the sequence.
func (c Char) Len() int {
	if c.single {
		return 1
	}
	return len(c.rest)
}

// String returns the remaining runes of the sequence.
func (c Char) String() string {
	if c.single {
		return string(c.r)
	}
	return strings.ToLower(c.rest)
}

// TransliterateRune returns the transliteration of one code point, converted to
// lowercase ASCII if it is alphanumeric and the table knows it:
//
//   - ASCII characters are lowercased. Under [DropNonAlnum], ASCII characters
//     other than letters and digits are suppressed.
//   - Non-ASCII alphanumeric characters are looked up in the table. If the
//     table has no entry, the character is returned unchanged under both
//     policies.
//   - Combining diacritical marks are suppressed under both policies.
//   - All other non-ASCII characters are returned unchanged under
//     [KeepNonAlnum] and suppressed under [DropNonAlnum].
//
// A nil table behaves like [Unidecode]. No memory is allocated.
func TransliterateRune(r rune, policy Policy, t Table) Char {
	switch classify(r) {
	case clDigit, clAlnum:
		if r < utf8.RuneSelf {
			return singleChar(toLowerASCII(r))
		}
		if t == nil {
			t = Unidecode
		}
		if s := t.Lookup(r); s != "" {
			return Char{rest: s}
		}
		return singleChar(r)
	case clMark:
		return emptyChar
	default:
		if policy == DropNonAlnum {
			return emptyChar
		}
		return singleChar(r)
	}
}

// NextChar decodes the first code point of str and returns its
// transliteration (see [TransliterateRune]) as well as the rest of the string.
//
// This function can be called continuously to transliterate a string without
// allocating:
//
//	for len(str) > 0 {
//		var c lexsort.Char
//		c, str = lexsort.NextChar(str, lexsort.KeepNonAlnum, nil)
//		for r, ok := c.Next(); ok; r, ok = c.Next() {
//			// Process r.
//		}
//	}
//
// Given an empty string, it returns an empty Char and an empty rest. Invalid
// UTF-8 is decoded as [utf8.RuneError], one byte at a time.
func NextChar(str string, policy Policy, t Table) (c Char, rest string) {
	if len(str) == 0 {
		return emptyChar, ""
	}
	r, length := utf8.DecodeRuneInString(str)
	return TransliterateRune(r, policy, t), str[length:]
}

// Iterator lazily produces the runes of a string as seen by the comparison
// functions. It holds no heap memory; copying an Iterator copies its position.
//
// An Iterator either transliterates (see [TransliterateRune]) or passes the
// source runes through unchanged, optionally skipping non-alphanumeric ones.
type Iterator struct {
	src       string
	pos       int
	cur       Char
	table     Table
	policy    Policy
	translit  bool
	onlyAlnum bool
}

// NewIterator returns an iterator over the transliteration of s under the
// given policy. A nil table behaves like [Unidecode].
func NewIterator(s string, policy Policy, t Table) Iterator {
	if t == nil {
		t = Unidecode
	}
	return Iterator{
		src:      s,
		table:    t,
		policy:   policy,
		translit: true,
	}
}

// Lexical returns an iterator over the characters of s, converted to lowercase
// and transliterated to ASCII if they are alphanumeric.
func Lexical(s string) Iterator {
	return NewIterator(s, KeepNonAlnum, nil)
}

// LexicalOnlyAlnum is like [Lexical] but skips characters that are not
// alphanumeric.
func LexicalOnlyAlnum(s string) Iterator {
	return NewIterator(s, DropNonAlnum, nil)
}

// rawIterator returns an iterator over the unmodified runes of s.
func rawIterator(s string, onlyAlnum bool) Iterator {
	return Iterator{src: s, onlyAlnum: onlyAlnum}
}

// Next returns the next rune. The second return value is false once the
// string is exhausted.
func (it *Iterator) Next() (rune, bool) {
	for {
		if r, ok := it.cur.Next(); ok {
			return r, true
		}
		if it.pos >= len(it.src) {
			return 0, false
		}

		r, length := utf8.DecodeRuneInString(it.src[it.pos:])
		it.pos += length

		if !it.translit {
			if it.onlyAlnum && !isAlnum(r) {
				continue
			}
			return r, true
		}
		it.cur = TransliterateRune(r, it.policy, it.table)
	}
}

// Peek returns the rune that the next call to [Iterator.Next] would return
// without advancing the iterator.
func (it *Iterator) Peek() (rune, bool) {
	p := *it
	return p.Next()
}

// Reset rewinds the iterator to the start of its string.
func (it *Iterator) Reset() {
	it.pos = 0
	it.cur = emptyChar
}

// String drains a copy of the iterator and returns the runes it would still
// produce. Unlike [Iterator.Next], this allocates.
func (it Iterator) String() string {
	var b strings.Builder
	b.Grow(len(it.src) - it.pos)
	for r, ok := it.Next(); ok; r, ok = it.Next() {
		b.WriteRune(r)
	}
	return b.String()
}

// Transliterate returns the transliteration of s under the given policy using
// the [Unidecode] table. It is a convenience for display and debugging; the
// comparison functions never materialize transliterations.
func Transliterate(s string, policy Policy) string {
	it := NewIterator(s, policy, nil)
	return it.String()
}
