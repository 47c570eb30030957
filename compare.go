package lexsort

import "strings"

// Comparer is a comparison function configured along three independent axes.
// The zero value compares by code point, like [strings.Compare].
//
// Comparer values are immutable and safe for concurrent use.
type Comparer struct {
	// Lexical transliterates alphanumeric characters to lowercase ASCII before
	// comparing and sorts alphanumeric characters after all others.
	Lexical bool

	// Natural compares runs of ASCII digits by their numeric value, so "50"
	// sorts before "100".
	Natural bool

	// OnlyAlnum skips characters that are not alphanumeric, so "T-5" sorts
	// next to "T5".
	OnlyAlnum bool

	// Table is the transliteration table used by lexical comparisons. If nil,
	// [Unidecode] is used.
	Table Table
}

// iterator returns an iterator over s configured for c.
func (c Comparer) iterator(s string) Iterator {
	if !c.Lexical {
		return rawIterator(s, c.OnlyAlnum)
	}
	policy := KeepNonAlnum
	if c.OnlyAlnum {
		policy = DropNonAlnum
	}
	return NewIterator(s, policy, c.Table)
}

// Compare returns [Less], [Equal], or [Greater] depending on whether a sorts
// before, equal to, or after b.
//
// Both strings are consumed lazily, one rune at a time and in lockstep, until a
// decision is reached. When both sides yield an ASCII digit and c is natural,
// the two digit runs are compared by value before scanning resumes. If both
// sides are exhausted without a decision but the strings differ (for example
// "Foo" and "fóò"), they are ordered by code point. Compare therefore never
// reports distinct strings as Equal.
//
// Compare does not allocate unless the configured [Table] does.
func (c Comparer) Compare(a, b string) int {
	if a == b {
		return Equal
	}

	l, r := c.iterator(a), c.iterator(b)
	for {
		lc, leftOK := l.Next()
		rc, rightOK := r.Next()
		switch {
		case !leftOK && !rightOK:
			return strings.Compare(a, b)
		case !leftOK:
			return Less
		case !rightOK:
			return Greater
		}

		if c.Natural && isDigit(lc) && isDigit(rc) {
			if o := compareDigitRuns(&l, &r, lc, rc); o != Equal {
				return o
			}
			continue
		}

		if lc != rc {
			return tieBreak(lc, rc, c.Lexical)
		}
	}
}

// The eight preconfigured comparers behind the package-level functions.
var (
	codepointComparer               = Comparer{}
	onlyAlnumComparer               = Comparer{OnlyAlnum: true}
	lexicalComparer                 = Comparer{Lexical: true}
	lexicalOnlyAlnumComparer        = Comparer{Lexical: true, OnlyAlnum: true}
	naturalComparer                 = Comparer{Natural: true}
	naturalOnlyAlnumComparer        = Comparer{Natural: true, OnlyAlnum: true}
	naturalLexicalComparer          = Comparer{Natural: true, Lexical: true}
	naturalLexicalOnlyAlnumComparer = Comparer{Natural: true, Lexical: true, OnlyAlnum: true}
)

// Compare compares two strings by code point. It is case-sensitive and
// equivalent to [strings.Compare] for valid UTF-8.
func Compare(a, b string) int {
	return codepointComparer.Compare(a, b)
}

// CompareOnlyAlnum compares two strings by code point, skipping characters
// that are not alphanumeric. It is case-sensitive.
func CompareOnlyAlnum(a, b string) int {
	return onlyAlnumComparer.Compare(a, b)
}

// CompareLexical compares two strings lexicographically: non-ASCII characters
// are treated like their closest ASCII equivalents, case is ignored, and
// alphanumeric characters sort after all other characters.
func CompareLexical(a, b string) int {
	return lexicalComparer.Compare(a, b)
}

// CompareLexicalOnlyAlnum is like [CompareLexical] but skips characters that
// are not alphanumeric.
func CompareLexicalOnlyAlnum(a, b string) int {
	return lexicalOnlyAlnumComparer.Compare(a, b)
}

// CompareNatural compares two strings by code point, except that runs of ASCII
// digits are compared by numeric value. It is case-sensitive.
func CompareNatural(a, b string) int {
	return naturalComparer.Compare(a, b)
}

// CompareNaturalOnlyAlnum is like [CompareNatural] but skips characters that
// are not alphanumeric.
func CompareNaturalOnlyAlnum(a, b string) int {
	return naturalOnlyAlnumComparer.Compare(a, b)
}

// CompareNaturalLexical combines [CompareLexical] and [CompareNatural].
func CompareNaturalLexical(a, b string) int {
	return naturalLexicalComparer.Compare(a, b)
}

// CompareNaturalLexicalOnlyAlnum combines [CompareLexicalOnlyAlnum] and
// [CompareNaturalOnlyAlnum].
func CompareNaturalLexicalOnlyAlnum(a, b string) int {
	return naturalLexicalOnlyAlnumComparer.Compare(a, b)
}
