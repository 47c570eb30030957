package lexsort

// tieBreak orders two differing runes outside of a digit run. On lexical axes,
// alphanumeric characters sort after all other characters (punctuation,
// whitespace, symbols, emojis, ...). Everything else is ordered by code point.
func tieBreak(l, r rune, lexical bool) int {
	if lexical {
		leftAlnum, rightAlnum := isAlnum(l), isAlnum(r)
		if leftAlnum != rightAlnum {
			if leftAlnum {
				return Greater
			}
			return Less
		}
	}
	return compareRunes(l, r)
}

// peekDigit returns the next rune of it if it is an ASCII digit, without
// advancing the iterator.
func peekDigit(it *Iterator) (rune, bool) {
	r, ok := it.Peek()
	if !ok || !isDigit(r) {
		return 0, false
	}
	return r, true
}

// skipLeadingZeros consumes the zeros at the start of a digit run whose first
// digit d was already consumed. It returns the first significant digit, which
// is the last zero if the run consists of zeros only.
func skipLeadingZeros(it *Iterator, d rune) rune {
	for d == '0' {
		next, ok := peekDigit(it)
		if !ok {
			break
		}
		it.Next()
		d = next
	}
	return d
}

// compareDigitRuns compares two ASCII digit runs by numeric value. The first
// digits l0 and r0 were already consumed from l and r. On return, both
// iterators are positioned after their runs unless a decision was reached.
//
// The runs are never converted to integers. After leading zeros are skipped,
// the run with more significant digits is greater. Runs of equal length are
// ordered by their first differing digit, which is remembered while both runs
// are consumed in lockstep. Runs of any length are therefore handled without
// overflow.
//
// Runs with the same value but different leading zeros compare Equal here; the
// raw fallback orders such inputs if nothing else differs.
func compareDigitRuns(l, r *Iterator, l0, r0 rune) int {
	l0 = skipLeadingZeros(l, l0)
	r0 = skipLeadingZeros(r, r0)

	bias := compareRunes(l0, r0)
	for {
		ld, leftOK := peekDigit(l)
		rd, rightOK := peekDigit(r)
		switch {
		case !leftOK && !rightOK:
			return bias
		case !leftOK:
			return Less
		case !rightOK:
			return Greater
		}
		l.Next()
		r.Next()
		if bias == Equal {
			bias = compareRunes(ld, rd)
		}
	}
}
