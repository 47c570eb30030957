package lexsort

// These constants are the results of every comparison function in this
// package. They follow the convention of [strings.Compare] and [cmp.Compare],
// so the comparison functions can be passed directly to [slices.SortFunc].
const (
	Less    = -1 // The left string sorts before the right string.
	Equal   = 0  // The strings are identical.
	Greater = 1  // The left string sorts after the right string.
)

// compareRunes orders two runes by code point.
func compareRunes(l, r rune) int {
	switch {
	case l < r:
		return Less
	case l > r:
		return Greater
	default:
		return Equal
	}
}
