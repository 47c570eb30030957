package lexsort

import (
	"strings"
	"testing"
	"unicode/utf8"
)

// testTable is a small, fixed transliteration table that keeps the iterator
// tests independent of the default table's contents.
var testTable = TableFunc(func(r rune) string {
	switch r {
	case 'æ':
		return "ae"
	case 'Æ':
		return "AE"
	case 'ß':
		return "ss"
	case '½':
		return "1/2"
	case 'Ω':
		return "O"
	case 'é', 'è':
		return "e"
	case '\u0915':
		return "k"
	case '\u093f':
		return "i"
	case '\u0924':
		return "t"
	case '\u093e':
		return "a"
	case '\u092c':
		return "b"
	}
	return ""
})

func collect(it Iterator) string {
	var out []rune
	for r, ok := it.Next(); ok; r, ok = it.Next() {
		out = append(out, r)
	}
	return string(out)
}

// TestTransliterateRulesFixedTable tests each transliteration rule against a
// fixed table.
func TestTransliterateRulesFixedTable(t *testing.T) {
	tests := []struct {
		name  string
		input string
		keep  string
		drop  string
	}{
		{"ascii letters are lowercased", "HeLLo", "hello", "hello"},
		{"ascii punctuation", "a-b c!", "a-b c!", "abc"},
		{"ascii digits", "T-21", "t-21", "t21"},
		{"mapped letters", "Æß", "aess", "aess"},
		{"mapped letter is lowercased", "Ω", "o", "o"},
		{"mapped number keeps table punctuation", "3½", "31/2", "31/2"},
		{"unmapped alphanumeric kept under both policies", "北a", "北a", "北a"},
		{"unmapped symbol", "a→b", "a→b", "ab"},
		{"emoji", "🐉🦄", "🐉🦄", ""},
		{"combining mark stripped", "a\u0300e\u0301", "ae", "ae"},
		{"combining marks only", "\u0300\u0301\u036f", "", ""},
		{"combining mark supplement", "o\u1dc0", "o", "o"},
		{"combining half mark", "x\ufe20", "x", "x"},
		{"dependent vowel signs are alphanumeric", "\u0915\u093f\u0924\u093e\u092c", "kitab", "kitab"},
		{"empty", "", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := collect(NewIterator(tt.input, KeepNonAlnum, testTable)); got != tt.keep {
				t.Errorf("keep: got %q, want %q", got, tt.keep)
			}
			if got := collect(NewIterator(tt.input, DropNonAlnum, testTable)); got != tt.drop {
				t.Errorf("drop: got %q, want %q", got, tt.drop)
			}
		})
	}
}

// TestTransliterateDefaultTable tests the transliteration with the default
// table.
func TestTransliterateDefaultTable(t *testing.T) {
	tests := []struct {
		input string
		keep  string
		drop  string
	}{
		{"Hello, world!", "hello, world!", "helloworld"},
		{"Ω A æ b ö ß é", "o a ae b o ss e", "oaaebosse"},
		{"3½/⅝ £ → € ®™", "31/2/5/8 £ → € ®™", "31/25/8"},
		{"»@« 15% ¡¹!", "»@« 15% ¡1!", "151"},
		{"🐉🦄☣", "🐉🦄☣", ""},
		{"北京", "beijing", "beijing"},
		{"ΣΣΣ", "sss", "sss"},
		{"\u00e0", "a", "a"},
		{"a\u0300", "a", "a"},
		{"Ŧ-5", "t-5", "t5"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := Transliterate(tt.input, KeepNonAlnum); got != tt.keep {
				t.Errorf("keep: got %q, want %q", got, tt.keep)
			}
			if got := Transliterate(tt.input, DropNonAlnum); got != tt.drop {
				t.Errorf("drop: got %q, want %q", got, tt.drop)
			}
		})
	}
}

// TestTransliterateVowelSigns checks that dependent vowel signs are looked up
// in the default table instead of passing through or being dropped.
func TestTransliterateVowelSigns(t *testing.T) {
	for _, input := range []string{"\u0915\u093f\u0924\u093e\u092c", "\u0ba4\u0bbe", "\u0e01\u0e31", "\u0915\u0903"} {
		keep := Transliterate(input, KeepNonAlnum)
		drop := Transliterate(input, DropNonAlnum)
		if keep != drop {
			t.Errorf("%q: keep %q differs from drop %q", input, keep, drop)
		}
		for _, r := range keep {
			if r >= utf8.RuneSelf {
				t.Errorf("%q: transliteration %q is not ASCII", input, keep)
				break
			}
		}
	}
	if got := Transliterate("\u0915\u093f", KeepNonAlnum); !strings.Contains(got, "i") {
		t.Errorf("vowel sign I was not transliterated: %q", got)
	}
}

func TestCharSequence(t *testing.T) {
	c := TransliterateRune('½', KeepNonAlnum, testTable)
	if c.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", c.Len())
	}
	if c.String() != "1/2" {
		t.Errorf("String() = %q, want %q", c.String(), "1/2")
	}
	var got []rune
	for r, ok := c.Next(); ok; r, ok = c.Next() {
		got = append(got, r)
	}
	if string(got) != "1/2" {
		t.Errorf("Next() produced %q, want %q", string(got), "1/2")
	}
	if c.Len() != 0 {
		t.Errorf("Len() after draining = %d, want 0", c.Len())
	}

	single := TransliterateRune('Q', KeepNonAlnum, testTable)
	if single.Len() != 1 || single.String() != "q" {
		t.Errorf("single char = (%d, %q), want (1, %q)", single.Len(), single.String(), "q")
	}

	var zero Char
	if _, ok := zero.Next(); ok {
		t.Error("zero Char should be empty")
	}
}

func TestNextChar(t *testing.T) {
	str := "Aé!"
	var got []string
	for len(str) > 0 {
		var c Char
		c, str = NextChar(str, DropNonAlnum, testTable)
		got = append(got, c.String())
	}
	want := []string{"a", "e", ""}
	if len(got) != len(want) {
		t.Fatalf("got %d chars, want %d: %q", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("char %d: got %q, want %q", i, got[i], want[i])
		}
	}

	c, rest := NextChar("", KeepNonAlnum, nil)
	if c.Len() != 0 || rest != "" {
		t.Errorf("NextChar(\"\") = (%d runes, %q), want empty", c.Len(), rest)
	}
}

func TestIteratorPeekAndReset(t *testing.T) {
	it := NewIterator("æb", KeepNonAlnum, testTable)

	if r, ok := it.Peek(); !ok || r != 'a' {
		t.Fatalf("Peek() = %q, %v, want 'a', true", r, ok)
	}
	if r, _ := it.Next(); r != 'a' {
		t.Fatalf("Next() = %q, want 'a'", r)
	}
	if r, _ := it.Peek(); r != 'e' {
		t.Fatalf("Peek() inside a multi-rune char = %q, want 'e'", r)
	}
	if got := it.String(); got != "eb" {
		t.Errorf("String() = %q, want %q", got, "eb")
	}
	if got := collect(it); got != "eb" {
		t.Errorf("String() must not advance the iterator: rest is %q", got)
	}

	it.Next()
	it.Next()
	if _, ok := it.Next(); ok {
		t.Fatal("iterator should be exhausted")
	}
	if _, ok := it.Peek(); ok {
		t.Fatal("Peek() on an exhausted iterator should fail")
	}

	it.Reset()
	if got := collect(it); got != "aeb" {
		t.Errorf("after Reset: got %q, want %q", got, "aeb")
	}
}

func TestRawIterator(t *testing.T) {
	if got := collect(rawIterator("Ab-É", false)); got != "Ab-É" {
		t.Errorf("raw: got %q", got)
	}
	if got := collect(rawIterator("Ab-É 7!", true)); got != "AbÉ7" {
		t.Errorf("raw only-alnum: got %q", got)
	}
}

func TestUnidecodeLookup(t *testing.T) {
	tests := []struct {
		r    rune
		want string
	}{
		{'a', ""},
		{'æ', "ae"},
		{'ß', "ss"},
		{'½', "1/2"},
		{'北', "Bei"},
		{0x10ffff, ""},
	}

	for _, tt := range tests {
		if got := Unidecode.Lookup(tt.r); got != tt.want {
			t.Errorf("Lookup(%q) = %q, want %q", tt.r, got, tt.want)
		}
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		r    rune
		want int
	}{
		{'0', clDigit},
		{'9', clDigit},
		{'a', clAlnum},
		{'Z', clAlnum},
		{'-', clOther},
		{' ', clOther},
		{'é', clAlnum},
		{'½', clAlnum},
		{'٣', clAlnum}, // ARABIC-INDIC DIGIT THREE is not an ASCII digit
		{'\u093f', clAlnum}, // DEVANAGARI VOWEL SIGN I is Other_Alphabetic
		{'\u0bbe', clAlnum},
		{'\u0e31', clAlnum},
		{'\u0903', clAlnum},
		{'\u0345', clAlnum}, // Other_Alphabetic inside the combining marks block
		{'\u0300', clMark},
		{'\u036f', clMark},
		{'\u0370', clAlnum},
		{'\u20d0', clMark},
		{'→', clOther},
		{'🐉', clOther},
	}

	for _, tt := range tests {
		if got := classify(tt.r); got != tt.want {
			t.Errorf("classify(%q) = %d, want %d", tt.r, got, tt.want)
		}
	}
}
