package lexsort

import (
	"errors"
	"testing"
)

func TestParseMode(t *testing.T) {
	tests := []struct {
		name string
		want Mode
	}{
		{"codepoint", 0},
		{"only-alnum", ModeOnlyAlnum},
		{"lexical", ModeLexical},
		{"lexical-only-alnum", ModeLexical | ModeOnlyAlnum},
		{"natural", ModeNatural},
		{"natural-only-alnum", ModeNatural | ModeOnlyAlnum},
		{"natural-lexical", ModeNatural | ModeLexical},
		{"natural-lexical-only-alnum", ModeNatural | ModeLexical | ModeOnlyAlnum},
		{"NATURAL_LEXICAL", ModeNatural | ModeLexical},
		{" Lexical ", ModeLexical},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseMode(tt.name)
			if err != nil {
				t.Fatalf("ParseMode(%q) error: %v", tt.name, err)
			}
			if got != tt.want {
				t.Errorf("ParseMode(%q) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}

func TestParseModeUnknown(t *testing.T) {
	for _, name := range []string{"", "lexical-natural", "unicode", "natural-"} {
		_, err := ParseMode(name)
		if !errors.Is(err, ErrUnknownMode) {
			t.Errorf("ParseMode(%q) error = %v, want ErrUnknownMode", name, err)
		}
		var modeErr *ModeError
		if !errors.As(err, &modeErr) || modeErr.Name != name {
			t.Errorf("ParseMode(%q) error = %#v, want *ModeError", name, err)
		}
	}
}

func TestModeNames(t *testing.T) {
	modes := Modes()
	if len(modes) != 8 {
		t.Fatalf("Modes() returned %d modes, want 8", len(modes))
	}
	seen := make(map[string]bool)
	for _, m := range modes {
		name := m.String()
		if seen[name] {
			t.Errorf("duplicate mode name %q", name)
		}
		seen[name] = true

		parsed, err := ParseMode(name)
		if err != nil || parsed != m {
			t.Errorf("ParseMode(%q) = %v, %v, want %v", name, parsed, err, m)
		}
	}

	if got := Mode(8).String(); got != "Mode(8)" {
		t.Errorf("Mode(8).String() = %q", got)
	}
}

func TestCollationName(t *testing.T) {
	tests := []struct {
		mode Mode
		want string
	}{
		{0, "LEXSORT_CODEPOINT"},
		{ModeLexical, "LEXSORT_LEXICAL"},
		{ModeNatural | ModeLexical, "LEXSORT_NATURAL_LEXICAL"},
		{ModeNatural | ModeLexical | ModeOnlyAlnum, "LEXSORT_NATURAL_LEXICAL_ONLY_ALNUM"},
	}

	for _, tt := range tests {
		if got := tt.mode.CollationName(); got != tt.want {
			t.Errorf("%v.CollationName() = %q, want %q", tt.mode, got, tt.want)
		}
	}
}

// TestModeFuncMatchesComparer checks that the package-level function of each
// mode agrees with the Comparer built from the same flags.
func TestModeFuncMatchesComparer(t *testing.T) {
	for _, m := range Modes() {
		t.Run(m.String(), func(t *testing.T) {
			fn, c := m.Func(), m.Comparer()
			for _, a := range corpus {
				for _, b := range corpus {
					if got, want := fn(a, b), c.Compare(a, b); got != want {
						t.Errorf("(%q, %q): Func = %d, Comparer = %d", a, b, got, want)
					}
				}
			}
		})
	}
}

func TestModeText(t *testing.T) {
	for _, m := range Modes() {
		text, err := m.MarshalText()
		if err != nil {
			t.Fatalf("%v.MarshalText() error: %v", m, err)
		}
		var got Mode
		if err := got.UnmarshalText(text); err != nil || got != m {
			t.Errorf("UnmarshalText(%q) = %v, %v, want %v", text, got, err, m)
		}
	}

	if _, err := Mode(42).MarshalText(); !errors.Is(err, ErrUnknownMode) {
		t.Errorf("MarshalText of an invalid mode: error = %v", err)
	}
	m := ModeLexical
	if err := m.UnmarshalText([]byte("bogus")); !errors.Is(err, ErrUnknownMode) || m != ModeLexical {
		t.Errorf("UnmarshalText(bogus) = %v, %v", m, err)
	}
}
