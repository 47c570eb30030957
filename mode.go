package lexsort

import (
	"errors"
	"fmt"
	"strings"
)

// Mode selects one of the eight comparison functions as a set of flags.
type Mode uint8

const (
	// ModeLexical enables transliteration and case folding.
	ModeLexical Mode = 1 << iota
	// ModeNatural enables numeric comparison of digit runs.
	ModeNatural
	// ModeOnlyAlnum skips characters that are not alphanumeric.
	ModeOnlyAlnum
)

// modeAll is the set of valid flags.
const modeAll = ModeLexical | ModeNatural | ModeOnlyAlnum

// ErrUnknownMode is returned (wrapped in a *ModeError) when a mode name is not
// recognized.
var ErrUnknownMode = errors.New("unknown comparison mode")

// ModeError reports an unrecognized mode name.
type ModeError struct {
	Name string // The name that failed to parse.
}

func (e *ModeError) Error() string {
	return fmt.Sprintf("%s: %q (valid: %s)", ErrUnknownMode, e.Name, strings.Join(ModeNames(), ", "))
}

func (e *ModeError) Unwrap() error {
	return ErrUnknownMode
}

// Modes returns all eight modes in the order of their flag values.
func Modes() []Mode {
	modes := make([]Mode, 0, modeAll+1)
	for m := Mode(0); m <= modeAll; m++ {
		modes = append(modes, m)
	}
	return modes
}

// ModeNames returns the names of all modes, see [Mode.String].
func ModeNames() []string {
	modes := Modes()
	names := make([]string, len(modes))
	for i, m := range modes {
		names[i] = m.String()
	}
	return names
}

// String returns the name of the mode, for example "natural-lexical" or
// "codepoint" for the zero mode.
func (m Mode) String() string {
	if m&^modeAll != 0 {
		return fmt.Sprintf("Mode(%d)", uint8(m))
	}
	var parts []string
	if m&ModeNatural != 0 {
		parts = append(parts, "natural")
	}
	if m&ModeLexical != 0 {
		parts = append(parts, "lexical")
	}
	if m&ModeOnlyAlnum != 0 {
		parts = append(parts, "only-alnum")
	}
	if len(parts) == 0 {
		return "codepoint"
	}
	return strings.Join(parts, "-")
}

// CollationName returns the name under which the mode is registered as an SQL
// collation, for example "LEXSORT_NATURAL_LEXICAL".
func (m Mode) CollationName() string {
	return "LEXSORT_" + strings.ToUpper(strings.ReplaceAll(m.String(), "-", "_"))
}

// ParseMode returns the mode with the given name. Names are matched
// case-insensitively; underscores may be used instead of hyphens.
func ParseMode(name string) (Mode, error) {
	key := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "_", "-")
	for _, m := range Modes() {
		if m.String() == key {
			return m, nil
		}
	}
	return 0, &ModeError{Name: name}
}

// Comparer returns the [Comparer] for the mode, using the [Unidecode] table.
func (m Mode) Comparer() Comparer {
	return Comparer{
		Lexical:   m&ModeLexical != 0,
		Natural:   m&ModeNatural != 0,
		OnlyAlnum: m&ModeOnlyAlnum != 0,
	}
}

// Func returns the package-level comparison function for the mode.
func (m Mode) Func() func(a, b string) int {
	switch m & modeAll {
	case ModeOnlyAlnum:
		return CompareOnlyAlnum
	case ModeLexical:
		return CompareLexical
	case ModeLexical | ModeOnlyAlnum:
		return CompareLexicalOnlyAlnum
	case ModeNatural:
		return CompareNatural
	case ModeNatural | ModeOnlyAlnum:
		return CompareNaturalOnlyAlnum
	case ModeNatural | ModeLexical:
		return CompareNaturalLexical
	case ModeNatural | ModeLexical | ModeOnlyAlnum:
		return CompareNaturalLexicalOnlyAlnum
	default:
		return Compare
	}
}

// MarshalText implements [encoding.TextMarshaler].
func (m Mode) MarshalText() ([]byte, error) {
	if m&^modeAll != 0 {
		return nil, &ModeError{Name: m.String()}
	}
	return []byte(m.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler] using [ParseMode], so a
// Mode can be used directly as a command line flag or configuration value.
func (m *Mode) UnmarshalText(text []byte) error {
	parsed, err := ParseMode(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
