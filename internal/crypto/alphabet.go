package crypto

import "strings"

const (
	lowercaseChars = "abcdefghijklmnopqrstuvwxyz"
	uppercaseChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digitChars     = "0123456789"
	symbolChars    = "!@#$%^&*()-_=+[]{};:,.<>/?"

	// AmbiguousChars are glyphs easily confused in many fonts.
	AmbiguousChars = "Il1O0"
)

// CharacterClasses selects which character classes make up the alphabet.
type CharacterClasses struct {
	Lowercase        bool
	Uppercase        bool
	Digits           bool
	Symbols          bool
	ExcludeAmbiguous bool
}

// Any reports whether at least one character class is selected.
func (c CharacterClasses) Any() bool {
	return c.Lowercase || c.Uppercase || c.Digits || c.Symbols
}

// BuildAlphabet concatenates the selected classes in the order lowercase,
// uppercase, digits, symbols and then drops every ambiguous character if
// requested. An empty selection yields an empty alphabet.
func BuildAlphabet(c CharacterClasses) string {
	alphabet := joinClasses(c)
	if c.ExcludeAmbiguous {
		alphabet = stripAmbiguous(alphabet)
	}
	return alphabet
}

// RemovedAmbiguous returns how many characters the ambiguous filter removes
// from the selection. It is zero when ExcludeAmbiguous is off.
func RemovedAmbiguous(c CharacterClasses) int {
	if !c.ExcludeAmbiguous {
		return 0
	}
	full := joinClasses(c)
	return len(full) - len(stripAmbiguous(full))
}

func joinClasses(c CharacterClasses) string {
	var sb strings.Builder
	if c.Lowercase {
		sb.WriteString(lowercaseChars)
	}
	if c.Uppercase {
		sb.WriteString(uppercaseChars)
	}
	if c.Digits {
		sb.WriteString(digitChars)
	}
	if c.Symbols {
		sb.WriteString(symbolChars)
	}
	return sb.String()
}

func stripAmbiguous(s string) string {
	return strings.Map(func(r rune) rune {
		if strings.ContainsRune(AmbiguousChars, r) {
			return -1
		}
		return r
	}, s)
}
