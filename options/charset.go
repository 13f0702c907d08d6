package options

import (
	"fmt"
	"strings"
)

// CharacterSetEnum selects the alphabet used for generated strings.
type CharacterSetEnum int

const (
	CharacterSetAlpha        CharacterSetEnum = iota // a-z, A-Z
	CharacterSetNumeric                              // 0-9
	CharacterSetAlphaNumeric                         // a-z, A-Z, 0-9
	CharacterSetAny                                  // alphanumeric plus punctuation

	characterSetTotal = int(iota)
)

var characterSetNames = [...]string{"alpha", "numeric", "alphanumeric", "any"}

// String returns the configuration name of the character set.
func (c CharacterSetEnum) String() string {
	if c < 0 || int(c) >= characterSetTotal {
		return fmt.Sprintf("CharacterSetEnum(%d)", int(c))
	}

	return characterSetNames[c]
}

// IsValid reports whether c is one of the declared character sets.
func (c CharacterSetEnum) IsValid() bool {
	return c >= 0 && int(c) < characterSetTotal
}

// Alphabet returns the runes strings are drawn from.
func (c CharacterSetEnum) Alphabet() string {
	const (
		letters = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
		digits  = "0123456789"
		symbols = "!#$%&()*+,-./:;<=>?@[]^_{}~"
	)

	switch c {
	default:
		return letters
	case CharacterSetNumeric:
		return digits
	case CharacterSetAlphaNumeric:
		return letters + digits
	case CharacterSetAny:
		return letters + digits + symbols
	}
}

// MarshalText implements encoding.TextMarshaler.
func (c CharacterSetEnum) MarshalText() ([]byte, error) {
	if !c.IsValid() {
		return nil, fmt.Errorf("%w: character set %d", ErrInvalidConfig, int(c))
	}

	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *CharacterSetEnum) UnmarshalText(text []byte) error {
	name := strings.ToLower(strings.TrimSpace(string(text)))
	for i, known := range characterSetNames {
		if known == name {
			*c = CharacterSetEnum(i)
			return nil
		}
	}

	return fmt.Errorf("%w: unknown character set %q", ErrInvalidConfig, name)
}

// CasingEnum selects the letter case of generated strings.
type CasingEnum int

const (
	CasingAny   CasingEnum = iota // mixed case, as drawn
	CasingLower                   // all lower case
	CasingUpper                   // all upper case
	CasingTitle                   // first letter of every word upper case

	casingTotal = int(iota)
)

var casingNames = [...]string{"any", "lower", "upper", "title"}

// String returns the configuration name of the casing.
func (c CasingEnum) String() string {
	if c < 0 || int(c) >= casingTotal {
		return fmt.Sprintf("CasingEnum(%d)", int(c))
	}

	return casingNames[c]
}

// IsValid reports whether c is one of the declared casings.
func (c CasingEnum) IsValid() bool {
	return c >= 0 && int(c) < casingTotal
}

// MarshalText implements encoding.TextMarshaler.
func (c CasingEnum) MarshalText() ([]byte, error) {
	if !c.IsValid() {
		return nil, fmt.Errorf("%w: casing %d", ErrInvalidConfig, int(c))
	}

	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *CasingEnum) UnmarshalText(text []byte) error {
	name := strings.ToLower(strings.TrimSpace(string(text)))
	for i, known := range casingNames {
		if known == name {
			*c = CasingEnum(i)
			return nil
		}
	}

	return fmt.Errorf("%w: unknown casing %q", ErrInvalidConfig, name)
}
