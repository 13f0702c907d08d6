package leaf

import (
	"fixture-generator/options"
	"github.com/brianvoe/gofakeit/v7"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"strings"
)

// Text generates bounded random strings. Non-empty current values are kept.
type Text struct {
	faker *gofakeit.Faker
}

// Populate implements Strategy.
func (s Text) Populate(cfg options.Config, _ string, current string) string {
	if current != "" {
		return current
	}

	return RandomString(s.faker, cfg)
}

// RandomString draws a string with a length in [StringMinLength, StringMaxLength]
// over the configured character set, spacing and casing.
func RandomString(faker *gofakeit.Faker, cfg options.Config) string {
	lo := max(cfg.StringMinLength, 0)
	hi := max(cfg.StringMaxLength, lo)

	length := faker.Number(lo, hi)
	if length == 0 {
		return ""
	}

	alphabet := []rune(cfg.CharacterSet.Alphabet())

	var sb strings.Builder
	sb.Grow(length)

	for i := 0; i < length; i++ {
		// a space never starts or ends the string, nor follows another one
		canSpace := cfg.AllowSpaces && i > 0 && i < length-1 && !strings.HasSuffix(sb.String(), " ")
		if canSpace && faker.Number(0, 5) == 0 {
			sb.WriteByte(' ')
			continue
		}

		sb.WriteRune(alphabet[faker.Number(0, len(alphabet)-1)])
	}

	return applyCasing(sb.String(), cfg.Casing)
}

func applyCasing(s string, casing options.CasingEnum) string {
	switch casing {
	default:
		return s
	case options.CasingLower:
		return cases.Lower(language.Und).String(s)
	case options.CasingUpper:
		return cases.Upper(language.Und).String(s)
	case options.CasingTitle:
		return cases.Title(language.Und).String(s)
	}
}
