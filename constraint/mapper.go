// Package constraint maps declared member constraints and naming conventions
// onto concrete text values and string bounds.
package constraint

import (
	"fixture-generator/descriptor"
	"fixture-generator/internal/naming"
	"fixture-generator/options"
	"fixture-generator/primitive"
	"github.com/brianvoe/gofakeit/v7"
	"reflect"
	"unicode/utf8"
)

// convention resolves text members whose name matches one of the tokens.
type convention struct {
	tokens []string
	value  func(*gofakeit.Faker) string
}

// conventions are tried in order, the first match wins.
var conventions = []convention{
	{[]string{"email"}, (*gofakeit.Faker).Email},
	{[]string{"url", "website", "homepage"}, (*gofakeit.Faker).URL},
	{[]string{"postcode", "postalcode", "postal", "zip", "zipcode"}, (*gofakeit.Faker).Zip},
	{[]string{"phone", "telephone", "mobile"}, (*gofakeit.Faker).Phone},
	{[]string{"firstname"}, (*gofakeit.Faker).FirstName},
	{[]string{"lastname", "surname"}, (*gofakeit.Faker).LastName},
	{[]string{"city"}, (*gofakeit.Faker).City},
	{[]string{"country"}, (*gofakeit.Faker).Country},
	{[]string{"company"}, (*gofakeit.Faker).Company},
}

// Mapper turns format hints into values.
type Mapper struct {
	faker *gofakeit.Faker
}

// NewMapper creates a Mapper drawing from faker.
func NewMapper(faker *gofakeit.Faker) *Mapper {
	return &Mapper{faker: faker}
}

// TryResolve returns a value for member when its constraints or its name
// determine one. Only text targets are resolved, the value is a string for
// string targets and a *string for nullable ones. A value picked by naming
// convention must fit the declared length bounds of member, otherwise nothing
// is resolved.
func (m *Mapper) TryResolve(target reflect.Type, member descriptor.Member, cfg options.Config) (any, bool) {
	kind := primitive.Classify(target)
	if kind != primitive.KindText && kind != primitive.KindNullableText {
		return nil, false
	}

	s, ok := m.resolve(member, cfg)
	if !ok {
		return nil, false
	}

	if kind == primitive.KindNullableText {
		return &s, true
	}

	return s, true
}

func (m *Mapper) resolve(member descriptor.Member, cfg options.Config) (string, bool) {
	switch member.Constraints.Format {
	case descriptor.FormatEmail:
		return m.faker.Email(), true
	case descriptor.FormatURL:
		return m.faker.URL(), true
	case descriptor.FormatPostalCode:
		return m.faker.Zip(), true
	case descriptor.FormatPhone:
		return m.faker.Phone(), true
	}

	for _, c := range conventions {
		if naming.HasAny(member.Name, c.tokens...) {
			s := c.value(m.faker)
			return s, m.fits(member, cfg, s)
		}
	}

	return "", false
}

// fits reports whether s honours the length constraints declared on member.
func (m *Mapper) fits(member descriptor.Member, cfg options.Config, s string) bool {
	if !member.Constraints.HasLength() {
		return true
	}

	bounds := m.Narrow(member, cfg)
	n := utf8.RuneCountInString(s)

	return n >= bounds.StringMinLength && n <= bounds.StringMaxLength
}

// Narrow applies the member's length constraints to the string bounds of cfg.
// A single bound that contradicts the configured other bound drags it along.
// Required members are never empty.
func (m *Mapper) Narrow(member descriptor.Member, cfg options.Config) options.Config {
	c := member.Constraints
	if c.IsZero() {
		return cfg
	}

	if c.Required && cfg.StringMinLength == 0 {
		cfg.StringMinLength = 1
		cfg.StringMaxLength = max(cfg.StringMaxLength, 1)
	}

	if !c.HasLength() {
		return cfg
	}

	if c.MinLength > 0 {
		cfg.StringMinLength = c.MinLength
		cfg.StringMaxLength = max(cfg.StringMaxLength, c.MinLength)
	}

	if c.MaxLength > 0 {
		cfg.StringMaxLength = c.MaxLength
		cfg.StringMinLength = min(cfg.StringMinLength, c.MaxLength)
	}

	return cfg
}
