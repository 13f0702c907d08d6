package naming

import (
	"github.com/go-openapi/inflect"
	"slices"
	"strings"
	"unicode"
)

// Tokenize splits an identifier into lower case tokens.
// Examples:
//   - "OrderID" -> ["order", "id"]
//   - "customer_email" -> ["customer", "email"]
//   - "HTTPHomepage" -> ["http", "homepage"]
func Tokenize(s string) []string {
	tokens := tokenizeCamelCase(s)
	for i, t := range tokens {
		tokens[i] = strings.ToLower(t)
	}

	return tokens
}

// Normalize lower-cases an identifier and strips separators,
// "Postal_Code" and "postalCode" both become "postalcode".
func Normalize(s string) string {
	return strings.Join(Tokenize(s), "")
}

// HasAny reports whether any token of name, or the normalized name itself,
// equals one of the candidates.
func HasAny(name string, candidates ...string) bool {
	tokens := Tokenize(name)
	joined := strings.Join(tokens, "")

	for _, c := range candidates {
		if joined == c || slices.Contains(tokens, c) {
			return true
		}
	}

	return false
}

// Element names a single element of a collection member:
// "Emails" -> "Email", "Categories" -> "Category".
func Element(name string) string {
	if name == "" {
		return name
	}

	singular := inflect.Singularize(name)
	if singular == "" {
		return name
	}

	return singular
}

// tokenizeCamelCase splits a CamelCase or camelCase string into tokens.
func tokenizeCamelCase(s string) []string {
	if s == "" {
		return nil
	}

	var tokens []string

	var current strings.Builder

	runes := []rune(s)
	for i := range runes {
		r := runes[i]

		if isSeparator(r) {
			if current.Len() > 0 {
				tokens = append(tokens, current.String())
				current.Reset()
			}

			continue
		}

		if i > 0 && shouldStartNewToken(runes, i) && current.Len() > 0 {
			tokens = append(tokens, current.String())
			current.Reset()
		}

		current.WriteRune(r)
	}

	if current.Len() > 0 {
		tokens = append(tokens, current.String())
	}

	return tokens
}

func isSeparator(r rune) bool {
	return r == '_' || r == '-' || r == ' ' || r == '.'
}

// shouldStartNewToken splits on lower->upper transitions ("orderID") and
// at the end of an acronym ("XMLParser" -> "XML", "Parser").
func shouldStartNewToken(runes []rune, i int) bool {
	r := runes[i]
	prevRune := runes[i-1]
	isUpper := unicode.IsUpper(r)
	isPrevUpper := unicode.IsUpper(prevRune)

	if isUpper && !isPrevUpper && !isSeparator(prevRune) {
		return true
	}

	hasNextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])

	return isUpper && isPrevUpper && hasNextLower
}
