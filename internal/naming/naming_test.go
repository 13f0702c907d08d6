package naming

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		input    string
		expected []string
	}{
		{"", nil},
		{"Name", []string{"name"}},
		{"OrderID", []string{"order", "id"}},
		{"customerName", []string{"customer", "name"}},
		{"XMLParser", []string{"xml", "parser"}},
		{"getHTTPResponse", []string{"get", "http", "response"}},
		{"postal_code", []string{"postal", "code"}},
		{"home-page", []string{"home", "page"}},
		{"Customer.Email", []string{"customer", "email"}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, Tokenize(tt.input))
		})
	}
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "postalcode", Normalize("PostalCode"))
	assert.Equal(t, "postalcode", Normalize("postal_code"))
	assert.Equal(t, "emailaddress", Normalize("EmailAddress"))
}

func TestHasAny(t *testing.T) {
	assert.True(t, HasAny("ContactEmail", "email"))
	assert.True(t, HasAny("PostCode", "postcode", "zip"))
	assert.True(t, HasAny("zip", "postcode", "zip"))
	assert.False(t, HasAny("Emailed", "email"))
	assert.False(t, HasAny("", "email"))
}

func TestElement(t *testing.T) {
	assert.Equal(t, "Email", Element("Emails"))
	assert.Equal(t, "Category", Element("Categories"))
	assert.Equal(t, "Item", Element("Item"))
	assert.Equal(t, "", Element(""))
}
