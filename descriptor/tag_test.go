package descriptor

import (
	"fixture-generator/primitive"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"reflect"
	"testing"
)

func TestParseTag(t *testing.T) {
	tests := []struct {
		tag      reflect.StructTag
		expected Constraints
	}{
		{``, Constraints{}},
		{`json:"email"`, Constraints{}},
		{`fixture:"-"`, Constraints{Skip: true}},
		{`fixture:"email"`, Constraints{Format: FormatEmail}},
		{`fixture:"URL,required"`, Constraints{Format: FormatURL, Required: true}},
		{`fixture:"zip"`, Constraints{Format: FormatPostalCode}},
		{`fixture:"phone,max:14"`, Constraints{Format: FormatPhone, MaxLength: 14}},
		{`fixture:",min:3,max:8"`, Constraints{MinLength: 3, MaxLength: 8}},
		{`fixture:"min:4"`, Constraints{MinLength: 4}},
		{`fixture:"format:postalcode"`, Constraints{Format: FormatPostalCode}},
		{`fixture:",min:abc,max:-2"`, Constraints{}},
		{`fixture:"unknown"`, Constraints{}},
		{`fixture:"phone_number,required"`, Constraints{Format: FormatPhone, Required: true}},
	}

	for _, tt := range tests {
		t.Run(string(tt.tag), func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseTag(tt.tag))
		})
	}
}

type account struct {
	ID     int
	Email  string `fixture:"email"`
	secret string
	Notes  string `fixture:"-"`
	Tags   []string
}

func TestMembers(t *testing.T) {
	members := Members(reflect.TypeFor[*account]())
	require.Len(t, members, 4)

	assert.Equal(t, "ID", members[0].Name)
	assert.Equal(t, 0, members[0].Index)
	assert.True(t, members[0].IsField())

	assert.Equal(t, "Email", members[1].Name)
	assert.Equal(t, FormatEmail, members[1].Constraints.Format)

	assert.Equal(t, "Notes", members[2].Name)
	assert.Equal(t, 3, members[2].Index)
	assert.True(t, members[2].Constraints.Skip)

	elem := members[2].Element("Note", reflect.TypeFor[string]())
	assert.False(t, elem.Constraints.Skip)
	assert.False(t, elem.IsField())

	assert.Nil(t, Members(reflect.TypeFor[int]()))
	assert.Nil(t, Members(nil))
}

func TestDescribe(t *testing.T) {
	d := Describe(reflect.TypeFor[account](), nil)

	assert.Equal(t, primitive.KindComplex, d.Kind)
	assert.Len(t, d.Members, 4)
	assert.Empty(t, d.Constructors)

	assert.Equal(t, "account", Root(reflect.TypeFor[account]()).Name)
	assert.Equal(t, "[]string", Root(reflect.TypeFor[[]string]()).Name)
	assert.Equal(t, "account", Root(reflect.TypeFor[*account]()).Name)
	assert.Equal(t, "", FormatNone.String())
	assert.Equal(t, "postcode", FormatPostalCode.String())
}
