package descriptor

import (
	"fixture-generator/internal/common"
	"fixture-generator/internal/naming"
	"github.com/vmihailenco/tagparser/v2"
	"reflect"
	"strconv"
	"strings"
)

// TagName is the struct tag key carrying generation constraints:
//
//	Email string `fixture:"email"`
//	Code  string `fixture:",min:3,max:8"`
//	Notes string `fixture:"-"`
const TagName = "fixture"

// FormatEnum is a semantic format hint for text members.
type FormatEnum int

const (
	FormatNone FormatEnum = iota
	FormatEmail
	FormatURL
	FormatPostalCode
	FormatPhone
)

// String returns the tag spelling of the format.
func (f FormatEnum) String() string {
	switch f {
	case FormatNone:
		return ""
	case FormatEmail:
		return "email"
	case FormatURL:
		return "url"
	case FormatPostalCode:
		return "postcode"
	case FormatPhone:
		return "phone"
	default:
		return common.UnknownStr
	}
}

// ParseFormat resolves a format name, accepting a few common spellings.
func ParseFormat(name string) FormatEnum {
	switch naming.Normalize(name) {
	case "email", "emailaddress":
		return FormatEmail
	case "url", "uri":
		return FormatURL
	case "postcode", "postalcode", "zip", "zipcode":
		return FormatPostalCode
	case "phone", "phonenumber", "telephone":
		return FormatPhone
	default:
		return FormatNone
	}
}

// Constraints are the declarative generation hints of one member.
type Constraints struct {
	Format    FormatEnum
	MinLength int // 0 when unset
	MaxLength int // 0 when unset
	Required  bool
	Skip      bool
}

// HasLength reports whether a length bound was declared.
func (c Constraints) HasLength() bool {
	return c.MinLength > 0 || c.MaxLength > 0
}

// IsZero reports whether no constraint was declared.
func (c Constraints) IsZero() bool {
	return c == Constraints{}
}

// ParseTag reads the constraints declared in the `fixture` tag.
// Malformed length options are ignored.
func ParseTag(tag reflect.StructTag) Constraints {
	raw, ok := tag.Lookup(TagName)
	if !ok {
		return Constraints{}
	}

	if strings.TrimSpace(raw) == "-" {
		return Constraints{Skip: true}
	}

	parsed := tagparser.Parse(raw)

	c := Constraints{
		Format:   ParseFormat(parsed.Name),
		Required: parsed.HasOption("required"),
	}

	if format, ok := parsed.Options["format"]; ok {
		c.Format = ParseFormat(format)
	}

	c.MinLength = lengthOption(parsed.Options, "min")
	c.MaxLength = lengthOption(parsed.Options, "max")

	return c
}

func lengthOption(opts map[string]string, key string) int {
	v, ok := opts[key]
	if !ok {
		return 0
	}

	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil || n < 0 {
		return 0
	}

	return n
}
