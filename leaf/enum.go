package leaf

import (
	"fixture-generator/options"
	"github.com/brianvoe/gofakeit/v7"
	"reflect"
)

// maxOrdinal bounds the ordinals tried for integer enumerations without a
// Values method.
const maxOrdinal = 16

var (
	validatorType = reflect.TypeFor[interface{ IsValid() bool }]()
)

// Enum picks a member of a named integer or string type.
//
// The declared members are discovered, in order of preference, from a
// Values() method returning a slice of the type, then by probing small
// ordinals with IsValid(). Without either, integer types receive a small
// non-zero ordinal and string types a random word.
type Enum struct {
	faker *gofakeit.Faker
}

// Populate implements EnumStrategy.
func (s Enum) Populate(_ options.Config, _ string, enumType reflect.Type, current reflect.Value) reflect.Value {
	if current.IsValid() && current.Type() == enumType && !current.IsZero() {
		return current
	}

	if candidates := Candidates(enumType); len(candidates) > 0 {
		return candidates[s.faker.Number(0, len(candidates)-1)]
	}

	v := reflect.New(enumType).Elem()

	switch {
	case isInteger(enumType.Kind()):
		setOrdinal(v, int64(s.faker.Number(1, 3)))
	case enumType.Kind() == reflect.String:
		v.SetString(s.faker.Word())
	}

	return v
}

// Candidates returns the declared members of enumType a generator may pick.
// The zero member is left out unless it is the only one declared.
func Candidates(enumType reflect.Type) []reflect.Value {
	values := Values(enumType)

	picked := make([]reflect.Value, 0, len(values))
	for _, v := range values {
		if !v.IsZero() {
			picked = append(picked, v)
		}
	}

	if len(picked) == 0 {
		return values
	}

	return picked
}

// Values returns the declared members of enumType.
func Values(enumType reflect.Type) []reflect.Value {
	if values := declaredValues(enumType); len(values) > 0 {
		return values
	}

	if !enumType.Implements(validatorType) || !isInteger(enumType.Kind()) {
		return nil
	}

	var values []reflect.Value

	for i := int64(0); i < maxOrdinal; i++ {
		v := reflect.New(enumType).Elem()
		setOrdinal(v, i)

		if v.Interface().(interface{ IsValid() bool }).IsValid() {
			values = append(values, v)
		}
	}

	return values
}

func declaredValues(enumType reflect.Type) []reflect.Value {
	m, ok := enumType.MethodByName("Values")
	if !ok {
		return nil
	}

	// method expressions carry the receiver as the first input
	if m.Type.NumIn() != 1 || m.Type.NumOut() != 1 {
		return nil
	}

	out := m.Type.Out(0)
	if out.Kind() != reflect.Slice || out.Elem() != enumType {
		return nil
	}

	list := m.Func.Call([]reflect.Value{reflect.New(enumType).Elem()})[0]

	values := make([]reflect.Value, 0, list.Len())
	for i := 0; i < list.Len(); i++ {
		values = append(values, list.Index(i))
	}

	return values
}

func isInteger(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return true
	default:
		return false
	}
}

func setOrdinal(v reflect.Value, n int64) {
	if v.CanInt() {
		v.SetInt(n)
		return
	}

	v.SetUint(uint64(n))
}
