package descriptor

import (
	"fixture-generator/internal/common"
	"fixture-generator/primitive"
	"reflect"
)

// Member is a named, typed slot on a type: a struct field or a constructor parameter.
type Member struct {
	Name        string
	Type        reflect.Type
	Index       int // struct field index, -1 when the member is not a field
	Constraints Constraints
}

// Field describes an exported struct field.
func Field(index int, f reflect.StructField) Member {
	return Member{
		Name:        f.Name,
		Type:        f.Type,
		Index:       index,
		Constraints: ParseTag(f.Tag),
	}
}

// Parameter describes a constructor parameter.
func Parameter(name string, t reflect.Type) Member {
	return Member{Name: name, Type: t, Index: -1}
}

// Root describes the type requested by the caller of a build.
// Pointers are named after the type they point to.
func Root(t reflect.Type) Member {
	named := t
	for named.Kind() == reflect.Pointer {
		named = named.Elem()
	}

	name := named.Name()
	if name == "" {
		name = common.TypeName(t)
	}

	return Member{Name: name, Type: t, Index: -1}
}

// Element derives the member describing one element of a collection member.
// Format and length constraints carry over, skipping does not.
func (m Member) Element(name string, t reflect.Type) Member {
	c := m.Constraints
	c.Skip = false

	return Member{Name: name, Type: t, Index: -1, Constraints: c}
}

// IsField reports whether the member is a struct field.
func (m Member) IsField() bool {
	return m.Index >= 0
}

// Constructor is a factory able to instantiate Result from Params.
type Constructor struct {
	Fn     reflect.Value
	Name   string // package alias qualified function name, e.g. "store.NewInvoice"
	Result reflect.Type
	Params []Member
	HasErr bool // second result is an error
}

// Arity returns the number of parameters.
func (c Constructor) Arity() int {
	return len(c.Params)
}

// Type is the runtime-visible shape of a Go type.
type Type struct {
	RType        reflect.Type
	Kind         primitive.KindEnum
	Members      []Member
	Constructors []Constructor
}

// Describe builds the descriptor of rtype. Members are the exported fields of
// the struct rtype points to, in declaration order; other kinds have none.
func Describe(rtype reflect.Type, ctors []Constructor) Type {
	return Type{
		RType:        rtype,
		Kind:         primitive.Classify(rtype),
		Members:      Members(rtype),
		Constructors: ctors,
	}
}

// Members lists the exported fields of a struct, or of the struct a pointer
// refers to.
func Members(rtype reflect.Type) []Member {
	if rtype == nil {
		return nil
	}

	if rtype.Kind() == reflect.Pointer {
		rtype = rtype.Elem()
	}

	if rtype.Kind() != reflect.Struct {
		return nil
	}

	members := make([]Member, 0, rtype.NumField())
	for i := 0; i < rtype.NumField(); i++ {
		f := rtype.Field(i)
		if !f.IsExported() {
			continue
		}

		members = append(members, Field(i, f))
	}

	return members
}
