package node

import (
	"fixture-generator/descriptor"
	"reflect"
)

// Constructors keeps registered factory functions per base type, in
// registration order. A constructor for T also serves *T and the other way
// round.
type Constructors struct {
	byType map[reflect.Type][]descriptor.Constructor
}

// NewConstructors creates an empty registry.
func NewConstructors() *Constructors {
	return &Constructors{byType: make(map[reflect.Type][]descriptor.Constructor)}
}

// Register parses fn and adds it to the registry.
func (c *Constructors) Register(fn any, paramNames ...string) error {
	ctor, err := ParseConstructor(fn, paramNames...)
	if err != nil {
		return err
	}

	c.Add(ctor)

	return nil
}

// Add appends an already parsed constructor.
func (c *Constructors) Add(ctor descriptor.Constructor) {
	if c.byType == nil {
		c.byType = make(map[reflect.Type][]descriptor.Constructor)
	}

	key := base(ctor.Result)
	c.byType[key] = append(c.byType[key], ctor)
}

// For returns the constructors able to produce t.
func (c *Constructors) For(t reflect.Type) []descriptor.Constructor {
	if c == nil || t == nil {
		return nil
	}

	return c.byType[base(t)]
}

// Len returns the number of registered constructors.
func (c *Constructors) Len() int {
	if c == nil {
		return 0
	}

	n := 0
	for _, ctors := range c.byType {
		n += len(ctors)
	}

	return n
}
