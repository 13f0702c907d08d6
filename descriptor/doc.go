// Package descriptor describes the shape of the types the engine populates.
//
// Key types:
//   - Type: kind, members and registered constructors of a Go type
//   - Member: a named, typed slot (struct field or constructor parameter)
//   - Constraints: declarative hints parsed from the `fixture` struct tag
//   - Constructor: a factory function able to instantiate a type
package descriptor
