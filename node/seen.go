package node

import "reflect"

// seen is a set of types, used to report each unsupported type once.
type seen struct {
	done map[reflect.Type]struct{}
}

// Add marks t and reports whether it was new.
func (s *seen) Add(t reflect.Type) bool {
	if s.done == nil {
		s.done = make(map[reflect.Type]struct{})
	}

	if _, exists := s.done[t]; exists {
		return false
	}

	s.done[t] = struct{}{}

	return true
}
