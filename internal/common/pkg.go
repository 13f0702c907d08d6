package common

import (
	"path"
	"reflect"
	"strconv"
)

// UnknownStr is printed for enum values outside their declared range.
const UnknownStr = "unknown"

// PkgAlias returns the package alias (last element of path) for a given package path.
// Returns empty string if pkgPath is empty.
func PkgAlias(pkgPath string) string {
	if pkgPath == "" {
		return ""
	}

	return path.Base(pkgPath)
}

// TypeName renders t the way it is written in source, qualified by package
// alias: "*store.Customer", "[]store.LineItem", "map[string]int".
func TypeName(t reflect.Type) string {
	if t == nil {
		return "<nil>"
	}

	switch t.Kind() {
	case reflect.Pointer:
		return "*" + TypeName(t.Elem())
	case reflect.Slice:
		if t.Name() == "" {
			return "[]" + TypeName(t.Elem())
		}
	case reflect.Array:
		if t.Name() == "" {
			return "[" + strconv.Itoa(t.Len()) + "]" + TypeName(t.Elem())
		}
	case reflect.Map:
		if t.Name() == "" {
			return "map[" + TypeName(t.Key()) + "]" + TypeName(t.Elem())
		}
	}

	if alias := PkgAlias(t.PkgPath()); alias != "" && t.Name() != "" {
		return alias + "." + t.Name()
	}

	return t.String()
}
