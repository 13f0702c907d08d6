package node

import "reflect"

var errorType = reflect.TypeFor[error]()

func base(t reflect.Type) reflect.Type {
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t
}

// ptrDepthAndBase returns the pointer depth and the final base type.
func ptrDepthAndBase(t reflect.Type) (depth int, base reflect.Type) {
	depth, base = 0, t
	for t != nil && base.Kind() == reflect.Ptr {
		depth++
		base = base.Elem()
	}

	return
}

func isError(t reflect.Type) bool {
	if t == nil {
		return false
	}

	return t.Implements(errorType)
}

func toInt64(v reflect.Value) int64 {
	if v.CanInt() {
		return v.Int()
	}

	return int64(v.Uint())
}

// setInteger stores v into dst, folding it into [1, max] when the
// destination kind is too narrow to hold it.
func setInteger(dst reflect.Value, v int64) {
	bits := dst.Type().Bits()

	if dst.CanInt() {
		if dst.OverflowInt(v) {
			if v < 0 {
				v = -v
			}
			v = 1 + v%(int64(1)<<(bits-1)-1)
		}

		dst.SetInt(v)
		return
	}

	u := uint64(v)
	if dst.OverflowUint(u) {
		u = 1 + u%(uint64(1)<<bits-1)
	}

	dst.SetUint(u)
}
