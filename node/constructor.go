package node

import (
	"errors"
	"fixture-generator/descriptor"
	"fixture-generator/utils"
	"fmt"
	"reflect"
	"runtime"
	"strings"
)

var (
	ErrIsNotAConstructor         = errors.New("provided function is not a recognizable constructor")
	ErrConstructorIsNotAFunction = errors.New("provided constructor is not a function")
	ErrVariadicConstructor       = errors.New("variadic constructors are not supported")
	ErrDoublePointer             = errors.New("constructor function does not support double pointers")
	ErrConstructorPanic          = errors.New("constructor panicked")
	ErrNilInstance               = errors.New("constructor returned nil")
)

// paramStem prefixes generated parameter names.
const paramStem = "arg"

// ParseConstructor inspects the provided function and returns a Constructor
// if it is a valid factory function.
//
// Supports interfaces:
//   - func(args...) T
//   - func(args...) *T
//   - func(args...) (T, error)
//
// Parameters are named after paramNames in order; missing or empty names
// are generated as arg1, arg2, ...
func ParseConstructor(fn any, paramNames ...string) (descriptor.Constructor, error) {
	if fn == nil {
		return descriptor.Constructor{}, ErrConstructorIsNotAFunction
	}

	fnVal := reflect.ValueOf(fn)
	fnType := fnVal.Type()
	if fnType.Kind() != reflect.Func || fnVal.IsNil() {
		return descriptor.Constructor{}, ErrConstructorIsNotAFunction
	}

	if fnType.IsVariadic() {
		return descriptor.Constructor{}, ErrVariadicConstructor
	}

	if fnType.NumOut() == 0 || fnType.NumOut() > 2 {
		return descriptor.Constructor{}, ErrIsNotAConstructor
	}

	result := fnType.Out(0)
	if result == errorType {
		return descriptor.Constructor{}, ErrIsNotAConstructor
	}

	if depth, _ := ptrDepthAndBase(result); depth > 1 {
		return descriptor.Constructor{}, ErrDoublePointer
	}

	ctor := descriptor.Constructor{
		Fn:     fnVal,
		Name:   funcName(fnVal),
		Result: result,
		Params: params(fnType, paramNames),
	}

	if fnType.NumOut() == 2 {
		if !isError(fnType.Out(1)) {
			return descriptor.Constructor{}, ErrIsNotAConstructor
		}

		ctor.HasErr = true
	}

	return ctor, nil
}

// funcName returns the package alias qualified name of the function,
// e.g. "store.NewInvoice".
func funcName(fnVal reflect.Value) string {
	fnPC := runtime.FuncForPC(fnVal.Pointer())
	if fnPC == nil {
		return ""
	}

	// import paths may contain dots, only the last path element is split
	_, last := utils.LastCut(fnPC.Name(), "/")
	alias, name := utils.Unpack2(strings.SplitN(last, ".", 2))
	if name == "" {
		return alias
	}

	return alias + "." + name
}

func params(fnType reflect.Type, names []string) []descriptor.Member {
	stem := NewStem(paramStem, nil)
	for _, name := range names {
		if name != "" {
			stem.Take(name)
		}
	}

	out := make([]descriptor.Member, fnType.NumIn())
	for i := range out {
		var name string
		if i < len(names) {
			name = names[i]
		}

		if name == "" {
			name = stem.Next()
		}

		out[i] = descriptor.Parameter(name, fnType.In(i))
	}

	return out
}

// invoke calls the constructor, turning returned errors, nil instances and
// panics into errors.
func invoke(ctor descriptor.Constructor, args []reflect.Value) (result reflect.Value, err error) {
	defer func() {
		if r := recover(); r != nil {
			result = reflect.Value{}
			err = fmt.Errorf("%w: %s: %v", ErrConstructorPanic, ctor.Name, r)
		}
	}()

	out := ctor.Fn.Call(args)

	if ctor.HasErr && !out[1].IsNil() {
		return reflect.Value{}, fmt.Errorf("%s: %w", ctor.Name, out[1].Interface().(error))
	}

	switch out[0].Kind() {
	case reflect.Pointer, reflect.Interface:
		if out[0].IsNil() {
			return reflect.Value{}, fmt.Errorf("%w: %s", ErrNilInstance, ctor.Name)
		}
	}

	return out[0], nil
}

// adapt converts a constructed value to the requested type: values are
// addressed or dereferenced as needed, interface targets are assigned.
func adapt(v reflect.Value, t reflect.Type) (reflect.Value, bool) {
	switch {
	case v.Type() == t:
		return v, true
	case v.Kind() == reflect.Pointer && v.Type().Elem() == t:
		return v.Elem(), true
	case t.Kind() == reflect.Pointer && t.Elem() == v.Type():
		ptr := reflect.New(v.Type())
		ptr.Elem().Set(v)
		return ptr, true
	case v.Type().AssignableTo(t):
		out := reflect.New(t).Elem()
		out.Set(v)
		return out, true
	default:
		return reflect.Value{}, false
	}
}
