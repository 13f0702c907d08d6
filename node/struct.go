package node

import (
	"errors"
	"fixture-generator/descriptor"
	"fixture-generator/internal/common"
	"fixture-generator/internal/diagnostic"
	"fmt"
	"log/slog"
	"reflect"
	"sigs.k8s.io/randfill"
)

var errNoConstructor = errors.New("no registered constructor")

// populateComplex handles structs, pointers to structs and interfaces.
// Unless inPlace, entering the instance costs one level of depth.
func (e *Engine) populateComplex(
	ctx Context, member descriptor.Member, current reflect.Value, inPlace bool,
) (reflect.Value, diagnostic.Outcome) {
	t := member.Type
	typeName := common.TypeName(t)

	if !inPlace {
		if !ctx.CanDescend() {
			return current, diagnostic.Exhausted(ctx.Path)
		}
		ctx = ctx.Descend()
	}

	switch t.Kind() {
	case reflect.Pointer, reflect.Interface:
		if !current.IsNil() {
			e.PopulateProperties(ctx, current)
			return current, diagnostic.Populated(ctx.Path, typeName)
		}

	case reflect.Struct:
		if !current.IsZero() || common.IsEmpty(e.ctors.For(t)) {
			inst := reflect.New(t)
			inst.Elem().Set(current)
			e.PopulateProperties(ctx, inst)

			return inst.Elem(), diagnostic.Populated(ctx.Path, typeName)
		}
	}

	inst, err := e.synthesize(ctx, t)
	if err != nil {
		code := diagnostic.CodeConstructorFailed
		if errors.Is(err, errNoConstructor) {
			code = diagnostic.CodeNoConstructor
		}

		e.logger.Debug("cannot instantiate member",
			slog.String("type", typeName),
			slog.String("member", ctx.Path),
			slog.Any("error", err),
		)

		return current, diagnostic.Skipped(ctx.Path, typeName, code, err.Error())
	}

	return inst, diagnostic.Populated(ctx.Path, typeName)
}

// synthesize creates a new instance of t through its first registered
// constructor, or as a zero instance when it has none, and populates its
// fields at the depth of ctx.
func (e *Engine) synthesize(ctx Context, t reflect.Type) (reflect.Value, error) {
	desc := descriptor.Describe(t, e.ctors.For(t))

	if ctor, ok := common.First(desc.Constructors); ok {
		v, err := invoke(ctor, e.BuildConstructorParameters(ctx, ctor))
		if err != nil {
			return reflect.Value{}, err
		}

		inst, ok := adapt(v, t)
		if !ok {
			return reflect.Value{}, fmt.Errorf("%w: %s returns %s, not %s",
				ErrIsNotAConstructor, ctor.Name, common.TypeName(ctor.Result), common.TypeName(t))
		}

		if inst.Kind() == reflect.Struct {
			ptr := reflect.New(t)
			ptr.Elem().Set(inst)
			e.PopulateProperties(ctx, ptr)

			return ptr.Elem(), nil
		}

		e.PopulateProperties(ctx, inst)

		return inst, nil
	}

	switch t.Kind() {
	case reflect.Pointer:
		inst := reflect.New(t.Elem())
		e.PopulateProperties(ctx, inst)

		return inst, nil

	case reflect.Struct:
		inst := reflect.New(t)
		e.PopulateProperties(ctx, inst)

		return inst.Elem(), nil

	default:
		return reflect.Value{}, fmt.Errorf("%w for %s", errNoConstructor, common.TypeName(t))
	}
}

// populateSelfFilling lets a randfill.SimpleSelfFiller generate its own value.
// Non-zero current values are kept.
func (e *Engine) populateSelfFilling(ctx Context, member descriptor.Member, current reflect.Value) (reflect.Value, diagnostic.Outcome) {
	t := member.Type
	typeName := common.TypeName(t)

	if !current.IsZero() {
		return current, diagnostic.Skipped(ctx.Path, typeName, diagnostic.CodePreset, "value already set")
	}

	inst := reflect.New(base(t))
	inst.Interface().(randfill.SimpleSelfFiller).RandFill(e.rand)

	if t.Kind() == reflect.Pointer {
		return inst, diagnostic.Populated(ctx.Path, typeName)
	}

	return inst.Elem(), diagnostic.Populated(ctx.Path, typeName)
}
