package node

import (
	"fixture-generator/descriptor"
	"fixture-generator/internal/common"
	"fixture-generator/internal/diagnostic"
	"fixture-generator/leaf"
	"fixture-generator/options"
	"log/slog"
	"math/rand"
	"reflect"
	"time"
)

// ConstraintMapper resolves text values from member constraints.
type ConstraintMapper interface {
	TryResolve(target reflect.Type, member descriptor.Member, cfg options.Config) (any, bool)
	Narrow(member descriptor.Member, cfg options.Config) options.Config
}

// Engine walks a type graph and fills it with generated values.
type Engine struct {
	leaves leaf.Set
	mapper ConstraintMapper
	ctors  *Constructors
	logger *slog.Logger
	rand   *rand.Rand
}

// New creates an Engine. A nil registry means no constructors, a nil logger
// falls back to slog.Default.
func New(leaves leaf.Set, mapper ConstraintMapper, ctors *Constructors, logger *slog.Logger) *Engine {
	if ctors == nil {
		ctors = NewConstructors()
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &Engine{
		leaves: leaves,
		mapper: mapper,
		ctors:  ctors,
		logger: logger,
		rand:   rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// WithRand replaces the source handed to self filling types.
func (e *Engine) WithRand(r *rand.Rand) *Engine {
	if r != nil {
		e.rand = r
	}

	return e
}

// Build synthesizes a value of t at the depth of ctx. The root counts as its
// own level, its fields are populated at ctx.Depth.
func (e *Engine) Build(ctx Context, t reflect.Type) reflect.Value {
	member := descriptor.Root(t)
	if ctx.Path == "" {
		ctx = ctx.Member(member.Name)
	}

	v, o := e.populate(ctx, member, reflect.Zero(t), true)
	ctx.Record(o)

	return v
}

// PopulateMember produces the value of one member given its current value.
// The returned value always has the member's type; when nothing could be
// generated it is the current value.
func (e *Engine) PopulateMember(ctx Context, member descriptor.Member, current reflect.Value) (reflect.Value, diagnostic.Outcome) {
	return e.populate(ctx, member, current, false)
}

// PopulateProperties fills every exported, settable field of the struct
// instance refers to. instance is a pointer to a struct, or an interface
// holding one.
func (e *Engine) PopulateProperties(ctx Context, instance reflect.Value) {
	if ctx.Exhausted() {
		return
	}

	v := instance
	for v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return
		}
		v = v.Elem()
	}

	if v.Kind() != reflect.Struct || !v.CanSet() {
		return
	}

	for _, m := range descriptor.Members(v.Type()) {
		field := v.Field(m.Index)
		if !field.CanSet() {
			continue
		}

		fieldCtx := ctx.Member(m.Name)
		value, o := e.PopulateMember(fieldCtx, m, field)
		fieldCtx.Record(o)

		if value.IsValid() {
			field.Set(value)
		}
	}
}

// BuildConstructorParameters synthesizes one argument per constructor
// parameter, in parameter order, at the depth of ctx.
func (e *Engine) BuildConstructorParameters(ctx Context, ctor descriptor.Constructor) []reflect.Value {
	args := make([]reflect.Value, 0, ctor.Arity())

	for _, p := range ctor.Params {
		paramCtx := ctx.Member(p.Name)
		value, o := e.PopulateMember(paramCtx, p, reflect.Zero(p.Type))
		paramCtx.Record(o)

		if !value.IsValid() {
			value = reflect.Zero(p.Type)
		}

		args = append(args, value)
	}

	return args
}

func (e *Engine) unsupported(ctx Context, member descriptor.Member) (reflect.Value, diagnostic.Outcome) {
	typeName := common.TypeName(member.Type)

	if ctx.firstWarning(member.Type) {
		e.logger.Warn("unsupported member type, leaving zero value",
			slog.String("type", typeName),
			slog.String("member", ctx.Path),
		)
	}

	return reflect.Zero(member.Type), diagnostic.Skipped(ctx.Path, typeName,
		diagnostic.CodeUnsupportedType, "no generation strategy for "+typeName)
}
