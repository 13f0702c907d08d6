// Package builder is the entry point of the fixture generator: it wires the
// default strategies into a population engine and builds instances.
//
//	order, report := builder.Populate[store.Order](
//		builder.WithConfigOptions(options.WithMaxDepth(2)),
//	)
package builder

import (
	"errors"
	"fixture-generator/constraint"
	"fixture-generator/descriptor"
	"fixture-generator/internal/common"
	"fixture-generator/internal/diagnostic"
	"fixture-generator/leaf"
	"fixture-generator/node"
	"fixture-generator/options"
	"fmt"
	"github.com/brianvoe/gofakeit/v7"
	"log/slog"
	"math/rand"
	"reflect"
)

var ErrNotAStructPointer = errors.New("fill target must be a non-nil pointer to a struct")

// Builder builds populated instances. It is safe for sequential reuse; the
// faker it draws from is not synchronized, concurrent builds need a Builder
// each.
type Builder struct {
	config options.Config
	engine *node.Engine
}

// New assembles a Builder. It panics on an invalid configuration or an
// unusable constructor, both being programming errors.
func New(opts ...Option) *Builder {
	s := settings{config: options.Default()}
	for _, opt := range opts {
		opt(&s)
	}

	if err := s.config.Validate(); err != nil {
		panic(err)
	}

	if s.faker == nil {
		s.faker = gofakeit.New(0)
	}

	if s.logger == nil {
		s.logger = slog.Default()
	}

	ctors := node.NewConstructors()
	for _, c := range s.constructors {
		if err := ctors.Register(c.fn, c.names...); err != nil {
			panic(fmt.Errorf("register constructor %T: %w", c.fn, err))
		}
	}

	leaves := leaf.Defaults(s.faker)
	for _, customize := range s.strategies {
		customize(&leaves)
	}

	engine := node.New(leaves, constraint.NewMapper(s.faker), ctors, s.logger).
		WithRand(rand.New(rand.NewSource(s.faker.Int64())))

	return &Builder{config: s.config, engine: engine}
}

// Config returns the configuration builds run with.
func (b *Builder) Config() options.Config {
	return b.config
}

// Build synthesizes a populated value of t. The value always has type t,
// members that could not be generated keep their zero value and are listed
// in the report.
func (b *Builder) Build(t reflect.Type) (reflect.Value, *diagnostic.Report) {
	report := &diagnostic.Report{}
	v := b.engine.Build(node.NewContext(b.config, report), t)

	return v, report
}

// Fill populates the fields of the struct ptr points to. Fields holding
// values are kept, the root counts as depth zero.
func (b *Builder) Fill(ptr any) (*diagnostic.Report, error) {
	v := reflect.ValueOf(ptr)
	if !v.IsValid() || v.Kind() != reflect.Pointer || v.IsNil() || v.Elem().Kind() != reflect.Struct {
		return nil, fmt.Errorf("%w, got %T", ErrNotAStructPointer, ptr)
	}

	report := &diagnostic.Report{}
	ctx := node.NewContext(b.config, report).Member(descriptor.Root(v.Elem().Type()).Name)
	b.engine.PopulateProperties(ctx, v)

	return report, nil
}

// Populate builds a T with a Builder assembled from opts.
func Populate[T any](opts ...Option) (T, *diagnostic.Report) {
	return Of[T](New(opts...))
}

// Of builds a T with b.
func Of[T any](b *Builder) (T, *diagnostic.Report) {
	v, report := b.Build(reflect.TypeFor[T]())

	// a nil interface value does not assert
	out, _ := v.Interface().(T)

	return out, report
}

// MustPopulate is like Populate but panics when the root value itself could
// not be built.
func MustPopulate[T any](opts ...Option) T {
	out, report := Populate[T](opts...)

	t := reflect.TypeFor[T]()
	root := descriptor.Root(t).Name
	if !report.IsPopulated(root) {
		if o, ok := report.Lookup(root); ok {
			panic(fmt.Errorf("build %s: %s", common.TypeName(t), o))
		}

		panic(fmt.Errorf("build %s: not populated", common.TypeName(t)))
	}

	return out
}
