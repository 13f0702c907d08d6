package builder

import (
	"fixture-generator/leaf"
	"fixture-generator/options"
	"github.com/brianvoe/gofakeit/v7"
	"log/slog"
)

type constructorSpec struct {
	fn    any
	names []string
}

type settings struct {
	config       options.Config
	faker        *gofakeit.Faker
	logger       *slog.Logger
	constructors []constructorSpec
	strategies   []func(*leaf.Set)
}

// Option configures a Builder.
type Option func(*settings)

// WithConfig replaces the whole configuration.
func WithConfig(cfg options.Config) Option {
	return func(s *settings) {
		s.config = cfg
	}
}

// WithConfigOptions applies configuration options on top of the current
// configuration.
func WithConfigOptions(opts ...options.Option) Option {
	return func(s *settings) {
		s.config = s.config.With(opts...)
	}
}

// WithConstructor registers a factory function. Its parameters are named
// after paramNames, see node.ParseConstructor.
func WithConstructor(fn any, paramNames ...string) Option {
	return func(s *settings) {
		s.constructors = append(s.constructors, constructorSpec{fn: fn, names: paramNames})
	}
}

// WithLogger sets the logger diagnostics are written to.
func WithLogger(logger *slog.Logger) Option {
	return func(s *settings) {
		s.logger = logger
	}
}

// WithFaker sets the source of fake values, a seeded faker makes single
// builds repeatable.
func WithFaker(faker *gofakeit.Faker) Option {
	return func(s *settings) {
		s.faker = faker
	}
}

// WithStrategies customizes the default leaf strategies.
//
//	builder.WithStrategies(func(set *leaf.Set) {
//		set.Boolean = leaf.Func[bool](func(options.Config, string, bool) bool { return false })
//	})
func WithStrategies(customize func(*leaf.Set)) Option {
	return func(s *settings) {
		s.strategies = append(s.strategies, customize)
	}
}
