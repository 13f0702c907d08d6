package options

import (
	"errors"
	"fixture-generator/utils"
	"fmt"
)

// Defaults applied by Default and by Parse for keys missing from a file.
const (
	DefaultMaxDepth            = 10
	DefaultCollectionItemCount = 2
	DefaultStringMinLength     = 5
	DefaultStringMaxLength     = 50
	maxStringLength            = 1 << 16
	maxCollectionItemCount     = 1 << 12
)

var ErrInvalidConfig = errors.New("invalid configuration")

// Config is the immutable set of generation parameters for one build.
// It is passed by value to every population call; nothing keeps a reference
// to a shared, mutable copy.
type Config struct {
	MaxDepth                   int              `yaml:"max_depth"`
	DefaultCollectionItemCount int              `yaml:"default_list_item_count"`
	StringMinLength            int              `yaml:"string_min_length"`
	StringMaxLength            int              `yaml:"string_max_length"`
	CharacterSet               CharacterSetEnum `yaml:"character_set"`
	AllowSpaces                bool             `yaml:"allow_spaces"`
	Casing                     CasingEnum       `yaml:"casing"`
}

// Option customizes a Config before it is frozen by New.
type Option func(*Config)

// Default returns the configuration used when nothing is customized.
func Default() Config {
	return Config{
		MaxDepth:                   DefaultMaxDepth,
		DefaultCollectionItemCount: DefaultCollectionItemCount,
		StringMinLength:            DefaultStringMinLength,
		StringMaxLength:            DefaultStringMaxLength,
		CharacterSet:               CharacterSetAlpha,
		AllowSpaces:                false,
		Casing:                     CasingAny,
	}
}

// New applies opts on top of Default.
func New(opts ...Option) Config {
	cfg := Default()
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// With returns a copy of c with opts applied.
func (c Config) With(opts ...Option) Config {
	for _, opt := range opts {
		opt(&c)
	}

	return c
}

func WithMaxDepth(depth int) Option {
	return func(c *Config) { c.MaxDepth = depth }
}

func WithCollectionItemCount(count int) Option {
	return func(c *Config) { c.DefaultCollectionItemCount = count }
}

// WithStringLength sets both string length bounds, inclusive.
func WithStringLength(min, max int) Option {
	return func(c *Config) {
		c.StringMinLength = min
		c.StringMaxLength = max
	}
}

func WithCharacterSet(set CharacterSetEnum) Option {
	return func(c *Config) { c.CharacterSet = set }
}

func WithSpaces(allow bool) Option {
	return func(c *Config) { c.AllowSpaces = allow }
}

func WithCasing(casing CasingEnum) Option {
	return func(c *Config) { c.Casing = casing }
}

// Validate checks that every parameter is usable by the generators.
func (c Config) Validate() error {
	var errs []error

	if c.MaxDepth < 0 {
		errs = append(errs, fmt.Errorf("%w: max depth %d is negative", ErrInvalidConfig, c.MaxDepth))
	}

	if !utils.IsInRange(0, c.DefaultCollectionItemCount, maxCollectionItemCount) {
		errs = append(errs, fmt.Errorf("%w: collection item count %d is out of [0, %d]",
			ErrInvalidConfig, c.DefaultCollectionItemCount, maxCollectionItemCount))
	}

	if !utils.IsInRange(0, c.StringMinLength, c.StringMaxLength) {
		errs = append(errs, fmt.Errorf("%w: string length bounds [%d, %d] are inverted or negative",
			ErrInvalidConfig, c.StringMinLength, c.StringMaxLength))
	}

	if c.StringMaxLength > maxStringLength {
		errs = append(errs, fmt.Errorf("%w: string max length %d exceeds %d",
			ErrInvalidConfig, c.StringMaxLength, maxStringLength))
	}

	if !c.CharacterSet.IsValid() {
		errs = append(errs, fmt.Errorf("%w: %s", ErrInvalidConfig, c.CharacterSet))
	}

	if !c.Casing.IsValid() {
		errs = append(errs, fmt.Errorf("%w: %s", ErrInvalidConfig, c.Casing))
	}

	return errors.Join(errs...)
}
