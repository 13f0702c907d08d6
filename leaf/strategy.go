package leaf

import (
	"fixture-generator/options"
	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"net/url"
	"reflect"
	"time"
)

// Strategy produces a value for a named slot given its current value.
// The configuration snapshot is passed with every call, strategies keep none.
type Strategy[T any] interface {
	Populate(cfg options.Config, name string, current T) T
}

// Func adapts a plain function to Strategy.
type Func[T any] func(cfg options.Config, name string, current T) T

// Populate implements Strategy.
func (f Func[T]) Populate(cfg options.Config, name string, current T) T {
	return f(cfg, name, current)
}

// EnumStrategy produces a value of a named integer or string type.
type EnumStrategy interface {
	Populate(cfg options.Config, name string, enumType reflect.Type, current reflect.Value) reflect.Value
}

// Set holds one strategy per leaf kind the engine dispatches to.
type Set struct {
	Text             Strategy[string]
	NullableText     Strategy[*string]
	Integer          Strategy[int64]
	NullableInteger  Strategy[*int64]
	Real             Strategy[float64]
	NullableReal     Strategy[*float64]
	Boolean          Strategy[bool]
	NullableBoolean  Strategy[*bool]
	DateTime         Strategy[time.Time]
	NullableDateTime Strategy[*time.Time]
	URI              Strategy[*url.URL]
	Enumeration      EnumStrategy
	UUID             Strategy[uuid.UUID]
	NullableUUID     Strategy[*uuid.UUID]
	Decimal          Strategy[decimal.Decimal]
	NullableDecimal  Strategy[*decimal.Decimal]
	Duration         Strategy[time.Duration]
	NullableDuration Strategy[*time.Duration]
}

// Defaults returns the gofakeit backed strategies.
func Defaults(faker *gofakeit.Faker) Set {
	text := Text{faker: faker}
	integer := Integer{faker: faker}
	fraction := Real{faker: faker}
	boolean := Boolean{}
	datetime := DateTime{faker: faker}
	fixed := Decimal{faker: faker}
	span := Duration{faker: faker}

	return Set{
		Text:             text,
		NullableText:     Nullable[string]{Base: text},
		Integer:          integer,
		NullableInteger:  Nullable[int64]{Base: integer},
		Real:             fraction,
		NullableReal:     Nullable[float64]{Base: fraction},
		Boolean:          boolean,
		NullableBoolean:  Nullable[bool]{Base: boolean},
		DateTime:         datetime,
		NullableDateTime: Nullable[time.Time]{Base: datetime},
		URI:              URI{faker: faker},
		Enumeration:      Enum{faker: faker},
		UUID:             UUID{},
		NullableUUID:     Nullable[uuid.UUID]{Base: UUID{}},
		Decimal:          fixed,
		NullableDecimal:  Nullable[decimal.Decimal]{Base: fixed},
		Duration:         span,
		NullableDuration: Nullable[time.Duration]{Base: span},
	}
}

// Nullable wraps a strategy for pointer typed slots. A nil current value is
// replaced by a pointer to a freshly generated one.
type Nullable[T any] struct {
	Base Strategy[T]
}

// Populate implements Strategy.
func (n Nullable[T]) Populate(cfg options.Config, name string, current *T) *T {
	var v T
	if current != nil {
		v = *current
	}

	v = n.Base.Populate(cfg, name, v)

	return &v
}
