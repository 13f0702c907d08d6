package leaf

import (
	"fixture-generator/options"
	"fixture-generator/utils"
	"github.com/brianvoe/gofakeit/v7"
	"github.com/shopspring/decimal"
	"math"
	"time"
)

// Integer generates values in [1, 1000]; non-zero current values are kept.
type Integer struct {
	faker *gofakeit.Faker
}

// Populate implements Strategy.
func (s Integer) Populate(_ options.Config, _ string, current int64) int64 {
	if current != 0 {
		return current
	}

	return int64(s.faker.Number(1, 1000))
}

// Real generates values in [1, 1000) rounded to two decimals.
type Real struct {
	faker *gofakeit.Faker
}

// Populate implements Strategy.
func (s Real) Populate(_ options.Config, _ string, current float64) float64 {
	if current != 0 {
		return current
	}

	return utils.Clamp(1, math.Round(s.faker.Float64Range(1, 1000)*100)/100, 1000)
}

// Boolean always yields true, the only non-default boolean.
type Boolean struct{}

// Populate implements Strategy.
func (Boolean) Populate(options.Config, string, bool) bool {
	return true
}

// Decimal generates prices with two decimal places.
type Decimal struct {
	faker *gofakeit.Faker
}

// Populate implements Strategy.
func (s Decimal) Populate(_ options.Config, _ string, current decimal.Decimal) decimal.Decimal {
	if !current.IsZero() {
		return current
	}

	return decimal.NewFromFloat(s.faker.Price(1, 1000)).Round(2)
}

// Duration generates whole seconds between one second and one day.
type Duration struct {
	faker *gofakeit.Faker
}

// Populate implements Strategy.
func (s Duration) Populate(_ options.Config, _ string, current time.Duration) time.Duration {
	if current != 0 {
		return current
	}

	return time.Duration(s.faker.Number(1, 24*60*60)) * time.Second
}
