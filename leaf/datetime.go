package leaf

import (
	"fixture-generator/options"
	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"net/url"
	"time"
)

const dateTimeSpanYears = 10

// DateTime generates UTC instants within the last ten years, truncated to
// whole seconds.
type DateTime struct {
	faker *gofakeit.Faker
}

// Populate implements Strategy.
func (s DateTime) Populate(_ options.Config, _ string, current time.Time) time.Time {
	if !current.IsZero() {
		return current
	}

	end := time.Now().UTC()
	start := end.AddDate(-dateTimeSpanYears, 0, 0)

	return s.faker.DateRange(start, end).UTC().Truncate(time.Second)
}

// URI generates absolute https URLs.
type URI struct {
	faker *gofakeit.Faker
}

// Populate implements Strategy.
func (s URI) Populate(_ options.Config, _ string, current *url.URL) *url.URL {
	if current != nil && current.String() != "" {
		return current
	}

	u, err := url.Parse(s.faker.URL())
	if err != nil || u.Host == "" {
		return &url.URL{Scheme: "https", Host: s.faker.DomainName()}
	}

	return u
}

// UUID generates random (version 4) identifiers.
type UUID struct{}

// Populate implements Strategy.
func (UUID) Populate(_ options.Config, _ string, current uuid.UUID) uuid.UUID {
	if current != uuid.Nil {
		return current
	}

	return uuid.New()
}
