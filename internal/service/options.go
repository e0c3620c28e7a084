package service

import (
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/pageza/recipebox/config"
)

type options struct {
	now    func() time.Time
	newID  func() string
	seed   int64
	scheme PasswordScheme
}

// Option customises a service.
type Option func(*options)

// WithClock replaces time.Now for creation timestamps.
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

// WithIDGenerator replaces the identifier generator.
func WithIDGenerator(newID func() string) Option {
	return func(o *options) { o.newID = newID }
}

// WithSeedRandom fixes the seed used to generate the sample catalog. Zero
// keeps the time-based default.
func WithSeedRandom(seed int64) Option {
	return func(o *options) { o.seed = seed }
}

// WithPasswordScheme selects how new passwords are stored.
func WithPasswordScheme(scheme PasswordScheme) Option {
	return func(o *options) { o.scheme = scheme }
}

func buildOptions(opts []Option) options {
	o := options{
		now:    func() time.Time { return time.Now().UTC().Truncate(time.Millisecond) },
		newID:  newID,
		scheme: PasswordBcrypt,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func (o options) rng() *rand.Rand {
	seed := o.seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// newID returns a time-ordered UUIDv7, so identifiers sort by creation time
// and never collide within the same millisecond.
func newID() string {
	return uuid.Must(uuid.NewV7()).String()
}

// ConfigOptions maps the loaded configuration onto service options.
func ConfigOptions(cfg *config.Config) []Option {
	return []Option{
		WithSeedRandom(cfg.SeedRandom),
		WithPasswordScheme(PasswordScheme(cfg.PasswordScheme)),
	}
}
