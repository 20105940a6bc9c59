package gen

import (
	"errors"
	"log/slog"

	"github.com/syssam/aggregen/schema/field"
)

// Option configures a graph build.
type Option func(*Config) error

// WithMemberTypes registers additional member types on top of the current
// registry. Names must not collide with registered ones.
func WithMemberTypes(types ...field.MemberType) Option {
	return func(c *Config) error {
		reg, err := c.types().With(types...)
		if err != nil {
			return &ConfigError{Option: "MemberTypes", Message: err.Error()}
		}
		c.Types = reg
		return nil
	}
}

// WithRegistry replaces the member type registry.
func WithRegistry(reg *field.Registry) Option {
	return func(c *Config) error {
		if reg == nil {
			return NewConfigError("Registry", nil, "registry cannot be nil")
		}
		c.Types = reg
		return nil
	}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *Config) error {
		if l == nil {
			return NewConfigError("Logger", nil, "logger cannot be nil")
		}
		c.Logger = l
		return nil
	}
}

// WithWorkers sets the number of concurrent emitter tasks.
func WithWorkers(n int) Option {
	return func(c *Config) error {
		if n < 1 {
			return NewConfigError("Workers", n, "workers must be at least 1")
		}
		c.Workers = n
		return nil
	}
}

// WithSeed sets the seed of dummy value generation.
func WithSeed(seed uint64) Option {
	return func(c *Config) error {
		c.Seed = seed
		return nil
	}
}

// Apply applies options to the config.
// It returns the first error encountered.
func (c *Config) Apply(opts ...Option) error {
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return err
		}
	}
	return nil
}

// ApplyAll applies options and collects all errors.
// Returns a joined error if any options failed.
func (c *Config) ApplyAll(opts ...Option) error {
	var errs []error
	for _, opt := range opts {
		if err := opt(c); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// NewConfig creates a new Config with defaults and the given options.
func NewConfig(opts ...Option) (*Config, error) {
	c := defaultConfig()
	if err := c.Apply(opts...); err != nil {
		return nil, err
	}
	return c, nil
}

// MustNewConfig creates a new Config with the given options.
// It panics if any option fails.
func MustNewConfig(opts ...Option) *Config {
	c, err := NewConfig(opts...)
	if err != nil {
		panic(err)
	}
	return c
}
