package gen

import (
	"log/slog"
	"runtime"

	"github.com/syssam/aggregen/schema/field"
)

// Config holds the settings of a graph build and of the emitters run over
// the result.
type Config struct {
	// Types is the member type registry used to resolve scalar type tags.
	Types *field.Registry
	// Logger receives build and emit progress at debug level.
	Logger *slog.Logger
	// Workers bounds the number of concurrent emitter tasks.
	Workers int
	// Seed makes dummy values reproducible.
	Seed uint64
}

// defaultConfig returns a Config with every field set.
func defaultConfig() *Config {
	return &Config{
		Types:   field.Default(),
		Logger:  slog.New(slog.DiscardHandler),
		Workers: runtime.GOMAXPROCS(0),
		Seed:    1,
	}
}

// logger returns the configured logger, never nil.
func (c *Config) logger() *slog.Logger {
	if c == nil || c.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return c.Logger
}

// types returns the configured registry, never nil.
func (c *Config) types() *field.Registry {
	if c == nil || c.Types == nil {
		return field.Default()
	}
	return c.Types
}

// workers returns the configured worker limit, at least 1.
func (c *Config) workers() int {
	if c == nil || c.Workers < 1 {
		return runtime.GOMAXPROCS(0)
	}
	return c.Workers
}
