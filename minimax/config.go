package minimax

import (
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
)

// Config configures the Searcher.
type Config struct {
	// MaxDepth caps the depth carried by the board. Zero means the board's own bound is used.
	MaxDepth int `json:"max_depth"`
	// LogStats logs the search statistics of every move at info level instead of debug.
	LogStats bool `json:"log_stats"`
}

func DefaultConfig() Config {
	return Config{}
}

// Validate returns every problem with the configuration.
func (c Config) Validate() error {
	var errs error
	if c.MaxDepth < 0 {
		errs = multierror.Append(errs, errors.Errorf("max_depth must not be negative, got %d", c.MaxDepth))
	}
	return errs
}

func (c Config) IsValid() bool { return c.Validate() == nil }

// depth returns the search depth for a board carrying the bound d.
func (c Config) depth(d int) int {
	if c.MaxDepth > 0 && c.MaxDepth < d {
		return c.MaxDepth
	}
	return d
}
