package checkers

import (
	"encoding/json"
	"os"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"

	"github.com/minmaxcheckers/game"
	"github.com/minmaxcheckers/minimax"
)

// Config for a game.
// It holds the board set up, the depth bound carried by the board and the
// configuration of the computer's search.
type Config struct {
	Name      string         `json:"name"`
	Width     int            `json:"width"`
	Height    int            `json:"height"`
	FirstSide game.Side      `json:"first_side"`
	MaxDepth  int            `json:"max_depth"`
	Search    minimax.Config `json:"search"`
}

func DefaultConfig() Config {
	return Config{
		Name:      "MinMax Checkers",
		Width:     game.DefaultWidth,
		Height:    game.DefaultHeight,
		FirstSide: game.White,
		MaxDepth:  game.DefaultMaxDepth,
		Search:    minimax.DefaultConfig(),
	}
}

// Validate returns every problem with the configuration.
func (c Config) Validate() error {
	var errs error
	if c.Width < 2 {
		errs = multierror.Append(errs, errors.Errorf("width must be at least 2, got %d", c.Width))
	}
	// two rows per side
	if c.Height < 4 {
		errs = multierror.Append(errs, errors.Errorf("height must be at least 4, got %d", c.Height))
	}
	if c.FirstSide != game.Black && c.FirstSide != game.White {
		errs = multierror.Append(errs, errors.Errorf("unknown first side %d", c.FirstSide))
	}
	if c.MaxDepth < 1 {
		errs = multierror.Append(errs, errors.Errorf("max_depth must be at least 1, got %d", c.MaxDepth))
	}
	if err := c.Search.Validate(); err != nil {
		errs = multierror.Append(errs, err)
	}
	return errs
}

func (c Config) IsValid() bool { return c.Validate() == nil }

// NewBoard returns the starting board described by c.
func (c Config) NewBoard() *game.Board {
	b := game.New(c.Width, c.Height, c.FirstSide)
	b.MaxDepth = c.MaxDepth
	return b
}

// LoadConfig reads a JSON configuration. Fields missing from the file keep
// their default values.
func LoadConfig(filename string) (Config, error) {
	conf := DefaultConfig()
	f, err := os.Open(filename)
	if err != nil {
		return conf, errors.WithStack(err)
	}
	defer f.Close()

	if err = json.NewDecoder(f).Decode(&conf); err != nil {
		return conf, errors.Wrapf(err, "decoding %s", filename)
	}
	if err = conf.Validate(); err != nil {
		return conf, errors.WithMessagef(err, "invalid config %s", filename)
	}
	return conf, nil
}

// Save writes the configuration as JSON.
func (c Config) Save(filename string) error {
	f, err := os.OpenFile(filename, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0644)
	if err != nil {
		return errors.WithStack(err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return errors.WithStack(enc.Encode(c))
}
