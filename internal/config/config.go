package config

import (
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/standardbeagle/termbridge/internal/errors"
	"github.com/standardbeagle/termbridge/internal/lookup"
	"github.com/standardbeagle/termbridge/internal/similarity"
)

// DefaultPath is where the CLI looks for configuration.
const DefaultPath = ".termbridge.toml"

// Config drives engine construction for the termbridge CLI.
type Config struct {
	// Threshold is the default fuzzy-match similarity threshold.
	Threshold float64 `toml:"threshold"`

	// Separator delimits hierarchical context paths.
	Separator string `toml:"separator"`

	// Terminology lists doublestar globs of XLIFF files ingested at
	// startup, e.g. "translations/**/*.xlf".
	Terminology []string `toml:"terminology"`

	// Categories maps a category name to the lowercase keywords that
	// identify it inside a context string:
	//
	//	[categories]
	//	UI = ["screen", "form", "dialog"]
	Categories map[string][]string `toml:"categories"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Threshold: lookup.DefaultThreshold,
		Separator: similarity.DefaultSeparator,
	}
}

// Load reads a TOML configuration file. A missing file is not an error; it
// yields the defaults, so the CLI runs without any setup.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, errors.NewConfigError("", err).WithPath(path)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, errors.NewConfigError("", err).WithPath(path)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks field ranges and fills defaulted fields left empty in the
// file.
func (c *Config) Validate() error {
	if c.Threshold < 0.0 || c.Threshold > 1.0 {
		return errors.NewConfigError("threshold", errors.ErrInvalidThreshold)
	}
	if c.Separator == "" {
		c.Separator = similarity.DefaultSeparator
	}
	return nil
}
