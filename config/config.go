// Package config loads the settings of the monkey command-line tool.
//
// Settings live in a TOML file:
//
//	[output]
//	format = "sexpr"   # sexpr, yaml or json
//	color  = true
//
//	[parser]
//	strict_semicolons = false
//
//	[log]
//	level = "warn"     # debug, info, warn or error
//
// Missing keys fall back to the values returned by Default. Command-line flags
// override whatever the file says.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// EnvVar names the environment variable that points at a config file.
const EnvVar = "MONKEY_CONFIG"

// Output formats accepted by the parse command.
const (
	FormatSexpr = "sexpr"
	FormatYAML  = "yaml"
	FormatJSON  = "json"
)

// Config is the complete tool configuration.
type Config struct {
	Output OutputConfig `toml:"output"`
	Parser ParserConfig `toml:"parser"`
	Log    LogConfig    `toml:"log"`
}

// OutputConfig controls how results are printed.
type OutputConfig struct {
	Format string `toml:"format"`
	Color  *bool  `toml:"color"` // nil means "decide from the terminal"
}

// ParserConfig holds parser options.
type ParserConfig struct {
	StrictSemicolons bool `toml:"strict_semicolons"`
}

// LogConfig holds logging options.
type LogConfig struct {
	Level string `toml:"level"`
}

// Default returns the configuration used when no file is found.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load loads configuration from a TOML file.
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", path)
	}

	var cfg Config
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("unknown config key %q in %s", undecoded[0].String(), path)
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return &cfg, nil
}

// LoadFromEnv loads the file named by MONKEY_CONFIG, or the first of the
// default locations that exists. When none exists it returns Default.
func LoadFromEnv() (*Config, error) {
	if path := os.Getenv(EnvVar); path != "" {
		return Load(path)
	}
	for _, p := range defaultPaths() {
		if _, err := os.Stat(p); err == nil {
			return Load(p)
		}
	}
	return Default(), nil
}

func defaultPaths() []string {
	paths := []string{"./monkey.toml"}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "monkey", "config.toml"))
	}
	return paths
}

// applyDefaults sets default values for missing configuration
func (c *Config) applyDefaults() {
	if c.Output.Format == "" {
		c.Output.Format = FormatSexpr
	}
	if c.Log.Level == "" {
		c.Log.Level = "warn"
	}
	c.Output.Format = strings.ToLower(c.Output.Format)
	c.Log.Level = strings.ToLower(c.Log.Level)
}

// Validate checks that every value is one the tool understands.
func (c *Config) Validate() error {
	switch c.Output.Format {
	case FormatSexpr, FormatYAML, FormatJSON:
	default:
		return fmt.Errorf("output.format must be one of %s, %s, %s; got %q",
			FormatSexpr, FormatYAML, FormatJSON, c.Output.Format)
	}
	if _, err := c.SlogLevel(); err != nil {
		return err
	}
	return nil
}

// SlogLevel converts Log.Level to a slog.Level.
func (c *Config) SlogLevel() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return 0, fmt.Errorf("log.level: %w", err)
	}
	return lvl, nil
}
