package config

import "os"

// Output formats for a registered record.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Config holds runtime settings for the signup shell.
type Config struct {
	LogLevel     string
	OutputFormat string
	MaxAttempts  int
}

// LoadDefaults populates c with defaults.
func (c *Config) LoadDefaults() {
	c.LogLevel = "warn"
	c.OutputFormat = FormatText
	c.MaxAttempts = 1
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present).
func LoadConfig() *Config {
	return loadFromArgs(os.Args[1:])
}

func loadFromArgs(args []string) *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg, args)
	parseFlags(cfg, args)
	return cfg
}
