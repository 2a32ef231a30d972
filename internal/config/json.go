package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/signup/internal/flagx"
)

// JsonConfig is a DTO used for JSON unmarshalling. Zero values leave the
// corresponding Config field untouched.
type JsonConfig struct {
	LogLevel     string `json:"log_level"`
	OutputFormat string `json:"output_format"`
	MaxAttempts  int    `json:"max_attempts"`
}

// parseJson overlays cfg with values from the file named by -c or -config.
// Panics on read or unmarshal errors.
func parseJson(cfg *Config, args []string) {
	path := flagx.ConfigPath(args)
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.LogLevel != "" {
		cfg.LogLevel = jc.LogLevel
	}
	if jc.OutputFormat != "" {
		cfg.OutputFormat = jc.OutputFormat
	}
	if jc.MaxAttempts != 0 {
		cfg.MaxAttempts = jc.MaxAttempts
	}
}
