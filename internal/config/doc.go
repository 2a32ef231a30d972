// Package config loads runtime settings for the signup shell.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected with -c or -config.
//  3. Command-line flags, which override earlier values.
//
// Supported flags
//
//	-l string   log level: debug, info, warn, error
//	-o string   record output format: text or json
//	-n int      attempts before the shell gives up
//
// # JSON schema
//
//	{
//	  "log_level": "info",
//	  "output_format": "json",
//	  "max_attempts": 3
//	}
//
// Running without any flag or file gives a single attempt, text output and
// warn-level logs on stderr.
package config
