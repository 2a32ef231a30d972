package config

import (
	"flag"
	"io"

	"github.com/dmitrijs2005/signup/internal/flagx"
)

// parseFlags populates cfg from -l, -o and -n. Other arguments are filtered
// out with flagx.FilterArgs so -c/-config do not trip the parser.
func parseFlags(cfg *Config, args []string) {
	args = flagx.FilterArgs(args, []string{"-l", "-o", "-n"})

	fs := flag.NewFlagSet("signup", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level (debug, info, warn, error)")
	fs.StringVar(&cfg.OutputFormat, "o", cfg.OutputFormat, "record output format (text, json)")
	fs.IntVar(&cfg.MaxAttempts, "n", cfg.MaxAttempts, "registration attempts before giving up")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
