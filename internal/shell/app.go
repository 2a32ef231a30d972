package shell

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/dmitrijs2005/signup/internal/config"
	"github.com/dmitrijs2005/signup/internal/logging"
	"github.com/dmitrijs2005/signup/internal/registration"
)

var (
	ErrUnknownOutputFormat = errors.New("unknown output format")
	ErrInvalidMaxAttempts  = errors.New("max attempts must be at least 1")
)

// registrar is the part of *registration.Registrar the shell depends on.
type registrar interface {
	Register(ctx context.Context, c registration.Credentials) (*registration.UserRecord, error)
}

type App struct {
	config    *config.Config
	log       logging.Logger
	registrar registrar
	reader    *bufio.Reader
	out       io.Writer
}

// NewApp validates cfg and wires the registrar. Logs go to logOut, prompts and
// results to out.
func NewApp(cfg *config.Config, in io.Reader, out, logOut io.Writer) (*App, error) {
	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	if cfg.OutputFormat != config.FormatText && cfg.OutputFormat != config.FormatJSON {
		return nil, fmt.Errorf("%w: %q", ErrUnknownOutputFormat, cfg.OutputFormat)
	}
	if cfg.MaxAttempts < 1 {
		return nil, ErrInvalidMaxAttempts
	}

	log := logging.NewTextLogger(logOut, level)

	return &App{
		config:    cfg,
		log:       log,
		registrar: registration.NewRegistrar(log),
		reader:    bufio.NewReader(in),
		out:       out,
	}, nil
}

// Run performs up to MaxAttempts registration attempts and stops at the first
// success. Rejected attempts are printed, not returned.
func (a *App) Run(ctx context.Context) error {
	for attempt := 1; attempt <= a.config.MaxAttempts; attempt++ {
		creds, err := a.readCredentials()
		if err != nil {
			return fmt.Errorf("error reading input: %w", err)
		}

		user, err := a.registrar.Register(ctx, creds)
		if err != nil {
			var verr *registration.ValidationError
			if !errors.As(err, &verr) {
				return err
			}
			fmt.Fprintf(a.out, "Registration failed: %s\n", verr.Error())
			if attempt < a.config.MaxAttempts {
				a.log.Debug(ctx, "re-prompting", slog.Int("attempt", attempt), slog.Int("max_attempts", a.config.MaxAttempts))
			}
			continue
		}

		return a.printRecord(user)
	}
	return nil
}

func (a *App) readCredentials() (registration.Credentials, error) {
	var c registration.Credentials
	var err error

	if c.Name, err = GetSimpleText(a.reader, "Enter name", a.out); err != nil {
		return c, err
	}
	if c.Email, err = GetSimpleText(a.reader, "Enter email", a.out); err != nil {
		return c, err
	}
	if c.Password, err = GetPassword(a.reader, a.out); err != nil {
		return c, err
	}
	return c, nil
}

// printRecord writes the record, password included, in the configured format.
func (a *App) printRecord(user *registration.UserRecord) error {
	if a.config.OutputFormat == config.FormatJSON {
		return json.NewEncoder(a.out).Encode(user)
	}
	_, err := fmt.Fprintf(a.out, "User registered: name=%s email=%s password=%s\n", user.Name, user.Email, user.Password)
	return err
}
