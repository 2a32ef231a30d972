package registration

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/signup/internal/logging"
)

// Credentials is the raw input of one registration attempt.
type Credentials struct {
	Name     string
	Email    string
	Password string
}

// UserRecord is the profile built from valid credentials.
//
// Password is stored verbatim, without hashing.
type UserRecord struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register validates the credentials and, when every rule passes, returns a
// record holding them verbatim. Otherwise it returns a *ValidationError with
// the Outcome from Validate and no record.
func Register(name, email, password string) (*UserRecord, error) {
	outcome := Validate(name, email, password)
	if !outcome.IsValid() {
		return nil, &ValidationError{Outcome: outcome}
	}
	return &UserRecord{Name: name, Email: email, Password: password}, nil
}

// Registrar wraps Register with structured logging of each attempt.
type Registrar struct {
	log logging.Logger
}

// NewRegistrar constructs a Registrar that reports attempts to log.
func NewRegistrar(log logging.Logger) *Registrar {
	return &Registrar{log: log}
}

// Register runs one registration attempt. The password is never logged.
func (r *Registrar) Register(ctx context.Context, c Credentials) (*UserRecord, error) {
	log := r.log.With("attempt_id", uuid.NewString())

	user, err := Register(c.Name, c.Email, c.Password)
	if err != nil {
		var verr *ValidationError
		if errors.As(err, &verr) {
			log = log.With("kind", verr.Outcome.Kind.String())
		}
		log.Warn(ctx, "registration rejected", "reason", err.Error())
		return nil, err
	}

	log.Info(ctx, "user registered", "name", user.Name, "email", user.Email)
	return user, nil
}
