package registration

import "errors"

var (
	// Name errors.
	ErrInvalidName = errors.New("the name must be at least two characters long and in text format")

	// Email errors.
	ErrInvalidEmailFormat = errors.New("the email must contain exactly one '@'")
	ErrInvalidEmailDomain = errors.New("the email domain must end with .org, .net, .edu, .ac, .uk or .com")

	// Password errors.
	ErrInvalidPasswordLength      = errors.New("the password must be at least eight characters long")
	ErrInvalidPasswordComposition = errors.New("the password composition is invalid")

	ErrPasswordNoUppercase = errors.New("the password must include at least one uppercase letter")
	ErrPasswordNoLowercase = errors.New("the password must include at least one lowercase letter")
	ErrPasswordNoDigit     = errors.New("the password must include at least one number")
	ErrPasswordNoSpecial   = errors.New("the password must include at least one special character")
)

// ValidationError is returned by Register when the credentials fail a rule.
// It carries the Outcome produced by Validate unchanged.
type ValidationError struct {
	Outcome Outcome
}

func (e *ValidationError) Error() string {
	return e.Outcome.Reason()
}

// Unwrap exposes the rule sentinel, so callers can match with errors.Is.
// Composition failures match both the per-class sentinel and
// ErrInvalidPasswordComposition.
func (e *ValidationError) Unwrap() []error {
	err := e.Outcome.Err()
	if err == nil {
		return nil
	}
	if e.Outcome.Kind == InvalidPasswordComposition {
		return []error{err, ErrInvalidPasswordComposition}
	}
	return []error{err}
}
