// Package registration validates profile credentials and turns valid ones
// into user records.
//
// Validate is a pure function: it never blocks, keeps no state and reports
// only the first rule the input breaks. Register builds on it and returns a
// *ValidationError carrying the same Outcome when a rule fails.
//
// Passwords are kept as plaintext in UserRecord. Callers that store records
// for real authentication must hash the password themselves.
package registration

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	minNameLength     = 2
	minPasswordLength = 8
)

// SpecialCharacters is the fixed set a password must draw at least one
// character from.
const SpecialCharacters = `!@#$%^&*()-_=+[]{}|;:'",.<>?/`

// allowedDomainSuffixes are matched against the end of the email domain part,
// so ".uk" accepts "example.co.uk" as well.
var allowedDomainSuffixes = []string{".org", ".net", ".edu", ".ac", ".uk", ".com"}

// Kind identifies which rule an Outcome failed. The zero value means valid.
type Kind int

const (
	Valid Kind = iota
	InvalidName
	InvalidEmailFormat
	InvalidEmailDomain
	InvalidPasswordLength
	InvalidPasswordComposition
)

func (k Kind) String() string {
	switch k {
	case Valid:
		return "valid"
	case InvalidName:
		return "invalid_name"
	case InvalidEmailFormat:
		return "invalid_email_format"
	case InvalidEmailDomain:
		return "invalid_email_domain"
	case InvalidPasswordLength:
		return "invalid_password_length"
	case InvalidPasswordComposition:
		return "invalid_password_composition"
	}
	return "unknown"
}

// CharClass names a character class required in a password.
type CharClass string

const (
	Uppercase CharClass = "uppercase"
	Lowercase CharClass = "lowercase"
	Digit     CharClass = "digit"
	Special   CharClass = "special"
)

// Outcome is the result of one validation attempt.
// Missing is set only when Kind is InvalidPasswordComposition.
type Outcome struct {
	Kind    Kind
	Missing CharClass
}

// IsValid reports whether every rule passed.
func (o Outcome) IsValid() bool {
	return o.Kind == Valid
}

// Err returns the sentinel error for the failed rule, or nil when valid.
func (o Outcome) Err() error {
	switch o.Kind {
	case InvalidName:
		return ErrInvalidName
	case InvalidEmailFormat:
		return ErrInvalidEmailFormat
	case InvalidEmailDomain:
		return ErrInvalidEmailDomain
	case InvalidPasswordLength:
		return ErrInvalidPasswordLength
	case InvalidPasswordComposition:
		switch o.Missing {
		case Uppercase:
			return ErrPasswordNoUppercase
		case Lowercase:
			return ErrPasswordNoLowercase
		case Digit:
			return ErrPasswordNoDigit
		case Special:
			return ErrPasswordNoSpecial
		}
		return ErrInvalidPasswordComposition
	}
	return nil
}

// Reason is the user-facing message for the outcome. Empty when valid.
func (o Outcome) Reason() string {
	if err := o.Err(); err != nil {
		return err.Error()
	}
	return ""
}

// Validate checks name, email and password in that order and returns the
// first failed rule.
func Validate(name, email, password string) Outcome {
	if !validName(name) {
		return Outcome{Kind: InvalidName}
	}

	if strings.Count(email, "@") != 1 {
		return Outcome{Kind: InvalidEmailFormat}
	}
	_, domain, _ := strings.Cut(email, "@")
	if !allowedDomain(domain) {
		return Outcome{Kind: InvalidEmailDomain}
	}

	if utf8.RuneCountInString(password) < minPasswordLength {
		return Outcome{Kind: InvalidPasswordLength}
	}
	if missing, ok := missingClass(password); ok {
		return Outcome{Kind: InvalidPasswordComposition, Missing: missing}
	}

	return Outcome{Kind: Valid}
}

func validName(name string) bool {
	return utf8.ValidString(name) && utf8.RuneCountInString(name) >= minNameLength
}

func allowedDomain(domain string) bool {
	for _, suffix := range allowedDomainSuffixes {
		if strings.HasSuffix(domain, suffix) {
			return true
		}
	}
	return false
}

// missingClass returns the first required class absent from password,
// checked in the order uppercase, lowercase, digit, special.
func missingClass(password string) (CharClass, bool) {
	var hasUpper, hasLower, hasDigit, hasSpecial bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
		if strings.ContainsRune(SpecialCharacters, r) {
			hasSpecial = true
		}
	}

	switch {
	case !hasUpper:
		return Uppercase, true
	case !hasLower:
		return Lowercase, true
	case !hasDigit:
		return Digit, true
	case !hasSpecial:
		return Special, true
	}
	return "", false
}
