// Package shell is the interactive front end of signup.
//
// It prompts for a name, an email and a password (masked when stdin is a
// terminal), hands the completed strings to the registration core and prints
// either the resulting record or the failure message. Validation failures are
// not errors for the process: Run returns nil and the caller exits 0. Only
// input failures such as a closed stdin are returned.
//
// With Config.MaxAttempts above 1 the shell re-prompts after each rejected
// attempt until the budget is spent.
package shell
