package errors

import (
	"errors"
	"fmt"
)

// Error classes shared by the gateway and the session layer.
// Package level sentinels wrap one of these so callers can test for the class with Is.
var (
	// Lookups of a user, job, application or property that must exist but doesn't
	ErrNotFound = errors.New("not found")

	// A command name that is not bound for the session's role
	ErrUnknownCommand = errors.New("unknown command")

	// Credentials that do not authorise the requested role
	ErrAccessDenied = errors.New("access denied")

	// Input that cannot be turned into a query
	ErrInvalidRequest = errors.New("invalid request")
)

// Wrapf wraps an error with context using fmt.Errorf
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf(format+": %w", append(args, err)...)
}

