package session

import (
	"errors"
	"fmt"

	apperrors "github.com/jrsteele09/go-jobsearch/internal/errors"
)

var (
	// ErrUnknownCommand is matched by every *UnknownCommandError
	ErrUnknownCommand = apperrors.ErrUnknownCommand

	// ErrAccessDenied is returned with a nil session when credentials don't authorise the role
	ErrAccessDenied = apperrors.ErrAccessDenied

	ErrSessionClosed = errors.New("session closed")
)

// UnknownCommandError carries the command name that is not bound for the role
type UnknownCommandError struct {
	Command string
	Role    Role
}

func (e *UnknownCommandError) Error() string {
	return fmt.Sprintf("attempt to execute %q failed, no such command for role %q", e.Command, e.Role)
}

func (e *UnknownCommandError) Unwrap() error {
	return ErrUnknownCommand
}
