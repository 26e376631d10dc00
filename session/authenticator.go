package session

import (
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// Login is what the user typed at the login prompt.
// Role may be empty, in which case the first of the user's authorised roles is used.
type Login struct {
	UserName   string
	PassPhrase string
	Role       string
}

// Authenticator turns a Login into a Session for an authorised role
type Authenticator struct {
	deps     Deps
	settings settings
	opts     []Option
}

// NewAuthenticator validates deps; opts are applied to the authenticator and every session it creates.
func NewAuthenticator(deps Deps, opts ...Option) (*Authenticator, error) {
	if err := deps.validate("NewAuthenticator"); err != nil {
		return nil, err
	}
	return &Authenticator{
		deps:     deps,
		settings: newSettings(opts),
		opts:     opts,
	}, nil
}

// Authenticate looks the user up, checks the pass phrase and the requested role, and builds the session.
// An unknown user is persistence.ErrNoSuchUser. Anything else that stops the login returns a nil session
// with ErrAccessDenied so the caller can offer a retry.
func (a *Authenticator) Authenticate(login Login) (*Session, error) {
	logger := a.settings.logger.With().Str("user", login.UserName).Str("requested_role", login.Role).Logger()

	credentials, err := a.deps.Gateway.FindCredentialsByName(login.UserName)
	if err != nil {
		a.settings.metrics.Login("unknown_user")
		logger.Warn().Msg("Login failure, no such user")
		return nil, errors.Wrap(err, "[Authenticator.Authenticate] FindCredentialsByName")
	}

	if credentials.PassPhrase != login.PassPhrase {
		return a.deny(logger, "pass phrase mismatch")
	}

	role, ok := authorisedRole(credentials.Roles, login.Role)
	if !ok {
		return a.deny(logger, "role not authorised")
	}

	session, err := New(credentials, role, a.deps, a.opts...)
	if err != nil {
		return nil, errors.Wrap(err, "[Authenticator.Authenticate] session.New")
	}

	a.settings.metrics.Login("success")
	logger.Info().Msgf("Login Successful for %q as role %q", login.UserName, role)
	return session, nil
}

func (a *Authenticator) deny(logger zerolog.Logger, reason string) (*Session, error) {
	a.settings.metrics.Login("denied")
	logger.Warn().Str("reason", reason).Msg("Login failure")
	return nil, errors.Wrap(ErrAccessDenied, "[Authenticator.Authenticate] "+reason)
}

// authorisedRole resolves requested against the user's stored roles. An empty request picks the
// first stored role that has a command table.
func authorisedRole(stored []string, requested string) (Role, bool) {
	if requested == "" {
		for _, name := range stored {
			if role, ok := ParseRole(name); ok {
				return role, true
			}
		}
		return "", false
	}

	want, ok := ParseRole(requested)
	if !ok {
		return "", false
	}
	for _, name := range stored {
		if role, ok := ParseRole(name); ok && role == want {
			return role, true
		}
	}
	return "", false
}
