package session

import (
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/jrsteele09/go-jobsearch/internal/metrics"
	"github.com/jrsteele09/go-jobsearch/internal/utils"
	"github.com/jrsteele09/go-jobsearch/persistence"
	"github.com/jrsteele09/go-jobsearch/presentation"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// Handler implements one command. Validation of args is the handler's job.
type Handler func(s *Session, args []string) Result

// CommandTable maps command names to handlers
type CommandTable map[string]Handler

// Deps holds the collaborators a session talks to
type Deps struct {
	Gateway   persistence.Gateway    // Stored users, jobs, applications
	Presenter presentation.Presenter // Receives listings pushed by handlers
}

func (d Deps) validate(caller string) error {
	if d.Gateway == nil {
		return errors.Errorf("[%s] Gateway is required", caller)
	}
	if d.Presenter == nil {
		return errors.Errorf("[%s] Presenter is required", caller)
	}
	return nil
}

type settings struct {
	logger  zerolog.Logger
	clock   clockwork.Clock
	metrics *metrics.Recorder
}

func newSettings(opts []Option) settings {
	s := settings{
		logger: zerolog.Nop(),
		clock:  clockwork.NewRealClock(),
	}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// Option configures sessions and the authenticator
type Option func(*settings)

// WithLogger sets the audit logger
func WithLogger(logger zerolog.Logger) Option {
	return func(s *settings) {
		s.logger = logger
	}
}

// WithClock sets the clock used to time the session (primarily for testing)
func WithClock(clock clockwork.Clock) Option {
	return func(s *settings) {
		s.clock = clock
	}
}

// WithMetrics sets the counters updated on dispatch
func WithMetrics(recorder *metrics.Recorder) Option {
	return func(s *settings) {
		s.metrics = recorder
	}
}

// Session is one authenticated interaction. It is owned by a single caller and is not safe for concurrent use.
type Session struct {
	id          string
	role        Role
	credentials persistence.Credentials
	commands    CommandTable
	deps        Deps
	logger      zerolog.Logger
	clock       clockwork.Clock
	metrics     *metrics.Recorder
	startedAt   time.Time
	closed      bool

	searchResults []persistence.JobPosting
	selectedJob   *persistence.JobPosting
}

// New builds a session bound to role's command table.
// Most callers should go through Authenticator.Authenticate, which checks the credentials first.
func New(credentials persistence.Credentials, role Role, deps Deps, opts ...Option) (*Session, error) {
	if err := deps.validate("session.New"); err != nil {
		return nil, err
	}
	if credentials.UserName == "" {
		return nil, errors.New("[session.New] credentials have no user name")
	}
	commands, err := RoleCommands(role)
	if err != nil {
		return nil, errors.Wrap(err, "[session.New] RoleCommands")
	}

	cfg := newSettings(opts)
	s := &Session{
		id:          uuid.New().String(),
		role:        role,
		credentials: credentials.Clone(),
		commands:    commands,
		deps:        deps,
		clock:       cfg.clock,
		metrics:     cfg.metrics,
		startedAt:   cfg.clock.Now(),
	}
	s.logger = cfg.logger.With().
		Str("session_id", s.id).
		Str("user", credentials.UserName).
		Str("role", role.String()).
		Logger()

	s.metrics.SessionOpened()
	s.logger.Info().Msgf("Session %q being used and has been successfully initialized", role.description())
	return s, nil
}

func (s *Session) ID() string {
	return s.id
}

func (s *Session) Role() Role {
	return s.role
}

func (s *Session) UserName() string {
	return s.credentials.UserName
}

// Credentials returns a copy of the credentials the session was built from
func (s *Session) Credentials() persistence.Credentials {
	return s.credentials.Clone()
}

// AvailableCommands returns the names bound for this session's role, sorted
func (s *Session) AvailableCommands() []string {
	return s.commands.Names()
}

// Execute runs the handler bound to command. An unbound name is an *UnknownCommandError; every
// other outcome, including bad input and empty results, is reported through the Result.
func (s *Session) Execute(command string, args []string) (Result, error) {
	if s.closed {
		return Result{}, errors.Wrapf(ErrSessionClosed, "[Session.Execute] %q", command)
	}

	handler, ok := s.commands[command]
	if !ok {
		s.metrics.UnknownCommand(s.role.String())
		s.logger.Warn().Str("command", command).Msg("attempt to execute command failed, no such command")
		return Result{}, &UnknownCommandError{Command: command, Role: s.role}
	}

	result := handler(s, args)
	s.metrics.Command(s.role.String(), command, result.Kind.String())
	return result, nil
}

// Close logs the end of the session. Calling it more than once is harmless.
func (s *Session) Close() {
	if s.closed {
		return
	}
	s.closed = true
	s.metrics.SessionClosed()
	s.logger.Info().
		Dur("lifetime", s.clock.Since(s.startedAt)).
		Msgf("Session %q shutdown successfully", s.role.description())
}

// RecordSearchResults replaces the last search result set
func (s *Session) RecordSearchResults(jobs []persistence.JobPosting) {
	s.searchResults = slices.Clone(jobs)
}

// SearchResults returns the last search result set
func (s *Session) SearchResults() []persistence.JobPosting {
	return slices.Clone(s.searchResults)
}

// lookupFromLastSearch finds a job in the last search result set
func (s *Session) lookupFromLastSearch(jobID int) (persistence.JobPosting, error) {
	for _, job := range s.searchResults {
		if job.ID == jobID {
			return job, nil
		}
	}
	return persistence.JobPosting{}, errors.Wrapf(persistence.ErrNoSuchJob, "[Session.lookupFromLastSearch] %d", jobID)
}

// SelectJob makes the job with jobID in the last search results the target of Apply for Job.
// The posting is copied out of the results, so a later search does not invalidate the selection.
// An id outside the last results fails with persistence.ErrNoSuchJob and leaves the selection alone.
func (s *Session) SelectJob(jobID int) (persistence.JobPosting, error) {
	job, err := s.lookupFromLastSearch(jobID)
	if err != nil {
		return persistence.JobPosting{}, errors.Wrap(err, "[Session.SelectJob] lookupFromLastSearch")
	}
	s.selectedJob = utils.Ptr(job)
	return job, nil
}

// SelectedJob returns the selected job and whether one has been selected
func (s *Session) SelectedJob() (persistence.JobPosting, bool) {
	return utils.Value(s.selectedJob), s.selectedJob != nil
}

// SelectedJobID returns the selected job id, or 0 if nothing is selected
func (s *Session) SelectedJobID() int {
	return utils.Value(s.selectedJob).ID
}

func (s *Session) audit(command string, result Result) Result {
	event := s.logger.Info()
	if result.IsProblem() {
		event = s.logger.Warn()
	}
	event = event.Str("command", command)
	if result.Message == "" {
		event.Msgf("%s requested by %q", command, s.UserName())
		return result
	}
	event.Msgf("%s:  %s", command, result)
	return result
}
