package session_test

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jonboulle/clockwork"
	"github.com/jrsteele09/go-jobsearch/internal/metrics"
	"github.com/jrsteele09/go-jobsearch/persistence"
	"github.com/jrsteele09/go-jobsearch/persistence/memorydb"
	"github.com/jrsteele09/go-jobsearch/session"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

// recordingPresenter keeps everything the handlers push out
type recordingPresenter struct {
	jobLists     [][]persistence.JobPosting
	jobs         []persistence.JobPosting
	applications [][]persistence.Application
}

func (p *recordingPresenter) ShowJobs(jobs []persistence.JobPosting) {
	p.jobLists = append(p.jobLists, jobs)
}

func (p *recordingPresenter) ShowJob(job persistence.JobPosting) {
	p.jobs = append(p.jobs, job)
}

func (p *recordingPresenter) ShowApplications(applications []persistence.Application) {
	p.applications = append(p.applications, applications)
}

// countingGateway counts the searches that reach the store
type countingGateway struct {
	persistence.Gateway
	searches int
}

func (g *countingGateway) SearchJobs(keyword, location, category string) ([]persistence.JobPosting, error) {
	g.searches++
	return g.Gateway.SearchJobs(keyword, location, category)
}

// testFixture holds all test dependencies
type testFixture struct {
	db        *memorydb.MemoryDB
	gateway   *countingGateway
	presenter *recordingPresenter
	clock     *clockwork.FakeClock
	logs      *bytes.Buffer
	metrics   *metrics.Recorder
	auth      *session.Authenticator
}

func setupTestFixture(t *testing.T) *testFixture {
	t.Helper()

	db, err := memorydb.New(memorydb.WithAdaptationFile(filepath.Join(t.TempDir(), "missing.dat")))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	f := &testFixture{
		db:        db,
		gateway:   &countingGateway{Gateway: db},
		presenter: &recordingPresenter{},
		clock:     clockwork.NewFakeClock(),
		logs:      &bytes.Buffer{},
		metrics:   metrics.New(prometheus.NewRegistry()),
	}

	f.auth, err = session.NewAuthenticator(f.deps(), f.options()...)
	require.NoError(t, err)
	return f
}

func (f *testFixture) deps() session.Deps {
	return session.Deps{Gateway: f.gateway, Presenter: f.presenter}
}

func (f *testFixture) options() []session.Option {
	return []session.Option{
		session.WithLogger(zerolog.New(f.logs)),
		session.WithClock(f.clock),
		session.WithMetrics(f.metrics),
	}
}

// newSession builds a session for a seeded user without going through the authenticator
func (f *testFixture) newSession(t *testing.T, userName string, role session.Role) *session.Session {
	t.Helper()

	creds, err := f.db.FindCredentialsByName(userName)
	require.NoError(t, err)

	s, err := session.New(creds, role, f.deps(), f.options()...)
	require.NoError(t, err)
	t.Cleanup(s.Close)
	return s
}

func (f *testFixture) execute(t *testing.T, s *session.Session, command string, args ...string) session.Result {
	t.Helper()

	result, err := s.Execute(command, args)
	require.NoError(t, err)
	return result
}

func (f *testFixture) logLines() []string {
	out := strings.TrimSpace(f.logs.String())
	if out == "" {
		return nil
	}
	return strings.Split(out, "\n")
}
