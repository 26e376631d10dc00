package memorydb

import (
	"slices"
	"strings"
	"sync"
	"unicode"

	"github.com/jrsteele09/go-jobsearch/internal/config"
	"github.com/jrsteele09/go-jobsearch/persistence"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

var _ persistence.Gateway = (*MemoryDB)(nil)

var roleCatalog = []string{"Administrator", "Borrower", "JobSeeker", "Management"}

// MemoryDB is an in-memory persistence.Gateway seeded with the default users, jobs and applications.
type MemoryDB struct {
	users        map[string]persistence.Credentials // userName -> credentials
	jobs         []persistence.JobPosting           // storage order is search order
	applications []persistence.Application
	adaptation   map[string]string
	logger       zerolog.Logger
	lock         sync.RWMutex
	closeOnce    sync.Once
}

// Option configures a MemoryDB before its data is loaded
type Option func(*options)

type options struct {
	logger         zerolog.Logger
	adaptationFile string
	users          []persistence.Credentials
	jobs           []persistence.JobPosting
	applications   []persistence.Application
}

// WithLogger sets the audit logger
func WithLogger(logger zerolog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithAdaptationFile sets the key/value file read once at construction
func WithAdaptationFile(path string) Option {
	return func(o *options) {
		o.adaptationFile = path
	}
}

// WithUsers replaces the seeded users
func WithUsers(users ...persistence.Credentials) Option {
	return func(o *options) {
		o.users = users
	}
}

// WithJobs replaces the seeded job postings. Postings with a zero ID are numbered by the store.
func WithJobs(jobs ...persistence.JobPosting) Option {
	return func(o *options) {
		o.jobs = jobs
	}
}

// WithApplications replaces the seeded applications
func WithApplications(applications ...persistence.Application) Option {
	return func(o *options) {
		o.applications = applications
	}
}

// New loads the adaptation data and the seed records.
func New(opts ...Option) (*MemoryDB, error) {
	o := options{
		logger:         zerolog.Nop(),
		adaptationFile: config.DefaultAdaptationFile,
		users:          seedUsers(),
		jobs:           seedJobs(),
		applications:   seedApplications(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	adaptation, err := loadAdaptationData(o.adaptationFile, o.logger)
	if err != nil {
		return nil, errors.Wrap(err, "[memorydb.New] loadAdaptationData")
	}

	db := &MemoryDB{
		users:        make(map[string]persistence.Credentials, len(o.users)),
		applications: slices.Clone(o.applications),
		adaptation:   adaptation,
		logger:       o.logger,
	}
	for _, u := range o.users {
		db.users[u.UserName] = u.Clone()
	}
	db.jobs = numberJobs(o.jobs)

	db.logger.Info().Msg("Simple DB being used and has been successfully initialized")
	return db, nil
}

// numberJobs assigns ids to postings that have none, continuing after the highest id seen
func numberJobs(jobs []persistence.JobPosting) []persistence.JobPosting {
	numbered := slices.Clone(jobs)
	next := 1
	for _, j := range numbered {
		if j.ID >= next {
			next = j.ID + 1
		}
	}
	for i := range numbered {
		if numbered[i].ID == 0 {
			numbered[i].ID = next
			next++
		}
	}
	return numbered
}

func (db *MemoryDB) FindRoles() []string {
	return slices.Clone(roleCatalog)
}

func (db *MemoryDB) FindCredentialsByName(name string) (persistence.Credentials, error) {
	db.lock.RLock()
	defer db.lock.RUnlock()

	user, ok := db.users[name]
	if !ok {
		db.logger.Warn().Str("user", name).Msg("attempt to find user failed")
		return persistence.Credentials{}, errors.Wrapf(persistence.ErrNoSuchUser, "[MemoryDB.FindCredentialsByName] %q", name)
	}
	return user.Clone(), nil
}

func (db *MemoryDB) FindJobByID(id int) (persistence.JobPosting, error) {
	db.lock.RLock()
	defer db.lock.RUnlock()

	for _, job := range db.jobs {
		if job.ID == id {
			return job, nil
		}
	}
	return persistence.JobPosting{}, errors.Wrapf(persistence.ErrNoSuchJob, "[MemoryDB.FindJobByID] %d", id)
}

func (db *MemoryDB) SearchJobs(keyword, location, category string) ([]persistence.JobPosting, error) {
	for _, filter := range []string{keyword, location, category} {
		if strings.ContainsFunc(filter, unicode.IsControl) {
			return nil, errors.Wrapf(persistence.ErrMalformedQuery, "[MemoryDB.SearchJobs] filter %q", filter)
		}
	}

	db.lock.RLock()
	defer db.lock.RUnlock()

	results := make([]persistence.JobPosting, 0)
	for _, job := range db.jobs {
		if matchesKeyword(job, keyword) &&
			strings.Contains(job.Location, location) &&
			strings.Contains(job.Category, category) {
			results = append(results, job)
		}
	}
	return results, nil
}

// matchesKeyword looks for keyword in the posting's name, category and description
func matchesKeyword(job persistence.JobPosting, keyword string) bool {
	return strings.Contains(job.Name, keyword) ||
		strings.Contains(job.Category, keyword) ||
		strings.Contains(job.Description, keyword)
}

func (db *MemoryDB) RecordApplication(userName string, jobID int) (bool, error) {
	if _, err := db.FindJobByID(jobID); err != nil {
		return false, errors.Wrap(err, "[MemoryDB.RecordApplication] FindJobByID")
	}

	// The duplicate check and the insert share one write lock
	db.lock.Lock()
	defer db.lock.Unlock()

	if db.indexOfApplication(userName, jobID) >= 0 {
		return false, nil
	}
	db.applications = append(db.applications, persistence.Application{
		UserName: userName,
		JobID:    jobID,
		Status:   persistence.StatusApplied,
	})
	return true, nil
}

func (db *MemoryDB) ListApplications(userName string) ([]persistence.Application, error) {
	db.lock.RLock()
	defer db.lock.RUnlock()

	results := make([]persistence.Application, 0)
	for _, app := range db.applications {
		if app.UserName == userName {
			results = append(results, app)
		}
	}
	return results, nil
}

func (db *MemoryDB) UpdateApplicationStatus(userName string, jobID int, status string) error {
	db.lock.Lock()
	defer db.lock.Unlock()

	i := db.indexOfApplication(userName, jobID)
	if i < 0 {
		return errors.Wrapf(persistence.ErrNoSuchApplication, "[MemoryDB.UpdateApplicationStatus] %q/%d", userName, jobID)
	}
	db.applications[i].Status = status
	return nil
}

// indexOfApplication must be called with the lock held
func (db *MemoryDB) indexOfApplication(userName string, jobID int) int {
	return slices.IndexFunc(db.applications, func(app persistence.Application) bool {
		return app.UserName == userName && app.JobID == jobID
	})
}

func (db *MemoryDB) ConfigValue(key string) (string, error) {
	// adaptation data is read-only after New, no lock needed
	value, ok := db.adaptation[key]
	if !ok {
		db.logger.Warn().Str("key", key).Msg("attempt to access adaptation data failed, no such key")
		return "", errors.Wrapf(persistence.ErrNoSuchProperty, "[MemoryDB.ConfigValue] %q", key)
	}
	return value, nil
}

func (db *MemoryDB) Close() error {
	db.closeOnce.Do(func() {
		db.logger.Info().Msg("Simple DB shutdown successfully")
	})
	return nil
}
