package presentation

import "github.com/jrsteele09/go-jobsearch/persistence"

// Presenter renders what the session layer pushes out. The core never reads from it.
type Presenter interface {
	ShowJobs(jobs []persistence.JobPosting)
	ShowJob(job persistence.JobPosting)
	ShowApplications(applications []persistence.Application)
}

var _ Presenter = Discard{}

// Discard drops everything, for headless use and tests
type Discard struct{}

func (Discard) ShowJobs([]persistence.JobPosting) {}
func (Discard) ShowJob(persistence.JobPosting) {}
func (Discard) ShowApplications([]persistence.Application) {}
