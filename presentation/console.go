package presentation

import (
	"fmt"
	"io"
	"strings"

	"github.com/jrsteele09/go-jobsearch/persistence"
)

var _ Presenter = (*Console)(nil)

var rule = strings.Repeat("-", 94)

// JobLookup resolves job ids for the applications listing. persistence.Gateway satisfies it.
type JobLookup interface {
	FindJobByID(id int) (persistence.JobPosting, error)
}

// Console writes line oriented listings to w
type Console struct {
	w    io.Writer
	jobs JobLookup
}

// NewConsole writes to w. jobs may be nil, in which case applications are listed by job id.
func NewConsole(w io.Writer, jobs JobLookup) *Console {
	return &Console{w: w, jobs: jobs}
}

func (c *Console) ShowJobs(jobs []persistence.JobPosting) {
	fmt.Fprintf(c.w, "\n%s\n", rule)
	fmt.Fprintf(c.w, "searchResult size: %d\n", len(jobs))
	for i, job := range jobs {
		fmt.Fprintf(c.w, "%d) %s | %s | %s\n", i+1, job.Name, job.Location, job.Category)
	}
	fmt.Fprintf(c.w, "%s\n", rule)
}

func (c *Console) ShowJob(job persistence.JobPosting) {
	fmt.Fprintf(c.w, "\n%s\n", rule)
	fmt.Fprintln(c.w, "Job info")
	fmt.Fprintf(c.w, "name : %s\n", job.Name)
	fmt.Fprintf(c.w, "location : %s\n", job.Location)
	fmt.Fprintf(c.w, "category : %s\n", job.Category)
	fmt.Fprintf(c.w, "type : %s\n", job.Type)
	fmt.Fprintf(c.w, "description : %s\n", job.Description)
	fmt.Fprintf(c.w, "qualification : %s\n", job.Qualification)
	fmt.Fprintf(c.w, "salary : %s\n", job.Salary)
	fmt.Fprintf(c.w, "%s\n", rule)
}

func (c *Console) ShowApplications(applications []persistence.Application) {
	if len(applications) == 0 {
		return
	}
	fmt.Fprintf(c.w, "\n%s\n", rule)
	fmt.Fprintf(c.w, "Application status for %s\n", applications[0].UserName)
	for i, app := range applications {
		fmt.Fprintf(c.w, "%d) job name: %s | status: %s\n", i+1, c.jobName(app.JobID), app.Status)
	}
	fmt.Fprintf(c.w, "%s\n", rule)
}

func (c *Console) jobName(id int) string {
	if c.jobs != nil {
		if job, err := c.jobs.FindJobByID(id); err == nil {
			return job.Name
		}
	}
	return fmt.Sprintf("#%d", id)
}
