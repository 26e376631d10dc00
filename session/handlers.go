package session

import (
	"fmt"
	"strconv"
)

// noFilter is typed by the user in place of a search criterion they want to skip
const noFilter = "0"

func filterValue(arg string) string {
	if arg == noFilter {
		return ""
	}
	return arg
}

// searchJob expects keyword, location and category
func searchJob(s *Session, args []string) Result {
	if len(args) != 3 {
		return s.audit(CmdSearchJob, errorResult("ARGS NOT VALID"))
	}
	keyword, location, category := filterValue(args[0]), filterValue(args[1]), filterValue(args[2])

	jobs, err := s.deps.Gateway.SearchJobs(keyword, location, category)
	if err != nil {
		return s.audit(CmdSearchJob, errorResult(fmt.Sprintf("search failed: %v", err)))
	}
	if len(jobs) == 0 {
		return s.audit(CmdSearchJob, warning("No search results"))
	}

	s.RecordSearchResults(jobs)
	s.deps.Presenter.ShowJobs(jobs)
	return s.audit(CmdSearchJob, success(fmt.Sprintf("Job %q searched by %q",
		keyword+"/"+location+"/"+category+"/", s.UserName())))
}

// getJobInfo expects the 1-based position of a job in the last search results
func getJobInfo(s *Session, args []string) Result {
	if len(args) != 1 {
		return s.audit(CmdGetJobInfo, errorResult("ARGS NOT VALID"))
	}
	position, err := strconv.Atoi(args[0])
	if err != nil {
		return s.audit(CmdGetJobInfo, errorResult(fmt.Sprintf("%q is not a number", args[0])))
	}

	index := position - 1
	if index < 0 || index >= len(s.searchResults) {
		return s.audit(CmdGetJobInfo, warning("Number Out of Range"))
	}

	job, err := s.SelectJob(s.searchResults[index].ID)
	if err != nil {
		return s.audit(CmdGetJobInfo, errorResult(fmt.Sprintf("selecting job failed: %v", err)))
	}
	s.deps.Presenter.ShowJob(job)
	return s.audit(CmdGetJobInfo, success(fmt.Sprintf("Job Info %q viewed by %q", job.Name, s.UserName())))
}

// applyForJob applies for the job chosen with Get Job Info
func applyForJob(s *Session, _ []string) Result {
	job, ok := s.SelectedJob()
	if !ok {
		return s.audit(CmdApplyForJob, warning("no job selected"))
	}

	created, err := s.deps.Gateway.RecordApplication(s.UserName(), job.ID)
	if err != nil {
		return s.audit(CmdApplyForJob, errorResult(fmt.Sprintf("application failed: %v", err)))
	}
	s.metrics.Application(created)
	if !created {
		return s.audit(CmdApplyForJob, warning("already applied!"))
	}
	return s.audit(CmdApplyForJob, success(fmt.Sprintf("Applied Job %q by %q", job.Name, s.UserName())))
}

func viewApplications(s *Session, _ []string) Result {
	applications, err := s.deps.Gateway.ListApplications(s.UserName())
	if err != nil {
		return s.audit(CmdViewApplications, errorResult(fmt.Sprintf("listing applications failed: %v", err)))
	}

	s.deps.Presenter.ShowApplications(applications)
	return s.audit(CmdViewApplications, success(fmt.Sprintf("Job applications \"length %d\" viewed by %q",
		len(applications), s.UserName())))
}

// placeholder binds a command that exists for its role but does no work yet
func placeholder(command string) Handler {
	return func(s *Session, _ []string) Result {
		return s.audit(command, none())
	}
}
