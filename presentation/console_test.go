package presentation_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/jrsteele09/go-jobsearch/persistence"
	"github.com/jrsteele09/go-jobsearch/presentation"
	"github.com/stretchr/testify/require"
)

type jobsByID map[int]persistence.JobPosting

func (j jobsByID) FindJobByID(id int) (persistence.JobPosting, error) {
	job, ok := j[id]
	if !ok {
		return persistence.JobPosting{}, errors.New("not found")
	}
	return job, nil
}

var starbucks = persistence.JobPosting{
	ID: 2, Name: "Starbucks", Location: "Fullerton", Category: "Barista", Type: "Full time",
	Description: "Description about barista at Starbucks", Qualification: "over 21", Salary: "19$ / hour",
}

func TestShowJobsNumbersFromOne(t *testing.T) {
	var buf bytes.Buffer
	presentation.NewConsole(&buf, nil).ShowJobs([]persistence.JobPosting{
		{ID: 1, Name: "Burger King", Location: "Fullerton", Category: "Server"},
		starbucks,
	})

	out := buf.String()
	require.Contains(t, out, "searchResult size: 2\n")
	require.Contains(t, out, "1) Burger King | Fullerton | Server\n")
	require.Contains(t, out, "2) Starbucks | Fullerton | Barista\n")
}

func TestShowJobListsEveryField(t *testing.T) {
	var buf bytes.Buffer
	presentation.NewConsole(&buf, nil).ShowJob(starbucks)

	out := buf.String()
	for _, line := range []string{
		"name : Starbucks", "location : Fullerton", "category : Barista", "type : Full time",
		"description : Description about barista at Starbucks", "qualification : over 21", "salary : 19$ / hour",
	} {
		require.Contains(t, out, line)
	}
}

func TestShowApplicationsResolvesJobNames(t *testing.T) {
	var buf bytes.Buffer
	presentation.NewConsole(&buf, jobsByID{2: starbucks}).ShowApplications([]persistence.Application{
		{UserName: "abc", JobID: 2, Status: "applied"},
		{UserName: "abc", JobID: 9, Status: "reviewed"},
	})

	out := buf.String()
	require.Contains(t, out, "Application status for abc\n")
	require.Contains(t, out, "1) job name: Starbucks | status: applied\n")
	require.Contains(t, out, "2) job name: #9 | status: reviewed\n")
}

func TestShowApplicationsEmptyWritesNothing(t *testing.T) {
	var buf bytes.Buffer
	presentation.NewConsole(&buf, nil).ShowApplications(nil)
	require.Empty(t, buf.String())
}
