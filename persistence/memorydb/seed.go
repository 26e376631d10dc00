package memorydb

import "github.com/jrsteele09/go-jobsearch/persistence"

func seedUsers() []persistence.Credentials {
	return []persistence.Credentials{
		{UserName: "Tom", PassPhrase: "CPSC 462 Rocks!", Roles: []string{"Borrower", "Management"}},
		{UserName: "abcde11", PassPhrase: "abcde11", Roles: []string{"Borrower"}},
		{UserName: "admin", PassPhrase: "admin", Roles: []string{"Administrator"}},
		{UserName: "Hyejin", PassPhrase: "12345", Roles: []string{"JobSeeker"}},
		{UserName: "abc", PassPhrase: "abc", Roles: []string{"JobSeeker"}},
		{UserName: "abcd", PassPhrase: "abcd", Roles: []string{"Borrower"}},
	}
}

func seedJobs() []persistence.JobPosting {
	return []persistence.JobPosting{
		{
			ID: 1, Name: "Burger King", Location: "Fullerton", Category: "Server", Type: "Part time",
			Description: "Description about server at Burger King", Qualification: "over 19", Salary: "15$ / hour",
		},
		{
			ID: 2, Name: "Starbucks", Location: "Fullerton", Category: "Barista", Type: "Full time",
			Description: "Description about barista at Starbucks", Qualification: "over 21", Salary: "19$ / hour",
		},
		{
			ID: 3, Name: "Health Kitchen", Location: "Las Vegas", Category: "Chef", Type: "Full time",
			Description: "Description about chef at Health Kitchen", Qualification: "over 25", Salary: "50$ / hour",
		},
	}
}

func seedApplications() []persistence.Application {
	return []persistence.Application{
		{UserName: "Hyejin", JobID: 1, Status: "reviewed"},
	}
}
