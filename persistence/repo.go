package persistence

// Gateway is the single access point to stored users, jobs, applications and adaptation data.
// All operations run to completion synchronously. Only RecordApplication and UpdateApplicationStatus mutate.
type Gateway interface {
	// FindRoles returns the complete, fixed catalog of recognised role names
	FindRoles() []string

	// FindCredentialsByName returns the stored credentials for name, or ErrNoSuchUser
	FindCredentialsByName(name string) (Credentials, error)

	// FindJobByID returns the posting with the given id, or ErrNoSuchJob
	FindJobByID(id int) (JobPosting, error)

	// SearchJobs returns the postings that contain keyword in their name, category or description,
	// location in their location and category in their category. An empty filter matches anything. No match is an empty slice and a nil error.
	SearchJobs(keyword, location, category string) ([]JobPosting, error)

	// RecordApplication creates an "applied" application, returning false without change if one exists
	RecordApplication(userName string, jobID int) (bool, error)

	// ListApplications returns every application made by userName
	ListApplications(userName string) ([]Application, error)

	// UpdateApplicationStatus sets the status of an existing application, or returns ErrNoSuchApplication
	UpdateApplicationStatus(userName string, jobID int, status string) error

	// ConfigValue returns the adaptation data value for key, or ErrNoSuchProperty
	ConfigValue(key string) (string, error)

	// Close releases the gateway
	Close() error
}
