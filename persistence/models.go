package persistence

import "slices"

// StatusApplied is the status every new application starts with
const StatusApplied = "applied"

// Credentials identify a stored user and the roles they may sign in as
type Credentials struct {
	UserName   string   // Unique user name, lookups are exact
	PassPhrase string   // Compared by equality, never hashed
	Roles      []string // Authorised role names, never empty for stored users
}

// Clone returns a copy that shares no backing storage with c
func (c Credentials) Clone() Credentials {
	c.Roles = slices.Clone(c.Roles)
	return c
}

type JobPosting struct {
	ID            int    // Assigned by the store, unique
	Name          string // Employer / posting name
	Location      string
	Category      string // Also searched by the keyword filter, as is Description
	Type          string // Employment type, e.g. "Full time"
	Description   string
	Qualification string
	Salary        string
}

// Application links a user to a job they applied for.
// At most one exists per (UserName, JobID).
type Application struct {
	UserName string
	JobID    int
	Status   string
}
