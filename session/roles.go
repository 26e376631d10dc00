package session

import (
	"slices"

	"github.com/pkg/errors"
)

// Role selects the command table a session is built with
type Role string

const (
	RoleAdministrator Role = "Administrator"
	RoleBorrower      Role = "Borrower"
	RoleJobSeeker     Role = "JobSeeker"
	RoleManagement    Role = "Management"
)

// Command names as presented to the user
const (
	CmdSearchJob        = "Search Job"
	CmdGetJobInfo       = "Get Job Info"
	CmdApplyForJob      = "Apply for Job"
	CmdViewApplications = "View Applications"
	CmdTroubleshoot     = "Troubleshoot Issues"
	CmdViewLogs         = "View Logs"
	CmdSecurity         = "Security"
	CmdShutdownSystem   = "Shutdown System"
	CmdBugPeople        = "Bug People"
	CmdHelp             = "Help"
)

// roleAliases maps stored role names that predate the current catalog
var roleAliases = map[string]Role{
	"JobSeekerTroubleshoot": RoleBorrower,
}

// descriptions name the session variant in audit lines
var descriptions = map[Role]string{
	RoleAdministrator: "Administrator",
	RoleBorrower:      "JobSeekerTroubleshoot",
	RoleJobSeeker:     "JobSeeker",
	RoleManagement:    "Management",
}

// roleTables builds each role's command table. Several names may share one handler.
var roleTables = map[Role]func() CommandTable{
	RoleAdministrator: func() CommandTable {
		return CommandTable{
			CmdViewLogs:       placeholder(CmdViewLogs),
			CmdSecurity:       placeholder(CmdSecurity),
			CmdShutdownSystem: placeholder(CmdShutdownSystem),
		}
	},
	RoleBorrower: func() CommandTable {
		return CommandTable{
			CmdSearchJob:        searchJob,
			CmdGetJobInfo:       getJobInfo,
			CmdApplyForJob:      applyForJob,
			CmdViewApplications: viewApplications,
			CmdTroubleshoot:     viewApplications,
		}
	},
	RoleJobSeeker: func() CommandTable {
		return CommandTable{
			CmdSearchJob:        searchJob,
			CmdGetJobInfo:       getJobInfo,
			CmdApplyForJob:      applyForJob,
			CmdViewApplications: viewApplications,
		}
	},
	RoleManagement: func() CommandTable {
		return CommandTable{
			CmdBugPeople: placeholder(CmdBugPeople),
			CmdHelp:      placeholder(CmdHelp),
		}
	},
}

// Roles returns every role that has a command table
func Roles() []Role {
	return []Role{RoleAdministrator, RoleBorrower, RoleJobSeeker, RoleManagement}
}

// ParseRole resolves a stored or requested role name, including legacy aliases
func ParseRole(name string) (Role, bool) {
	if alias, ok := roleAliases[name]; ok {
		return alias, true
	}
	role := Role(name)
	if _, ok := roleTables[role]; !ok {
		return "", false
	}
	return role, true
}

// RoleCommands returns a fresh copy of the role's command table
func RoleCommands(role Role) (CommandTable, error) {
	build, ok := roleTables[role]
	if !ok {
		return nil, errors.Errorf("[RoleCommands] no command table for role %q", role)
	}
	return build(), nil
}

// Names returns the bound command names in sorted order
func (t CommandTable) Names() []string {
	names := make([]string, 0, len(t))
	for name := range t {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func (r Role) String() string {
	return string(r)
}

func (r Role) description() string {
	if d, ok := descriptions[r]; ok {
		return d
	}
	return "Undefined"
}
