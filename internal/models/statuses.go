package models

type UserRole string
type ApplicationStatus string

const (
	UserRoleJobseeker UserRole = "Jobseeker"
	UserRoleRecruiter UserRole = "Recruiter"
	UserRoleAdmin     UserRole = "Admin"

	// Applied is the initial application state; the other three are terminal.
	ApplicationStatusApplied   ApplicationStatus = "Applied"
	ApplicationStatusHired     ApplicationStatus = "Hired"
	ApplicationStatusRejected  ApplicationStatus = "Rejected"
	ApplicationStatusCancelled ApplicationStatus = "Cancelled"
)

// ValidRole reports whether role is one of the known roles.
func ValidRole(role UserRole) bool {
	switch role {
	case UserRoleJobseeker, UserRoleRecruiter, UserRoleAdmin:
		return true
	}
	return false
}

// TerminalStatus reports whether an application can no longer transition.
func TerminalStatus(status ApplicationStatus) bool {
	return status != ApplicationStatusApplied
}
