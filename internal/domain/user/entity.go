package user

import "time"

type Role string

const (
	RoleEmployee Role = "employee" // Regular employee
	RoleManager  Role = "manager"  // First approval stage for leave
	RoleHR       Role = "hr"       // Second approval stage for leave
	RoleAdmin    Role = "admin"    // Full access
)

func ValidRole(r Role) bool {
	switch r {
	case RoleEmployee, RoleManager, RoleHR, RoleAdmin:
		return true
	}
	return false
}

type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash *string
	Role         Role
	Department   *string
	Position     *string
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsAdmin checks if user has full access
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// CanReviewManagerStage checks if user can act on the manager approval stage
func (u *User) CanReviewManagerStage() bool {
	return u.Role == RoleManager || u.Role == RoleAdmin
}

// CanReviewHRStage checks if user can act on the HR approval stage
func (u *User) CanReviewHRStage() bool {
	return u.Role == RoleHR || u.Role == RoleAdmin
}
