package user

import (
	"github.com/induspriya/attendance-portal/internal/pkg/validator"
)

type UserResponse struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Email      string  `json:"email"`
	Role       string  `json:"role"`
	Department *string `json:"department,omitempty"`
	Position   *string `json:"position,omitempty"`
	IsActive   bool    `json:"is_active"`
	CreatedAt  string  `json:"created_at"`
}

type ListUsersFilter struct {
	Role       *string `json:"role,omitempty"`
	Department *string `json:"department,omitempty"`
	Search     *string `json:"search,omitempty"` // matches name or email

	Page  int `json:"page"`
	Limit int `json:"limit"`
}

func (f *ListUsersFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Page < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "page",
			Message: "page must be a positive number",
		})
	}
	if f.Page == 0 {
		f.Page = 1
	}

	if f.Limit < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must be a positive number",
		})
	}
	if f.Limit == 0 {
		f.Limit = 20
	}
	if f.Limit > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must not exceed 100",
		})
	}

	if f.Role != nil && !ValidRole(Role(*f.Role)) {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "role must be one of: employee, manager, hr, admin",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateRoleRequest struct {
	ID   string `json:"-"`
	Role string `json:"role"`
}

func (r *UpdateRoleRequest) Validate() error {
	var errs validator.ValidationErrors

	if !ValidRole(Role(r.Role)) {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "role must be one of: employee, manager, hr, admin",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ListUsersResponse struct {
	TotalCount int64          `json:"total_count"`
	Page       int            `json:"page"`
	Limit      int            `json:"limit"`
	TotalPages int            `json:"total_pages"`
	Users      []UserResponse `json:"users"`
}
