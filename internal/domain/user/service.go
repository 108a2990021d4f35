package user

import "context"

// UserService defines profile and administration operations over accounts.
type UserService interface {
	// GetProfile returns the authenticated user's own profile.
	GetProfile(ctx context.Context, userID string) (UserResponse, error)

	// ListUsers retrieves accounts for administration
	ListUsers(ctx context.Context, filter ListUsersFilter) (ListUsersResponse, error)

	// UpdateRole changes an account's role
	UpdateRole(ctx context.Context, req UpdateRoleRequest) (UserResponse, error)

	// Deactivate disables an account without deleting it
	Deactivate(ctx context.Context, id string) error

	// Activate re-enables a previously deactivated account
	Activate(ctx context.Context, id string) error
}
