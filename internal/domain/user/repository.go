package user

import "context"

// UserRepository defines data access methods for user accounts.
type UserRepository interface {
	// Create inserts a new user; returns ErrEmailExists on a duplicate email.
	Create(ctx context.Context, u User) (User, error)

	GetByID(ctx context.Context, id string) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)

	// List retrieves users matching the filter, newest first.
	List(ctx context.Context, filter ListUsersFilter) ([]User, int64, error)

	UpdateRole(ctx context.Context, id string, role Role) error

	// SetActive toggles the account. Users are never hard-deleted.
	SetActive(ctx context.Context, id string, active bool) error
}
