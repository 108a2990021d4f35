package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access for attendance records. State
// transitions are single conditional statements so concurrent marks for the
// same (user, day) resolve to exactly one winner.
type AttendanceRepository interface {
	// Create inserts the day's record. The (user_id, date) uniqueness
	// constraint makes a second insert fail with ErrAlreadyCheckedIn.
	Create(ctx context.Context, rec Record) (Record, error)

	// GetByUserAndDate returns nil without error when no record exists.
	GetByUserAndDate(ctx context.Context, userID string, date time.Time) (*Record, error)

	// SetCheckOut updates the record only while check_out_time is still
	// unset; returns ErrAlreadyCheckedOut when no row matched.
	SetCheckOut(ctx context.Context, id string, checkOut time.Time, location *string, totalHours float64) (Record, error)

	// ListByUserAndRange returns records with date in [from, to], ascending.
	ListByUserAndRange(ctx context.Context, userID string, from, to time.Time) ([]Record, error)

	GetByID(ctx context.Context, id string) (Record, error)

	Update(ctx context.Context, rec Record) error

	// List retrieves records with filters and pagination, newest first,
	// joined with the user's name and department.
	List(ctx context.Context, filter ListFilter) ([]Record, int64, error)
}
