package attendance

import "context"

// AttendanceService owns the daily check-in/check-out state machine.
type AttendanceService interface {
	// CheckIn creates today's record for the user. Fails with
	// ErrAlreadyCheckedIn when a check-in already exists for the day.
	CheckIn(ctx context.Context, userID string, location *string) (RecordResponse, error)

	// CheckOut closes today's record and computes total hours. Fails with
	// ErrNotCheckedIn or ErrAlreadyCheckedOut.
	CheckOut(ctx context.Context, userID string, location *string) (RecordResponse, error)

	// GetToday reports the user's state for the current calendar day.
	GetToday(ctx context.Context, userID string) (TodayResponse, error)

	// GetMonth returns the month's records ascending by date plus a summary.
	GetMonth(ctx context.Context, userID string, filter MonthFilter) (MonthResponse, error)

	// List retrieves records across users (admin/hr).
	List(ctx context.Context, filter ListFilter) (ListResponse, error)

	// Get retrieves a single record by ID (admin/hr).
	Get(ctx context.Context, id string) (RecordResponse, error)

	// Update fixes a record's times or status (admin/hr).
	Update(ctx context.Context, req UpdateRequest) (RecordResponse, error)
}
