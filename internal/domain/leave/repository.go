package leave

import (
	"context"
	"time"
)

// LeaveRepository defines data access for leave requests. Status transitions
// and the pending-only delete are conditional statements keyed on the
// expected pre-transition status, so concurrent reviews cannot both win.
type LeaveRepository interface {
	// InTransaction runs fn with every repository call made through fn's ctx
	// sharing one database transaction.
	InTransaction(ctx context.Context, fn func(ctx context.Context) error) error

	Create(ctx context.Context, req Request) (Request, error)

	// GetByID returns ErrRequestNotFound when the ID is unknown.
	GetByID(ctx context.Context, id string) (Request, error)

	// HasOverlapping reports whether the user holds a request with status in
	// ActiveStatuses whose range intersects [from, to].
	HasOverlapping(ctx context.Context, userID string, from, to time.Time) (bool, error)

	// TransitionStatus moves id from expected to next, stamping the
	// reviewer. Returns false when the row no longer holds expected.
	TransitionStatus(ctx context.Context, id string, expected, next Status, reviewerID string, reviewedAt time.Time, rejectionReason *string) (bool, error)

	// DeleteIfPending removes the request only while its status is pending;
	// returns false when the status had already moved on.
	DeleteIfPending(ctx context.Context, id string) (bool, error)

	// ListByUser returns the user's requests matching the filter, from date
	// descending.
	ListByUser(ctx context.Context, userID string, filter MineFilter) ([]Request, error)

	// ListByStatus returns requests in the given status ascending by from
	// date, joined with the requester's name, department and position.
	ListByStatus(ctx context.Context, status Status) ([]Request, error)
}
