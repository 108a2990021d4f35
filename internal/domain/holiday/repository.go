package holiday

import (
	"context"
	"time"
)

type HolidayRepository interface {
	// Create inserts a holiday; returns ErrDuplicateDate when a holiday
	// already exists on that date.
	Create(ctx context.Context, h Holiday) (Holiday, error)

	GetByID(ctx context.Context, id string) (Holiday, error)

	// List returns holidays matching the filter, ascending by date.
	List(ctx context.Context, filter ListFilter) ([]Holiday, error)

	// Upcoming returns the next n holidays on or after the given day.
	Upcoming(ctx context.Context, from time.Time, n int) ([]Holiday, error)

	Update(ctx context.Context, h Holiday) error

	Delete(ctx context.Context, id string) error
}
