package holiday

import "context"

type HolidayService interface {
	// List returns holidays matching year/month/type filters, date ascending.
	List(ctx context.Context, filter ListFilter) ([]HolidayResponse, error)

	// Upcoming returns the next n holidays from today.
	Upcoming(ctx context.Context, n int) ([]HolidayResponse, error)

	Create(ctx context.Context, req CreateRequest) (HolidayResponse, error)
	Update(ctx context.Context, req UpdateRequest) (HolidayResponse, error)
	Delete(ctx context.Context, id string) error
}
