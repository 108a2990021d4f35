package news

import (
	"context"
	"time"
)

type NewsRepository interface {
	Create(ctx context.Context, a Article) (Article, error)

	GetByID(ctx context.Context, id string) (Article, error)

	// ListVisible returns published, unexpired articles matching the
	// filter, published_at descending, with the total visible count.
	ListVisible(ctx context.Context, filter ListFilter, now time.Time) ([]Article, int64, error)

	Update(ctx context.Context, a Article) error

	// SetPublished flips publication state, stamping published_at when
	// publishing for the first time.
	SetPublished(ctx context.Context, id string, published bool, publishedAt time.Time) error

	Delete(ctx context.Context, id string) error
}
