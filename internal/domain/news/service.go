package news

import "context"

type NewsService interface {
	// List returns currently visible articles with pagination metadata.
	List(ctx context.Context, filter ListFilter) (ListResponse, error)

	Get(ctx context.Context, id string) (ArticleResponse, error)

	Create(ctx context.Context, req CreateRequest) (ArticleResponse, error)
	Update(ctx context.Context, req UpdateRequest) (ArticleResponse, error)
	Publish(ctx context.Context, id string) (ArticleResponse, error)
	Unpublish(ctx context.Context, id string) (ArticleResponse, error)
	Delete(ctx context.Context, id string) error
}
