package news

import (
	"context"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/induspriya/attendance-portal/internal/domain/news"
	"github.com/induspriya/attendance-portal/internal/pkg/validator"
)

type newsService struct {
	newsRepo news.NewsRepository
	now      func() time.Time
}

func NewNewsService(newsRepo news.NewsRepository, now func() time.Time) news.NewsService {
	if now == nil {
		now = time.Now
	}
	return &newsService{
		newsRepo: newsRepo,
		now:      now,
	}
}

// List implements news.NewsService.
func (s *newsService) List(ctx context.Context, filter news.ListFilter) (news.ListResponse, error) {
	if err := filter.Validate(); err != nil {
		return news.ListResponse{}, err
	}

	articles, total, err := s.newsRepo.ListVisible(ctx, filter, s.now())
	if err != nil {
		return news.ListResponse{}, err
	}

	responses := make([]news.ArticleResponse, 0, len(articles))
	for _, a := range articles {
		responses = append(responses, toArticleResponse(a))
	}

	return news.ListResponse{
		News: responses,
		Pagination: news.Pagination{
			TotalCount: total,
			Page:       filter.Page,
			Limit:      filter.Limit,
			TotalPages: int(math.Ceil(float64(total) / float64(filter.Limit))),
		},
	}, nil
}

// Get implements news.NewsService.
func (s *newsService) Get(ctx context.Context, id string) (news.ArticleResponse, error) {
	a, err := s.newsRepo.GetByID(ctx, id)
	if err != nil {
		return news.ArticleResponse{}, err
	}
	return toArticleResponse(a), nil
}

// Create implements news.NewsService.
func (s *newsService) Create(ctx context.Context, req news.CreateRequest) (news.ArticleResponse, error) {
	if err := req.Validate(); err != nil {
		return news.ArticleResponse{}, err
	}

	expiresAt, err := parseExpiry(req.ExpiresAt)
	if err != nil {
		return news.ArticleResponse{}, err
	}

	a := news.Article{
		ID:          uuid.New().String(),
		Title:       req.Title,
		Content:     req.Content,
		Category:    req.Category,
		Priority:    news.Priority(req.Priority),
		IsPublished: req.Publish,
		ExpiresAt:   expiresAt,
	}
	if req.Publish {
		now := s.now()
		a.PublishedAt = &now
	}

	created, err := s.newsRepo.Create(ctx, a)
	if err != nil {
		return news.ArticleResponse{}, err
	}

	return toArticleResponse(created), nil
}

// Update implements news.NewsService.
func (s *newsService) Update(ctx context.Context, req news.UpdateRequest) (news.ArticleResponse, error) {
	if err := req.Validate(); err != nil {
		return news.ArticleResponse{}, err
	}

	a, err := s.newsRepo.GetByID(ctx, req.ID)
	if err != nil {
		return news.ArticleResponse{}, err
	}

	if req.Title != nil {
		a.Title = *req.Title
	}
	if req.Content != nil {
		a.Content = *req.Content
	}
	if req.Category != nil {
		a.Category = *req.Category
	}
	if req.Priority != nil {
		a.Priority = news.Priority(*req.Priority)
	}
	if req.ExpiresAt != nil {
		expiresAt, err := parseExpiry(req.ExpiresAt)
		if err != nil {
			return news.ArticleResponse{}, err
		}
		a.ExpiresAt = expiresAt
	}

	if err := s.newsRepo.Update(ctx, a); err != nil {
		return news.ArticleResponse{}, err
	}

	return toArticleResponse(a), nil
}

// Publish implements news.NewsService.
func (s *newsService) Publish(ctx context.Context, id string) (news.ArticleResponse, error) {
	return s.setPublished(ctx, id, true)
}

// Unpublish implements news.NewsService.
func (s *newsService) Unpublish(ctx context.Context, id string) (news.ArticleResponse, error) {
	return s.setPublished(ctx, id, false)
}

func (s *newsService) setPublished(ctx context.Context, id string, published bool) (news.ArticleResponse, error) {
	if err := s.newsRepo.SetPublished(ctx, id, published, s.now()); err != nil {
		return news.ArticleResponse{}, err
	}

	a, err := s.newsRepo.GetByID(ctx, id)
	if err != nil {
		return news.ArticleResponse{}, err
	}

	return toArticleResponse(a), nil
}

// Delete implements news.NewsService.
func (s *newsService) Delete(ctx context.Context, id string) error {
	return s.newsRepo.Delete(ctx, id)
}

func parseExpiry(raw *string) (*time.Time, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, *raw)
	if err != nil {
		return nil, validator.ValidationErrors{{
			Field:   "expires_at",
			Message: "expires_at must be an RFC3339 timestamp",
		}}
	}
	return &t, nil
}

func toArticleResponse(a news.Article) news.ArticleResponse {
	resp := news.ArticleResponse{
		ID:          a.ID,
		Title:       a.Title,
		Content:     a.Content,
		Category:    a.Category,
		Priority:    string(a.Priority),
		IsPublished: a.IsPublished,
		CreatedAt:   a.CreatedAt.Format(time.RFC3339),
	}
	if a.PublishedAt != nil {
		t := a.PublishedAt.Format(time.RFC3339)
		resp.PublishedAt = &t
	}
	if a.ExpiresAt != nil {
		t := a.ExpiresAt.Format(time.RFC3339)
		resp.ExpiresAt = &t
	}
	return resp
}
