package news

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/induspriya/attendance-portal/internal/domain/news"
)

type fakeNewsRepo struct {
	articles map[string]news.Article
}

func newFakeNewsRepo() *fakeNewsRepo {
	return &fakeNewsRepo{articles: make(map[string]news.Article)}
}

func (f *fakeNewsRepo) Create(ctx context.Context, a news.Article) (news.Article, error) {
	a.CreatedAt = time.Now()
	a.UpdatedAt = a.CreatedAt
	f.articles[a.ID] = a
	return a, nil
}

func (f *fakeNewsRepo) GetByID(ctx context.Context, id string) (news.Article, error) {
	a, ok := f.articles[id]
	if !ok {
		return news.Article{}, news.ErrArticleNotFound
	}
	return a, nil
}

func (f *fakeNewsRepo) ListVisible(ctx context.Context, filter news.ListFilter, now time.Time) ([]news.Article, int64, error) {
	var out []news.Article
	for _, a := range f.articles {
		if !a.Visible(now) {
			continue
		}
		if filter.Category != nil && a.Category != *filter.Category {
			continue
		}
		if filter.Priority != nil && string(a.Priority) != *filter.Priority {
			continue
		}
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].PublishedAt.After(*out[j].PublishedAt)
	})
	return out, int64(len(out)), nil
}

func (f *fakeNewsRepo) Update(ctx context.Context, a news.Article) error {
	if _, ok := f.articles[a.ID]; !ok {
		return news.ErrArticleNotFound
	}
	f.articles[a.ID] = a
	return nil
}

func (f *fakeNewsRepo) SetPublished(ctx context.Context, id string, published bool, publishedAt time.Time) error {
	a, ok := f.articles[id]
	if !ok {
		return news.ErrArticleNotFound
	}
	a.IsPublished = published
	if published && a.PublishedAt == nil {
		a.PublishedAt = &publishedAt
	}
	f.articles[id] = a
	return nil
}

func (f *fakeNewsRepo) Delete(ctx context.Context, id string) error {
	if _, ok := f.articles[id]; !ok {
		return news.ErrArticleNotFound
	}
	delete(f.articles, id)
	return nil
}

var newsClock = func() time.Time {
	return time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
}

func validArticle() news.CreateRequest {
	return news.CreateRequest{
		Title:    "Office closed on Friday",
		Content:  "The office will remain closed for maintenance.",
		Category: "announcement",
		Publish:  true,
	}
}

func TestNewsService_Create_DefaultsPriority(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := NewNewsService(newFakeNewsRepo(), newsClock)

	created, err := svc.Create(ctx, validArticle())
	require.NoError(t, err)

	assert.Equal(t, "normal", created.Priority)
	assert.True(t, created.IsPublished)
	require.NotNil(t, created.PublishedAt)
}

func TestNewsService_List_HidesDraftsAndExpired(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := NewNewsService(newFakeNewsRepo(), newsClock)

	published, err := svc.Create(ctx, validArticle())
	require.NoError(t, err)

	draft := validArticle()
	draft.Title = "Draft article"
	draft.Publish = false
	_, err = svc.Create(ctx, draft)
	require.NoError(t, err)

	expired := validArticle()
	expired.Title = "Expired article"
	past := newsClock().Add(-time.Hour).Format(time.RFC3339)
	expired.ExpiresAt = &past
	_, err = svc.Create(ctx, expired)
	require.NoError(t, err)

	result, err := svc.List(ctx, news.ListFilter{})
	require.NoError(t, err)

	require.Len(t, result.News, 1)
	assert.Equal(t, published.ID, result.News[0].ID)
	assert.Equal(t, int64(1), result.Pagination.TotalCount)
}

func TestNewsService_PublishUnpublish(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := NewNewsService(newFakeNewsRepo(), newsClock)

	draft := validArticle()
	draft.Publish = false
	created, err := svc.Create(ctx, draft)
	require.NoError(t, err)
	assert.Nil(t, created.PublishedAt)

	published, err := svc.Publish(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, published.IsPublished)
	require.NotNil(t, published.PublishedAt)
	firstPublishedAt := *published.PublishedAt

	unpublished, err := svc.Unpublish(ctx, created.ID)
	require.NoError(t, err)
	assert.False(t, unpublished.IsPublished)

	// published_at survives republication.
	republished, err := svc.Publish(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, republished.PublishedAt)
	assert.Equal(t, firstPublishedAt, *republished.PublishedAt)
}

func TestNewsService_Update_InvalidExpiry(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := NewNewsService(newFakeNewsRepo(), newsClock)

	created, err := svc.Create(ctx, validArticle())
	require.NoError(t, err)

	bad := "not-a-timestamp"
	_, err = svc.Update(ctx, news.UpdateRequest{ID: created.ID, ExpiresAt: &bad})
	assert.Error(t, err)
}

func TestNewsService_Get_NotFound(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := NewNewsService(newFakeNewsRepo(), newsClock)

	_, err := svc.Get(ctx, "missing")
	assert.ErrorIs(t, err, news.ErrArticleNotFound)
}
