package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/induspriya/attendance-portal/internal/domain/news"
	"github.com/induspriya/attendance-portal/internal/pkg/database"
)

type newsRepository struct {
	db *database.DB
}

func NewNewsRepository(db *database.DB) news.NewsRepository {
	return &newsRepository{db: db}
}

const newsColumns = `id, title, content, category, priority, is_published,
	published_at, expires_at, created_at, updated_at`

func scanArticle(row pgx.Row) (news.Article, error) {
	var a news.Article
	err := row.Scan(
		&a.ID, &a.Title, &a.Content, &a.Category, &a.Priority, &a.IsPublished,
		&a.PublishedAt, &a.ExpiresAt, &a.CreatedAt, &a.UpdatedAt,
	)
	return a, err
}

// Create implements news.NewsRepository.
func (r *newsRepository) Create(ctx context.Context, a news.Article) (news.Article, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO news_articles (
			id, title, content, category, priority, is_published, published_at, expires_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		a.ID, a.Title, a.Content, a.Category, a.Priority,
		a.IsPublished, a.PublishedAt, a.ExpiresAt,
	).Scan(&a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return news.Article{}, fmt.Errorf("failed to create news article: %w", err)
	}

	return a, nil
}

// GetByID implements news.NewsRepository.
func (r *newsRepository) GetByID(ctx context.Context, id string) (news.Article, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + newsColumns + `
		FROM news_articles
		WHERE id = $1
	`

	a, err := scanArticle(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return news.Article{}, news.ErrArticleNotFound
		}
		return news.Article{}, fmt.Errorf("failed to get news article by ID: %w", err)
	}

	return a, nil
}

// ListVisible implements news.NewsRepository.
func (r *newsRepository) ListVisible(ctx context.Context, filter news.ListFilter, now time.Time) ([]news.Article, int64, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"is_published = TRUE", "(expires_at IS NULL OR expires_at > $1)"}
	args := []interface{}{now}
	argPos := 2

	if filter.Category != nil {
		conditions = append(conditions, fmt.Sprintf("category = $%d", argPos))
		args = append(args, *filter.Category)
		argPos++
	}
	if filter.Priority != nil {
		conditions = append(conditions, fmt.Sprintf("priority = $%d", argPos))
		args = append(args, *filter.Priority)
		argPos++
	}

	where := strings.Join(conditions, " AND ")

	var total int64
	countQuery := `SELECT COUNT(*) FROM news_articles WHERE ` + where
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count news articles: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM news_articles
		WHERE %s
		ORDER BY published_at DESC
		LIMIT $%d OFFSET $%d
	`, newsColumns, where, argPos, argPos+1)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list news articles: %w", err)
	}
	defer rows.Close()

	var articles []news.Article
	for rows.Next() {
		a, err := scanArticle(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan news article: %w", err)
		}
		articles = append(articles, a)
	}

	return articles, total, rows.Err()
}

// Update implements news.NewsRepository.
func (r *newsRepository) Update(ctx context.Context, a news.Article) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE news_articles
		SET title = $1, content = $2, category = $3, priority = $4,
		    expires_at = $5, updated_at = NOW()
		WHERE id = $6
	`

	tag, err := q.Exec(ctx, query, a.Title, a.Content, a.Category, a.Priority, a.ExpiresAt, a.ID)
	if err != nil {
		return fmt.Errorf("failed to update news article: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return news.ErrArticleNotFound
	}

	return nil
}

// SetPublished implements news.NewsRepository. published_at keeps its first
// value across republications.
func (r *newsRepository) SetPublished(ctx context.Context, id string, published bool, publishedAt time.Time) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE news_articles
		SET is_published = $1,
		    published_at = CASE
		        WHEN $1 AND published_at IS NULL THEN $2
		        ELSE published_at
		    END,
		    updated_at = NOW()
		WHERE id = $3
	`

	tag, err := q.Exec(ctx, query, published, publishedAt, id)
	if err != nil {
		return fmt.Errorf("failed to set news publication state: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return news.ErrArticleNotFound
	}

	return nil
}

// Delete implements news.NewsRepository.
func (r *newsRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM news_articles WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete news article: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return news.ErrArticleNotFound
	}

	return nil
}
