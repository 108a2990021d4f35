package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/induspriya/attendance-portal/internal/domain/holiday"
	"github.com/induspriya/attendance-portal/internal/pkg/database"
)

type holidayRepository struct {
	db *database.DB
}

func NewHolidayRepository(db *database.DB) holiday.HolidayRepository {
	return &holidayRepository{db: db}
}

const holidayColumns = `id, name, date, type, description, created_at`

func scanHoliday(row pgx.Row) (holiday.Holiday, error) {
	var h holiday.Holiday
	err := row.Scan(&h.ID, &h.Name, &h.Date, &h.Type, &h.Description, &h.CreatedAt)
	return h, err
}

// Create implements holiday.HolidayRepository.
func (r *holidayRepository) Create(ctx context.Context, h holiday.Holiday) (holiday.Holiday, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO holidays (id, name, date, type, description)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at
	`

	err := q.QueryRow(ctx, query, h.ID, h.Name, h.Date, h.Type, h.Description).Scan(&h.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return holiday.Holiday{}, holiday.ErrDuplicateDate
		}
		return holiday.Holiday{}, fmt.Errorf("failed to create holiday: %w", err)
	}

	return h, nil
}

// GetByID implements holiday.HolidayRepository.
func (r *holidayRepository) GetByID(ctx context.Context, id string) (holiday.Holiday, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + holidayColumns + `
		FROM holidays
		WHERE id = $1
	`

	h, err := scanHoliday(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return holiday.Holiday{}, holiday.ErrHolidayNotFound
		}
		return holiday.Holiday{}, fmt.Errorf("failed to get holiday by ID: %w", err)
	}

	return h, nil
}

// List implements holiday.HolidayRepository.
func (r *holidayRepository) List(ctx context.Context, filter holiday.ListFilter) ([]holiday.Holiday, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"1=1"}
	args := []interface{}{}
	argPos := 1

	if filter.Year != nil {
		conditions = append(conditions, fmt.Sprintf("EXTRACT(YEAR FROM date) = $%d", argPos))
		args = append(args, *filter.Year)
		argPos++
	}
	if filter.Month != nil {
		conditions = append(conditions, fmt.Sprintf("EXTRACT(MONTH FROM date) = $%d", argPos))
		args = append(args, *filter.Month)
		argPos++
	}
	if filter.Type != nil {
		conditions = append(conditions, fmt.Sprintf("type = $%d", argPos))
		args = append(args, *filter.Type)
		argPos++
	}

	query := `
		SELECT ` + holidayColumns + `
		FROM holidays
		WHERE ` + strings.Join(conditions, " AND ") + `
		ORDER BY date ASC
	`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list holidays: %w", err)
	}
	defer rows.Close()

	var holidays []holiday.Holiday
	for rows.Next() {
		h, err := scanHoliday(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan holiday: %w", err)
		}
		holidays = append(holidays, h)
	}

	return holidays, rows.Err()
}

// Upcoming implements holiday.HolidayRepository.
func (r *holidayRepository) Upcoming(ctx context.Context, from time.Time, n int) ([]holiday.Holiday, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + holidayColumns + `
		FROM holidays
		WHERE date >= $1
		ORDER BY date ASC
		LIMIT $2
	`

	rows, err := q.Query(ctx, query, from, n)
	if err != nil {
		return nil, fmt.Errorf("failed to list upcoming holidays: %w", err)
	}
	defer rows.Close()

	var holidays []holiday.Holiday
	for rows.Next() {
		h, err := scanHoliday(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan holiday: %w", err)
		}
		holidays = append(holidays, h)
	}

	return holidays, rows.Err()
}

// Update implements holiday.HolidayRepository.
func (r *holidayRepository) Update(ctx context.Context, h holiday.Holiday) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE holidays
		SET name = $1, date = $2, type = $3, description = $4
		WHERE id = $5
	`

	tag, err := q.Exec(ctx, query, h.Name, h.Date, h.Type, h.Description, h.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return holiday.ErrDuplicateDate
		}
		return fmt.Errorf("failed to update holiday: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return holiday.ErrHolidayNotFound
	}

	return nil
}

// Delete implements holiday.HolidayRepository.
func (r *holidayRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM holidays WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete holiday: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return holiday.ErrHolidayNotFound
	}

	return nil
}
