package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/induspriya/attendance-portal/internal/domain/attendance"
	"github.com/induspriya/attendance-portal/internal/pkg/database"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

const attendanceColumns = `id, user_id, date, check_in_time, check_in_location,
	check_out_time, check_out_location, total_hours, status, created_at, updated_at`

func scanRecord(row pgx.Row) (attendance.Record, error) {
	var rec attendance.Record
	err := row.Scan(
		&rec.ID, &rec.UserID, &rec.Date, &rec.CheckInTime, &rec.CheckInLocation,
		&rec.CheckOutTime, &rec.CheckOutLocation, &rec.TotalHours, &rec.Status,
		&rec.CreatedAt, &rec.UpdatedAt,
	)
	return rec, err
}

// Create implements attendance.AttendanceRepository. The unique index on
// (user_id, date) turns a concurrent double check-in into ErrAlreadyCheckedIn
// for the loser without any read-modify-write window.
func (a *attendanceRepository) Create(ctx context.Context, rec attendance.Record) (attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		INSERT INTO attendance_records (
			id, user_id, date, check_in_time, check_in_location, status
		) VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		rec.ID, rec.UserID, rec.Date, rec.CheckInTime, rec.CheckInLocation, rec.Status,
	).Scan(&rec.CreatedAt, &rec.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return attendance.Record{}, attendance.ErrAlreadyCheckedIn
		}
		return attendance.Record{}, fmt.Errorf("failed to create attendance record: %w", err)
	}

	return rec, nil
}

// GetByUserAndDate implements attendance.AttendanceRepository.
func (a *attendanceRepository) GetByUserAndDate(ctx context.Context, userID string, date time.Time) (*attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendance_records
		WHERE user_id = $1 AND date = $2
		LIMIT 1
	`

	rec, err := scanRecord(q.QueryRow(ctx, query, userID, date))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // no record for this day
		}
		return nil, fmt.Errorf("failed to get attendance by user and date: %w", err)
	}

	return &rec, nil
}

// SetCheckOut implements attendance.AttendanceRepository. The WHERE clause
// only matches while check_out_time is unset, so a concurrent second
// check-out loses cleanly.
func (a *attendanceRepository) SetCheckOut(ctx context.Context, id string, checkOut time.Time, location *string, totalHours float64) (attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		UPDATE attendance_records
		SET check_out_time = $1,
		    check_out_location = $2,
		    total_hours = $3,
		    updated_at = NOW()
		WHERE id = $4
		  AND check_out_time IS NULL
		RETURNING ` + attendanceColumns + `
	`

	rec, err := scanRecord(q.QueryRow(ctx, query, checkOut, location, totalHours, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Record{}, attendance.ErrAlreadyCheckedOut
		}
		return attendance.Record{}, fmt.Errorf("failed to set check-out: %w", err)
	}

	return rec, nil
}

// ListByUserAndRange implements attendance.AttendanceRepository.
func (a *attendanceRepository) ListByUserAndRange(ctx context.Context, userID string, from, to time.Time) ([]attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendance_records
		WHERE user_id = $1 AND date >= $2 AND date <= $3
		ORDER BY date ASC
	`

	rows, err := q.Query(ctx, query, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance by range: %w", err)
	}
	defer rows.Close()

	var records []attendance.Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance record: %w", err)
		}
		records = append(records, rec)
	}

	return records, rows.Err()
}

// GetByID implements attendance.AttendanceRepository.
func (a *attendanceRepository) GetByID(ctx context.Context, id string) (attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT a.id, a.user_id, a.date, a.check_in_time, a.check_in_location,
		       a.check_out_time, a.check_out_location, a.total_hours, a.status,
		       a.created_at, a.updated_at,
		       u.name AS user_name,
		       u.department AS user_department
		FROM attendance_records a
		LEFT JOIN users u ON u.id = a.user_id
		WHERE a.id = $1
	`

	var rec attendance.Record
	err := q.QueryRow(ctx, query, id).Scan(
		&rec.ID, &rec.UserID, &rec.Date, &rec.CheckInTime, &rec.CheckInLocation,
		&rec.CheckOutTime, &rec.CheckOutLocation, &rec.TotalHours, &rec.Status,
		&rec.CreatedAt, &rec.UpdatedAt,
		&rec.UserName, &rec.UserDepartment,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Record{}, attendance.ErrRecordNotFound
		}
		return attendance.Record{}, fmt.Errorf("failed to get attendance by ID: %w", err)
	}

	return rec, nil
}

// Update implements attendance.AttendanceRepository.
func (a *attendanceRepository) Update(ctx context.Context, rec attendance.Record) error {
	q := GetQuerier(ctx, a.db)

	query := `
		UPDATE attendance_records
		SET check_in_time = $1,
		    check_in_location = $2,
		    check_out_time = $3,
		    check_out_location = $4,
		    total_hours = $5,
		    status = $6,
		    updated_at = NOW()
		WHERE id = $7
	`

	tag, err := q.Exec(ctx, query,
		rec.CheckInTime, rec.CheckInLocation,
		rec.CheckOutTime, rec.CheckOutLocation,
		rec.TotalHours, rec.Status, rec.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update attendance record: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrRecordNotFound
	}

	return nil
}

// List implements attendance.AttendanceRepository.
func (a *attendanceRepository) List(ctx context.Context, filter attendance.ListFilter) ([]attendance.Record, int64, error) {
	q := GetQuerier(ctx, a.db)

	conditions := []string{"1=1"}
	args := []interface{}{}
	argPos := 1

	if filter.UserID != nil {
		conditions = append(conditions, fmt.Sprintf("a.user_id = $%d", argPos))
		args = append(args, *filter.UserID)
		argPos++
	}
	if filter.Status != nil {
		conditions = append(conditions, fmt.Sprintf("a.status = $%d", argPos))
		args = append(args, *filter.Status)
		argPos++
	}
	if filter.StartDate != nil && *filter.StartDate != "" {
		conditions = append(conditions, fmt.Sprintf("a.date >= $%d", argPos))
		args = append(args, *filter.StartDate)
		argPos++
	}
	if filter.EndDate != nil && *filter.EndDate != "" {
		conditions = append(conditions, fmt.Sprintf("a.date <= $%d", argPos))
		args = append(args, *filter.EndDate)
		argPos++
	}

	where := strings.Join(conditions, " AND ")

	var total int64
	countQuery := `SELECT COUNT(*) FROM attendance_records a WHERE ` + where
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count attendance records: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT a.id, a.user_id, a.date, a.check_in_time, a.check_in_location,
		       a.check_out_time, a.check_out_location, a.total_hours, a.status,
		       a.created_at, a.updated_at,
		       u.name AS user_name,
		       u.department AS user_department
		FROM attendance_records a
		LEFT JOIN users u ON u.id = a.user_id
		WHERE %s
		ORDER BY a.date DESC, u.name ASC
		LIMIT $%d OFFSET $%d
	`, where, argPos, argPos+1)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list attendance records: %w", err)
	}
	defer rows.Close()

	var records []attendance.Record
	for rows.Next() {
		var rec attendance.Record
		err := rows.Scan(
			&rec.ID, &rec.UserID, &rec.Date, &rec.CheckInTime, &rec.CheckInLocation,
			&rec.CheckOutTime, &rec.CheckOutLocation, &rec.TotalHours, &rec.Status,
			&rec.CreatedAt, &rec.UpdatedAt,
			&rec.UserName, &rec.UserDepartment,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan attendance record: %w", err)
		}
		records = append(records, rec)
	}

	return records, total, rows.Err()
}
