package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/induspriya/attendance-portal/internal/domain/leave"
	"github.com/induspriya/attendance-portal/internal/pkg/database"
)

type leaveRepository struct {
	db *database.DB
}

func NewLeaveRepository(db *database.DB) leave.LeaveRepository {
	return &leaveRepository{db: db}
}

const leaveColumns = `id, user_id, from_date, to_date, type, reason, status,
	total_days, approved_by, approved_at, rejection_reason, created_at, updated_at`

func scanLeave(row pgx.Row) (leave.Request, error) {
	var req leave.Request
	err := row.Scan(
		&req.ID, &req.UserID, &req.FromDate, &req.ToDate, &req.Type, &req.Reason,
		&req.Status, &req.TotalDays, &req.ApprovedBy, &req.ApprovedAt,
		&req.RejectionReason, &req.CreatedAt, &req.UpdatedAt,
	)
	return req, err
}

// InTransaction implements leave.LeaveRepository.
func (l *leaveRepository) InTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return WithTransaction(ctx, l.db, fn)
}

// Create implements leave.LeaveRepository.
func (l *leaveRepository) Create(ctx context.Context, req leave.Request) (leave.Request, error) {
	q := GetQuerier(ctx, l.db)

	query := `
		INSERT INTO leave_requests (
			id, user_id, from_date, to_date, type, reason, status, total_days
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		req.ID, req.UserID, req.FromDate, req.ToDate, req.Type,
		req.Reason, req.Status, req.TotalDays,
	).Scan(&req.CreatedAt, &req.UpdatedAt)
	if err != nil {
		return leave.Request{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	return req, nil
}

// GetByID implements leave.LeaveRepository.
func (l *leaveRepository) GetByID(ctx context.Context, id string) (leave.Request, error) {
	q := GetQuerier(ctx, l.db)

	query := `
		SELECT ` + leaveColumns + `
		FROM leave_requests
		WHERE id = $1
	`

	req, err := scanLeave(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.Request{}, leave.ErrRequestNotFound
		}
		return leave.Request{}, fmt.Errorf("failed to get leave request by ID: %w", err)
	}

	return req, nil
}

// HasOverlapping implements leave.LeaveRepository. Two inclusive ranges
// intersect when each starts no later than the other ends.
func (l *leaveRepository) HasOverlapping(ctx context.Context, userID string, from, to time.Time) (bool, error) {
	q := GetQuerier(ctx, l.db)

	statuses := make([]string, len(leave.ActiveStatuses))
	for i, s := range leave.ActiveStatuses {
		statuses[i] = string(s)
	}

	query := `
		SELECT EXISTS (
			SELECT 1
			FROM leave_requests
			WHERE user_id = $1
			  AND status = ANY($2)
			  AND from_date <= $3
			  AND to_date >= $4
		)
	`

	var exists bool
	if err := q.QueryRow(ctx, query, userID, statuses, to, from).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check overlapping leave: %w", err)
	}

	return exists, nil
}

// TransitionStatus implements leave.LeaveRepository. The status = expected
// guard makes concurrent reviews of the same request resolve to a single
// winner; the loser sees zero rows affected.
func (l *leaveRepository) TransitionStatus(ctx context.Context, id string, expected, next leave.Status, reviewerID string, reviewedAt time.Time, rejectionReason *string) (bool, error) {
	q := GetQuerier(ctx, l.db)

	query := `
		UPDATE leave_requests
		SET status = $1,
		    approved_by = $2,
		    approved_at = $3,
		    rejection_reason = $4,
		    updated_at = NOW()
		WHERE id = $5
		  AND status = $6
	`

	tag, err := q.Exec(ctx, query, next, reviewerID, reviewedAt, rejectionReason, id, expected)
	if err != nil {
		return false, fmt.Errorf("failed to transition leave status: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}

// DeleteIfPending implements leave.LeaveRepository.
func (l *leaveRepository) DeleteIfPending(ctx context.Context, id string) (bool, error) {
	q := GetQuerier(ctx, l.db)

	query := `
		DELETE FROM leave_requests
		WHERE id = $1
		  AND status = $2
	`

	tag, err := q.Exec(ctx, query, id, leave.StatusPending)
	if err != nil {
		return false, fmt.Errorf("failed to delete pending leave request: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}

// ListByUser implements leave.LeaveRepository.
func (l *leaveRepository) ListByUser(ctx context.Context, userID string, filter leave.MineFilter) ([]leave.Request, error) {
	q := GetQuerier(ctx, l.db)

	conditions := []string{"user_id = $1"}
	args := []interface{}{userID}
	argPos := 2

	if filter.Status != nil {
		conditions = append(conditions, fmt.Sprintf("status = $%d", argPos))
		args = append(args, *filter.Status)
		argPos++
	}
	if filter.Year != nil {
		conditions = append(conditions, fmt.Sprintf("EXTRACT(YEAR FROM from_date) = $%d", argPos))
		args = append(args, *filter.Year)
		argPos++
	}

	query := `
		SELECT ` + leaveColumns + `
		FROM leave_requests
		WHERE ` + strings.Join(conditions, " AND ") + `
		ORDER BY from_date DESC
	`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests by user: %w", err)
	}
	defer rows.Close()

	var requests []leave.Request
	for rows.Next() {
		req, err := scanLeave(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan leave request: %w", err)
		}
		requests = append(requests, req)
	}

	return requests, rows.Err()
}

// ListByStatus implements leave.LeaveRepository.
func (l *leaveRepository) ListByStatus(ctx context.Context, status leave.Status) ([]leave.Request, error) {
	q := GetQuerier(ctx, l.db)

	query := `
		SELECT lr.id, lr.user_id, lr.from_date, lr.to_date, lr.type, lr.reason,
		       lr.status, lr.total_days, lr.approved_by, lr.approved_at,
		       lr.rejection_reason, lr.created_at, lr.updated_at,
		       u.name AS user_name,
		       u.department AS user_department,
		       u.position AS user_position
		FROM leave_requests lr
		LEFT JOIN users u ON u.id = lr.user_id
		WHERE lr.status = $1
		ORDER BY lr.from_date ASC
	`

	rows, err := q.Query(ctx, query, status)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests by status: %w", err)
	}
	defer rows.Close()

	var requests []leave.Request
	for rows.Next() {
		var req leave.Request
		err := rows.Scan(
			&req.ID, &req.UserID, &req.FromDate, &req.ToDate, &req.Type, &req.Reason,
			&req.Status, &req.TotalDays, &req.ApprovedBy, &req.ApprovedAt,
			&req.RejectionReason, &req.CreatedAt, &req.UpdatedAt,
			&req.UserName, &req.UserDepartment, &req.UserPosition,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan leave request: %w", err)
		}
		requests = append(requests, req)
	}

	return requests, rows.Err()
}
