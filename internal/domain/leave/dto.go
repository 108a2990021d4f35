package leave

import (
	"strings"

	"github.com/induspriya/attendance-portal/internal/pkg/validator"
)

const minReasonLength = 10

const (
	DecisionApproved = "approved"
	DecisionRejected = "rejected"
)

// ApplyRequest is the body of POST /api/leaves/apply.
type ApplyRequest struct {
	From   string `json:"from"` // YYYY-MM-DD
	To     string `json:"to"`   // YYYY-MM-DD
	Type   string `json:"type"`
	Reason string `json:"reason"`
}

func (r *ApplyRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDate(r.From); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "from",
			Message: "from must be in YYYY-MM-DD format",
		})
	}

	if _, ok := validator.IsValidDate(r.To); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "to",
			Message: "to must be in YYYY-MM-DD format",
		})
	}

	if !ValidType(Type(r.Type)) {
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "unknown leave type",
		})
	}

	if len(strings.TrimSpace(r.Reason)) < minReasonLength {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "reason must be at least 10 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ReviewRequest carries a manager or HR decision on a leave request.
type ReviewRequest struct {
	LeaveID         string  `json:"-"`
	ReviewerID      string  `json:"-"`
	Decision        string  `json:"status"`
	Comments        *string `json:"comments,omitempty"`
	RejectionReason *string `json:"rejection_reason,omitempty"`
}

func (r *ReviewRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Decision != DecisionApproved && r.Decision != DecisionRejected {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of: approved, rejected",
		})
	}

	if r.Decision == DecisionRejected &&
		(r.RejectionReason == nil || validator.IsEmpty(*r.RejectionReason)) {
		errs = append(errs, validator.ValidationError{
			Field:   "rejection_reason",
			Message: "rejection_reason is required when rejecting",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type RequestResponse struct {
	ID              string  `json:"id"`
	UserID          string  `json:"user_id"`
	UserName        *string `json:"user_name,omitempty"`
	UserDepartment  *string `json:"user_department,omitempty"`
	UserPosition    *string `json:"user_position,omitempty"`
	From            string  `json:"from"`
	To              string  `json:"to"`
	Type            string  `json:"type"`
	Reason          string  `json:"reason"`
	Status          string  `json:"status"`
	TotalDays       int     `json:"total_days"`
	ApprovedBy      *string `json:"approved_by,omitempty"`
	ApprovedAt      *string `json:"approved_at,omitempty"`
	RejectionReason *string `json:"rejection_reason,omitempty"`
	CreatedAt       string  `json:"created_at"`
}

// MineFilter narrows GET /api/leaves/me.
type MineFilter struct {
	Status *string `json:"status,omitempty"`
	Year   *int    `json:"year,omitempty"`
}

func (f *MineFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Status != nil && !ValidStatus(Status(*f.Status)) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of: pending, manager_approved, manager_rejected, hr_approved, hr_rejected",
		})
	}

	if f.Year != nil && (*f.Year < 2000 || *f.Year > 2100) {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: "year must be between 2000 and 2100",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// MineSummary aggregates a user's own requests.
type MineSummary struct {
	CountsByStatus map[string]int `json:"counts_by_status"`
	Pending        int            `json:"pending"`
	Approved       int            `json:"approved"`
	Rejected       int            `json:"rejected"`
	TotalDays      int            `json:"total_days"`
}

type MineResponse struct {
	Leaves  []RequestResponse `json:"leaves"`
	Summary MineSummary       `json:"summary"`
}

type PendingResponse struct {
	Leaves []RequestResponse `json:"leaves"`
}
