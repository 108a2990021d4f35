package attendance

import (
	"strings"
	"time"

	"github.com/induspriya/attendance-portal/internal/pkg/validator"
)

const (
	MarkTypeCheckIn  = "check-in"
	MarkTypeCheckOut = "check-out"
)

// MarkRequest is the body of POST /api/attendance/mark.
type MarkRequest struct {
	Type     string  `json:"type"`
	Location *string `json:"location,omitempty"`
}

func (r *MarkRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Type != MarkTypeCheckIn && r.Type != MarkTypeCheckOut {
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "type must be one of: check-in, check-out",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type RecordResponse struct {
	ID               string   `json:"id"`
	UserID           string   `json:"user_id"`
	UserName         *string  `json:"user_name,omitempty"`
	UserDepartment   *string  `json:"user_department,omitempty"`
	Date             string   `json:"date"`
	CheckInTime      *string  `json:"check_in_time,omitempty"`
	CheckInLocation  *string  `json:"check_in_location,omitempty"`
	CheckOutTime     *string  `json:"check_out_time,omitempty"`
	CheckOutLocation *string  `json:"check_out_location,omitempty"`
	TotalHours       *float64 `json:"total_hours,omitempty"`
	Status           string   `json:"status"`
}

// TodayResponse answers GET /api/attendance/today. Status is "unmarked" when
// no record exists for the current day.
type TodayResponse struct {
	CheckedIn    bool    `json:"checked_in"`
	CheckedOut   bool    `json:"checked_out"`
	CheckInTime  *string `json:"check_in_time,omitempty"`
	CheckOutTime *string `json:"check_out_time,omitempty"`
	Status       string  `json:"status"`
}

type MonthSummary struct {
	TotalDays           int     `json:"total_days"`
	PresentDays         int     `json:"present_days"`
	AbsentDays          int     `json:"absent_days"`
	TotalWorkingHours   float64 `json:"total_working_hours"`
	AverageWorkingHours float64 `json:"average_working_hours"`
}

type MonthResponse struct {
	Attendance []RecordResponse `json:"attendance"`
	Summary    MonthSummary     `json:"summary"`
}

// MonthFilter selects the month window for GET /api/attendance/me.
type MonthFilter struct {
	Month int `json:"month"`
	Year  int `json:"year"`
}

func (f *MonthFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Month < 1 || f.Month > 12 {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be between 1 and 12",
		})
	}

	if f.Year < 2000 || f.Year > 2100 {
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

// ListFilter drives the admin listing.
type ListFilter struct {
	UserID    *string `json:"user_id,omitempty"`
	StartDate *string `json:"start_date,omitempty"` // YYYY-MM-DD
	EndDate   *string `json:"end_date,omitempty"`   // YYYY-MM-DD
	Status    *string `json:"status,omitempty"`

	Page  int `json:"page"`
	Limit int `json:"limit"`
}

func (f *ListFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Page < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "page",
			Message: "page must be a positive number",
		})
	}
	if f.Page == 0 {
		f.Page = 1
	}

	if f.Limit < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must be a positive number",
		})
	}
	if f.Limit == 0 {
		f.Limit = 20
	}
	if f.Limit > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must not exceed 100",
		})
	}

	if f.Status != nil && !ValidStatus(Status(*f.Status)) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of: present, absent, late, half_day",
		})
	}

	if f.StartDate != nil && *f.StartDate != "" {
		if _, valid := validator.IsValidDate(*f.StartDate); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "start_date",
				Message: "start_date must be in YYYY-MM-DD format",
			})
		}
	}

	if f.EndDate != nil && *f.EndDate != "" {
		if _, valid := validator.IsValidDate(*f.EndDate); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ListResponse struct {
	TotalCount int64            `json:"total_count"`
	Page       int              `json:"page"`
	Limit      int              `json:"limit"`
	TotalPages int              `json:"total_pages"`
	Records    []RecordResponse `json:"records"`
}

// UpdateRequest lets admins fix a record; total_hours is recomputed whenever
// both clock times end up set.
type UpdateRequest struct {
	ID           string  `json:"-"`
	CheckInTime  *string `json:"check_in_time,omitempty"`  // RFC3339
	CheckOutTime *string `json:"check_out_time,omitempty"` // RFC3339
	Status       *string `json:"status,omitempty"`
}

func (r *UpdateRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Status != nil && !ValidStatus(Status(strings.ToLower(*r.Status))) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of: present, absent, late, half_day",
		})
	}

	if r.CheckInTime != nil {
		if _, err := time.Parse(time.RFC3339, *r.CheckInTime); err != nil {
			errs = append(errs, validator.ValidationError{
				Field:   "check_in_time",
				Message: "check_in_time must be an RFC3339 timestamp",
			})
		}
	}

	if r.CheckOutTime != nil {
		if _, err := time.Parse(time.RFC3339, *r.CheckOutTime); err != nil {
			errs = append(errs, validator.ValidationError{
				Field:   "check_out_time",
				Message: "check_out_time must be an RFC3339 timestamp",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
