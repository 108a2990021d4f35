package attendance

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/induspriya/attendance-portal/internal/domain/attendance"
	"github.com/induspriya/attendance-portal/internal/pkg/validator"
)

type attendanceService struct {
	attendanceRepo attendance.AttendanceRepository
	now            func() time.Time
}

// NewAttendanceService builds the attendance service. now defaults to
// time.Now and is injectable for tests.
func NewAttendanceService(attendanceRepo attendance.AttendanceRepository, now func() time.Time) attendance.AttendanceService {
	if now == nil {
		now = time.Now
	}
	return &attendanceService{
		attendanceRepo: attendanceRepo,
		now:            now,
	}
}

// roundHours rounds a working-hours figure to 2 decimals.
func roundHours(h float64) float64 {
	return math.Round(h*100) / 100
}

// CheckIn implements attendance.AttendanceService.
func (s *attendanceService) CheckIn(ctx context.Context, userID string, location *string) (attendance.RecordResponse, error) {
	now := s.now()
	today := validator.DayOf(now)

	rec := attendance.Record{
		ID:              uuid.New().String(),
		UserID:          userID,
		Date:            today,
		CheckInTime:     &now,
		CheckInLocation: location,
		Status:          attendance.StatusPresent,
	}

	created, err := s.attendanceRepo.Create(ctx, rec)
	if err != nil {
		return attendance.RecordResponse{}, err
	}

	return toRecordResponse(created), nil
}

// CheckOut implements attendance.AttendanceService.
func (s *attendanceService) CheckOut(ctx context.Context, userID string, location *string) (attendance.RecordResponse, error) {
	now := s.now()
	today := validator.DayOf(now)

	rec, err := s.attendanceRepo.GetByUserAndDate(ctx, userID, today)
	if err != nil {
		return attendance.RecordResponse{}, err
	}
	if rec == nil || rec.CheckInTime == nil {
		return attendance.RecordResponse{}, attendance.ErrNotCheckedIn
	}
	if rec.CheckOutTime != nil {
		return attendance.RecordResponse{}, attendance.ErrAlreadyCheckedOut
	}

	totalHours := roundHours(now.Sub(*rec.CheckInTime).Hours())

	updated, err := s.attendanceRepo.SetCheckOut(ctx, rec.ID, now, location, totalHours)
	if err != nil {
		return attendance.RecordResponse{}, err
	}

	return toRecordResponse(updated), nil
}

// GetToday implements attendance.AttendanceService.
func (s *attendanceService) GetToday(ctx context.Context, userID string) (attendance.TodayResponse, error) {
	today := validator.DayOf(s.now())

	rec, err := s.attendanceRepo.GetByUserAndDate(ctx, userID, today)
	if err != nil {
		return attendance.TodayResponse{}, err
	}
	if rec == nil {
		return attendance.TodayResponse{Status: "unmarked"}, nil
	}

	resp := attendance.TodayResponse{
		CheckedIn:  rec.CheckInTime != nil,
		CheckedOut: rec.CheckOutTime != nil,
		Status:     string(rec.Status),
	}
	if rec.CheckInTime != nil {
		t := rec.CheckInTime.Format(time.RFC3339)
		resp.CheckInTime = &t
	}
	if rec.CheckOutTime != nil {
		t := rec.CheckOutTime.Format(time.RFC3339)
		resp.CheckOutTime = &t
	}

	return resp, nil
}

// GetMonth implements attendance.AttendanceService.
func (s *attendanceService) GetMonth(ctx context.Context, userID string, filter attendance.MonthFilter) (attendance.MonthResponse, error) {
	if err := filter.Validate(); err != nil {
		return attendance.MonthResponse{}, err
	}

	loc := s.now().Location()
	from := time.Date(filter.Year, time.Month(filter.Month), 1, 0, 0, 0, 0, loc)
	to := from.AddDate(0, 1, -1)

	records, err := s.attendanceRepo.ListByUserAndRange(ctx, userID, from, to)
	if err != nil {
		return attendance.MonthResponse{}, err
	}

	daysInMonth := validator.DaysInMonth(time.Month(filter.Month), filter.Year)

	summary := attendance.MonthSummary{TotalDays: daysInMonth}
	responses := make([]attendance.RecordResponse, 0, len(records))
	for _, rec := range records {
		responses = append(responses, toRecordResponse(rec))
		if rec.Status != attendance.StatusAbsent {
			summary.PresentDays++
		}
		if rec.TotalHours != nil {
			summary.TotalWorkingHours += *rec.TotalHours
		}
	}
	summary.AbsentDays = daysInMonth - summary.PresentDays
	summary.TotalWorkingHours = roundHours(summary.TotalWorkingHours)
	if summary.PresentDays > 0 {
		summary.AverageWorkingHours = roundHours(summary.TotalWorkingHours / float64(summary.PresentDays))
	}

	return attendance.MonthResponse{
		Attendance: responses,
		Summary:    summary,
	}, nil
}

// List implements attendance.AttendanceService.
func (s *attendanceService) List(ctx context.Context, filter attendance.ListFilter) (attendance.ListResponse, error) {
	if err := filter.Validate(); err != nil {
		return attendance.ListResponse{}, err
	}

	records, total, err := s.attendanceRepo.List(ctx, filter)
	if err != nil {
		return attendance.ListResponse{}, err
	}

	responses := make([]attendance.RecordResponse, 0, len(records))
	for _, rec := range records {
		responses = append(responses, toRecordResponse(rec))
	}

	totalPages := int(math.Ceil(float64(total) / float64(filter.Limit)))

	return attendance.ListResponse{
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: totalPages,
		Records:    responses,
	}, nil
}

// Get implements attendance.AttendanceService.
func (s *attendanceService) Get(ctx context.Context, id string) (attendance.RecordResponse, error) {
	rec, err := s.attendanceRepo.GetByID(ctx, id)
	if err != nil {
		return attendance.RecordResponse{}, err
	}
	return toRecordResponse(rec), nil
}

// Update implements attendance.AttendanceService.
func (s *attendanceService) Update(ctx context.Context, req attendance.UpdateRequest) (attendance.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.RecordResponse{}, err
	}

	rec, err := s.attendanceRepo.GetByID(ctx, req.ID)
	if err != nil {
		return attendance.RecordResponse{}, err
	}

	if req.CheckInTime != nil {
		t, err := time.Parse(time.RFC3339, *req.CheckInTime)
		if err != nil {
			return attendance.RecordResponse{}, fmt.Errorf("failed to parse check-in time: %w", err)
		}
		rec.CheckInTime = &t
	}
	if req.CheckOutTime != nil {
		t, err := time.Parse(time.RFC3339, *req.CheckOutTime)
		if err != nil {
			return attendance.RecordResponse{}, fmt.Errorf("failed to parse check-out time: %w", err)
		}
		rec.CheckOutTime = &t
	}
	if req.Status != nil {
		rec.Status = attendance.Status(*req.Status)
	}

	if rec.CheckInTime != nil && rec.CheckOutTime != nil {
		if rec.CheckOutTime.Before(*rec.CheckInTime) {
			return attendance.RecordResponse{}, attendance.ErrCheckOutBeforeIn
		}
		total := roundHours(rec.CheckOutTime.Sub(*rec.CheckInTime).Hours())
		rec.TotalHours = &total
	}

	if err := s.attendanceRepo.Update(ctx, rec); err != nil {
		return attendance.RecordResponse{}, err
	}

	return toRecordResponse(rec), nil
}

func toRecordResponse(rec attendance.Record) attendance.RecordResponse {
	resp := attendance.RecordResponse{
		ID:               rec.ID,
		UserID:           rec.UserID,
		UserName:         rec.UserName,
		UserDepartment:   rec.UserDepartment,
		Date:             rec.Date.Format("2006-01-02"),
		CheckInLocation:  rec.CheckInLocation,
		CheckOutLocation: rec.CheckOutLocation,
		TotalHours:       rec.TotalHours,
		Status:           string(rec.Status),
	}
	if rec.CheckInTime != nil {
		t := rec.CheckInTime.Format(time.RFC3339)
		resp.CheckInTime = &t
	}
	if rec.CheckOutTime != nil {
		t := rec.CheckOutTime.Format(time.RFC3339)
		resp.CheckOutTime = &t
	}
	return resp
}
