package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/induspriya/attendance-portal/internal/domain/attendance"
	"github.com/induspriya/attendance-portal/internal/domain/auth"
	"github.com/induspriya/attendance-portal/internal/handler/http/response"
)

type AttendanceHandler interface {
	Mark(w http.ResponseWriter, r *http.Request)
	Today(w http.ResponseWriter, r *http.Request)
	MyMonth(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &attendanceHandlerImpl{
		attendanceService: attendanceService,
	}
}

// Mark implements AttendanceHandler. One endpoint covers both check-in and
// check-out; the body's type field selects which.
func (h *attendanceHandlerImpl) Mark(w http.ResponseWriter, r *http.Request) {
	identity, ok := auth.IdentityFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Missing bearer token")
		return
	}

	var req attendance.MarkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	var (
		result attendance.RecordResponse
		err    error
	)
	switch req.Type {
	case attendance.MarkTypeCheckIn:
		result, err = h.attendanceService.CheckIn(r.Context(), identity.UserID, req.Location)
	case attendance.MarkTypeCheckOut:
		result, err = h.attendanceService.CheckOut(r.Context(), identity.UserID, req.Location)
	}
	if err != nil {
		response.HandleError(w, err)
		return
	}

	message := "Checked out"
	if req.Type == attendance.MarkTypeCheckIn {
		message = "Checked in"
	}
	response.SuccessWithMessage(w, message, result)
}

// Today implements AttendanceHandler.
func (h *attendanceHandlerImpl) Today(w http.ResponseWriter, r *http.Request) {
	identity, ok := auth.IdentityFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Missing bearer token")
		return
	}

	result, err := h.attendanceService.GetToday(r.Context(), identity.UserID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// MyMonth implements AttendanceHandler. Month and year default to the
// current calendar month.
func (h *attendanceHandlerImpl) MyMonth(w http.ResponseWriter, r *http.Request) {
	identity, ok := auth.IdentityFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Missing bearer token")
		return
	}

	filter := attendance.MonthFilter{}
	if v := r.URL.Query().Get("month"); v != "" {
		filter.Month, _ = strconv.Atoi(v)
	}
	if v := r.URL.Query().Get("year"); v != "" {
		filter.Year, _ = strconv.Atoi(v)
	}
	if filter.Month == 0 && filter.Year == 0 {
		now := time.Now()
		filter.Month = int(now.Month())
		filter.Year = now.Year()
	}

	result, err := h.attendanceService.GetMonth(r.Context(), identity.UserID, filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// List implements AttendanceHandler.
func (h *attendanceHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := attendance.ListFilter{}
	query := r.URL.Query()

	if v := query.Get("user_id"); v != "" {
		filter.UserID = &v
	}
	if v := query.Get("status"); v != "" {
		filter.Status = &v
	}
	if v := query.Get("start_date"); v != "" {
		filter.StartDate = &v
	}
	if v := query.Get("end_date"); v != "" {
		filter.EndDate = &v
	}
	if v := query.Get("page"); v != "" {
		filter.Page, _ = strconv.Atoi(v)
	}
	if v := query.Get("limit"); v != "" {
		filter.Limit, _ = strconv.Atoi(v)
	}

	result, err := h.attendanceService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, result.Records, &response.Meta{
		Page:       result.Page,
		Limit:      result.Limit,
		TotalItems: result.TotalCount,
		TotalPages: result.TotalPages,
	})
}

// Get implements AttendanceHandler.
func (h *attendanceHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	result, err := h.attendanceService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Update implements AttendanceHandler.
func (h *attendanceHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req attendance.UpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.attendanceService.Update(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Attendance record updated", result)
}
