package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/induspriya/attendance-portal/internal/domain/attendance"
	"github.com/induspriya/attendance-portal/internal/domain/auth"
	"github.com/induspriya/attendance-portal/internal/domain/user"
)

type fakeAttendanceService struct {
	checkIns  int
	checkOuts int
}

func (f *fakeAttendanceService) CheckIn(ctx context.Context, userID string, location *string) (attendance.RecordResponse, error) {
	f.checkIns++
	return attendance.RecordResponse{UserID: userID, Status: "present"}, nil
}

func (f *fakeAttendanceService) CheckOut(ctx context.Context, userID string, location *string) (attendance.RecordResponse, error) {
	f.checkOuts++
	return attendance.RecordResponse{UserID: userID, Status: "present"}, nil
}

func (f *fakeAttendanceService) GetToday(ctx context.Context, userID string) (attendance.TodayResponse, error) {
	return attendance.TodayResponse{Status: "unmarked"}, nil
}

func (f *fakeAttendanceService) GetMonth(ctx context.Context, userID string, filter attendance.MonthFilter) (attendance.MonthResponse, error) {
	return attendance.MonthResponse{}, nil
}

func (f *fakeAttendanceService) List(ctx context.Context, filter attendance.ListFilter) (attendance.ListResponse, error) {
	return attendance.ListResponse{}, nil
}

func (f *fakeAttendanceService) Get(ctx context.Context, id string) (attendance.RecordResponse, error) {
	return attendance.RecordResponse{ID: id}, nil
}

func (f *fakeAttendanceService) Update(ctx context.Context, req attendance.UpdateRequest) (attendance.RecordResponse, error) {
	return attendance.RecordResponse{ID: req.ID}, nil
}

func markRequest(body string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/api/attendance/mark", strings.NewReader(body))
	ctx := auth.WithIdentity(req.Context(), auth.Identity{UserID: "u-1", Role: user.RoleEmployee})
	return req.WithContext(ctx)
}

func TestAttendanceHandler_Mark_CheckInReturns200(t *testing.T) {
	t.Parallel()
	svc := &fakeAttendanceService{}
	handler := NewAttendanceHandler(svc)

	rec := httptest.NewRecorder()
	handler.Mark(rec, markRequest(`{"type":"check-in"}`))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, svc.checkIns)
	assert.Contains(t, rec.Body.String(), "Checked in")
}

func TestAttendanceHandler_Mark_CheckOutReturns200(t *testing.T) {
	t.Parallel()
	svc := &fakeAttendanceService{}
	handler := NewAttendanceHandler(svc)

	rec := httptest.NewRecorder()
	handler.Mark(rec, markRequest(`{"type":"check-out"}`))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, svc.checkOuts)
	assert.Contains(t, rec.Body.String(), "Checked out")
}

func TestAttendanceHandler_Mark_UnknownType(t *testing.T) {
	t.Parallel()
	svc := &fakeAttendanceService{}
	handler := NewAttendanceHandler(svc)

	rec := httptest.NewRecorder()
	handler.Mark(rec, markRequest(`{"type":"lunch"}`))

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, 0, svc.checkIns)
	assert.Equal(t, 0, svc.checkOuts)
}
