package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/induspriya/attendance-portal/internal/domain/attendance"
	"github.com/induspriya/attendance-portal/internal/domain/leave"
	"github.com/induspriya/attendance-portal/internal/domain/user"
	"github.com/induspriya/attendance-portal/internal/pkg/validator"
)

func decode(t *testing.T, rec *httptest.ResponseRecorder) Response {
	t.Helper()
	var body Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestSuccess_Envelope(t *testing.T) {
	t.Parallel()
	rec := httptest.NewRecorder()

	Success(rec, map[string]string{"id": "abc"})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	body := decode(t, rec)
	assert.True(t, body.Success)
	assert.Nil(t, body.Error)
}

func TestValidationError_Envelope(t *testing.T) {
	t.Parallel()
	rec := httptest.NewRecorder()

	ValidationError(rec, map[string]string{"reason": "required"})

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	body := decode(t, rec)
	assert.False(t, body.Success)
	require.NotNil(t, body.Error)
	assert.Equal(t, "VALIDATION_ERROR", body.Error.Code)
	assert.Equal(t, "required", body.Error.Details["reason"])
}

func TestHandleError_StatusMapping(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		err  error
		want int
	}{
		{"validation errors", validator.ValidationErrors{{Field: "type", Message: "bad"}}, http.StatusUnprocessableEntity},
		{"double check-in", attendance.ErrAlreadyCheckedIn, http.StatusBadRequest},
		{"overlapping leave", leave.ErrOverlappingLeave, http.StatusBadRequest},
		{"already processed", leave.ErrAlreadyProcessed, http.StatusBadRequest},
		{"leave not found", leave.ErrRequestNotFound, http.StatusNotFound},
		{"not owner", leave.ErrNotOwner, http.StatusForbidden},
		{"duplicate email", user.ErrEmailExists, http.StatusConflict},
		{"unknown error", errors.New("disk on fire"), http.StatusInternalServerError},
	}

	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()
			rec := httptest.NewRecorder()
			HandleError(rec, c.err)
			assert.Equal(t, c.want, rec.Code)
			assert.False(t, decode(t, rec).Success)
		})
	}
}
