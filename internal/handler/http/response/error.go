package response

import (
	"errors"
	"net/http"

	"github.com/induspriya/attendance-portal/internal/domain/attendance"
	"github.com/induspriya/attendance-portal/internal/domain/auth"
	"github.com/induspriya/attendance-portal/internal/domain/holiday"
	"github.com/induspriya/attendance-portal/internal/domain/leave"
	"github.com/induspriya/attendance-portal/internal/domain/news"
	"github.com/induspriya/attendance-portal/internal/domain/user"
	"github.com/induspriya/attendance-portal/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses. State-machine conflicts
// (double check-in, already-processed reviews) surface as 400; uniqueness
// conflicts as 409.
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid email or password")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, auth.ErrOAuthDisabled):
		NotFound(w, "Google sign-in is not enabled")
	case errors.Is(err, auth.ErrOAuthEmailNotFound):
		Unauthorized(w, "No account matches this Google account")

	// User domain errors
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrEmailExists):
		Conflict(w, "Email already registered")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAlreadyCheckedIn),
		errors.Is(err, attendance.ErrNotCheckedIn),
		errors.Is(err, attendance.ErrAlreadyCheckedOut),
		errors.Is(err, attendance.ErrCheckOutBeforeIn):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, attendance.ErrRecordNotFound):
		NotFound(w, "Attendance record not found")

	// Leave domain errors
	case errors.Is(err, leave.ErrPastDate),
		errors.Is(err, leave.ErrInvalidRange),
		errors.Is(err, leave.ErrOverlappingLeave),
		errors.Is(err, leave.ErrAlreadyProcessed),
		errors.Is(err, leave.ErrNotCancellable):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, leave.ErrRequestNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrNotOwner):
		Forbidden(w, "Leave request belongs to another user")

	// Holiday domain errors
	case errors.Is(err, holiday.ErrHolidayNotFound):
		NotFound(w, "Holiday not found")
	case errors.Is(err, holiday.ErrDuplicateDate):
		Conflict(w, "A holiday already exists on this date")

	// News domain errors
	case errors.Is(err, news.ErrArticleNotFound):
		NotFound(w, "News article not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
