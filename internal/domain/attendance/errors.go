package attendance

import "errors"

// Attendance domain errors
var (
	ErrAlreadyCheckedIn  = errors.New("you have already checked in today")
	ErrNotCheckedIn      = errors.New("you have not checked in yet")
	ErrAlreadyCheckedOut = errors.New("you have already checked out today")
	ErrRecordNotFound    = errors.New("attendance record not found")
	ErrCheckOutBeforeIn  = errors.New("check-out time must not be earlier than check-in time")
)
