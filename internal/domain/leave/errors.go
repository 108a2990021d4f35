package leave

import "errors"

// Leave domain errors
var (
	ErrPastDate         = errors.New("leave cannot start before today")
	ErrInvalidRange     = errors.New("end date must not be earlier than start date")
	ErrOverlappingLeave = errors.New("an overlapping leave request already exists")
	ErrAlreadyProcessed = errors.New("leave request has already been processed at this stage")
	ErrNotCancellable   = errors.New("only pending leave requests can be cancelled")
	ErrRequestNotFound  = errors.New("leave request not found")
	ErrNotOwner         = errors.New("leave request belongs to another user")
)
