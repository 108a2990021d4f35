package attendance

import "time"

type Status string

const (
	StatusPresent Status = "present"
	StatusAbsent  Status = "absent"
	StatusLate    Status = "late"
	StatusHalfDay Status = "half_day"
)

func ValidStatus(s Status) bool {
	switch s {
	case StatusPresent, StatusAbsent, StatusLate, StatusHalfDay:
		return true
	}
	return false
}

// Record is one attendance record per (user, calendar day). Date carries day
// granularity only; the (user_id, date) pair is unique at the storage layer.
type Record struct {
	ID               string
	UserID           string
	Date             time.Time
	CheckInTime      *time.Time
	CheckInLocation  *string
	CheckOutTime     *time.Time
	CheckOutLocation *string
	TotalHours       *float64
	Status           Status
	CreatedAt        time.Time
	UpdatedAt        time.Time

	// Joined for admin listings
	UserName       *string
	UserDepartment *string
}
