package leave

import "time"

type Status string

const (
	StatusPending         Status = "pending"
	StatusManagerApproved Status = "manager_approved"
	StatusManagerRejected Status = "manager_rejected"
	StatusHRApproved      Status = "hr_approved"
	StatusHRRejected      Status = "hr_rejected"
)

// ActiveStatuses are the states that block an overlapping application.
var ActiveStatuses = []Status{StatusPending, StatusManagerApproved, StatusHRApproved}

// IsTerminal reports whether no further transition is legal from s.
func (s Status) IsTerminal() bool {
	switch s {
	case StatusManagerRejected, StatusHRApproved, StatusHRRejected:
		return true
	}
	return false
}

func ValidStatus(s Status) bool {
	switch s {
	case StatusPending, StatusManagerApproved, StatusManagerRejected, StatusHRApproved, StatusHRRejected:
		return true
	}
	return false
}

type Type string

const (
	TypeSick          Type = "sick"
	TypeCasual        Type = "casual"
	TypeAnnual        Type = "annual"
	TypeMaternity     Type = "maternity"
	TypePaternity     Type = "paternity"
	TypeBereavement   Type = "bereavement"
	TypeCompensatory  Type = "compensatory"
	TypeSabbatical    Type = "sabbatical"
	TypeUnpaid        Type = "unpaid"
	TypeWorkFromHome  Type = "work_from_home"
	TypeHalfDay       Type = "half_day"
	TypeOther         Type = "other"
)

var AllTypes = []Type{
	TypeSick, TypeCasual, TypeAnnual, TypeMaternity, TypePaternity,
	TypeBereavement, TypeCompensatory, TypeSabbatical, TypeUnpaid,
	TypeWorkFromHome, TypeHalfDay, TypeOther,
}

func ValidType(t Type) bool {
	for _, v := range AllTypes {
		if v == t {
			return true
		}
	}
	return false
}

// Request is one leave application over an inclusive [FromDate, ToDate] range.
// ApprovedBy/ApprovedAt record the last reviewer regardless of outcome.
type Request struct {
	ID              string
	UserID          string
	FromDate        time.Time
	ToDate          time.Time
	Type            Type
	Reason          string
	Status          Status
	TotalDays       int
	ApprovedBy      *string
	ApprovedAt      *time.Time
	RejectionReason *string
	CreatedAt       time.Time
	UpdatedAt       time.Time

	// Joined for review queues
	UserName       *string
	UserDepartment *string
	UserPosition   *string
}

// Overlaps reports whether [FromDate, ToDate] intersects [from, to].
func (r *Request) Overlaps(from, to time.Time) bool {
	return !r.FromDate.After(to) && !r.ToDate.Before(from)
}
