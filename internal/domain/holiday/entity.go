package holiday

import "time"

// Type carries the holiday taxonomy of the source HR domain. Types are
// filter tags only; no behavior differs between them.
type Type string

const (
	TypeGazetted   Type = "gazetted"
	TypeRestricted Type = "restricted"
	TypeObservance Type = "observance"
)

func ValidType(t Type) bool {
	switch t {
	case TypeGazetted, TypeRestricted, TypeObservance:
		return true
	}
	return false
}

// Holiday dates are unique at the storage layer.
type Holiday struct {
	ID          string
	Name        string
	Date        time.Time
	Type        Type
	Description *string
	CreatedAt   time.Time
}
