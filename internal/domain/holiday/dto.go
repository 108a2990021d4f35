package holiday

import (
	"github.com/induspriya/attendance-portal/internal/pkg/validator"
)

type HolidayResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Date        string  `json:"date"`
	Type        string  `json:"type"`
	Description *string `json:"description,omitempty"`
}

type ListFilter struct {
	Year  *int    `json:"year,omitempty"`
	Month *int    `json:"month,omitempty"`
	Type  *string `json:"type,omitempty"`
}

func (f *ListFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Year != nil && (*f.Year < 2000 || *f.Year > 2100) {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: "year must be between 2000 and 2100",
		})
	}

	if f.Month != nil && (*f.Month < 1 || *f.Month > 12) {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be between 1 and 12",
		})
	}

	if f.Type != nil && !ValidType(Type(*f.Type)) {
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "type must be one of: gazetted, restricted, observance",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type CreateRequest struct {
	Name        string  `json:"name"`
	Date        string  `json:"date"` // YYYY-MM-DD
	Type        string  `json:"type"`
	Description *string `json:"description,omitempty"`
}

func (r *CreateRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	if !ValidType(Type(r.Type)) {
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "type must be one of: gazetted, restricted, observance",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateRequest struct {
	ID          string  `json:"-"`
	Name        *string `json:"name,omitempty"`
	Date        *string `json:"date,omitempty"`
	Type        *string `json:"type,omitempty"`
	Description *string `json:"description,omitempty"`
}

func (r *UpdateRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not be empty",
		})
	}

	if r.Date != nil {
		if _, ok := validator.IsValidDate(*r.Date); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "date",
				Message: "date must be in YYYY-MM-DD format",
			})
		}
	}

	if r.Type != nil && !ValidType(Type(*r.Type)) {
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "type must be one of: gazetted, restricted, observance",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
