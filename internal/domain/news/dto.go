package news

import (
	"github.com/induspriya/attendance-portal/internal/pkg/validator"
)

type ArticleResponse struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Content     string  `json:"content"`
	Category    string  `json:"category"`
	Priority    string  `json:"priority"`
	IsPublished bool    `json:"is_published"`
	PublishedAt *string `json:"published_at,omitempty"`
	ExpiresAt   *string `json:"expires_at,omitempty"`
	CreatedAt   string  `json:"created_at"`
}

type ListFilter struct {
	Category *string `json:"category,omitempty"`
	Priority *string `json:"priority,omitempty"`

	Page  int `json:"page"`
	Limit int `json:"limit"`
}

func (f *ListFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Page < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "page",
			Message: "page must be a positive number",
		})
	}
	if f.Page == 0 {
		f.Page = 1
	}

	if f.Limit < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must be a positive number",
		})
	}
	if f.Limit == 0 {
		f.Limit = 10
	}
	if f.Limit > 50 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must not exceed 50",
		})
	}

	if f.Priority != nil && !ValidPriority(Priority(*f.Priority)) {
		errs = append(errs, validator.ValidationError{
			Field:   "priority",
			Message: "priority must be one of: low, normal, high, urgent",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type Pagination struct {
	TotalCount int64 `json:"total_count"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"total_pages"`
}

type ListResponse struct {
	News       []ArticleResponse `json:"news"`
	Pagination Pagination        `json:"pagination"`
}

type CreateRequest struct {
	Title     string  `json:"title"`
	Content   string  `json:"content"`
	Category  string  `json:"category"`
	Priority  string  `json:"priority"`
	Publish   bool    `json:"publish"`
	ExpiresAt *string `json:"expires_at,omitempty"` // RFC3339
}

func (r *CreateRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Title) {
		errs = append(errs, validator.ValidationError{
			Field:   "title",
			Message: "title is required",
		})
	}

	if validator.IsEmpty(r.Content) {
		errs = append(errs, validator.ValidationError{
			Field:   "content",
			Message: "content is required",
		})
	}

	if validator.IsEmpty(r.Category) {
		errs = append(errs, validator.ValidationError{
			Field:   "category",
			Message: "category is required",
		})
	}

	if r.Priority == "" {
		r.Priority = string(PriorityNormal)
	} else if !ValidPriority(Priority(r.Priority)) {
		errs = append(errs, validator.ValidationError{
			Field:   "priority",
			Message: "priority must be one of: low, normal, high, urgent",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateRequest struct {
	ID        string  `json:"-"`
	Title     *string `json:"title,omitempty"`
	Content   *string `json:"content,omitempty"`
	Category  *string `json:"category,omitempty"`
	Priority  *string `json:"priority,omitempty"`
	ExpiresAt *string `json:"expires_at,omitempty"`
}

func (r *UpdateRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Title != nil && validator.IsEmpty(*r.Title) {
		errs = append(errs, validator.ValidationError{
			Field:   "title",
			Message: "title must not be empty",
		})
	}

	if r.Priority != nil && !ValidPriority(Priority(*r.Priority)) {
		errs = append(errs, validator.ValidationError{
			Field:   "priority",
			Message: "priority must be one of: low, normal, high, urgent",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
