package holiday

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/induspriya/attendance-portal/internal/domain/holiday"
	"github.com/induspriya/attendance-portal/internal/pkg/validator"
)

type holidayService struct {
	holidayRepo holiday.HolidayRepository
	now         func() time.Time
}

func NewHolidayService(holidayRepo holiday.HolidayRepository, now func() time.Time) holiday.HolidayService {
	if now == nil {
		now = time.Now
	}
	return &holidayService{
		holidayRepo: holidayRepo,
		now:         now,
	}
}

// List implements holiday.HolidayService.
func (s *holidayService) List(ctx context.Context, filter holiday.ListFilter) ([]holiday.HolidayResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	holidays, err := s.holidayRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	return toResponses(holidays), nil
}

// Upcoming implements holiday.HolidayService.
func (s *holidayService) Upcoming(ctx context.Context, n int) ([]holiday.HolidayResponse, error) {
	if n <= 0 {
		n = 5
	}

	holidays, err := s.holidayRepo.Upcoming(ctx, validator.DayOf(s.now()), n)
	if err != nil {
		return nil, err
	}

	return toResponses(holidays), nil
}

// Create implements holiday.HolidayService.
func (s *holidayService) Create(ctx context.Context, req holiday.CreateRequest) (holiday.HolidayResponse, error) {
	if err := req.Validate(); err != nil {
		return holiday.HolidayResponse{}, err
	}

	date, _ := validator.IsValidDate(req.Date)

	h := holiday.Holiday{
		ID:          uuid.New().String(),
		Name:        req.Name,
		Date:        date,
		Type:        holiday.Type(req.Type),
		Description: req.Description,
	}

	created, err := s.holidayRepo.Create(ctx, h)
	if err != nil {
		return holiday.HolidayResponse{}, err
	}

	return toResponse(created), nil
}

// Update implements holiday.HolidayService.
func (s *holidayService) Update(ctx context.Context, req holiday.UpdateRequest) (holiday.HolidayResponse, error) {
	if err := req.Validate(); err != nil {
		return holiday.HolidayResponse{}, err
	}

	h, err := s.holidayRepo.GetByID(ctx, req.ID)
	if err != nil {
		return holiday.HolidayResponse{}, err
	}

	if req.Name != nil {
		h.Name = *req.Name
	}
	if req.Date != nil {
		date, _ := validator.IsValidDate(*req.Date)
		h.Date = date
	}
	if req.Type != nil {
		h.Type = holiday.Type(*req.Type)
	}
	if req.Description != nil {
		h.Description = req.Description
	}

	if err := s.holidayRepo.Update(ctx, h); err != nil {
		return holiday.HolidayResponse{}, err
	}

	return toResponse(h), nil
}

// Delete implements holiday.HolidayService.
func (s *holidayService) Delete(ctx context.Context, id string) error {
	return s.holidayRepo.Delete(ctx, id)
}

func toResponse(h holiday.Holiday) holiday.HolidayResponse {
	return holiday.HolidayResponse{
		ID:          h.ID,
		Name:        h.Name,
		Date:        h.Date.Format("2006-01-02"),
		Type:        string(h.Type),
		Description: h.Description,
	}
}

func toResponses(holidays []holiday.Holiday) []holiday.HolidayResponse {
	responses := make([]holiday.HolidayResponse, 0, len(holidays))
	for _, h := range holidays {
		responses = append(responses, toResponse(h))
	}
	return responses
}
