package leave

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/induspriya/attendance-portal/internal/domain/leave"
	"github.com/induspriya/attendance-portal/internal/pkg/validator"
)

type leaveService struct {
	leaveRepo leave.LeaveRepository
	now       func() time.Time
}

// NewLeaveService builds the leave service. now defaults to time.Now and is
// injectable for tests.
func NewLeaveService(leaveRepo leave.LeaveRepository, now func() time.Time) leave.LeaveService {
	if now == nil {
		now = time.Now
	}
	return &leaveService{
		leaveRepo: leaveRepo,
		now:       now,
	}
}

// Apply implements leave.LeaveService.
func (s *leaveService) Apply(ctx context.Context, userID string, req leave.ApplyRequest) (leave.RequestResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.RequestResponse{}, err
	}

	from, _ := validator.IsValidDate(req.From)
	to, _ := validator.IsValidDate(req.To)

	// from is parsed at UTC midnight while the clock runs in server-local
	// time; compare calendar dates, not instants.
	if validator.BeforeDay(from, s.now()) {
		return leave.RequestResponse{}, leave.ErrPastDate
	}
	if to.Before(from) {
		return leave.RequestResponse{}, leave.ErrInvalidRange
	}

	request := leave.Request{
		ID:        uuid.New().String(),
		UserID:    userID,
		FromDate:  from,
		ToDate:    to,
		Type:      leave.Type(req.Type),
		Reason:    strings.TrimSpace(req.Reason),
		Status:    leave.StatusPending,
		TotalDays: validator.DaysBetween(from, to),
	}

	// The overlap check and the insert run in one transaction.
	var created leave.Request
	err := s.leaveRepo.InTransaction(ctx, func(ctx context.Context) error {
		overlapping, err := s.leaveRepo.HasOverlapping(ctx, userID, from, to)
		if err != nil {
			return err
		}
		if overlapping {
			return leave.ErrOverlappingLeave
		}

		created, err = s.leaveRepo.Create(ctx, request)
		return err
	})
	if err != nil {
		return leave.RequestResponse{}, err
	}

	return toRequestResponse(created), nil
}

// ManagerReview implements leave.LeaveService.
func (s *leaveService) ManagerReview(ctx context.Context, req leave.ReviewRequest) (leave.RequestResponse, error) {
	next := leave.StatusManagerApproved
	if req.Decision == leave.DecisionRejected {
		next = leave.StatusManagerRejected
	}
	return s.review(ctx, req, leave.StatusPending, next)
}

// HRReview implements leave.LeaveService.
func (s *leaveService) HRReview(ctx context.Context, req leave.ReviewRequest) (leave.RequestResponse, error) {
	next := leave.StatusHRApproved
	if req.Decision == leave.DecisionRejected {
		next = leave.StatusHRRejected
	}
	return s.review(ctx, req, leave.StatusManagerApproved, next)
}

// review applies one stage's decision as a conditional transition from
// expected. A failed transition means another reviewer got there first, or
// the request never reached this stage; both surface as ErrAlreadyProcessed.
func (s *leaveService) review(ctx context.Context, req leave.ReviewRequest, expected, next leave.Status) (leave.RequestResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.RequestResponse{}, err
	}

	// Distinguish a missing request from a processed one up front.
	if _, err := s.leaveRepo.GetByID(ctx, req.LeaveID); err != nil {
		return leave.RequestResponse{}, err
	}

	var rejectionReason *string
	if req.Decision == leave.DecisionRejected {
		rejectionReason = req.RejectionReason
	}

	moved, err := s.leaveRepo.TransitionStatus(ctx, req.LeaveID, expected, next, req.ReviewerID, s.now(), rejectionReason)
	if err != nil {
		return leave.RequestResponse{}, err
	}
	if !moved {
		return leave.RequestResponse{}, leave.ErrAlreadyProcessed
	}

	updated, err := s.leaveRepo.GetByID(ctx, req.LeaveID)
	if err != nil {
		return leave.RequestResponse{}, err
	}

	return toRequestResponse(updated), nil
}

// Cancel implements leave.LeaveService.
func (s *leaveService) Cancel(ctx context.Context, leaveID, requesterID string) error {
	request, err := s.leaveRepo.GetByID(ctx, leaveID)
	if err != nil {
		return err
	}
	if request.UserID != requesterID {
		return leave.ErrNotOwner
	}

	deleted, err := s.leaveRepo.DeleteIfPending(ctx, leaveID)
	if err != nil {
		return err
	}
	if !deleted {
		return leave.ErrNotCancellable
	}

	return nil
}

// Get implements leave.LeaveService.
func (s *leaveService) Get(ctx context.Context, leaveID, requesterID string, canViewAll bool) (leave.RequestResponse, error) {
	request, err := s.leaveRepo.GetByID(ctx, leaveID)
	if err != nil {
		return leave.RequestResponse{}, err
	}
	if !canViewAll && request.UserID != requesterID {
		return leave.RequestResponse{}, leave.ErrNotOwner
	}

	return toRequestResponse(request), nil
}

// ListMine implements leave.LeaveService.
func (s *leaveService) ListMine(ctx context.Context, userID string, filter leave.MineFilter) (leave.MineResponse, error) {
	if err := filter.Validate(); err != nil {
		return leave.MineResponse{}, err
	}

	requests, err := s.leaveRepo.ListByUser(ctx, userID, filter)
	if err != nil {
		return leave.MineResponse{}, err
	}

	summary := leave.MineSummary{CountsByStatus: make(map[string]int)}
	responses := make([]leave.RequestResponse, 0, len(requests))
	for _, request := range requests {
		responses = append(responses, toRequestResponse(request))
		summary.CountsByStatus[string(request.Status)]++
		summary.TotalDays += request.TotalDays

		switch request.Status {
		case leave.StatusPending, leave.StatusManagerApproved:
			summary.Pending++
		case leave.StatusHRApproved:
			summary.Approved++
		case leave.StatusManagerRejected, leave.StatusHRRejected:
			summary.Rejected++
		}
	}

	return leave.MineResponse{
		Leaves:  responses,
		Summary: summary,
	}, nil
}

// ListPendingForManager implements leave.LeaveService.
func (s *leaveService) ListPendingForManager(ctx context.Context) (leave.PendingResponse, error) {
	return s.listByStatus(ctx, leave.StatusPending)
}

// ListPendingForHR implements leave.LeaveService.
func (s *leaveService) ListPendingForHR(ctx context.Context) (leave.PendingResponse, error) {
	return s.listByStatus(ctx, leave.StatusManagerApproved)
}

func (s *leaveService) listByStatus(ctx context.Context, status leave.Status) (leave.PendingResponse, error) {
	requests, err := s.leaveRepo.ListByStatus(ctx, status)
	if err != nil {
		return leave.PendingResponse{}, err
	}

	responses := make([]leave.RequestResponse, 0, len(requests))
	for _, request := range requests {
		responses = append(responses, toRequestResponse(request))
	}

	return leave.PendingResponse{Leaves: responses}, nil
}

func toRequestResponse(request leave.Request) leave.RequestResponse {
	resp := leave.RequestResponse{
		ID:              request.ID,
		UserID:          request.UserID,
		UserName:        request.UserName,
		UserDepartment:  request.UserDepartment,
		UserPosition:    request.UserPosition,
		From:            request.FromDate.Format("2006-01-02"),
		To:              request.ToDate.Format("2006-01-02"),
		Type:            string(request.Type),
		Reason:          request.Reason,
		Status:          string(request.Status),
		TotalDays:       request.TotalDays,
		ApprovedBy:      request.ApprovedBy,
		RejectionReason: request.RejectionReason,
		CreatedAt:       request.CreatedAt.Format(time.RFC3339),
	}
	if request.ApprovedAt != nil {
		t := request.ApprovedAt.Format(time.RFC3339)
		resp.ApprovedAt = &t
	}
	return resp
}
