package leave

import "context"

// LeaveService owns the leave application lifecycle: submission, overlap
// validation and the two-stage manager/HR approval workflow.
type LeaveService interface {
	// Apply validates dates, type and reason, checks for overlapping active
	// requests, and creates the request with status pending.
	Apply(ctx context.Context, userID string, req ApplyRequest) (RequestResponse, error)

	// ManagerReview decides the manager stage. Legal only from pending;
	// otherwise ErrAlreadyProcessed.
	ManagerReview(ctx context.Context, req ReviewRequest) (RequestResponse, error)

	// HRReview decides the HR stage. Legal only from manager_approved.
	HRReview(ctx context.Context, req ReviewRequest) (RequestResponse, error)

	// Cancel deletes the requester's own pending request.
	Cancel(ctx context.Context, leaveID, requesterID string) error

	// Get returns one request; non-reviewers may only read their own.
	Get(ctx context.Context, leaveID, requesterID string, canViewAll bool) (RequestResponse, error)

	// ListMine returns the user's requests plus an aggregate summary.
	ListMine(ctx context.Context, userID string, filter MineFilter) (MineResponse, error)

	// ListPendingForManager returns the manager-stage queue.
	ListPendingForManager(ctx context.Context) (PendingResponse, error)

	// ListPendingForHR returns the HR-stage queue.
	ListPendingForHR(ctx context.Context) (PendingResponse, error)
}
