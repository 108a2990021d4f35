package leave

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/induspriya/attendance-portal/internal/domain/leave"
)

// fakeLeaveRepo mirrors the conditional transition semantics of the SQL
// layer in memory.
type fakeLeaveRepo struct {
	requests map[string]leave.Request

	inTx        bool
	overlapInTx bool
	createdInTx bool
}

func newFakeLeaveRepo() *fakeLeaveRepo {
	return &fakeLeaveRepo{requests: make(map[string]leave.Request)}
}

func (f *fakeLeaveRepo) InTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	f.inTx = true
	defer func() { f.inTx = false }()
	return fn(ctx)
}

func (f *fakeLeaveRepo) Create(ctx context.Context, req leave.Request) (leave.Request, error) {
	f.createdInTx = f.inTx
	req.CreatedAt = time.Now()
	req.UpdatedAt = req.CreatedAt
	f.requests[req.ID] = req
	return req, nil
}

func (f *fakeLeaveRepo) GetByID(ctx context.Context, id string) (leave.Request, error) {
	req, ok := f.requests[id]
	if !ok {
		return leave.Request{}, leave.ErrRequestNotFound
	}
	return req, nil
}

func (f *fakeLeaveRepo) HasOverlapping(ctx context.Context, userID string, from, to time.Time) (bool, error) {
	f.overlapInTx = f.inTx
	for _, req := range f.requests {
		if req.UserID != userID {
			continue
		}
		active := false
		for _, s := range leave.ActiveStatuses {
			if req.Status == s {
				active = true
				break
			}
		}
		if active && req.Overlaps(from, to) {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeLeaveRepo) TransitionStatus(ctx context.Context, id string, expected, next leave.Status, reviewerID string, reviewedAt time.Time, rejectionReason *string) (bool, error) {
	req, ok := f.requests[id]
	if !ok || req.Status != expected {
		return false, nil
	}
	req.Status = next
	req.ApprovedBy = &reviewerID
	req.ApprovedAt = &reviewedAt
	req.RejectionReason = rejectionReason
	f.requests[id] = req
	return true, nil
}

func (f *fakeLeaveRepo) DeleteIfPending(ctx context.Context, id string) (bool, error) {
	req, ok := f.requests[id]
	if !ok || req.Status != leave.StatusPending {
		return false, nil
	}
	delete(f.requests, id)
	return true, nil
}

func (f *fakeLeaveRepo) ListByUser(ctx context.Context, userID string, filter leave.MineFilter) ([]leave.Request, error) {
	var out []leave.Request
	for _, req := range f.requests {
		if req.UserID != userID {
			continue
		}
		if filter.Status != nil && string(req.Status) != *filter.Status {
			continue
		}
		out = append(out, req)
	}
	return out, nil
}

func (f *fakeLeaveRepo) ListByStatus(ctx context.Context, status leave.Status) ([]leave.Request, error) {
	var out []leave.Request
	for _, req := range f.requests {
		if req.Status == status {
			out = append(out, req)
		}
	}
	return out, nil
}

var testClock = func() time.Time {
	return time.Date(2024, 1, 5, 10, 0, 0, 0, time.UTC)
}

func validApply() leave.ApplyRequest {
	return leave.ApplyRequest{
		From:   "2024-01-10",
		To:     "2024-01-12",
		Type:   "casual",
		Reason: "attending a family function",
	}
}

func TestLeaveService_Apply_InclusiveTotalDays(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := NewLeaveService(newFakeLeaveRepo(), testClock)

	result, err := svc.Apply(ctx, "user-1", validApply())
	require.NoError(t, err)

	assert.Equal(t, 3, result.TotalDays)
	assert.Equal(t, "pending", result.Status)
}

func TestLeaveService_Apply_SingleDay(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := NewLeaveService(newFakeLeaveRepo(), testClock)

	req := validApply()
	req.To = req.From

	result, err := svc.Apply(ctx, "user-1", req)
	require.NoError(t, err)
	assert.Equal(t, 1, result.TotalDays)
}

func TestLeaveService_Apply_SameDayOnWestOfUTCServer(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	// 2024-01-05 20:00 at UTC-5: local midnight is a later instant than UTC
	// midnight of the same date, so an instant comparison would reject today.
	clock := func() time.Time {
		return time.Date(2024, 1, 5, 20, 0, 0, 0, time.FixedZone("UTC-5", -5*60*60))
	}
	svc := NewLeaveService(newFakeLeaveRepo(), clock)

	req := validApply()
	req.From = "2024-01-05"
	req.To = "2024-01-06"

	result, err := svc.Apply(ctx, "user-1", req)
	require.NoError(t, err)
	assert.Equal(t, "2024-01-05", result.From)
}

func TestLeaveService_Apply_YesterdayOnEastOfUTCServer(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	// 2024-01-06 01:00 at UTC+9 is still 2024-01-05 in UTC, but the server's
	// calendar day is already the 6th.
	clock := func() time.Time {
		return time.Date(2024, 1, 6, 1, 0, 0, 0, time.FixedZone("UTC+9", 9*60*60))
	}
	svc := NewLeaveService(newFakeLeaveRepo(), clock)

	req := validApply()
	req.From = "2024-01-05"
	req.To = "2024-01-06"

	_, err := svc.Apply(ctx, "user-1", req)
	assert.ErrorIs(t, err, leave.ErrPastDate)
}

func TestLeaveService_Apply_ChecksAndCreatesInOneTransaction(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := newFakeLeaveRepo()
	svc := NewLeaveService(repo, testClock)

	_, err := svc.Apply(ctx, "user-1", validApply())
	require.NoError(t, err)

	assert.True(t, repo.overlapInTx)
	assert.True(t, repo.createdInTx)
}

func TestLeaveService_Apply_PastDate(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := NewLeaveService(newFakeLeaveRepo(), testClock)

	req := validApply()
	req.From = "2024-01-02"
	req.To = "2024-01-03"

	_, err := svc.Apply(ctx, "user-1", req)
	assert.ErrorIs(t, err, leave.ErrPastDate)
}

func TestLeaveService_Apply_InvalidRange(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := NewLeaveService(newFakeLeaveRepo(), testClock)

	req := validApply()
	req.From = "2024-01-12"
	req.To = "2024-01-10"

	_, err := svc.Apply(ctx, "user-1", req)
	assert.ErrorIs(t, err, leave.ErrInvalidRange)
}

func TestLeaveService_Apply_ShortReason(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := NewLeaveService(newFakeLeaveRepo(), testClock)

	req := validApply()
	req.Reason = "   short  "

	_, err := svc.Apply(ctx, "user-1", req)
	assert.Error(t, err)
}

func TestLeaveService_Apply_Overlap(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := newFakeLeaveRepo()
	svc := NewLeaveService(repo, testClock)

	first := validApply()
	first.From = "2024-02-01"
	first.To = "2024-02-05"
	_, err := svc.Apply(ctx, "user-1", first)
	require.NoError(t, err)

	second := validApply()
	second.From = "2024-02-04"
	second.To = "2024-02-06"
	_, err = svc.Apply(ctx, "user-1", second)
	assert.ErrorIs(t, err, leave.ErrOverlappingLeave)

	// A different user is free to book the same window.
	_, err = svc.Apply(ctx, "user-2", second)
	assert.NoError(t, err)
}

func TestLeaveService_Apply_NoOverlapAfterRejection(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := newFakeLeaveRepo()
	svc := NewLeaveService(repo, testClock)

	first := validApply()
	created, err := svc.Apply(ctx, "user-1", first)
	require.NoError(t, err)

	reason := "headcount too low that week"
	_, err = svc.ManagerReview(ctx, leave.ReviewRequest{
		LeaveID:         created.ID,
		ReviewerID:      "mgr-1",
		Decision:        leave.DecisionRejected,
		RejectionReason: &reason,
	})
	require.NoError(t, err)

	// Rejected requests no longer block the window.
	_, err = svc.Apply(ctx, "user-1", first)
	assert.NoError(t, err)
}

func TestLeaveService_TwoStageApproval(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := newFakeLeaveRepo()
	svc := NewLeaveService(repo, testClock)

	created, err := svc.Apply(ctx, "user-1", validApply())
	require.NoError(t, err)

	afterManager, err := svc.ManagerReview(ctx, leave.ReviewRequest{
		LeaveID:    created.ID,
		ReviewerID: "mgr-1",
		Decision:   leave.DecisionApproved,
	})
	require.NoError(t, err)
	assert.Equal(t, "manager_approved", afterManager.Status)
	require.NotNil(t, afterManager.ApprovedBy)
	assert.Equal(t, "mgr-1", *afterManager.ApprovedBy)

	afterHR, err := svc.HRReview(ctx, leave.ReviewRequest{
		LeaveID:    created.ID,
		ReviewerID: "hr-1",
		Decision:   leave.DecisionApproved,
	})
	require.NoError(t, err)
	assert.Equal(t, "hr_approved", afterHR.Status)
}

func TestLeaveService_ManagerReview_AlreadyProcessed(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := newFakeLeaveRepo()
	svc := NewLeaveService(repo, testClock)

	created, err := svc.Apply(ctx, "user-1", validApply())
	require.NoError(t, err)

	review := leave.ReviewRequest{
		LeaveID:    created.ID,
		ReviewerID: "mgr-1",
		Decision:   leave.DecisionApproved,
	}
	_, err = svc.ManagerReview(ctx, review)
	require.NoError(t, err)

	// Second manager decision must not change the stored state.
	review.ReviewerID = "mgr-2"
	review.Decision = leave.DecisionRejected
	reason := "changed my mind"
	review.RejectionReason = &reason
	_, err = svc.ManagerReview(ctx, review)
	assert.ErrorIs(t, err, leave.ErrAlreadyProcessed)

	stored, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, leave.StatusManagerApproved, stored.Status)
	assert.Equal(t, "mgr-1", *stored.ApprovedBy)
	assert.Nil(t, stored.RejectionReason)
}

func TestLeaveService_HRReview_RequiresManagerApproval(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := NewLeaveService(newFakeLeaveRepo(), testClock)

	created, err := svc.Apply(ctx, "user-1", validApply())
	require.NoError(t, err)

	_, err = svc.HRReview(ctx, leave.ReviewRequest{
		LeaveID:    created.ID,
		ReviewerID: "hr-1",
		Decision:   leave.DecisionApproved,
	})
	assert.ErrorIs(t, err, leave.ErrAlreadyProcessed)
}

func TestLeaveService_Reject_RequiresReason(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := NewLeaveService(newFakeLeaveRepo(), testClock)

	created, err := svc.Apply(ctx, "user-1", validApply())
	require.NoError(t, err)

	_, err = svc.ManagerReview(ctx, leave.ReviewRequest{
		LeaveID:    created.ID,
		ReviewerID: "mgr-1",
		Decision:   leave.DecisionRejected,
	})
	assert.Error(t, err)
}

func TestLeaveService_Cancel_OnlyPending(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := newFakeLeaveRepo()
	svc := NewLeaveService(repo, testClock)

	created, err := svc.Apply(ctx, "user-1", validApply())
	require.NoError(t, err)

	_, err = svc.ManagerReview(ctx, leave.ReviewRequest{
		LeaveID:    created.ID,
		ReviewerID: "mgr-1",
		Decision:   leave.DecisionApproved,
	})
	require.NoError(t, err)

	err = svc.Cancel(ctx, created.ID, "user-1")
	assert.ErrorIs(t, err, leave.ErrNotCancellable)
}

func TestLeaveService_Cancel_OwnerOnly(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := NewLeaveService(newFakeLeaveRepo(), testClock)

	created, err := svc.Apply(ctx, "user-1", validApply())
	require.NoError(t, err)

	err = svc.Cancel(ctx, created.ID, "user-2")
	assert.ErrorIs(t, err, leave.ErrNotOwner)

	err = svc.Cancel(ctx, created.ID, "user-1")
	assert.NoError(t, err)
}

func TestLeaveService_Get_OwnershipCheck(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := NewLeaveService(newFakeLeaveRepo(), testClock)

	created, err := svc.Apply(ctx, "user-1", validApply())
	require.NoError(t, err)

	_, err = svc.Get(ctx, created.ID, "user-2", false)
	assert.ErrorIs(t, err, leave.ErrNotOwner)

	_, err = svc.Get(ctx, created.ID, "user-2", true)
	assert.NoError(t, err)
}

func TestLeaveService_ListMine_Summary(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := newFakeLeaveRepo()
	svc := NewLeaveService(repo, testClock)

	first, err := svc.Apply(ctx, "user-1", validApply())
	require.NoError(t, err)

	second := validApply()
	second.From = "2024-03-01"
	second.To = "2024-03-02"
	_, err = svc.Apply(ctx, "user-1", second)
	require.NoError(t, err)

	_, err = svc.ManagerReview(ctx, leave.ReviewRequest{
		LeaveID:    first.ID,
		ReviewerID: "mgr-1",
		Decision:   leave.DecisionApproved,
	})
	require.NoError(t, err)
	_, err = svc.HRReview(ctx, leave.ReviewRequest{
		LeaveID:    first.ID,
		ReviewerID: "hr-1",
		Decision:   leave.DecisionApproved,
	})
	require.NoError(t, err)

	result, err := svc.ListMine(ctx, "user-1", leave.MineFilter{})
	require.NoError(t, err)

	assert.Len(t, result.Leaves, 2)
	assert.Equal(t, 1, result.Summary.Approved)
	assert.Equal(t, 1, result.Summary.Pending)
	assert.Equal(t, 0, result.Summary.Rejected)
	assert.Equal(t, 5, result.Summary.TotalDays)
	assert.Equal(t, 1, result.Summary.CountsByStatus["hr_approved"])
	assert.Equal(t, 1, result.Summary.CountsByStatus["pending"])
}

func TestLeaveService_PendingQueues(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := newFakeLeaveRepo()
	svc := NewLeaveService(repo, testClock)

	first, err := svc.Apply(ctx, "user-1", validApply())
	require.NoError(t, err)

	second := validApply()
	second.From = "2024-03-01"
	second.To = "2024-03-02"
	_, err = svc.Apply(ctx, "user-2", second)
	require.NoError(t, err)

	_, err = svc.ManagerReview(ctx, leave.ReviewRequest{
		LeaveID:    first.ID,
		ReviewerID: "mgr-1",
		Decision:   leave.DecisionApproved,
	})
	require.NoError(t, err)

	managerQueue, err := svc.ListPendingForManager(ctx)
	require.NoError(t, err)
	assert.Len(t, managerQueue.Leaves, 1)

	hrQueue, err := svc.ListPendingForHR(ctx)
	require.NoError(t, err)
	assert.Len(t, hrQueue.Leaves, 1)
	assert.Equal(t, first.ID, hrQueue.Leaves[0].ID)
}
