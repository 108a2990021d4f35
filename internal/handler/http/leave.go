package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/induspriya/attendance-portal/internal/domain/auth"
	"github.com/induspriya/attendance-portal/internal/domain/leave"
	"github.com/induspriya/attendance-portal/internal/domain/user"
	"github.com/induspriya/attendance-portal/internal/handler/http/response"
)

type LeaveHandler interface {
	Apply(w http.ResponseWriter, r *http.Request)
	Mine(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
	Cancel(w http.ResponseWriter, r *http.Request)
	PendingForManager(w http.ResponseWriter, r *http.Request)
	PendingForHR(w http.ResponseWriter, r *http.Request)
}

type leaveHandlerImpl struct {
	leaveService leave.LeaveService
}

func NewLeaveHandler(leaveService leave.LeaveService) LeaveHandler {
	return &leaveHandlerImpl{
		leaveService: leaveService,
	}
}

// Apply implements LeaveHandler.
func (h *leaveHandlerImpl) Apply(w http.ResponseWriter, r *http.Request) {
	identity, ok := auth.IdentityFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Missing bearer token")
		return
	}

	var req leave.ApplyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.leaveService.Apply(r.Context(), identity.UserID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Leave request submitted", result)
}

// Mine implements LeaveHandler.
func (h *leaveHandlerImpl) Mine(w http.ResponseWriter, r *http.Request) {
	identity, ok := auth.IdentityFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Missing bearer token")
		return
	}

	filter := leave.MineFilter{}
	if v := r.URL.Query().Get("status"); v != "" {
		filter.Status = &v
	}
	if v := r.URL.Query().Get("year"); v != "" {
		year, err := strconv.Atoi(v)
		if err != nil {
			response.BadRequest(w, "year must be a number", nil)
			return
		}
		filter.Year = &year
	}

	result, err := h.leaveService.ListMine(r.Context(), identity.UserID, filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Get implements LeaveHandler. Reviewer roles may read any request;
// employees only their own.
func (h *leaveHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	identity, ok := auth.IdentityFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Missing bearer token")
		return
	}

	canViewAll := identity.Role == user.RoleManager ||
		identity.Role == user.RoleHR ||
		identity.Role == user.RoleAdmin

	result, err := h.leaveService.Get(r.Context(), chi.URLParam(r, "id"), identity.UserID, canViewAll)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Approve implements LeaveHandler. The reviewer's role selects the stage:
// managers decide the manager stage, HR the HR stage, and admins whichever
// stage the request currently sits in.
func (h *leaveHandlerImpl) Approve(w http.ResponseWriter, r *http.Request) {
	identity, ok := auth.IdentityFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Missing bearer token")
		return
	}

	var req leave.ReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.LeaveID = chi.URLParam(r, "id")
	req.ReviewerID = identity.UserID

	var (
		result leave.RequestResponse
		err    error
	)
	switch identity.Role {
	case user.RoleManager:
		result, err = h.leaveService.ManagerReview(r.Context(), req)
	case user.RoleHR:
		result, err = h.leaveService.HRReview(r.Context(), req)
	case user.RoleAdmin:
		result, err = h.adminReview(r, req)
	default:
		response.Forbidden(w, "Access requires one of roles: manager, hr")
		return
	}
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave request reviewed", result)
}

// adminReview routes an admin's decision to the stage the request is in.
func (h *leaveHandlerImpl) adminReview(r *http.Request, req leave.ReviewRequest) (leave.RequestResponse, error) {
	current, err := h.leaveService.Get(r.Context(), req.LeaveID, req.ReviewerID, true)
	if err != nil {
		return leave.RequestResponse{}, err
	}

	if leave.Status(current.Status) == leave.StatusManagerApproved {
		return h.leaveService.HRReview(r.Context(), req)
	}
	return h.leaveService.ManagerReview(r.Context(), req)
}

// Cancel implements LeaveHandler.
func (h *leaveHandlerImpl) Cancel(w http.ResponseWriter, r *http.Request) {
	identity, ok := auth.IdentityFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Missing bearer token")
		return
	}

	if err := h.leaveService.Cancel(r.Context(), chi.URLParam(r, "id"), identity.UserID); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave request cancelled", nil)
}

// PendingForManager implements LeaveHandler.
func (h *leaveHandlerImpl) PendingForManager(w http.ResponseWriter, r *http.Request) {
	result, err := h.leaveService.ListPendingForManager(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// PendingForHR implements LeaveHandler.
func (h *leaveHandlerImpl) PendingForHR(w http.ResponseWriter, r *http.Request) {
	result, err := h.leaveService.ListPendingForHR(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
