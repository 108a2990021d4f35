package user

import (
	"context"
	"math"
	"time"

	"github.com/induspriya/attendance-portal/internal/domain/user"
)

type userService struct {
	userRepo user.UserRepository
}

func NewUserService(userRepo user.UserRepository) user.UserService {
	return &userService{userRepo: userRepo}
}

// GetProfile implements user.UserService.
func (s *userService) GetProfile(ctx context.Context, userID string) (user.UserResponse, error) {
	u, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return user.UserResponse{}, err
	}
	return toUserResponse(u), nil
}

// ListUsers implements user.UserService.
func (s *userService) ListUsers(ctx context.Context, filter user.ListUsersFilter) (user.ListUsersResponse, error) {
	if err := filter.Validate(); err != nil {
		return user.ListUsersResponse{}, err
	}

	users, total, err := s.userRepo.List(ctx, filter)
	if err != nil {
		return user.ListUsersResponse{}, err
	}

	responses := make([]user.UserResponse, 0, len(users))
	for _, u := range users {
		responses = append(responses, toUserResponse(u))
	}

	totalPages := int(math.Ceil(float64(total) / float64(filter.Limit)))

	return user.ListUsersResponse{
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: totalPages,
		Users:      responses,
	}, nil
}

// UpdateRole implements user.UserService.
func (s *userService) UpdateRole(ctx context.Context, req user.UpdateRoleRequest) (user.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return user.UserResponse{}, err
	}

	if err := s.userRepo.UpdateRole(ctx, req.ID, user.Role(req.Role)); err != nil {
		return user.UserResponse{}, err
	}

	u, err := s.userRepo.GetByID(ctx, req.ID)
	if err != nil {
		return user.UserResponse{}, err
	}

	return toUserResponse(u), nil
}

// Deactivate implements user.UserService.
func (s *userService) Deactivate(ctx context.Context, id string) error {
	return s.userRepo.SetActive(ctx, id, false)
}

// Activate implements user.UserService.
func (s *userService) Activate(ctx context.Context, id string) error {
	return s.userRepo.SetActive(ctx, id, true)
}

func toUserResponse(u user.User) user.UserResponse {
	return user.UserResponse{
		ID:         u.ID,
		Name:       u.Name,
		Email:      u.Email,
		Role:       string(u.Role),
		Department: u.Department,
		Position:   u.Position,
		IsActive:   u.IsActive,
		CreatedAt:  u.CreatedAt.Format(time.RFC3339),
	}
}
