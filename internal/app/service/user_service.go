package service

import (
	"context"
	"errors"
	"fmt"

	"exercise_tracker/internal/common"
	"exercise_tracker/internal/domain/model"
	"exercise_tracker/internal/domain/repository"
)

type UserService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

type CreateUserRequest struct {
	Username string `json:"username"`
}

type CreateUserResponse struct {
	Username string `json:"username"`
	ID       string `json:"id"`
}

func (s *UserService) CreateUser(ctx context.Context, req CreateUserRequest) (*CreateUserResponse, error) {
	if req.Username == "" {
		return nil, common.NewValidationError("username is required")
	}

	_, err := s.userRepo.FindByUsername(ctx, req.Username)
	if err == nil {
		return nil, common.NewConflictError("username already exists")
	}
	if !errors.Is(err, common.ErrNotFound) {
		return nil, fmt.Errorf("failed to look up username: %w", err)
	}

	user := &model.User{Username: req.Username}
	if err := s.userRepo.Create(ctx, user); err != nil {
		// The unique index may still reject a racing duplicate.
		if errors.Is(err, common.ErrConflict) {
			return nil, common.NewConflictError("username already exists")
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return &CreateUserResponse{Username: user.Username, ID: user.ID.Hex()}, nil
}
