package services

import (
	"context"

	"github.com/google/uuid"

	"fitfusion/internal/models/db_models"
	"fitfusion/internal/models/request_models"
	"fitfusion/internal/repositories"
	"fitfusion/pkg/utils"
)

type UserService interface {
	ListUsers(ctx context.Context) ([]db_models.User, error)
	GetUserInfo(ctx context.Context, userID uuid.UUID) (*db_models.User, error)
	UpdateStats(ctx context.Context, callerID, targetID uuid.UUID, request request_models.UpdateStatsRequest) (*db_models.User, error)
	DeleteUser(ctx context.Context, callerID, targetID uuid.UUID) error
}

func NewUserService(userRepo repositories.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

type userService struct {
	userRepo repositories.UserRepository
}

func (s *userService) ListUsers(ctx context.Context) ([]db_models.User, error) {
	return s.userRepo.ListAll(ctx)
}

func (s *userService) GetUserInfo(ctx context.Context, userID uuid.UUID) (*db_models.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, utils.ErrUserNotFound
	}
	return user, nil
}

// UpdateStats only ever touches the caller's own record. A mismatched target
// id is reported as not found rather than forbidden, so ids are never probed.
func (s *userService) UpdateStats(ctx context.Context, callerID, targetID uuid.UUID, request request_models.UpdateStatsRequest) (*db_models.User, error) {
	if callerID != targetID {
		return nil, utils.ErrUserNotFound
	}
	if err := request.Validate(); err != nil {
		return nil, err
	}

	user, err := s.userRepo.FindByID(ctx, targetID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, utils.ErrUserNotFound
	}

	request.Apply(user)
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) DeleteUser(ctx context.Context, callerID, targetID uuid.UUID) error {
	if callerID != targetID {
		return utils.ErrUserNotFound
	}

	user, err := s.userRepo.FindByID(ctx, targetID)
	if err != nil {
		return err
	}
	if user == nil {
		return utils.ErrUserNotFound
	}
	return s.userRepo.Delete(ctx, targetID)
}
