package services

import (
	"context"
	"time"

	"fitfusion/internal/models/db_models"
	"fitfusion/internal/models/request_models"
	"fitfusion/internal/repositories"
	"fitfusion/pkg/utils"
)

type AuthService interface {
	Register(ctx context.Context, request request_models.RegisterRequest) (*db_models.User, string, error)
	Login(ctx context.Context, request request_models.LoginRequest) (*db_models.User, string, error)
}

func NewAuthService(userRepo repositories.UserRepository) AuthService {
	return &authService{userRepo: userRepo}
}

type authService struct {
	userRepo repositories.UserRepository
}

func (s *authService) Register(ctx context.Context, request request_models.RegisterRequest) (*db_models.User, string, error) {
	if err := request.Validate(); err != nil {
		return nil, "", err
	}

	existing, err := s.userRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, "", err
	}
	if existing != nil {
		return nil, "", utils.ErrEmailAlreadyExists
	}

	hash, err := utils.HashPassword(request.Password)
	if err != nil {
		return nil, "", err
	}

	user := &db_models.User{
		Name:               request.Name,
		Email:              request.Email,
		PasswordHash:       hash,
		Age:                request.Age,
		Gender:             request.Gender,
		Height:             request.Height,
		CurrentWeight:      request.CurrentWeight,
		TargetWeight:       request.TargetWeight,
		FitnessGoal:        request.FitnessGoal,
		ActivityLevel:      request.ActivityLevel,
		AvailableEquipment: request.AvailableEquipment,
		DietaryPreference:  request.DietaryPreference,
		LastActive:         time.Now(),
	}
	if err := s.userRepo.Insert(ctx, user); err != nil {
		return nil, "", err
	}

	token, err := utils.CreateToken(user.ID)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

func (s *authService) Login(ctx context.Context, request request_models.LoginRequest) (*db_models.User, string, error) {
	if err := request.Validate(); err != nil {
		return nil, "", err
	}

	user, err := s.userRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, "", err
	}
	if user == nil {
		return nil, "", utils.ErrInvalidCredentials
	}
	if err := utils.ComparePasswords(user.PasswordHash, request.Password); err != nil {
		return nil, "", utils.ErrInvalidCredentials
	}

	user.LastActive = time.Now()
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, "", err
	}

	token, err := utils.CreateToken(user.ID)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}
