package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"fitfusion/internal/models/request_models"
	"fitfusion/pkg/utils"
)

func TestUpdateStatsRejectsOtherUsers(t *testing.T) {
	repo := new(mockUserRepository)
	svc := NewUserService(repo)

	age := 30
	_, err := svc.UpdateStats(context.Background(), uuid.New(), uuid.New(), request_models.UpdateStatsRequest{Age: &age})

	assert.ErrorIs(t, err, utils.ErrUserNotFound)
	repo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}

func TestUpdateStatsAppliesPatch(t *testing.T) {
	userID := uuid.New()
	repo := new(mockUserRepository)
	user := testUser()

	repo.On("FindByID", mock.Anything, userID).Return(user, nil)
	repo.On("Update", mock.Anything, user).Return(nil)

	age := 30
	svc := NewUserService(repo)
	updated, err := svc.UpdateStats(context.Background(), userID, userID, request_models.UpdateStatsRequest{Age: &age})

	assert.NoError(t, err)
	assert.Equal(t, 30, updated.Age)
	repo.AssertExpectations(t)
}

func TestDeleteUserRejectsOtherUsers(t *testing.T) {
	repo := new(mockUserRepository)
	svc := NewUserService(repo)

	err := svc.DeleteUser(context.Background(), uuid.New(), uuid.New())

	assert.ErrorIs(t, err, utils.ErrUserNotFound)
	repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestGetUserInfoMissing(t *testing.T) {
	userID := uuid.New()
	repo := new(mockUserRepository)
	repo.On("FindByID", mock.Anything, userID).Return(nil, nil)

	svc := NewUserService(repo)
	_, err := svc.GetUserInfo(context.Background(), userID)

	assert.ErrorIs(t, err, utils.ErrUserNotFound)
}
