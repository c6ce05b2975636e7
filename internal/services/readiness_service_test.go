package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"fitfusion/internal/models/db_models"
	"fitfusion/internal/models/request_models"
	"fitfusion/pkg/utils"
)

type mockReadinessRepository struct {
	mock.Mock
}

func (m *mockReadinessRepository) Insert(ctx context.Context, score *db_models.ReadinessScore) error {
	args := m.Called(ctx, score)
	return args.Error(0)
}

func (m *mockReadinessRepository) FindByID(ctx context.Context, userID, scoreID uuid.UUID) (*db_models.ReadinessScore, error) {
	args := m.Called(ctx, userID, scoreID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*db_models.ReadinessScore), args.Error(1)
}

func (m *mockReadinessRepository) FindByDay(ctx context.Context, userID uuid.UUID, day time.Time) (*db_models.ReadinessScore, error) {
	args := m.Called(ctx, userID, day)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*db_models.ReadinessScore), args.Error(1)
}

func (m *mockReadinessRepository) ListByUser(ctx context.Context, userID uuid.UUID, startDate, endDate *time.Time) ([]db_models.ReadinessScore, error) {
	args := m.Called(ctx, userID, startDate, endDate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]db_models.ReadinessScore), args.Error(1)
}

func (m *mockReadinessRepository) Update(ctx context.Context, score *db_models.ReadinessScore) error {
	args := m.Called(ctx, score)
	return args.Error(0)
}

func (m *mockReadinessRepository) Delete(ctx context.Context, userID, scoreID uuid.UUID) (bool, error) {
	args := m.Called(ctx, userID, scoreID)
	return args.Bool(0), args.Error(1)
}

func validReadinessRequest(date time.Time) request_models.CreateReadinessRequest {
	return request_models.CreateReadinessRequest{
		Date:           &date,
		OverallScore:   72,
		Recommendation: db_models.RecommendModerateIntensity,
	}
}

func TestCreateScoreTruncatesToDay(t *testing.T) {
	userID := uuid.New()
	repo := new(mockReadinessRepository)
	date := time.Date(2026, 3, 14, 15, 9, 26, 0, time.UTC)
	midnight := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)

	repo.On("FindByDay", mock.Anything, userID, midnight).Return(nil, nil)
	repo.On("Insert", mock.Anything, mock.MatchedBy(func(s *db_models.ReadinessScore) bool {
		return s.Date.Equal(midnight) && s.UserID == userID
	})).Return(nil)

	svc := NewReadinessService(repo)
	score, err := svc.CreateScore(context.Background(), userID, validReadinessRequest(date))

	assert.NoError(t, err)
	assert.Equal(t, midnight, score.Date)
	assert.Equal(t, db_models.InjuryRiskLow, score.InjuryRiskLevel)
	repo.AssertExpectations(t)
}

func TestCreateScoreRejectsSecondEntrySameDay(t *testing.T) {
	userID := uuid.New()
	repo := new(mockReadinessRepository)
	date := time.Date(2026, 3, 14, 8, 0, 0, 0, time.UTC)
	midnight := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)

	repo.On("FindByDay", mock.Anything, userID, midnight).Return(&db_models.ReadinessScore{}, nil)

	svc := NewReadinessService(repo)
	_, err := svc.CreateScore(context.Background(), userID, validReadinessRequest(date))

	assert.ErrorIs(t, err, utils.ErrReadinessExists)
	repo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
}

func TestCreateScoreValidation(t *testing.T) {
	svc := NewReadinessService(new(mockReadinessRepository))

	req := validReadinessRequest(time.Now())
	req.OverallScore = 150
	_, err := svc.CreateScore(context.Background(), uuid.New(), req)
	assert.ErrorIs(t, err, utils.ErrValidation)

	req = validReadinessRequest(time.Now())
	req.Recommendation = "couch-mode"
	_, err = svc.CreateScore(context.Background(), uuid.New(), req)
	assert.ErrorIs(t, err, utils.ErrValidation)
}

func TestDeleteScoreNotFound(t *testing.T) {
	userID := uuid.New()
	scoreID := uuid.New()
	repo := new(mockReadinessRepository)
	repo.On("Delete", mock.Anything, userID, scoreID).Return(false, nil)

	svc := NewReadinessService(repo)
	err := svc.DeleteScore(context.Background(), userID, scoreID)

	assert.ErrorIs(t, err, utils.ErrReadinessNotFound)
}
