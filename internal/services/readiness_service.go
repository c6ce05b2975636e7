package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"fitfusion/internal/models/db_models"
	"fitfusion/internal/models/request_models"
	"fitfusion/internal/repositories"
	"fitfusion/pkg/utils"
)

type ReadinessService interface {
	CreateScore(ctx context.Context, userID uuid.UUID, request request_models.CreateReadinessRequest) (*db_models.ReadinessScore, error)
	ListScores(ctx context.Context, userID uuid.UUID, startDate, endDate *time.Time) ([]db_models.ReadinessScore, error)
	GetScore(ctx context.Context, userID, scoreID uuid.UUID) (*db_models.ReadinessScore, error)
	UpdateScore(ctx context.Context, userID, scoreID uuid.UUID, request request_models.UpdateReadinessRequest) (*db_models.ReadinessScore, error)
	DeleteScore(ctx context.Context, userID, scoreID uuid.UUID) error
}

func NewReadinessService(readinessRepo repositories.ReadinessRepository) ReadinessService {
	return &readinessService{readinessRepo: readinessRepo}
}

type readinessService struct {
	readinessRepo repositories.ReadinessRepository
}

// truncateToDay normalizes a timestamp to midnight UTC, the granularity the
// one-score-per-day rule is enforced at.
func truncateToDay(t time.Time) time.Time {
	return t.UTC().Truncate(24 * time.Hour)
}

func (s *readinessService) CreateScore(ctx context.Context, userID uuid.UUID, request request_models.CreateReadinessRequest) (*db_models.ReadinessScore, error) {
	if err := request.Validate(); err != nil {
		return nil, err
	}

	day := truncateToDay(time.Now())
	if request.Date != nil {
		day = truncateToDay(*request.Date)
	}

	// The unique index backstops this check under concurrency.
	existing, err := s.readinessRepo.FindByDay(ctx, userID, day)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, utils.ErrReadinessExists
	}

	score := &db_models.ReadinessScore{
		UserID:          userID,
		Date:            day,
		OverallScore:    request.OverallScore,
		Factors:         request.Factors,
		Recommendation:  request.Recommendation,
		InjuryRiskLevel: request.InjuryRiskLevel,
		MLPrediction:    request.MLPrediction,
	}
	if err := s.readinessRepo.Insert(ctx, score); err != nil {
		return nil, err
	}
	return score, nil
}

func (s *readinessService) ListScores(ctx context.Context, userID uuid.UUID, startDate, endDate *time.Time) ([]db_models.ReadinessScore, error) {
	return s.readinessRepo.ListByUser(ctx, userID, startDate, endDate)
}

func (s *readinessService) GetScore(ctx context.Context, userID, scoreID uuid.UUID) (*db_models.ReadinessScore, error) {
	score, err := s.readinessRepo.FindByID(ctx, userID, scoreID)
	if err != nil {
		return nil, err
	}
	if score == nil {
		return nil, utils.ErrReadinessNotFound
	}
	return score, nil
}

func (s *readinessService) UpdateScore(ctx context.Context, userID, scoreID uuid.UUID, request request_models.UpdateReadinessRequest) (*db_models.ReadinessScore, error) {
	if err := request.Validate(); err != nil {
		return nil, err
	}

	score, err := s.GetScore(ctx, userID, scoreID)
	if err != nil {
		return nil, err
	}

	request.Apply(score)
	if err := s.readinessRepo.Update(ctx, score); err != nil {
		return nil, err
	}
	return score, nil
}

func (s *readinessService) DeleteScore(ctx context.Context, userID, scoreID uuid.UUID) error {
	deleted, err := s.readinessRepo.Delete(ctx, userID, scoreID)
	if err != nil {
		return err
	}
	if !deleted {
		return utils.ErrReadinessNotFound
	}
	return nil
}
