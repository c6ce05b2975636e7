package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"fitfusion/internal/models/db_models"
	"fitfusion/internal/models/request_models"
	"fitfusion/internal/models/response_models"
	"fitfusion/internal/repositories"
	"fitfusion/pkg/utils"
)

type ProgressService interface {
	CreateEntry(ctx context.Context, userID uuid.UUID, request request_models.CreateProgressRequest) (*db_models.Progress, error)
	ListEntries(ctx context.Context, userID uuid.UUID, filter request_models.ProgressListFilter) ([]db_models.Progress, error)
	GetEntry(ctx context.Context, userID, progressID uuid.UUID) (*db_models.Progress, error)
	UpdateEntry(ctx context.Context, userID, progressID uuid.UUID, request request_models.UpdateProgressRequest) (*db_models.Progress, error)
	DeleteEntry(ctx context.Context, userID, progressID uuid.UUID) error
	Stats(ctx context.Context, userID uuid.UUID, filter request_models.ProgressListFilter) (*response_models.ProgressStats, error)
	Trends(ctx context.Context, userID uuid.UUID, metric string, periodDays int) (*response_models.ProgressTrends, error)
}

func NewProgressService(progressRepo repositories.ProgressRepository) ProgressService {
	return &progressService{progressRepo: progressRepo}
}

type progressService struct {
	progressRepo repositories.ProgressRepository
}

func (s *progressService) CreateEntry(ctx context.Context, userID uuid.UUID, request request_models.CreateProgressRequest) (*db_models.Progress, error) {
	if err := request.Validate(); err != nil {
		return nil, err
	}

	date := time.Now()
	if request.Date != nil {
		date = *request.Date
	}

	entry := &db_models.Progress{
		UserID:             userID,
		Date:               date,
		Weight:             request.Weight,
		BodyFatPercentage:  request.BodyFatPercentage,
		Measurements:       request.Measurements,
		Photos:             request.Photos,
		StrengthBenchmarks: request.StrengthBenchmarks,
		CardioMetrics:      request.CardioMetrics,
		Notes:              request.Notes,
	}
	if err := s.progressRepo.Insert(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

func (s *progressService) ListEntries(ctx context.Context, userID uuid.UUID, filter request_models.ProgressListFilter) ([]db_models.Progress, error) {
	return s.progressRepo.ListByUser(ctx, userID, filter)
}

func (s *progressService) GetEntry(ctx context.Context, userID, progressID uuid.UUID) (*db_models.Progress, error) {
	entry, err := s.progressRepo.FindByID(ctx, userID, progressID)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, utils.ErrProgressNotFound
	}
	return entry, nil
}

func (s *progressService) UpdateEntry(ctx context.Context, userID, progressID uuid.UUID, request request_models.UpdateProgressRequest) (*db_models.Progress, error) {
	if err := request.Validate(); err != nil {
		return nil, err
	}

	entry, err := s.GetEntry(ctx, userID, progressID)
	if err != nil {
		return nil, err
	}

	request.Apply(entry)
	if err := s.progressRepo.Update(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

func (s *progressService) DeleteEntry(ctx context.Context, userID, progressID uuid.UUID) error {
	deleted, err := s.progressRepo.Delete(ctx, userID, progressID)
	if err != nil {
		return err
	}
	if !deleted {
		return utils.ErrProgressNotFound
	}
	return nil
}

func (s *progressService) Stats(ctx context.Context, userID uuid.UUID, filter request_models.ProgressListFilter) (*response_models.ProgressStats, error) {
	return s.progressRepo.Stats(ctx, userID, filter)
}

func (s *progressService) Trends(ctx context.Context, userID uuid.UUID, metric string, periodDays int) (*response_models.ProgressTrends, error) {
	if metric == "" {
		metric = "weight"
	}
	if !repositories.TrendMetricSupported(metric) {
		return nil, fmt.Errorf("%w: unsupported metric %q", utils.ErrValidation, metric)
	}
	if periodDays <= 0 {
		periodDays = 90
	}

	since := time.Now().AddDate(0, 0, -periodDays)
	points, err := s.progressRepo.Trends(ctx, userID, metric, since)
	if err != nil {
		return nil, err
	}
	return &response_models.ProgressTrends{
		Metric: metric,
		Period: periodDays,
		Points: points,
	}, nil
}
