package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"fitfusion/internal/models/db_models"
)

type ReadinessRepository interface {
	Insert(ctx context.Context, score *db_models.ReadinessScore) error
	FindByID(ctx context.Context, userID, scoreID uuid.UUID) (*db_models.ReadinessScore, error)
	FindByDay(ctx context.Context, userID uuid.UUID, day time.Time) (*db_models.ReadinessScore, error)
	ListByUser(ctx context.Context, userID uuid.UUID, startDate, endDate *time.Time) ([]db_models.ReadinessScore, error)
	Update(ctx context.Context, score *db_models.ReadinessScore) error
	Delete(ctx context.Context, userID, scoreID uuid.UUID) (bool, error)
}

func NewReadinessRepository(db *gorm.DB) ReadinessRepository {
	return &readinessRepository{db: db}
}

type readinessRepository struct {
	db *gorm.DB
}

func (r *readinessRepository) Insert(ctx context.Context, score *db_models.ReadinessScore) error {
	return r.db.WithContext(ctx).Create(score).Error
}

func (r *readinessRepository) FindByID(ctx context.Context, userID, scoreID uuid.UUID) (*db_models.ReadinessScore, error) {
	var score db_models.ReadinessScore
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", scoreID, userID).
		First(&score).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &score, nil
}

// FindByDay expects day already truncated to midnight UTC.
func (r *readinessRepository) FindByDay(ctx context.Context, userID uuid.UUID, day time.Time) (*db_models.ReadinessScore, error) {
	var score db_models.ReadinessScore
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND date = ?", userID, day).
		First(&score).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &score, nil
}

func (r *readinessRepository) ListByUser(ctx context.Context, userID uuid.UUID, startDate, endDate *time.Time) ([]db_models.ReadinessScore, error) {
	q := r.db.WithContext(ctx).Where("user_id = ?", userID)
	if startDate != nil {
		q = q.Where("date >= ?", *startDate)
	}
	if endDate != nil {
		q = q.Where("date <= ?", *endDate)
	}

	var scores []db_models.ReadinessScore
	if err := q.Order("date desc").Find(&scores).Error; err != nil {
		return nil, err
	}
	return scores, nil
}

func (r *readinessRepository) Update(ctx context.Context, score *db_models.ReadinessScore) error {
	return r.db.WithContext(ctx).Save(score).Error
}

func (r *readinessRepository) Delete(ctx context.Context, userID, scoreID uuid.UUID) (bool, error) {
	res := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", scoreID, userID).
		Delete(&db_models.ReadinessScore{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
