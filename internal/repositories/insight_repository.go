package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"fitfusion/internal/models/db_models"
)

type InsightRepository interface {
	Insert(ctx context.Context, insight *db_models.AIInsight) error
	FindByID(ctx context.Context, userID, insightID uuid.UUID) (*db_models.AIInsight, error)
	ListByUser(ctx context.Context, userID uuid.UUID, page, limit int) ([]db_models.AIInsight, int64, error)
	Update(ctx context.Context, insight *db_models.AIInsight) error
}

func NewInsightRepository(db *gorm.DB) InsightRepository {
	return &insightRepository{db: db}
}

type insightRepository struct {
	db *gorm.DB
}

func (r *insightRepository) Insert(ctx context.Context, insight *db_models.AIInsight) error {
	return r.db.WithContext(ctx).Create(insight).Error
}

func (r *insightRepository) FindByID(ctx context.Context, userID, insightID uuid.UUID) (*db_models.AIInsight, error) {
	var insight db_models.AIInsight
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", insightID, userID).
		First(&insight).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &insight, nil
}

func (r *insightRepository) ListByUser(ctx context.Context, userID uuid.UUID, page, limit int) ([]db_models.AIInsight, int64, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Model(&db_models.AIInsight{}).
		Where("user_id = ?", userID).
		Count(&total).Error
	if err != nil {
		return nil, 0, err
	}

	var insights []db_models.AIInsight
	err = r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at desc").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&insights).Error
	if err != nil {
		return nil, 0, err
	}
	return insights, total, nil
}

func (r *insightRepository) Update(ctx context.Context, insight *db_models.AIInsight) error {
	return r.db.WithContext(ctx).Save(insight).Error
}
