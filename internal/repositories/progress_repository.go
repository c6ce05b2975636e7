package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"fitfusion/internal/models/db_models"
	"fitfusion/internal/models/request_models"
	"fitfusion/internal/models/response_models"
)

// trendExpressions maps a metric name to the SQL expression producing its
// numeric value. Embedded documents are stored as jsonb so the weight and
// measurement metrics reach into the column with ->>.
var trendExpressions = map[string]string{
	"weight":  "(weight->>'value')::numeric",
	"bodyFat": "body_fat_percentage",
	"chest":   "(measurements->>'chest')::numeric",
	"waist":   "(measurements->>'waist')::numeric",
	"hips":    "(measurements->>'hips')::numeric",
	"thighs":  "(measurements->>'thighs')::numeric",
	"arms":    "(measurements->>'arms')::numeric",
}

// TrendMetricSupported reports whether the trends endpoint can chart metric.
func TrendMetricSupported(metric string) bool {
	_, ok := trendExpressions[metric]
	return ok
}

type ProgressRepository interface {
	Insert(ctx context.Context, progress *db_models.Progress) error
	FindByID(ctx context.Context, userID, progressID uuid.UUID) (*db_models.Progress, error)
	ListByUser(ctx context.Context, userID uuid.UUID, filter request_models.ProgressListFilter) ([]db_models.Progress, error)
	Update(ctx context.Context, progress *db_models.Progress) error
	Delete(ctx context.Context, userID, progressID uuid.UUID) (bool, error)
	Stats(ctx context.Context, userID uuid.UUID, filter request_models.ProgressListFilter) (*response_models.ProgressStats, error)
	Trends(ctx context.Context, userID uuid.UUID, metric string, since time.Time) ([]response_models.TrendPoint, error)
}

func NewProgressRepository(db *gorm.DB) ProgressRepository {
	return &progressRepository{db: db}
}

type progressRepository struct {
	db *gorm.DB
}

func (r *progressRepository) Insert(ctx context.Context, progress *db_models.Progress) error {
	return r.db.WithContext(ctx).Create(progress).Error
}

func (r *progressRepository) FindByID(ctx context.Context, userID, progressID uuid.UUID) (*db_models.Progress, error) {
	var progress db_models.Progress
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", progressID, userID).
		First(&progress).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &progress, nil
}

func (r *progressRepository) scopedQuery(ctx context.Context, userID uuid.UUID, filter request_models.ProgressListFilter) *gorm.DB {
	q := r.db.WithContext(ctx).Model(&db_models.Progress{}).Where("user_id = ?", userID)
	if filter.StartDate != nil {
		q = q.Where("date >= ?", *filter.StartDate)
	}
	if filter.EndDate != nil {
		q = q.Where("date <= ?", *filter.EndDate)
	}
	return q
}

func (r *progressRepository) ListByUser(ctx context.Context, userID uuid.UUID, filter request_models.ProgressListFilter) ([]db_models.Progress, error) {
	var entries []db_models.Progress
	err := r.scopedQuery(ctx, userID, filter).
		Order("date desc").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *progressRepository) Update(ctx context.Context, progress *db_models.Progress) error {
	return r.db.WithContext(ctx).Save(progress).Error
}

func (r *progressRepository) Delete(ctx context.Context, userID, progressID uuid.UUID) (bool, error) {
	res := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", progressID, userID).
		Delete(&db_models.Progress{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// Stats compares the earliest and latest entries in the range. Weight lives
// inside a jsonb document, so the deltas are computed here rather than in SQL.
func (r *progressRepository) Stats(ctx context.Context, userID uuid.UUID, filter request_models.ProgressListFilter) (*response_models.ProgressStats, error) {
	var total int64
	if err := r.scopedQuery(ctx, userID, filter).Count(&total).Error; err != nil {
		return nil, err
	}

	stats := &response_models.ProgressStats{TotalEntries: total}
	if total == 0 {
		return stats, nil
	}

	var first, last db_models.Progress
	if err := r.scopedQuery(ctx, userID, filter).Order("date asc").First(&first).Error; err != nil {
		return nil, err
	}
	if err := r.scopedQuery(ctx, userID, filter).Order("date desc").First(&last).Error; err != nil {
		return nil, err
	}

	stats.StartWeight = first.Weight.Value
	stats.CurrentWeight = last.Weight.Value
	stats.WeightChange = last.Weight.Value - first.Weight.Value
	stats.StartBodyFat = first.BodyFatPercentage
	stats.CurrentBodyFat = last.BodyFatPercentage
	stats.BodyFatChange = last.BodyFatPercentage - first.BodyFatPercentage
	return stats, nil
}

func (r *progressRepository) Trends(ctx context.Context, userID uuid.UUID, metric string, since time.Time) ([]response_models.TrendPoint, error) {
	expr, ok := trendExpressions[metric]
	if !ok {
		return nil, fmt.Errorf("unsupported trend metric %q", metric)
	}

	rows := []struct {
		Date  time.Time
		Value float64
	}{}
	err := r.db.WithContext(ctx).
		Model(&db_models.Progress{}).
		Select(fmt.Sprintf("date, COALESCE(%s, 0) AS value", expr)).
		Where("user_id = ? AND date >= ?", userID, since).
		Order("date asc").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	points := make([]response_models.TrendPoint, 0, len(rows))
	for _, row := range rows {
		points = append(points, response_models.TrendPoint{
			Date:  row.Date.Format("2006-01-02"),
			Value: row.Value,
		})
	}
	return points, nil
}
