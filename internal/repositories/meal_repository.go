package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"fitfusion/internal/models/db_models"
	"fitfusion/internal/models/request_models"
	"fitfusion/internal/models/response_models"
)

type MealRepository interface {
	Insert(ctx context.Context, meal *db_models.Meal) error
	FindByID(ctx context.Context, userID, mealID uuid.UUID) (*db_models.Meal, error)
	ListByUser(ctx context.Context, userID uuid.UUID, filter request_models.MealListFilter) ([]db_models.Meal, int64, error)
	Update(ctx context.Context, meal *db_models.Meal) error
	Delete(ctx context.Context, userID, mealID uuid.UUID) (bool, error)
	Stats(ctx context.Context, userID uuid.UUID, filter request_models.MealListFilter) (*response_models.MealStats, error)
}

func NewMealRepository(db *gorm.DB) MealRepository {
	return &mealRepository{db: db}
}

type mealRepository struct {
	db *gorm.DB
}

func (r *mealRepository) Insert(ctx context.Context, meal *db_models.Meal) error {
	return r.db.WithContext(ctx).Create(meal).Error
}

func (r *mealRepository) FindByID(ctx context.Context, userID, mealID uuid.UUID) (*db_models.Meal, error) {
	var meal db_models.Meal
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", mealID, userID).
		First(&meal).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &meal, nil
}

func (r *mealRepository) scopedQuery(ctx context.Context, userID uuid.UUID, filter request_models.MealListFilter) *gorm.DB {
	q := r.db.WithContext(ctx).Model(&db_models.Meal{}).Where("user_id = ?", userID)
	if filter.MealType != "" {
		q = q.Where("meal_type = ?", filter.MealType)
	}
	if filter.StartDate != nil {
		q = q.Where("date >= ?", *filter.StartDate)
	}
	if filter.EndDate != nil {
		q = q.Where("date <= ?", *filter.EndDate)
	}
	return q
}

func (r *mealRepository) ListByUser(ctx context.Context, userID uuid.UUID, filter request_models.MealListFilter) ([]db_models.Meal, int64, error) {
	var total int64
	if err := r.scopedQuery(ctx, userID, filter).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.Limit
	var meals []db_models.Meal
	err := r.scopedQuery(ctx, userID, filter).
		Order("date desc").
		Offset(offset).
		Limit(filter.Limit).
		Find(&meals).Error
	if err != nil {
		return nil, 0, err
	}
	return meals, total, nil
}

func (r *mealRepository) Update(ctx context.Context, meal *db_models.Meal) error {
	return r.db.WithContext(ctx).Save(meal).Error
}

func (r *mealRepository) Delete(ctx context.Context, userID, mealID uuid.UUID) (bool, error) {
	res := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", mealID, userID).
		Delete(&db_models.Meal{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *mealRepository) Stats(ctx context.Context, userID uuid.UUID, filter request_models.MealListFilter) (*response_models.MealStats, error) {
	var stats response_models.MealStats
	err := r.scopedQuery(ctx, userID, filter).
		Select(`COUNT(*) AS total_meals,
			COALESCE(SUM(calories), 0) AS total_calories,
			COALESCE(ROUND(AVG(calories)::numeric, 2), 0) AS avg_calories,
			COALESCE(SUM((macros->>'protein')::numeric), 0) AS total_protein,
			COALESCE(SUM((macros->>'carbs')::numeric), 0) AS total_carbs,
			COALESCE(SUM((macros->>'fats')::numeric), 0) AS total_fats`).
		Scan(&stats).Error
	if err != nil {
		return nil, err
	}

	counts := []struct {
		MealType string
		N        int64
	}{}
	err = r.scopedQuery(ctx, userID, filter).
		Select("meal_type, COUNT(*) AS n").
		Group("meal_type").
		Scan(&counts).Error
	if err != nil {
		return nil, err
	}
	for _, c := range counts {
		switch db_models.MealType(c.MealType) {
		case db_models.MealBreakfast:
			stats.MealTypeCounts.Breakfast = c.N
		case db_models.MealLunch:
			stats.MealTypeCounts.Lunch = c.N
		case db_models.MealDinner:
			stats.MealTypeCounts.Dinner = c.N
		case db_models.MealSnack:
			stats.MealTypeCounts.Snack = c.N
		}
	}
	return &stats, nil
}
