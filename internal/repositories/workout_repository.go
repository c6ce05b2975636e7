package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"fitfusion/internal/models/db_models"
	"fitfusion/internal/models/request_models"
	"fitfusion/internal/models/response_models"
)

type WorkoutRepository interface {
	Insert(ctx context.Context, workout *db_models.Workout) error
	FindByID(ctx context.Context, userID, workoutID uuid.UUID) (*db_models.Workout, error)
	ListByUser(ctx context.Context, userID uuid.UUID, filter request_models.WorkoutListFilter) ([]db_models.Workout, error)
	Update(ctx context.Context, workout *db_models.Workout) error
	Delete(ctx context.Context, userID, workoutID uuid.UUID) (bool, error)
	Stats(ctx context.Context, userID uuid.UUID, since time.Time) (*response_models.WorkoutStats, error)
}

func NewWorkoutRepository(db *gorm.DB) WorkoutRepository {
	return &workoutRepository{db: db}
}

type workoutRepository struct {
	db *gorm.DB
}

func (r *workoutRepository) Insert(ctx context.Context, workout *db_models.Workout) error {
	return r.db.WithContext(ctx).Create(workout).Error
}

func (r *workoutRepository) FindByID(ctx context.Context, userID, workoutID uuid.UUID) (*db_models.Workout, error) {
	var workout db_models.Workout
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", workoutID, userID).
		First(&workout).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &workout, nil
}

func (r *workoutRepository) ListByUser(ctx context.Context, userID uuid.UUID, filter request_models.WorkoutListFilter) ([]db_models.Workout, error) {
	q := r.db.WithContext(ctx).Where("user_id = ?", userID)
	if filter.Type != "" {
		q = q.Where("type = ?", filter.Type)
	}
	if filter.Date != nil {
		q = q.Where("date >= ?", *filter.Date)
	}
	if filter.IsCompleted != nil {
		q = q.Where("is_completed = ?", *filter.IsCompleted)
	}

	var workouts []db_models.Workout
	if err := q.Order("date desc").Find(&workouts).Error; err != nil {
		return nil, err
	}
	return workouts, nil
}

func (r *workoutRepository) Update(ctx context.Context, workout *db_models.Workout) error {
	return r.db.WithContext(ctx).Save(workout).Error
}

func (r *workoutRepository) Delete(ctx context.Context, userID, workoutID uuid.UUID) (bool, error) {
	res := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", workoutID, userID).
		Delete(&db_models.Workout{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// Stats pushes the aggregation down to Postgres; COALESCE keeps the zeroed
// default shape when no rows match.
func (r *workoutRepository) Stats(ctx context.Context, userID uuid.UUID, since time.Time) (*response_models.WorkoutStats, error) {
	var stats response_models.WorkoutStats
	err := r.db.WithContext(ctx).
		Model(&db_models.Workout{}).
		Select(`COUNT(*) AS total_workouts,
			COALESCE(SUM(CASE WHEN is_completed THEN 1 ELSE 0 END), 0) AS completed_workouts,
			COALESCE(SUM(total_duration), 0) AS total_duration,
			COALESCE(SUM(calories_burned), 0) AS total_calories,
			COALESCE(AVG(performance_score), 0) AS avg_performance`).
		Where("user_id = ? AND date >= ?", userID, since).
		Scan(&stats).Error
	if err != nil {
		return nil, err
	}
	return &stats, nil
}
