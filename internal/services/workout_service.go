package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"fitfusion/internal/models/db_models"
	"fitfusion/internal/models/request_models"
	"fitfusion/internal/models/response_models"
	"fitfusion/internal/repositories"
	"fitfusion/pkg/utils"
)

type WorkoutService interface {
	CreateWorkout(ctx context.Context, userID uuid.UUID, request request_models.CreateWorkoutRequest) (*db_models.Workout, error)
	ListWorkouts(ctx context.Context, userID uuid.UUID, filter request_models.WorkoutListFilter) ([]db_models.Workout, error)
	GetWorkout(ctx context.Context, userID, workoutID uuid.UUID) (*db_models.Workout, error)
	UpdateWorkout(ctx context.Context, userID, workoutID uuid.UUID, request request_models.UpdateWorkoutRequest) (*db_models.Workout, error)
	DeleteWorkout(ctx context.Context, userID, workoutID uuid.UUID) error
	CompleteWorkout(ctx context.Context, userID, workoutID uuid.UUID, request request_models.CompleteWorkoutRequest) (*db_models.Workout, error)
	AddExercise(ctx context.Context, userID, workoutID uuid.UUID, exercise db_models.Exercise) (*db_models.Workout, error)
	UpdateExercise(ctx context.Context, userID, workoutID uuid.UUID, index int, exercise db_models.Exercise) (*db_models.Workout, error)
	RemoveExercise(ctx context.Context, userID, workoutID uuid.UUID, index int) (*db_models.Workout, error)
	Stats(ctx context.Context, userID uuid.UUID, periodDays int) (*response_models.WorkoutStats, error)
}

func NewWorkoutService(workoutRepo repositories.WorkoutRepository) WorkoutService {
	return &workoutService{workoutRepo: workoutRepo}
}

type workoutService struct {
	workoutRepo repositories.WorkoutRepository
}

func (s *workoutService) CreateWorkout(ctx context.Context, userID uuid.UUID, request request_models.CreateWorkoutRequest) (*db_models.Workout, error) {
	if err := request.Validate(); err != nil {
		return nil, err
	}

	date := time.Now()
	if request.Date != nil {
		date = *request.Date
	}

	workout := &db_models.Workout{
		UserID:         userID,
		Date:           date,
		Type:           request.Type,
		Title:          request.Title,
		Exercises:      request.Exercises,
		TotalDuration:  request.TotalDuration,
		CaloriesBurned: request.CaloriesBurned,
		Intensity:      request.Intensity,
		Mood:           request.Mood,
		Notes:          request.Notes,
		AIGenerated:    request.AIGenerated,
	}
	if err := s.workoutRepo.Insert(ctx, workout); err != nil {
		return nil, err
	}
	return workout, nil
}

func (s *workoutService) ListWorkouts(ctx context.Context, userID uuid.UUID, filter request_models.WorkoutListFilter) ([]db_models.Workout, error) {
	return s.workoutRepo.ListByUser(ctx, userID, filter)
}

func (s *workoutService) GetWorkout(ctx context.Context, userID, workoutID uuid.UUID) (*db_models.Workout, error) {
	workout, err := s.workoutRepo.FindByID(ctx, userID, workoutID)
	if err != nil {
		return nil, err
	}
	if workout == nil {
		return nil, utils.ErrWorkoutNotFound
	}
	return workout, nil
}

func (s *workoutService) UpdateWorkout(ctx context.Context, userID, workoutID uuid.UUID, request request_models.UpdateWorkoutRequest) (*db_models.Workout, error) {
	if err := request.Validate(); err != nil {
		return nil, err
	}

	workout, err := s.GetWorkout(ctx, userID, workoutID)
	if err != nil {
		return nil, err
	}

	request.Apply(workout)
	if err := s.workoutRepo.Update(ctx, workout); err != nil {
		return nil, err
	}
	return workout, nil
}

func (s *workoutService) DeleteWorkout(ctx context.Context, userID, workoutID uuid.UUID) error {
	deleted, err := s.workoutRepo.Delete(ctx, userID, workoutID)
	if err != nil {
		return err
	}
	if !deleted {
		return utils.ErrWorkoutNotFound
	}
	return nil
}

func (s *workoutService) CompleteWorkout(ctx context.Context, userID, workoutID uuid.UUID, request request_models.CompleteWorkoutRequest) (*db_models.Workout, error) {
	if err := request.Validate(); err != nil {
		return nil, err
	}

	workout, err := s.GetWorkout(ctx, userID, workoutID)
	if err != nil {
		return nil, err
	}

	workout.IsCompleted = true
	if request.PerformanceScore != nil {
		workout.PerformanceScore = *request.PerformanceScore
	}
	if request.CaloriesBurned != nil {
		workout.CaloriesBurned = *request.CaloriesBurned
	}
	if err := s.workoutRepo.Update(ctx, workout); err != nil {
		return nil, err
	}
	return workout, nil
}

func (s *workoutService) AddExercise(ctx context.Context, userID, workoutID uuid.UUID, exercise db_models.Exercise) (*db_models.Workout, error) {
	if err := request_models.ValidateExercise(&exercise); err != nil {
		return nil, err
	}

	workout, err := s.GetWorkout(ctx, userID, workoutID)
	if err != nil {
		return nil, err
	}

	workout.Exercises = append(workout.Exercises, exercise)
	if err := s.workoutRepo.Update(ctx, workout); err != nil {
		return nil, err
	}
	return workout, nil
}

func (s *workoutService) UpdateExercise(ctx context.Context, userID, workoutID uuid.UUID, index int, exercise db_models.Exercise) (*db_models.Workout, error) {
	if err := request_models.ValidateExercise(&exercise); err != nil {
		return nil, err
	}

	workout, err := s.GetWorkout(ctx, userID, workoutID)
	if err != nil {
		return nil, err
	}
	if index < 0 || index >= len(workout.Exercises) {
		return nil, utils.ErrExerciseNotFound
	}

	workout.Exercises[index] = exercise
	if err := s.workoutRepo.Update(ctx, workout); err != nil {
		return nil, err
	}
	return workout, nil
}

func (s *workoutService) RemoveExercise(ctx context.Context, userID, workoutID uuid.UUID, index int) (*db_models.Workout, error) {
	workout, err := s.GetWorkout(ctx, userID, workoutID)
	if err != nil {
		return nil, err
	}
	if index < 0 || index >= len(workout.Exercises) {
		return nil, utils.ErrExerciseNotFound
	}

	workout.Exercises = append(workout.Exercises[:index], workout.Exercises[index+1:]...)
	if err := s.workoutRepo.Update(ctx, workout); err != nil {
		return nil, err
	}
	return workout, nil
}

func (s *workoutService) Stats(ctx context.Context, userID uuid.UUID, periodDays int) (*response_models.WorkoutStats, error) {
	if periodDays <= 0 {
		periodDays = 30
	}
	since := time.Now().AddDate(0, 0, -periodDays)
	return s.workoutRepo.Stats(ctx, userID, since)
}
