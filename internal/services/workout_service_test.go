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
	"fitfusion/internal/models/response_models"
	"fitfusion/pkg/utils"
)

type mockWorkoutRepository struct {
	mock.Mock
}

func (m *mockWorkoutRepository) Insert(ctx context.Context, workout *db_models.Workout) error {
	args := m.Called(ctx, workout)
	return args.Error(0)
}

func (m *mockWorkoutRepository) FindByID(ctx context.Context, userID, workoutID uuid.UUID) (*db_models.Workout, error) {
	args := m.Called(ctx, userID, workoutID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*db_models.Workout), args.Error(1)
}

func (m *mockWorkoutRepository) ListByUser(ctx context.Context, userID uuid.UUID, filter request_models.WorkoutListFilter) ([]db_models.Workout, error) {
	args := m.Called(ctx, userID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]db_models.Workout), args.Error(1)
}

func (m *mockWorkoutRepository) Update(ctx context.Context, workout *db_models.Workout) error {
	args := m.Called(ctx, workout)
	return args.Error(0)
}

func (m *mockWorkoutRepository) Delete(ctx context.Context, userID, workoutID uuid.UUID) (bool, error) {
	args := m.Called(ctx, userID, workoutID)
	return args.Bool(0), args.Error(1)
}

func (m *mockWorkoutRepository) Stats(ctx context.Context, userID uuid.UUID, since time.Time) (*response_models.WorkoutStats, error) {
	args := m.Called(ctx, userID, since)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response_models.WorkoutStats), args.Error(1)
}

func storedWorkout(userID uuid.UUID) *db_models.Workout {
	return &db_models.Workout{
		UserID: userID,
		Type:   db_models.WorkoutStrength,
		Title:  "Leg day",
		Exercises: []db_models.Exercise{
			{Name: "Squat", Sets: 5, Reps: 5},
			{Name: "Leg press", Sets: 3, Reps: 10},
		},
		TotalDuration: 60,
	}
}

func TestCompleteWorkoutSetsFields(t *testing.T) {
	userID := uuid.New()
	workoutID := uuid.New()
	repo := new(mockWorkoutRepository)
	workout := storedWorkout(userID)

	repo.On("FindByID", mock.Anything, userID, workoutID).Return(workout, nil)
	repo.On("Update", mock.Anything, workout).Return(nil)

	score := 85
	calories := 450
	svc := NewWorkoutService(repo)
	result, err := svc.CompleteWorkout(context.Background(), userID, workoutID, request_models.CompleteWorkoutRequest{
		PerformanceScore: &score,
		CaloriesBurned:   &calories,
	})

	assert.NoError(t, err)
	assert.True(t, result.IsCompleted)
	assert.Equal(t, 85, result.PerformanceScore)
	assert.Equal(t, 450, result.CaloriesBurned)
	repo.AssertExpectations(t)
}

func TestCompleteWorkoutMissing(t *testing.T) {
	userID := uuid.New()
	workoutID := uuid.New()
	repo := new(mockWorkoutRepository)
	repo.On("FindByID", mock.Anything, userID, workoutID).Return(nil, nil)

	svc := NewWorkoutService(repo)
	_, err := svc.CompleteWorkout(context.Background(), userID, workoutID, request_models.CompleteWorkoutRequest{})

	assert.ErrorIs(t, err, utils.ErrWorkoutNotFound)
}

func TestAddExercise(t *testing.T) {
	userID := uuid.New()
	workoutID := uuid.New()
	repo := new(mockWorkoutRepository)
	workout := storedWorkout(userID)

	repo.On("FindByID", mock.Anything, userID, workoutID).Return(workout, nil)
	repo.On("Update", mock.Anything, workout).Return(nil)

	svc := NewWorkoutService(repo)
	result, err := svc.AddExercise(context.Background(), userID, workoutID, db_models.Exercise{Name: "Calf raise", Sets: 4, Reps: 12})

	assert.NoError(t, err)
	assert.Len(t, result.Exercises, 3)
	assert.Equal(t, "Calf raise", result.Exercises[2].Name)
}

func TestUpdateExerciseOutOfRange(t *testing.T) {
	userID := uuid.New()
	workoutID := uuid.New()
	repo := new(mockWorkoutRepository)
	repo.On("FindByID", mock.Anything, userID, workoutID).Return(storedWorkout(userID), nil)

	svc := NewWorkoutService(repo)
	_, err := svc.UpdateExercise(context.Background(), userID, workoutID, 7, db_models.Exercise{Name: "Lunge"})

	assert.ErrorIs(t, err, utils.ErrExerciseNotFound)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestRemoveExercise(t *testing.T) {
	userID := uuid.New()
	workoutID := uuid.New()
	repo := new(mockWorkoutRepository)
	workout := storedWorkout(userID)

	repo.On("FindByID", mock.Anything, userID, workoutID).Return(workout, nil)
	repo.On("Update", mock.Anything, workout).Return(nil)

	svc := NewWorkoutService(repo)
	result, err := svc.RemoveExercise(context.Background(), userID, workoutID, 0)

	assert.NoError(t, err)
	assert.Len(t, result.Exercises, 1)
	assert.Equal(t, "Leg press", result.Exercises[0].Name)
}

func TestStatsDefaultsPeriod(t *testing.T) {
	userID := uuid.New()
	repo := new(mockWorkoutRepository)
	want := &response_models.WorkoutStats{TotalWorkouts: 4}

	repo.On("Stats", mock.Anything, userID, mock.MatchedBy(func(since time.Time) bool {
		expected := time.Now().AddDate(0, 0, -30)
		return since.Sub(expected).Abs() < time.Minute
	})).Return(want, nil)

	svc := NewWorkoutService(repo)
	stats, err := svc.Stats(context.Background(), userID, 0)

	assert.NoError(t, err)
	assert.Equal(t, int64(4), stats.TotalWorkouts)
	repo.AssertExpectations(t)
}
