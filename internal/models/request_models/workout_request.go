package request_models

import (
	"fmt"
	"strings"
	"time"

	"fitfusion/internal/models/db_models"
	"fitfusion/pkg/utils"
)

type CreateWorkoutRequest struct {
	Date           *time.Time            `json:"date,omitempty"`
	Type           db_models.WorkoutType `json:"type"`
	Title          string                `json:"title"`
	Exercises      []db_models.Exercise  `json:"exercises"`
	TotalDuration  int                   `json:"totalDuration"`
	CaloriesBurned int                   `json:"caloriesBurned"`
	Intensity      db_models.Intensity   `json:"intensity"`
	Mood           db_models.Mood        `json:"mood"`
	Notes          string                `json:"notes"`
	AIGenerated    bool                  `json:"aiGenerated"`
}

func (r *CreateWorkoutRequest) Validate() error {
	if !r.Type.IsValid() {
		return fmt.Errorf("%w: invalid workout type", utils.ErrValidation)
	}
	if strings.TrimSpace(r.Title) == "" {
		return fmt.Errorf("%w: title is required", utils.ErrValidation)
	}
	if r.TotalDuration <= 0 {
		return fmt.Errorf("%w: totalDuration must be positive", utils.ErrValidation)
	}
	if r.CaloriesBurned < 0 {
		return fmt.Errorf("%w: caloriesBurned cannot be negative", utils.ErrValidation)
	}
	if r.Intensity != "" && !r.Intensity.IsValid() {
		return fmt.Errorf("%w: invalid intensity", utils.ErrValidation)
	}
	if r.Mood != "" && !r.Mood.IsValid() {
		return fmt.Errorf("%w: invalid mood", utils.ErrValidation)
	}
	for i := range r.Exercises {
		if err := ValidateExercise(&r.Exercises[i]); err != nil {
			return err
		}
	}
	return nil
}

func ValidateExercise(e *db_models.Exercise) error {
	if strings.TrimSpace(e.Name) == "" {
		return fmt.Errorf("%w: exercise name is required", utils.ErrValidation)
	}
	if e.Sets < 0 || e.Reps < 0 || e.Duration < 0 || e.RestTime < 0 {
		return fmt.Errorf("%w: exercise numbers cannot be negative", utils.ErrValidation)
	}
	if e.Difficulty != "" && !e.Difficulty.IsValid() {
		return fmt.Errorf("%w: invalid exercise difficulty", utils.ErrValidation)
	}
	return nil
}

// UpdateWorkoutRequest is a partial update re-running create validation on
// the fields it touches.
type UpdateWorkoutRequest struct {
	Date           *time.Time             `json:"date,omitempty"`
	Type           *db_models.WorkoutType `json:"type,omitempty"`
	Title          *string                `json:"title,omitempty"`
	Exercises      *[]db_models.Exercise  `json:"exercises,omitempty"`
	TotalDuration  *int                   `json:"totalDuration,omitempty"`
	CaloriesBurned *int                   `json:"caloriesBurned,omitempty"`
	Intensity      *db_models.Intensity   `json:"intensity,omitempty"`
	Mood           *db_models.Mood        `json:"mood,omitempty"`
	Notes          *string                `json:"notes,omitempty"`
}

func (r *UpdateWorkoutRequest) Validate() error {
	if r.Type != nil && !r.Type.IsValid() {
		return fmt.Errorf("%w: invalid workout type", utils.ErrValidation)
	}
	if r.Title != nil && strings.TrimSpace(*r.Title) == "" {
		return fmt.Errorf("%w: title cannot be empty", utils.ErrValidation)
	}
	if r.TotalDuration != nil && *r.TotalDuration <= 0 {
		return fmt.Errorf("%w: totalDuration must be positive", utils.ErrValidation)
	}
	if r.CaloriesBurned != nil && *r.CaloriesBurned < 0 {
		return fmt.Errorf("%w: caloriesBurned cannot be negative", utils.ErrValidation)
	}
	if r.Intensity != nil && *r.Intensity != "" && !r.Intensity.IsValid() {
		return fmt.Errorf("%w: invalid intensity", utils.ErrValidation)
	}
	if r.Mood != nil && *r.Mood != "" && !r.Mood.IsValid() {
		return fmt.Errorf("%w: invalid mood", utils.ErrValidation)
	}
	if r.Exercises != nil {
		for i := range *r.Exercises {
			if err := ValidateExercise(&(*r.Exercises)[i]); err != nil {
				return err
			}
		}
	}
	return nil
}

func (r *UpdateWorkoutRequest) Apply(w *db_models.Workout) {
	if r.Date != nil {
		w.Date = *r.Date
	}
	if r.Type != nil {
		w.Type = *r.Type
	}
	if r.Title != nil {
		w.Title = *r.Title
	}
	if r.Exercises != nil {
		w.Exercises = *r.Exercises
	}
	if r.TotalDuration != nil {
		w.TotalDuration = *r.TotalDuration
	}
	if r.CaloriesBurned != nil {
		w.CaloriesBurned = *r.CaloriesBurned
	}
	if r.Intensity != nil {
		w.Intensity = *r.Intensity
	}
	if r.Mood != nil {
		w.Mood = *r.Mood
	}
	if r.Notes != nil {
		w.Notes = *r.Notes
	}
}

type CompleteWorkoutRequest struct {
	PerformanceScore *int `json:"performanceScore,omitempty"`
	CaloriesBurned   *int `json:"caloriesBurned,omitempty"`
}

func (r *CompleteWorkoutRequest) Validate() error {
	if r.PerformanceScore != nil && (*r.PerformanceScore < 0 || *r.PerformanceScore > 100) {
		return fmt.Errorf("%w: performanceScore must be between 0 and 100", utils.ErrValidation)
	}
	if r.CaloriesBurned != nil && *r.CaloriesBurned < 0 {
		return fmt.Errorf("%w: caloriesBurned cannot be negative", utils.ErrValidation)
	}
	return nil
}

type WorkoutListFilter struct {
	Type        string
	Date        *time.Time
	IsCompleted *bool
}
