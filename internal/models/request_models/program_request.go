package request_models

import (
	"fmt"
	"strings"

	"fitfusion/internal/models/db_models"
	"fitfusion/pkg/utils"
)

type CreateProgramRequest struct {
	Title             string                      `json:"title"`
	Description       string                      `json:"description"`
	Goal              db_models.ProgramGoal       `json:"goal"`
	Difficulty        db_models.ProgramDifficulty `json:"difficulty"`
	Duration          db_models.ProgramDuration   `json:"duration"`
	Weeks             []db_models.ProgramWeek     `json:"weeks"`
	EquipmentRequired []string                    `json:"equipmentRequired"`
	Tags              []string                    `json:"tags"`
	Creator           db_models.ProgramCreator    `json:"creator"`
	Nutrition         db_models.ProgramNutrition  `json:"nutrition"`
	Notes             string                      `json:"notes"`
}

func (r *CreateProgramRequest) Validate() error {
	if strings.TrimSpace(r.Title) == "" {
		return fmt.Errorf("%w: title is required", utils.ErrValidation)
	}
	if strings.TrimSpace(r.Description) == "" {
		return fmt.Errorf("%w: description is required", utils.ErrValidation)
	}
	if !r.Goal.IsValid() {
		return fmt.Errorf("%w: invalid program goal", utils.ErrValidation)
	}
	if r.Difficulty == "" {
		r.Difficulty = db_models.ProgramBeginner
	}
	if !r.Difficulty.IsValid() {
		return fmt.Errorf("%w: invalid difficulty", utils.ErrValidation)
	}
	if r.Duration.Weeks < 1 || r.Duration.Weeks > 52 {
		return fmt.Errorf("%w: duration.weeks must be between 1 and 52", utils.ErrValidation)
	}
	if r.Duration.DaysPerWeek < 1 || r.Duration.DaysPerWeek > 7 {
		return fmt.Errorf("%w: duration.daysPerWeek must be between 1 and 7", utils.ErrValidation)
	}
	if r.Creator == "" {
		r.Creator = db_models.CreatorUserCreated
	}
	if !r.Creator.IsValid() {
		return fmt.Errorf("%w: invalid creator", utils.ErrValidation)
	}
	if err := validateWeeks(r.Weeks); err != nil {
		return err
	}
	return nil
}

func validateWeeks(weeks []db_models.ProgramWeek) error {
	for _, week := range weeks {
		if week.WeekNumber < 1 {
			return fmt.Errorf("%w: weekNumber must be positive", utils.ErrValidation)
		}
		for _, slot := range week.Workouts {
			if slot.Day < 1 || slot.Day > 7 {
				return fmt.Errorf("%w: workout day must be between 1 and 7", utils.ErrValidation)
			}
			if slot.Type != "" && !slot.Type.IsValid() {
				return fmt.Errorf("%w: invalid workout slot type", utils.ErrValidation)
			}
		}
	}
	return nil
}

type UpdateProgramRequest struct {
	Title             *string                      `json:"title,omitempty"`
	Description       *string                      `json:"description,omitempty"`
	Goal              *db_models.ProgramGoal       `json:"goal,omitempty"`
	Difficulty        *db_models.ProgramDifficulty `json:"difficulty,omitempty"`
	Weeks             *[]db_models.ProgramWeek     `json:"weeks,omitempty"`
	EquipmentRequired *[]string                    `json:"equipmentRequired,omitempty"`
	Tags              *[]string                    `json:"tags,omitempty"`
	Status            *db_models.ProgramStatus     `json:"status,omitempty"`
	CurrentWeek       *int                         `json:"currentWeek,omitempty"`
	Nutrition         *db_models.ProgramNutrition  `json:"nutrition,omitempty"`
	Notes             *string                      `json:"notes,omitempty"`
}

func (r *UpdateProgramRequest) Validate() error {
	if r.Title != nil && strings.TrimSpace(*r.Title) == "" {
		return fmt.Errorf("%w: title cannot be empty", utils.ErrValidation)
	}
	if r.Goal != nil && !r.Goal.IsValid() {
		return fmt.Errorf("%w: invalid program goal", utils.ErrValidation)
	}
	if r.Difficulty != nil && !r.Difficulty.IsValid() {
		return fmt.Errorf("%w: invalid difficulty", utils.ErrValidation)
	}
	if r.Status != nil && !r.Status.IsValid() {
		return fmt.Errorf("%w: invalid status", utils.ErrValidation)
	}
	if r.CurrentWeek != nil && *r.CurrentWeek < 1 {
		return fmt.Errorf("%w: currentWeek must be positive", utils.ErrValidation)
	}
	if r.Weeks != nil {
		if err := validateWeeks(*r.Weeks); err != nil {
			return err
		}
	}
	return nil
}

// Apply copies non-nil fields onto the program. Week mutations require a
// progress recompute before persistence; the caller is responsible.
func (r *UpdateProgramRequest) Apply(p *db_models.Program) {
	if r.Title != nil {
		p.Title = *r.Title
	}
	if r.Description != nil {
		p.Description = *r.Description
	}
	if r.Goal != nil {
		p.Goal = *r.Goal
	}
	if r.Difficulty != nil {
		p.Difficulty = *r.Difficulty
	}
	if r.Weeks != nil {
		p.Weeks = *r.Weeks
	}
	if r.EquipmentRequired != nil {
		p.EquipmentRequired = *r.EquipmentRequired
	}
	if r.Tags != nil {
		p.Tags = *r.Tags
	}
	if r.Status != nil {
		p.Status = *r.Status
	}
	if r.CurrentWeek != nil {
		p.CurrentWeek = *r.CurrentWeek
	}
	if r.Nutrition != nil {
		p.Nutrition = *r.Nutrition
	}
	if r.Notes != nil {
		p.Notes = *r.Notes
	}
}

type CompleteProgramWorkoutRequest struct {
	WeekNumber   int `json:"weekNumber"`
	WorkoutIndex int `json:"workoutIndex"`
}

func (r *CompleteProgramWorkoutRequest) Validate() error {
	if r.WeekNumber < 1 {
		return fmt.Errorf("%w: weekNumber must be positive", utils.ErrValidation)
	}
	if r.WorkoutIndex < 0 {
		return fmt.Errorf("%w: workoutIndex cannot be negative", utils.ErrValidation)
	}
	return nil
}

type ProgramListFilter struct {
	Status     string
	Goal       string
	Difficulty string
}
