package db_models

import (
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type ProgramGoal string

const (
	ProgramGoalFatLoss             ProgramGoal = "fat-loss"
	ProgramGoalMuscleGain          ProgramGoal = "muscle-gain"
	ProgramGoalEndurance           ProgramGoal = "endurance"
	ProgramGoalGeneralFitness      ProgramGoal = "general-fitness"
	ProgramGoalAthleticPerformance ProgramGoal = "athletic-performance"
	ProgramGoalStrength            ProgramGoal = "strength"
	ProgramGoalFlexibility         ProgramGoal = "flexibility"
)

func (g ProgramGoal) IsValid() bool {
	switch g {
	case ProgramGoalFatLoss, ProgramGoalMuscleGain, ProgramGoalEndurance, ProgramGoalGeneralFitness,
		ProgramGoalAthleticPerformance, ProgramGoalStrength, ProgramGoalFlexibility:
		return true
	}
	return false
}

type ProgramDifficulty string

const (
	ProgramBeginner     ProgramDifficulty = "beginner"
	ProgramIntermediate ProgramDifficulty = "intermediate"
	ProgramAdvanced     ProgramDifficulty = "advanced"
)

func (d ProgramDifficulty) IsValid() bool {
	switch d {
	case ProgramBeginner, ProgramIntermediate, ProgramAdvanced:
		return true
	}
	return false
}

type ProgramStatus string

const (
	ProgramDraft     ProgramStatus = "draft"
	ProgramActive    ProgramStatus = "active"
	ProgramCompleted ProgramStatus = "completed"
	ProgramPaused    ProgramStatus = "paused"
	ProgramAbandoned ProgramStatus = "abandoned"
)

func (s ProgramStatus) IsValid() bool {
	switch s {
	case ProgramDraft, ProgramActive, ProgramCompleted, ProgramPaused, ProgramAbandoned:
		return true
	}
	return false
}

type ProgramCreator string

const (
	CreatorAIGenerated ProgramCreator = "ai-generated"
	CreatorUserCreated ProgramCreator = "user-created"
	CreatorCoach       ProgramCreator = "coach"
	CreatorTemplate    ProgramCreator = "template"
)

func (c ProgramCreator) IsValid() bool {
	switch c {
	case CreatorAIGenerated, CreatorUserCreated, CreatorCoach, CreatorTemplate:
		return true
	}
	return false
}

// WorkoutSlotType is WorkoutType plus the "rest" placeholder used in plans.
type WorkoutSlotType string

func (t WorkoutSlotType) IsValid() bool {
	if t == "rest" {
		return true
	}
	return WorkoutType(t).IsValid()
}

type WorkoutSlot struct {
	Day         int             `json:"day"` // 1-7
	WorkoutID   *uuid.UUID      `json:"workoutId,omitempty"`
	Title       string          `json:"title"`
	Type        WorkoutSlotType `json:"type"`
	Completed   bool            `json:"completed"`
	CompletedAt *time.Time      `json:"completedAt,omitempty"`
}

type ProgramWeek struct {
	WeekNumber int           `json:"weekNumber"`
	Focus      string        `json:"focus"`
	Workouts   []WorkoutSlot `json:"workouts"`
}

type ProgramDuration struct {
	Weeks       int `json:"weeks"`       // 1-52
	DaysPerWeek int `json:"daysPerWeek"` // 1-7
}

type ProgramProgress struct {
	CompletedWorkouts    int `json:"completedWorkouts"`
	TotalWorkouts        int `json:"totalWorkouts"`
	CompletionPercentage int `json:"completionPercentage"`
}

type ProgramNutrition struct {
	IncludeNutritionPlan bool    `json:"includeNutritionPlan"`
	DailyCalories        float64 `json:"dailyCalories"`
	Macros               Macros  `json:"macros"`
}

type Program struct {
	BaseModel
	UserID             uuid.UUID         `gorm:"type:uuid;index:idx_programs_user_status" json:"userId"`
	Title              string            `json:"title"`
	Description        string            `json:"description"`
	Goal               ProgramGoal       `json:"goal"`
	Difficulty         ProgramDifficulty `json:"difficulty"`
	Duration           ProgramDuration   `gorm:"serializer:json;type:jsonb" json:"duration"`
	Weeks              []ProgramWeek     `gorm:"serializer:json;type:jsonb" json:"weeks"`
	EquipmentRequired  pq.StringArray    `gorm:"type:text[]" json:"equipmentRequired"`
	Tags               pq.StringArray    `gorm:"type:text[]" json:"tags"`
	Creator            ProgramCreator    `json:"creator"`
	AIGenerationPrompt string            `json:"aiGenerationPrompt,omitempty"`
	Status             ProgramStatus     `gorm:"index:idx_programs_user_status" json:"status"`
	StartDate          *time.Time        `json:"startDate,omitempty"`
	EndDate            *time.Time        `json:"endDate,omitempty"`
	CurrentWeek        int               `json:"currentWeek"`
	Progress           ProgramProgress   `gorm:"serializer:json;type:jsonb" json:"progress"`
	Nutrition          ProgramNutrition  `gorm:"serializer:json;type:jsonb" json:"nutrition"`
	Notes              string            `json:"notes"`
}

// CalculateProgress recomputes the derived counters from the week list.
// Must be called before persisting any week mutation.
func (p *Program) CalculateProgress() {
	completed := 0
	total := 0
	for _, week := range p.Weeks {
		for _, slot := range week.Workouts {
			total++
			if slot.Completed {
				completed++
			}
		}
	}

	p.Progress.CompletedWorkouts = completed
	p.Progress.TotalWorkouts = total
	if total > 0 {
		p.Progress.CompletionPercentage = int(math.Round(float64(completed) / float64(total) * 100))
	} else {
		p.Progress.CompletionPercentage = 0
	}
}

// CompleteWorkout marks one slot in one week as completed and recomputes
// the progress counters. Returns false if the slot does not exist.
func (p *Program) CompleteWorkout(weekNumber, workoutIndex int) bool {
	for i := range p.Weeks {
		if p.Weeks[i].WeekNumber != weekNumber {
			continue
		}
		if workoutIndex < 0 || workoutIndex >= len(p.Weeks[i].Workouts) {
			return false
		}
		now := time.Now()
		p.Weeks[i].Workouts[workoutIndex].Completed = true
		p.Weeks[i].Workouts[workoutIndex].CompletedAt = &now
		p.CalculateProgress()
		return true
	}
	return false
}

// Start transitions the program to active and stamps the date window
// computed from the declared week count.
func (p *Program) Start() {
	now := time.Now()
	end := now.AddDate(0, 0, p.Duration.Weeks*7)
	p.Status = ProgramActive
	p.StartDate = &now
	p.EndDate = &end
}
