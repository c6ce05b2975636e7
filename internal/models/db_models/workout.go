package db_models

import (
	"time"

	"github.com/google/uuid"
)

type WorkoutType string

const (
	WorkoutStrength    WorkoutType = "strength"
	WorkoutCardio      WorkoutType = "cardio"
	WorkoutHIIT        WorkoutType = "hiit"
	WorkoutFlexibility WorkoutType = "flexibility"
	WorkoutSports      WorkoutType = "sports"
	WorkoutMixed       WorkoutType = "mixed"
)

func (w WorkoutType) IsValid() bool {
	switch w {
	case WorkoutStrength, WorkoutCardio, WorkoutHIIT, WorkoutFlexibility, WorkoutSports, WorkoutMixed:
		return true
	}
	return false
}

type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

func (d Difficulty) IsValid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

type Intensity string

const (
	IntensityLow      Intensity = "low"
	IntensityModerate Intensity = "moderate"
	IntensityHigh     Intensity = "high"
	IntensityMax      Intensity = "max"
)

func (i Intensity) IsValid() bool {
	switch i {
	case IntensityLow, IntensityModerate, IntensityHigh, IntensityMax:
		return true
	}
	return false
}

type Mood string

const (
	MoodGreat     Mood = "great"
	MoodGood      Mood = "good"
	MoodOkay      Mood = "okay"
	MoodTired     Mood = "tired"
	MoodExhausted Mood = "exhausted"
)

func (m Mood) IsValid() bool {
	switch m {
	case MoodGreat, MoodGood, MoodOkay, MoodTired, MoodExhausted:
		return true
	}
	return false
}

type Exercise struct {
	Name       string      `json:"name"`
	Sets       int         `json:"sets"`
	Reps       int         `json:"reps"`
	Duration   int         `json:"duration"` // seconds
	Weight     Measurement `json:"weight"`
	RestTime   int         `json:"restTime"` // seconds
	Notes      string      `json:"notes"`
	Difficulty Difficulty  `json:"difficulty"`
}

type Workout struct {
	BaseModel
	UserID           uuid.UUID   `gorm:"type:uuid;index:idx_workouts_user_date" json:"userId"`
	Date             time.Time   `gorm:"index:idx_workouts_user_date" json:"date"`
	Type             WorkoutType `json:"type"`
	Title            string      `json:"title"`
	Exercises        []Exercise  `gorm:"serializer:json;type:jsonb" json:"exercises"`
	TotalDuration    int         `json:"totalDuration"`
	CaloriesBurned   int         `json:"caloriesBurned"`
	Intensity        Intensity   `json:"intensity"`
	Mood             Mood        `json:"mood"`
	Notes            string      `json:"notes"`
	IsCompleted      bool        `json:"isCompleted"`
	PerformanceScore int         `json:"performanceScore"` // 0-100
	AIGenerated      bool        `json:"aiGenerated"`
}
