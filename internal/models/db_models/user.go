package db_models

import (
	"time"

	"github.com/lib/pq"
)

type Gender string

const (
	GenderMale           Gender = "male"
	GenderFemale         Gender = "female"
	GenderOther          Gender = "other"
	GenderPreferNotToSay Gender = "prefer-not-to-say"
)

func (g Gender) IsValid() bool {
	switch g {
	case GenderMale, GenderFemale, GenderOther, GenderPreferNotToSay:
		return true
	}
	return false
}

type FitnessGoal string

const (
	GoalFatLoss             FitnessGoal = "fat-loss"
	GoalMuscleGain          FitnessGoal = "muscle-gain"
	GoalEndurance           FitnessGoal = "endurance"
	GoalGeneralFitness      FitnessGoal = "general-fitness"
	GoalAthleticPerformance FitnessGoal = "athletic-performance"
)

func (g FitnessGoal) IsValid() bool {
	switch g {
	case GoalFatLoss, GoalMuscleGain, GoalEndurance, GoalGeneralFitness, GoalAthleticPerformance:
		return true
	}
	return false
}

type ActivityLevel string

const (
	ActivitySedentary        ActivityLevel = "sedentary"
	ActivityLightlyActive    ActivityLevel = "lightly-active"
	ActivityModeratelyActive ActivityLevel = "moderately-active"
	ActivityVeryActive       ActivityLevel = "very-active"
	ActivityExtremelyActive  ActivityLevel = "extremely-active"
)

func (a ActivityLevel) IsValid() bool {
	switch a {
	case ActivitySedentary, ActivityLightlyActive, ActivityModeratelyActive, ActivityVeryActive, ActivityExtremelyActive:
		return true
	}
	return false
}

type DietaryPreference string

const (
	DietBalanced    DietaryPreference = "balanced"
	DietVegan       DietaryPreference = "vegan"
	DietVegetarian  DietaryPreference = "vegetarian"
	DietKeto        DietaryPreference = "keto"
	DietPaleo       DietaryPreference = "paleo"
	DietLowCarb     DietaryPreference = "low-carb"
	DietHighProtein DietaryPreference = "high-protein"
)

func (d DietaryPreference) IsValid() bool {
	switch d {
	case DietBalanced, DietVegan, DietVegetarian, DietKeto, DietPaleo, DietLowCarb, DietHighProtein:
		return true
	}
	return false
}

// Equipment values accepted in AvailableEquipment.
var AllowedEquipment = map[string]bool{
	"dumbbells":        true,
	"barbell":          true,
	"kettlebell":       true,
	"resistance-bands": true,
	"pull-up-bar":      true,
	"bench":            true,
	"cardio-machine":   true,
	"bodyweight-only":  true,
}

type Measurement struct {
	Value float64 `json:"value"`
	Unit  string  `json:"unit"`
}

type Badge struct {
	Name     string    `json:"name"`
	EarnedAt time.Time `json:"earnedAt"`
	Icon     string    `json:"icon"`
}

type User struct {
	BaseModel
	Name               string            `json:"name"`
	Email              string            `gorm:"unique" json:"email"`
	PasswordHash       string            `json:"-"`
	Age                int               `json:"age"`
	Gender             Gender            `json:"gender"`
	Height             Measurement       `gorm:"serializer:json;type:jsonb" json:"height"`
	CurrentWeight      Measurement       `gorm:"serializer:json;type:jsonb" json:"currentWeight"`
	TargetWeight       Measurement       `gorm:"serializer:json;type:jsonb" json:"targetWeight"`
	FitnessGoal        FitnessGoal       `json:"fitnessGoal"`
	ActivityLevel      ActivityLevel     `json:"activityLevel"`
	AvailableEquipment pq.StringArray    `gorm:"type:text[]" json:"availableEquipment"`
	DietaryPreference  DietaryPreference `json:"dietaryPreference"`
	ProfilePicture     string            `json:"profilePicture"`
	CurrentStreak      int               `json:"currentStreak"`
	LongestStreak      int               `json:"longestStreak"`
	Badges             []Badge           `gorm:"serializer:json;type:jsonb" json:"badges"`
	LastActive         time.Time         `json:"lastActive"`
}
