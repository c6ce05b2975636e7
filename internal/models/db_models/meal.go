package db_models

import (
	"time"

	"github.com/google/uuid"
)

type MealType string

const (
	MealBreakfast MealType = "breakfast"
	MealLunch     MealType = "lunch"
	MealDinner    MealType = "dinner"
	MealSnack     MealType = "snack"
)

func (m MealType) IsValid() bool {
	switch m {
	case MealBreakfast, MealLunch, MealDinner, MealSnack:
		return true
	}
	return false
}

type FoodItem struct {
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"` // grams, oz, cups, etc.
}

type Macros struct {
	Protein float64 `json:"protein"`
	Carbs   float64 `json:"carbs"`
	Fats    float64 `json:"fats"`
}

type Micronutrients struct {
	Fiber       float64 `json:"fiber"`
	Sugar       float64 `json:"sugar"`
	Sodium      float64 `json:"sodium"`
	Cholesterol float64 `json:"cholesterol"`
}

type Meal struct {
	BaseModel
	UserID         uuid.UUID      `gorm:"type:uuid;index:idx_meals_user_date" json:"userId"`
	Date           time.Time      `gorm:"index:idx_meals_user_date" json:"date"`
	MealType       MealType       `json:"mealType"`
	Name           string         `json:"name"`
	Foods          []FoodItem     `gorm:"serializer:json;type:jsonb" json:"foods"`
	Calories       float64        `json:"calories"`
	Macros         Macros         `gorm:"serializer:json;type:jsonb" json:"macros"`
	Micronutrients Micronutrients `gorm:"serializer:json;type:jsonb" json:"micronutrients"`
	ImageURL       string         `json:"imageUrl"`
	RecipeURL      string         `json:"recipeUrl"`
	AIGenerated    bool           `json:"aiGenerated"`
	Notes          string         `json:"notes"`
}
