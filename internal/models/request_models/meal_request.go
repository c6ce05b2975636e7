package request_models

import (
	"fmt"
	"strings"
	"time"

	"fitfusion/internal/models/db_models"
	"fitfusion/pkg/utils"
)

type CreateMealRequest struct {
	Date           *time.Time               `json:"date,omitempty"`
	MealType       db_models.MealType       `json:"mealType"`
	Name           string                   `json:"name"`
	Foods          []db_models.FoodItem     `json:"foods"`
	Calories       float64                  `json:"calories"`
	Macros         db_models.Macros         `json:"macros"`
	Micronutrients db_models.Micronutrients `json:"micronutrients"`
	ImageURL       string                   `json:"imageUrl"`
	RecipeURL      string                   `json:"recipeUrl"`
	AIGenerated    bool                     `json:"aiGenerated"`
	Notes          string                   `json:"notes"`
}

func (r *CreateMealRequest) Validate() error {
	if !r.MealType.IsValid() {
		return fmt.Errorf("%w: invalid meal type", utils.ErrValidation)
	}
	if strings.TrimSpace(r.Name) == "" {
		return fmt.Errorf("%w: name is required", utils.ErrValidation)
	}
	if r.Calories < 0 {
		return fmt.Errorf("%w: calories cannot be negative", utils.ErrValidation)
	}
	return nil
}

type UpdateMealRequest struct {
	Date           *time.Time                `json:"date,omitempty"`
	MealType       *db_models.MealType       `json:"mealType,omitempty"`
	Name           *string                   `json:"name,omitempty"`
	Foods          *[]db_models.FoodItem     `json:"foods,omitempty"`
	Calories       *float64                  `json:"calories,omitempty"`
	Macros         *db_models.Macros         `json:"macros,omitempty"`
	Micronutrients *db_models.Micronutrients `json:"micronutrients,omitempty"`
	ImageURL       *string                   `json:"imageUrl,omitempty"`
	RecipeURL      *string                   `json:"recipeUrl,omitempty"`
	Notes          *string                   `json:"notes,omitempty"`
}

func (r *UpdateMealRequest) Validate() error {
	if r.MealType != nil && !r.MealType.IsValid() {
		return fmt.Errorf("%w: invalid meal type", utils.ErrValidation)
	}
	if r.Name != nil && strings.TrimSpace(*r.Name) == "" {
		return fmt.Errorf("%w: name cannot be empty", utils.ErrValidation)
	}
	if r.Calories != nil && *r.Calories < 0 {
		return fmt.Errorf("%w: calories cannot be negative", utils.ErrValidation)
	}
	return nil
}

func (r *UpdateMealRequest) Apply(m *db_models.Meal) {
	if r.Date != nil {
		m.Date = *r.Date
	}
	if r.MealType != nil {
		m.MealType = *r.MealType
	}
	if r.Name != nil {
		m.Name = *r.Name
	}
	if r.Foods != nil {
		m.Foods = *r.Foods
	}
	if r.Calories != nil {
		m.Calories = *r.Calories
	}
	if r.Macros != nil {
		m.Macros = *r.Macros
	}
	if r.Micronutrients != nil {
		m.Micronutrients = *r.Micronutrients
	}
	if r.ImageURL != nil {
		m.ImageURL = *r.ImageURL
	}
	if r.RecipeURL != nil {
		m.RecipeURL = *r.RecipeURL
	}
	if r.Notes != nil {
		m.Notes = *r.Notes
	}
}

type MealListFilter struct {
	MealType  string
	StartDate *time.Time
	EndDate   *time.Time
	Page      int
	Limit     int
}
