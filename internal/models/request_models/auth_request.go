package request_models

import (
	"fmt"
	"strings"

	"fitfusion/internal/models/db_models"
	"fitfusion/pkg/utils"
)

type RegisterRequest struct {
	Name               string                      `json:"name"`
	Email              string                      `json:"email"`
	Password           string                      `json:"password"`
	Age                int                         `json:"age"`
	Gender             db_models.Gender            `json:"gender"`
	Height             db_models.Measurement       `json:"height"`
	CurrentWeight      db_models.Measurement       `json:"currentWeight"`
	TargetWeight       db_models.Measurement       `json:"targetWeight"`
	FitnessGoal        db_models.FitnessGoal       `json:"fitnessGoal"`
	ActivityLevel      db_models.ActivityLevel     `json:"activityLevel"`
	AvailableEquipment []string                    `json:"availableEquipment"`
	DietaryPreference  db_models.DietaryPreference `json:"dietaryPreference"`
}

func (r *RegisterRequest) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return fmt.Errorf("%w: name is required", utils.ErrValidation)
	}
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	if r.Email == "" || !strings.Contains(r.Email, "@") {
		return fmt.Errorf("%w: a valid email is required", utils.ErrValidation)
	}
	if len(r.Password) < 8 {
		return fmt.Errorf("%w: password must be at least 8 characters long", utils.ErrValidation)
	}
	if r.Age < 0 || r.Age > 120 {
		return fmt.Errorf("%w: age must be between 0 and 120", utils.ErrValidation)
	}
	if r.Gender != "" && !r.Gender.IsValid() {
		return fmt.Errorf("%w: invalid gender", utils.ErrValidation)
	}
	if !r.FitnessGoal.IsValid() {
		return fmt.Errorf("%w: invalid fitness goal", utils.ErrValidation)
	}
	if r.ActivityLevel == "" {
		r.ActivityLevel = db_models.ActivityModeratelyActive
	}
	if !r.ActivityLevel.IsValid() {
		return fmt.Errorf("%w: invalid activity level", utils.ErrValidation)
	}
	if r.DietaryPreference == "" {
		r.DietaryPreference = db_models.DietBalanced
	}
	if !r.DietaryPreference.IsValid() {
		return fmt.Errorf("%w: invalid dietary preference", utils.ErrValidation)
	}
	for _, eq := range r.AvailableEquipment {
		if !db_models.AllowedEquipment[eq] {
			return fmt.Errorf("%w: invalid equipment %q", utils.ErrValidation, eq)
		}
	}
	return nil
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r *LoginRequest) Validate() error {
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	if r.Email == "" || r.Password == "" {
		return fmt.Errorf("%w: email and password are required", utils.ErrValidation)
	}
	return nil
}
