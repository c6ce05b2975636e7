package request_models

import (
	"fmt"

	"fitfusion/internal/models/db_models"
	"fitfusion/pkg/utils"
)

// UpdateStatsRequest is a partial update; nil fields are left untouched.
type UpdateStatsRequest struct {
	Age                *int                         `json:"age,omitempty"`
	Gender             *db_models.Gender            `json:"gender,omitempty"`
	Height             *db_models.Measurement       `json:"height,omitempty"`
	CurrentWeight      *db_models.Measurement       `json:"currentWeight,omitempty"`
	TargetWeight       *db_models.Measurement       `json:"targetWeight,omitempty"`
	FitnessGoal        *db_models.FitnessGoal       `json:"fitnessGoal,omitempty"`
	ActivityLevel      *db_models.ActivityLevel     `json:"activityLevel,omitempty"`
	AvailableEquipment *[]string                    `json:"availableEquipment,omitempty"`
	DietaryPreference  *db_models.DietaryPreference `json:"dietaryPreference,omitempty"`
	ProfilePicture     *string                      `json:"profilePicture,omitempty"`
}

func (r *UpdateStatsRequest) Validate() error {
	if r.Age != nil && (*r.Age < 0 || *r.Age > 120) {
		return fmt.Errorf("%w: age must be between 0 and 120", utils.ErrValidation)
	}
	if r.Gender != nil && !r.Gender.IsValid() {
		return fmt.Errorf("%w: invalid gender", utils.ErrValidation)
	}
	if r.FitnessGoal != nil && !r.FitnessGoal.IsValid() {
		return fmt.Errorf("%w: invalid fitness goal", utils.ErrValidation)
	}
	if r.ActivityLevel != nil && !r.ActivityLevel.IsValid() {
		return fmt.Errorf("%w: invalid activity level", utils.ErrValidation)
	}
	if r.DietaryPreference != nil && !r.DietaryPreference.IsValid() {
		return fmt.Errorf("%w: invalid dietary preference", utils.ErrValidation)
	}
	if r.AvailableEquipment != nil {
		for _, eq := range *r.AvailableEquipment {
			if !db_models.AllowedEquipment[eq] {
				return fmt.Errorf("%w: invalid equipment %q", utils.ErrValidation, eq)
			}
		}
	}
	return nil
}

// Apply copies the non-nil fields onto the user.
func (r *UpdateStatsRequest) Apply(u *db_models.User) {
	if r.Age != nil {
		u.Age = *r.Age
	}
	if r.Gender != nil {
		u.Gender = *r.Gender
	}
	if r.Height != nil {
		u.Height = *r.Height
	}
	if r.CurrentWeight != nil {
		u.CurrentWeight = *r.CurrentWeight
	}
	if r.TargetWeight != nil {
		u.TargetWeight = *r.TargetWeight
	}
	if r.FitnessGoal != nil {
		u.FitnessGoal = *r.FitnessGoal
	}
	if r.ActivityLevel != nil {
		u.ActivityLevel = *r.ActivityLevel
	}
	if r.AvailableEquipment != nil {
		u.AvailableEquipment = *r.AvailableEquipment
	}
	if r.DietaryPreference != nil {
		u.DietaryPreference = *r.DietaryPreference
	}
	if r.ProfilePicture != nil {
		u.ProfilePicture = *r.ProfilePicture
	}
}
