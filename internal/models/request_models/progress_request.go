package request_models

import (
	"fmt"
	"time"

	"fitfusion/internal/models/db_models"
	"fitfusion/pkg/utils"
)

type CreateProgressRequest struct {
	Date               *time.Time                   `json:"date,omitempty"`
	Weight             db_models.Measurement        `json:"weight"`
	BodyFatPercentage  float64                      `json:"bodyFatPercentage"`
	Measurements       db_models.BodyMeasurements   `json:"measurements"`
	Photos             []db_models.ProgressPhoto    `json:"photos"`
	StrengthBenchmarks db_models.StrengthBenchmarks `json:"strengthBenchmarks"`
	CardioMetrics      db_models.CardioMetrics      `json:"cardioMetrics"`
	Notes              string                       `json:"notes"`
}

func (r *CreateProgressRequest) Validate() error {
	if r.BodyFatPercentage < 0 || r.BodyFatPercentage > 100 {
		return fmt.Errorf("%w: bodyFatPercentage must be between 0 and 100", utils.ErrValidation)
	}
	for _, photo := range r.Photos {
		if photo.Type != "" && !photo.Type.IsValid() {
			return fmt.Errorf("%w: invalid photo type", utils.ErrValidation)
		}
	}
	return nil
}

type UpdateProgressRequest struct {
	Date               *time.Time                    `json:"date,omitempty"`
	Weight             *db_models.Measurement        `json:"weight,omitempty"`
	BodyFatPercentage  *float64                      `json:"bodyFatPercentage,omitempty"`
	Measurements       *db_models.BodyMeasurements   `json:"measurements,omitempty"`
	Photos             *[]db_models.ProgressPhoto    `json:"photos,omitempty"`
	StrengthBenchmarks *db_models.StrengthBenchmarks `json:"strengthBenchmarks,omitempty"`
	CardioMetrics      *db_models.CardioMetrics      `json:"cardioMetrics,omitempty"`
	Notes              *string                       `json:"notes,omitempty"`
}

func (r *UpdateProgressRequest) Validate() error {
	if r.BodyFatPercentage != nil && (*r.BodyFatPercentage < 0 || *r.BodyFatPercentage > 100) {
		return fmt.Errorf("%w: bodyFatPercentage must be between 0 and 100", utils.ErrValidation)
	}
	if r.Photos != nil {
		for _, photo := range *r.Photos {
			if photo.Type != "" && !photo.Type.IsValid() {
				return fmt.Errorf("%w: invalid photo type", utils.ErrValidation)
			}
		}
	}
	return nil
}

func (r *UpdateProgressRequest) Apply(p *db_models.Progress) {
	if r.Date != nil {
		p.Date = *r.Date
	}
	if r.Weight != nil {
		p.Weight = *r.Weight
	}
	if r.BodyFatPercentage != nil {
		p.BodyFatPercentage = *r.BodyFatPercentage
	}
	if r.Measurements != nil {
		p.Measurements = *r.Measurements
	}
	if r.Photos != nil {
		p.Photos = *r.Photos
	}
	if r.StrengthBenchmarks != nil {
		p.StrengthBenchmarks = *r.StrengthBenchmarks
	}
	if r.CardioMetrics != nil {
		p.CardioMetrics = *r.CardioMetrics
	}
	if r.Notes != nil {
		p.Notes = *r.Notes
	}
}

type ProgressListFilter struct {
	StartDate *time.Time
	EndDate   *time.Time
}
