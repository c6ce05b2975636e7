package request_models

import (
	"fmt"
	"time"

	"fitfusion/internal/models/db_models"
	"fitfusion/pkg/utils"
)

type CreateReadinessRequest struct {
	Date            *time.Time                        `json:"date,omitempty"`
	OverallScore    int                               `json:"overallScore"`
	Factors         db_models.ReadinessFactors        `json:"factors"`
	Recommendation  db_models.ReadinessRecommendation `json:"recommendation"`
	InjuryRiskLevel db_models.InjuryRiskLevel         `json:"injuryRiskLevel"`
	MLPrediction    db_models.MLPrediction            `json:"mlPrediction"`
}

func (r *CreateReadinessRequest) Validate() error {
	if r.OverallScore < 0 || r.OverallScore > 100 {
		return fmt.Errorf("%w: overallScore must be between 0 and 100", utils.ErrValidation)
	}
	if !r.Recommendation.IsValid() {
		return fmt.Errorf("%w: invalid recommendation", utils.ErrValidation)
	}
	if r.InjuryRiskLevel == "" {
		r.InjuryRiskLevel = db_models.InjuryRiskLow
	}
	if !r.InjuryRiskLevel.IsValid() {
		return fmt.Errorf("%w: invalid injury risk level", utils.ErrValidation)
	}
	for _, score := range []int{
		r.Factors.SleepQuality.Score,
		r.Factors.MuscleRecovery.Score,
		r.Factors.NutritionBalance.Score,
		r.Factors.StressLevel.Score,
		r.Factors.RecentWorkloadIntensity.Score,
	} {
		if score < 0 || score > 100 {
			return fmt.Errorf("%w: factor scores must be between 0 and 100", utils.ErrValidation)
		}
	}
	return nil
}

type UpdateReadinessRequest struct {
	OverallScore    *int                               `json:"overallScore,omitempty"`
	Factors         *db_models.ReadinessFactors        `json:"factors,omitempty"`
	Recommendation  *db_models.ReadinessRecommendation `json:"recommendation,omitempty"`
	InjuryRiskLevel *db_models.InjuryRiskLevel         `json:"injuryRiskLevel,omitempty"`
	MLPrediction    *db_models.MLPrediction            `json:"mlPrediction,omitempty"`
	UserFeedback    *db_models.ReadinessFeedback       `json:"userFeedback,omitempty"`
}

func (r *UpdateReadinessRequest) Validate() error {
	if r.OverallScore != nil && (*r.OverallScore < 0 || *r.OverallScore > 100) {
		return fmt.Errorf("%w: overallScore must be between 0 and 100", utils.ErrValidation)
	}
	if r.Recommendation != nil && !r.Recommendation.IsValid() {
		return fmt.Errorf("%w: invalid recommendation", utils.ErrValidation)
	}
	if r.InjuryRiskLevel != nil && !r.InjuryRiskLevel.IsValid() {
		return fmt.Errorf("%w: invalid injury risk level", utils.ErrValidation)
	}
	return nil
}

func (r *UpdateReadinessRequest) Apply(s *db_models.ReadinessScore) {
	if r.OverallScore != nil {
		s.OverallScore = *r.OverallScore
	}
	if r.Factors != nil {
		s.Factors = *r.Factors
	}
	if r.Recommendation != nil {
		s.Recommendation = *r.Recommendation
	}
	if r.InjuryRiskLevel != nil {
		s.InjuryRiskLevel = *r.InjuryRiskLevel
	}
	if r.MLPrediction != nil {
		s.MLPrediction = *r.MLPrediction
	}
	if r.UserFeedback != nil {
		s.UserFeedback = *r.UserFeedback
	}
}
