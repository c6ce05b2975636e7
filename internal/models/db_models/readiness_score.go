package db_models

import (
	"time"

	"github.com/google/uuid"
)

type ReadinessRecommendation string

const (
	RecommendFullIntensity     ReadinessRecommendation = "full-intensity"
	RecommendModerateIntensity ReadinessRecommendation = "moderate-intensity"
	RecommendLightActivity     ReadinessRecommendation = "light-activity"
	RecommendRestDay           ReadinessRecommendation = "rest-day"
)

func (r ReadinessRecommendation) IsValid() bool {
	switch r {
	case RecommendFullIntensity, RecommendModerateIntensity, RecommendLightActivity, RecommendRestDay:
		return true
	}
	return false
}

type InjuryRiskLevel string

const (
	InjuryRiskLow      InjuryRiskLevel = "low"
	InjuryRiskModerate InjuryRiskLevel = "moderate"
	InjuryRiskHigh     InjuryRiskLevel = "high"
)

func (i InjuryRiskLevel) IsValid() bool {
	switch i {
	case InjuryRiskLow, InjuryRiskModerate, InjuryRiskHigh:
		return true
	}
	return false
}

type SleepFactor struct {
	Score      int     `json:"score"` // 0-100
	HoursSlept float64 `json:"hoursSlept"`
	Notes      string  `json:"notes"`
}

type MuscleRecoveryFactor struct {
	Score    int    `json:"score"`
	Soreness string `json:"soreness"` // none, mild, moderate, severe
}

type NutritionFactor struct {
	Score                 int     `json:"score"`
	CalorieDeficitSurplus float64 `json:"calorieDeficitSurplus"`
	HydrationLevel        string  `json:"hydrationLevel"` // poor, fair, good, excellent
}

type StressFactor struct {
	Score  int    `json:"score"`
	Rating string `json:"rating"` // low, moderate, high, very-high
}

type WorkloadFactor struct {
	Score               int     `json:"score"`
	LastSevenDaysVolume float64 `json:"lastSevenDaysVolume"`
}

type ReadinessFactors struct {
	SleepQuality            SleepFactor          `json:"sleepQuality"`
	MuscleRecovery          MuscleRecoveryFactor `json:"muscleRecovery"`
	NutritionBalance        NutritionFactor      `json:"nutritionBalance"`
	StressLevel             StressFactor         `json:"stressLevel"`
	RecentWorkloadIntensity WorkloadFactor       `json:"recentWorkloadIntensity"`
}

type MLPrediction struct {
	FatigueLevel         float64 `json:"fatigueLevel"`         // 0-100
	PerformancePotential float64 `json:"performancePotential"` // 0-100
	ModelVersion         string  `json:"modelVersion"`
}

type ReadinessFeedback struct {
	FeltAccurate      bool   `json:"feltAccurate"`
	ActualPerformance string `json:"actualPerformance"`
}

// ReadinessScore holds at most one row per user per calendar day; Date is
// truncated to midnight UTC before persistence.
type ReadinessScore struct {
	BaseModel
	UserID          uuid.UUID               `gorm:"type:uuid;uniqueIndex:idx_readiness_user_day" json:"userId"`
	Date            time.Time               `gorm:"uniqueIndex:idx_readiness_user_day" json:"date"`
	OverallScore    int                     `json:"overallScore"` // 0-100
	Factors         ReadinessFactors        `gorm:"serializer:json;type:jsonb" json:"factors"`
	Recommendation  ReadinessRecommendation `json:"recommendation"`
	InjuryRiskLevel InjuryRiskLevel         `json:"injuryRiskLevel"`
	MLPrediction    MLPrediction            `gorm:"serializer:json;type:jsonb" json:"mlPrediction"`
	UserFeedback    ReadinessFeedback       `gorm:"serializer:json;type:jsonb" json:"userFeedback"`
}
