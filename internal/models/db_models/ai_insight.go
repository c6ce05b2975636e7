package db_models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type InsightType string

const (
	InsightTypeDailySummary        InsightType = "daily-summary"
	InsightTypeWeeklySummary       InsightType = "weekly-summary"
	InsightTypeMonthlySummary      InsightType = "monthly-summary"
	InsightTypePerformanceAnalysis InsightType = "performance-analysis"
	InsightTypeNutritionFeedback   InsightType = "nutrition-feedback"
	InsightTypeRecommendation      InsightType = "recommendation"
	InsightTypeCustomQuery         InsightType = "custom-query"
)

func (t InsightType) IsValid() bool {
	switch t {
	case InsightTypeDailySummary, InsightTypeWeeklySummary, InsightTypeMonthlySummary,
		InsightTypePerformanceAnalysis, InsightTypeNutritionFeedback, InsightTypeRecommendation, InsightTypeCustomQuery:
		return true
	}
	return false
}

type RecommendationPriority string

const (
	PriorityLow    RecommendationPriority = "low"
	PriorityMedium RecommendationPriority = "medium"
	PriorityHigh   RecommendationPriority = "high"
)

func (p RecommendationPriority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

type InsightRecommendation struct {
	Category string                 `json:"category"` // workout, nutrition, recovery
	Text     string                 `json:"text"`
	Priority RecommendationPriority `json:"priority"`
}

// InsightQuickReply is generated fresh per insight, unlike the static
// catalog entries in pkg/quickreplies.
type InsightQuickReply struct {
	Text        string `json:"text"`
	Payload     string `json:"payload"`
	Category    string `json:"category,omitempty"`
	Description string `json:"description,omitempty"`
}

type DataSnapshot struct {
	TotalWorkouts         int     `json:"totalWorkouts"`
	TotalCaloriesBurned   float64 `json:"totalCaloriesBurned"`
	TotalCaloriesConsumed float64 `json:"totalCaloriesConsumed"`
	AverageReadinessScore float64 `json:"averageReadinessScore"`
	PerformanceChange     float64 `json:"performanceChange"` // percentage
}

type AIInsight struct {
	BaseModel
	UserID          uuid.UUID               `gorm:"type:uuid;index:idx_insights_user_date" json:"userId"`
	Date            time.Time               `gorm:"index:idx_insights_user_date" json:"date"`
	InsightType     InsightType             `json:"insightType"`
	Title           string                  `json:"title"`
	Summary         string                  `json:"summary"`
	Recommendations []InsightRecommendation `gorm:"serializer:json;type:jsonb" json:"recommendations"`
	QuickReplies    []InsightQuickReply     `gorm:"serializer:json;type:jsonb" json:"quickReplies"`
	Details         datatypes.JSON          `gorm:"type:jsonb;default:'{}'" json:"details"`
	DataSnapshot    DataSnapshot            `gorm:"serializer:json;type:jsonb" json:"dataSnapshot"`
	AIModel         string                  `json:"aiModel"`
	IsRead          bool                    `json:"isRead"`
}
