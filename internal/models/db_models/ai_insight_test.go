package db_models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInsightTypeIsValid(t *testing.T) {
	tests := []struct {
		value InsightType
		valid bool
	}{
		{InsightTypeDailySummary, true},
		{InsightTypeRecommendation, true},
		{InsightTypeCustomQuery, true},
		{InsightType("recommendation"), true},
		{InsightType("horoscope"), false},
		{InsightType(""), false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.valid, tt.value.IsValid(), string(tt.value))
	}
}

func TestRecommendationPriorityIsValid(t *testing.T) {
	assert.True(t, PriorityMedium.IsValid())
	assert.False(t, RecommendationPriority("urgent").IsValid())
}

func TestInsightTypedFields(t *testing.T) {
	insight := AIInsight{
		InsightType: InsightTypeRecommendation,
		Recommendations: []InsightRecommendation{
			{Category: "workout", Text: "Add a deload week", Priority: PriorityMedium},
		},
	}

	assert.True(t, insight.InsightType.IsValid())
	assert.Equal(t, "workout", insight.Recommendations[0].Category)
}
