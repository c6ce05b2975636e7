package response_models

import "fitfusion/internal/models/db_models"

// WorkoutStats is the fixed-shape summary returned by the workout stats
// endpoint. Zero values stand in when no records match.
type WorkoutStats struct {
	TotalWorkouts     int64   `json:"totalWorkouts"`
	CompletedWorkouts int64   `json:"completedWorkouts"`
	TotalDuration     int64   `json:"totalDuration"`
	TotalCalories     int64   `json:"totalCalories"`
	AvgPerformance    float64 `json:"avgPerformance"`
}

type MealTypeCounts struct {
	Breakfast int64 `json:"breakfast"`
	Lunch     int64 `json:"lunch"`
	Dinner    int64 `json:"dinner"`
	Snack     int64 `json:"snack"`
}

type MealStats struct {
	TotalMeals     int64          `json:"totalMeals"`
	TotalCalories  float64        `json:"totalCalories"`
	AvgCalories    float64        `json:"avgCalories"`
	TotalProtein   float64        `json:"totalProtein"`
	TotalCarbs     float64        `json:"totalCarbs"`
	TotalFats      float64        `json:"totalFats"`
	MealTypeCounts MealTypeCounts `json:"mealTypeCounts"`
}

// ProgressStats compares the earliest and latest entries in the range.
type ProgressStats struct {
	TotalEntries     int64   `json:"totalEntries"`
	StartWeight      float64 `json:"startWeight"`
	CurrentWeight    float64 `json:"currentWeight"`
	WeightChange     float64 `json:"weightChange"`
	StartBodyFat     float64 `json:"startBodyFat"`
	CurrentBodyFat   float64 `json:"currentBodyFat"`
	BodyFatChange    float64 `json:"bodyFatChange"`
}

type TrendPoint struct {
	Date  string  `json:"date"`
	Value float64 `json:"value"`
}

type ProgressTrends struct {
	Metric string       `json:"metric"`
	Period int          `json:"period"`
	Points []TrendPoint `json:"points"`
}

type MealListResponse struct {
	Meals      []db_models.Meal `json:"meals"`
	Pagination Pagination       `json:"pagination"`
}

type InsightListResponse struct {
	Insights   []db_models.AIInsight `json:"insights"`
	Pagination Pagination            `json:"pagination"`
}
