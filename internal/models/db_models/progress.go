package db_models

import (
	"time"

	"github.com/google/uuid"
)

type PhotoAngle string

const (
	PhotoFront PhotoAngle = "front"
	PhotoSide  PhotoAngle = "side"
	PhotoBack  PhotoAngle = "back"
)

func (p PhotoAngle) IsValid() bool {
	switch p {
	case PhotoFront, PhotoSide, PhotoBack:
		return true
	}
	return false
}

type ProgressPhoto struct {
	URL        string     `json:"url"`
	Type       PhotoAngle `json:"type"`
	UploadedAt time.Time  `json:"uploadedAt"`
}

type BodyMeasurements struct {
	Chest  float64 `json:"chest"`
	Waist  float64 `json:"waist"`
	Hips   float64 `json:"hips"`
	Thighs float64 `json:"thighs"`
	Arms   float64 `json:"arms"`
	Unit   string  `json:"unit"` // cm or inches
}

type StrengthBenchmarks struct {
	BenchPress float64 `json:"benchPress"`
	Squat      float64 `json:"squat"`
	Deadlift   float64 `json:"deadlift"`
	PullUps    float64 `json:"pullUps"`
	PushUps    float64 `json:"pushUps"`
}

type CardioMetrics struct {
	RestingHeartRate float64 `json:"restingHeartRate"`
	VO2Max           float64 `json:"vo2Max"`
	RunningPace      float64 `json:"runningPace"` // minutes per km or mile
}

type Progress struct {
	BaseModel
	UserID             uuid.UUID          `gorm:"type:uuid;index:idx_progress_user_date" json:"userId"`
	Date               time.Time          `gorm:"index:idx_progress_user_date" json:"date"`
	Weight             Measurement        `gorm:"serializer:json;type:jsonb" json:"weight"`
	BodyFatPercentage  float64            `json:"bodyFatPercentage"`
	Measurements       BodyMeasurements   `gorm:"serializer:json;type:jsonb" json:"measurements"`
	Photos             []ProgressPhoto    `gorm:"serializer:json;type:jsonb" json:"photos"`
	StrengthBenchmarks StrengthBenchmarks `gorm:"serializer:json;type:jsonb" json:"strengthBenchmarks"`
	CardioMetrics      CardioMetrics      `gorm:"serializer:json;type:jsonb" json:"cardioMetrics"`
	Notes              string             `json:"notes"`
}
