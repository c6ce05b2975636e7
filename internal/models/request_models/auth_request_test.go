package request_models

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"fitfusion/internal/models/db_models"
	"fitfusion/pkg/utils"
)

func validRegisterRequest() RegisterRequest {
	return RegisterRequest{
		Name:        "Jordan",
		Email:       "Jordan@Example.com",
		Password:    "supersecret",
		Age:         28,
		Gender:      db_models.GenderFemale,
		FitnessGoal: db_models.GoalMuscleGain,
	}
}

func TestRegisterRequestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*RegisterRequest)
		wantErr bool
	}{
		{name: "valid", mutate: func(r *RegisterRequest) {}, wantErr: false},
		{name: "blank name", mutate: func(r *RegisterRequest) { r.Name = "  " }, wantErr: true},
		{name: "bad email", mutate: func(r *RegisterRequest) { r.Email = "nothing" }, wantErr: true},
		{name: "short password", mutate: func(r *RegisterRequest) { r.Password = "short" }, wantErr: true},
		{name: "absurd age", mutate: func(r *RegisterRequest) { r.Age = 200 }, wantErr: true},
		{name: "bad gender", mutate: func(r *RegisterRequest) { r.Gender = "attack-helicopter" }, wantErr: true},
		{name: "bad goal", mutate: func(r *RegisterRequest) { r.FitnessGoal = "world-domination" }, wantErr: true},
		{name: "bad equipment", mutate: func(r *RegisterRequest) { r.AvailableEquipment = []string{"forklift"} }, wantErr: true},
		{name: "valid equipment", mutate: func(r *RegisterRequest) { r.AvailableEquipment = []string{"dumbbells", "bench"} }, wantErr: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRegisterRequest()
			tt.mutate(&req)

			err := req.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, utils.ErrValidation)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRegisterRequestNormalizesAndDefaults(t *testing.T) {
	req := validRegisterRequest()
	assert.NoError(t, req.Validate())

	assert.Equal(t, "jordan@example.com", req.Email)
	assert.Equal(t, db_models.ActivityModeratelyActive, req.ActivityLevel)
	assert.Equal(t, db_models.DietBalanced, req.DietaryPreference)
}

func TestLoginRequestValidate(t *testing.T) {
	req := LoginRequest{Email: " Jordan@Example.com ", Password: "supersecret"}
	assert.NoError(t, req.Validate())
	assert.Equal(t, "jordan@example.com", req.Email)

	assert.Error(t, (&LoginRequest{Email: "", Password: "x"}).Validate())
	assert.Error(t, (&LoginRequest{Email: "a@b.c", Password: ""}).Validate())
}
