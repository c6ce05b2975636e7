package request_models

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"fitfusion/internal/models/db_models"
	"fitfusion/pkg/utils"
)

func validCreateProgramRequest() CreateProgramRequest {
	return CreateProgramRequest{
		Title:       "12-week strength block",
		Description: "Linear progression with a deload every fourth week",
		Goal:        db_models.ProgramGoalStrength,
		Duration:    db_models.ProgramDuration{Weeks: 12, DaysPerWeek: 4},
		Weeks: []db_models.ProgramWeek{
			{WeekNumber: 1, Workouts: []db_models.WorkoutSlot{
				{Day: 1, Title: "Squat day", Type: "strength"},
				{Day: 4, Title: "Rest", Type: "rest"},
			}},
		},
	}
}

func TestCreateProgramRequestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*CreateProgramRequest)
		wantErr bool
	}{
		{name: "valid", mutate: func(r *CreateProgramRequest) {}, wantErr: false},
		{name: "blank title", mutate: func(r *CreateProgramRequest) { r.Title = "" }, wantErr: true},
		{name: "blank description", mutate: func(r *CreateProgramRequest) { r.Description = " " }, wantErr: true},
		{name: "bad goal", mutate: func(r *CreateProgramRequest) { r.Goal = "procrastination" }, wantErr: true},
		{name: "zero weeks", mutate: func(r *CreateProgramRequest) { r.Duration.Weeks = 0 }, wantErr: true},
		{name: "too many weeks", mutate: func(r *CreateProgramRequest) { r.Duration.Weeks = 53 }, wantErr: true},
		{name: "eight days a week", mutate: func(r *CreateProgramRequest) { r.Duration.DaysPerWeek = 8 }, wantErr: true},
		{name: "bad slot day", mutate: func(r *CreateProgramRequest) { r.Weeks[0].Workouts[0].Day = 0 }, wantErr: true},
		{name: "bad slot type", mutate: func(r *CreateProgramRequest) { r.Weeks[0].Workouts[0].Type = "nap" }, wantErr: true},
		{name: "zero week number", mutate: func(r *CreateProgramRequest) { r.Weeks[0].WeekNumber = 0 }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validCreateProgramRequest()
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

func TestCreateProgramRequestDefaults(t *testing.T) {
	req := validCreateProgramRequest()
	assert.NoError(t, req.Validate())

	assert.Equal(t, db_models.ProgramBeginner, req.Difficulty)
	assert.Equal(t, db_models.CreatorUserCreated, req.Creator)
}

func TestUpdateProgramRequestApplyRecalculatesNothingItself(t *testing.T) {
	program := &db_models.Program{
		Title:  "old",
		Status: db_models.ProgramDraft,
	}
	title := "new"
	status := db_models.ProgramPaused
	req := UpdateProgramRequest{Title: &title, Status: &status}

	assert.NoError(t, req.Validate())
	req.Apply(program)

	assert.Equal(t, "new", program.Title)
	assert.Equal(t, db_models.ProgramPaused, program.Status)
}

func TestCompleteProgramWorkoutRequestValidate(t *testing.T) {
	assert.NoError(t, (&CompleteProgramWorkoutRequest{WeekNumber: 1, WorkoutIndex: 0}).Validate())
	assert.Error(t, (&CompleteProgramWorkoutRequest{WeekNumber: 0, WorkoutIndex: 0}).Validate())
	assert.Error(t, (&CompleteProgramWorkoutRequest{WeekNumber: 1, WorkoutIndex: -1}).Validate())
}
