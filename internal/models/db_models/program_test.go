package db_models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func buildProgram(weeks []ProgramWeek) *Program {
	return &Program{
		Title:      "Test Block",
		Goal:       ProgramGoalStrength,
		Difficulty: ProgramIntermediate,
		Duration:   ProgramDuration{Weeks: len(weeks), DaysPerWeek: 3},
		Weeks:      weeks,
		Status:     ProgramDraft,
	}
}

func TestCalculateProgress(t *testing.T) {
	tests := []struct {
		name           string
		weeks          []ProgramWeek
		wantCompleted  int
		wantTotal      int
		wantPercentage int
	}{
		{
			name:           "no weeks",
			weeks:          nil,
			wantCompleted:  0,
			wantTotal:      0,
			wantPercentage: 0,
		},
		{
			name: "one of three completed rounds up",
			weeks: []ProgramWeek{
				{WeekNumber: 1, Workouts: []WorkoutSlot{
					{Day: 1, Completed: true},
					{Day: 3},
					{Day: 5},
				}},
			},
			wantCompleted:  1,
			wantTotal:      3,
			wantPercentage: 33,
		},
		{
			name: "two of three rounds to 67",
			weeks: []ProgramWeek{
				{WeekNumber: 1, Workouts: []WorkoutSlot{
					{Day: 1, Completed: true},
					{Day: 3, Completed: true},
					{Day: 5},
				}},
			},
			wantCompleted:  2,
			wantTotal:      3,
			wantPercentage: 67,
		},
		{
			name: "all completed across weeks",
			weeks: []ProgramWeek{
				{WeekNumber: 1, Workouts: []WorkoutSlot{{Day: 1, Completed: true}}},
				{WeekNumber: 2, Workouts: []WorkoutSlot{{Day: 1, Completed: true}}},
			},
			wantCompleted:  2,
			wantTotal:      2,
			wantPercentage: 100,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := buildProgram(tt.weeks)
			p.CalculateProgress()

			assert.Equal(t, tt.wantCompleted, p.Progress.CompletedWorkouts)
			assert.Equal(t, tt.wantTotal, p.Progress.TotalWorkouts)
			assert.Equal(t, tt.wantPercentage, p.Progress.CompletionPercentage)
		})
	}
}

func TestCompleteWorkout(t *testing.T) {
	p := buildProgram([]ProgramWeek{
		{WeekNumber: 1, Workouts: []WorkoutSlot{{Day: 1}, {Day: 3}}},
		{WeekNumber: 2, Workouts: []WorkoutSlot{{Day: 1}}},
	})

	ok := p.CompleteWorkout(1, 1)
	assert.True(t, ok)
	assert.True(t, p.Weeks[0].Workouts[1].Completed)
	assert.NotNil(t, p.Weeks[0].Workouts[1].CompletedAt)
	assert.Equal(t, 1, p.Progress.CompletedWorkouts)
	assert.Equal(t, 3, p.Progress.TotalWorkouts)
	assert.Equal(t, 33, p.Progress.CompletionPercentage)

	// untouched slots stay untouched
	assert.False(t, p.Weeks[0].Workouts[0].Completed)
	assert.Nil(t, p.Weeks[0].Workouts[0].CompletedAt)
}

func TestCompleteWorkoutMissingSlot(t *testing.T) {
	p := buildProgram([]ProgramWeek{
		{WeekNumber: 1, Workouts: []WorkoutSlot{{Day: 1}}},
	})

	assert.False(t, p.CompleteWorkout(2, 0), "unknown week")
	assert.False(t, p.CompleteWorkout(1, 5), "index out of range")
	assert.False(t, p.CompleteWorkout(1, -1), "negative index")
	assert.Equal(t, 0, p.Progress.CompletedWorkouts)
}

func TestStartProgram(t *testing.T) {
	p := buildProgram([]ProgramWeek{
		{WeekNumber: 1, Workouts: []WorkoutSlot{{Day: 1}}},
	})
	p.Duration = ProgramDuration{Weeks: 4, DaysPerWeek: 3}

	before := time.Now()
	p.Start()

	assert.Equal(t, ProgramActive, p.Status)
	assert.NotNil(t, p.StartDate)
	assert.NotNil(t, p.EndDate)
	assert.WithinDuration(t, before.AddDate(0, 0, 28), *p.EndDate, 5*time.Second)
}

func TestWorkoutSlotTypeIsValid(t *testing.T) {
	assert.True(t, WorkoutSlotType("rest").IsValid())
	assert.True(t, WorkoutSlotType("strength").IsValid())
	assert.False(t, WorkoutSlotType("nap").IsValid())
}
