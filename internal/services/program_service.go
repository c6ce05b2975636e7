package services

import (
	"context"

	"github.com/google/uuid"

	"fitfusion/internal/models/db_models"
	"fitfusion/internal/models/request_models"
	"fitfusion/internal/repositories"
	"fitfusion/pkg/utils"
)

type ProgramService interface {
	CreateProgram(ctx context.Context, userID uuid.UUID, request request_models.CreateProgramRequest) (*db_models.Program, error)
	ListPrograms(ctx context.Context, userID uuid.UUID, filter request_models.ProgramListFilter) ([]db_models.Program, error)
	GetProgram(ctx context.Context, userID, programID uuid.UUID) (*db_models.Program, error)
	UpdateProgram(ctx context.Context, userID, programID uuid.UUID, request request_models.UpdateProgramRequest) (*db_models.Program, error)
	DeleteProgram(ctx context.Context, userID, programID uuid.UUID) error
	StartProgram(ctx context.Context, userID, programID uuid.UUID) (*db_models.Program, error)
	CompleteProgramWorkout(ctx context.Context, userID, programID uuid.UUID, request request_models.CompleteProgramWorkoutRequest) (*db_models.Program, error)
}

func NewProgramService(programRepo repositories.ProgramRepository) ProgramService {
	return &programService{programRepo: programRepo}
}

type programService struct {
	programRepo repositories.ProgramRepository
}

func (s *programService) CreateProgram(ctx context.Context, userID uuid.UUID, request request_models.CreateProgramRequest) (*db_models.Program, error) {
	if err := request.Validate(); err != nil {
		return nil, err
	}

	program := &db_models.Program{
		UserID:            userID,
		Title:             request.Title,
		Description:       request.Description,
		Goal:              request.Goal,
		Difficulty:        request.Difficulty,
		Duration:          request.Duration,
		Weeks:             request.Weeks,
		EquipmentRequired: request.EquipmentRequired,
		Tags:              request.Tags,
		Creator:           request.Creator,
		Status:            db_models.ProgramDraft,
		CurrentWeek:       1,
		Nutrition:         request.Nutrition,
		Notes:             request.Notes,
	}
	program.CalculateProgress()

	if err := s.programRepo.Insert(ctx, program); err != nil {
		return nil, err
	}
	return program, nil
}

func (s *programService) ListPrograms(ctx context.Context, userID uuid.UUID, filter request_models.ProgramListFilter) ([]db_models.Program, error) {
	return s.programRepo.ListByUser(ctx, userID, filter)
}

func (s *programService) GetProgram(ctx context.Context, userID, programID uuid.UUID) (*db_models.Program, error) {
	program, err := s.programRepo.FindByID(ctx, userID, programID)
	if err != nil {
		return nil, err
	}
	if program == nil {
		return nil, utils.ErrProgramNotFound
	}
	return program, nil
}

// UpdateProgram applies the patch under the row lock so week rewrites and
// concurrent workout completions cannot interleave.
func (s *programService) UpdateProgram(ctx context.Context, userID, programID uuid.UUID, request request_models.UpdateProgramRequest) (*db_models.Program, error) {
	if err := request.Validate(); err != nil {
		return nil, err
	}

	program, err := s.programRepo.MutateLocked(ctx, userID, programID, func(p *db_models.Program) error {
		request.Apply(p)
		if request.Weeks != nil {
			p.CalculateProgress()
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if program == nil {
		return nil, utils.ErrProgramNotFound
	}
	return program, nil
}

func (s *programService) DeleteProgram(ctx context.Context, userID, programID uuid.UUID) error {
	deleted, err := s.programRepo.Delete(ctx, userID, programID)
	if err != nil {
		return err
	}
	if !deleted {
		return utils.ErrProgramNotFound
	}
	return nil
}

func (s *programService) StartProgram(ctx context.Context, userID, programID uuid.UUID) (*db_models.Program, error) {
	program, err := s.programRepo.MutateLocked(ctx, userID, programID, func(p *db_models.Program) error {
		p.Start()
		return nil
	})
	if err != nil {
		return nil, err
	}
	if program == nil {
		return nil, utils.ErrProgramNotFound
	}
	return program, nil
}

func (s *programService) CompleteProgramWorkout(ctx context.Context, userID, programID uuid.UUID, request request_models.CompleteProgramWorkoutRequest) (*db_models.Program, error) {
	if err := request.Validate(); err != nil {
		return nil, err
	}

	program, err := s.programRepo.MutateLocked(ctx, userID, programID, func(p *db_models.Program) error {
		if !p.CompleteWorkout(request.WeekNumber, request.WorkoutIndex) {
			return utils.ErrWorkoutNotFound
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if program == nil {
		return nil, utils.ErrProgramNotFound
	}
	return program, nil
}
