package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"fitfusion/internal/models/db_models"
	"fitfusion/internal/models/request_models"
)

type ProgramRepository interface {
	Insert(ctx context.Context, program *db_models.Program) error
	FindByID(ctx context.Context, userID, programID uuid.UUID) (*db_models.Program, error)
	ListByUser(ctx context.Context, userID uuid.UUID, filter request_models.ProgramListFilter) ([]db_models.Program, error)
	Update(ctx context.Context, program *db_models.Program) error
	Delete(ctx context.Context, userID, programID uuid.UUID) (bool, error)
	// MutateLocked loads the program under a row lock, applies fn and saves
	// the result in one transaction. Serializes concurrent week mutations so
	// the progress recompute can't clobber a parallel write.
	MutateLocked(ctx context.Context, userID, programID uuid.UUID, fn func(*db_models.Program) error) (*db_models.Program, error)
}

func NewProgramRepository(db *gorm.DB) ProgramRepository {
	return &programRepository{db: db}
}

type programRepository struct {
	db *gorm.DB
}

func (r *programRepository) Insert(ctx context.Context, program *db_models.Program) error {
	return r.db.WithContext(ctx).Create(program).Error
}

func (r *programRepository) FindByID(ctx context.Context, userID, programID uuid.UUID) (*db_models.Program, error) {
	var program db_models.Program
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", programID, userID).
		First(&program).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &program, nil
}

func (r *programRepository) ListByUser(ctx context.Context, userID uuid.UUID, filter request_models.ProgramListFilter) ([]db_models.Program, error) {
	q := r.db.WithContext(ctx).Where("user_id = ?", userID)
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.Goal != "" {
		q = q.Where("goal = ?", filter.Goal)
	}
	if filter.Difficulty != "" {
		q = q.Where("difficulty = ?", filter.Difficulty)
	}

	var programs []db_models.Program
	if err := q.Order("created_at desc").Find(&programs).Error; err != nil {
		return nil, err
	}
	return programs, nil
}

func (r *programRepository) Update(ctx context.Context, program *db_models.Program) error {
	return r.db.WithContext(ctx).Save(program).Error
}

func (r *programRepository) Delete(ctx context.Context, userID, programID uuid.UUID) (bool, error) {
	res := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", programID, userID).
		Delete(&db_models.Program{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *programRepository) MutateLocked(ctx context.Context, userID, programID uuid.UUID, fn func(*db_models.Program) error) (*db_models.Program, error) {
	var program db_models.Program

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ? AND user_id = ?", programID, userID).
			First(&program).Error
		if err != nil {
			return err
		}
		if err := fn(&program); err != nil {
			return err
		}
		return tx.Save(&program).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &program, nil
}
