package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"fitfusion/internal/models/db_models"
	"fitfusion/internal/models/request_models"
	"fitfusion/internal/models/response_models"
	"fitfusion/internal/repositories"
	"fitfusion/pkg/utils"
)

const (
	defaultMealPageSize = 20
	maxMealPageSize     = 100
)

type MealService interface {
	CreateMeal(ctx context.Context, userID uuid.UUID, request request_models.CreateMealRequest) (*db_models.Meal, error)
	ListMeals(ctx context.Context, userID uuid.UUID, filter request_models.MealListFilter) (*response_models.MealListResponse, error)
	GetMeal(ctx context.Context, userID, mealID uuid.UUID) (*db_models.Meal, error)
	UpdateMeal(ctx context.Context, userID, mealID uuid.UUID, request request_models.UpdateMealRequest) (*db_models.Meal, error)
	DeleteMeal(ctx context.Context, userID, mealID uuid.UUID) error
	Stats(ctx context.Context, userID uuid.UUID, filter request_models.MealListFilter) (*response_models.MealStats, error)
}

func NewMealService(mealRepo repositories.MealRepository) MealService {
	return &mealService{mealRepo: mealRepo}
}

type mealService struct {
	mealRepo repositories.MealRepository
}

func (s *mealService) CreateMeal(ctx context.Context, userID uuid.UUID, request request_models.CreateMealRequest) (*db_models.Meal, error) {
	if err := request.Validate(); err != nil {
		return nil, err
	}

	date := time.Now()
	if request.Date != nil {
		date = *request.Date
	}

	meal := &db_models.Meal{
		UserID:         userID,
		Date:           date,
		MealType:       request.MealType,
		Name:           request.Name,
		Foods:          request.Foods,
		Calories:       request.Calories,
		Macros:         request.Macros,
		Micronutrients: request.Micronutrients,
		ImageURL:       request.ImageURL,
		RecipeURL:      request.RecipeURL,
		AIGenerated:    request.AIGenerated,
		Notes:          request.Notes,
	}
	if err := s.mealRepo.Insert(ctx, meal); err != nil {
		return nil, err
	}
	return meal, nil
}

func (s *mealService) ListMeals(ctx context.Context, userID uuid.UUID, filter request_models.MealListFilter) (*response_models.MealListResponse, error) {
	if filter.Page == 0 {
		filter.Page = 1
	}
	if filter.Limit == 0 {
		filter.Limit = defaultMealPageSize
	}
	if filter.Page < 1 {
		return nil, utils.ErrInvalidPage
	}
	if filter.Limit < 1 || filter.Limit > maxMealPageSize {
		return nil, utils.ErrInvalidPageSize
	}
	if filter.MealType != "" && !db_models.MealType(filter.MealType).IsValid() {
		return nil, utils.ErrValidation
	}

	meals, total, err := s.mealRepo.ListByUser(ctx, userID, filter)
	if err != nil {
		return nil, err
	}
	if meals == nil {
		meals = []db_models.Meal{}
	}

	return &response_models.MealListResponse{
		Meals:      meals,
		Pagination: response_models.NewPagination(filter.Page, filter.Limit, total),
	}, nil
}

func (s *mealService) GetMeal(ctx context.Context, userID, mealID uuid.UUID) (*db_models.Meal, error) {
	meal, err := s.mealRepo.FindByID(ctx, userID, mealID)
	if err != nil {
		return nil, err
	}
	if meal == nil {
		return nil, utils.ErrMealNotFound
	}
	return meal, nil
}

func (s *mealService) UpdateMeal(ctx context.Context, userID, mealID uuid.UUID, request request_models.UpdateMealRequest) (*db_models.Meal, error) {
	if err := request.Validate(); err != nil {
		return nil, err
	}

	meal, err := s.GetMeal(ctx, userID, mealID)
	if err != nil {
		return nil, err
	}

	request.Apply(meal)
	if err := s.mealRepo.Update(ctx, meal); err != nil {
		return nil, err
	}
	return meal, nil
}

func (s *mealService) DeleteMeal(ctx context.Context, userID, mealID uuid.UUID) error {
	deleted, err := s.mealRepo.Delete(ctx, userID, mealID)
	if err != nil {
		return err
	}
	if !deleted {
		return utils.ErrMealNotFound
	}
	return nil
}

func (s *mealService) Stats(ctx context.Context, userID uuid.UUID, filter request_models.MealListFilter) (*response_models.MealStats, error) {
	if filter.MealType != "" && !db_models.MealType(filter.MealType).IsValid() {
		return nil, utils.ErrValidation
	}
	return s.mealRepo.Stats(ctx, userID, filter)
}
