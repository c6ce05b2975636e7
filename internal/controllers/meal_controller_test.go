package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"fitfusion/internal/models/db_models"
	"fitfusion/internal/models/request_models"
	"fitfusion/internal/models/response_models"
	"fitfusion/pkg/utils"
)

type mockMealService struct {
	mock.Mock
}

func (m *mockMealService) CreateMeal(ctx context.Context, userID uuid.UUID, request request_models.CreateMealRequest) (*db_models.Meal, error) {
	args := m.Called(ctx, userID, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*db_models.Meal), args.Error(1)
}

func (m *mockMealService) ListMeals(ctx context.Context, userID uuid.UUID, filter request_models.MealListFilter) (*response_models.MealListResponse, error) {
	args := m.Called(ctx, userID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response_models.MealListResponse), args.Error(1)
}

func (m *mockMealService) GetMeal(ctx context.Context, userID, mealID uuid.UUID) (*db_models.Meal, error) {
	args := m.Called(ctx, userID, mealID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*db_models.Meal), args.Error(1)
}

func (m *mockMealService) UpdateMeal(ctx context.Context, userID, mealID uuid.UUID, request request_models.UpdateMealRequest) (*db_models.Meal, error) {
	args := m.Called(ctx, userID, mealID, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*db_models.Meal), args.Error(1)
}

func (m *mockMealService) DeleteMeal(ctx context.Context, userID, mealID uuid.UUID) error {
	args := m.Called(ctx, userID, mealID)
	return args.Error(0)
}

func (m *mockMealService) Stats(ctx context.Context, userID uuid.UUID, filter request_models.MealListFilter) (*response_models.MealStats, error) {
	args := m.Called(ctx, userID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response_models.MealStats), args.Error(1)
}

func setupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func stubAuthMiddleware(userID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user_id", userID)
		c.Next()
	}
}

func TestCreateMeal(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name           string
		requestBody    map[string]interface{}
		setupMock      func(*mockMealService)
		expectedStatus int
		expectedMsg    string
	}{
		{
			name: "successful creation",
			requestBody: map[string]interface{}{
				"mealType": "lunch",
				"name":     "Chicken and rice",
				"calories": 650,
			},
			setupMock: func(m *mockMealService) {
				m.On("CreateMeal", mock.Anything, userID, mock.AnythingOfType("request_models.CreateMealRequest")).
					Return(&db_models.Meal{Name: "Chicken and rice"}, nil)
			},
			expectedStatus: http.StatusCreated,
			expectedMsg:    "Meal created successfully",
		},
		{
			name:           "invalid JSON",
			requestBody:    nil,
			setupMock:      func(m *mockMealService) {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "Invalid request format",
		},
		{
			name: "validation error surfaces as 400",
			requestBody: map[string]interface{}{
				"mealType": "second-breakfast",
				"name":     "Elevenses",
			},
			setupMock: func(m *mockMealService) {
				m.On("CreateMeal", mock.Anything, userID, mock.AnythingOfType("request_models.CreateMealRequest")).
					Return(nil, utils.ErrValidation)
			},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "validation error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(mockMealService)
			tt.setupMock(mockService)
			controller := NewMealController(mockService)

			router := setupTestRouter()
			router.Use(stubAuthMiddleware(userID.String()))
			router.POST("/food", controller.CreateMeal)

			var body []byte
			if tt.requestBody != nil {
				body, _ = json.Marshal(tt.requestBody)
			} else {
				body = []byte("not json")
			}

			req := httptest.NewRequest("POST", "/food", bytes.NewBuffer(body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			var response utils.APIResponse
			assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
			assert.Contains(t, response.Message, tt.expectedMsg)

			mockService.AssertExpectations(t)
		})
	}
}

func TestCreateMealUnauthenticated(t *testing.T) {
	controller := NewMealController(new(mockMealService))
	router := setupTestRouter()
	router.POST("/food", controller.CreateMeal)

	body, _ := json.Marshal(map[string]interface{}{"mealType": "lunch", "name": "x"})
	req := httptest.NewRequest("POST", "/food", bytes.NewBuffer(body))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestGetMealsPassesFilter(t *testing.T) {
	userID := uuid.New()
	mockService := new(mockMealService)
	mockService.On("ListMeals", mock.Anything, userID, mock.MatchedBy(func(f request_models.MealListFilter) bool {
		return f.MealType == "breakfast" && f.Page == 2 && f.Limit == 5
	})).Return(&response_models.MealListResponse{
		Meals:      []db_models.Meal{},
		Pagination: response_models.NewPagination(2, 5, 11),
	}, nil)

	controller := NewMealController(mockService)
	router := setupTestRouter()
	router.Use(stubAuthMiddleware(userID.String()))
	router.GET("/food", controller.GetMeals)

	req := httptest.NewRequest("GET", "/food?mealType=breakfast&page=2&limit=5", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockService.AssertExpectations(t)
}

func TestGetMealInvalidID(t *testing.T) {
	controller := NewMealController(new(mockMealService))
	router := setupTestRouter()
	router.Use(stubAuthMiddleware(uuid.New().String()))
	router.GET("/food/:id", controller.GetMeal)

	req := httptest.NewRequest("GET", "/food/not-a-uuid", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteMealNotFound(t *testing.T) {
	userID := uuid.New()
	mealID := uuid.New()
	mockService := new(mockMealService)
	mockService.On("DeleteMeal", mock.Anything, userID, mealID).Return(utils.ErrMealNotFound)

	controller := NewMealController(mockService)
	router := setupTestRouter()
	router.Use(stubAuthMiddleware(userID.String()))
	router.DELETE("/food/:id", controller.DeleteMeal)

	req := httptest.NewRequest("DELETE", "/food/"+mealID.String(), nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
