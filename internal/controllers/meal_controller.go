package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fitfusion/internal/models/request_models"
	"fitfusion/internal/services"
	"fitfusion/pkg/utils"
)

type MealController struct {
	mealService services.MealService
}

func NewMealController(mealService services.MealService) *MealController {
	return &MealController{
		mealService: mealService,
	}
}

func mealFilterFromQuery(c *gin.Context) (request_models.MealListFilter, bool) {
	var filter request_models.MealListFilter
	filter.MealType = c.Query("mealType")

	start, ok := queryDate(c, "startDate")
	if !ok {
		return filter, false
	}
	end, ok := queryDate(c, "endDate")
	if !ok {
		return filter, false
	}
	filter.StartDate = start
	filter.EndDate = end

	page, ok := queryInt(c, "page", 1)
	if !ok {
		return filter, false
	}
	limit, ok := queryInt(c, "limit", 20)
	if !ok {
		return filter, false
	}
	filter.Page = page
	filter.Limit = limit
	return filter, true
}

// CreateMeal godoc
// @Summary Log a meal
// @Tags Meals
// @Accept json
// @Produce json
// @Param request body request_models.CreateMealRequest true "Meal payload"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security CookieAuth
// @Router /food [post]
func (m *MealController) CreateMeal(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req request_models.CreateMealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	meal, err := m.mealService.CreateMeal(c.Request.Context(), userID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondCreated(c, meal, "Meal created successfully")
}

// GetMeals godoc
// @Summary List meals with pagination and filters
// @Tags Meals
// @Produce json
// @Param page query int false "Page, defaults to 1"
// @Param limit query int false "Page size, defaults to 20"
// @Param mealType query string false "Meal type filter"
// @Param startDate query string false "Range start"
// @Param endDate query string false "Range end"
// @Success 200 {object} utils.APIResponse
// @Security CookieAuth
// @Router /food [get]
func (m *MealController) GetMeals(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	filter, ok := mealFilterFromQuery(c)
	if !ok {
		return
	}

	result, err := m.mealService.ListMeals(c.Request.Context(), userID, filter)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, result, "Meals fetched successfully")
}

// GetMeal godoc
// @Summary Get one meal
// @Tags Meals
// @Produce json
// @Param id path string true "Meal id"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security CookieAuth
// @Router /food/{id} [get]
func (m *MealController) GetMeal(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	mealID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	meal, err := m.mealService.GetMeal(c.Request.Context(), userID, mealID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, meal, "Meal fetched successfully")
}

// UpdateMeal godoc
// @Summary Update a meal
// @Tags Meals
// @Accept json
// @Produce json
// @Param id path string true "Meal id"
// @Param request body request_models.UpdateMealRequest true "Partial meal payload"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security CookieAuth
// @Router /food/{id} [put]
func (m *MealController) UpdateMeal(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	mealID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	var req request_models.UpdateMealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	meal, err := m.mealService.UpdateMeal(c.Request.Context(), userID, mealID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, meal, "Meal updated successfully")
}

// DeleteMeal godoc
// @Summary Delete a meal
// @Tags Meals
// @Produce json
// @Param id path string true "Meal id"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security CookieAuth
// @Router /food/{id} [delete]
func (m *MealController) DeleteMeal(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	mealID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	if err := m.mealService.DeleteMeal(c.Request.Context(), userID, mealID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Meal deleted successfully")
}

// GetStats godoc
// @Summary Nutrition statistics over an optional range
// @Tags Meals
// @Produce json
// @Param mealType query string false "Meal type filter"
// @Param startDate query string false "Range start"
// @Param endDate query string false "Range end"
// @Success 200 {object} utils.APIResponse
// @Security CookieAuth
// @Router /food/stats [get]
func (m *MealController) GetStats(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	filter, ok := mealFilterFromQuery(c)
	if !ok {
		return
	}

	stats, err := m.mealService.Stats(c.Request.Context(), userID, filter)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, stats, "Meal stats fetched successfully")
}
