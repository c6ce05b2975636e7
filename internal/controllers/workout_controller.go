package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"fitfusion/internal/models/db_models"
	"fitfusion/internal/models/request_models"
	"fitfusion/internal/services"
	"fitfusion/pkg/utils"
)

type WorkoutController struct {
	workoutService services.WorkoutService
}

func NewWorkoutController(workoutService services.WorkoutService) *WorkoutController {
	return &WorkoutController{
		workoutService: workoutService,
	}
}

// CreateWorkout godoc
// @Summary Log a workout
// @Tags Workouts
// @Accept json
// @Produce json
// @Param request body request_models.CreateWorkoutRequest true "Workout payload"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security CookieAuth
// @Router /workouts [post]
func (w *WorkoutController) CreateWorkout(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req request_models.CreateWorkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	workout, err := w.workoutService.CreateWorkout(c.Request.Context(), userID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondCreated(c, workout, "Workout created successfully")
}

// GetWorkouts godoc
// @Summary List the caller's workouts
// @Tags Workouts
// @Produce json
// @Param type query string false "Workout type filter"
// @Param date query string false "Only workouts on or after this date"
// @Param isCompleted query bool false "Completion filter"
// @Success 200 {object} utils.APIResponse
// @Security CookieAuth
// @Router /workouts [get]
func (w *WorkoutController) GetWorkouts(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	filter := request_models.WorkoutListFilter{Type: c.Query("type")}
	date, ok := queryDate(c, "date")
	if !ok {
		return
	}
	filter.Date = date
	if raw := c.Query("isCompleted"); raw != "" {
		completed, err := strconv.ParseBool(raw)
		if err != nil {
			utils.RespondError(c, http.StatusBadRequest, "invalid isCompleted parameter")
			return
		}
		filter.IsCompleted = &completed
	}

	workouts, err := w.workoutService.ListWorkouts(c.Request.Context(), userID, filter)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, workouts, "Workouts fetched successfully")
}

// GetWorkout godoc
// @Summary Get one workout
// @Tags Workouts
// @Produce json
// @Param workoutId path string true "Workout id"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security CookieAuth
// @Router /workouts/{workoutId} [get]
func (w *WorkoutController) GetWorkout(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	workoutID, ok := pathUUID(c, "workoutId")
	if !ok {
		return
	}

	workout, err := w.workoutService.GetWorkout(c.Request.Context(), userID, workoutID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, workout, "Workout fetched successfully")
}

// UpdateWorkout godoc
// @Summary Update a workout
// @Tags Workouts
// @Accept json
// @Produce json
// @Param workoutId path string true "Workout id"
// @Param request body request_models.UpdateWorkoutRequest true "Partial workout payload"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security CookieAuth
// @Router /workouts/{workoutId} [put]
func (w *WorkoutController) UpdateWorkout(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	workoutID, ok := pathUUID(c, "workoutId")
	if !ok {
		return
	}

	var req request_models.UpdateWorkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	workout, err := w.workoutService.UpdateWorkout(c.Request.Context(), userID, workoutID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, workout, "Workout updated successfully")
}

// DeleteWorkout godoc
// @Summary Delete a workout
// @Tags Workouts
// @Produce json
// @Param workoutId path string true "Workout id"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security CookieAuth
// @Router /workouts/{workoutId} [delete]
func (w *WorkoutController) DeleteWorkout(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	workoutID, ok := pathUUID(c, "workoutId")
	if !ok {
		return
	}

	if err := w.workoutService.DeleteWorkout(c.Request.Context(), userID, workoutID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Workout deleted successfully")
}

// CompleteWorkout godoc
// @Summary Mark a workout as completed
// @Tags Workouts
// @Accept json
// @Produce json
// @Param workoutId path string true "Workout id"
// @Param request body request_models.CompleteWorkoutRequest false "Optional completion details"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security CookieAuth
// @Router /workouts/{workoutId}/complete [post]
func (w *WorkoutController) CompleteWorkout(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	workoutID, ok := pathUUID(c, "workoutId")
	if !ok {
		return
	}

	var req request_models.CompleteWorkoutRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
			return
		}
	}

	workout, err := w.workoutService.CompleteWorkout(c.Request.Context(), userID, workoutID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, workout, "Workout completed successfully")
}

// AddExercise godoc
// @Summary Append an exercise to a workout
// @Tags Workouts
// @Accept json
// @Produce json
// @Param workoutId path string true "Workout id"
// @Param request body db_models.Exercise true "Exercise payload"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security CookieAuth
// @Router /workouts/{workoutId}/exercises [post]
func (w *WorkoutController) AddExercise(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	workoutID, ok := pathUUID(c, "workoutId")
	if !ok {
		return
	}

	var exercise db_models.Exercise
	if err := c.ShouldBindJSON(&exercise); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	workout, err := w.workoutService.AddExercise(c.Request.Context(), userID, workoutID, exercise)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, workout, "Exercise added successfully")
}

// UpdateExercise godoc
// @Summary Replace an exercise at a position
// @Tags Workouts
// @Accept json
// @Produce json
// @Param workoutId path string true "Workout id"
// @Param exerciseIndex path int true "Zero-based exercise position"
// @Param request body db_models.Exercise true "Exercise payload"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security CookieAuth
// @Router /workouts/{workoutId}/exercises/{exerciseIndex} [put]
func (w *WorkoutController) UpdateExercise(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	workoutID, ok := pathUUID(c, "workoutId")
	if !ok {
		return
	}
	index, err := strconv.Atoi(c.Param("exerciseIndex"))
	if err != nil {
		utils.HandleServiceError(c, utils.ErrInvalidID)
		return
	}

	var exercise db_models.Exercise
	if err := c.ShouldBindJSON(&exercise); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	workout, err := w.workoutService.UpdateExercise(c.Request.Context(), userID, workoutID, index, exercise)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, workout, "Exercise updated successfully")
}

// RemoveExercise godoc
// @Summary Remove an exercise at a position
// @Tags Workouts
// @Produce json
// @Param workoutId path string true "Workout id"
// @Param exerciseIndex path int true "Zero-based exercise position"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security CookieAuth
// @Router /workouts/{workoutId}/exercises/{exerciseIndex} [delete]
func (w *WorkoutController) RemoveExercise(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	workoutID, ok := pathUUID(c, "workoutId")
	if !ok {
		return
	}
	index, err := strconv.Atoi(c.Param("exerciseIndex"))
	if err != nil {
		utils.HandleServiceError(c, utils.ErrInvalidID)
		return
	}

	workout, err := w.workoutService.RemoveExercise(c.Request.Context(), userID, workoutID, index)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, workout, "Exercise removed successfully")
}

// GetStats godoc
// @Summary Workout statistics for a rolling period
// @Tags Workouts
// @Produce json
// @Param period query int false "Period in days, defaults to 30"
// @Success 200 {object} utils.APIResponse
// @Security CookieAuth
// @Router /workouts/stats [get]
func (w *WorkoutController) GetStats(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	period, ok := queryInt(c, "period", 30)
	if !ok {
		return
	}

	stats, err := w.workoutService.Stats(c.Request.Context(), userID, period)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, stats, "Workout stats fetched successfully")
}
