package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fitfusion/internal/models/request_models"
	"fitfusion/internal/services"
	"fitfusion/pkg/utils"
)

type ReadinessController struct {
	readinessService services.ReadinessService
}

func NewReadinessController(readinessService services.ReadinessService) *ReadinessController {
	return &ReadinessController{
		readinessService: readinessService,
	}
}

// CreateScore godoc
// @Summary Record today's readiness score
// @Description At most one score per user per calendar day
// @Tags Readiness
// @Accept json
// @Produce json
// @Param request body request_models.CreateReadinessRequest true "Readiness payload"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security CookieAuth
// @Router /readiness [post]
func (r *ReadinessController) CreateScore(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req request_models.CreateReadinessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	score, err := r.readinessService.CreateScore(c.Request.Context(), userID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondCreated(c, score, "Readiness score created successfully")
}

// GetScores godoc
// @Summary List readiness scores in a date range
// @Tags Readiness
// @Produce json
// @Param startDate query string false "Range start"
// @Param endDate query string false "Range end"
// @Success 200 {object} utils.APIResponse
// @Security CookieAuth
// @Router /readiness [get]
func (r *ReadinessController) GetScores(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	start, ok := queryDate(c, "startDate")
	if !ok {
		return
	}
	end, ok := queryDate(c, "endDate")
	if !ok {
		return
	}

	scores, err := r.readinessService.ListScores(c.Request.Context(), userID, start, end)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, scores, "Readiness scores fetched successfully")
}

// GetScore godoc
// @Summary Get one readiness score
// @Tags Readiness
// @Produce json
// @Param id path string true "Readiness score id"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security CookieAuth
// @Router /readiness/{id} [get]
func (r *ReadinessController) GetScore(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	scoreID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	score, err := r.readinessService.GetScore(c.Request.Context(), userID, scoreID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, score, "Readiness score fetched successfully")
}

// UpdateScore godoc
// @Summary Update a readiness score
// @Tags Readiness
// @Accept json
// @Produce json
// @Param id path string true "Readiness score id"
// @Param request body request_models.UpdateReadinessRequest true "Partial readiness payload"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security CookieAuth
// @Router /readiness/{id} [put]
func (r *ReadinessController) UpdateScore(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	scoreID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	var req request_models.UpdateReadinessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	score, err := r.readinessService.UpdateScore(c.Request.Context(), userID, scoreID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, score, "Readiness score updated successfully")
}

// DeleteScore godoc
// @Summary Delete a readiness score
// @Tags Readiness
// @Produce json
// @Param id path string true "Readiness score id"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security CookieAuth
// @Router /readiness/{id} [delete]
func (r *ReadinessController) DeleteScore(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	scoreID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	if err := r.readinessService.DeleteScore(c.Request.Context(), userID, scoreID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Readiness score deleted successfully")
}
