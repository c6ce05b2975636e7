package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fitfusion/internal/models/request_models"
	"fitfusion/internal/services"
	"fitfusion/pkg/utils"
)

type InsightController struct {
	insightService services.InsightService
}

func NewInsightController(insightService services.InsightService) *InsightController {
	return &InsightController{
		insightService: insightService,
	}
}

// GenerateInsight godoc
// @Summary Generate an AI insight
// @Description Accepts a free-text prompt or a quick-reply payload, returns the persisted insight
// @Tags Insights
// @Accept json
// @Produce json
// @Param request body request_models.GenerateInsightRequest true "Insight request"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 500 {object} utils.APIResponse
// @Security CookieAuth
// @Router /gemini/insight [post]
func (i *InsightController) GenerateInsight(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req request_models.GenerateInsightRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	insight, err := i.insightService.GenerateInsight(c.Request.Context(), userID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondCreated(c, insight, "Insight generated successfully")
}

// GetQuickReplies godoc
// @Summary List the quick-reply catalog
// @Tags Insights
// @Produce json
// @Param category query string false "Category filter"
// @Success 200 {object} utils.APIResponse
// @Security CookieAuth
// @Router /gemini/quick-replies [get]
func (i *InsightController) GetQuickReplies(c *gin.Context) {
	replies := i.insightService.QuickReplies(c.Query("category"))
	utils.RespondSuccess(c, replies, "Quick replies fetched successfully")
}

// GetInsights godoc
// @Summary List the caller's insights
// @Tags Insights
// @Produce json
// @Param page query int false "Page, defaults to 1"
// @Param limit query int false "Page size, defaults to 10"
// @Success 200 {object} utils.APIResponse
// @Security CookieAuth
// @Router /gemini/insights [get]
func (i *InsightController) GetInsights(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	page, ok := queryInt(c, "page", 1)
	if !ok {
		return
	}
	limit, ok := queryInt(c, "limit", 10)
	if !ok {
		return
	}

	result, err := i.insightService.ListInsights(c.Request.Context(), userID, page, limit)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, result, "Insights fetched successfully")
}

// MarkInsightRead godoc
// @Summary Mark an insight as read
// @Tags Insights
// @Produce json
// @Param id path string true "Insight id"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security CookieAuth
// @Router /gemini/insights/{id}/read [put]
func (i *InsightController) MarkInsightRead(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	insightID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	insight, err := i.insightService.MarkInsightRead(c.Request.Context(), userID, insightID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, insight, "Insight marked as read")
}
