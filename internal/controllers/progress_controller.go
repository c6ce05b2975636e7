package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fitfusion/internal/models/request_models"
	"fitfusion/internal/services"
	"fitfusion/pkg/utils"
)

type ProgressController struct {
	progressService services.ProgressService
}

func NewProgressController(progressService services.ProgressService) *ProgressController {
	return &ProgressController{
		progressService: progressService,
	}
}

func progressFilterFromQuery(c *gin.Context) (request_models.ProgressListFilter, bool) {
	var filter request_models.ProgressListFilter
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
	return filter, true
}

// CreateEntry godoc
// @Summary Log a progress entry
// @Tags Progress
// @Accept json
// @Produce json
// @Param request body request_models.CreateProgressRequest true "Progress payload"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security CookieAuth
// @Router /workouts/progress [post]
func (p *ProgressController) CreateEntry(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req request_models.CreateProgressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	entry, err := p.progressService.CreateEntry(c.Request.Context(), userID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondCreated(c, entry, "Progress entry created successfully")
}

// GetEntries godoc
// @Summary List progress entries in a date range
// @Tags Progress
// @Produce json
// @Param startDate query string false "Range start"
// @Param endDate query string false "Range end"
// @Success 200 {object} utils.APIResponse
// @Security CookieAuth
// @Router /workouts/progress [get]
func (p *ProgressController) GetEntries(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	filter, ok := progressFilterFromQuery(c)
	if !ok {
		return
	}

	entries, err := p.progressService.ListEntries(c.Request.Context(), userID, filter)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, entries, "Progress entries fetched successfully")
}

// GetEntry godoc
// @Summary Get one progress entry
// @Tags Progress
// @Produce json
// @Param id path string true "Progress entry id"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security CookieAuth
// @Router /workouts/progress/{id} [get]
func (p *ProgressController) GetEntry(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	entryID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	entry, err := p.progressService.GetEntry(c.Request.Context(), userID, entryID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, entry, "Progress entry fetched successfully")
}

// UpdateEntry godoc
// @Summary Update a progress entry
// @Tags Progress
// @Accept json
// @Produce json
// @Param id path string true "Progress entry id"
// @Param request body request_models.UpdateProgressRequest true "Partial progress payload"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security CookieAuth
// @Router /workouts/progress/{id} [put]
func (p *ProgressController) UpdateEntry(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	entryID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	var req request_models.UpdateProgressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	entry, err := p.progressService.UpdateEntry(c.Request.Context(), userID, entryID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, entry, "Progress entry updated successfully")
}

// DeleteEntry godoc
// @Summary Delete a progress entry
// @Tags Progress
// @Produce json
// @Param id path string true "Progress entry id"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security CookieAuth
// @Router /workouts/progress/{id} [delete]
func (p *ProgressController) DeleteEntry(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	entryID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	if err := p.progressService.DeleteEntry(c.Request.Context(), userID, entryID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Progress entry deleted successfully")
}

// GetStats godoc
// @Summary Progress deltas between the first and latest entries
// @Tags Progress
// @Produce json
// @Param startDate query string false "Range start"
// @Param endDate query string false "Range end"
// @Success 200 {object} utils.APIResponse
// @Security CookieAuth
// @Router /workouts/progress/stats [get]
func (p *ProgressController) GetStats(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	filter, ok := progressFilterFromQuery(c)
	if !ok {
		return
	}

	stats, err := p.progressService.Stats(c.Request.Context(), userID, filter)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, stats, "Progress stats fetched successfully")
}

// GetTrends godoc
// @Summary Time series for one tracked metric
// @Tags Progress
// @Produce json
// @Param metric query string false "Metric name, defaults to weight"
// @Param period query int false "Period in days, defaults to 90"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security CookieAuth
// @Router /workouts/progress/trends [get]
func (p *ProgressController) GetTrends(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	period, ok := queryInt(c, "period", 90)
	if !ok {
		return
	}

	trends, err := p.progressService.Trends(c.Request.Context(), userID, c.Query("metric"), period)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, trends, "Progress trends fetched successfully")
}
