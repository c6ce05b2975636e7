package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fitfusion/internal/models/request_models"
	"fitfusion/internal/services"
	"fitfusion/pkg/utils"
)

type ProgramController struct {
	programService services.ProgramService
}

func NewProgramController(programService services.ProgramService) *ProgramController {
	return &ProgramController{
		programService: programService,
	}
}

// CreateProgram godoc
// @Summary Create a training program
// @Tags Programs
// @Accept json
// @Produce json
// @Param request body request_models.CreateProgramRequest true "Program payload"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security CookieAuth
// @Router /workouts/programs [post]
func (p *ProgramController) CreateProgram(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req request_models.CreateProgramRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	program, err := p.programService.CreateProgram(c.Request.Context(), userID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondCreated(c, program, "Program created successfully")
}

// GetPrograms godoc
// @Summary List the caller's programs
// @Tags Programs
// @Produce json
// @Param status query string false "Status filter"
// @Param goal query string false "Goal filter"
// @Param difficulty query string false "Difficulty filter"
// @Success 200 {object} utils.APIResponse
// @Security CookieAuth
// @Router /workouts/programs [get]
func (p *ProgramController) GetPrograms(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	filter := request_models.ProgramListFilter{
		Status:     c.Query("status"),
		Goal:       c.Query("goal"),
		Difficulty: c.Query("difficulty"),
	}
	programs, err := p.programService.ListPrograms(c.Request.Context(), userID, filter)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, programs, "Programs fetched successfully")
}

// GetProgram godoc
// @Summary Get one program
// @Tags Programs
// @Produce json
// @Param programId path string true "Program id"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security CookieAuth
// @Router /workouts/programs/{programId} [get]
func (p *ProgramController) GetProgram(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	programID, ok := pathUUID(c, "programId")
	if !ok {
		return
	}

	program, err := p.programService.GetProgram(c.Request.Context(), userID, programID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, program, "Program fetched successfully")
}

// UpdateProgram godoc
// @Summary Update a program
// @Tags Programs
// @Accept json
// @Produce json
// @Param programId path string true "Program id"
// @Param request body request_models.UpdateProgramRequest true "Partial program payload"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security CookieAuth
// @Router /workouts/programs/{programId} [put]
func (p *ProgramController) UpdateProgram(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	programID, ok := pathUUID(c, "programId")
	if !ok {
		return
	}

	var req request_models.UpdateProgramRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	program, err := p.programService.UpdateProgram(c.Request.Context(), userID, programID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, program, "Program updated successfully")
}

// DeleteProgram godoc
// @Summary Delete a program
// @Tags Programs
// @Produce json
// @Param programId path string true "Program id"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security CookieAuth
// @Router /workouts/programs/{programId} [delete]
func (p *ProgramController) DeleteProgram(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	programID, ok := pathUUID(c, "programId")
	if !ok {
		return
	}

	if err := p.programService.DeleteProgram(c.Request.Context(), userID, programID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Program deleted successfully")
}

// StartProgram godoc
// @Summary Start a program
// @Description Activates the program and stamps its start and end dates
// @Tags Programs
// @Produce json
// @Param programId path string true "Program id"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security CookieAuth
// @Router /workouts/programs/{programId}/start [post]
func (p *ProgramController) StartProgram(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	programID, ok := pathUUID(c, "programId")
	if !ok {
		return
	}

	program, err := p.programService.StartProgram(c.Request.Context(), userID, programID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, program, "Program started successfully")
}

// CompleteProgramWorkout godoc
// @Summary Mark one program workout slot as completed
// @Tags Programs
// @Accept json
// @Produce json
// @Param programId path string true "Program id"
// @Param request body request_models.CompleteProgramWorkoutRequest true "Slot position"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security CookieAuth
// @Router /workouts/programs/{programId}/complete-workout [post]
func (p *ProgramController) CompleteProgramWorkout(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	programID, ok := pathUUID(c, "programId")
	if !ok {
		return
	}

	var req request_models.CompleteProgramWorkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	program, err := p.programService.CompleteProgramWorkout(c.Request.Context(), userID, programID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, program, "Program workout completed successfully")
}
