package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fitfusion/internal/models/request_models"
	"fitfusion/internal/services"
	"fitfusion/pkg/utils"
)

type UserController struct {
	userService services.UserService
}

func NewUserController(userService services.UserService) *UserController {
	return &UserController{
		userService: userService,
	}
}

// GetAllUsers godoc
// @Summary Get all users
// @Description Fetch a list of all user profiles
// @Tags Users
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security CookieAuth
// @Router /users [get]
func (u *UserController) GetAllUsers(c *gin.Context) {
	users, err := u.userService.ListUsers(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, users, "Users fetched successfully")
}

// GetUserInfo godoc
// @Summary Get the current user's profile
// @Tags Users
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security CookieAuth
// @Router /users/getuserinfo [get]
func (u *UserController) GetUserInfo(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	user, err := u.userService.GetUserInfo(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, user, "User fetched successfully")
}

// UpdateStats godoc
// @Summary Update the current user's physical stats
// @Tags Users
// @Accept json
// @Produce json
// @Param id path string true "User id, must match the caller"
// @Param request body request_models.UpdateStatsRequest true "Stats payload"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security CookieAuth
// @Router /users/updatestats/{id} [put]
func (u *UserController) UpdateStats(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	targetID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	var req request_models.UpdateStatsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	user, err := u.userService.UpdateStats(c.Request.Context(), userID, targetID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, user, "Stats updated successfully")
}

// DeleteUser godoc
// @Summary Delete the current user's account
// @Tags Users
// @Produce json
// @Param id path string true "User id, must match the caller"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security CookieAuth
// @Router /users/delete/{id} [delete]
func (u *UserController) DeleteUser(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	targetID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	if err := u.userService.DeleteUser(c.Request.Context(), userID, targetID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.ClearTokenCookie(c)
	utils.RespondSuccess(c, nil, "User deleted successfully")
}
