package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"fitfusion/pkg/utils"
)

// currentUserID reads the authenticated user id set by the JWT middleware.
// Responds 401 and returns false when the context carries no usable id.
func currentUserID(c *gin.Context) (uuid.UUID, bool) {
	raw, ok := c.Get("user_id")
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "authentication required")
		return uuid.Nil, false
	}
	s, ok := raw.(string)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "authentication required")
		return uuid.Nil, false
	}
	id, err := uuid.Parse(s)
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, "authentication required")
		return uuid.Nil, false
	}
	return id, true
}

// pathUUID parses a uuid path parameter, responding 400 on garbage.
func pathUUID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		utils.HandleServiceError(c, utils.ErrInvalidID)
		return uuid.Nil, false
	}
	return id, true
}

// queryDate accepts either a bare date or a full RFC 3339 timestamp.
func queryDate(c *gin.Context, name string) (*time.Time, bool) {
	raw := c.Query(name)
	if raw == "" {
		return nil, true
	}
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return &t, true
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return &t, true
	}
	utils.RespondError(c, http.StatusBadRequest, "invalid "+name+" date")
	return nil, false
}

// queryInt parses an optional positive integer query parameter.
func queryInt(c *gin.Context, name string, fallback int) (int, bool) {
	raw := c.Query(name)
	if raw == "" {
		return fallback, true
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 1 {
		utils.RespondError(c, http.StatusBadRequest, "invalid "+name+" parameter")
		return 0, false
	}
	return v, true
}
