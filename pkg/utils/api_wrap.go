package utils

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// APIResponse is the envelope shared by every endpoint.
type APIResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data"`
}

func traceID(c *gin.Context) string {
	if v, ok := c.Get("trace_id"); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, APIResponse{
		Success: true,
		Message: message,
		TraceID: traceID(c),
		Data:    data,
	})
}

func RespondCreated(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusCreated, APIResponse{
		Success: true,
		Message: message,
		TraceID: traceID(c),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Success: false,
		Message: message,
		TraceID: traceID(c),
	})
}

// HandleServiceError translates service-layer sentinel errors into the
// response envelope. Unrecognized errors are logged and reported as 500.
func HandleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrValidation),
		errors.Is(err, ErrInvalidID),
		errors.Is(err, ErrInvalidPage),
		errors.Is(err, ErrInvalidPageSize),
		errors.Is(err, ErrEmailAlreadyExists),
		errors.Is(err, ErrReadinessExists),
		errors.Is(err, ErrPromptRequired),
		errors.Is(err, ErrPromptTooLong),
		errors.Is(err, ErrUnknownQuickReply):
		RespondError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrInvalidCredentials):
		RespondError(c, http.StatusUnauthorized, "email or password incorrect")
	case errors.Is(err, ErrUserNotFound),
		errors.Is(err, ErrWorkoutNotFound),
		errors.Is(err, ErrExerciseNotFound),
		errors.Is(err, ErrProgramNotFound),
		errors.Is(err, ErrMealNotFound),
		errors.Is(err, ErrProgressNotFound),
		errors.Is(err, ErrReadinessNotFound),
		errors.Is(err, ErrInsightNotFound):
		RespondError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, ErrInvalidAIResponse):
		log.Printf("AI response error: %v", err)
		RespondError(c, http.StatusInternalServerError, "The AI returned a response we could not understand")
	case errors.Is(err, ErrAIConfiguration):
		log.Printf("AI configuration error: %v", err)
		RespondError(c, http.StatusInternalServerError, "The AI provider is not configured correctly")
	case errors.Is(err, ErrAIQuotaExceeded):
		log.Printf("AI quota error: %v", err)
		RespondError(c, http.StatusInternalServerError, "The AI provider quota has been exceeded, try again later")
	case errors.Is(err, ErrAIContentBlocked):
		log.Printf("AI safety error: %v", err)
		RespondError(c, http.StatusInternalServerError, "The AI provider blocked this request")
	case errors.Is(err, ErrDatabaseError):
		log.Printf("Database error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	default:
		log.Printf("Unknown error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
