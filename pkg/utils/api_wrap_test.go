package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func performErrorRequest(t *testing.T, err error) (int, APIResponse) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.GET("/boom", func(c *gin.Context) {
		HandleServiceError(c, err)
	})

	req := httptest.NewRequest("GET", "/boom", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var resp APIResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return w.Code, resp
}

func TestHandleServiceErrorStatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "validation", err: ErrValidation, wantStatus: http.StatusBadRequest},
		{name: "duplicate email", err: ErrEmailAlreadyExists, wantStatus: http.StatusBadRequest},
		{name: "duplicate readiness", err: ErrReadinessExists, wantStatus: http.StatusBadRequest},
		{name: "unknown quick reply", err: ErrUnknownQuickReply, wantStatus: http.StatusBadRequest},
		{name: "bad credentials", err: ErrInvalidCredentials, wantStatus: http.StatusUnauthorized},
		{name: "missing workout", err: ErrWorkoutNotFound, wantStatus: http.StatusNotFound},
		{name: "missing insight", err: ErrInsightNotFound, wantStatus: http.StatusNotFound},
		{name: "unparseable ai response", err: ErrInvalidAIResponse, wantStatus: http.StatusInternalServerError},
		{name: "ai quota", err: ErrAIQuotaExceeded, wantStatus: http.StatusInternalServerError},
		{name: "unexpected", err: assert.AnError, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, resp := performErrorRequest(t, tt.err)
			assert.Equal(t, tt.wantStatus, status)
			assert.False(t, resp.Success)
			assert.NotEmpty(t, resp.Message)
		})
	}
}

func TestHandleServiceErrorHidesInternalDetail(t *testing.T) {
	_, resp := performErrorRequest(t, assert.AnError)
	assert.Equal(t, "Internal server error", resp.Message)
}

func TestInvalidCredentialsMessageIsGeneric(t *testing.T) {
	_, resp := performErrorRequest(t, ErrInvalidCredentials)
	assert.Equal(t, "email or password incorrect", resp.Message)
}

func TestRespondSuccessEnvelope(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/ok", func(c *gin.Context) {
		c.Set("trace_id", "abc-123")
		RespondSuccess(c, gin.H{"k": "v"}, "all good")
	})

	req := httptest.NewRequest("GET", "/ok", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp APIResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "all good", resp.Message)
	assert.Equal(t, "abc-123", resp.TraceID)
}
