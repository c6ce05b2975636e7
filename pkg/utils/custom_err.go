package utils

import "errors"

var (
	ErrValidation         = errors.New("validation error")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrWorkoutNotFound    = errors.New("workout not found")
	ErrExerciseNotFound   = errors.New("exercise not found")
	ErrProgramNotFound    = errors.New("program not found")
	ErrMealNotFound       = errors.New("meal not found")
	ErrProgressNotFound   = errors.New("progress entry not found")
	ErrReadinessNotFound  = errors.New("readiness score not found")
	ErrInsightNotFound    = errors.New("insight not found")
	ErrReadinessExists    = errors.New("readiness score already exists for this date")
	ErrInvalidID          = errors.New("invalid id")
	ErrInvalidPage        = errors.New("invalid page parameter")
	ErrInvalidPageSize    = errors.New("invalid page size parameter")
	ErrPromptRequired     = errors.New("prompt or payload is required")
	ErrPromptTooLong      = errors.New("prompt exceeds maximum length")
	ErrUnknownQuickReply  = errors.New("unknown quick reply payload")
	ErrInvalidAIResponse  = errors.New("ai returned an unparseable response")
	ErrAIConfiguration    = errors.New("ai provider is not configured")
	ErrAIQuotaExceeded    = errors.New("ai provider quota exceeded")
	ErrAIContentBlocked   = errors.New("ai provider blocked the request content")
	ErrDatabaseError      = errors.New("database error")
)
