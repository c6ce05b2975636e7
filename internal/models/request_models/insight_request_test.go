package request_models

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"fitfusion/internal/models/db_models"
	"fitfusion/pkg/utils"
)

func TestGenerateInsightRequestValidate(t *testing.T) {
	tests := []struct {
		name    string
		req     GenerateInsightRequest
		wantErr error
	}{
		{
			name:    "prompt only",
			req:     GenerateInsightRequest{Prompt: "how do I improve my squat?"},
			wantErr: nil,
		},
		{
			name:    "payload only",
			req:     GenerateInsightRequest{Payload: "GET_WORKOUT_PLAN"},
			wantErr: nil,
		},
		{
			name:    "both empty",
			req:     GenerateInsightRequest{},
			wantErr: utils.ErrPromptRequired,
		},
		{
			name:    "whitespace prompt",
			req:     GenerateInsightRequest{Prompt: "   \n\t  "},
			wantErr: utils.ErrPromptRequired,
		},
		{
			name:    "prompt at limit",
			req:     GenerateInsightRequest{Prompt: strings.Repeat("a", MaxPromptLength)},
			wantErr: nil,
		},
		{
			name:    "prompt over limit",
			req:     GenerateInsightRequest{Prompt: strings.Repeat("a", MaxPromptLength+1)},
			wantErr: utils.ErrPromptTooLong,
		},
		{
			name:    "bad insight type",
			req:     GenerateInsightRequest{Prompt: "hi", InsightType: "horoscope"},
			wantErr: utils.ErrValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestGenerateInsightRequestDefaultsType(t *testing.T) {
	req := GenerateInsightRequest{Prompt: "  what should I eat today?  "}
	assert.NoError(t, req.Validate())

	assert.Equal(t, db_models.InsightTypeCustomQuery, req.InsightType)
	assert.Equal(t, "what should I eat today?", req.Prompt)
}
