package request_models

import (
	"fmt"
	"strings"

	"fitfusion/internal/models/db_models"
	"fitfusion/pkg/utils"
)

// MaxPromptLength is the ceiling applied to free-text insight prompts.
const MaxPromptLength = 2000

// GenerateInsightRequest carries either a free-text prompt or a quick-reply
// payload, never both empty.
type GenerateInsightRequest struct {
	Prompt      string                `json:"prompt,omitempty"`
	Payload     string                `json:"payload,omitempty"`
	InsightType db_models.InsightType `json:"insightType,omitempty"`
}

func (r *GenerateInsightRequest) Validate() error {
	r.Prompt = strings.TrimSpace(r.Prompt)
	r.Payload = strings.TrimSpace(r.Payload)

	if r.Prompt == "" && r.Payload == "" {
		return utils.ErrPromptRequired
	}
	if len(r.Prompt) > MaxPromptLength {
		return fmt.Errorf("%w: maximum is %d characters", utils.ErrPromptTooLong, MaxPromptLength)
	}
	if r.InsightType == "" {
		r.InsightType = db_models.InsightTypeCustomQuery
	}
	if !r.InsightType.IsValid() {
		return fmt.Errorf("%w: invalid insight type", utils.ErrValidation)
	}
	return nil
}
