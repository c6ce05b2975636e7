package utils

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

// InsightClientInterface is the contract for structured insight generation.
// Implementations must return raw JSON text conforming to the insight schema.
type InsightClientInterface interface {
	GenerateStructuredInsight(ctx context.Context, prompt string) (string, error)
	ModelName() string
	Close() error
}

// GeminiInsightClient implements InsightClientInterface using Google's
// Gemini models with a server-enforced response schema.
type GeminiInsightClient struct {
	client *genai.Client
	model  string
}

func NewGeminiInsightClient(apiKey, model string) (InsightClientInterface, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("%w: GEMINI_API_KEY is empty", ErrAIConfiguration)
	}
	if model == "" {
		model = "gemini-2.5-flash"
	}

	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAIConfiguration, err)
	}

	return &GeminiInsightClient{
		client: client,
		model:  model,
	}, nil
}

// insightResponseSchema is the exact output shape the model must conform to.
// It matches the persisted AIInsight fields.
var insightResponseSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"title":   {Type: genai.TypeString},
		"summary": {Type: genai.TypeString},
		"recommendations": {
			Type: genai.TypeArray,
			Items: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"category": {Type: genai.TypeString},
					"text":     {Type: genai.TypeString},
					"priority": {Type: genai.TypeString},
				},
			},
		},
		"quickReplies": {
			Type: genai.TypeArray,
			Items: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"text":        {Type: genai.TypeString},
					"payload":     {Type: genai.TypeString},
					"category":    {Type: genai.TypeString},
					"description": {Type: genai.TypeString},
				},
			},
		},
	},
	Required: []string{"title", "summary"},
}

func (c *GeminiInsightClient) GenerateStructuredInsight(ctx context.Context, prompt string) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", ErrPromptRequired
	}

	m := c.client.GenerativeModel(c.model)
	m.ResponseMIMEType = "application/json"
	m.ResponseSchema = insightResponseSchema
	m.SetTemperature(0.4)

	resp, err := m.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", classifyGeminiError(err)
	}

	if resp.PromptFeedback != nil && resp.PromptFeedback.BlockReason != genai.BlockReasonUnspecified {
		return "", fmt.Errorf("%w: %v", ErrAIContentBlocked, resp.PromptFeedback.BlockReason)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		if len(resp.Candidates) > 0 && resp.Candidates[0].FinishReason == genai.FinishReasonSafety {
			return "", fmt.Errorf("%w: candidate finished for safety", ErrAIContentBlocked)
		}
		return "", fmt.Errorf("%w: no content generated", ErrInvalidAIResponse)
	}

	content := fmt.Sprintf("%v", resp.Candidates[0].Content.Parts[0])
	// ResponseMIMEType is application/json, so this should already be clean.
	if !json.Valid([]byte(content)) {
		return "", fmt.Errorf("%w: %.120s", ErrInvalidAIResponse, content)
	}
	return content, nil
}

func classifyGeminiError(err error) error {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		switch apiErr.Code {
		case http.StatusTooManyRequests:
			return fmt.Errorf("%w: %v", ErrAIQuotaExceeded, err)
		case http.StatusUnauthorized, http.StatusForbidden:
			return fmt.Errorf("%w: %v", ErrAIConfiguration, err)
		}
	}
	return fmt.Errorf("gemini: %w", err)
}

func (c *GeminiInsightClient) ModelName() string {
	return c.model
}

func (c *GeminiInsightClient) Close() error {
	return c.client.Close()
}

// NewInsightClient creates a Gemini or OpenAI client based on config.
func NewInsightClient(provider, apiKey, model string) (InsightClientInterface, error) {
	switch strings.ToLower(provider) {
	case "openai":
		return NewOpenAIInsightClient(apiKey, model)
	case "gemini":
		return NewGeminiInsightClient(apiKey, model)
	default:
		return nil, fmt.Errorf("unsupported insight provider: %s", provider)
	}
}
