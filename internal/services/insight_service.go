package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"fitfusion/internal/models/db_models"
	"fitfusion/internal/models/request_models"
	"fitfusion/internal/models/response_models"
	"fitfusion/internal/repositories"
	"fitfusion/pkg/quickreplies"
	"fitfusion/pkg/utils"
)

const (
	defaultInsightPageSize = 10
	maxInsightPageSize     = 50
)

// quickReplyTypes maps each catalog payload to the insight type the result
// is filed under. The instruction itself comes from the catalog entry.
var quickReplyTypes = map[string]db_models.InsightType{
	"GET_WORKOUT_PLAN":   db_models.InsightTypeRecommendation,
	"GET_COMPLETE_DIET":  db_models.InsightTypeNutritionFeedback,
	"VIEW_RECOVERY_TIPS": db_models.InsightTypeRecommendation,
	"GET_FITNESS_TIPS":   db_models.InsightTypeRecommendation,
	"GET_FULL_OVERVIEW":  db_models.InsightTypePerformanceAnalysis,
}

type InsightService interface {
	GenerateInsight(ctx context.Context, userID uuid.UUID, request request_models.GenerateInsightRequest) (*db_models.AIInsight, error)
	ListInsights(ctx context.Context, userID uuid.UUID, page, limit int) (*response_models.InsightListResponse, error)
	GetInsight(ctx context.Context, userID, insightID uuid.UUID) (*db_models.AIInsight, error)
	MarkInsightRead(ctx context.Context, userID, insightID uuid.UUID) (*db_models.AIInsight, error)
	QuickReplies(category string) []quickreplies.QuickReply
}

func NewInsightService(
	insightRepo repositories.InsightRepository,
	userRepo repositories.UserRepository,
	client utils.InsightClientInterface,
) InsightService {
	return &insightService{
		insightRepo: insightRepo,
		userRepo:    userRepo,
		client:      client,
	}
}

type insightService struct {
	insightRepo repositories.InsightRepository
	userRepo    repositories.UserRepository
	client      utils.InsightClientInterface
}

// insightPayload is the shape the model is asked to produce.
type insightPayload struct {
	Title           string                            `json:"title"`
	Summary         string                            `json:"summary"`
	Recommendations []db_models.InsightRecommendation `json:"recommendations"`
	QuickReplies    []db_models.InsightQuickReply     `json:"quickReplies"`
}

func (s *insightService) GenerateInsight(ctx context.Context, userID uuid.UUID, request request_models.GenerateInsightRequest) (*db_models.AIInsight, error) {
	if err := request.Validate(); err != nil {
		return nil, err
	}

	instruction := request.Prompt
	insightType := request.InsightType
	if request.Payload != "" {
		entry, ok := quickreplies.ByPayload(request.Payload)
		if !ok {
			return nil, fmt.Errorf("%w: expected one of %s",
				utils.ErrUnknownQuickReply, strings.Join(quickreplies.AllowedPayloads(), ", "))
		}
		instruction = quickReplyInstruction(entry)
		if request.InsightType == db_models.InsightTypeCustomQuery {
			insightType = quickReplyTypes[entry.Payload]
		}
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, utils.ErrUserNotFound
	}

	prompt := buildInsightPrompt(instruction, user)
	raw, err := s.client.GenerateStructuredInsight(ctx, prompt)
	if err != nil {
		return nil, err
	}

	var payload insightPayload
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrInvalidAIResponse, err)
	}
	if strings.TrimSpace(payload.Title) == "" || strings.TrimSpace(payload.Summary) == "" {
		return nil, fmt.Errorf("%w: missing title or summary", utils.ErrInvalidAIResponse)
	}

	insight := &db_models.AIInsight{
		UserID:          userID,
		Date:            time.Now(),
		InsightType:     insightType,
		Title:           payload.Title,
		Summary:         payload.Summary,
		Recommendations: payload.Recommendations,
		QuickReplies:    payload.QuickReplies,
		Details:         datatypes.JSON(raw),
		AIModel:         s.client.ModelName(),
	}
	if err := s.insightRepo.Insert(ctx, insight); err != nil {
		return nil, err
	}
	return insight, nil
}

// quickReplyInstruction turns a catalog entry into the model instruction, so
// the catalog stays the single source of truth for quick actions.
func quickReplyInstruction(entry quickreplies.QuickReply) string {
	return fmt.Sprintf("The user tapped the quick action %q. %s.", entry.Text, entry.Description)
}

// buildInsightPrompt prefixes the user's request with output rules and a
// profile snapshot. The email and credentials never enter the prompt.
func buildInsightPrompt(instruction string, user *db_models.User) string {
	var b strings.Builder

	b.WriteString("You are a fitness coach for the FitFusion app. ")
	b.WriteString("Answer the user's request using their profile below. ")
	b.WriteString("Respond with a JSON object containing: title (short string), summary (detailed answer), ")
	b.WriteString("recommendations (array of {category, text, priority} where category is workout, nutrition or recovery ")
	b.WriteString("and priority is low, medium or high), and quickReplies (array of {text, payload, category, description} ")
	b.WriteString("suggesting sensible follow-up questions).\n\n")

	b.WriteString("User profile:\n")
	fmt.Fprintf(&b, "- Name: %s\n", user.Name)
	if user.Age > 0 {
		fmt.Fprintf(&b, "- Age: %d\n", user.Age)
	}
	if user.Gender != "" {
		fmt.Fprintf(&b, "- Gender: %s\n", user.Gender)
	}
	if user.Height.Value > 0 {
		fmt.Fprintf(&b, "- Height: %.1f %s\n", user.Height.Value, user.Height.Unit)
	}
	if user.CurrentWeight.Value > 0 {
		fmt.Fprintf(&b, "- Current weight: %.1f %s\n", user.CurrentWeight.Value, user.CurrentWeight.Unit)
	}
	if user.TargetWeight.Value > 0 {
		fmt.Fprintf(&b, "- Target weight: %.1f %s\n", user.TargetWeight.Value, user.TargetWeight.Unit)
	}
	fmt.Fprintf(&b, "- Fitness goal: %s\n", user.FitnessGoal)
	fmt.Fprintf(&b, "- Activity level: %s\n", user.ActivityLevel)
	fmt.Fprintf(&b, "- Dietary preference: %s\n", user.DietaryPreference)
	if len(user.AvailableEquipment) > 0 {
		fmt.Fprintf(&b, "- Available equipment: %s\n", strings.Join(user.AvailableEquipment, ", "))
	}
	if user.CurrentStreak > 0 {
		fmt.Fprintf(&b, "- Current streak: %d days\n", user.CurrentStreak)
	}

	b.WriteString("\nRequest: ")
	b.WriteString(instruction)
	return b.String()
}

func (s *insightService) ListInsights(ctx context.Context, userID uuid.UUID, page, limit int) (*response_models.InsightListResponse, error) {
	if page == 0 {
		page = 1
	}
	if limit == 0 {
		limit = defaultInsightPageSize
	}
	if page < 1 {
		return nil, utils.ErrInvalidPage
	}
	if limit < 1 || limit > maxInsightPageSize {
		return nil, utils.ErrInvalidPageSize
	}

	insights, total, err := s.insightRepo.ListByUser(ctx, userID, page, limit)
	if err != nil {
		return nil, err
	}
	if insights == nil {
		insights = []db_models.AIInsight{}
	}

	return &response_models.InsightListResponse{
		Insights:   insights,
		Pagination: response_models.NewPagination(page, limit, total),
	}, nil
}

func (s *insightService) GetInsight(ctx context.Context, userID, insightID uuid.UUID) (*db_models.AIInsight, error) {
	insight, err := s.insightRepo.FindByID(ctx, userID, insightID)
	if err != nil {
		return nil, err
	}
	if insight == nil {
		return nil, utils.ErrInsightNotFound
	}
	return insight, nil
}

func (s *insightService) MarkInsightRead(ctx context.Context, userID, insightID uuid.UUID) (*db_models.AIInsight, error) {
	insight, err := s.GetInsight(ctx, userID, insightID)
	if err != nil {
		return nil, err
	}
	if insight.IsRead {
		return insight, nil
	}

	insight.IsRead = true
	if err := s.insightRepo.Update(ctx, insight); err != nil {
		return nil, err
	}
	return insight, nil
}

func (s *insightService) QuickReplies(category string) []quickreplies.QuickReply {
	if category != "" {
		return quickreplies.ByCategory(category)
	}
	return quickreplies.All()
}
