package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"fitfusion/internal/models/db_models"
	"fitfusion/internal/models/request_models"
	"fitfusion/pkg/utils"
)

type mockUserRepository struct {
	mock.Mock
}

func (m *mockUserRepository) Insert(ctx context.Context, user *db_models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *mockUserRepository) FindByEmail(ctx context.Context, email string) (*db_models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*db_models.User), args.Error(1)
}

func (m *mockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*db_models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*db_models.User), args.Error(1)
}

func (m *mockUserRepository) ListAll(ctx context.Context) ([]db_models.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]db_models.User), args.Error(1)
}

func (m *mockUserRepository) Update(ctx context.Context, user *db_models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *mockUserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type mockInsightRepository struct {
	mock.Mock
}

func (m *mockInsightRepository) Insert(ctx context.Context, insight *db_models.AIInsight) error {
	args := m.Called(ctx, insight)
	return args.Error(0)
}

func (m *mockInsightRepository) FindByID(ctx context.Context, userID, insightID uuid.UUID) (*db_models.AIInsight, error) {
	args := m.Called(ctx, userID, insightID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*db_models.AIInsight), args.Error(1)
}

func (m *mockInsightRepository) ListByUser(ctx context.Context, userID uuid.UUID, page, limit int) ([]db_models.AIInsight, int64, error) {
	args := m.Called(ctx, userID, page, limit)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]db_models.AIInsight), args.Get(1).(int64), args.Error(2)
}

func (m *mockInsightRepository) Update(ctx context.Context, insight *db_models.AIInsight) error {
	args := m.Called(ctx, insight)
	return args.Error(0)
}

// fakeInsightClient records the prompt it was asked to answer.
type fakeInsightClient struct {
	response string
	err      error
	prompt   string
	calls    int
}

func (f *fakeInsightClient) GenerateStructuredInsight(ctx context.Context, prompt string) (string, error) {
	f.calls++
	f.prompt = prompt
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}

func (f *fakeInsightClient) ModelName() string { return "fake-model" }

func (f *fakeInsightClient) Close() error { return nil }

func testUser() *db_models.User {
	return &db_models.User{
		Name:              "Jordan",
		Email:             "jordan@example.com",
		PasswordHash:      "$2a$12$secret",
		Age:               28,
		FitnessGoal:       db_models.GoalMuscleGain,
		ActivityLevel:     db_models.ActivityModeratelyActive,
		DietaryPreference: db_models.DietHighProtein,
	}
}

const validInsightJSON = `{
	"title": "Push harder on compound lifts",
	"summary": "Your volume is fine but intensity is low.",
	"recommendations": [
		{"category": "workout", "text": "Add a top set at RPE 8", "priority": "high"}
	],
	"quickReplies": [
		{"text": "Show me a plan", "payload": "GET_WORKOUT_PLAN"}
	]
}`

func TestGenerateInsightWithPrompt(t *testing.T) {
	userID := uuid.New()
	user := testUser()
	userRepo := new(mockUserRepository)
	insightRepo := new(mockInsightRepository)
	client := &fakeInsightClient{response: validInsightJSON}

	userRepo.On("FindByID", mock.Anything, userID).Return(user, nil)
	insightRepo.On("Insert", mock.Anything, mock.AnythingOfType("*db_models.AIInsight")).Return(nil)

	svc := NewInsightService(insightRepo, userRepo, client)
	insight, err := svc.GenerateInsight(context.Background(), userID, request_models.GenerateInsightRequest{
		Prompt: "how do I break my bench plateau?",
	})

	assert.NoError(t, err)
	assert.Equal(t, "Push harder on compound lifts", insight.Title)
	assert.Equal(t, db_models.InsightTypeCustomQuery, insight.InsightType)
	assert.Equal(t, "fake-model", insight.AIModel)
	assert.Len(t, insight.Recommendations, 1)
	assert.Equal(t, db_models.PriorityHigh, insight.Recommendations[0].Priority)
	assert.JSONEq(t, validInsightJSON, string(insight.Details))

	assert.Contains(t, client.prompt, "how do I break my bench plateau?")
	assert.Contains(t, client.prompt, "muscle-gain")
	assert.NotContains(t, client.prompt, "jordan@example.com")
	assert.NotContains(t, client.prompt, "$2a$12$secret")

	insightRepo.AssertExpectations(t)
}

func TestGenerateInsightWithQuickReply(t *testing.T) {
	userID := uuid.New()
	userRepo := new(mockUserRepository)
	insightRepo := new(mockInsightRepository)
	client := &fakeInsightClient{response: validInsightJSON}

	userRepo.On("FindByID", mock.Anything, userID).Return(testUser(), nil)
	insightRepo.On("Insert", mock.Anything, mock.AnythingOfType("*db_models.AIInsight")).Return(nil)

	svc := NewInsightService(insightRepo, userRepo, client)
	insight, err := svc.GenerateInsight(context.Background(), userID, request_models.GenerateInsightRequest{
		Payload: "GET_COMPLETE_DIET",
	})

	assert.NoError(t, err)
	assert.Equal(t, db_models.InsightTypeNutritionFeedback, insight.InsightType)
	assert.Contains(t, client.prompt, "Get My Diet Plan")
	assert.Contains(t, client.prompt, "Create a complete nutrition plan tailored to your needs")
}

func TestGenerateInsightUnknownPayload(t *testing.T) {
	userRepo := new(mockUserRepository)
	insightRepo := new(mockInsightRepository)
	client := &fakeInsightClient{response: validInsightJSON}

	svc := NewInsightService(insightRepo, userRepo, client)
	_, err := svc.GenerateInsight(context.Background(), uuid.New(), request_models.GenerateInsightRequest{
		Payload: "LAUNCH_MISSILES",
	})

	assert.ErrorIs(t, err, utils.ErrUnknownQuickReply)
	assert.Contains(t, err.Error(), "GET_WORKOUT_PLAN")
	assert.Zero(t, client.calls)
	insightRepo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
}

func TestGenerateInsightUserMissing(t *testing.T) {
	userID := uuid.New()
	userRepo := new(mockUserRepository)
	insightRepo := new(mockInsightRepository)
	client := &fakeInsightClient{response: validInsightJSON}

	userRepo.On("FindByID", mock.Anything, userID).Return(nil, nil)

	svc := NewInsightService(insightRepo, userRepo, client)
	_, err := svc.GenerateInsight(context.Background(), userID, request_models.GenerateInsightRequest{
		Prompt: "hello",
	})

	assert.ErrorIs(t, err, utils.ErrUserNotFound)
	assert.Zero(t, client.calls)
}

func TestGenerateInsightUnparseableResponse(t *testing.T) {
	userID := uuid.New()
	userRepo := new(mockUserRepository)
	insightRepo := new(mockInsightRepository)
	client := &fakeInsightClient{response: "I am sorry, I cannot answer that in JSON"}

	userRepo.On("FindByID", mock.Anything, userID).Return(testUser(), nil)

	svc := NewInsightService(insightRepo, userRepo, client)
	_, err := svc.GenerateInsight(context.Background(), userID, request_models.GenerateInsightRequest{
		Prompt: "hello",
	})

	assert.ErrorIs(t, err, utils.ErrInvalidAIResponse)
	insightRepo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
}

func TestGenerateInsightMissingTitle(t *testing.T) {
	userID := uuid.New()
	userRepo := new(mockUserRepository)
	insightRepo := new(mockInsightRepository)
	client := &fakeInsightClient{response: `{"title": "", "summary": "something"}`}

	userRepo.On("FindByID", mock.Anything, userID).Return(testUser(), nil)

	svc := NewInsightService(insightRepo, userRepo, client)
	_, err := svc.GenerateInsight(context.Background(), userID, request_models.GenerateInsightRequest{
		Prompt: "hello",
	})

	assert.ErrorIs(t, err, utils.ErrInvalidAIResponse)
	insightRepo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
}

func TestMarkInsightReadSkipsRedundantUpdate(t *testing.T) {
	userID := uuid.New()
	insightID := uuid.New()
	userRepo := new(mockUserRepository)
	insightRepo := new(mockInsightRepository)

	already := &db_models.AIInsight{IsRead: true}
	insightRepo.On("FindByID", mock.Anything, userID, insightID).Return(already, nil)

	svc := NewInsightService(insightRepo, userRepo, &fakeInsightClient{})
	insight, err := svc.MarkInsightRead(context.Background(), userID, insightID)

	assert.NoError(t, err)
	assert.True(t, insight.IsRead)
	insightRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestListInsightsValidatesPaging(t *testing.T) {
	svc := NewInsightService(new(mockInsightRepository), new(mockUserRepository), &fakeInsightClient{})

	_, err := svc.ListInsights(context.Background(), uuid.New(), -1, 10)
	assert.ErrorIs(t, err, utils.ErrInvalidPage)

	_, err = svc.ListInsights(context.Background(), uuid.New(), 1, 500)
	assert.ErrorIs(t, err, utils.ErrInvalidPageSize)
}

func TestQuickRepliesCatalogPassthrough(t *testing.T) {
	svc := NewInsightService(new(mockInsightRepository), new(mockUserRepository), &fakeInsightClient{})

	assert.Len(t, svc.QuickReplies(""), 5)
	assert.Len(t, svc.QuickReplies("workout"), 1)
	assert.Empty(t, svc.QuickReplies("astrology"))
}
