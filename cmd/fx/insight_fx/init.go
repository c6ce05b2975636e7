package insight_fx

import (
	"log"
	"os"
	"strings"

	"go.uber.org/fx"
	"gorm.io/gorm"

	"fitfusion/internal/controllers"
	"fitfusion/internal/repositories"
	"fitfusion/internal/services"
	"fitfusion/pkg/utils"
)

var Module = fx.Provide(
	ProvideInsightClient,
	provideInsightRepo,
	provideInsightService,
	provideInsightController)

// InsightConfig holds configuration for the insight client.
type InsightConfig struct {
	Provider string
	APIKey   string
	Model    string
}

// ProvideInsightClient creates a Gemini or OpenAI insight client based on
// environment variables. Gemini is the default provider.
func ProvideInsightClient(lc fx.Lifecycle) (utils.InsightClientInterface, error) {
	config := getInsightConfig()

	log.Printf("Initializing %s insight client with model: %s", config.Provider, config.Model)

	client, err := utils.NewInsightClient(config.Provider, config.APIKey, config.Model)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.StopHook(func() error {
		return client.Close()
	}))
	return client, nil
}

func provideInsightRepo(db *gorm.DB) repositories.InsightRepository {
	return repositories.NewInsightRepository(db)
}

func provideInsightService(
	insightRepo repositories.InsightRepository,
	userRepo repositories.UserRepository,
	client utils.InsightClientInterface,
) services.InsightService {
	return services.NewInsightService(insightRepo, userRepo, client)
}

func provideInsightController(insightService services.InsightService) *controllers.InsightController {
	return controllers.NewInsightController(insightService)
}

// getInsightConfig reads provider configuration from environment variables.
func getInsightConfig() InsightConfig {
	provider := getEnvWithDefault("INSIGHT_PROVIDER", "gemini")

	var apiKey, model string
	switch strings.ToLower(provider) {
	case "openai":
		apiKey = os.Getenv("OPENAI_API_KEY")
		model = getEnvWithDefault("OPENAI_MODEL", "gpt-4o-mini")
		if apiKey == "" {
			log.Fatal("OPENAI_API_KEY is required when using OpenAI provider")
		}
	case "gemini":
		apiKey = os.Getenv("GEMINI_API_KEY")
		model = getEnvWithDefault("GEMINI_MODEL", "gemini-2.5-flash")
		if apiKey == "" {
			log.Fatal("GEMINI_API_KEY is required when using Gemini provider")
		}
	}

	return InsightConfig{
		Provider: provider,
		APIKey:   apiKey,
		Model:    model,
	}
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
