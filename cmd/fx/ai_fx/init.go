package ai_fx

import (
	"log"
	"os"
	"strings"

	"go.uber.org/fx"

	"tripgenie/internal/api/controllers"
	"tripgenie/internal/repositories"
	"tripgenie/internal/services"
	"tripgenie/pkg/llm"
)

var Module = fx.Provide(
	ProvideLLMClient,
	ProvideAIService,
	ProvideAIController)

// AIConfig holds configuration for the text generation client
type AIConfig struct {
	Provider string
	APIKey   string
	Model    string
}

// ProvideLLMClient creates a text generation client based on environment
// variables. A missing API key is not fatal here; the client reports it on
// the first generation call instead.
func ProvideLLMClient() (llm.Client, error) {
	config := getAIConfig()

	log.Printf("Initializing %s AI client (model: %s)", config.Provider, config.Model)

	return llm.NewClient(config.Provider, config.APIKey, config.Model)
}

func ProvideAIService(
	llmClient llm.Client,
	mapsService services.MapsServiceInterface,
	embeddings repositories.PlaceEmbeddingRepository,
) services.AIServiceInterface {
	return services.NewAIService(llmClient, mapsService, embeddings)
}

func ProvideAIController(
	aiService services.AIServiceInterface,
) *controllers.AIController {
	return controllers.NewAIController(aiService)
}

// getAIConfig reads configuration from environment variables
func getAIConfig() AIConfig {
	provider := getEnvWithDefault("AI_PROVIDER", llm.ProviderGroq)

	var apiKey, model string
	switch strings.ToLower(provider) {
	case llm.ProviderOpenAI:
		apiKey = os.Getenv("OPENAI_API_KEY")
		model = os.Getenv("OPENAI_MODEL")
	case llm.ProviderGemini:
		apiKey = os.Getenv("GEMINI_API_KEY")
		model = os.Getenv("GEMINI_MODEL")
	default:
		apiKey = os.Getenv("GROQ_API_KEY")
		model = os.Getenv("GROQ_MODEL")
	}

	return AIConfig{
		Provider: provider,
		APIKey:   apiKey,
		Model:    model,
	}
}

// getEnvWithDefault returns environment variable or default value
func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
