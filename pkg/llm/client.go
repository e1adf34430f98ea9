package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrBackendUnavailable means no usable credential was configured for
	// the selected provider. It surfaces on the first call, not at startup.
	ErrBackendUnavailable = errors.New("AI backend unavailable")
	// ErrBackendError wraps transport or provider failures from a configured
	// backend.
	ErrBackendError = errors.New("AI backend error")
)

// Client generates free-form text from a single prompt. Implementations make
// exactly one round trip per call and do not retry.
type Client interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

const (
	ProviderGroq   = "groq"
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"
)

const (
	defaultTemperature = 0.2
	defaultMaxTokens   = 8192
)

// NewClient builds the client for the given provider. An empty API key is not
// an error here; it yields a client whose calls fail with
// ErrBackendUnavailable so the misconfiguration is reported per request.
func NewClient(provider, apiKey, model string) (Client, error) {
	switch strings.ToLower(provider) {
	case ProviderGroq, "":
		if apiKey == "" {
			return &unconfiguredClient{provider: ProviderGroq}, nil
		}
		return NewGroqClient(apiKey, model), nil
	case ProviderOpenAI:
		if apiKey == "" {
			return &unconfiguredClient{provider: ProviderOpenAI}, nil
		}
		return NewOpenAIClient(apiKey, model), nil
	case ProviderGemini:
		if apiKey == "" {
			return &unconfiguredClient{provider: ProviderGemini}, nil
		}
		return NewGeminiClient(apiKey, model)
	default:
		return nil, fmt.Errorf("unsupported AI provider: %s", provider)
	}
}

type unconfiguredClient struct {
	provider string
}

func (c *unconfiguredClient) GenerateText(_ context.Context, _ string) (string, error) {
	return "", fmt.Errorf("%w: no API key configured for provider %q", ErrBackendUnavailable, c.provider)
}
