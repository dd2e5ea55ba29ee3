package questionbank

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

// DefaultOpenRouterBaseURL is the OpenRouter API endpoint. OpenRouter is
// OpenAI-compatible, so the regular SDK works against it.
const DefaultOpenRouterBaseURL = "https://openrouter.ai/api/v1"

// DefaultModelKey selects the model used when a request names none.
const DefaultModelKey = "gpt35"

// modelMap translates the short model keys clients send into the
// provider identifiers OpenRouter expects.
var modelMap = map[string]string{
	"gpt35":          "openai/gpt-3.5-turbo",
	"mistralFree":    "mistralai/devstral-2512:free",
	"xiomiFree":      "xiaomi/mimo-v2-flash:free",
	"deepSeekFree":   "tngtech/deepseek-r1t2-chimera:free",
	"metaLiammaFree": "meta-llama/llama-3.3-70b-instruct:free",
	"acreeFree":      "arcee-ai/trinity-mini:free",
	"zAiFree":        "z-ai/glm-4.5-air:free",
}

// ResolveModel maps a client-supplied model key to a provider model id.
// Empty or unknown keys fall back to the default model.
func ResolveModel(key string) string {
	if id, ok := modelMap[key]; ok {
		return id
	}
	return modelMap[DefaultModelKey]
}

// Client is the single seam between the pipeline and a text-generation
// provider. Implementations send one prompt and return the raw
// completion text.
type Client interface {
	Complete(ctx context.Context, model, prompt string) (string, error)
}

// OpenRouterClient implements Client against the OpenRouter chat
// completions API.
type OpenRouterClient struct {
	client *openai.Client
}

// NewOpenRouterClient creates a client for the OpenRouter API. baseURL
// may be empty to use the default endpoint.
func NewOpenRouterClient(apiKey, baseURL string) (*OpenRouterClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("openrouter API key is required")
	}
	if baseURL == "" {
		baseURL = DefaultOpenRouterBaseURL
	}

	config := openai.DefaultConfig(apiKey)
	config.BaseURL = baseURL

	return &OpenRouterClient{client: openai.NewClientWithConfig(config)}, nil
}

func (c *OpenRouterClient) Complete(ctx context.Context, model, prompt string) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", mapAPIError(err)
	}

	if len(resp.Choices) == 0 {
		return "", &ErrInvalidResponse{Err: fmt.Errorf("no choices in completion")}
	}
	content := resp.Choices[0].Message.Content
	if strings.TrimSpace(content) == "" {
		return "", &ErrInvalidResponse{Err: fmt.Errorf("empty completion content")}
	}
	return content, nil
}

func mapAPIError(err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) && apiErr.HTTPStatusCode == http.StatusTooManyRequests {
		return &ErrRateLimit{Err: err}
	}
	return &ErrProviderUnavailable{Err: err}
}
