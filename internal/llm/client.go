package llm

import (
	"context"
	"fmt"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// Client is an abstraction over LLM providers.
type Client interface {
	// GenerateContent generates text content using the specified model tier
	GenerateContent(ctx context.Context, prompt string, tier ModelTier) (string, error)
	// GenerateJSON generates JSON content using the specified model tier
	GenerateJSON(ctx context.Context, prompt string, tier ModelTier) (string, error)
	// Close releases any resources held by the client
	Close() error
}

// NewClient creates an LLM client based on configuration. Keys are rotated
// per request via the supplied Keyring.
func NewClient(ctx context.Context, config *Config, keyring *Keyring) (Client, error) {
	if config == nil {
		config = DefaultConfig()
	}

	switch config.Provider {
	case ProviderGemini:
		return NewGeminiClient(ctx, config, keyring)
	default:
		return NewGeminiClient(ctx, config, keyring)
	}
}

// GeminiClient implements Client for Google Gemini with key rotation: one
// underlying genai client per API key, selected per request.
type GeminiClient struct {
	clients map[string]*genai.Client
	keyring *Keyring
	config  *Config
}

// NewGeminiClient creates a Gemini client pool over the keyring's keys.
func NewGeminiClient(ctx context.Context, config *Config, keyring *Keyring) (*GeminiClient, error) {
	if keyring == nil {
		return nil, fmt.Errorf("keyring is required")
	}

	clients := make(map[string]*genai.Client, len(keyring.keys))
	for _, key := range keyring.keys {
		client, err := genai.NewClient(ctx, option.WithAPIKey(key))
		if err != nil {
			for _, c := range clients {
				_ = c.Close()
			}
			return nil, fmt.Errorf("failed to create Gemini client: %w", err)
		}
		clients[key] = client
	}

	return &GeminiClient{
		clients: clients,
		keyring: keyring,
		config:  config,
	}, nil
}

// GenerateContent generates text content using the specified model tier.
func (c *GeminiClient) GenerateContent(ctx context.Context, prompt string, tier ModelTier) (string, error) {
	resp, err := c.generate(ctx, prompt, tier, "")
	if err != nil {
		return "", err
	}
	return resp, nil
}

// GenerateJSON generates JSON content using the specified model tier, with
// any markdown code fences stripped from the response.
func (c *GeminiClient) GenerateJSON(ctx context.Context, prompt string, tier ModelTier) (string, error) {
	resp, err := c.generate(ctx, prompt, tier, "application/json")
	if err != nil {
		return "", err
	}
	return CleanJSONBlock(resp), nil
}

func (c *GeminiClient) generate(ctx context.Context, prompt string, tier ModelTier, mimeType string) (string, error) {
	modelName := c.config.GetModel(tier)
	if modelName == "" {
		return "", fmt.Errorf("no model configured for tier %s", tier)
	}

	key, err := c.keyring.Acquire()
	if err != nil {
		return "", fmt.Errorf("failed to acquire API key: %w", err)
	}
	defer c.keyring.Release(key)

	model := c.clients[key].GenerativeModel(modelName)
	model.SetTemperature(0.1) // Low temperature for consistent output
	if mimeType != "" {
		model.ResponseMIMEType = mimeType
	}

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	return extractTextFromResponse(resp)
}

// Close releases all underlying provider clients.
func (c *GeminiClient) Close() error {
	var firstErr error
	for _, client := range c.clients {
		if err := client.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// extractTextFromResponse pulls the concatenated text parts out of a Gemini
// response. An empty response is an explicit error, never a default score.
func extractTextFromResponse(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		return "", fmt.Errorf("empty response from model")
	}

	var text string
	for _, part := range resp.Candidates[0].Content.Parts {
		if t, ok := part.(genai.Text); ok {
			text += string(t)
		}
	}

	if text == "" {
		return "", fmt.Errorf("no text content in model response")
	}
	return text, nil
}
