// Package vendors wraps the external services the pipeline can delegate to.
package vendors

import (
	"context"
	"errors"
	"sync"

	"github.com/sashabaranov/go-openai"

	"github.com/eventpress/speakerkit/config"
	"github.com/eventpress/speakerkit/log"
)

const (
	generationMaxTokens   = 4000
	generationTemperature = 0.7
)

var (
	openaiClient     *OpenAIClient
	openaiClientOnce sync.Once
)

// OpenAIClient wraps the OpenAI chat-completion client as the pipeline's
// text-generation service.
type OpenAIClient struct {
	client *openai.Client
	model  string
}

// GetOpenAIClient returns the singleton OpenAI client, or nil when no API
// key is configured (the pipeline then runs its deterministic path).
func GetOpenAIClient() *OpenAIClient {
	openaiClientOnce.Do(func() {
		cfg := config.Get()
		if cfg.OpenAIAPIKey == "" {
			log.Warn().Msg("OPENAI_API_KEY not configured, content generation runs deterministically")
			return
		}

		clientConfig := openai.DefaultConfig(cfg.OpenAIAPIKey)
		if cfg.OpenAIBaseURL != "" && cfg.OpenAIBaseURL != "https://api.openai.com/v1" {
			clientConfig.BaseURL = cfg.OpenAIBaseURL
		}

		openaiClient = &OpenAIClient{
			client: openai.NewClientWithConfig(clientConfig),
			model:  cfg.OpenAIModel,
		}

		log.Info().Str("model", cfg.OpenAIModel).Msg("OpenAI initialized")
	})
	return openaiClient
}

// Generate performs one blocking chat completion and returns the raw
// response text. It satisfies the shaper's Generator interface.
func (o *OpenAIClient) Generate(ctx context.Context, prompt string) (string, error) {
	if o == nil {
		return "", errors.New("openai client not configured")
	}

	resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: o.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		MaxTokens:   generationMaxTokens,
		Temperature: generationTemperature,
	})
	if err != nil {
		log.Error().Err(err).Msg("completion failed")
		return "", err
	}

	if len(resp.Choices) == 0 {
		log.Error().Msg("openai response has no choices")
		return "", errors.New("empty completion response")
	}

	content := resp.Choices[0].Message.Content
	log.Debug().
		Str("finishReason", string(resp.Choices[0].FinishReason)).
		Int("promptTokens", resp.Usage.PromptTokens).
		Int("completionTokens", resp.Usage.CompletionTokens).
		Msg("openai response")

	return content, nil
}
