package ai

import (
	"context"
	"fmt"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/jhoicas/Obras-api/internal/application/ports"
)

var _ ports.LLMService = (*OpenAIService)(nil)

// OpenAIService adaptador para OpenAI o cualquier endpoint compatible (OpenRouter, vLLM).
type OpenAIService struct {
	client openai.Client
	model  string
}

// NewOpenAIService baseURL vacío usa la API pública de OpenAI.
func NewOpenAIService(apiKey, baseURL, model string) *OpenAIService {
	opts := []option.RequestOption{option.WithAPIKey(apiKey)}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}
	return &OpenAIService{client: openai.NewClient(opts...), model: model}
}

func (s *OpenAIService) Complete(ctx context.Context, in ports.CompletionRequest) (string, error) {
	system := in.System
	if in.JSON {
		system += jsonOnlyInstruction
	}
	messages := []openai.ChatCompletionMessageParamUnion{}
	if system != "" {
		messages = append(messages, openai.SystemMessage(system))
	}
	messages = append(messages, openai.UserMessage(in.Prompt))

	maxTokens := int64(in.MaxTokens)
	if maxTokens <= 0 {
		maxTokens = 1024
	}
	resp, err := s.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model:     s.model,
		Messages:  messages,
		MaxTokens: openai.Int(maxTokens),
	})
	if err != nil {
		if ctx.Err() != nil {
			return "", fmt.Errorf("AI: timeout o cancelación: %w", ctx.Err())
		}
		return "", fmt.Errorf("AI: OpenAI: %w", err)
	}
	if len(resp.Choices) == 0 || strings.TrimSpace(resp.Choices[0].Message.Content) == "" {
		return "", fmt.Errorf("AI: el modelo devolvió respuesta vacía")
	}
	return resp.Choices[0].Message.Content, nil
}
