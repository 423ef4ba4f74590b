package ai

import (
	"context"
	"fmt"
	"time"

	"github.com/sashabaranov/go-openai"

	"github.com/auditx/auditx/internal/ports"
)

const maxTokens = 4096

// OpenAIGenerator implements NarrativeGenerator against the OpenAI
// chat completions API. One Generate call runs two completions in the
// same conversation: the raw analysis first, then the executive report
// grounded on it.
type OpenAIGenerator struct {
	client *openai.Client
	model  string
}

// NewOpenAIGenerator creates a generator bound to one model.
func NewOpenAIGenerator(apiKey, model string) *OpenAIGenerator {
	if model == "" {
		model = openai.GPT4o
	}
	return &OpenAIGenerator{client: openai.NewClient(apiKey), model: model}
}

// Generate produces the analysis and report texts for one audit.
func (g *OpenAIGenerator) Generate(ctx context.Context, req ports.NarrativeRequest) (*ports.NarrativeResult, error) {
	messages := []openai.ChatCompletionMessage{
		{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
		{Role: openai.ChatMessageRoleUser, Content: buildAnalysisPrompt(req)},
	}

	analysis, err := g.complete(ctx, messages)
	if err != nil {
		return nil, fmt.Errorf("analysis completion failed: %w", err)
	}

	// The report request continues the conversation so the model can
	// reference its own analysis.
	messages = append(messages,
		openai.ChatCompletionMessage{Role: openai.ChatMessageRoleAssistant, Content: analysis},
		openai.ChatCompletionMessage{Role: openai.ChatMessageRoleUser, Content: buildReportPrompt(req, time.Now())},
	)

	report, err := g.complete(ctx, messages)
	if err != nil {
		return nil, fmt.Errorf("report completion failed: %w", err)
	}

	return &ports.NarrativeResult{Analysis: analysis, Report: report}, nil
}

func (g *OpenAIGenerator) complete(ctx context.Context, messages []openai.ChatCompletionMessage) (string, error) {
	resp, err := g.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       g.model,
		Messages:    messages,
		MaxTokens:   maxTokens,
		Temperature: 0.7,
	})
	if err != nil {
		return "", fmt.Errorf("failed to create chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no choices in response")
	}
	return resp.Choices[0].Message.Content, nil
}
