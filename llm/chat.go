package llm

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

// maxCompletionTokens bounds every completion. Very long alert lists may
// truncate the tail of a structured response; callers accept that.
const maxCompletionTokens = 300

// Chat issues a single system+user chat completion and returns the text.
type Chat interface {
	Complete(ctx context.Context, system, user string) (string, error)
}

// OpenAIChat talks to an Azure OpenAI deployment.
type OpenAIChat struct {
	client     *openai.Client
	deployment string
}

// NewOpenAIChat creates a chat client for the given Azure OpenAI endpoint,
// API key and deployment name.
func NewOpenAIChat(endpoint, apiKey, deployment string) *OpenAIChat {
	cfg := openai.DefaultAzureConfig(apiKey, endpoint)
	return &OpenAIChat{
		client:     openai.NewClientWithConfig(cfg),
		deployment: deployment,
	}
}

// Complete sends one system+user exchange and returns the first choice.
func (c *OpenAIChat) Complete(ctx context.Context, system, user string) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.deployment,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: user},
		},
		MaxTokens: maxCompletionTokens,
	})
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("chat completion: empty response from deployment %s", c.deployment)
	}
	return resp.Choices[0].Message.Content, nil
}
