package gpt

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

// Client invokes the OpenAI chat API. It satisfies plan.ModelInvoker: one
// message per session, no conversational state kept between calls.
type Client struct {
	client *openai.Client
	model  string
}

func NewClient(apiKey string) *Client {
	return &Client{
		client: openai.NewClient(apiKey),
		model:  openai.GPT4,
	}
}

func (c *Client) WithModel(model string) *Client {
	c.model = model
	return c
}

// Send performs a single chat completion. The session id is forwarded as
// the request user field so provider-side logs can correlate calls.
func (c *Client) Send(ctx context.Context, sessionID, systemPrompt, userPrompt string) (string, error) {
	req := openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: systemPrompt,
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: userPrompt,
			},
		},
		MaxTokens:   2500,
		Temperature: 0.7,
		User:        sessionID,
	}

	resp, err := c.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("chat completion failed: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no response from GPT API")
	}

	return resp.Choices[0].Message.Content, nil
}
