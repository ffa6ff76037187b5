package flows

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

// OpenAIModelClient implements ModelClient using OpenAI chat completions.
type OpenAIModelClient struct {
	client *openai.Client
	model  string
}

func NewOpenAIModelClient(apiKey, model string) ModelClient {
	if model == "" {
		model = openai.GPT4oMini
	}
	return &OpenAIModelClient{
		client: openai.NewClient(apiKey),
		model:  model,
	}
}

func (c *OpenAIModelClient) GenerateJSON(ctx context.Context, prompt string, image *ImagePart) (string, error) {
	var message openai.ChatCompletionMessage
	if image != nil {
		dataURI := fmt.Sprintf("data:%s;base64,%s", image.MIMEType, base64.StdEncoding.EncodeToString(image.Data))
		message = openai.ChatCompletionMessage{
			Role: openai.ChatMessageRoleUser,
			MultiContent: []openai.ChatMessagePart{
				{Type: openai.ChatMessagePartTypeText, Text: prompt},
				{
					Type:     openai.ChatMessagePartTypeImageURL,
					ImageURL: &openai.ChatMessageImageURL{URL: dataURI},
				},
			},
		}
	} else {
		message = openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleUser,
			Content: prompt,
		}
	}

	ctxWithTimeout, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	resp, err := c.client.CreateChatCompletion(ctxWithTimeout, openai.ChatCompletionRequest{
		Model:       c.model,
		Temperature: 0.2,
		Messages:    []openai.ChatCompletionMessage{message},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	})
	if err != nil {
		return "", fmt.Errorf("openai: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("openai: no content generated")
	}

	content := resp.Choices[0].Message.Content
	if !json.Valid([]byte(content)) {
		return "", fmt.Errorf("openai: response is not valid json")
	}
	return content, nil
}

func (c *OpenAIModelClient) Close() error {
	return nil
}
