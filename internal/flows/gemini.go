package flows

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiModelClient implements ModelClient using Google's Gemini models.
type GeminiModelClient struct {
	client *genai.Client
	model  string
}

func NewGeminiModelClient(apiKey, model string) (ModelClient, error) {
	if model == "" {
		model = "gemini-1.5-flash"
	}

	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiModelClient{
		client: client,
		model:  model,
	}, nil
}

func (c *GeminiModelClient) GenerateJSON(ctx context.Context, prompt string, image *ImagePart) (string, error) {
	m := c.client.GenerativeModel(c.model)
	// Force JSON-only output so callers can unmarshal directly.
	m.ResponseMIMEType = "application/json"
	m.SetTemperature(0.2)
	m.SetTopP(0.5)
	m.SetTopK(20)

	parts := []genai.Part{genai.Text(prompt)}
	if image != nil {
		// genai wants the bare subtype ("jpeg"), not the full MIME type.
		format := strings.TrimPrefix(image.MIMEType, "image/")
		parts = append(parts, genai.ImageData(format, image.Data))
	}

	ctxWithTimeout, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	resp, err := m.GenerateContent(ctxWithTimeout, parts...)
	if err != nil {
		return "", fmt.Errorf("gemini: %w", err)
	}
	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("gemini: no content generated")
	}

	content := fmt.Sprintf("%v", resp.Candidates[0].Content.Parts[0])
	if !json.Valid([]byte(content)) {
		return "", fmt.Errorf("gemini: response is not valid json")
	}
	return content, nil
}

func (c *GeminiModelClient) Close() error {
	return c.client.Close()
}
