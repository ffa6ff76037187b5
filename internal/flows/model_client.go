package flows

import (
	"context"
	"fmt"
	"strings"
)

// ImagePart is an inline image payload sent alongside a prompt.
type ImagePart struct {
	MIMEType string
	Data     []byte
}

// ModelClient abstracts one structured-output call to a generative model:
// prompt in, JSON text out. Implementations must return valid JSON or an
// error, nothing in between.
type ModelClient interface {
	GenerateJSON(ctx context.Context, prompt string, image *ImagePart) (string, error)
	Close() error
}

// NewModelClient creates either an OpenAI or Gemini client based on config.
func NewModelClient(provider, apiKey, model string) (ModelClient, error) {
	switch strings.ToLower(provider) {
	case "openai":
		return NewOpenAIModelClient(apiKey, model), nil
	case "gemini", "":
		return NewGeminiModelClient(apiKey, model)
	default:
		return nil, fmt.Errorf("unsupported provider: %s", provider)
	}
}
