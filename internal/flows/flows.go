package flows

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"

	"izybotanic/pkg/utils"
)

// Flows are the four stateless adapters to the generative model. Each one
// validates its typed input, renders a fixed prompt, calls the model in JSON
// mode and validates the typed output. No retries, no caching, no side
// effects on application state.
type Flows interface {
	AnalyzePlantImage(ctx context.Context, input AnalyzePlantImageInput) (*AnalyzePlantImageOutput, error)
	ExpertChat(ctx context.Context, input ExpertChatInput) (*ExpertChatOutput, error)
	SuggestNewPlants(ctx context.Context, input SuggestNewPlantsInput) (*SuggestNewPlantsOutput, error)
	GetSeasonalTip(ctx context.Context, input GetSeasonalTipInput) (*GetSeasonalTipOutput, error)
}

type flowRunner struct {
	client ModelClient
}

func NewFlows(client ModelClient) Flows {
	return &flowRunner{
		client: client,
	}
}

func (f *flowRunner) call(ctx context.Context, prompt string, image *ImagePart, out interface{}) error {
	content, err := f.client.GenerateJSON(ctx, prompt, image)
	if err != nil {
		return fmt.Errorf("%w: %v", utils.ErrFlowFailed, err)
	}
	if err := json.Unmarshal([]byte(content), out); err != nil {
		return fmt.Errorf("%w: %v", utils.ErrFlowOutputInvalid, err)
	}
	return nil
}

// ParseDataURI splits a "data:<mime>;base64,<payload>" URI into MIME type and
// decoded bytes.
func ParseDataURI(uri string) (string, []byte, error) {
	if !strings.HasPrefix(uri, "data:") {
		return "", nil, fmt.Errorf("not a data URI")
	}
	rest := strings.TrimPrefix(uri, "data:")

	sep := strings.Index(rest, ";base64,")
	if sep < 0 {
		return "", nil, fmt.Errorf("data URI is not base64 encoded")
	}

	mimeType := rest[:sep]
	if mimeType == "" {
		return "", nil, fmt.Errorf("data URI has no MIME type")
	}

	data, err := base64.StdEncoding.DecodeString(rest[sep+len(";base64,"):])
	if err != nil {
		return "", nil, fmt.Errorf("invalid base64 payload: %w", err)
	}

	return mimeType, data, nil
}
