package flows

import (
	"context"
	"fmt"
	"strings"

	"izybotanic/pkg/utils"
)

type GetSeasonalTipInput struct {
	// Season is the current season, e.g. "Verão" or "Inverno".
	Season string `json:"season"`
}

func (in GetSeasonalTipInput) Validate() error {
	if strings.TrimSpace(in.Season) == "" {
		return fmt.Errorf("%w: season is required", utils.ErrInvalidInput)
	}
	return nil
}

type GetSeasonalTipOutput struct {
	Tip string `json:"tip"`
}

func (out GetSeasonalTipOutput) Validate() error {
	if strings.TrimSpace(out.Tip) == "" {
		return fmt.Errorf("%w: missing tip", utils.ErrFlowOutputInvalid)
	}
	return nil
}

const seasonalTipPrompt = `Você é um botânico especialista. Forneça uma dica de jardinagem curta (1-2 frases), acionável e criativa em português do Brasil para a seguinte estação: %s. A dica deve ser geral e útil para proprietários de plantas de interior.

Retorne somente JSON no formato {"tip": "sua dica"}.`

func (f *flowRunner) GetSeasonalTip(ctx context.Context, input GetSeasonalTipInput) (*GetSeasonalTipOutput, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var out GetSeasonalTipOutput
	if err := f.call(ctx, fmt.Sprintf(seasonalTipPrompt, input.Season), nil, &out); err != nil {
		return nil, err
	}
	if err := out.Validate(); err != nil {
		return nil, err
	}

	return &out, nil
}
