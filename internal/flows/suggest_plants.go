package flows

import (
	"context"
	"fmt"
	"strings"

	"izybotanic/pkg/utils"
)

type SuggestNewPlantsInput struct {
	// UserCollection describes the plants the user already keeps.
	UserCollection string `json:"userCollection"`
	// UserPreferences covers light conditions, care level and the like.
	UserPreferences string `json:"userPreferences"`
}

func (in SuggestNewPlantsInput) Validate() error {
	if strings.TrimSpace(in.UserCollection) == "" {
		return fmt.Errorf("%w: userCollection is required", utils.ErrInvalidInput)
	}
	if strings.TrimSpace(in.UserPreferences) == "" {
		return fmt.Errorf("%w: userPreferences is required", utils.ErrInvalidInput)
	}
	return nil
}

type SuggestNewPlantsOutput struct {
	// SuggestedPlants holds 3 to 5 suggestions, one per line.
	SuggestedPlants string `json:"suggestedPlants"`
}

func (out SuggestNewPlantsOutput) Validate() error {
	if strings.TrimSpace(out.SuggestedPlants) == "" {
		return fmt.Errorf("%w: missing suggestedPlants", utils.ErrFlowOutputInvalid)
	}
	return nil
}

const suggestPlantsPrompt = `Você é um especialista em jardinagem. Um usuário tem a seguinte coleção de plantas e preferências. Responda em português do Brasil.

Coleção: %s
Preferências: %s

Sugira de 3 a 5 plantas novas que o usuário possa gostar. Para cada planta, forneça o nome e uma descrição muito breve (1-2 frases). Foque em plantas que prosperam em condições semelhantes e complementam a coleção existente.

Retorne somente JSON no formato {"suggestedPlants": "uma única string com cada sugestão em uma nova linha"}.`

func (f *flowRunner) SuggestNewPlants(ctx context.Context, input SuggestNewPlantsInput) (*SuggestNewPlantsOutput, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	prompt := fmt.Sprintf(suggestPlantsPrompt, input.UserCollection, input.UserPreferences)

	var out SuggestNewPlantsOutput
	if err := f.call(ctx, prompt, nil, &out); err != nil {
		return nil, err
	}
	if err := out.Validate(); err != nil {
		return nil, err
	}

	return &out, nil
}
