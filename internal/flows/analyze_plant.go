package flows

import (
	"context"
	"fmt"
	"strings"

	"izybotanic/pkg/utils"
)

// The three health categories the analysis may report.
const (
	HealthHealthy     = "Saudável"
	HealthMinorIssues = "Problemas menores"
	HealthUnhealthy   = "Não saudável"
)

type AnalyzePlantImageInput struct {
	// PhotoDataURI is "data:<mimetype>;base64,<encoded_data>".
	PhotoDataURI string `json:"photoDataUri"`
}

func (in AnalyzePlantImageInput) Validate() error {
	if strings.TrimSpace(in.PhotoDataURI) == "" {
		return fmt.Errorf("%w: photoDataUri is required", utils.ErrInvalidInput)
	}
	if _, _, err := ParseDataURI(in.PhotoDataURI); err != nil {
		return fmt.Errorf("%w: photoDataUri: %v", utils.ErrInvalidInput, err)
	}
	return nil
}

type AnalyzePlantImageOutput struct {
	Species                   string `json:"species"`
	Health                    string `json:"health"`
	PotentialProblems         string `json:"potentialProblems"`
	DetailedDiagnosis         string `json:"detailedDiagnosis"`
	SoilAnalysis              string `json:"soilAnalysis"`
	WateringFrequency         string `json:"wateringFrequency"`
	SunlightNeeds             string `json:"sunlightNeeds"`
	ExpertTips                string `json:"expertTips"`
	Treatments                string `json:"treatments"`
	FullCarePlan              string `json:"fullCarePlan"`
	PotentialPestsAndDiseases string `json:"potentialPestsAndDiseases"`
}

func (out AnalyzePlantImageOutput) Validate() error {
	required := map[string]string{
		"species":           out.Species,
		"health":            out.Health,
		"wateringFrequency": out.WateringFrequency,
		"sunlightNeeds":     out.SunlightNeeds,
		"fullCarePlan":      out.FullCarePlan,
	}
	for field, value := range required {
		if strings.TrimSpace(value) == "" {
			return fmt.Errorf("%w: missing %s", utils.ErrFlowOutputInvalid, field)
		}
	}

	switch out.Health {
	case HealthHealthy, HealthMinorIssues, HealthUnhealthy:
	default:
		return fmt.Errorf("%w: unknown health category %q", utils.ErrFlowOutputInvalid, out.Health)
	}

	return nil
}

const analyzePlantPrompt = `Você é um botânico de última geração e especialista em agronomia. Analise minuciosamente a imagem de planta fornecida, respondendo em português do Brasil.

Retorne somente JSON com exatamente estas chaves: species, health, potentialProblems, detailedDiagnosis, soilAnalysis, wateringFrequency, sunlightNeeds, expertTips, treatments, fullCarePlan, potentialPestsAndDiseases.

- species: identifique a espécie da planta (nome científico e comum).
- health: use apenas "Saudável", "Problemas menores" ou "Não saudável".
- potentialProblems: descreva problemas visíveis (folhas amareladas, manchas, necrose).
- detailedDiagnosis: diagnóstico detalhado, incluindo deficiências nutricionais e estresse hídrico.
- soilAnalysis: se o solo estiver visível, analise textura e umidade; caso contrário indique "Solo não visível na imagem".
- wateringFrequency: frequência de rega recomendada.
- sunlightNeeds: necessidade de luz solar.
- expertTips: dicas práticas para esta espécie.
- treatments: tratamentos para os problemas identificados; se saudável, "Nenhum tratamento necessário".
- fullCarePlan: plano de cuidados completo (rega, luz, solo, fertilização, poda).
- potentialPestsAndDiseases: pragas e doenças comuns desta espécie.`

func (f *flowRunner) AnalyzePlantImage(ctx context.Context, input AnalyzePlantImageInput) (*AnalyzePlantImageOutput, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	mimeType, data, err := ParseDataURI(input.PhotoDataURI)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrInvalidInput, err)
	}

	var out AnalyzePlantImageOutput
	if err := f.call(ctx, analyzePlantPrompt, &ImagePart{MIMEType: mimeType, Data: data}, &out); err != nil {
		return nil, err
	}
	if err := out.Validate(); err != nil {
		return nil, err
	}

	return &out, nil
}
