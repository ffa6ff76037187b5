package services

import (
	"context"
	"time"

	"izybotanic/internal/flows"
	"izybotanic/internal/models/response_models"
	"izybotanic/internal/repositories"
)

type DiscoverServiceInterface interface {
	Suggestions(ctx context.Context, userID, preferences string) (*response_models.SuggestionsResponse, error)
	SeasonalTip(ctx context.Context, season string) (*response_models.SeasonalTipResponse, error)
}

type DiscoverService struct {
	documentRepo repositories.UserDocumentRepository
	flows        flows.Flows
}

func NewDiscoverService(documentRepo repositories.UserDocumentRepository, aiFlows flows.Flows) DiscoverServiceInterface {
	return &DiscoverService{
		documentRepo: documentRepo,
		flows:        aiFlows,
	}
}

func (d *DiscoverService) Suggestions(ctx context.Context, userID, preferences string) (*response_models.SuggestionsResponse, error) {
	g := GardenService{documentRepo: d.documentRepo}
	row, err := g.loadDocumentRow(ctx, userID)
	if err != nil {
		return nil, err
	}

	out, err := d.flows.SuggestNewPlants(ctx, flows.SuggestNewPlantsInput{
		UserCollection:  gardenSummary(row.Document.Plants),
		UserPreferences: preferences,
	})
	if err != nil {
		return nil, err
	}

	return &response_models.SuggestionsResponse{SuggestedPlants: out.SuggestedPlants}, nil
}

func (d *DiscoverService) SeasonalTip(ctx context.Context, season string) (*response_models.SeasonalTipResponse, error) {
	if season == "" {
		season = currentSeason(time.Now())
	}

	out, err := d.flows.GetSeasonalTip(ctx, flows.GetSeasonalTipInput{Season: season})
	if err != nil {
		return nil, err
	}

	return &response_models.SeasonalTipResponse{
		Season: season,
		Tip:    out.Tip,
	}, nil
}

// currentSeason maps the month to a southern-hemisphere season name.
func currentSeason(now time.Time) string {
	switch now.Month() {
	case time.December, time.January, time.February:
		return "Verão"
	case time.March, time.April, time.May:
		return "Outono"
	case time.June, time.July, time.August:
		return "Inverno"
	default:
		return "Primavera"
	}
}
