package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"izybotanic/internal/flows"
	"izybotanic/internal/models/db_models"
)

func TestSuggestions_UsesGardenAsContext(t *testing.T) {
	docs := newFakeDocumentRepo()
	userID := seedDocument(t, docs, db_models.Document{
		Plants: []db_models.Plant{
			{ID: "p1", Nickname: "Mimo", PlantAnalysis: db_models.PlantAnalysis{Species: "Monstera", Health: "Saudável"}},
		},
	})
	ai := &fakeFlows{suggestions: flows.SuggestNewPlantsOutput{SuggestedPlants: "Jiboia: fácil."}}

	svc := NewDiscoverService(docs, ai)

	resp, err := svc.Suggestions(context.Background(), userID, "pouca luz")
	require.NoError(t, err)
	assert.Equal(t, "Jiboia: fácil.", resp.SuggestedPlants)
}

func TestSeasonalTip_DefaultsToCurrentSeason(t *testing.T) {
	ai := &fakeFlows{tip: flows.GetSeasonalTipOutput{Tip: "Regue menos."}}
	svc := NewDiscoverService(newFakeDocumentRepo(), ai)

	resp, err := svc.SeasonalTip(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, "Regue menos.", resp.Tip)
	assert.NotEmpty(t, resp.Season)
}

func TestCurrentSeason_SouthernHemisphere(t *testing.T) {
	cases := map[time.Month]string{
		time.January:   "Verão",
		time.February:  "Verão",
		time.March:     "Outono",
		time.May:       "Outono",
		time.June:      "Inverno",
		time.August:    "Inverno",
		time.September: "Primavera",
		time.November:  "Primavera",
		time.December:  "Verão",
	}
	for month, want := range cases {
		now := time.Date(2025, month, 15, 12, 0, 0, 0, time.UTC)
		assert.Equal(t, want, currentSeason(now), "month %s", month)
	}
}
