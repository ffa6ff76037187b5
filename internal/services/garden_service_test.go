package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"izybotanic/internal/achievements"
	"izybotanic/internal/models/db_models"
	"izybotanic/internal/models/request_models"
	"izybotanic/pkg/utils"
)

func seedDocument(t *testing.T, docs *fakeDocumentRepo, doc db_models.Document) string {
	t.Helper()
	id := uuid.New()
	require.NoError(t, docs.Save(context.Background(), &db_models.UserDocument{
		BaseModel: db_models.BaseModel{ID: id},
		Document:  doc,
	}))
	docs.saves = 0
	return id.String()
}

func healthyAnalysis(species string) db_models.PlantAnalysis {
	return db_models.PlantAnalysis{
		Species:           species,
		Health:            "Saudável",
		WateringFrequency: "2x por semana",
		SunlightNeeds:     "Luz indireta",
		FullCarePlan:      "Regar, adubar, observar.",
	}
}

func TestAddPlant_GrantsFirstSprout(t *testing.T) {
	docs := newFakeDocumentRepo()
	userID := seedDocument(t, docs, db_models.NewDocument())

	svc := NewGardenService(docs)

	resp, err := svc.AddPlant(context.Background(), userID, request_models.AddPlantRequest{
		Nickname: "Mimo",
		Analysis: healthyAnalysis("Monstera deliciosa"),
	})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.Plant.ID)
	assert.NotEmpty(t, resp.Plant.AddedDate)
	assert.Equal(t, []string{achievements.FirstSprout}, resp.NewAchievements)

	stored, err := docs.FindByAccountID(context.Background(), userID)
	require.NoError(t, err)
	require.Len(t, stored.Document.Plants, 1)
	assert.Equal(t, []string{achievements.FirstSprout}, stored.Document.Achievements)
	assert.Equal(t, 1, docs.saves)
}

func TestAddPlant_FifthGrantsGreenThumbExactlyOnce(t *testing.T) {
	docs := newFakeDocumentRepo()
	userID := seedDocument(t, docs, db_models.NewDocument())

	svc := NewGardenService(docs)

	for i := 0; i < 6; i++ {
		_, err := svc.AddPlant(context.Background(), userID, request_models.AddPlantRequest{
			Analysis: healthyAnalysis("Samambaia"),
		})
		require.NoError(t, err)
	}

	stored, err := docs.FindByAccountID(context.Background(), userID)
	require.NoError(t, err)

	count := 0
	for _, id := range stored.Document.Achievements {
		if id == achievements.GreenThumb {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestDeletePlant_CascadesJournalCleanup(t *testing.T) {
	docs := newFakeDocumentRepo()
	userID := seedDocument(t, docs, db_models.Document{
		Plants: []db_models.Plant{
			{ID: "plant-1", Nickname: "Mimo"},
			{ID: "plant-2", Nickname: "Zeca"},
		},
		Journal: []db_models.JournalEntry{
			{ID: "e1", PlantID: "plant-1", Notes: "Folha nova"},
			{ID: "e2", PlantID: "plant-2", Notes: "Rega"},
			{ID: "e3", PlantID: "plant-1", Notes: "Adubo"},
		},
		Achievements: []string{},
		ChatHistory:  db_models.ChatHistory{},
	})

	svc := NewGardenService(docs)

	require.NoError(t, svc.DeletePlant(context.Background(), userID, "plant-1"))

	stored, err := docs.FindByAccountID(context.Background(), userID)
	require.NoError(t, err)

	require.Len(t, stored.Document.Plants, 1)
	assert.Equal(t, "plant-2", stored.Document.Plants[0].ID)
	require.Len(t, stored.Document.Journal, 1)
	assert.Equal(t, "e2", stored.Document.Journal[0].ID)
	assert.Equal(t, 1, docs.saves)
}

func TestDeletePlant_NotFound(t *testing.T) {
	docs := newFakeDocumentRepo()
	userID := seedDocument(t, docs, db_models.NewDocument())

	svc := NewGardenService(docs)

	err := svc.DeletePlant(context.Background(), userID, "nope")
	assert.ErrorIs(t, err, utils.ErrPlantNotFound)
	assert.Zero(t, docs.saves)
}

func TestGetPlant(t *testing.T) {
	docs := newFakeDocumentRepo()
	userID := seedDocument(t, docs, db_models.Document{
		Plants: []db_models.Plant{{ID: "plant-1", Nickname: "Mimo"}},
	})

	svc := NewGardenService(docs)

	plant, err := svc.GetPlant(context.Background(), userID, "plant-1")
	require.NoError(t, err)
	assert.Equal(t, "Mimo", plant.Nickname)

	_, err = svc.GetPlant(context.Background(), userID, "plant-2")
	assert.ErrorIs(t, err, utils.ErrPlantNotFound)
}

func TestGetCarePlan_GrantsDiligentStudentAndPersists(t *testing.T) {
	docs := newFakeDocumentRepo()
	plant := db_models.Plant{ID: "plant-1", Nickname: "Mimo", PlantAnalysis: healthyAnalysis("Monstera")}
	userID := seedDocument(t, docs, db_models.Document{Plants: []db_models.Plant{plant}})

	svc := NewGardenService(docs)

	resp, err := svc.GetCarePlan(context.Background(), userID, "plant-1")
	require.NoError(t, err)
	assert.Equal(t, plant.FullCarePlan, resp.FullCarePlan)
	assert.Equal(t, []string{achievements.DiligentStudent}, resp.NewAchievements)
	assert.Equal(t, 1, docs.saves)

	// Second view: the badge is held, so the read must not write.
	resp, err = svc.GetCarePlan(context.Background(), userID, "plant-1")
	require.NoError(t, err)
	assert.Empty(t, resp.NewAchievements)
	assert.Equal(t, 1, docs.saves)
}

func TestListJournal_FiltersByPlant(t *testing.T) {
	docs := newFakeDocumentRepo()
	userID := seedDocument(t, docs, db_models.Document{
		Journal: []db_models.JournalEntry{
			{ID: "e1", PlantID: "plant-1"},
			{ID: "e2", PlantID: "plant-2"},
		},
	})

	svc := NewGardenService(docs)

	all, err := svc.ListJournal(context.Background(), userID, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	filtered, err := svc.ListJournal(context.Background(), userID, "plant-2")
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.Equal(t, "e2", filtered[0].ID)
}

func TestAddJournalEntry_RequiresExistingPlant(t *testing.T) {
	docs := newFakeDocumentRepo()
	userID := seedDocument(t, docs, db_models.Document{
		Plants: []db_models.Plant{{ID: "plant-1"}},
	})

	svc := NewGardenService(docs)

	_, err := svc.AddJournalEntry(context.Background(), userID, request_models.AddJournalEntryRequest{
		PlantID: "ghost",
		Notes:   "nada",
	})
	assert.ErrorIs(t, err, utils.ErrJournalPlantMissing)
	assert.Zero(t, docs.saves)

	resp, err := svc.AddJournalEntry(context.Background(), userID, request_models.AddJournalEntryRequest{
		PlantID: "plant-1",
		Notes:   "Folha nova",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Entry.ID)
	assert.NotEmpty(t, resp.Entry.Date)
	assert.Equal(t, 1, docs.saves)
}

func TestListPlants_MissingRowYieldsEmptyCollection(t *testing.T) {
	docs := newFakeDocumentRepo()
	svc := NewGardenService(docs)

	plants, err := svc.ListPlants(context.Background(), uuid.NewString())
	require.NoError(t, err)
	assert.Empty(t, plants)
}
