package response_models

import "izybotanic/internal/models/db_models"

type AddPlantResponse struct {
	Plant           db_models.Plant `json:"plant"`
	NewAchievements []string        `json:"newAchievements"`
}

type AddJournalEntryResponse struct {
	Entry db_models.JournalEntry `json:"entry"`
}

type CarePlanResponse struct {
	PlantID         string   `json:"plantId"`
	Nickname        string   `json:"nickname"`
	FullCarePlan    string   `json:"fullCarePlan"`
	NewAchievements []string `json:"newAchievements"`
}
