package request_models

import "izybotanic/internal/models/db_models"

type AddPlantRequest struct {
	Nickname     string                  `json:"nickname" binding:"required"`
	PhotoDataURI string                  `json:"photoDataUri"`
	Analysis     db_models.PlantAnalysis `json:"analysis" binding:"required"`
}

type AddJournalEntryRequest struct {
	PlantID string `json:"plantId" binding:"required"`
	Notes   string `json:"notes" binding:"required"`
	Photo   string `json:"photo"`
}
