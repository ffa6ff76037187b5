package response_models

import "izybotanic/internal/models/db_models"

type ChatReplyResponse struct {
	Reply           string                `json:"reply"`
	History         db_models.ChatHistory `json:"history"`
	NewAchievements []string              `json:"newAchievements"`
}
