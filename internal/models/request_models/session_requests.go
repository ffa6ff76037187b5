package request_models

import "izybotanic/internal/models/db_models"

// UpdateUserRequest is the whole-document upsert payload: identity fields are
// shallow-merged, the four collections are wholesale-replaced.
type UpdateUserRequest struct {
	Name         string                   `json:"name"`
	Nickname     string                   `json:"nickname"`
	Phone        string                   `json:"phone"`
	PhotoURL     string                   `json:"photoURL"`
	Plants       []db_models.Plant        `json:"plants"`
	Journal      []db_models.JournalEntry `json:"journal"`
	Achievements []string                 `json:"achievements"`
	ChatHistory  db_models.ChatHistory    `json:"chatHistory"`
}

type UpdateProfileRequest struct {
	Name     string `json:"name"`
	Nickname string `json:"nickname"`
	Phone    string `json:"phone"`
	PhotoURL string `json:"photoURL"`
}
