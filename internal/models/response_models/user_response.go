package response_models

import "izybotanic/internal/models/db_models"

type UserResponse struct {
	ID           string                   `json:"id"`
	Name         string                   `json:"name"`
	Email        string                   `json:"email"`
	Nickname     string                   `json:"nickname"`
	Phone        string                   `json:"phone"`
	PhotoURL     string                   `json:"photoURL"`
	Plants       []db_models.Plant        `json:"plants"`
	Journal      []db_models.JournalEntry `json:"journal"`
	Achievements []string                 `json:"achievements"`
	ChatHistory  db_models.ChatHistory    `json:"chatHistory"`
}

func UserFromAccount(account *db_models.Account, doc db_models.Document) UserResponse {
	return UserResponse{
		ID:           account.ID.String(),
		Name:         account.Name,
		Email:        account.Email,
		Nickname:     account.Nickname,
		Phone:        account.Phone,
		PhotoURL:     account.PhotoURL,
		Plants:       doc.Plants,
		Journal:      doc.Journal,
		Achievements: doc.Achievements,
		ChatHistory:  doc.ChatHistory,
	}
}
