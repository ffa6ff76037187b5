package request_models

type SuggestionsRequest struct {
	Preferences string `json:"preferences" binding:"required"`
}
