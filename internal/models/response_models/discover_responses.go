package response_models

type SuggestionsResponse struct {
	SuggestedPlants string `json:"suggestedPlants"`
}

type SeasonalTipResponse struct {
	Season string `json:"season"`
	Tip    string `json:"tip"`
}
