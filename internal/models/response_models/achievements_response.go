package response_models

import "izybotanic/internal/achievements"

type AchievementsResponse struct {
	Catalog  []achievements.Achievement `json:"catalog"`
	Unlocked []string                   `json:"unlocked"`
}
