package achievements

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"izybotanic/internal/models/db_models"
)

func plants(n int) []db_models.Plant {
	out := make([]db_models.Plant, n)
	for i := range out {
		out[i] = db_models.Plant{ID: string(rune('a' + i))}
	}
	return out
}

func questions(n int) db_models.ChatHistory {
	var h db_models.ChatHistory
	for i := 0; i < n; i++ {
		h = append(h,
			db_models.ChatMessage{Role: db_models.ChatRoleUser, Content: "pergunta"},
			db_models.ChatMessage{Role: db_models.ChatRoleBot, Content: "resposta"},
		)
	}
	return h
}

func TestEvaluate_FirstPlant(t *testing.T) {
	doc := db_models.Document{Plants: plants(1)}

	earned := Evaluate(doc, EventPlantAdded)

	assert.Equal(t, []string{FirstSprout}, earned)
}

func TestEvaluate_FifthPlantGrantsGreenThumbOnce(t *testing.T) {
	doc := db_models.Document{
		Plants:       plants(5),
		Achievements: []string{FirstSprout},
	}

	earned := Evaluate(doc, EventPlantAdded)
	assert.Equal(t, []string{GreenThumb}, earned)

	// Sixth plant: both thresholds still hold but nothing new is earned.
	doc.Plants = plants(6)
	doc.Achievements = append(doc.Achievements, earned...)

	assert.Empty(t, Evaluate(doc, EventPlantAdded))
}

func TestEvaluate_ChatMilestones(t *testing.T) {
	doc := db_models.Document{ChatHistory: questions(1)}
	assert.Equal(t, []string{ChattyGardener}, Evaluate(doc, EventChatQuestion))

	doc = db_models.Document{
		ChatHistory:  questions(5),
		Achievements: []string{ChattyGardener},
	}
	assert.Equal(t, []string{BotanicalSage}, Evaluate(doc, EventChatQuestion))
}

func TestEvaluate_BothChatBadgesAtOnce(t *testing.T) {
	// A document restored with 5 questions but no badges earns both in one go.
	doc := db_models.Document{ChatHistory: questions(5)}

	assert.Equal(t, []string{ChattyGardener, BotanicalSage}, Evaluate(doc, EventChatQuestion))
}

func TestEvaluate_CarePlanViewed(t *testing.T) {
	assert.Equal(t, []string{DiligentStudent}, Evaluate(db_models.Document{}, EventCarePlanViewed))

	held := db_models.Document{Achievements: []string{DiligentStudent}}
	assert.Empty(t, Evaluate(held, EventCarePlanViewed))
}

func TestEvaluate_EventScoping(t *testing.T) {
	// Plant thresholds are only checked on plant events.
	doc := db_models.Document{Plants: plants(5), ChatHistory: questions(1)}

	assert.Equal(t, []string{ChattyGardener}, Evaluate(doc, EventChatQuestion))
}

func TestCatalogIdsAreUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, a := range Catalog {
		assert.False(t, seen[a.ID], "duplicate id %s", a.ID)
		seen[a.ID] = true
		assert.NotEmpty(t, a.Title)
		assert.NotEmpty(t, a.Description)
	}
}
