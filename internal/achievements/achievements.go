package achievements

import "izybotanic/internal/models/db_models"

// Event marks which mutation just happened to the user document.
type Event int

const (
	EventPlantAdded Event = iota + 1
	EventChatQuestion
	EventCarePlanViewed
)

type Achievement struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

const (
	FirstSprout     = "first-sprout"
	GreenThumb      = "green-thumb"
	ChattyGardener  = "chatty-gardener"
	BotanicalSage   = "botanical-sage"
	DiligentStudent = "diligent-student"
)

// Catalog is the static badge catalog. Unlocked sets only ever hold ids
// drawn from here.
var Catalog = []Achievement{
	{
		ID:          FirstSprout,
		Title:       "Primeiro Broto",
		Description: "Adicione sua primeira planta à coleção.",
		Icon:        "sprout",
	},
	{
		ID:          GreenThumb,
		Title:       "Dedo Verde",
		Description: "Aumente sua coleção para 5 plantas.",
		Icon:        "users",
	},
	{
		ID:          ChattyGardener,
		Title:       "Jardineiro Tagarela",
		Description: "Converse pela primeira vez com a Izy, a especialista em plantas.",
		Icon:        "bot",
	},
	{
		ID:          BotanicalSage,
		Title:       "Sábio Botânico",
		Description: "Faça 5 perguntas à Izy.",
		Icon:        "graduation-cap",
	},
	{
		ID:          DiligentStudent,
		Title:       "Aluno Dedicado",
		Description: "Veja o plano de cuidados completo de uma de suas plantas.",
		Icon:        "book-open-check",
	},
}

// Evaluate runs every predicate relevant to event over the already-mutated
// document and returns the ids newly earned by it. It never returns an id the
// user already holds, so callers can append the result unconditionally.
func Evaluate(doc db_models.Document, event Event) []string {
	var earned []string

	grant := func(id string) {
		if !contains(doc.Achievements, id) && !contains(earned, id) {
			earned = append(earned, id)
		}
	}

	switch event {
	case EventPlantAdded:
		if len(doc.Plants) >= 1 {
			grant(FirstSprout)
		}
		if len(doc.Plants) >= 5 {
			grant(GreenThumb)
		}
	case EventChatQuestion:
		turns := doc.ChatHistory.UserTurns()
		if turns >= 1 {
			grant(ChattyGardener)
		}
		if turns >= 5 {
			grant(BotanicalSage)
		}
	case EventCarePlanViewed:
		grant(DiligentStudent)
	}

	return earned
}

func contains(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
