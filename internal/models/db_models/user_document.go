package db_models

// UserDocument is the single persisted record per account: every owned
// collection lives inside the jsonb payload and every mutation rewrites the
// payload wholesale (last write wins).
type UserDocument struct {
	BaseModel
	Document Document `gorm:"type:jsonb;serializer:json"`
}

type Document struct {
	Plants       []Plant        `json:"plants"`
	Journal      []JournalEntry `json:"journal"`
	Achievements []string       `json:"achievements"`
	ChatHistory  ChatHistory    `json:"chatHistory"`
}

// NewDocument returns the empty-collections payload written at first login.
func NewDocument() Document {
	return Document{
		Plants:       []Plant{},
		Journal:      []JournalEntry{},
		Achievements: []string{},
		ChatHistory:  ChatHistory{},
	}
}

// PlantAnalysis is the image-analysis result attached to a plant. Health is a
// display category: "Saudável", "Problemas menores" or "Não saudável".
type PlantAnalysis struct {
	Species                   string `json:"species"`
	Health                    string `json:"health"`
	PotentialProblems         string `json:"potentialProblems"`
	DetailedDiagnosis         string `json:"detailedDiagnosis"`
	SoilAnalysis              string `json:"soilAnalysis"`
	WateringFrequency         string `json:"wateringFrequency"`
	SunlightNeeds             string `json:"sunlightNeeds"`
	ExpertTips                string `json:"expertTips"`
	Treatments                string `json:"treatments"`
	FullCarePlan              string `json:"fullCarePlan"`
	PotentialPestsAndDiseases string `json:"potentialPestsAndDiseases"`
}

type Plant struct {
	PlantAnalysis
	ID           string `json:"id"`
	Nickname     string `json:"nickname"`
	PhotoDataURI string `json:"photoDataUri"`
	AddedDate    string `json:"addedDate"`
}

type JournalEntry struct {
	ID      string `json:"id"`
	PlantID string `json:"plantId"`
	Date    string `json:"date"`
	Notes   string `json:"notes"`
	Photo   string `json:"photo,omitempty"`
}
