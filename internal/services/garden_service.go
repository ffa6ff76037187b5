package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"izybotanic/internal/achievements"
	"izybotanic/internal/models/db_models"
	"izybotanic/internal/models/request_models"
	"izybotanic/internal/models/response_models"
	"izybotanic/internal/repositories"
	"izybotanic/pkg/utils"
)

type GardenServiceInterface interface {
	ListPlants(ctx context.Context, userID string) ([]db_models.Plant, error)
	GetPlant(ctx context.Context, userID, plantID string) (*db_models.Plant, error)
	AddPlant(ctx context.Context, userID string, request request_models.AddPlantRequest) (*response_models.AddPlantResponse, error)
	DeletePlant(ctx context.Context, userID, plantID string) error
	GetCarePlan(ctx context.Context, userID, plantID string) (*response_models.CarePlanResponse, error)
	ListJournal(ctx context.Context, userID, plantID string) ([]db_models.JournalEntry, error)
	AddJournalEntry(ctx context.Context, userID string, request request_models.AddJournalEntryRequest) (*response_models.AddJournalEntryResponse, error)
}

type GardenService struct {
	documentRepo repositories.UserDocumentRepository
}

func NewGardenService(documentRepo repositories.UserDocumentRepository) GardenServiceInterface {
	return &GardenService{
		documentRepo: documentRepo,
	}
}

func (g *GardenService) ListPlants(ctx context.Context, userID string) ([]db_models.Plant, error) {
	row, err := g.loadDocumentRow(ctx, userID)
	if err != nil {
		return nil, err
	}
	return row.Document.Plants, nil
}

func (g *GardenService) GetPlant(ctx context.Context, userID, plantID string) (*db_models.Plant, error) {
	row, err := g.loadDocumentRow(ctx, userID)
	if err != nil {
		return nil, err
	}

	for i := range row.Document.Plants {
		if row.Document.Plants[i].ID == plantID {
			return &row.Document.Plants[i], nil
		}
	}
	return nil, utils.ErrPlantNotFound
}

func (g *GardenService) AddPlant(ctx context.Context, userID string, request request_models.AddPlantRequest) (*response_models.AddPlantResponse, error) {
	row, err := g.loadDocumentRow(ctx, userID)
	if err != nil {
		return nil, err
	}

	plant := db_models.Plant{
		PlantAnalysis: request.Analysis,
		ID:            uuid.NewString(),
		Nickname:      request.Nickname,
		PhotoDataURI:  request.PhotoDataURI,
		AddedDate:     time.Now().Format(time.RFC3339),
	}

	row.Document.Plants = append(row.Document.Plants, plant)

	newIds := achievements.Evaluate(row.Document, achievements.EventPlantAdded)
	row.Document.Achievements = append(row.Document.Achievements, newIds...)

	if err := g.documentRepo.Save(ctx, row); err != nil {
		return nil, utils.ErrDatabaseError
	}

	return &response_models.AddPlantResponse{
		Plant:           plant,
		NewAchievements: newIds,
	}, nil
}

// DeletePlant removes the plant and every journal entry that referenced it,
// in one document write.
func (g *GardenService) DeletePlant(ctx context.Context, userID, plantID string) error {
	row, err := g.loadDocumentRow(ctx, userID)
	if err != nil {
		return err
	}

	plants := row.Document.Plants[:0]
	found := false
	for _, p := range row.Document.Plants {
		if p.ID == plantID {
			found = true
			continue
		}
		plants = append(plants, p)
	}
	if !found {
		return utils.ErrPlantNotFound
	}
	row.Document.Plants = plants

	journal := row.Document.Journal[:0]
	for _, e := range row.Document.Journal {
		if e.PlantID == plantID {
			continue
		}
		journal = append(journal, e)
	}
	row.Document.Journal = journal

	if err := g.documentRepo.Save(ctx, row); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (g *GardenService) GetCarePlan(ctx context.Context, userID, plantID string) (*response_models.CarePlanResponse, error) {
	row, err := g.loadDocumentRow(ctx, userID)
	if err != nil {
		return nil, err
	}

	var plant *db_models.Plant
	for i := range row.Document.Plants {
		if row.Document.Plants[i].ID == plantID {
			plant = &row.Document.Plants[i]
			break
		}
	}
	if plant == nil {
		return nil, utils.ErrPlantNotFound
	}

	newIds := achievements.Evaluate(row.Document, achievements.EventCarePlanViewed)
	if len(newIds) > 0 {
		row.Document.Achievements = append(row.Document.Achievements, newIds...)
		if err := g.documentRepo.Save(ctx, row); err != nil {
			return nil, utils.ErrDatabaseError
		}
	}

	return &response_models.CarePlanResponse{
		PlantID:         plant.ID,
		Nickname:        plant.Nickname,
		FullCarePlan:    plant.FullCarePlan,
		NewAchievements: newIds,
	}, nil
}

func (g *GardenService) ListJournal(ctx context.Context, userID, plantID string) ([]db_models.JournalEntry, error) {
	row, err := g.loadDocumentRow(ctx, userID)
	if err != nil {
		return nil, err
	}

	if plantID == "" {
		return row.Document.Journal, nil
	}

	entries := []db_models.JournalEntry{}
	for _, e := range row.Document.Journal {
		if e.PlantID == plantID {
			entries = append(entries, e)
		}
	}
	return entries, nil
}

func (g *GardenService) AddJournalEntry(ctx context.Context, userID string, request request_models.AddJournalEntryRequest) (*response_models.AddJournalEntryResponse, error) {
	row, err := g.loadDocumentRow(ctx, userID)
	if err != nil {
		return nil, err
	}

	plantExists := false
	for _, p := range row.Document.Plants {
		if p.ID == request.PlantID {
			plantExists = true
			break
		}
	}
	if !plantExists {
		return nil, utils.ErrJournalPlantMissing
	}

	entry := db_models.JournalEntry{
		ID:      uuid.NewString(),
		PlantID: request.PlantID,
		Date:    time.Now().Format(time.RFC3339),
		Notes:   request.Notes,
		Photo:   request.Photo,
	}
	row.Document.Journal = append(row.Document.Journal, entry)

	if err := g.documentRepo.Save(ctx, row); err != nil {
		return nil, utils.ErrDatabaseError
	}

	return &response_models.AddJournalEntryResponse{Entry: entry}, nil
}

func (g *GardenService) loadDocumentRow(ctx context.Context, userID string) (*db_models.UserDocument, error) {
	row, err := g.documentRepo.FindByAccountID(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if row != nil {
		return row, nil
	}

	id, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("%w: bad user id", utils.ErrInvalidInput)
	}
	return &db_models.UserDocument{
		BaseModel: db_models.BaseModel{ID: id},
		Document:  db_models.NewDocument(),
	}, nil
}

// gardenSummary renders the collection into the short textual form the chat
// and suggestion flows receive as context.
func gardenSummary(plants []db_models.Plant) string {
	if len(plants) == 0 {
		return "O usuário ainda não tem plantas na coleção."
	}

	var b strings.Builder
	fmt.Fprintf(&b, "O usuário tem %d planta(s):\n", len(plants))
	for _, p := range plants {
		name := p.Nickname
		if name == "" {
			name = p.Species
		}
		fmt.Fprintf(&b, "- %s (%s, saúde: %s)\n", name, p.Species, p.Health)
	}
	return b.String()
}
