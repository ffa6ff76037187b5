package services

import (
	"context"

	"izybotanic/internal/achievements"
	"izybotanic/internal/models/response_models"
	"izybotanic/internal/repositories"
)

type AchievementsServiceInterface interface {
	List(ctx context.Context, userID string) (*response_models.AchievementsResponse, error)
}

type AchievementsService struct {
	documentRepo repositories.UserDocumentRepository
}

func NewAchievementsService(documentRepo repositories.UserDocumentRepository) AchievementsServiceInterface {
	return &AchievementsService{
		documentRepo: documentRepo,
	}
}

func (a *AchievementsService) List(ctx context.Context, userID string) (*response_models.AchievementsResponse, error) {
	g := GardenService{documentRepo: a.documentRepo}
	row, err := g.loadDocumentRow(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &response_models.AchievementsResponse{
		Catalog:  achievements.Catalog,
		Unlocked: row.Document.Achievements,
	}, nil
}
