package services

import (
	"context"

	"izybotanic/internal/achievements"
	"izybotanic/internal/flows"
	"izybotanic/internal/models/db_models"
	"izybotanic/internal/models/response_models"
	"izybotanic/internal/repositories"
	"izybotanic/pkg/utils"
)

type ChatServiceInterface interface {
	History(ctx context.Context, userID string) (db_models.ChatHistory, error)
	SendMessage(ctx context.Context, userID, message string) (*response_models.ChatReplyResponse, error)
}

type ChatService struct {
	documentRepo repositories.UserDocumentRepository
	flows        flows.Flows
}

func NewChatService(documentRepo repositories.UserDocumentRepository, aiFlows flows.Flows) ChatServiceInterface {
	return &ChatService{
		documentRepo: documentRepo,
		flows:        aiFlows,
	}
}

func (c *ChatService) History(ctx context.Context, userID string) (db_models.ChatHistory, error) {
	row, err := c.loadDocumentRow(ctx, userID)
	if err != nil {
		return nil, err
	}
	return row.Document.ChatHistory, nil
}

// SendMessage runs the expert-chat flow and only then appends both turns and
// any earned achievements in a single document write. A flow failure leaves
// the persisted collections untouched.
func (c *ChatService) SendMessage(ctx context.Context, userID, message string) (*response_models.ChatReplyResponse, error) {
	row, err := c.loadDocumentRow(ctx, userID)
	if err != nil {
		return nil, err
	}

	reply, err := c.flows.ExpertChat(ctx, flows.ExpertChatInput{
		PlantAnalysis: gardenSummary(row.Document.Plants),
		ChatHistory:   row.Document.ChatHistory,
		UserMessage:   message,
	})
	if err != nil {
		return nil, err
	}

	row.Document.ChatHistory = append(row.Document.ChatHistory,
		db_models.ChatMessage{Role: db_models.ChatRoleUser, Content: message},
		db_models.ChatMessage{Role: db_models.ChatRoleBot, Content: reply.BotMessage},
	)

	newIds := achievements.Evaluate(row.Document, achievements.EventChatQuestion)
	row.Document.Achievements = append(row.Document.Achievements, newIds...)

	if err := c.documentRepo.Save(ctx, row); err != nil {
		return nil, utils.ErrDatabaseError
	}

	return &response_models.ChatReplyResponse{
		Reply:           reply.BotMessage,
		History:         row.Document.ChatHistory,
		NewAchievements: newIds,
	}, nil
}

func (c *ChatService) loadDocumentRow(ctx context.Context, userID string) (*db_models.UserDocument, error) {
	g := GardenService{documentRepo: c.documentRepo}
	return g.loadDocumentRow(ctx, userID)
}
