package services

import (
	"context"
	"log"

	"github.com/google/uuid"

	"izybotanic/internal/models/db_models"
	"izybotanic/internal/models/request_models"
	"izybotanic/internal/models/response_models"
	"izybotanic/internal/repositories"
	"izybotanic/pkg/utils"
)

const degradedWarning = "Seus dados não puderam ser carregados agora. Você continua conectado, tente novamente em instantes."

type SessionServiceInterface interface {
	GetSession(ctx context.Context, claims *utils.Claims) (*response_models.SessionResponse, error)
	UpdateUser(ctx context.Context, userID string, request request_models.UpdateUserRequest) (*response_models.UserResponse, error)
	UpdateProfile(ctx context.Context, userID string, request request_models.UpdateProfileRequest) (*response_models.UserResponse, error)
}

type SessionService struct {
	accountRepo  repositories.AccountRepository
	documentRepo repositories.UserDocumentRepository
}

func NewSessionService(
	accountRepo repositories.AccountRepository,
	documentRepo repositories.UserDocumentRepository,
) SessionServiceInterface {
	return &SessionService{
		accountRepo:  accountRepo,
		documentRepo: documentRepo,
	}
}

// GetSession resolves the bearer credential into the application user. A
// missing document is provisioned on the spot (first login); a store failure
// keeps the session authenticated but degraded, with empty collections.
func (s *SessionService) GetSession(ctx context.Context, claims *utils.Claims) (*response_models.SessionResponse, error) {

	account, err := s.accountRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		log.Printf("Account fetch failed for %s, serving degraded session: %v", claims.UserID, err)
		return degradedSessionFromClaims(claims), nil
	}
	if account == nil {
		return nil, utils.ErrAccountNotFound
	}

	row, err := s.documentRepo.FindByAccountID(ctx, claims.UserID)
	if err != nil {
		log.Printf("Document fetch failed for %s, serving degraded session: %v", claims.UserID, err)
		return &response_models.SessionResponse{
			User:     response_models.UserFromAccount(account, db_models.NewDocument()),
			Degraded: true,
			Warning:  degradedWarning,
		}, nil
	}

	if row == nil {
		row = &db_models.UserDocument{
			BaseModel: db_models.BaseModel{ID: account.ID},
			Document:  db_models.NewDocument(),
		}
		if err := s.documentRepo.Save(ctx, row); err != nil {
			log.Printf("Document provisioning failed for %s, serving degraded session: %v", claims.UserID, err)
			return &response_models.SessionResponse{
				User:     response_models.UserFromAccount(account, db_models.NewDocument()),
				Degraded: true,
				Warning:  degradedWarning,
			}, nil
		}
	}

	return &response_models.SessionResponse{
		User: response_models.UserFromAccount(account, row.Document),
	}, nil
}

func degradedSessionFromClaims(claims *utils.Claims) *response_models.SessionResponse {
	return &response_models.SessionResponse{
		User: response_models.UserResponse{
			ID:           claims.UserID,
			Name:         claims.Name,
			Email:        claims.Email,
			Plants:       []db_models.Plant{},
			Journal:      []db_models.JournalEntry{},
			Achievements: []string{},
			ChatHistory:  db_models.ChatHistory{},
		},
		Degraded: true,
		Warning:  degradedWarning,
	}
}

// UpdateUser is the whole-document upsert: identity fields are shallow-merged
// onto the account row, the four collections replace the stored document
// wholesale. No conflict detection, last write wins.
func (s *SessionService) UpdateUser(ctx context.Context, userID string, request request_models.UpdateUserRequest) (*response_models.UserResponse, error) {

	account, err := s.accountRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if account == nil {
		return nil, utils.ErrAccountNotFound
	}

	account.Name = request.Name
	account.Nickname = request.Nickname
	account.Phone = request.Phone
	account.PhotoURL = request.PhotoURL
	if err := s.accountRepo.Update(ctx, account); err != nil {
		return nil, utils.ErrDatabaseError
	}

	row, err := s.loadDocumentRow(ctx, account.ID)
	if err != nil {
		return nil, err
	}
	row.Document = normalizeDocument(db_models.Document{
		Plants:       request.Plants,
		Journal:      request.Journal,
		Achievements: request.Achievements,
		ChatHistory:  request.ChatHistory,
	})
	if err := s.documentRepo.Save(ctx, row); err != nil {
		return nil, utils.ErrDatabaseError
	}

	user := response_models.UserFromAccount(account, row.Document)
	return &user, nil
}

func (s *SessionService) UpdateProfile(ctx context.Context, userID string, request request_models.UpdateProfileRequest) (*response_models.UserResponse, error) {

	account, err := s.accountRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if account == nil {
		return nil, utils.ErrAccountNotFound
	}

	account.Name = request.Name
	account.Nickname = request.Nickname
	account.Phone = request.Phone
	account.PhotoURL = request.PhotoURL
	if err := s.accountRepo.Update(ctx, account); err != nil {
		return nil, utils.ErrDatabaseError
	}

	doc := db_models.NewDocument()
	if row, err := s.documentRepo.FindByAccountID(ctx, userID); err == nil && row != nil {
		doc = row.Document
	}

	user := response_models.UserFromAccount(account, doc)
	return &user, nil
}

func (s *SessionService) loadDocumentRow(ctx context.Context, accountID uuid.UUID) (*db_models.UserDocument, error) {
	row, err := s.documentRepo.FindByAccountID(ctx, accountID.String())
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if row == nil {
		row = &db_models.UserDocument{
			BaseModel: db_models.BaseModel{ID: accountID},
			Document:  db_models.NewDocument(),
		}
	}
	return row, nil
}

// normalizeDocument keeps the persisted collections non-nil so readers always
// see arrays, never null.
func normalizeDocument(doc db_models.Document) db_models.Document {
	if doc.Plants == nil {
		doc.Plants = []db_models.Plant{}
	}
	if doc.Journal == nil {
		doc.Journal = []db_models.JournalEntry{}
	}
	if doc.Achievements == nil {
		doc.Achievements = []string{}
	}
	if doc.ChatHistory == nil {
		doc.ChatHistory = db_models.ChatHistory{}
	}
	return doc
}
