package services

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"izybotanic/internal/models/db_models"
	"izybotanic/internal/models/request_models"
	"izybotanic/pkg/utils"
)

// fakeAccountRepo is an in-memory AccountRepository. A hand-written fake
// keeps the tests readable: what it does is exactly what you see.
type fakeAccountRepo struct {
	byID    map[string]*db_models.Account
	byEmail map[string]*db_models.Account
	findErr error
}

func newFakeAccountRepo() *fakeAccountRepo {
	return &fakeAccountRepo{
		byID:    make(map[string]*db_models.Account),
		byEmail: make(map[string]*db_models.Account),
	}
}

func (f *fakeAccountRepo) Insert(ctx context.Context, account *db_models.Account) error {
	if account.ID == uuid.Nil {
		account.ID = uuid.New()
	}
	copied := *account
	f.byID[account.ID.String()] = &copied
	f.byEmail[account.Email] = &copied
	return nil
}

func (f *fakeAccountRepo) FindByID(ctx context.Context, id string) (*db_models.Account, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	a, ok := f.byID[id]
	if !ok {
		return nil, nil
	}
	copied := *a
	return &copied, nil
}

func (f *fakeAccountRepo) FindByEmail(ctx context.Context, email string) (*db_models.Account, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	a, ok := f.byEmail[email]
	if !ok {
		return nil, nil
	}
	copied := *a
	return &copied, nil
}

func (f *fakeAccountRepo) Update(ctx context.Context, account *db_models.Account) error {
	copied := *account
	f.byID[account.ID.String()] = &copied
	f.byEmail[account.Email] = &copied
	return nil
}

// fakeDocumentRepo stores documents through a JSON round trip, the same way
// the real store does, so decoding behavior is exercised too.
type fakeDocumentRepo struct {
	rows    map[string][]byte
	findErr error
	saveErr error
	saves   int
}

func newFakeDocumentRepo() *fakeDocumentRepo {
	return &fakeDocumentRepo{rows: make(map[string][]byte)}
}

func (f *fakeDocumentRepo) FindByAccountID(ctx context.Context, id string) (*db_models.UserDocument, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	raw, ok := f.rows[id]
	if !ok {
		return nil, nil
	}

	var doc db_models.Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}
	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil, err
	}
	return &db_models.UserDocument{
		BaseModel: db_models.BaseModel{ID: parsed},
		Document:  doc,
	}, nil
}

func (f *fakeDocumentRepo) Save(ctx context.Context, doc *db_models.UserDocument) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	raw, err := json.Marshal(doc.Document)
	if err != nil {
		return err
	}
	f.rows[doc.ID.String()] = raw
	f.saves++
	return nil
}

// seedRawDocument writes a raw JSON payload, bypassing the model types, to
// simulate data persisted by older revisions.
func (f *fakeDocumentRepo) seedRawDocument(id string, raw string) {
	f.rows[id] = []byte(raw)
}

type fakeMailService struct {
	welcomes []string
	resets   []string
}

func (f *fakeMailService) SendWelcomeMail(to, name string) error {
	f.welcomes = append(f.welcomes, to)
	return nil
}

func (f *fakeMailService) SendMailToResetPassword(to, otp string) error {
	f.resets = append(f.resets, otp)
	return nil
}

func seedAccount(t *testing.T, accounts *fakeAccountRepo, name, email string) *db_models.Account {
	t.Helper()
	account := &db_models.Account{Name: name, Email: email}
	require.NoError(t, accounts.Insert(context.Background(), account))
	return account
}

func TestGetSession_ProvisionsDocumentOnFirstLogin(t *testing.T) {
	accounts := newFakeAccountRepo()
	docs := newFakeDocumentRepo()
	account := seedAccount(t, accounts, "Ana", "ana@example.com")

	svc := NewSessionService(accounts, docs)

	session, err := svc.GetSession(context.Background(), &utils.Claims{UserID: account.ID.String()})
	require.NoError(t, err)

	assert.False(t, session.Degraded)
	assert.Equal(t, "Ana", session.User.Name)
	assert.Equal(t, "ana@example.com", session.User.Email)
	assert.Empty(t, session.User.Plants)
	assert.Empty(t, session.User.Achievements)

	// The default document must actually be persisted.
	row, err := docs.FindByAccountID(context.Background(), account.ID.String())
	require.NoError(t, err)
	require.NotNil(t, row)
	assert.Empty(t, row.Document.Plants)
}

func TestGetSession_DegradesWhenDocumentFetchFails(t *testing.T) {
	accounts := newFakeAccountRepo()
	docs := newFakeDocumentRepo()
	account := seedAccount(t, accounts, "Ana", "ana@example.com")
	docs.findErr = errors.New("store unreachable")

	svc := NewSessionService(accounts, docs)

	session, err := svc.GetSession(context.Background(), &utils.Claims{UserID: account.ID.String()})
	require.NoError(t, err)

	assert.True(t, session.Degraded)
	assert.NotEmpty(t, session.Warning)
	assert.Equal(t, "Ana", session.User.Name)
	assert.Empty(t, session.User.Plants)
	assert.Empty(t, session.User.ChatHistory)
}

func TestGetSession_DegradesFromClaimsWhenAccountFetchFails(t *testing.T) {
	accounts := newFakeAccountRepo()
	accounts.findErr = errors.New("store unreachable")
	docs := newFakeDocumentRepo()

	svc := NewSessionService(accounts, docs)

	claims := &utils.Claims{UserID: uuid.NewString(), Name: "Ana", Email: "ana@example.com"}
	session, err := svc.GetSession(context.Background(), claims)
	require.NoError(t, err)

	assert.True(t, session.Degraded)
	assert.Equal(t, claims.UserID, session.User.ID)
	assert.Equal(t, "Ana", session.User.Name)
}

func TestGetSession_UnknownAccount(t *testing.T) {
	svc := NewSessionService(newFakeAccountRepo(), newFakeDocumentRepo())

	_, err := svc.GetSession(context.Background(), &utils.Claims{UserID: uuid.NewString()})
	assert.ErrorIs(t, err, utils.ErrAccountNotFound)
}

func TestUpdateUser_WriteThenReadIsConsistent(t *testing.T) {
	accounts := newFakeAccountRepo()
	docs := newFakeDocumentRepo()
	account := seedAccount(t, accounts, "Ana", "ana@example.com")

	svc := NewSessionService(accounts, docs)

	req := request_models.UpdateUserRequest{
		Name:     "Ana Clara",
		Nickname: "aninha",
		Phone:    "11999990000",
		Plants: []db_models.Plant{
			{
				ID:        "plant-1",
				Nickname:  "Mimo",
				AddedDate: time.Now().Format(time.RFC3339),
				PlantAnalysis: db_models.PlantAnalysis{
					Species: "Monstera deliciosa",
					Health:  "Saudável",
				},
			},
		},
		Journal: []db_models.JournalEntry{
			{ID: "entry-1", PlantID: "plant-1", Notes: "Folha nova!"},
		},
		Achievements: []string{"first-sprout"},
		ChatHistory: db_models.ChatHistory{
			{Role: db_models.ChatRoleUser, Content: "Oi Izy"},
			{Role: db_models.ChatRoleBot, Content: "Olá!"},
		},
	}

	updated, err := svc.UpdateUser(context.Background(), account.ID.String(), req)
	require.NoError(t, err)

	session, err := svc.GetSession(context.Background(), &utils.Claims{UserID: account.ID.String()})
	require.NoError(t, err)

	assert.False(t, session.Degraded)
	assert.Equal(t, *updated, session.User)
	assert.Equal(t, "Ana Clara", session.User.Name)
	assert.Equal(t, req.Plants, session.User.Plants)
	assert.Equal(t, req.Journal, session.User.Journal)
	assert.Equal(t, req.Achievements, session.User.Achievements)
	assert.Equal(t, req.ChatHistory, session.User.ChatHistory)
}

func TestUpdateUser_NormalizesNilCollections(t *testing.T) {
	accounts := newFakeAccountRepo()
	docs := newFakeDocumentRepo()
	account := seedAccount(t, accounts, "Ana", "ana@example.com")

	svc := NewSessionService(accounts, docs)

	updated, err := svc.UpdateUser(context.Background(), account.ID.String(), request_models.UpdateUserRequest{Name: "Ana"})
	require.NoError(t, err)

	assert.NotNil(t, updated.Plants)
	assert.NotNil(t, updated.Journal)
	assert.NotNil(t, updated.Achievements)
	assert.NotNil(t, updated.ChatHistory)
}
