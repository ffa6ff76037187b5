package services

import (
	"context"
	"log"
	"time"

	"izybotanic/internal/models/db_models"
	"izybotanic/internal/models/request_models"
	"izybotanic/internal/models/response_models"
	"izybotanic/internal/repositories"
	mem "izybotanic/pkg/memcache"
	"izybotanic/pkg/utils"
)

type AccountServiceInterface interface {
	CreateAccount(ctx context.Context, request request_models.SignUpRequest) error
	Login(ctx context.Context, request request_models.LoginRequest) (*response_models.LoginResponse, error)
	ForgotPassword(ctx context.Context, email string) error
	VerifyOtpToken(request request_models.RequestVerifyOtpToken) error
	ResetPasswordWithOtp(ctx context.Context, request request_models.ResetPasswordRequest) error
}

type AccountService struct {
	accountRepo  repositories.AccountRepository
	documentRepo repositories.UserDocumentRepository
	mailService  IMailService
	resetTokens  mem.ResetTokenStore
}

func NewAccountService(
	accountRepo repositories.AccountRepository,
	documentRepo repositories.UserDocumentRepository,
	mailService IMailService,
	resetTokens mem.ResetTokenStore,
) AccountServiceInterface {
	return &AccountService{
		accountRepo:  accountRepo,
		documentRepo: documentRepo,
		mailService:  mailService,
		resetTokens:  resetTokens,
	}
}

func (a *AccountService) CreateAccount(ctx context.Context, request request_models.SignUpRequest) error {

	existingAccount, err := a.accountRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if existingAccount != nil {
		return utils.ErrEmailAlreadyExists
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return utils.ErrDatabaseError
	}

	newAccount := &db_models.Account{
		Name:         request.Name,
		Email:        request.Email,
		PasswordHash: hashedPassword,
	}

	if err := a.accountRepo.Insert(ctx, newAccount); err != nil {
		return utils.ErrDatabaseError
	}

	// First-login provisioning: every account starts with an
	// empty-collections document.
	doc := &db_models.UserDocument{
		BaseModel: db_models.BaseModel{ID: newAccount.ID},
		Document:  db_models.NewDocument(),
	}
	if err := a.documentRepo.Save(ctx, doc); err != nil {
		log.Printf("Failed to provision user document for %s: %v", newAccount.Email, err)
	}

	if err := a.mailService.SendWelcomeMail(newAccount.Email, newAccount.Name); err != nil {
		log.Printf("Failed to send welcome mail to %s: %v", newAccount.Email, err)
	}

	return nil
}

func (a *AccountService) Login(ctx context.Context, request request_models.LoginRequest) (*response_models.LoginResponse, error) {

	account, err := a.accountRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if account == nil {
		return nil, utils.ErrAccountNotFound
	}

	if err := utils.ComparePasswords(account.PasswordHash, request.Password); err != nil {
		return nil, utils.ErrInvalidCredentials
	}

	token, err := utils.CreateToken(account.ID, account.Name, account.Email)
	if err != nil {
		return nil, utils.ErrInvalidCredentials
	}

	// The user payload is best effort here: a store failure at login time
	// degrades to empty collections, GetSession reports it properly.
	doc := db_models.NewDocument()
	if row, err := a.documentRepo.FindByAccountID(ctx, account.ID.String()); err == nil && row != nil {
		doc = row.Document
	}

	return &response_models.LoginResponse{
		Token: token,
		User:  response_models.UserFromAccount(account, doc),
	}, nil
}

func (a *AccountService) ForgotPassword(ctx context.Context, email string) error {

	account, err := a.accountRepo.FindByEmail(ctx, email)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if account == nil {
		// Do not reveal whether the email exists.
		return nil
	}

	otp, err := utils.GenerateOtpCode(6)
	if err != nil {
		return utils.ErrDatabaseError
	}

	a.resetTokens.Set(otp, account.Email, 15*time.Minute)

	if err := a.mailService.SendMailToResetPassword(account.Email, otp); err != nil {
		log.Printf("Failed to send reset mail to %s: %v", account.Email, err)
	}

	return nil
}

func (a *AccountService) VerifyOtpToken(request request_models.RequestVerifyOtpToken) error {
	email, ok := a.resetTokens.Peek(request.Otp)
	if !ok || email != request.Email {
		return utils.ErrInvalidResetToken
	}
	return nil
}

func (a *AccountService) ResetPasswordWithOtp(ctx context.Context, request request_models.ResetPasswordRequest) error {

	email := a.resetTokens.Consume(request.Otp)
	if email == "" {
		return utils.ErrInvalidResetToken
	}

	account, err := a.accountRepo.FindByEmail(ctx, email)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if account == nil {
		return utils.ErrAccountNotFound
	}

	hashedPassword, err := utils.HashPassword(request.NewPassword)
	if err != nil {
		return utils.ErrDatabaseError
	}

	account.PasswordHash = hashedPassword
	if err := a.accountRepo.Update(ctx, account); err != nil {
		return utils.ErrDatabaseError
	}

	return nil
}
