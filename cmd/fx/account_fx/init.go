package account_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"izybotanic/internal/repositories"
	"izybotanic/internal/services"
	mem "izybotanic/pkg/memcache"
)

var Module = fx.Provide(
	provideAccountRepo, provideAccountService)

func provideAccountRepo(db *gorm.DB) repositories.AccountRepository {
	return repositories.NewAccountRepository(db)
}

func provideAccountService(
	accountRepo repositories.AccountRepository,
	documentRepo repositories.UserDocumentRepository,
	mailService services.IMailService,
	resetTokens mem.ResetTokenStore,
) services.AccountServiceInterface {
	return services.NewAccountService(accountRepo, documentRepo, mailService, resetTokens)
}
