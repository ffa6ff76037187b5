package session_fx

import (
	"go.uber.org/fx"

	"izybotanic/internal/repositories"
	"izybotanic/internal/services"
)

var Module = fx.Provide(
	provideSessionService)

func provideSessionService(
	accountRepo repositories.AccountRepository,
	documentRepo repositories.UserDocumentRepository,
) services.SessionServiceInterface {
	return services.NewSessionService(accountRepo, documentRepo)
}
