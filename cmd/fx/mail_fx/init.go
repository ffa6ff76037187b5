package mail_fx

import (
	"log"

	"go.uber.org/fx"

	"izybotanic/internal/services"
)

var Module = fx.Provide(
	provideMailService)

func provideMailService() services.IMailService {
	mailService, err := services.NewSMTPMailService(services.SMTPConfigFromEnv())
	if err != nil {
		log.Fatalf("Failed to create mail service: %v", err)
	}
	return mailService
}
