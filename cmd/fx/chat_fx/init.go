package chat_fx

import (
	"go.uber.org/fx"

	"izybotanic/internal/flows"
	"izybotanic/internal/repositories"
	"izybotanic/internal/services"
)

var Module = fx.Provide(
	provideChatService)

func provideChatService(documentRepo repositories.UserDocumentRepository, aiFlows flows.Flows) services.ChatServiceInterface {
	return services.NewChatService(documentRepo, aiFlows)
}
