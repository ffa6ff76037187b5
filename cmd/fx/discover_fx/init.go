package discover_fx

import (
	"go.uber.org/fx"

	"izybotanic/internal/flows"
	"izybotanic/internal/repositories"
	"izybotanic/internal/services"
)

var Module = fx.Provide(
	provideDiscoverService)

func provideDiscoverService(documentRepo repositories.UserDocumentRepository, aiFlows flows.Flows) services.DiscoverServiceInterface {
	return services.NewDiscoverService(documentRepo, aiFlows)
}
