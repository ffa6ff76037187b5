package garden_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"izybotanic/internal/repositories"
	"izybotanic/internal/services"
)

var Module = fx.Provide(
	provideUserDocumentRepo, provideGardenService, provideAchievementsService)

func provideUserDocumentRepo(db *gorm.DB) repositories.UserDocumentRepository {
	return repositories.NewUserDocumentRepository(db)
}

func provideGardenService(documentRepo repositories.UserDocumentRepository) services.GardenServiceInterface {
	return services.NewGardenService(documentRepo)
}

func provideAchievementsService(documentRepo repositories.UserDocumentRepository) services.AchievementsServiceInterface {
	return services.NewAchievementsService(documentRepo)
}
