package controllers_fx

import (
	"go.uber.org/fx"

	"izybotanic/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewAccountController),
	fx.Provide(controllers.NewSessionController),
	fx.Provide(controllers.NewGardenController),
	fx.Provide(controllers.NewJournalController),
	fx.Provide(controllers.NewChatController),
	fx.Provide(controllers.NewDiscoverController),
	fx.Provide(controllers.NewAchievementsController),
	fx.Provide(controllers.NewAnalyzeController))
