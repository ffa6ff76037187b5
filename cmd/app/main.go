package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"izybotanic/cmd/fx/account_fx"
	"izybotanic/cmd/fx/chat_fx"
	"izybotanic/cmd/fx/controllers_fx"
	"izybotanic/cmd/fx/db_fx"
	"izybotanic/cmd/fx/discover_fx"
	"izybotanic/cmd/fx/flows_fx"
	"izybotanic/cmd/fx/garden_fx"
	"izybotanic/cmd/fx/mail_fx"
	"izybotanic/cmd/fx/memcache_fx"
	"izybotanic/cmd/fx/session_fx"
	"izybotanic/internal/api/controllers"
	"izybotanic/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	app := fx.New(
		db_fx.Module,
		flows_fx.Module,
		mail_fx.Module,
		memcache_fx.Module,
		account_fx.Module,
		session_fx.Module,
		garden_fx.Module,
		chat_fx.Module,
		discover_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				if port == "" {
					port = "8080"
				}
				log.Printf("Starting HTTP server at :%s", port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	accountController *controllers.AccountController,
	sessionController *controllers.SessionController,
	gardenController *controllers.GardenController,
	journalController *controllers.JournalController,
	chatController *controllers.ChatController,
	discoverController *controllers.DiscoverController,
	achievementsController *controllers.AchievementsController,
	analyzeController *controllers.AnalyzeController) *gin.Engine {

	r := gin.Default()
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORSMiddleware())

	RegisterRoutes(r,
		accountController,
		sessionController,
		gardenController,
		journalController,
		chatController,
		discoverController,
		achievementsController,
		analyzeController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	accountController *controllers.AccountController,
	sessionController *controllers.SessionController,
	gardenController *controllers.GardenController,
	journalController *controllers.JournalController,
	chatController *controllers.ChatController,
	discoverController *controllers.DiscoverController,
	achievementsController *controllers.AchievementsController,
	analyzeController *controllers.AnalyzeController) {

	accounts := r.Group("/accounts")
	accounts.POST("/register", accountController.Register)
	accounts.POST("/login", accountController.Login)
	accounts.POST("/forgot-password", accountController.ForgotPassword)
	accounts.POST("/verify-otp", accountController.VerifyOtpToken)
	accounts.POST("/reset-password", accountController.ResetPasswordWithOtp)

	authed := r.Group("/")
	authed.Use(middleware.JWTAuthMiddleware())

	authed.GET("/session", sessionController.GetSession)
	authed.DELETE("/session", sessionController.Logout)
	authed.PUT("/session/user", sessionController.UpdateUser)
	authed.PUT("/session/profile", sessionController.UpdateProfile)

	authed.GET("/plants", gardenController.ListPlants)
	authed.POST("/plants", gardenController.AddPlant)
	authed.GET("/plants/:id", gardenController.GetPlant)
	authed.DELETE("/plants/:id", gardenController.DeletePlant)
	authed.GET("/plants/:id/care-plan", gardenController.GetCarePlan)

	authed.GET("/journal", journalController.ListEntries)
	authed.POST("/journal", journalController.AddEntry)

	authed.GET("/chat/history", chatController.History)
	authed.POST("/chat", chatController.SendMessage)

	authed.POST("/discover/suggestions", discoverController.Suggestions)
	authed.GET("/dashboard/tip", discoverController.SeasonalTip)

	authed.GET("/achievements", achievementsController.List)

	authed.POST("/analyze-plant", analyzeController.AnalyzePlant)
}
