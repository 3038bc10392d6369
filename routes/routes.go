package routes

import (
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"mailspark/config"
	controller "mailspark/controllers"
	"mailspark/middleware"
	"mailspark/repository"
	"mailspark/utils"
)

// SetupRoutes wires the auth surface and the versioned API.
func SetupRoutes(app *fiber.App, db *gorm.DB, appLogger *logrus.Logger, generator *utils.ContentGenerator) {
	// Auth routes (public except logout/me)
	auth := app.Group("/auth", logger.New(logger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))
	auth.Post("/register", controller.Register)
	auth.Post("/login", controller.Login)
	auth.Post("/refresh", controller.RefreshToken)

	protectedAuth := auth.Group("", middleware.Protected())
	protectedAuth.Post("/logout", controller.Logout)
	protectedAuth.Get("/me", controller.GetCurrentUser)

	// Controllers
	campaignRepo := repository.NewCampaignRepository(db, appLogger, config.AppConfig.OwnerScopedReads)
	campaignController := controller.NewCampaignController(campaignRepo, log.New(os.Stdout, "CAMPAIGN: ", log.LstdFlags))
	dashboardController := controller.NewDashboardController(campaignRepo, log.New(os.Stdout, "DASHBOARD: ", log.LstdFlags))
	generateController := controller.NewGenerateController(generator, log.New(os.Stdout, "GENERATE: ", log.LstdFlags))

	// API group with versioning and protection
	api := app.Group("/api/v1", middleware.Protected(), logger.New(logger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))

	// Campaign routes
	campaign := api.Group("/campaigns")
	campaign.Post("/", campaignController.CreateCampaign)
	campaign.Get("/", campaignController.GetCampaigns)
	campaign.Get("/segments", campaignController.GetSegmentOptions)
	campaign.Get("/:id", campaignController.GetCampaign)
	campaign.Put("/:id", campaignController.UpdateCampaign)
	campaign.Delete("/:id", campaignController.DeleteCampaign)
	campaign.Patch("/:id/stats", campaignController.UpdateCampaignStats)

	// Dashboard routes
	dashboard := api.Group("/dashboard")
	dashboard.Get("/stats", dashboardController.GetDashboardStats)
	dashboard.Get("/metrics", dashboardController.GetEmailMetricsOverTime)
	dashboard.Get("/recent-campaigns", dashboardController.GetRecentCampaigns)

	// Content generation, rate limited per user
	api.Post("/generate", middleware.GenerateRateLimiter(), generateController.GenerateContent)

	appLogger.Info("Routes initialized successfully")
}
