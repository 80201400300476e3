package routes

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"gorm.io/gorm"

	"grievance-backend/internal/adapters/http/handlers"
	"grievance-backend/internal/adapters/persistence/repositories"
	"grievance-backend/internal/config"
	"grievance-backend/internal/core/services"
)

// Setup configures all routes for the application
func Setup(app *fiber.App, db *gorm.DB, cfg *config.Config) {
	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	complaintRepo := repositories.NewComplaintRepository(db)

	// Initialize services
	authService := services.NewAuthService(userRepo, cfg)
	complaintService := services.NewComplaintService(complaintRepo, userRepo)
	dashboardService := services.NewDashboardService(db)
	reportService := services.NewReportService(db)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler()
	authHandler := handlers.NewAuthHandler(authService)
	complaintHandler := handlers.NewComplaintHandler(complaintService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)
	reportHandler := handlers.NewReportHandler(reportService)

	// Health
	app.Get("/", healthHandler.Root)
	app.Get("/health", healthHandler.HealthCheck)

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	// Auth
	app.Post("/signup", authHandler.Signup)
	app.Post("/login", authHandler.Login)

	// Complaints. Fixed segments are registered before the
	// /complaints/:userName wildcard so track/image/update/reopen
	// never get captured as a user name.
	app.Post("/complaints", complaintHandler.Submit)
	app.Get("/complaints", complaintHandler.ListAll)
	app.Get("/complaints/track/:complaintId", complaintHandler.Track)
	app.Get("/complaints/image/:complaintId", complaintHandler.GetImage)
	app.Post("/complaints/update/:complaintId", complaintHandler.UpdateStatus)
	app.Post("/complaints/reopen/:complaintId", complaintHandler.Reopen)
	app.Get("/complaints/:userName", complaintHandler.ListByUser)

	// Admin & reports
	app.Get("/admin/dashboard", dashboardHandler.Summary)
	app.Get("/reports/generate", reportHandler.Generate)

	// Fallback for unmatched routes
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": fmt.Sprintf("Route %s not found", c.OriginalURL()),
		})
	})
}
