package main

import (
	"log"

	"court_track_app_go/config"
	"court_track_app_go/db"
	"court_track_app_go/handlers"
	"court_track_app_go/models"
	"court_track_app_go/services"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	if err := db.Initialize(cfg.DBPath, cfg.Environment); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	// Run migrations
	if err := db.AutoMigrate(
		&models.Department{},
		&models.SubDepartment{},
		&models.Case{},
		&models.MultiSubCase{},
		&models.EmailReminder{},
		&models.Admin{},
	); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Baseline data
	if err := services.SeedDepartments(db.DB); err != nil {
		log.Printf("Failed to seed departments: %v", err)
	}
	if err := services.SeedAdminFromEnv(db.DB); err != nil {
		log.Printf("Failed to seed admin: %v", err)
	}
	if cfg.Environment == "development" {
		if err := services.GenerateTestCases(db.DB); err != nil {
			log.Printf("Failed to generate test cases: %v", err)
		}
	}

	// Mail transport strategy is chosen once here and injected; handlers
	// never consult credentials at call time
	mailer := services.NewMailer(cfg)
	log.Printf("[EMAIL] Mail transport mode: %s", cfg.EmailMode)

	// Create Echo instance
	e := echo.New()

	// Middleware
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: cfg.AllowedOrigins,
	}))

	// Make config and mailer available to handlers
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set("config", cfg)
			c.Set("mailer", mailer)
			return next(c)
		}
	})

	// Health check
	e.GET("/", handlers.HealthHandler)

	// Cases
	e.GET("/cases", handlers.GetCasesHandler)
	e.GET("/cases/export", handlers.ExportCasesHandler)
	e.GET("/cases/:input", handlers.GetCaseHandler)
	e.POST("/cases", handlers.CreateCaseHandler)
	e.PUT("/cases/:id", handlers.UpdateCaseHandler)
	e.DELETE("/cases/:id", handlers.DeleteCaseHandler)
	e.GET("/cases/:id/multi-sub", handlers.GetCaseMultiSubHandler)

	// Departments
	e.GET("/departments", handlers.GetDepartmentsHandler)
	e.GET("/departments/:number", handlers.GetDepartmentHandler)
	e.POST("/departments", handlers.CreateDepartmentHandler)
	e.POST("/seed-data", handlers.SeedDataHandler)

	// Sub-departments
	e.GET("/sub-departments", handlers.GetSubDepartmentsHandler)
	e.GET("/sub-departments/:id", handlers.GetSubDepartmentHandler)
	e.POST("/sub-departments", handlers.CreateSubDepartmentHandler)
	e.PUT("/sub-departments/:id", handlers.UpdateSubDepartmentHandler)
	e.DELETE("/sub-departments/:id", handlers.DeleteSubDepartmentHandler)

	// Email reminders
	e.POST("/email-reminders", handlers.SendReminderHandler)
	e.GET("/email-reminders/case/:caseId", handlers.GetCaseRemindersHandler)

	// General-purpose sending path
	e.POST("/send-email", handlers.SendEmailHandler)

	// Statistics
	e.GET("/statistics", handlers.GetStatisticsHandler)

	// Admin
	e.POST("/admin/login", handlers.AdminLoginHandler)

	// Start server
	log.Printf("Server starting on port %s", cfg.ServerPort)
	if err := e.Start(":" + cfg.ServerPort); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
