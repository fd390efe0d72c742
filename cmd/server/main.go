package main

import (
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/datazhang-hub/portfolio/internal/handlers"
	"github.com/datazhang-hub/portfolio/internal/middleware"
	"github.com/datazhang-hub/portfolio/internal/repositories"
	"github.com/datazhang-hub/portfolio/internal/services"
	"github.com/datazhang-hub/portfolio/pkg/config"
	"github.com/datazhang-hub/portfolio/pkg/database"
	"github.com/datazhang-hub/portfolio/pkg/logger"
	"github.com/gin-gonic/gin"
)

func main() {
	// Set Gin mode
	gin.SetMode(gin.ReleaseMode)

	// Load configuration
	if err := config.Load(); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init()

	// Initialize database
	if err := database.Init(); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer database.Close()

	// Initialize dependencies
	schemaRepo := repositories.NewSchemaRepository(database.DB)
	schemaService := services.NewSchemaService(schemaRepo)
	projectRepo := repositories.NewProjectRepository(database.DB)
	projectService := services.NewProjectService(projectRepo, schemaService)
	contactRepo := repositories.NewContactRepository(database.DB)
	contactService := services.NewContactService(contactRepo)
	seedService := services.NewSeedService(projectRepo)
	exportService := services.NewExportService(projectService, contactService)

	// Bring the projects table up to the current column set before serving.
	// Drift can still appear later (restored backups, other processes), which
	// the per-write repair-retry protocol covers.
	if added, err := schemaService.EnsureSchema(); err != nil {
		log.Fatalf("Failed to ensure database schema: %v", err)
	} else if len(added) > 0 {
		logger.Infof("Startup schema repair added columns: %v", added)
	}

	// Initialize router
	router := gin.Default()

	// Apply middleware
	router.Use(middleware.SessionMiddleware())

	// Setup routes
	setupRoutes(router, projectService, contactService, schemaService, seedService, exportService)

	// Setup server
	server := &http.Server{
		Addr:         ":" + config.AppConfig.Server.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(config.AppConfig.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(config.AppConfig.Server.WriteTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		logger.Infof("Server starting on :%s", config.AppConfig.Server.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")
	logger.Info("Server stopped")
}

func setupRoutes(router *gin.Engine, projectService *services.ProjectService, contactService *services.ContactService,
	schemaService *services.SchemaService, seedService *services.SeedService, exportService *services.ExportService) {
	// Initialize handlers
	projectHandler := handlers.NewProjectHandler(projectService)
	contactHandler := handlers.NewContactHandler(contactService)
	adminHandler := handlers.NewAdminHandler(schemaService, seedService, exportService)
	authHandler := handlers.NewAuthHandler()
	healthHandler := handlers.NewHealthHandler()

	// Auth routes
	router.POST("/api/auth/login", authHandler.Login)
	router.GET("/api/auth/logout", authHandler.Logout)

	// Public routes
	router.GET("/api/projects", projectHandler.ListProjects)
	router.GET("/api/projects/featured", projectHandler.GetFeaturedProjects)
	router.GET("/api/projects/tags", projectHandler.GetTags)
	router.GET("/api/projects/industries", projectHandler.GetIndustries)
	router.GET("/api/projects/analysis-depths", projectHandler.GetAnalysisDepths)
	router.GET("/api/projects/:id", projectHandler.GetProject)
	router.POST("/api/contacts", contactHandler.CreateContact)

	// Protected routes
	admin := router.Group("/api")
	admin.Use(middleware.AdminRequired())
	{
		admin.GET("/admin/projects", projectHandler.AdminListProjects)
		admin.POST("/projects", projectHandler.CreateProject)
		admin.PUT("/projects/batch-status", projectHandler.SetProjectStatusBatch)
		admin.POST("/projects/set-all-featured", projectHandler.SetAllFeatured)
		admin.PUT("/projects/:id", projectHandler.UpdateProject)
		admin.DELETE("/projects/:id", projectHandler.DeleteProject)
		admin.PUT("/projects/:id/status", projectHandler.SetProjectStatus)

		admin.GET("/contacts", contactHandler.ListContacts)
		admin.PUT("/contacts/:id/status", contactHandler.UpdateContactStatus)

		admin.POST("/admin/fix-database", adminHandler.FixDatabase)
		admin.GET("/admin/db-status", adminHandler.DBStatus)
		admin.POST("/admin/init", adminHandler.InitDatabase)
		admin.GET("/admin/export/projects", adminHandler.ExportProjects)
		admin.GET("/admin/export/contacts", adminHandler.ExportContacts)
	}

	// Health check endpoint
	router.GET("/health", healthHandler.HealthCheck)
}
