package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/R3Claimers/InsiderJobs/auth"
	"github.com/R3Claimers/InsiderJobs/config"
	_ "github.com/R3Claimers/InsiderJobs/docs"
	"github.com/R3Claimers/InsiderJobs/handlers"
	"github.com/R3Claimers/InsiderJobs/location"
	"github.com/R3Claimers/InsiderJobs/mcp"
	"github.com/R3Claimers/InsiderJobs/metrics"
	"github.com/R3Claimers/InsiderJobs/resume"
	"github.com/R3Claimers/InsiderJobs/storage"
	"github.com/R3Claimers/InsiderJobs/tools"
)

const version = "1.0.0"

// @title InsiderJobs API
// @version 1.0
// @description Job board backend with city autocomplete and resume skill extraction.
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.email support@insiderjobs.dev

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:5000
// @BasePath /api

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Load .env file if present (for local development)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Configuration error: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Configuration error: %v", err)
	}

	if cfg.Debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx := context.Background()

	log.Println("Initializing Firestore client...")
	firestoreClient, err := storage.NewFirestoreClient(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to initialize Firestore client: %v", err)
	}
	defer firestoreClient.Close()
	log.Println("Firestore client initialized successfully")

	log.Println("Initializing Cloud Storage client...")
	storageClient, err := storage.NewCloudStorageClient(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to initialize Cloud Storage client: %v", err)
	}
	defer storageClient.Close()
	log.Println("Cloud Storage client initialized successfully")

	metricsManager := metrics.NewManager()

	// City search: GeoNames behind a degrading service
	geoNames := location.NewGeoNamesClient(cfg)
	locationService := location.NewService(geoNames, cfg.GeoNamesTimeout, metricsManager)
	extractor := resume.NewExtractor(metricsManager)

	jwtService := auth.NewJWTService(cfg)
	googleAuthService := auth.NewGoogleAuthService(cfg)

	routes := &handlers.Router{
		JWT:       jwtService,
		Company:   handlers.NewCompanyHandler(firestoreClient, storageClient, jwtService, cfg.MaxUploadBytes(), cfg.FrontendURL),
		Jobs:      handlers.NewJobsHandler(firestoreClient),
		Users:     handlers.NewUserHandler(firestoreClient, storageClient, jwtService, googleAuthService, extractor, cfg.MaxUploadBytes()),
		Locations: handlers.NewLocationHandler(locationService),
		Tokens:    handlers.NewTokenHandler(jwtService),
	}
	healthHandler := handlers.NewHealthHandler(version)

	// Create MCP server with tool registry
	toolRegistry := tools.NewToolRegistry()
	toolRegistry.Register(tools.NewSearchLocationsTool(locationService))
	toolRegistry.Register(tools.NewMatchResumeSkillsTool())
	toolRegistry.Register(tools.NewListJobsTool(firestoreClient))
	mcpServer := mcp.NewServer(toolRegistry, version)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(gin.Logger())
	router.Use(metricsManager.GinMiddleware())

	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.Origins(),
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "token"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(metricsManager.Handler()))
	router.GET("/health", healthHandler.Health)
	routes.RegisterRootRoutes(router)

	api := router.Group("/api")
	{
		api.GET("", healthHandler.Root)
		routes.RegisterRoutes(api)

		// MCP endpoints for external AI agents
		mcpServer.RegisterRoutes(api)
	}

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  cfg.HTTPTimeout(),
		WriteTimeout: 2 * cfg.HTTPTimeout(),
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		log.Printf("Starting server on port %s...", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited gracefully")
}
