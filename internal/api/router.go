package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/clinicos/console/internal/api/handler"
	"github.com/clinicos/console/internal/api/middleware"
	"github.com/clinicos/console/internal/api/view"
	"github.com/clinicos/console/internal/core/service"
	"github.com/clinicos/console/internal/infrastructure/backend"
	"github.com/clinicos/console/internal/infrastructure/config"
	mongoaudit "github.com/clinicos/console/internal/infrastructure/db/mongo"
	redissession "github.com/clinicos/console/internal/infrastructure/db/redis"
	"github.com/clinicos/console/pkg/logger"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(cfg *config.Config, rdb *redis.Client, db *mongo.Database, log zerolog.Logger) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true

	renderer, err := view.NewRenderer()
	if err != nil {
		return nil, err
	}
	e.Renderer = renderer
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("clinicos_console"))

	// --- Dependencies ---
	backendClient := backend.New(cfg.Backend.URL, cfg.Backend.Timeout, logger.For("backend"))
	sessionRepo := redissession.NewSessionRepository(rdb)
	auditRepo := mongoaudit.NewAuditRepository(db)

	authService := service.NewAuthService(backendClient, sessionRepo, auditRepo, cfg.SessionSecret, cfg.SessionTTL, logger.For("auth"))
	directoryService := service.NewDirectoryService(backendClient, auditRepo, logger.For("directory"))
	automationService := service.NewAutomationService(backendClient, auditRepo, logger.For("automation"))
	activityService := service.NewActivityService(backendClient, auditRepo)
	dashboardService := service.NewDashboardService(backendClient)

	authHandler := handler.NewAuthHandler(authService, cfg.SessionTTL)
	dashboardHandler := handler.NewDashboardHandler(dashboardService, cfg.Backend.URL)
	clientsHandler := handler.NewClientsHandler(directoryService)
	workflowsHandler := handler.NewWorkflowsHandler(automationService, log)
	copyHandler := handler.NewCopyHandler(automationService)
	activityHandler := handler.NewActivityHandler(activityService, log)
	settingsHandler := handler.NewSettingsHandler(backendClient)
	landingHandler := handler.NewLandingHandler()
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(rdb, db, backendClient)

	// --- Public routes ---
	e.GET("/landing", landingHandler.Page)
	e.GET("/login", authHandler.ShowLogin)
	e.POST("/login", authHandler.Login)
	e.POST("/logout", authHandler.Logout)

	e.GET("/health", healthHandler.Liveness)          // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	// --- Authenticated console ---
	console := e.Group("", middleware.RequireSession(authService))
	console.GET("/", dashboardHandler.Dashboard)
	console.GET("/clients", clientsHandler.List)
	console.GET("/clients/:id", clientsHandler.Detail)
	console.POST("/clients/:id/classify", clientsHandler.Classify)
	console.GET("/workflows", workflowsHandler.Page)
	console.POST("/workflows/:id/run", workflowsHandler.Run)
	// Scheduling future runs is an admin action; running now is not.
	console.POST("/workflows/:id/schedule", workflowsHandler.Schedule, middleware.RequireRole("admin"))
	console.GET("/copy", copyHandler.Page)
	console.POST("/copy/generate", copyHandler.Generate)
	console.GET("/activity", activityHandler.Page)
	console.GET("/settings", settingsHandler.Page)

	return e, nil
}
