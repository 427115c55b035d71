package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/skillsmatrix/backend/internal/domain/entities"
	"github.com/skillsmatrix/backend/internal/handlers/dto"
	httphandlers "github.com/skillsmatrix/backend/internal/handlers/http"
	"github.com/skillsmatrix/backend/internal/handlers/middleware"
	"github.com/skillsmatrix/backend/internal/infrastructure/config"
	"github.com/skillsmatrix/backend/internal/infrastructure/events"
	"github.com/skillsmatrix/backend/internal/infrastructure/logging"
	"github.com/skillsmatrix/backend/internal/infrastructure/persistence/gormdb"
	"github.com/skillsmatrix/backend/internal/seed"
	"github.com/skillsmatrix/backend/internal/services"
)

func main() {
	// Carregar configurações
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	// Inicializar logger
	logger := logging.NewSlogLogger(cfg.Logging.Level)
	logger.Info("starting skillsmatrix backend",
		"env", cfg.Env,
		"version", "dev",
	)

	// Conectar ao banco de dados
	db, err := gormdb.NewDatabaseConnection(&cfg.Database, logger)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		log.Fatal(err)
	}

	// Inicializar repositories
	userRepo := gormdb.NewUserRepository(db)
	collaboratorRepo := gormdb.NewCollaboratorRepository(db)
	moduleRepo := gormdb.NewModuleRepository(db)
	skillClaimRepo := gormdb.NewSkillClaimRepository(db)
	assessmentRepo := gormdb.NewAssessmentRepository(db)
	careerPlanRepo := gormdb.NewCareerPlanRepository(db)
	auditRepo := gormdb.NewAuditLogRepository(db)
	uow := gormdb.NewUnitOfWork(db)

	// Seed dos dados mínimos
	if err := seed.Run(context.Background(), userRepo, moduleRepo, cfg.Seed, logger); err != nil {
		logger.Error("failed to seed default data", "error", err)
		log.Fatal(err)
	}

	// Hub de eventos para os painéis conectados
	hub := events.NewHub(logger)
	go hub.Run()

	jwtExpiresIn, err := time.ParseDuration(cfg.JWT.ExpiresIn)
	if err != nil {
		logger.Warn("invalid JWT_EXPIRES_IN, using 12h", "value", cfg.JWT.ExpiresIn)
		jwtExpiresIn = 12 * time.Hour
	}

	// Inicializar services
	auditService := services.NewAuditService(auditRepo, hub, logger)
	authService := services.NewAuthService(userRepo, logger, cfg.JWT.Secret, jwtExpiresIn)
	collaboratorService := services.NewCollaboratorService(collaboratorRepo, userRepo, uow, auditService, logger)
	moduleService := services.NewModuleService(moduleRepo, auditService, logger)
	skillClaimService := services.NewSkillClaimService(skillClaimRepo, collaboratorRepo, moduleRepo, auditService, logger)
	assessmentService := services.NewAssessmentService(assessmentRepo, collaboratorRepo, moduleRepo, auditService, logger)
	careerPlanService := services.NewCareerPlanService(careerPlanRepo, collaboratorRepo, moduleRepo, auditService, logger)
	dashboardService := services.NewDashboardService(collaboratorRepo, moduleRepo, skillClaimRepo, assessmentRepo, logger)
	reportService := services.NewReportService(collaboratorRepo, moduleRepo, skillClaimRepo, assessmentRepo, logger)

	// Inicializar handlers
	authHandler := httphandlers.NewAuthHandler(authService, collaboratorService)
	collaboratorHandler := httphandlers.NewCollaboratorHandler(collaboratorService)
	moduleHandler := httphandlers.NewModuleHandler(moduleService)
	skillClaimHandler := httphandlers.NewSkillClaimHandler(skillClaimService, collaboratorService)
	assessmentHandler := httphandlers.NewAssessmentHandler(assessmentService)
	careerPlanHandler := httphandlers.NewCareerPlanHandler(careerPlanService)
	dashboardHandler := httphandlers.NewDashboardHandler(dashboardService)
	reportHandler := httphandlers.NewReportHandler(reportService)
	auditHandler := httphandlers.NewAuditHandler(auditService)

	// Setup Gin
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	dto.RegisterValidators()

	router := gin.Default()
	router.Use(middleware.BaseURL(cfg.Server.BaseURL))
	router.Use(middleware.CORS(cfg.CORS.AllowedOrigins))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
			"env":    cfg.Env,
		})
	})

	authenticate := middleware.Authenticate(cfg.JWT.Secret)
	masterOnly := middleware.RequireRoles(entities.RoleMaster)

	api := router.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/login", authHandler.Login)
			auth.POST("/change-password", authenticate, authHandler.ChangePassword)
		}

		api.GET("/users/me", authenticate, authHandler.Me)

		collaborators := api.Group("/collaborators", authenticate)
		{
			collaborators.GET("", masterOnly, collaboratorHandler.List)
			collaborators.POST("", masterOnly, collaboratorHandler.Create)
			collaborators.GET("/:id", masterOnly, collaboratorHandler.Get)
			collaborators.PUT("/:id", masterOnly, collaboratorHandler.Update)
			collaborators.DELETE("/:id", masterOnly, collaboratorHandler.Delete)
			collaborators.POST("/:id/reset-access", masterOnly, collaboratorHandler.ResetAccess)
			collaborators.GET("/:id/coverage", masterOnly, reportHandler.Coverage)
		}

		modules := api.Group("/modules", authenticate)
		{
			modules.GET("", moduleHandler.List)
			modules.GET("/:id", moduleHandler.Get)
			modules.POST("", masterOnly, moduleHandler.Create)
			modules.PUT("/:id", masterOnly, moduleHandler.Update)
			modules.DELETE("/:id", masterOnly, moduleHandler.Delete)
		}

		skillClaims := api.Group("/skill-claims", authenticate)
		{
			skillClaims.GET("", skillClaimHandler.List)
			skillClaims.POST("", skillClaimHandler.Upsert)
			skillClaims.PATCH("/:id", skillClaimHandler.Update)
		}

		assessments := api.Group("/assessments", authenticate, masterOnly)
		{
			assessments.GET("", assessmentHandler.List)
			assessments.POST("", assessmentHandler.Upsert)
		}

		careerPlans := api.Group("/career-plans", authenticate, masterOnly)
		{
			careerPlans.GET("", careerPlanHandler.List)
			careerPlans.POST("", careerPlanHandler.Create)
			careerPlans.GET("/:id", careerPlanHandler.Get)
			careerPlans.PATCH("/:id", careerPlanHandler.Update)
			careerPlans.DELETE("/:id", careerPlanHandler.Delete)
		}

		dashboard := api.Group("/dashboard", authenticate, masterOnly)
		{
			dashboard.GET("/kpis", dashboardHandler.KPIs)
			dashboard.GET("/trends", dashboardHandler.Trends)
		}

		api.GET("/audit", authenticate, masterOnly, auditHandler.List)
		api.GET("/ws", authenticate, masterOnly, hub.ServeWS)
	}

	// HTTP Server
	srv := &http.Server{
		Addr:              cfg.Server.Host + ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	go func() {
		logger.Info("server starting",
			"host", cfg.Server.Host,
			"port", cfg.Server.Port,
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server failed", "error", err)
			log.Fatal(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}

	logger.Info("server exited")
}
