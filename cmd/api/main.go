package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"kodeksa-backend/config"
	_ "kodeksa-backend/docs" // Important for Swagger
	v1 "kodeksa-backend/internal/delivery/http/v1"
	"kodeksa-backend/internal/repository/postgres"
	"kodeksa-backend/internal/usecase"
	"kodeksa-backend/pkg/database"
	"kodeksa-backend/pkg/logger"
	"kodeksa-backend/pkg/notify"
	"kodeksa-backend/pkg/redis"
	"kodeksa-backend/pkg/storage"
)

// @title           Kodeksa Backend API
// @version         1.0
// @description     Backend for the Kodeksa portfolio and recruiting platform.
// @host            localhost:8080
// @BasePath        /api
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting kodeksa backend", "port", cfg.Port)

	// 3. Setup Database
	dbPool, err := database.NewPostgresConnection(cfg.DBUrl)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	// 4. Setup Redis (rate limiting falls back to in-memory without it)
	if err := redis.Initialize(redis.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword}); err != nil {
		logger.Log.Warn("Redis unavailable, rate limiting uses in-memory fallback", "error", err)
	}

	// 5. Setup Object Storage (CV uploads)
	var uploader storage.Uploader
	if cfg.S3Bucket != "" {
		s3Uploader, err := storage.NewS3Uploader(context.Background(), storage.Config{
			AccessKeyID:     cfg.S3AccessKeyID,
			SecretAccessKey: cfg.S3SecretAccessKey,
			Region:          cfg.S3Region,
			Bucket:          cfg.S3Bucket,
			PublicBaseURL:   cfg.S3PublicBaseURL,
		})
		if err != nil {
			logger.Log.Error("Failed to configure object storage", "error", err)
			os.Exit(1)
		}
		uploader = s3Uploader
	} else {
		logger.Log.Warn("Object storage not configured - CV uploads will be unavailable")
	}

	// 6. Setup Notification Client
	notifier := notify.NewClient(cfg.NotifyBaseURL, cfg.NotifyAPIKey,
		time.Duration(cfg.NotifyTimeoutMs)*time.Millisecond)
	if !notifier.IsConfigured() {
		logger.Log.Warn("Notification service not configured - user creation events will not be forwarded")
	}

	// 7. Setup Repositories
	vacancyRepo := postgres.NewVacancyRepository(dbPool)
	applicationRepo := postgres.NewApplicationRepository(dbPool)
	userRepo := postgres.NewUserRepository(dbPool)
	cardConfigRepo := postgres.NewCardConfigurationRepository(dbPool)
	curriculumRepo := postgres.NewCurriculumRepository(dbPool)
	skillRepo := postgres.NewSkillRepository(dbPool)
	workExpRepo := postgres.NewWorkExperienceRepository(dbPool)
	blogRepo := postgres.NewBlogRepository(dbPool)
	solutionRepo := postgres.NewSolutionRepository(dbPool)

	// 8. Setup UseCases (card config and curriculum before user, which
	// bootstraps both on registration)
	vacancyUC := usecase.NewVacancyUsecase(vacancyRepo)
	applicationUC := usecase.NewApplicationUsecase(applicationRepo, vacancyRepo, uploader, cfg.CVUploadFolder)
	cardConfigUC := usecase.NewCardConfigurationUsecase(cardConfigRepo, userRepo)
	curriculumUC := usecase.NewCurriculumUsecase(curriculumRepo, userRepo, skillRepo, workExpRepo)
	userUC := usecase.NewUserUsecase(userRepo, cardConfigUC, curriculumUC, notifier)
	skillUC := usecase.NewSkillUsecase(skillRepo, userRepo)
	workExpUC := usecase.NewWorkExperienceUsecase(workExpRepo, userRepo)
	blogUC := usecase.NewBlogUsecase(blogRepo, userRepo)
	solutionUC := usecase.NewSolutionUsecase(solutionRepo)

	// 9. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		VacancyUC:     vacancyUC,
		ApplicationUC: applicationUC,
		UserUC:        userUC,
		CardConfigUC:  cardConfigUC,
		CurriculumUC:  curriculumUC,
		SkillUC:       skillUC,
		WorkExpUC:     workExpUC,
		BlogUC:        blogUC,
		SolutionUC:    solutionUC,
		Config:        cfg,
	})

	// 10. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
