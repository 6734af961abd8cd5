package main

import (
	"context"
	"database/sql"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"

	api "scef-chapters-backend/internal/api/http"
	"scef-chapters-backend/internal/config"
	"scef-chapters-backend/internal/jobs"
	"scef-chapters-backend/internal/logger"
	"scef-chapters-backend/internal/repository/postgres"
	"scef-chapters-backend/internal/scheduler"
	"scef-chapters-backend/internal/security"
	"scef-chapters-backend/internal/service"
	"scef-chapters-backend/internal/storage"
)

func main() {
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting SCEF chapters backend", "address", cfg.GetServerAddress())

	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()
	if err := db.Ping(); err != nil {
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established", "host", cfg.Database.Host, "database", cfg.Database.Database)

	store := postgres.NewStore(db)
	tokenManager := security.NewTokenManager(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry)

	evidenceStore, err := storage.NewMockEvidenceStorage(cfg.Storage.BaseURL, cfg.Storage.UploadDir)
	if err != nil {
		log.Fatalf("Failed to initialize evidence storage: %v", err)
	}

	emailSvc := service.NewEmailService(cfg.Email.APIKey, cfg.Email.FromEmail, cfg.Email.FromName)
	authSvc := service.NewAuthService(store.UserRepository, store.WalletRepository, tokenManager)
	chapterSvc := service.NewChapterService(
		store.ChapterRepository,
		store.JoinRequestRepository,
		store.ActivityRepository,
		store.UpgradeRequestRepository,
		store.UserRepository,
		emailSvc,
	)
	upgradeSvc := service.NewUpgradeService(store.UpgradeRequestRepository, store.ChapterRepository, store.UserRepository, emailSvc)
	membershipSvc := service.NewMembershipService(store.JoinRequestRepository, store.ChapterRepository)
	activitySvc := service.NewActivityService(store.ActivityRepository, store.ChapterRepository)
	adminSvc := service.NewAdminService(store.ChapterRepository, store.UpgradeRequestRepository, store.AuditLogRepository)
	walletSvc := service.NewWalletService(store.WalletRepository)

	router := api.NewRouter(api.RouterDeps{
		Auth:       api.NewAuthHandler(authSvc),
		Chapters:   api.NewChapterHandler(chapterSvc, upgradeSvc),
		Membership: api.NewMembershipHandler(membershipSvc),
		Activities: api.NewActivityHandler(activitySvc),
		Admin:      api.NewAdminHandler(adminSvc, chapterSvc, upgradeSvc),
		Wallet:     api.NewWalletHandler(walletSvc),
		Evidence:   api.NewEvidenceHandler(evidenceStore),
		Middleware: api.NewAuthMiddleware(tokenManager),
	})

	jobRunner := jobs.NewJobRunner(store.ChapterRepository, store.UpgradeRequestRepository, store.UserRepository, emailSvc, cfg)
	sched := scheduler.NewScheduler(jobRunner)
	sched.Start()
	defer sched.Stop()

	server := &http.Server{
		Addr:         cfg.GetServerAddress(),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	go func() {
		logger.Info("HTTP server listening", "address", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("HTTP server failed: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	logger.Info("Shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("Graceful shutdown failed", "error", err)
	}
}
