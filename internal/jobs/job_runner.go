package jobs

import (
	"scef-chapters-backend/internal/config"
	"scef-chapters-backend/internal/logger"
	"scef-chapters-backend/internal/repository"
	"scef-chapters-backend/internal/service"
)

// JobRunner coordinates all scheduled jobs
type JobRunner struct {
	chapterRepo repository.ChapterRepository
	upgradeRepo repository.UpgradeRequestRepository
	userRepo    repository.UserRepository
	emailSvc    service.EmailService
	config      *config.Config
}

func NewJobRunner(
	chapterRepo repository.ChapterRepository,
	upgradeRepo repository.UpgradeRequestRepository,
	userRepo repository.UserRepository,
	emailSvc service.EmailService,
	cfg *config.Config,
) *JobRunner {
	return &JobRunner{
		chapterRepo: chapterRepo,
		upgradeRepo: upgradeRepo,
		userRepo:    userRepo,
		emailSvc:    emailSvc,
		config:      cfg,
	}
}

func (jr *JobRunner) Config() *config.Config {
	return jr.config
}

// runWithRecovery wraps job execution with panic recovery
func (jr *JobRunner) runWithRecovery(jobName string, jobFunc func()) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Job panicked", "job", jobName, "panic", r)
		}
	}()

	logger.Info("Starting job", "job", jobName)
	jobFunc()
	logger.Info("Job completed", "job", jobName)
}
