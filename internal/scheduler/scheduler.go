package scheduler

import (
	"time"

	"github.com/robfig/cron/v3"

	"scef-chapters-backend/internal/jobs"
	"scef-chapters-backend/internal/logger"
)

// Scheduler manages cron job scheduling
type Scheduler struct {
	cron *cron.Cron
	jobs *jobs.JobRunner
}

// NewScheduler creates a new scheduler with the provided job runner
func NewScheduler(jobRunner *jobs.JobRunner) *Scheduler {
	c := cron.New(
		cron.WithLocation(time.UTC),
		cron.WithSeconds(),
	)

	s := &Scheduler{
		cron: c,
		jobs: jobRunner,
	}

	s.registerJobs()
	return s
}

func (s *Scheduler) registerJobs() {
	cfg := s.jobs.Config().Scheduler

	if _, err := s.cron.AddFunc(cfg.SendReviewQueueDigest, s.jobs.SendReviewQueueDigest); err != nil {
		logger.Error("Failed to register SendReviewQueueDigest job", "error", err)
	}
	if _, err := s.cron.AddFunc(cfg.SendStaleUpgradeReminders, s.jobs.SendStaleUpgradeReminders); err != nil {
		logger.Error("Failed to register SendStaleUpgradeReminders job", "error", err)
	}
}

// Start begins running scheduled jobs
func (s *Scheduler) Start() {
	logger.Info("Starting scheduler")
	s.cron.Start()
}

// Stop halts the scheduler and waits for running jobs to finish
func (s *Scheduler) Stop() {
	logger.Info("Stopping scheduler")
	ctx := s.cron.Stop()
	<-ctx.Done()
}
