package jobs

import (
	"context"
	"fmt"
	"strings"
	"time"

	"scef-chapters-backend/internal/logger"
)

// SendReviewQueueDigest emails every admin a summary of the pending
// review queues so chapter applications do not sit unnoticed.
func (jr *JobRunner) SendReviewQueueDigest() {
	jr.runWithRecovery("SendReviewQueueDigest", func() {
		ctx := context.Background()

		chapters, err := jr.chapterRepo.ListPending(ctx)
		if err != nil {
			logger.Error("Failed to list pending chapters", "error", err)
			return
		}
		upgrades, err := jr.upgradeRepo.ListPending(ctx)
		if err != nil {
			logger.Error("Failed to list pending upgrades", "error", err)
			return
		}
		if len(chapters) == 0 && len(upgrades) == 0 {
			logger.Info("Review queues empty, skipping digest")
			return
		}

		var b strings.Builder
		fmt.Fprintf(&b, "Review queue digest\n\nPending chapter applications: %d\n", len(chapters))
		for _, ch := range chapters {
			fmt.Fprintf(&b, "  - %s (%s, %s), submitted %s\n", ch.Name, ch.City, ch.Country, ch.CreatedOn)
		}
		fmt.Fprintf(&b, "\nPending upgrade requests: %d\n", len(upgrades))
		for _, up := range upgrades {
			fmt.Fprintf(&b, "  - chapter %s -> %s, submitted %s\n", up.ChapterID, up.Target, up.CreatedOn)
		}

		admins, err := jr.userRepo.ListAdmins(ctx)
		if err != nil {
			logger.Error("Failed to list admins", "error", err)
			return
		}
		subject := fmt.Sprintf("SCEF review queue: %d chapters, %d upgrades pending", len(chapters), len(upgrades))
		sent := 0
		for _, admin := range admins {
			if err := jr.emailSvc.SendAdminDigest(ctx, admin.Email, subject, b.String()); err != nil {
				logger.Error("Failed to send digest", "admin", admin.Email, "error", err)
				continue
			}
			sent++
		}
		logger.Info("Review queue digest sent", "admins", sent, "pending_chapters", len(chapters), "pending_upgrades", len(upgrades))
	})
}

// SendStaleUpgradeReminders nudges admins about upgrade requests that
// have been waiting longer than the configured age.
func (jr *JobRunner) SendStaleUpgradeReminders() {
	jr.runWithRecovery("SendStaleUpgradeReminders", func() {
		ctx := context.Background()

		upgrades, err := jr.upgradeRepo.ListPending(ctx)
		if err != nil {
			logger.Error("Failed to list pending upgrades", "error", err)
			return
		}

		maxAge := time.Duration(jr.config.Scheduler.StaleUpgradeAgeDays) * 24 * time.Hour
		cutoff := time.Now().Add(-maxAge)

		var b strings.Builder
		stale := 0
		for _, up := range upgrades {
			createdOn, err := time.Parse(time.RFC3339, up.CreatedOn)
			if err != nil || createdOn.After(cutoff) {
				continue
			}
			fmt.Fprintf(&b, "  - request %s for chapter %s -> %s, waiting since %s\n", up.ID, up.ChapterID, up.Target, up.CreatedOn)
			stale++
		}
		if stale == 0 {
			return
		}

		admins, err := jr.userRepo.ListAdmins(ctx)
		if err != nil {
			logger.Error("Failed to list admins", "error", err)
			return
		}
		subject := fmt.Sprintf("%d upgrade requests waiting over %d days", stale, jr.config.Scheduler.StaleUpgradeAgeDays)
		body := "The following upgrade requests need a decision:\n\n" + b.String()
		for _, admin := range admins {
			if err := jr.emailSvc.SendAdminDigest(ctx, admin.Email, subject, body); err != nil {
				logger.Error("Failed to send stale upgrade reminder", "admin", admin.Email, "error", err)
			}
		}
		logger.Info("Stale upgrade reminders sent", "stale", stale)
	})
}
