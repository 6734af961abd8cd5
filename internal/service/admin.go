package service

import (
	"context"
	"fmt"

	"scef-chapters-backend/internal/domain"
	"scef-chapters-backend/internal/repository"
)

type adminService struct {
	chapterRepo repository.ChapterRepository
	upgradeRepo repository.UpgradeRequestRepository
	auditRepo   repository.AuditLogRepository
}

func NewAdminService(
	chapterRepo repository.ChapterRepository,
	upgradeRepo repository.UpgradeRequestRepository,
	auditRepo repository.AuditLogRepository,
) AdminService {
	return &adminService{
		chapterRepo: chapterRepo,
		upgradeRepo: upgradeRepo,
		auditRepo:   auditRepo,
	}
}

func (s *adminService) GetQueue(ctx context.Context, kind domain.QueueKind) ([]domain.QueueItem, error) {
	switch kind {
	case domain.QueueKindChapters:
		chapters, err := s.chapterRepo.ListPending(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list pending chapters: %w", err)
		}
		items := make([]domain.QueueItem, 0, len(chapters))
		for i := range chapters {
			items = append(items, domain.QueueItem{Kind: domain.QueueKindChapters, Chapter: &chapters[i]})
		}
		return items, nil

	case domain.QueueKindUpgrades:
		reqs, err := s.upgradeRepo.ListPending(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list pending upgrades: %w", err)
		}
		items := make([]domain.QueueItem, 0, len(reqs))
		for i := range reqs {
			items = append(items, domain.QueueItem{Kind: domain.QueueKindUpgrades, Upgrade: &reqs[i]})
		}
		return items, nil
	}
	return nil, fmt.Errorf("unknown queue kind %q: %w", kind, domain.ErrValidation)
}

func (s *adminService) ListAuditLog(ctx context.Context, limit int32) ([]domain.AuditLogEntry, error) {
	return s.auditRepo.List(ctx, limit)
}
