package service

import (
	"context"
	"fmt"

	"scef-chapters-backend/internal/domain"
	"scef-chapters-backend/internal/repository"
)

type upgradeService struct {
	upgradeRepo repository.UpgradeRequestRepository
	chapterRepo repository.ChapterRepository
	userRepo    repository.UserRepository
	emailSvc    EmailService
}

func NewUpgradeService(
	upgradeRepo repository.UpgradeRequestRepository,
	chapterRepo repository.ChapterRepository,
	userRepo repository.UserRepository,
	emailSvc EmailService,
) UpgradeService {
	return &upgradeService{
		upgradeRepo: upgradeRepo,
		chapterRepo: chapterRepo,
		userRepo:    userRepo,
		emailSvc:    emailSvc,
	}
}

func (s *upgradeService) RequestUpgrade(ctx context.Context, chapterID string, target domain.ChapterTier, evidence domain.UpgradeEvidence) (*domain.ChapterUpgradeRequest, error) {
	ch, err := s.chapterRepo.GetByID(ctx, chapterID)
	if err != nil {
		return nil, err
	}
	if ch.Status != domain.ChapterStatusActive {
		return nil, fmt.Errorf("chapter %s is %s, only active chapters may upgrade: %w", chapterID, ch.Status, domain.ErrInvalidState)
	}
	if !target.Valid() {
		return nil, fmt.Errorf("unknown target tier %q: %w", target, domain.ErrValidation)
	}
	// Promotions only move up the ladder. ONLINE may jump straight to
	// PHYSICAL; lateral and backward targets are refused.
	if target.Ord() <= ch.Tier.Ord() {
		return nil, fmt.Errorf("chapter %s is already %s, cannot target %s: %w", chapterID, ch.Tier, target, domain.ErrInvalidState)
	}

	// Eligibility evidence is recorded as reported, not enforced. The
	// reviewing admin makes the call.
	req := &domain.ChapterUpgradeRequest{
		ID:        domain.NewID("up"),
		ChapterID: chapterID,
		Target:    target,
		Status:    domain.UpgradeRequestStatusPending,
		Evidence:  evidence,
	}
	if err := s.upgradeRepo.Create(ctx, req); err != nil {
		return nil, fmt.Errorf("failed to create upgrade request: %w", err)
	}
	return req, nil
}

func (s *upgradeService) DecideUpgrade(ctx context.Context, requestID string, decision Decision, actorID string) (*domain.ChapterUpgradeRequest, error) {
	if !decision.Valid() {
		return nil, fmt.Errorf("unknown decision %q: %w", decision, domain.ErrValidation)
	}

	action := domain.AuditActionApprove
	if decision == DecisionReject {
		action = domain.AuditActionReject
	}
	entry := &domain.AuditLogEntry{
		ID:         domain.NewID("log"),
		Action:     action,
		EntityType: domain.AuditEntityUpgrade,
		EntityID:   requestID,
		UserID:     &actorID,
	}

	var req *domain.ChapterUpgradeRequest
	var err error
	if decision == DecisionApprove {
		req, err = s.upgradeRepo.Approve(ctx, requestID, actorID, entry)
	} else {
		req, err = s.upgradeRepo.Reject(ctx, requestID, actorID, entry)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to decide upgrade: %w", err)
	}

	if ch, err := s.chapterRepo.GetByID(ctx, req.ChapterID); err == nil {
		if organizer, err := s.userRepo.GetByID(ctx, ch.CreatedBy); err == nil {
			_ = s.emailSvc.SendUpgradeDecisionNotification(ctx, organizer.Email, organizer.FirstName, ch.Name, req.Target, decision)
		}
	}

	return req, nil
}

func (s *upgradeService) GetPendingUpgrade(ctx context.Context, chapterID string) (*domain.ChapterUpgradeRequest, error) {
	if _, err := s.chapterRepo.GetByID(ctx, chapterID); err != nil {
		return nil, err
	}
	return s.upgradeRepo.GetPendingByChapter(ctx, chapterID)
}
