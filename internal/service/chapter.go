package service

import (
	"context"
	"fmt"
	"strings"

	"scef-chapters-backend/internal/domain"
	"scef-chapters-backend/internal/repository"
)

type chapterService struct {
	chapterRepo  repository.ChapterRepository
	joinRepo     repository.JoinRequestRepository
	activityRepo repository.ActivityRepository
	upgradeRepo  repository.UpgradeRequestRepository
	userRepo     repository.UserRepository
	emailSvc     EmailService
}

func NewChapterService(
	chapterRepo repository.ChapterRepository,
	joinRepo repository.JoinRequestRepository,
	activityRepo repository.ActivityRepository,
	upgradeRepo repository.UpgradeRequestRepository,
	userRepo repository.UserRepository,
	emailSvc EmailService,
) ChapterService {
	return &chapterService{
		chapterRepo:  chapterRepo,
		joinRepo:     joinRepo,
		activityRepo: activityRepo,
		upgradeRepo:  upgradeRepo,
		userRepo:     userRepo,
		emailSvc:     emailSvc,
	}
}

// Slugify lowercases a chapter name and collapses whitespace runs into
// single hyphens: "Accra  North" -> "accra-north".
func Slugify(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), "-")
}

func (s *chapterService) CreateChapter(ctx context.Context, input CreateChapterInput) (*domain.Chapter, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, fmt.Errorf("chapter name is required: %w", domain.ErrValidation)
	}
	if strings.TrimSpace(input.Country) == "" || strings.TrimSpace(input.State) == "" || strings.TrimSpace(input.City) == "" {
		return nil, fmt.Errorf("country, state and city are required: %w", domain.ErrValidation)
	}

	ch := &domain.Chapter{
		ID:           domain.NewID("ch"),
		Slug:         Slugify(input.Name),
		Name:         input.Name,
		Country:      input.Country,
		State:        input.State,
		City:         input.City,
		Tier:         domain.ChapterTierOnline,
		Status:       domain.ChapterStatusPending,
		MemberCount:  1,
		ProgramFocus: input.Focus,
		KickoffPlan:  input.KickoffPlan,
		Verified:     false,
		CreatedBy:    input.CreatedBy,
	}
	if err := s.chapterRepo.Create(ctx, ch); err != nil {
		return nil, fmt.Errorf("failed to create chapter: %w", err)
	}
	return ch, nil
}

func (s *chapterService) GetChapter(ctx context.Context, idOrSlug string) (*domain.Chapter, error) {
	return s.chapterRepo.GetByIDOrSlug(ctx, idOrSlug)
}

func (s *chapterService) ListChapters(ctx context.Context, filter repository.ChapterFilter) ([]domain.Chapter, int32, error) {
	if filter.Tier != "" && !filter.Tier.Valid() {
		return nil, 0, fmt.Errorf("unknown tier %q: %w", filter.Tier, domain.ErrValidation)
	}
	return s.chapterRepo.List(ctx, filter)
}

func (s *chapterService) DecideCreation(ctx context.Context, chapterID string, decision Decision, actorID string) (*domain.Chapter, error) {
	if !decision.Valid() {
		return nil, fmt.Errorf("unknown decision %q: %w", decision, domain.ErrValidation)
	}

	status := domain.ChapterStatusActive
	action := domain.AuditActionApprove
	if decision == DecisionReject {
		status = domain.ChapterStatusRejected
		action = domain.AuditActionReject
	}
	entry := &domain.AuditLogEntry{
		ID:         domain.NewID("log"),
		Action:     action,
		EntityType: domain.AuditEntityChapter,
		EntityID:   chapterID,
		UserID:     &actorID,
	}

	ch, err := s.chapterRepo.DecideCreation(ctx, chapterID, status, entry)
	if err != nil {
		return nil, fmt.Errorf("failed to decide chapter creation: %w", err)
	}

	// Notification failures never undo a recorded decision.
	if organizer, err := s.userRepo.GetByID(ctx, ch.CreatedBy); err == nil {
		_ = s.emailSvc.SendChapterDecisionNotification(ctx, organizer.Email, organizer.FirstName, ch.Name, decision)
	}

	return ch, nil
}

func (s *chapterService) GetDashboard(ctx context.Context, chapterID string) (*ChapterDashboard, error) {
	ch, err := s.chapterRepo.GetByID(ctx, chapterID)
	if err != nil {
		return nil, err
	}
	requests, err := s.joinRepo.ListByChapter(ctx, chapterID, "")
	if err != nil {
		return nil, fmt.Errorf("failed to list join requests: %w", err)
	}
	activities, err := s.activityRepo.ListByChapter(ctx, chapterID)
	if err != nil {
		return nil, fmt.Errorf("failed to list activities: %w", err)
	}
	upgrade, err := s.upgradeRepo.GetPendingByChapter(ctx, chapterID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up pending upgrade: %w", err)
	}
	return &ChapterDashboard{
		Chapter:    ch,
		Requests:   requests,
		Activities: activities,
		Upgrade:    upgrade,
	}, nil
}
