package service

import (
	"context"
	"fmt"

	"scef-chapters-backend/internal/domain"
	"scef-chapters-backend/internal/repository"
)

type membershipService struct {
	joinRepo    repository.JoinRequestRepository
	chapterRepo repository.ChapterRepository
}

func NewMembershipService(joinRepo repository.JoinRequestRepository, chapterRepo repository.ChapterRepository) MembershipService {
	return &membershipService{joinRepo: joinRepo, chapterRepo: chapterRepo}
}

func (s *membershipService) RequestToJoin(ctx context.Context, chapterID, userID string, interests []string, role domain.ParticipationRole) (*domain.ChapterJoinRequest, error) {
	// A pending chapter may still collect provisional join interest, so
	// only existence is checked, not status.
	if _, err := s.chapterRepo.GetByID(ctx, chapterID); err != nil {
		return nil, err
	}
	if !role.Valid() {
		return nil, fmt.Errorf("unknown participation role %q: %w", role, domain.ErrValidation)
	}

	req := &domain.ChapterJoinRequest{
		ID:                domain.NewID("jr"),
		ChapterID:         chapterID,
		UserID:            userID,
		Interests:         interests,
		ParticipationRole: role,
		Status:            domain.JoinRequestStatusPending,
	}
	if err := s.joinRepo.Create(ctx, req); err != nil {
		return nil, fmt.Errorf("failed to create join request: %w", err)
	}
	return req, nil
}

func (s *membershipService) DecideJoin(ctx context.Context, requestID string, decision Decision, actorID string) (*domain.ChapterJoinRequest, error) {
	if !decision.Valid() {
		return nil, fmt.Errorf("unknown decision %q: %w", decision, domain.ErrValidation)
	}
	status := domain.JoinRequestStatusApproved
	if decision == DecisionReject {
		status = domain.JoinRequestStatusRejected
	}
	req, err := s.joinRepo.Decide(ctx, requestID, status, actorID)
	if err != nil {
		return nil, fmt.Errorf("failed to decide join request: %w", err)
	}
	return req, nil
}

func (s *membershipService) ListRequests(ctx context.Context, chapterID string, status domain.JoinRequestStatus) ([]domain.ChapterJoinRequest, error) {
	return s.joinRepo.ListByChapter(ctx, chapterID, status)
}
