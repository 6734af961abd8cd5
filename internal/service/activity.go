package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"scef-chapters-backend/internal/domain"
	"scef-chapters-backend/internal/repository"
)

type activityService struct {
	activityRepo repository.ActivityRepository
	chapterRepo  repository.ChapterRepository
}

func NewActivityService(activityRepo repository.ActivityRepository, chapterRepo repository.ChapterRepository) ActivityService {
	return &activityService{activityRepo: activityRepo, chapterRepo: chapterRepo}
}

func (s *activityService) RecordActivity(ctx context.Context, chapterID, title, description, date, category string, proofURL *string) (*domain.ChapterActivity, error) {
	if _, err := s.chapterRepo.GetByID(ctx, chapterID); err != nil {
		return nil, err
	}
	if strings.TrimSpace(title) == "" {
		return nil, fmt.Errorf("activity title is required: %w", domain.ErrValidation)
	}
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return nil, fmt.Errorf("activity date must be YYYY-MM-DD: %w", domain.ErrValidation)
	}

	act := &domain.ChapterActivity{
		ID:          domain.NewID("act"),
		ChapterID:   chapterID,
		Title:       title,
		Description: description,
		Date:        date,
		Category:    category,
		ProofURL:    proofURL,
	}
	if err := s.activityRepo.Create(ctx, act); err != nil {
		return nil, fmt.Errorf("failed to record activity: %w", err)
	}
	return act, nil
}

func (s *activityService) ListActivities(ctx context.Context, chapterID string) ([]domain.ChapterActivity, error) {
	return s.activityRepo.ListByChapter(ctx, chapterID)
}

func (s *activityService) CountActivities(ctx context.Context, chapterID string) (int32, error) {
	return s.activityRepo.CountByChapter(ctx, chapterID)
}
