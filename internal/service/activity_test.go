package service_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"scef-chapters-backend/internal/domain"
	"scef-chapters-backend/internal/service"
)

func TestRecordActivity_Success(t *testing.T) {
	activityRepo := new(MockActivityRepo)
	chapterRepo := new(MockChapterRepo)
	svc := service.NewActivityService(activityRepo, chapterRepo)

	chapterRepo.On("GetByID", mock.Anything, "ch_1").Return(activeChapter(domain.ChapterTierOnline), nil)
	proof := "https://evidence.scef.org/act.jpg"
	activityRepo.On("Create", mock.Anything, mock.MatchedBy(func(act *domain.ChapterActivity) bool {
		return act.ChapterID == "ch_1" &&
			act.Title == "Coding workshop" &&
			act.Date == "2026-08-15" &&
			act.ProofURL != nil && *act.ProofURL == proof &&
			strings.HasPrefix(act.ID, "act_")
	})).Return(nil)

	act, err := svc.RecordActivity(context.Background(), "ch_1", "Coding workshop", "Intro to Go for teens", "2026-08-15", "EduAid", &proof)
	assert.NoError(t, err)
	assert.Equal(t, "Coding workshop", act.Title)
	activityRepo.AssertExpectations(t)
}

func TestRecordActivity_BadDate(t *testing.T) {
	activityRepo := new(MockActivityRepo)
	chapterRepo := new(MockChapterRepo)
	svc := service.NewActivityService(activityRepo, chapterRepo)

	chapterRepo.On("GetByID", mock.Anything, "ch_1").Return(activeChapter(domain.ChapterTierOnline), nil)

	for _, date := range []string{"15-08-2026", "2026/08/15", "yesterday", ""} {
		_, err := svc.RecordActivity(context.Background(), "ch_1", "Workshop", "", date, "", nil)
		assert.ErrorIs(t, err, domain.ErrValidation, "date %q", date)
	}
	activityRepo.AssertNotCalled(t, "Create")
}

func TestRecordActivity_MissingTitle(t *testing.T) {
	activityRepo := new(MockActivityRepo)
	chapterRepo := new(MockChapterRepo)
	svc := service.NewActivityService(activityRepo, chapterRepo)

	chapterRepo.On("GetByID", mock.Anything, "ch_1").Return(activeChapter(domain.ChapterTierOnline), nil)

	_, err := svc.RecordActivity(context.Background(), "ch_1", "  ", "", "2026-08-15", "", nil)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestRecordActivity_ChapterMissing(t *testing.T) {
	activityRepo := new(MockActivityRepo)
	chapterRepo := new(MockChapterRepo)
	svc := service.NewActivityService(activityRepo, chapterRepo)

	chapterRepo.On("GetByID", mock.Anything, "ch_missing").Return(nil, domain.ErrNotFound)

	_, err := svc.RecordActivity(context.Background(), "ch_missing", "Workshop", "", "2026-08-15", "", nil)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCountActivities(t *testing.T) {
	activityRepo := new(MockActivityRepo)
	svc := service.NewActivityService(activityRepo, new(MockChapterRepo))

	activityRepo.On("CountByChapter", mock.Anything, "ch_1").Return(int32(7), nil)

	count, err := svc.CountActivities(context.Background(), "ch_1")
	assert.NoError(t, err)
	assert.Equal(t, int32(7), count)
}
