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

func TestRequestToJoin_Success(t *testing.T) {
	joinRepo := new(MockJoinRequestRepo)
	chapterRepo := new(MockChapterRepo)
	svc := service.NewMembershipService(joinRepo, chapterRepo)

	chapterRepo.On("GetByID", mock.Anything, "ch_1").Return(activeChapter(domain.ChapterTierOnline), nil)
	joinRepo.On("Create", mock.Anything, mock.MatchedBy(func(req *domain.ChapterJoinRequest) bool {
		return req.ChapterID == "ch_1" &&
			req.UserID == "u_2" &&
			req.Status == domain.JoinRequestStatusPending &&
			req.ParticipationRole == domain.ParticipationRoleVolunteer &&
			strings.HasPrefix(req.ID, "jr_")
	})).Return(nil)

	req, err := svc.RequestToJoin(context.Background(), "ch_1", "u_2", []string{"EduAid"}, domain.ParticipationRoleVolunteer)
	assert.NoError(t, err)
	assert.Equal(t, domain.JoinRequestStatusPending, req.Status)
	joinRepo.AssertExpectations(t)
}

func TestRequestToJoin_ChapterMissing(t *testing.T) {
	joinRepo := new(MockJoinRequestRepo)
	chapterRepo := new(MockChapterRepo)
	svc := service.NewMembershipService(joinRepo, chapterRepo)

	chapterRepo.On("GetByID", mock.Anything, "ch_missing").Return(nil, domain.ErrNotFound)

	_, err := svc.RequestToJoin(context.Background(), "ch_missing", "u_2", nil, domain.ParticipationRoleMember)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	joinRepo.AssertNotCalled(t, "Create")
}

func TestRequestToJoin_UnknownRole(t *testing.T) {
	joinRepo := new(MockJoinRequestRepo)
	chapterRepo := new(MockChapterRepo)
	svc := service.NewMembershipService(joinRepo, chapterRepo)

	chapterRepo.On("GetByID", mock.Anything, "ch_1").Return(activeChapter(domain.ChapterTierOnline), nil)

	_, err := svc.RequestToJoin(context.Background(), "ch_1", "u_2", nil, domain.ParticipationRole("Overlord"))
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestDecideJoin(t *testing.T) {
	joinRepo := new(MockJoinRequestRepo)
	svc := service.NewMembershipService(joinRepo, new(MockChapterRepo))

	approved := &domain.ChapterJoinRequest{ID: "jr_1", Status: domain.JoinRequestStatusApproved}
	joinRepo.On("Decide", mock.Anything, "jr_1", domain.JoinRequestStatusApproved, "u_lead").Return(approved, nil)

	req, err := svc.DecideJoin(context.Background(), "jr_1", service.DecisionApprove, "u_lead")
	assert.NoError(t, err)
	assert.Equal(t, domain.JoinRequestStatusApproved, req.Status)

	rejected := &domain.ChapterJoinRequest{ID: "jr_2", Status: domain.JoinRequestStatusRejected}
	joinRepo.On("Decide", mock.Anything, "jr_2", domain.JoinRequestStatusRejected, "u_lead").Return(rejected, nil)

	req, err = svc.DecideJoin(context.Background(), "jr_2", service.DecisionReject, "u_lead")
	assert.NoError(t, err)
	assert.Equal(t, domain.JoinRequestStatusRejected, req.Status)
}

func TestDecideJoin_InvalidDecision(t *testing.T) {
	joinRepo := new(MockJoinRequestRepo)
	svc := service.NewMembershipService(joinRepo, new(MockChapterRepo))

	_, err := svc.DecideJoin(context.Background(), "jr_1", service.Decision(""), "u_lead")
	assert.ErrorIs(t, err, domain.ErrValidation)
	joinRepo.AssertNotCalled(t, "Decide")
}

func TestDecideJoin_AlreadyDecided(t *testing.T) {
	joinRepo := new(MockJoinRequestRepo)
	svc := service.NewMembershipService(joinRepo, new(MockChapterRepo))

	joinRepo.On("Decide", mock.Anything, "jr_1", domain.JoinRequestStatusApproved, "u_lead").Return(nil, domain.ErrInvalidState)

	_, err := svc.DecideJoin(context.Background(), "jr_1", service.DecisionApprove, "u_lead")
	assert.ErrorIs(t, err, domain.ErrInvalidState)
}

func TestListRequests_FilterPassthrough(t *testing.T) {
	joinRepo := new(MockJoinRequestRepo)
	svc := service.NewMembershipService(joinRepo, new(MockChapterRepo))

	joinRepo.On("ListByChapter", mock.Anything, "ch_1", domain.JoinRequestStatusPending).
		Return([]domain.ChapterJoinRequest{{ID: "jr_1"}, {ID: "jr_2"}}, nil)

	reqs, err := svc.ListRequests(context.Background(), "ch_1", domain.JoinRequestStatusPending)
	assert.NoError(t, err)
	assert.Len(t, reqs, 2)
}
