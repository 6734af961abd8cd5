package service_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"scef-chapters-backend/internal/domain"
	"scef-chapters-backend/internal/repository"
	"scef-chapters-backend/internal/service"
)

// MockChapterRepo
type MockChapterRepo struct {
	mock.Mock
}

func (m *MockChapterRepo) Create(ctx context.Context, ch *domain.Chapter) error {
	args := m.Called(ctx, ch)
	return args.Error(0)
}
func (m *MockChapterRepo) GetByID(ctx context.Context, id string) (*domain.Chapter, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Chapter), args.Error(1)
}
func (m *MockChapterRepo) GetByIDOrSlug(ctx context.Context, idOrSlug string) (*domain.Chapter, error) {
	args := m.Called(ctx, idOrSlug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Chapter), args.Error(1)
}
func (m *MockChapterRepo) List(ctx context.Context, filter repository.ChapterFilter) ([]domain.Chapter, int32, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]domain.Chapter), args.Get(1).(int32), args.Error(2)
}
func (m *MockChapterRepo) ListPending(ctx context.Context) ([]domain.Chapter, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Chapter), args.Error(1)
}
func (m *MockChapterRepo) DecideCreation(ctx context.Context, chapterID string, status domain.ChapterStatus, entry *domain.AuditLogEntry) (*domain.Chapter, error) {
	args := m.Called(ctx, chapterID, status, entry)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Chapter), args.Error(1)
}

// MockJoinRequestRepo
type MockJoinRequestRepo struct {
	mock.Mock
}

func (m *MockJoinRequestRepo) Create(ctx context.Context, req *domain.ChapterJoinRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}
func (m *MockJoinRequestRepo) GetByID(ctx context.Context, id string) (*domain.ChapterJoinRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ChapterJoinRequest), args.Error(1)
}
func (m *MockJoinRequestRepo) ListByChapter(ctx context.Context, chapterID string, status domain.JoinRequestStatus) ([]domain.ChapterJoinRequest, error) {
	args := m.Called(ctx, chapterID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ChapterJoinRequest), args.Error(1)
}
func (m *MockJoinRequestRepo) Decide(ctx context.Context, requestID string, status domain.JoinRequestStatus, decidedBy string) (*domain.ChapterJoinRequest, error) {
	args := m.Called(ctx, requestID, status, decidedBy)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ChapterJoinRequest), args.Error(1)
}

// MockUpgradeRequestRepo
type MockUpgradeRequestRepo struct {
	mock.Mock
}

func (m *MockUpgradeRequestRepo) Create(ctx context.Context, req *domain.ChapterUpgradeRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}
func (m *MockUpgradeRequestRepo) GetByID(ctx context.Context, id string) (*domain.ChapterUpgradeRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ChapterUpgradeRequest), args.Error(1)
}
func (m *MockUpgradeRequestRepo) GetPendingByChapter(ctx context.Context, chapterID string) (*domain.ChapterUpgradeRequest, error) {
	args := m.Called(ctx, chapterID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ChapterUpgradeRequest), args.Error(1)
}
func (m *MockUpgradeRequestRepo) ListPending(ctx context.Context) ([]domain.ChapterUpgradeRequest, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ChapterUpgradeRequest), args.Error(1)
}
func (m *MockUpgradeRequestRepo) Approve(ctx context.Context, requestID, decidedBy string, entry *domain.AuditLogEntry) (*domain.ChapterUpgradeRequest, error) {
	args := m.Called(ctx, requestID, decidedBy, entry)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ChapterUpgradeRequest), args.Error(1)
}
func (m *MockUpgradeRequestRepo) Reject(ctx context.Context, requestID, decidedBy string, entry *domain.AuditLogEntry) (*domain.ChapterUpgradeRequest, error) {
	args := m.Called(ctx, requestID, decidedBy, entry)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ChapterUpgradeRequest), args.Error(1)
}

// MockActivityRepo
type MockActivityRepo struct {
	mock.Mock
}

func (m *MockActivityRepo) Create(ctx context.Context, act *domain.ChapterActivity) error {
	args := m.Called(ctx, act)
	return args.Error(0)
}
func (m *MockActivityRepo) ListByChapter(ctx context.Context, chapterID string) ([]domain.ChapterActivity, error) {
	args := m.Called(ctx, chapterID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ChapterActivity), args.Error(1)
}
func (m *MockActivityRepo) CountByChapter(ctx context.Context, chapterID string) (int32, error) {
	args := m.Called(ctx, chapterID)
	return args.Get(0).(int32), args.Error(1)
}

// MockAuditLogRepo
type MockAuditLogRepo struct {
	mock.Mock
}

func (m *MockAuditLogRepo) List(ctx context.Context, limit int32) ([]domain.AuditLogEntry, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AuditLogEntry), args.Error(1)
}

// MockUserRepo
type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}
func (m *MockUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) ListAdmins(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

// MockWalletRepo
type MockWalletRepo struct {
	mock.Mock
}

func (m *MockWalletRepo) Create(ctx context.Context, w *domain.Wallet) error {
	args := m.Called(ctx, w)
	return args.Error(0)
}
func (m *MockWalletRepo) GetByUser(ctx context.Context, userID string) (*domain.Wallet, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Wallet), args.Error(1)
}
func (m *MockWalletRepo) DebitAGC(ctx context.Context, walletID string, amount int64, tx *domain.Transaction) error {
	args := m.Called(ctx, walletID, amount, tx)
	return args.Error(0)
}
func (m *MockWalletRepo) ListTransactions(ctx context.Context, userID string) ([]domain.Transaction, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

// MockEmailService
type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendChapterDecisionNotification(ctx context.Context, email, name, chapterName string, decision service.Decision) error {
	args := m.Called(ctx, email, name, chapterName, decision)
	return args.Error(0)
}
func (m *MockEmailService) SendUpgradeDecisionNotification(ctx context.Context, email, name, chapterName string, target domain.ChapterTier, decision service.Decision) error {
	args := m.Called(ctx, email, name, chapterName, target, decision)
	return args.Error(0)
}
func (m *MockEmailService) SendAdminDigest(ctx context.Context, email, subject, body string) error {
	args := m.Called(ctx, email, subject, body)
	return args.Error(0)
}
