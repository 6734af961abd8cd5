package service

import (
	"context"

	"scef-chapters-backend/internal/domain"
	"scef-chapters-backend/internal/repository"
)

type Decision string

const (
	DecisionApprove Decision = "approve"
	DecisionReject  Decision = "reject"
)

func (d Decision) Valid() bool {
	return d == DecisionApprove || d == DecisionReject
}

type CreateChapterInput struct {
	Name        string
	Country     string
	State       string
	City        string
	Focus       []string
	KickoffPlan string
	CreatedBy   string
}

type ChapterService interface {
	CreateChapter(ctx context.Context, input CreateChapterInput) (*domain.Chapter, error)
	GetChapter(ctx context.Context, idOrSlug string) (*domain.Chapter, error)
	ListChapters(ctx context.Context, filter repository.ChapterFilter) ([]domain.Chapter, int32, error)
	DecideCreation(ctx context.Context, chapterID string, decision Decision, actorID string) (*domain.Chapter, error)
	GetDashboard(ctx context.Context, chapterID string) (*ChapterDashboard, error)
}

// ChapterDashboard is the organizer's one-call read model.
type ChapterDashboard struct {
	Chapter    *domain.Chapter                `json:"chapter"`
	Requests   []domain.ChapterJoinRequest    `json:"requests"`
	Activities []domain.ChapterActivity       `json:"activities"`
	Upgrade    *domain.ChapterUpgradeRequest  `json:"upgrade,omitempty"`
}

type UpgradeService interface {
	RequestUpgrade(ctx context.Context, chapterID string, target domain.ChapterTier, evidence domain.UpgradeEvidence) (*domain.ChapterUpgradeRequest, error)
	DecideUpgrade(ctx context.Context, requestID string, decision Decision, actorID string) (*domain.ChapterUpgradeRequest, error)
	GetPendingUpgrade(ctx context.Context, chapterID string) (*domain.ChapterUpgradeRequest, error)
}

type MembershipService interface {
	RequestToJoin(ctx context.Context, chapterID, userID string, interests []string, role domain.ParticipationRole) (*domain.ChapterJoinRequest, error)
	DecideJoin(ctx context.Context, requestID string, decision Decision, actorID string) (*domain.ChapterJoinRequest, error)
	ListRequests(ctx context.Context, chapterID string, status domain.JoinRequestStatus) ([]domain.ChapterJoinRequest, error)
}

type ActivityService interface {
	RecordActivity(ctx context.Context, chapterID, title, description, date, category string, proofURL *string) (*domain.ChapterActivity, error)
	ListActivities(ctx context.Context, chapterID string) ([]domain.ChapterActivity, error)
	CountActivities(ctx context.Context, chapterID string) (int32, error)
}

type AdminService interface {
	GetQueue(ctx context.Context, kind domain.QueueKind) ([]domain.QueueItem, error)
	ListAuditLog(ctx context.Context, limit int32) ([]domain.AuditLogEntry, error)
}

type WalletService interface {
	GetWallet(ctx context.Context, userID string) (*domain.Wallet, error)
	DebitAGC(ctx context.Context, userID string, kind domain.TransactionType, target string) (*domain.Transaction, error)
	ListTransactions(ctx context.Context, userID string) ([]domain.Transaction, error)
}

type RegisterInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
	Role      domain.UserRole
	Country   string
	State     string
	City      string
}

type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*domain.User, string, error) // user, access token
	Login(ctx context.Context, email, password string) (*domain.User, string, error)
}

type EmailService interface {
	SendChapterDecisionNotification(ctx context.Context, email, name, chapterName string, decision Decision) error
	SendUpgradeDecisionNotification(ctx context.Context, email, name, chapterName string, target domain.ChapterTier, decision Decision) error
	SendAdminDigest(ctx context.Context, email, subject, body string) error
}
