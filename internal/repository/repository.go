package repository

import (
	"context"

	"scef-chapters-backend/internal/domain"
)

// ChapterFilter narrows ListChapters. Zero values mean "no filter".
type ChapterFilter struct {
	Tier     domain.ChapterTier
	Search   string // case-insensitive substring over name/city/country
	Page     int32
	PageSize int32
}

type ChapterRepository interface {
	Create(ctx context.Context, ch *domain.Chapter) error
	GetByID(ctx context.Context, id string) (*domain.Chapter, error)
	GetByIDOrSlug(ctx context.Context, idOrSlug string) (*domain.Chapter, error)
	List(ctx context.Context, filter ChapterFilter) ([]domain.Chapter, int32, error)
	ListPending(ctx context.Context) ([]domain.Chapter, error)

	// DecideCreation flips a PENDING chapter to ACTIVE or REJECTED and
	// appends the audit entry in one transaction. Returns
	// domain.ErrInvalidState if the chapter is no longer pending.
	DecideCreation(ctx context.Context, chapterID string, status domain.ChapterStatus, entry *domain.AuditLogEntry) (*domain.Chapter, error)
}

type JoinRequestRepository interface {
	Create(ctx context.Context, req *domain.ChapterJoinRequest) error
	GetByID(ctx context.Context, id string) (*domain.ChapterJoinRequest, error)
	ListByChapter(ctx context.Context, chapterID string, status domain.JoinRequestStatus) ([]domain.ChapterJoinRequest, error)

	// Decide flips a PENDING request to APPROVED or REJECTED. Returns
	// domain.ErrInvalidState if the request was already decided.
	Decide(ctx context.Context, requestID string, status domain.JoinRequestStatus, decidedBy string) (*domain.ChapterJoinRequest, error)
}

type UpgradeRequestRepository interface {
	// Create inserts a PENDING request. The store enforces at most one
	// pending request per chapter; a violation surfaces as
	// domain.ErrConflict.
	Create(ctx context.Context, req *domain.ChapterUpgradeRequest) error
	GetByID(ctx context.Context, id string) (*domain.ChapterUpgradeRequest, error)
	GetPendingByChapter(ctx context.Context, chapterID string) (*domain.ChapterUpgradeRequest, error)
	ListPending(ctx context.Context) ([]domain.ChapterUpgradeRequest, error)

	// Approve marks the request APPROVED and promotes the chapter
	// (tier, verified, address) in the same transaction as the audit
	// entry. Reject marks it REJECTED and leaves the chapter untouched.
	// Both return domain.ErrInvalidState for already-decided requests.
	Approve(ctx context.Context, requestID, decidedBy string, entry *domain.AuditLogEntry) (*domain.ChapterUpgradeRequest, error)
	Reject(ctx context.Context, requestID, decidedBy string, entry *domain.AuditLogEntry) (*domain.ChapterUpgradeRequest, error)
}

type ActivityRepository interface {
	Create(ctx context.Context, act *domain.ChapterActivity) error
	ListByChapter(ctx context.Context, chapterID string) ([]domain.ChapterActivity, error)
	CountByChapter(ctx context.Context, chapterID string) (int32, error)
}

type AuditLogRepository interface {
	List(ctx context.Context, limit int32) ([]domain.AuditLogEntry, error)
}

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	ListAdmins(ctx context.Context) ([]domain.User, error)
}

type WalletRepository interface {
	Create(ctx context.Context, w *domain.Wallet) error
	GetByUser(ctx context.Context, userID string) (*domain.Wallet, error)

	// DebitAGC decrements the AGC balance and records the transaction
	// atomically. Returns domain.ErrInsufficientBalance when the
	// balance does not cover the amount.
	DebitAGC(ctx context.Context, walletID string, amount int64, tx *domain.Transaction) error
	ListTransactions(ctx context.Context, userID string) ([]domain.Transaction, error)
}
