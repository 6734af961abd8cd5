package postgres

import (
	"database/sql"

	"scef-chapters-backend/internal/repository"

	"github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.ChapterRepository
	repository.JoinRequestRepository
	repository.UpgradeRequestRepository
	repository.ActivityRepository
	repository.AuditLogRepository
	repository.UserRepository
	repository.WalletRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                       db,
		ChapterRepository:        NewChapterRepository(db),
		JoinRequestRepository:    NewJoinRequestRepository(db),
		UpgradeRequestRepository: NewUpgradeRequestRepository(db),
		ActivityRepository:       NewActivityRepository(db),
		AuditLogRepository:       NewAuditLogRepository(db),
		UserRepository:           NewUserRepository(db),
		WalletRepository:         NewWalletRepository(db),
	}
}

// isUniqueViolation reports whether err is a postgres unique constraint
// violation (code 23505).
func isUniqueViolation(err error) bool {
	pqErr, ok := err.(*pq.Error)
	return ok && pqErr.Code == "23505"
}
