package postgres

import (
	"context"
	"database/sql"
	"time"

	"scef-chapters-backend/internal/domain"
	"scef-chapters-backend/internal/repository"
)

type auditLogRepository struct {
	db *sql.DB
}

func NewAuditLogRepository(db *sql.DB) repository.AuditLogRepository {
	return &auditLogRepository{db: db}
}

// insertAuditEntry writes an audit entry inside the caller's
// transaction. The decide methods on the chapter and upgrade-request
// repositories are the only callers; audit entries are never written
// outside a decision.
func insertAuditEntry(ctx context.Context, tx *sql.Tx, entry *domain.AuditLogEntry) error {
	query := `INSERT INTO audit_logs (id, action, entity_type, entity_id, user_id, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6)`
	now := time.Now().UTC()
	_, err := tx.ExecContext(ctx, query, entry.ID, entry.Action, entry.EntityType, entry.EntityID, entry.UserID, now)
	if err != nil {
		return err
	}
	entry.Timestamp = now.Format(time.RFC3339)
	return nil
}

func (r *auditLogRepository) List(ctx context.Context, limit int32) ([]domain.AuditLogEntry, error) {
	if limit < 1 {
		limit = 100
	}
	query := `SELECT id, action, entity_type, entity_id, user_id, created_on
	          FROM audit_logs ORDER BY created_on DESC, id DESC LIMIT $1`
	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []domain.AuditLogEntry
	for rows.Next() {
		var e domain.AuditLogEntry
		var createdOn time.Time
		if err := rows.Scan(&e.ID, &e.Action, &e.EntityType, &e.EntityID, &e.UserID, &createdOn); err != nil {
			return nil, err
		}
		e.Timestamp = createdOn.Format(time.RFC3339)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
