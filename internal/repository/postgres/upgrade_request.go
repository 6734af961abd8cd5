package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"scef-chapters-backend/internal/domain"
	"scef-chapters-backend/internal/repository"

	"github.com/lib/pq"
)

type upgradeRequestRepository struct {
	db *sql.DB
}

func NewUpgradeRequestRepository(db *sql.DB) repository.UpgradeRequestRepository {
	return &upgradeRequestRepository{db: db}
}

const upgradeColumns = `id, chapter_id, target_tier, status, address, evidence_urls,
	membership_threshold_met, leadership_roles_filled, documented_activities,
	reporting_enabled, wallet_enabled, decided_by, created_on`

func scanUpgradeRequest(row interface{ Scan(...any) error }) (*domain.ChapterUpgradeRequest, error) {
	req := &domain.ChapterUpgradeRequest{}
	var createdOn time.Time
	err := row.Scan(&req.ID, &req.ChapterID, &req.Target, &req.Status,
		&req.Evidence.Address, pq.Array(&req.Evidence.EvidenceURLs),
		&req.Evidence.MembershipThresholdMet, &req.Evidence.LeadershipRolesFilled,
		&req.Evidence.DocumentedActivities, &req.Evidence.ReportingEnabled,
		&req.Evidence.WalletEnabled, &req.DecidedBy, &createdOn)
	if err != nil {
		return nil, err
	}
	req.CreatedOn = createdOn.Format(time.RFC3339)
	return req, nil
}

func (r *upgradeRequestRepository) Create(ctx context.Context, req *domain.ChapterUpgradeRequest) error {
	query := `INSERT INTO upgrade_requests (id, chapter_id, target_tier, status, address, evidence_urls,
	            membership_threshold_met, leadership_roles_filled, documented_activities,
	            reporting_enabled, wallet_enabled, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	now := time.Now().UTC()
	_, err := r.db.ExecContext(ctx, query, req.ID, req.ChapterID, req.Target, req.Status,
		req.Evidence.Address, pq.Array(req.Evidence.EvidenceURLs),
		req.Evidence.MembershipThresholdMet, req.Evidence.LeadershipRolesFilled,
		req.Evidence.DocumentedActivities, req.Evidence.ReportingEnabled,
		req.Evidence.WalletEnabled, now)
	if err != nil {
		// Partial unique index on (chapter_id) WHERE status = 'PENDING'
		// serializes concurrent submissions for the same chapter.
		if isUniqueViolation(err) {
			return fmt.Errorf("upgrade already pending for chapter %s: %w", req.ChapterID, domain.ErrConflict)
		}
		return err
	}
	req.CreatedOn = now.Format(time.RFC3339)
	return nil
}

func (r *upgradeRequestRepository) GetByID(ctx context.Context, id string) (*domain.ChapterUpgradeRequest, error) {
	query := `SELECT ` + upgradeColumns + ` FROM upgrade_requests WHERE id = $1`
	req, err := scanUpgradeRequest(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("upgrade request %s: %w", id, domain.ErrNotFound)
	}
	return req, err
}

func (r *upgradeRequestRepository) GetPendingByChapter(ctx context.Context, chapterID string) (*domain.ChapterUpgradeRequest, error) {
	query := `SELECT ` + upgradeColumns + ` FROM upgrade_requests WHERE chapter_id = $1 AND status = $2`
	req, err := scanUpgradeRequest(r.db.QueryRowContext(ctx, query, chapterID, domain.UpgradeRequestStatusPending))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return req, err
}

func (r *upgradeRequestRepository) ListPending(ctx context.Context) ([]domain.ChapterUpgradeRequest, error) {
	query := `SELECT ` + upgradeColumns + ` FROM upgrade_requests WHERE status = $1 ORDER BY created_on`
	rows, err := r.db.QueryContext(ctx, query, domain.UpgradeRequestStatusPending)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reqs []domain.ChapterUpgradeRequest
	for rows.Next() {
		req, err := scanUpgradeRequest(rows)
		if err != nil {
			return nil, err
		}
		reqs = append(reqs, *req)
	}
	return reqs, rows.Err()
}

// decide locks the request row, verifies it is still pending, applies
// the status flip plus any chapter mutation, and writes the audit entry.
// All of it commits or none of it does.
func (r *upgradeRequestRepository) decide(ctx context.Context, requestID, decidedBy string, status domain.UpgradeRequestStatus, promote bool, entry *domain.AuditLogEntry) (*domain.ChapterUpgradeRequest, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	req, err := scanUpgradeRequest(tx.QueryRowContext(ctx,
		`SELECT `+upgradeColumns+` FROM upgrade_requests WHERE id = $1 FOR UPDATE`, requestID))
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("upgrade request %s: %w", requestID, domain.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	if req.Status != domain.UpgradeRequestStatusPending {
		return nil, fmt.Errorf("upgrade request %s is %s, not pending: %w", requestID, req.Status, domain.ErrInvalidState)
	}

	if _, err := tx.ExecContext(ctx,
		`UPDATE upgrade_requests SET status = $1, decided_by = $2 WHERE id = $3`,
		status, decidedBy, requestID); err != nil {
		return nil, err
	}

	if promote {
		if _, err := tx.ExecContext(ctx,
			`UPDATE chapters SET tier = $1, verified = true, address = $2 WHERE id = $3`,
			req.Target, req.Evidence.Address, req.ChapterID); err != nil {
			return nil, err
		}
	}

	if err := insertAuditEntry(ctx, tx, entry); err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}

	req.Status = status
	req.DecidedBy = &decidedBy
	return req, nil
}

func (r *upgradeRequestRepository) Approve(ctx context.Context, requestID, decidedBy string, entry *domain.AuditLogEntry) (*domain.ChapterUpgradeRequest, error) {
	return r.decide(ctx, requestID, decidedBy, domain.UpgradeRequestStatusApproved, true, entry)
}

func (r *upgradeRequestRepository) Reject(ctx context.Context, requestID, decidedBy string, entry *domain.AuditLogEntry) (*domain.ChapterUpgradeRequest, error) {
	return r.decide(ctx, requestID, decidedBy, domain.UpgradeRequestStatusRejected, false, entry)
}
